package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

type ShareQRGenerator struct {
	BaseURL string
}

func (g ShareQRGenerator) Generate(restaurantID int) ([]byte, error) {
	qrData := fmt.Sprintf("%s/restaurants/%d", g.BaseURL, restaurantID)
	return qrcode.Encode(qrData, qrcode.Medium, 256)
}

var _ QRGenerator = ShareQRGenerator{}
