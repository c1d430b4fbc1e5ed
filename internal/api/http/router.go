package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter builds the HTTP entrypoint with CORS enabled so the mobile
// client can call the API from any origin during development.
func NewRouter(handler *Handler) http.Handler {
	router := mux.NewRouter()
	handler.RegisterRoutes(router)
	return cors.Default().Handler(router)
}
