package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/abegailflorig/Foodie-Finder-Team-A-Chi/config"
	httpapi "github.com/abegailflorig/Foodie-Finder-Team-A-Chi/internal/api/http"
	"github.com/abegailflorig/Foodie-Finder-Team-A-Chi/internal/geocode"
	"github.com/abegailflorig/Foodie-Finder-Team-A-Chi/internal/service"
	"github.com/abegailflorig/Foodie-Finder-Team-A-Chi/internal/storage"
	"github.com/abegailflorig/Foodie-Finder-Team-A-Chi/internal/worker"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	cache := storage.NewRedisCache(rdb, 24*time.Hour)
	publisher := storage.NewKafkaPublisher(config.NewKafkaWriter(config.EngagementTopic))
	defer publisher.Close()

	geocoder := geocode.NewClient(config.GeocoderBaseURL())
	qrGen := &service.ShareQRGenerator{BaseURL: config.PublicBaseURL()}

	reviewSvc := service.NewReviewService(repo, cache, publisher)
	feedSvc := service.NewFeedService(repo, repo)
	favoriteSvc := service.NewFavoriteService(repo, repo, repo)
	locationSvc := service.NewLocationService(geocoder, repo, config.DefaultCityCenter())
	engagementSvc := service.NewEngagementService(publisher, cache, repo, repo)
	catalogSvc := service.NewCatalogService(repo, repo, qrGen)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumer := worker.NewConsumer(
		config.NewKafkaReader(config.EngagementTopic, "foodie-finder-worker"),
		storage.NewStore(db, rdb),
	)
	go consumer.Start(ctx)
	defer consumer.Close()

	handler := httpapi.NewHandler(feedSvc, reviewSvc, favoriteSvc, catalogSvc, locationSvc, engagementSvc)
	router := httpapi.NewRouter(handler)

	server := &http.Server{
		Addr:    config.ListenAddr(),
		Handler: router,
	}

	go func() {
		<-ctx.Done()
		server.Shutdown(context.Background())
	}()

	log.Println("Foodie Finder starting on", config.ListenAddr())
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
