package main

import (
	"database/sql"
	"log"
	"net/http"

	"mazaj-be/internal/catalog"
	"mazaj-be/internal/config"
	"mazaj-be/internal/db"
	"mazaj-be/internal/geo"
	"mazaj-be/internal/httpserver"
	"mazaj-be/internal/logger"
	"mazaj-be/internal/order"
	"mazaj-be/internal/session"
)

// Swappable for tests.
var (
	initDBFunc      = db.InitDB
	startServerFunc = http.ListenAndServe
)

func newServer(cfg *config.Config, database *sql.DB) http.Handler {
	catalogRepo := catalog.NewRepository(database)
	catalogSvc := catalog.NewService(catalogRepo)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo)

	resolver := geo.NewResolver(nil, geo.Point{
		Latitude:  cfg.DefaultLatitude,
		Longitude: cfg.DefaultLongitude,
	})

	srv := httpserver.New(catalogSvc, orderSvc, session.NewManager(), resolver)
	return srv.Router()
}

func run() error {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := initDBFunc(cfg)
	defer database.Close()

	router := newServer(cfg, database)

	log.Printf("🚀 Storefront API running at http://localhost:%s/", cfg.AppPort)
	return startServerFunc(":"+cfg.AppPort, router)
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
