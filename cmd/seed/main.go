package main

import (
	"context"
	"flag"
	"log"

	"mazaj-be/internal/catalog"
	"mazaj-be/internal/config"
	"mazaj-be/internal/db"
	"mazaj-be/internal/logger"
	"mazaj-be/internal/seed"

	_ "github.com/lib/pq"
)

func main() {
	clear := flag.Bool("clear", false, "wipe the products table before seeding")
	flag.Parse()

	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database, err := db.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("failed to connect db: %v", err)
	}
	defer database.Close()

	repo := catalog.NewRepository(database)
	if err := seed.Apply(context.Background(), repo, *clear); err != nil {
		log.Fatalf("seed failed: %v", err)
	}

	log.Println("✅ Catalog seeded.")
}
