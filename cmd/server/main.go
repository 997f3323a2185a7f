package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/TFMV/ReviewLens/internal/sentiment"
	"github.com/TFMV/ReviewLens/internal/store"
	"github.com/TFMV/ReviewLens/pkg/api"
	"github.com/TFMV/ReviewLens/pkg/config"
	"github.com/TFMV/ReviewLens/pkg/db"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to configuration file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	fmt.Println("Config loaded successfully")

	ctx := context.Background()
	client, err := db.NewConnection(ctx, db.MongoCreds{
		URI:      cfg.Mongo.URI,
		Host:     cfg.Mongo.Host,
		Port:     cfg.Mongo.Port,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)
	fmt.Println("MongoDB connection established successfully")

	reviews := store.NewReviewStore(client.Database(cfg.Mongo.Database), cfg.Mongo.Collection)

	// A missing artifact is not fatal: the service starts degraded and
	// answers 503 on /predict until a training run publishes one.
	predictor := sentiment.NewPredictor()
	if err := predictor.Load(cfg.Model.Path); err != nil {
		if errors.Is(err, sentiment.ErrArtifactNotFound) {
			log.Printf("No model artifact at %s; predictions unavailable until one is trained", cfg.Model.Path)
		} else {
			log.Fatalf("Failed to load model artifact: %v", err)
		}
	} else {
		artifact := predictor.Artifact()
		log.Printf("Loaded %s model (accuracy %.4f, trained on %d samples)",
			artifact.Algorithm, artifact.Accuracy, artifact.TrainedOn)
	}

	router := gin.Default()
	api.SetupRoutes(router, reviews, predictor)
	fmt.Printf("Starting server on %s\n", cfg.Server.Addr)
	log.Fatal(router.Run(cfg.Server.Addr))
}
