package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/TFMV/ReviewLens/internal/sentiment"
	"github.com/TFMV/ReviewLens/internal/store"
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

	reviews := store.NewReviewStore(client.Database(cfg.Mongo.Database), cfg.Mongo.Collection)

	fmt.Println("Fetching training data...")
	dataset, err := reviews.FetchTraining(ctx)
	if err != nil {
		log.Fatalf("Failed to fetch training data: %v", err)
	}
	fmt.Printf("Loaded %d records\n", len(dataset))

	opts := sentiment.TrainOptions{
		MaxFeatures:  cfg.Training.MaxFeatures,
		TestFraction: cfg.Training.TestSplit,
		Seed:         cfg.Training.Seed,
	}
	artifact, report, err := sentiment.Train(dataset, opts)
	if err != nil {
		log.Fatalf("Training failed: %v", err)
	}

	fmt.Printf("Class distribution: %v\n", report.ClassCounts)
	fmt.Printf("Split: %d train / %d test\n", report.TrainSize, report.TestSize)
	for _, result := range report.Results {
		fmt.Printf("%s accuracy: %.4f\n", result.Name, result.Accuracy)
	}
	fmt.Printf("Best model: %s with accuracy %.4f\n", artifact.Algorithm, artifact.Accuracy)

	if err := sentiment.SaveArtifact(cfg.Model.Path, artifact); err != nil {
		log.Fatalf("Failed to save model artifact: %v", err)
	}
	fmt.Printf("Model training complete and saved to %s\n", cfg.Model.Path)
}
