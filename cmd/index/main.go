// Command index creates the MongoDB indexes the application relies on.
package main

import (
	"context"
	"time"

	"skillswap/internal/config"
	"skillswap/internal/database"

	"github.com/sirupsen/logrus"
)

func main() {
	logrus.Info("Creating indexes...")

	cfg := config.Load()

	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := database.EnsureIndexes(ctx, mongoDB.Database); err != nil {
		logrus.Fatalf("Failed to create indexes: %v", err)
	}

	logrus.Info("Indexes created successfully")
}
