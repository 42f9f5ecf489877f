package main

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/grocermatch/backend/config"
	httpDelivery "github.com/grocermatch/backend/internal/delivery/http"
	"github.com/grocermatch/backend/internal/infrastructure/mongodb"
	"github.com/grocermatch/backend/internal/infrastructure/semantic"
	"github.com/grocermatch/backend/internal/usecase"
)

func main() {
	log := logrus.New()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration")
	}

	if cfg.Server.Environment == "development" {
		log.SetLevel(logrus.DebugLevel)
	}

	log.WithFields(logrus.Fields{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"database":    cfg.Mongo.Database,
		"collection":  cfg.Mongo.Collection,
	}).Info("starting grocermatch backend v1.0.0")

	ctx := context.Background()

	// Connect to the product store
	client, err := mongodb.Connect(ctx, cfg.Mongo.URI)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to product store")
	}
	defer func() {
		if err := client.Disconnect(ctx); err != nil {
			log.WithError(err).Warn("error disconnecting from product store")
		}
	}()

	repo := mongodb.NewRepository(client, cfg.Mongo.Database, cfg.Mongo.Collection)

	// Load or build the semantic index before accepting requests. This may
	// block for the duration of a full catalog scan on first run.
	indexManager := semantic.NewManager(cfg.Index.PersistDir, repo, log)
	outcome, err := indexManager.Ensure(ctx)
	if err != nil {
		log.WithError(err).Fatal("semantic index could not be loaded or built")
	}
	defer indexManager.Close()

	log.WithField("outcome", string(outcome)).Info("semantic index initialized")

	// Initialize usecase layer
	queryService := usecase.NewQueryService(repo, log)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(queryService, indexManager)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.WithField("addr", addr).Info("server listening")

	if err := router.Run(addr); err != nil {
		log.WithError(err).Fatal("failed to start server")
	}
}
