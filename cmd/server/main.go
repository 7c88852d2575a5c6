package main

import (
	"context"

	"github.com/gofiber/fiber/v2/log"

	"github.com/ahmednasr/embedding-server/internal/config"
	"github.com/ahmednasr/embedding-server/internal/handler"
	"github.com/ahmednasr/embedding-server/internal/service"
)

// main is the single entry-point for the embedding server.
func main() {
	// Load configuration
	cfg := config.Load()
	if cfg.Debug {
		log.SetLevel(log.LevelDebug)
	} else {
		log.SetLevel(log.LevelInfo)
	}
	log.Infof("Configuration loaded:")
	log.Infof("  - Model backend: %s", cfg.ModelBackend)
	log.Infof("  - Max batch size: %d", cfg.MaxBatchSize)
	log.Infof("  - Sub-batch size: %d, max token length: %d", cfg.SubBatchSize, cfg.MaxTokenLength)

	// Load the model once; nothing is served if this fails.
	model, dims, err := service.LoadModel(context.Background(), service.ModelSpec{
		Backend:         cfg.ModelBackend,
		Name:            cfg.ModelName,
		HashDimensions:  cfg.HashDimensions,
		ProjectID:       cfg.ProjectID,
		Location:        cfg.Location,
		CredentialsFile: cfg.CredentialsFile,
		MaxTokenLength:  cfg.MaxTokenLength,
	})
	if err != nil {
		log.Fatalf("Failed to load embedding model: %v", err)
	}
	defer model.Close()
	log.Infof("Model ready, %d-dimensional output", dims)

	// Initialize services
	embedSvc := service.NewEmbedService(model, service.Limits{
		MaxBatchSize:   cfg.MaxBatchSize,
		SubBatchSize:   cfg.SubBatchSize,
		MaxTokenLength: cfg.MaxTokenLength,
	})

	app := handler.NewApp(embedSvc, handler.AppOptions{
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		BodyLimit:    cfg.BodyLimitMB << 20,
		Debug:        cfg.Debug,
		AccessLog:    true,
	})

	// Start server
	log.Infof("Starting server on port %s", cfg.Port)
	if err := app.Listen("0.0.0.0:" + cfg.Port); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
