package main

import (
	"context"
	"fmt"

	"printduka-admin/config"
	"printduka-admin/config/minio"
	"printduka-admin/internal/stubapi"
	"printduka-admin/pkg/log"

	miniogo "github.com/minio/minio-go/v7"
)

func main() {
	// Load configuration
	cfg, err := config.LoadStub()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()

	// Initialize MinIO when image persistence is configured
	var minioClient *miniogo.Client
	if cfg.MinIO.Enabled() {
		minioClient, err = minio.Connect(ctx, cfg.MinIO)
		if err != nil {
			logger.Error(ctx, "Failed to connect to MinIO: ", err)
			return
		}
		logger.Infof(ctx, "MinIO connected successfully to %s", cfg.MinIO.Endpoint)
	}

	// Initialize stub API server
	server, err := stubapi.New(logger, stubapi.Config{
		Stub:        cfg.Stub,
		Cookie:      cfg.Cookie,
		MinIO:       minioClient,
		MinIOBucket: cfg.MinIO.Bucket,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize stub API: ", err)
		return
	}

	if err := server.Run(); err != nil {
		logger.Error(ctx, "Failed to run stub API: ", err)
		return
	}
}
