package main

import (
	"context"
	"net/http"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/teambuilder/draft-backend/internal/config"
	"github.com/teambuilder/draft-backend/internal/httpapi"
	"github.com/teambuilder/draft-backend/internal/hub"
)

func main() {
	_ = godotenv.Load() // missing .env is fine

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg := config.Load()

	ctx := context.Background()
	h := hub.NewHub(ctx, logger)

	// Build the router *with* the hub injected
	handler := httpapi.SetupRoutes(h, cfg, logger)

	logger.Info("listening", zap.String("addr", cfg.Addr()))
	if err := http.ListenAndServe(cfg.Addr(), handler); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
