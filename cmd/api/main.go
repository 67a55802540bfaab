package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/poindexter12/maxwells-wallet/internal/config"
	walletHttp "github.com/poindexter12/maxwells-wallet/internal/http"
	analyzeHandler "github.com/poindexter12/maxwells-wallet/internal/http/analyze"
	parseHandler "github.com/poindexter12/maxwells-wallet/internal/http/parse"
	"github.com/poindexter12/maxwells-wallet/internal/importer"
	"github.com/poindexter12/maxwells-wallet/internal/importer/providers"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	importService := importer.NewService(providers.Default())

	var (
		parseH   = parseHandler.NewHandler(importService)
		analyzeH = analyzeHandler.NewHandler(importService)
	)

	router := walletHttp.New(parseH, analyzeH)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	slog.Info("starting server", "port", srv.Addr)

	if err := srv.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
