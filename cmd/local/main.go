// Command local serves the generate-campaign function over plain http, reading
// settings from a .env file when present.
package main

import (
	"context"
	"net/http"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/prognoshealth/campaignfn/campaign"
	"github.com/prognoshealth/campaignfn/config"
	"github.com/prognoshealth/campaignfn/gemini"
	"github.com/prognoshealth/campaignfn/lambdautils"
	"github.com/prognoshealth/campaignfn/proxy"
)

type server struct {
	Addr string `env:"ADDR"`
	Port string `env:"PORT" envDefault:"8888"`
}

func main() {
	godotenv.Load()

	logger := lambdautils.NewLogger(os.Stdout, os.Getenv("LOG_LEVEL"))

	var srv server
	if err := env.Parse(&srv); err != nil {
		logger.Error("failed parsing server settings", "error", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed loading config", "error", err)
		os.Exit(1)
	}

	if err := cfg.ResolveAPIKey(context.Background()); err != nil {
		logger.Error("failed resolving api key", "error", err)
	}

	handler, err := campaign.NewHandler(cfg, gemini.NewClient(cfg.Endpoint, cfg.Model, cfg.APIKey), logger)
	if err != nil {
		logger.Error("failed building handler", "error", err)
		os.Exit(1)
	}

	addr := srv.Addr + ":" + srv.Port
	logger.Info("listening", "addr", addr, "config", cfg)

	if err := http.ListenAndServe(addr, proxy.NewHTTPHandler(handler.Handle)); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
