package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/prognoshealth/campaignfn/campaign"
	"github.com/prognoshealth/campaignfn/config"
	"github.com/prognoshealth/campaignfn/gemini"
	"github.com/prognoshealth/campaignfn/lambdautils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		lambdautils.NewLogger(os.Stdout, "error").Error("failed loading config", "error", err)
		os.Exit(1)
	}

	logger := lambdautils.NewLogger(os.Stdout, cfg.LogLevel)

	// a missing key is reported per request, so start regardless
	if err := cfg.ResolveAPIKey(context.Background()); err != nil {
		logger.Error("failed resolving api key", "error", err)
	}
	logger.Debug("config loaded", "config", cfg)

	client := gemini.NewClient(cfg.Endpoint, cfg.Model, cfg.APIKey)

	handler, err := campaign.NewHandler(cfg, client, logger)
	if err != nil {
		logger.Error("failed building handler", "error", err)
		os.Exit(1)
	}

	lambda.Start(handler.Handle)
}
