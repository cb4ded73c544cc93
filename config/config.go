// Package config holds the process-wide settings of the function. A Config is
// loaded once at startup and is read-only afterwards.
package config

import (
	"context"
	"log/slog"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/client"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/ssm"
	"github.com/aws/aws-sdk-go/service/ssm/ssmiface"
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

// Config is the function configuration.
type Config struct {
	// APIKey is the Gemini API credential. It is never logged.
	APIKey string `env:"GEMINI_API_KEY"`
	// APIKeyParameter names an SSM parameter holding the credential. It is
	// only consulted when APIKey is empty.
	APIKeyParameter string `env:"GEMINI_API_KEY_PARAMETER"`

	Model    string `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash-preview-05-20"`
	Endpoint string `env:"GEMINI_ENDPOINT" envDefault:"https://generativelanguage.googleapis.com/v1beta"`
	Region   string `env:"AWS_REGION" envDefault:"us-east-1"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	svcFunc func(client.ConfigProvider) ssmiface.SSMAPI
}

// Load reads the configuration from the process environment.
func Load() (*Config, error) {
	cfg := new(Config)
	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(err, "failed parsing environment")
	}

	return cfg, nil
}

// LoadFromMap reads the configuration from the given variables instead of the
// process environment.
func LoadFromMap(vars map[string]string) (*Config, error) {
	cfg := new(Config)
	if err := env.ParseWithOptions(cfg, env.Options{Environment: vars}); err != nil {
		return nil, errors.Wrap(err, "failed parsing environment")
	}

	return cfg, nil
}

// HasAPIKey reports whether a credential is available.
func (cfg *Config) HasAPIKey() bool {
	return cfg != nil && cfg.APIKey != ""
}

// svc is used internally to assist stubs on ssm for testing
func (cfg *Config) svc(p client.ConfigProvider) ssmiface.SSMAPI {
	if cfg.svcFunc != nil {
		return cfg.svcFunc(p)
	}

	return ssm.New(p)
}

// ResolveAPIKey fills APIKey from the SSM parameter named by APIKeyParameter.
// It does nothing when APIKey is already set or no parameter is configured.
func (cfg *Config) ResolveAPIKey(ctx context.Context) error {
	if cfg.APIKey != "" || cfg.APIKeyParameter == "" {
		return nil
	}

	s, err := session.NewSession(&aws.Config{
		Region: aws.String(cfg.Region),
	})
	if err != nil {
		return errors.Wrap(err, "failed getting session")
	}

	out, err := cfg.svc(s).GetParameterWithContext(ctx, &ssm.GetParameterInput{
		Name:           aws.String(cfg.APIKeyParameter),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return errors.Wrapf(err, "failed getting parameter %v", cfg.APIKeyParameter)
	}

	if out.Parameter == nil || aws.StringValue(out.Parameter.Value) == "" {
		return errors.Errorf("parameter %v is empty", cfg.APIKeyParameter)
	}

	cfg.APIKey = aws.StringValue(out.Parameter.Value)
	return nil
}

// LogValue implements slog.LogValuer so a Config can be logged without
// leaking the credential.
func (cfg *Config) LogValue() slog.Value {
	key := ""
	if cfg.APIKey != "" {
		key = "[redacted]"
	}

	return slog.GroupValue(
		slog.String("api_key", key),
		slog.String("api_key_parameter", cfg.APIKeyParameter),
		slog.String("model", cfg.Model),
		slog.String("endpoint", cfg.Endpoint),
		slog.String("region", cfg.Region),
		slog.String("log_level", cfg.LogLevel),
	)
}
