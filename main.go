package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/felixbrock/positive-prompt/internal/app"
	"github.com/felixbrock/positive-prompt/internal/domain"
	"github.com/felixbrock/positive-prompt/internal/logger"
	"github.com/felixbrock/positive-prompt/internal/persistence"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	_ "go.uber.org/automaxprocs"
)

const eventTimeout = 5 * time.Second

func getEnv(key string, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}

	return value
}

func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}

	return out
}

// config only reports a malformed LOG_PRETTY, which leaves pretty output off.
func config() (app.Config, error) {
	var prettyErr error
	pretty := false
	if raw := getEnv("LOG_PRETTY", ""); raw != "" {
		pretty, prettyErr = strconv.ParseBool(raw)
		if prettyErr != nil {
			prettyErr = fmt.Errorf("parse LOG_PRETTY: %w", prettyErr)
		}
	}

	return app.Config{
		Port:           getEnv("GOPORT", "8000"),
		Model:          getEnv("OPENAI_MODEL", "gpt-4"),
		OpenAIBaseUrl:  getEnv("OPENAI_BASE_URL", ""),
		AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogPretty:      pretty,
		PHApiKey:       getEnv("POSTHOG_API_KEY", ""),
		PHUrl:          getEnv("POSTHOG_URL", persistence.DefaultPHUrl),
		MetaPromptFile: getEnv("META_PROMPT_FILE", ""),
	}, prettyErr
}

func metaPrompt(path string) (string, error) {
	if path == "" {
		return domain.MetaPrompt, nil
	}

	content, err := os.ReadFile(path)

	if err != nil {
		return "", err
	}

	return string(content), nil
}

func wire(config app.Config, log zerolog.Logger) (*app.App, error) {
	prompt, err := metaPrompt(config.MetaPromptFile)

	if err != nil {
		return nil, err
	}

	optimizer := app.Optimizer{
		Completions: persistence.NewOpenAIRepo(config.OpenAIBaseUrl, nil),
		Model:       config.Model,
	}

	if config.PHApiKey != "" {
		optimizer.Events = persistence.PHRepo{
			ApiKey: config.PHApiKey,
			Url:    config.PHUrl,
			Client: &http.Client{Timeout: eventTimeout},
		}
	} else {
		log.Info().Msg("POSTHOG_API_KEY not set, analytics disabled")
	}

	return app.New(config, optimizer, prompt, log), nil
}

func main() {
	envErr := godotenv.Load()

	config, configErr := config()
	log := logger.New(config.LogLevel, config.LogPretty)

	if envErr != nil {
		log.Debug().Err(envErr).Msg("No .env file loaded")
	}

	if configErr != nil {
		log.Debug().Err(configErr).Msg("Ignoring invalid LOG_PRETTY")
	}

	a, err := wire(config, log)

	if err != nil {
		log.Fatal().Err(err).Msg("Failed to wire app")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = a.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}
