package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"jokebot/internal/di"
	"jokebot/internal/domain/entity"
	"jokebot/internal/infrastructure/env"
)

const defaultOpenAIModel = "gpt-4o-mini"

func runSession(cmd *cobra.Command, args []string) error {
	envService, err := loadEnv()
	if err != nil {
		return err
	}

	cfg, err := containerConfig(envService, "session")
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	container, err := di.NewContainer(ctx, cfg)
	if err != nil {
		return err
	}
	defer container.Close()

	if _, err := container.Session.Run(ctx); err != nil {
		container.Logger.Error("Session failed", "error", err)
		return err
	}
	return nil
}

func loadEnv() (*env.EnvService, error) {
	if envFile != "" {
		return env.NewEnvServiceWithFile(envFile)
	}
	return env.NewEnvService(), nil
}

// containerConfig assembles the container configuration from the
// environment. Flags layer their overrides on top in the command that
// owns them.
func containerConfig(envService *env.EnvService, logName string) (di.Config, error) {
	cfg := di.Config{
		Verbose: verbose,
		LogDir:  envService.GetWithDefault("LOG_DIR", "log"),
		LogName: logName,

		OpenAIAPIKey:  envService.Get("OPENAI_API_KEY"),
		OpenAIModel:   envService.GetWithDefault("OPENAI_MODEL", defaultOpenAIModel),
		OpenAIBaseURL: envService.Get("OPENAI_BASE_URL"),

		PromptsFile: envService.Get("PROMPTS_FILE"),

		ScrapeURL:         envService.Get("WEBSCRAPE_URL"),
		ScrapeSelector:    envService.Get("WEBSCRAPE_SELECTOR"),
		ScrapeTimeout:     envService.GetDuration("WEBSCRAPE_TIMEOUT", 10*time.Second),
		ScrapeScreenshots: envService.GetBool("WEBSCRAPE_SCREENSHOT", false),
	}

	source, err := entity.ParseSourceName(envService.GetWithDefault("JOKES_SOURCE", entity.SourceAuto.String()))
	if err != nil {
		return di.Config{}, fmt.Errorf("JOKES_SOURCE: %w", err)
	}
	cfg.Source = source

	if raw := envService.Get("JOKES_CATEGORY"); raw != "" {
		category, err := entity.ParseCategory(raw)
		if err != nil {
			return di.Config{}, fmt.Errorf("JOKES_CATEGORY: %w", err)
		}
		cfg.Category = category
	}

	if raw := envService.Get("JOKES_LANGUAGE"); raw != "" {
		language, err := entity.ParseLanguage(raw)
		if err != nil {
			return di.Config{}, fmt.Errorf("JOKES_LANGUAGE: %w", err)
		}
		cfg.Language = language
	}

	if raw := envService.Get("WEBSCRAPE_LANGUAGE"); raw != "" {
		language, err := entity.ParseLanguage(raw)
		if err != nil {
			return di.Config{}, fmt.Errorf("WEBSCRAPE_LANGUAGE: %w", err)
		}
		cfg.ScrapeLanguage = language
	}

	return cfg, nil
}
