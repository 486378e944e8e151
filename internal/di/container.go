package di

import (
	"context"
	"fmt"
	"time"

	"jokebot/internal/application/port/input"
	"jokebot/internal/application/port/output"
	"jokebot/internal/application/service"
	"jokebot/internal/domain/entity"
	"jokebot/internal/infrastructure/jokes/static"
	"jokebot/internal/infrastructure/jokes/webscrape"
	"jokebot/internal/infrastructure/llm/openaiclient"
	"jokebot/internal/infrastructure/logger"
	"jokebot/internal/infrastructure/prompts"
	"jokebot/internal/infrastructure/userinteraction"
	"jokebot/internal/usecase/composer"
	"jokebot/internal/usecase/critic"
	"jokebot/internal/usecase/delivery"
	"jokebot/internal/usecase/session"
)

// Container wires the joke bot together: logger, prompt store, joke
// sources, and the usecases the commands run.
type Container struct {
	Logger  output.LoggerPort
	Prompts *prompts.Builder
	LLM     output.LLMPort
	Sources output.SourceRegistry
	Jokes   input.JokeService
	Session input.SessionRunner

	fetcher output.PageFetcherPort
}

type Config struct {
	Verbose bool
	LogDir  string
	LogName string

	// OpenAIAPIKey enables the LLM writer/critic source when set.
	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string

	// PromptsFile overrides the embedded prompt templates.
	PromptsFile string

	// Session defaults; empty values fall back to neutral/en/auto.
	Source   entity.SourceName
	Category entity.Category
	Language entity.Language

	// ScrapeURL enables the headless-browser source when set.
	ScrapeURL         string
	ScrapeSelector    string
	ScrapeLanguage    entity.Language
	ScrapeTimeout     time.Duration
	ScrapeScreenshots bool
}

func NewContainer(ctx context.Context, cfg Config) (*Container, error) {
	if cfg.LogDir == "" {
		cfg.LogDir = "log"
	}

	log, err := logger.NewLoggerAdapter(cfg.LogDir, cfg.LogName, cfg.Verbose)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	builder, err := buildPrompts(cfg.PromptsFile)
	if err != nil {
		log.Close()
		return nil, err
	}

	c := &Container{
		Logger:  log,
		Prompts: builder,
	}

	sources := service.NewSourceRegistry()

	staticSource, err := static.NewStaticSource(log)
	if err != nil {
		log.Close()
		return nil, fmt.Errorf("failed to load joke collection: %w", err)
	}
	sources.Register(staticSource)

	if cfg.OpenAIAPIKey != "" {
		llm := openaiclient.NewOpenAIAdapter(openaiclient.Config{
			APIKey:  cfg.OpenAIAPIKey,
			Model:   cfg.OpenAIModel,
			BaseURL: cfg.OpenAIBaseURL,
			Logger:  log,
		})
		c.LLM = llm

		jokeCritic := critic.New(llm, builder, log)
		sources.Register(composer.New(llm, jokeCritic, builder, log))
	}

	if cfg.ScrapeURL != "" {
		scrapeSource, err := c.buildScrapeSource(ctx, cfg, log)
		if err != nil {
			c.Close()
			return nil, err
		}
		sources.Register(scrapeSource)
	}

	jokes := delivery.New(sources, log)
	ui := userinteraction.NewConsoleUserInteraction()

	c.Sources = sources
	c.Jokes = jokes
	c.Session = session.New(jokes, ui, log, session.Config{
		Category: cfg.Category,
		Language: cfg.Language,
		Source:   cfg.Source,
	})

	return c, nil
}

func (c *Container) Close() {
	if c.fetcher != nil {
		c.fetcher.Close()
	}
	if c.Logger != nil {
		c.Logger.Close()
	}
}

func buildPrompts(path string) (*prompts.Builder, error) {
	if path == "" {
		builder, err := prompts.NewBuilder()
		if err != nil {
			return nil, fmt.Errorf("failed to load prompts: %w", err)
		}
		return builder, nil
	}
	builder, err := prompts.NewBuilderFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load prompts: %w", err)
	}
	return builder, nil
}

// buildScrapeSource starts the headless browser and wraps it as a joke
// source. The browser is held on the container for Close.
func (c *Container) buildScrapeSource(ctx context.Context, cfg Config, log output.LoggerPort) (output.JokeSource, error) {
	fetcherCfg := webscrape.DefaultFetcherConfig()
	fetcherCfg.Logger = log
	if cfg.ScrapeTimeout > 0 {
		fetcherCfg.Timeout = cfg.ScrapeTimeout
	}

	fetcher, err := webscrape.NewRodFetcher(ctx, fetcherCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to start scrape browser: %w", err)
	}
	c.fetcher = fetcher

	scrapeCfg := webscrape.ScrapeConfig{
		URL:      cfg.ScrapeURL,
		Selector: cfg.ScrapeSelector,
		Language: cfg.ScrapeLanguage,
		Timeout:  cfg.ScrapeTimeout,
	}
	if cfg.ScrapeScreenshots {
		scrapeCfg.ScreenshotDir = cfg.LogDir
	}

	source, err := webscrape.NewWebScrapeSource(fetcher, scrapeCfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create scrape source: %w", err)
	}
	return source, nil
}
