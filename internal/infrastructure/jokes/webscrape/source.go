package webscrape

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"jokebot/internal/application/port/output"
	"jokebot/internal/domain/entity"
)

var _ output.JokeSource = (*WebScrapeSource)(nil)

// WebScrapeSource pulls jokes from a configured web page through a
// PageFetcherPort. The scraped site decides the actual content, so the
// requested category only selects between configured page URLs.
type WebScrapeSource struct {
	fetcher output.PageFetcherPort
	cfg     ScrapeConfig
	logger  output.LoggerPort
}

type ScrapeConfig struct {
	// URL is the page scraped when no category specific page is set.
	URL string
	// CategoryURLs overrides URL for individual categories.
	CategoryURLs map[entity.Category]string
	// Selector locates the joke element on the page. When empty the
	// whole page text is used.
	Selector string
	// Language of the configured site. Defaults to English.
	Language entity.Language
	// Timeout bounds a single fetch.
	Timeout time.Duration
	// ScreenshotDir, when set, receives a capture of every scraped page
	// for debugging. Capture failures never fail the fetch.
	ScreenshotDir string
}

func NewWebScrapeSource(fetcher output.PageFetcherPort, cfg ScrapeConfig, logger output.LoggerPort) (*WebScrapeSource, error) {
	if fetcher == nil {
		return nil, errors.New("webscrape source requires a page fetcher")
	}
	if cfg.URL == "" && len(cfg.CategoryURLs) == 0 {
		return nil, errors.New("webscrape source requires a page url")
	}
	if cfg.Language == "" {
		cfg.Language = entity.LanguageEnglish
	}

	return &WebScrapeSource{
		fetcher: fetcher,
		cfg:     cfg,
		logger:  logger,
	}, nil
}

func (s *WebScrapeSource) Name() entity.SourceName {
	return entity.SourceWebScrape
}

func (s *WebScrapeSource) Description() string {
	return "scrapes jokes from a configured web page"
}

func (s *WebScrapeSource) Fetch(ctx context.Context, category entity.Category, language entity.Language) (*entity.Joke, error) {
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	pageURL := s.pageURL(category)
	if pageURL == "" {
		return nil, fmt.Errorf("no page configured for category %q", category)
	}

	if err := s.fetcher.Navigate(ctx, pageURL); err != nil {
		return nil, fmt.Errorf("failed to open joke page: %w", err)
	}

	var text string
	var err error
	if s.cfg.Selector != "" {
		text, err = s.fetcher.GetElementText(ctx, s.cfg.Selector)
	} else {
		text, err = s.fetcher.GetPageText(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read joke from %s: %w", pageURL, err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("no joke text found at %s", pageURL)
	}

	if s.cfg.ScreenshotDir != "" {
		s.saveScreenshot(ctx, pageURL)
	}

	if s.logger != nil {
		s.logger.Debug("Scraped joke",
			"url", pageURL,
			"chars", len(text),
		)
	}

	return &entity.Joke{
		Text:     text,
		Category: category,
		Language: s.cfg.Language,
	}, nil
}

func (s *WebScrapeSource) pageURL(category entity.Category) string {
	if u, ok := s.cfg.CategoryURLs[category]; ok {
		return u
	}
	return s.cfg.URL
}

// saveScreenshot stores a debug capture of the scraped page. It is best
// effort: failures are logged, never returned.
func (s *WebScrapeSource) saveScreenshot(ctx context.Context, pageURL string) {
	shot, err := s.fetcher.Screenshot(ctx)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("Screenshot failed", "url", pageURL, "error", err)
		}
		return
	}

	name := fmt.Sprintf("scrape_%s.%s", time.Now().Format("2006-01-02_15-04-05"), shot.Format)
	path := filepath.Join(s.cfg.ScreenshotDir, name)
	if err := os.WriteFile(path, shot.Data, 0644); err != nil {
		if s.logger != nil {
			s.logger.Warn("Screenshot write failed", "path", path, "error", err)
		}
		return
	}

	if s.logger != nil {
		s.logger.Debug("Screenshot saved",
			"path", path,
			"width", shot.Width,
			"height", shot.Height,
		)
	}
}
