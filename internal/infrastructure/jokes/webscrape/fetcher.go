package webscrape

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"net/url"
	"strings"
	"sync"
	"time"

	"jokebot/internal/application/port/output"
	"jokebot/internal/domain/entity"

	"github.com/disintegration/imaging"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/ysmood/gson"
)

const (
	defaultTimeout     = 10 * time.Second
	screenshotMaxWidth = 1024
)

var (
	ErrBrowserNotConnected = errors.New("browser not connected")
	ErrInvalidURL          = errors.New("invalid url")
	ErrInvalidSelector     = errors.New("invalid selector")
)

var _ output.PageFetcherPort = (*RodFetcher)(nil)

// RodFetcher drives a headless Chromium instance to pull joke pages.
type RodFetcher struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	page     *rod.Page
	timeout  time.Duration
	logger   output.LoggerPort

	mu     sync.Mutex
	closed bool
}

type FetcherConfig struct {
	Headless   bool
	SlowMotion time.Duration
	Timeout    time.Duration
	NoSandbox  bool
	Logger     output.LoggerPort
}

func DefaultFetcherConfig() FetcherConfig {
	return FetcherConfig{
		Headless:   true,
		SlowMotion: 0,
		Timeout:    defaultTimeout,
		NoSandbox:  false,
	}
}

func NewRodFetcher(ctx context.Context, cfg FetcherConfig) (*RodFetcher, error) {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	l := launcher.New().
		Headless(cfg.Headless).
		NoSandbox(cfg.NoSandbox).
		Delete("use-mock-keychain")

	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	browser := rod.New().
		ControlURL(controlURL).
		SlowMotion(cfg.SlowMotion).
		MustConnect()

	page := browser.MustPage("about:blank")

	return &RodFetcher{
		browser:  browser,
		launcher: l,
		page:     page,
		timeout:  cfg.Timeout,
		logger:   cfg.Logger,
	}, nil
}

func (f *RodFetcher) IsReady() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return !f.closed && f.browser != nil
}

func (f *RodFetcher) Navigate(ctx context.Context, rawURL string) error {
	if !f.IsReady() {
		return ErrBrowserNotConnected
	}
	if err := validateURL(rawURL); err != nil {
		return err
	}

	if f.logger != nil {
		f.logger.Debug("Navigating to page",
			"url", rawURL,
		)
	}

	if err := f.page.Context(ctx).Navigate(rawURL); err != nil {
		return fmt.Errorf("navigation failed: %w", err)
	}
	f.page.MustWaitLoad()
	f.page.WaitIdle(5 * time.Second)
	return nil
}

// GetElementText returns the trimmed text of the first element matching
// selector. XPath selectors are recognized by a leading "/", "(" or an
// explicit "xpath=" prefix.
func (f *RodFetcher) GetElementText(ctx context.Context, selector string) (string, error) {
	if !f.IsReady() {
		return "", ErrBrowserNotConnected
	}
	if strings.TrimSpace(selector) == "" {
		return "", ErrInvalidSelector
	}

	var el *rod.Element
	var err error
	if isXPathSelector(selector) {
		el, err = f.page.Timeout(f.timeout).ElementX(strings.TrimPrefix(selector, "xpath="))
	} else {
		el, err = f.page.Timeout(f.timeout).Element(selector)
	}
	if err != nil {
		return "", fmt.Errorf("element not found: %s: %w", selector, err)
	}

	text, err := el.Text()
	if err != nil {
		return "", fmt.Errorf("failed to read element text: %w", err)
	}
	return strings.TrimSpace(text), nil
}

// GetPageText returns the visible text of the current page body with
// script, style and navigation chrome stripped out.
func (f *RodFetcher) GetPageText(ctx context.Context) (string, error) {
	if !f.IsReady() {
		return "", ErrBrowserNotConnected
	}

	body, err := f.page.Timeout(f.timeout).Element("body")
	if err != nil {
		return "", fmt.Errorf("body not found: %w", err)
	}

	rawHTML, err := body.HTML()
	if err != nil {
		return "", fmt.Errorf("failed to get HTML: %w", err)
	}

	return ExtractText(rawHTML, nil), nil
}

func (f *RodFetcher) Screenshot(ctx context.Context) (*entity.Screenshot, error) {
	if !f.IsReady() {
		return nil, ErrBrowserNotConnected
	}

	imgBytes, err := f.page.Screenshot(true, &proto.PageCaptureScreenshot{
		Format:  proto.PageCaptureScreenshotFormatJpeg,
		Quality: gson.Int(80),
	})
	if err != nil {
		return nil, fmt.Errorf("screenshot failed: %w", err)
	}

	img, _, err := image.Decode(bytes.NewReader(imgBytes))
	if err != nil {
		return nil, fmt.Errorf("image decode failed: %w", err)
	}

	if img.Bounds().Dx() > screenshotMaxWidth {
		img = imaging.Resize(img, screenshotMaxWidth, 0, imaging.Lanczos)
	}

	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: 75}); err != nil {
		return nil, fmt.Errorf("jpeg encode failed: %w", err)
	}

	return &entity.Screenshot{
		Data:   buf.Bytes(),
		Format: "jpeg",
		Width:  img.Bounds().Dx(),
		Height: img.Bounds().Dy(),
	}, nil
}

func (f *RodFetcher) CurrentURL() string {
	if !f.IsReady() {
		return ""
	}
	return f.page.MustInfo().URL
}

func (f *RodFetcher) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	f.closed = true

	if f.browser != nil {
		_ = f.browser.Close()
	}
	if f.launcher != nil {
		f.launcher.Kill()
		f.launcher.Cleanup()
	}
}

func isXPathSelector(selector string) bool {
	return strings.HasPrefix(selector, "/") ||
		strings.HasPrefix(selector, "(") ||
		strings.HasPrefix(selector, "xpath=")
}

func validateURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidURL, rawURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: unsupported scheme %q", ErrInvalidURL, u.Scheme)
	}
	return nil
}
