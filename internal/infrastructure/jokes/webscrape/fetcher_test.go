package webscrape

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultFetcherConfig(t *testing.T) {
	cfg := DefaultFetcherConfig()

	assert.True(t, cfg.Headless)
	assert.Equal(t, defaultTimeout, cfg.Timeout)
	assert.False(t, cfg.NoSandbox, "Should be secure by default")
}

func TestIsXPathSelector(t *testing.T) {
	tests := []struct {
		name     string
		selector string
		expected bool
	}{
		{"XPath with slash", "//div", true},
		{"XPath with parenthesis", "(//div)", true},
		{"XPath with prefix", "xpath=//div", true},
		{"CSS selector", "#joke", false},
		{"CSS class", ".joke-text", false},
		{"CSS element", "blockquote", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, isXPathSelector(tt.selector))
		})
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"HTTP", "http://example.com", false},
		{"HTTPS", "https://jokes.example.com/today", false},
		{"Empty", "", true},
		{"FTP", "ftp://example.com", true},
		{"JavaScript", "javascript:alert(1)", true},
		{"Relative", "/today", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateURL(tt.url)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidURL)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRodFetcher_Scrape(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping browser test in short mode")
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, `<!DOCTYPE html>
<html>
<head><title>Joke of the day</title></head>
<body>
	<nav>Home | Archive</nav>
	<blockquote id="joke">Why do Java developers wear glasses? Because they can't C#.</blockquote>
	<script>console.log('tracking');</script>
</body>
</html>`)
	}))
	defer server.Close()

	ctx := context.Background()
	fetcher, err := NewRodFetcher(ctx, DefaultFetcherConfig())
	require.NoError(t, err)
	defer fetcher.Close()

	err = fetcher.Navigate(ctx, server.URL)
	require.NoError(t, err)
	assert.Equal(t, server.URL+"/", fetcher.CurrentURL())

	text, err := fetcher.GetElementText(ctx, "#joke")
	require.NoError(t, err)
	assert.Contains(t, text, "Why do Java developers wear glasses?")

	pageText, err := fetcher.GetPageText(ctx)
	require.NoError(t, err)
	assert.Contains(t, pageText, "Because they can't C#.")
	assert.NotContains(t, pageText, "console.log")

	screenshot, err := fetcher.Screenshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, "jpeg", screenshot.Format)
	assert.NotEmpty(t, screenshot.Data)
	assert.LessOrEqual(t, screenshot.Width, screenshotMaxWidth)
}

func TestRodFetcher_Navigate_InvalidURL(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping browser test in short mode")
	}

	ctx := context.Background()
	fetcher, err := NewRodFetcher(ctx, DefaultFetcherConfig())
	require.NoError(t, err)
	defer fetcher.Close()

	tests := []struct {
		name string
		url  string
	}{
		{"Empty URL", ""},
		{"Invalid scheme", "ftp://example.com"},
		{"JavaScript URL", "javascript:alert(1)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := fetcher.Navigate(ctx, tt.url)
			assert.ErrorIs(t, err, ErrInvalidURL)
		})
	}
}

func TestRodFetcher_ClosedState(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping browser test in short mode")
	}

	ctx := context.Background()
	fetcher, err := NewRodFetcher(ctx, DefaultFetcherConfig())
	require.NoError(t, err)

	fetcher.Close()
	assert.False(t, fetcher.IsReady())

	err = fetcher.Navigate(ctx, "http://example.com")
	assert.ErrorIs(t, err, ErrBrowserNotConnected)

	_, err = fetcher.GetElementText(ctx, "#joke")
	assert.ErrorIs(t, err, ErrBrowserNotConnected)

	_, err = fetcher.GetPageText(ctx)
	assert.ErrorIs(t, err, ErrBrowserNotConnected)

	_, err = fetcher.Screenshot(ctx)
	assert.ErrorIs(t, err, ErrBrowserNotConnected)

	assert.Empty(t, fetcher.CurrentURL())

	assert.NotPanics(t, func() {
		fetcher.Close()
	})
}
