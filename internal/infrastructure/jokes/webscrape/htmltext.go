package webscrape

import (
	"strings"

	"golang.org/x/net/html"
)

type TextConfig struct {
	// TagsToSkip subtrees are dropped entirely.
	TagsToSkip    []string
	MaxOutputSize int
}

var DefaultTextConfig = TextConfig{
	TagsToSkip: []string{
		"script", "style", "noscript", "svg", "iframe",
		"head", "title", "nav", "header", "footer", "form", "button",
	},
	MaxOutputSize: 8_000,
}

// ExtractText renders the visible text of an HTML fragment. Page chrome
// (scripts, styles, navigation, forms) is dropped and whitespace is
// collapsed to single spaces.
func ExtractText(rawHTML string, cfg *TextConfig) string {
	if cfg == nil {
		cfg = &DefaultTextConfig
	}

	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return ""
	}

	root := findBodyNode(doc)
	if root == nil {
		root = doc
	}

	var sb strings.Builder
	collectText(root, cfg, &sb)

	text := collapseWhitespace(sb.String())
	if cfg.MaxOutputSize > 0 && len(text) > cfg.MaxOutputSize {
		text = text[:cfg.MaxOutputSize]
	}
	return text
}

func findBodyNode(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBodyNode(c); b != nil {
			return b
		}
	}
	return nil
}

func collectText(n *html.Node, cfg *TextConfig, sb *strings.Builder) {
	switch n.Type {
	case html.CommentNode:
		return
	case html.TextNode:
		sb.WriteString(n.Data)
		sb.WriteString(" ")
		return
	case html.ElementNode:
		if isOneOf(n.Data, cfg.TagsToSkip...) {
			return
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, cfg, sb)
	}
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func isOneOf(s string, candidates ...string) bool {
	for _, c := range candidates {
		if s == c {
			return true
		}
	}
	return false
}
