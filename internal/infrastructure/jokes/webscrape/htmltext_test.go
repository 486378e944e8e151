package webscrape

import (
	"strings"
	"testing"
)

func TestExtractText_DropsScriptStyle(t *testing.T) {
	html := `
<body>
    <div id="main">Why do programmers prefer dark mode?</div>
    <script>alert("hi")</script>
    <style>.x {}</style>
</body>`

	out := ExtractText(html, &DefaultTextConfig)

	if strings.Contains(out, "alert") {
		t.Errorf("script content must be dropped, output: %s", out)
	}
	if !strings.Contains(out, "Why do programmers prefer dark mode?") {
		t.Errorf("visible text must be kept, output: %s", out)
	}
}

func TestExtractText_DropsComments(t *testing.T) {
	html := `
<body>
    <!-- tracking pixel -->
    <p>Because light attracts bugs.</p>
</body>`

	out := ExtractText(html, &DefaultTextConfig)

	if strings.Contains(out, "tracking pixel") {
		t.Errorf("HTML comments must be dropped")
	}
	if !strings.Contains(out, "Because light attracts bugs.") {
		t.Errorf("paragraph text must be kept")
	}
}

func TestExtractText_DropsPageChrome(t *testing.T) {
	html := `
<html>
<head><title>Joke of the day</title></head>
<body>
    <nav>Home | About | Contact</nav>
    <p>There are 10 kinds of people.</p>
    <footer>Copyright 2024</footer>
    <form><button>Subscribe</button></form>
</body>
</html>`

	out := ExtractText(html, &DefaultTextConfig)

	for _, chrome := range []string{"Joke of the day", "Home | About", "Copyright", "Subscribe"} {
		if strings.Contains(out, chrome) {
			t.Errorf("page chrome %q must be dropped, output: %s", chrome, out)
		}
	}
	if !strings.Contains(out, "There are 10 kinds of people.") {
		t.Errorf("joke text must be kept, output: %s", out)
	}
}

func TestExtractText_CollapsesWhitespace(t *testing.T) {
	html := "<body>\n\t<p>First   line</p>\n\t<p>Second\nline</p>\n</body>"

	out := ExtractText(html, &DefaultTextConfig)

	if out != "First line Second line" {
		t.Errorf("expected collapsed text, got %q", out)
	}
}

func TestExtractText_Truncation(t *testing.T) {
	var big strings.Builder
	big.WriteString("<body>")
	for i := 0; i < 5000; i++ {
		big.WriteString("<p>ha</p>")
	}
	big.WriteString("</body>")

	out := ExtractText(big.String(), &DefaultTextConfig)

	if len(out) > DefaultTextConfig.MaxOutputSize {
		t.Errorf("output must be truncated to %d bytes, got %d", DefaultTextConfig.MaxOutputSize, len(out))
	}
}

func TestExtractText_NoBody(t *testing.T) {
	out := ExtractText("just a fragment", &DefaultTextConfig)

	if !strings.Contains(out, "just a fragment") {
		t.Errorf("fragment text must survive without a <body>, got %q", out)
	}
}

func TestExtractText_CustomConfig(t *testing.T) {
	html := `<body><nav>menu text</nav><p>joke text</p></body>`

	cfg := TextConfig{TagsToSkip: []string{"p"}}
	out := ExtractText(html, &cfg)

	if strings.Contains(out, "joke text") {
		t.Errorf("p subtree must be dropped with custom config")
	}
	if !strings.Contains(out, "menu text") {
		t.Errorf("nav must be kept with custom config")
	}
}
