package entity

import "fmt"

type SourceName string

const (
	SourceStatic    SourceName = "static"
	SourceOpenAI    SourceName = "openai"
	SourceWebScrape SourceName = "webscrape"

	// SourceAuto is not a source itself: it resolves to openai when an API
	// key is configured and to static otherwise.
	SourceAuto SourceName = "auto"
)

func ParseSourceName(s string) (SourceName, error) {
	switch SourceName(s) {
	case SourceStatic, SourceOpenAI, SourceWebScrape, SourceAuto:
		return SourceName(s), nil
	}
	return "", fmt.Errorf("unknown source %q (expected one of: static, openai, webscrape, auto)", s)
}

func (s SourceName) String() string {
	return string(s)
}
