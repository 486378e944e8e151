// Package static serves jokes from a collection embedded in the binary.
// It is the default source: no network, no API key, deterministic setup.
package static

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"

	"gopkg.in/yaml.v3"

	"jokebot/internal/application/port/output"
	"jokebot/internal/domain/entity"
)

//go:embed jokes.yaml
var jokesYAML []byte

// ErrUnknownCategory is returned for categories the collection does not
// carry. The caller is expected to validate input first; this is the
// backstop.
var ErrUnknownCategory = errors.New("unknown joke category")

var _ output.JokeSource = (*StaticSource)(nil)

type StaticSource struct {
	mu     sync.Mutex
	rng    *rand.Rand
	jokes  map[entity.Language]map[entity.Category][]string
	last   map[string]string
	logger output.LoggerPort
}

func NewStaticSource(logger output.LoggerPort) (*StaticSource, error) {
	var raw map[string]map[string][]string
	if err := yaml.Unmarshal(jokesYAML, &raw); err != nil {
		return nil, fmt.Errorf("parse embedded joke collection: %w", err)
	}

	jokes := make(map[entity.Language]map[entity.Category][]string, len(raw))
	for lang, byCategory := range raw {
		categories := make(map[entity.Category][]string, len(byCategory))
		for category, list := range byCategory {
			categories[entity.Category(category)] = list
		}
		jokes[entity.Language(lang)] = categories
	}

	return &StaticSource{
		rng:    rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		jokes:  jokes,
		last:   make(map[string]string),
		logger: logger,
	}, nil
}

func (s *StaticSource) Name() entity.SourceName {
	return entity.SourceStatic
}

func (s *StaticSource) Description() string {
	return "Built-in joke collection shipped with the binary"
}

// Fetch picks a random joke for the category and language. The same joke is
// never served twice in a row for the same category/language pair, and
// languages without a collection fall back to English.
func (s *StaticSource) Fetch(ctx context.Context, category entity.Category, language entity.Language) (*entity.Joke, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	effective := language
	byCategory, ok := s.jokes[effective]
	if !ok {
		effective = entity.LanguageEnglish
		byCategory = s.jokes[effective]
		if s.logger != nil {
			s.logger.Debug("Language not in collection, falling back",
				"requested", language,
				"effective", effective)
		}
	}

	pool, err := resolvePool(byCategory, category)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%s/%s", effective, category)
	candidates := pool
	if last, ok := s.last[key]; ok && len(pool) > 1 {
		candidates = make([]string, 0, len(pool)-1)
		for _, text := range pool {
			if text != last {
				candidates = append(candidates, text)
			}
		}
	}

	text := candidates[s.rng.IntN(len(candidates))]
	s.last[key] = text

	if s.logger != nil {
		s.logger.Debug("Joke served",
			"source", s.Name(),
			"category", category,
			"language", effective)
	}

	return &entity.Joke{
		Text:     text,
		Category: category,
		Language: effective,
	}, nil
}

func resolvePool(byCategory map[entity.Category][]string, category entity.Category) ([]string, error) {
	if category == entity.CategoryAll {
		var pool []string
		for _, c := range entity.Categories() {
			if c == entity.CategoryAll {
				continue
			}
			pool = append(pool, byCategory[c]...)
		}
		if len(pool) == 0 {
			return nil, fmt.Errorf("joke collection is empty")
		}
		return pool, nil
	}

	pool, ok := byCategory[category]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	if len(pool) == 0 {
		return nil, fmt.Errorf("no jokes in category %q", category)
	}
	return pool, nil
}
