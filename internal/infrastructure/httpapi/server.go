package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"jokebot/internal/application/port/input"
	"jokebot/internal/application/port/output"
	"jokebot/internal/domain/entity"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog"
	"golang.org/x/sync/errgroup"
)

const (
	shutdownTimeout   = 5 * time.Second
	readHeaderTimeout = 5 * time.Second
)

// Server exposes the joke service over HTTP: GET /v1/joke plus small
// discovery endpoints for categories and sources.
type Server struct {
	jokes         input.JokeService
	defaultSource entity.SourceName
	logger        output.LoggerPort
	http          *http.Server
}

// NewServer builds the API server. Requests that name no source use
// defaultSource; empty means auto.
func NewServer(addr string, jokes input.JokeService, defaultSource entity.SourceName, logger output.LoggerPort) *Server {
	if defaultSource == "" {
		defaultSource = entity.SourceAuto
	}
	s := &Server{
		jokes:         jokes,
		defaultSource: defaultSource,
		logger:        logger,
	}
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: readHeaderTimeout,
	}
	return s
}

func (s *Server) routes() http.Handler {
	requestLogger := httplog.NewLogger("jokebot-api", httplog.Options{
		JSON:    true,
		Concise: true,
	})

	r := chi.NewRouter()
	r.Use(httplog.RequestLogger(requestLogger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/joke", s.handleJoke)
		r.Get("/categories", s.handleCategories)
		r.Get("/sources", s.handleSources)
	})

	return r
}

// Handler exposes the routed handler for tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// Start serves until ctx is cancelled, then drains in-flight requests
// within the shutdown timeout.
func (s *Server) Start(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("Joke API server starting", "addr", s.http.Addr)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		s.logger.Info("Joke API server draining")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.http.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

type jokeResponse struct {
	Text     string `json:"text"`
	Category string `json:"category"`
	Language string `json:"language"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleJoke(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	category := entity.CategoryNeutral
	if raw := query.Get("category"); raw != "" {
		parsed, err := entity.ParseCategory(raw)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, err)
			return
		}
		category = parsed
	}

	language := entity.LanguageEnglish
	if raw := query.Get("lang"); raw != "" {
		parsed, err := entity.ParseLanguage(raw)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, err)
			return
		}
		language = parsed
	}

	source := s.defaultSource
	if raw := query.Get("source"); raw != "" {
		source = entity.SourceName(raw)
	}

	joke, err := s.jokes.Tell(r.Context(), input.JokeRequest{
		Category: category,
		Language: language,
		Source:   source,
	})
	if err != nil {
		if errors.Is(err, input.ErrUnknownSource) {
			s.writeError(w, http.StatusBadRequest, err)
			return
		}
		s.logger.Error("Joke request failed", "error", err)
		s.writeError(w, http.StatusBadGateway, err)
		return
	}

	s.writeJSON(w, http.StatusOK, jokeResponse{
		Text:     joke.Text,
		Category: joke.Category.String(),
		Language: joke.Language.String(),
	})
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	categories := s.jokes.Categories()
	names := make([]string, 0, len(categories))
	for _, category := range categories {
		names = append(names, category.String())
	}
	s.writeJSON(w, http.StatusOK, names)
}

func (s *Server) handleSources(w http.ResponseWriter, r *http.Request) {
	sources := s.jokes.Sources()
	names := make([]string, 0, len(sources))
	for _, source := range sources {
		names = append(names, source.String())
	}
	s.writeJSON(w, http.StatusOK, names)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("Failed to encode response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}
