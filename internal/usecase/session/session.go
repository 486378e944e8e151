package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"jokebot/internal/application/port/input"
	"jokebot/internal/application/port/output"
	"jokebot/internal/domain/entity"
	"jokebot/internal/graph"

	"github.com/google/uuid"
)

// Node names of the interactive session graph.
const (
	nodeShowMenu       = "show_menu"
	nodeFetchJoke      = "fetch_joke"
	nodeUpdateCategory = "update_category"
	nodeExitBot        = "exit_bot"
)

// recursionLimit caps node executions per session. Each joke costs two
// steps (menu plus fetch), so this allows a comfortably long session.
const recursionLimit = 100

var _ input.SessionRunner = (*UseCase)(nil)

// UseCase runs one interactive joke session as a state graph: show the
// menu, read a choice, fetch a joke or change category, repeat until
// the user quits.
type UseCase struct {
	jokes  input.JokeService
	ui     output.UserInteractionPort
	logger output.LoggerPort
	cfg    Config
}

type Config struct {
	Category entity.Category
	Language entity.Language
	Source   entity.SourceName
}

func New(
	jokes input.JokeService,
	ui output.UserInteractionPort,
	logger output.LoggerPort,
	cfg Config,
) *UseCase {
	if cfg.Category == "" {
		cfg.Category = entity.CategoryNeutral
	}
	if cfg.Language == "" {
		cfg.Language = entity.LanguageEnglish
	}
	if cfg.Source == "" {
		cfg.Source = entity.SourceAuto
	}

	return &UseCase{
		jokes:  jokes,
		ui:     ui,
		logger: logger,
		cfg:    cfg,
	}
}

func (uc *UseCase) Run(ctx context.Context) (*entity.SessionSummary, error) {
	sessionID := uuid.NewString()
	log := uc.logger.WithField("session_id", sessionID)
	start := time.Now()

	log.Info("Starting joke session",
		"category", uc.cfg.Category.String(),
		"language", uc.cfg.Language.String(),
		"source", uc.cfg.Source.String(),
	)

	uc.ui.ShowWelcome(ctx)

	compiled, err := uc.buildGraph()
	if err != nil {
		return nil, err
	}

	state := entity.NewSessionState(uc.cfg.Category, uc.cfg.Language)
	final, err := compiled.Invoke(ctx, state, graph.WithRecursionLimit(recursionLimit))
	if err != nil {
		return nil, fmt.Errorf("session graph failed: %w", err)
	}

	summary := &entity.SessionSummary{
		ID:            sessionID,
		JokesHeard:    len(final.Jokes),
		FinalCategory: final.Category,
		Duration:      time.Since(start),
	}

	uc.ui.ShowGoodbye(ctx, *summary)

	log.Info("Session complete",
		"jokes_heard", summary.JokesHeard,
		"final_category", summary.FinalCategory.String(),
		"duration", summary.Duration.String(),
	)

	return summary, nil
}

func (uc *UseCase) buildGraph() (*graph.CompiledGraph, error) {
	return graph.NewStateGraph().
		AddNode(nodeShowMenu, uc.showMenu).
		AddNode(nodeFetchJoke, uc.fetchJoke).
		AddNode(nodeUpdateCategory, uc.updateCategory).
		AddNode(nodeExitBot, uc.exitBot).
		SetEntryPoint(nodeShowMenu).
		AddConditionalEdges(nodeShowMenu, routeChoice, map[string]string{
			nodeFetchJoke:      nodeFetchJoke,
			nodeUpdateCategory: nodeUpdateCategory,
			nodeExitBot:        nodeExitBot,
		}).
		AddEdge(nodeFetchJoke, nodeShowMenu).
		AddEdge(nodeUpdateCategory, nodeShowMenu).
		AddEdge(nodeExitBot, graph.End).
		Compile()
}

func (uc *UseCase) showMenu(ctx context.Context, state entity.SessionState) (entity.Update, error) {
	uc.ui.ShowMenu(ctx, state.Category, len(state.Jokes))

	raw, err := uc.ui.AskChoice(ctx)
	if err != nil {
		if errors.Is(err, io.EOF) {
			// Input closed (piped stdin ran out). Quit cleanly.
			uc.logger.Debug("Input closed, ending session")
			quit := entity.ChoiceQuit
			return entity.Update{Choice: &quit}, nil
		}
		return entity.Update{}, err
	}

	choice := entity.MenuChoice(raw)
	return entity.Update{Choice: &choice}, nil
}

func (uc *UseCase) fetchJoke(ctx context.Context, state entity.SessionState) (entity.Update, error) {
	req := input.JokeRequest{
		Category: state.Category,
		Language: state.Language,
		Source:   uc.cfg.Source,
	}

	joke, err := uc.jokes.Tell(ctx, req)
	if err != nil && uc.cfg.Source != entity.SourceStatic {
		// A failing remote source must not end the session while the
		// built-in collection can still serve.
		uc.logger.Warn("Joke source failed, retrying with the static source",
			"source", uc.cfg.Source.String(),
			"error", err.Error(),
		)
		req.Source = entity.SourceStatic
		if fallback, ferr := uc.jokes.Tell(ctx, req); ferr == nil {
			joke, err = fallback, nil
		}
	}
	if err != nil {
		return entity.Update{}, fmt.Errorf("fetch joke: %w", err)
	}

	uc.ui.ShowJoke(ctx, *joke)
	return entity.Update{Jokes: []entity.Joke{*joke}}, nil
}

func (uc *UseCase) updateCategory(ctx context.Context, state entity.SessionState) (entity.Update, error) {
	categories := entity.Categories()

	raw, err := uc.ui.AskCategory(ctx, categories)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return entity.Update{}, nil
		}
		return entity.Update{}, err
	}

	selection, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		uc.ui.ShowMessage(ctx, "Invalid input, keeping current category.")
		return entity.Update{}, nil
	}
	if selection < 0 || selection >= len(categories) {
		uc.ui.ShowMessage(ctx, "Invalid selection, keeping current category.")
		return entity.Update{}, nil
	}

	category := categories[selection]
	return entity.Update{Category: &category}, nil
}

func (uc *UseCase) exitBot(ctx context.Context, state entity.SessionState) (entity.Update, error) {
	quit := true
	return entity.Update{Quit: &quit}, nil
}

// routeChoice picks the next node from the menu choice. Anything outside
// the known choices ends the session.
func routeChoice(state entity.SessionState) string {
	switch state.Choice {
	case entity.ChoiceNextJoke:
		return nodeFetchJoke
	case entity.ChoiceChangeCategory:
		return nodeUpdateCategory
	case entity.ChoiceQuit:
		return nodeExitBot
	}
	return nodeExitBot
}
