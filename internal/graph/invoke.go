package graph

import (
	"context"
	"errors"
	"fmt"

	"jokebot/internal/domain/entity"
)

// DefaultRecursionLimit caps how many node executions a single Invoke may
// perform when the caller does not override it.
const DefaultRecursionLimit = 25

// ErrRecursionLimit is returned when a graph keeps cycling without
// reaching End.
var ErrRecursionLimit = errors.New("recursion limit reached")

type CompiledGraph struct {
	nodes       map[string]NodeFunc
	edges       map[string]string
	conditional map[string]conditionalEdge
	entryPoint  string
}

type invokeConfig struct {
	recursionLimit int
}

type InvokeOption func(*invokeConfig)

func WithRecursionLimit(limit int) InvokeOption {
	return func(cfg *invokeConfig) {
		if limit > 0 {
			cfg.recursionLimit = limit
		}
	}
}

// Invoke runs the graph from its entry point until a route leads to End,
// a node has no outgoing edge, or the recursion limit trips. The state
// accumulated so far is returned alongside any error.
func (g *CompiledGraph) Invoke(ctx context.Context, state entity.SessionState, opts ...InvokeOption) (entity.SessionState, error) {
	cfg := invokeConfig{recursionLimit: DefaultRecursionLimit}
	for _, opt := range opts {
		opt(&cfg)
	}

	current := g.entryPoint
	for step := 0; step < cfg.recursionLimit; step++ {
		select {
		case <-ctx.Done():
			return state, ctx.Err()
		default:
		}

		fn := g.nodes[current]
		update, err := fn(ctx, state)
		if err != nil {
			return state, fmt.Errorf("node %q: %w", current, err)
		}
		state = state.Apply(update)

		next, err := g.next(current, state)
		if err != nil {
			return state, err
		}
		if next == End {
			return state, nil
		}
		if _, ok := g.nodes[next]; !ok {
			return state, fmt.Errorf("route from %q led to unknown node %q", current, next)
		}
		current = next
	}

	return state, fmt.Errorf("%w after %d steps", ErrRecursionLimit, cfg.recursionLimit)
}

func (g *CompiledGraph) next(current string, state entity.SessionState) (string, error) {
	if ce, ok := g.conditional[current]; ok {
		path := ce.route(state)
		if len(ce.paths) == 0 {
			// No path map: the route names the node directly.
			return path, nil
		}
		target, ok := ce.paths[path]
		if !ok {
			return "", fmt.Errorf("route from %q returned unknown path %q", current, path)
		}
		return target, nil
	}
	if to, ok := g.edges[current]; ok {
		return to, nil
	}
	// A node without outgoing edges ends the graph.
	return End, nil
}
