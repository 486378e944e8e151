// Package graph is a small state-machine engine for interactive flows.
// Nodes receive the current session state and return a partial update;
// edges (static or routed) decide which node runs next until End is
// reached or the recursion limit trips.
package graph

import (
	"context"
	"errors"
	"fmt"

	"jokebot/internal/domain/entity"
)

// End is the terminal pseudo-node. Routing to it stops the graph.
const End = "__end__"

type NodeFunc func(ctx context.Context, state entity.SessionState) (entity.Update, error)

// RouteFunc inspects the state after a node ran and names the path to take.
type RouteFunc func(state entity.SessionState) string

type conditionalEdge struct {
	route RouteFunc
	paths map[string]string
}

type StateGraph struct {
	nodes       map[string]NodeFunc
	order       []string
	edges       map[string]string
	conditional map[string]conditionalEdge
	entryPoint  string
	errs        []error
}

func NewStateGraph() *StateGraph {
	return &StateGraph{
		nodes:       make(map[string]NodeFunc),
		edges:       make(map[string]string),
		conditional: make(map[string]conditionalEdge),
	}
}

func (g *StateGraph) AddNode(name string, fn NodeFunc) *StateGraph {
	if name == End {
		g.errs = append(g.errs, fmt.Errorf("node name %q is reserved", End))
		return g
	}
	if fn == nil {
		g.errs = append(g.errs, fmt.Errorf("node %q has a nil func", name))
		return g
	}
	if _, exists := g.nodes[name]; exists {
		g.errs = append(g.errs, fmt.Errorf("node %q is already defined", name))
		return g
	}
	g.nodes[name] = fn
	g.order = append(g.order, name)
	return g
}

func (g *StateGraph) SetEntryPoint(name string) *StateGraph {
	g.entryPoint = name
	return g
}

func (g *StateGraph) AddEdge(from, to string) *StateGraph {
	if _, dup := g.edges[from]; dup {
		g.errs = append(g.errs, fmt.Errorf("node %q already has an outgoing edge", from))
		return g
	}
	g.edges[from] = to
	return g
}

// AddConditionalEdges wires a router onto from. The router's return value is
// looked up in paths to find the next node.
func (g *StateGraph) AddConditionalEdges(from string, route RouteFunc, paths map[string]string) *StateGraph {
	if route == nil {
		g.errs = append(g.errs, fmt.Errorf("conditional edge from %q has a nil route", from))
		return g
	}
	if _, dup := g.conditional[from]; dup {
		g.errs = append(g.errs, fmt.Errorf("node %q already has conditional edges", from))
		return g
	}
	g.conditional[from] = conditionalEdge{route: route, paths: paths}
	return g
}

// Compile validates the graph and freezes it for execution.
func (g *StateGraph) Compile() (*CompiledGraph, error) {
	errs := make([]error, len(g.errs))
	copy(errs, g.errs)

	if g.entryPoint == "" {
		errs = append(errs, errors.New("entry point is not set"))
	} else if _, ok := g.nodes[g.entryPoint]; !ok {
		errs = append(errs, fmt.Errorf("entry point %q is not a node", g.entryPoint))
	}

	for _, from := range g.order {
		_, hasEdge := g.edges[from]
		_, hasConditional := g.conditional[from]
		if hasEdge && hasConditional {
			errs = append(errs, fmt.Errorf("node %q has both a static edge and conditional edges", from))
		}
	}
	for from, to := range g.edges {
		if _, ok := g.nodes[from]; !ok {
			errs = append(errs, fmt.Errorf("edge starts at unknown node %q", from))
		}
		if to != End {
			if _, ok := g.nodes[to]; !ok {
				errs = append(errs, fmt.Errorf("edge from %q targets unknown node %q", from, to))
			}
		}
	}
	for from, ce := range g.conditional {
		if _, ok := g.nodes[from]; !ok {
			errs = append(errs, fmt.Errorf("conditional edge starts at unknown node %q", from))
		}
		for path, to := range ce.paths {
			if to != End {
				if _, ok := g.nodes[to]; !ok {
					errs = append(errs, fmt.Errorf("path %q from %q targets unknown node %q", path, from, to))
				}
			}
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("compile graph: %w", errors.Join(errs...))
	}

	compiled := &CompiledGraph{
		nodes:       g.nodes,
		edges:       g.edges,
		conditional: g.conditional,
		entryPoint:  g.entryPoint,
	}
	return compiled, nil
}
