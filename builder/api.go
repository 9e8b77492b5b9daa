// SPDX-License-Identifier: MIT
// Package: kruskalbench/builder
//
// api.go — public entry-points for the builder package.
//
// Design contract:
//   - Build(bopts, con) resolves cfg and runs one constructor.
//   - Generate(mode, n, m, opts...) maps a Mode to its constructor and builds it.
//   - All factories are implemented in impl_*.go.
//   - Determinism: same inputs/options/seed ⇒ identical edge lists.

package builder

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/kruskalbench/core"
)

// Constructor produces an edge list from the resolved builderConfig.
// Constructors MUST validate parameters early, return sentinel errors
// (never panic) and emit edges in a stable order for a fixed RNG state.
type Constructor func(cfg builderConfig) ([]core.Edge, error)

// Mode selects a topology for Generate.
type Mode int

const (
	// ModeRandom is the generic mode: Random(n, m).
	ModeRandom Mode = iota
	// ModeTree builds a random spanning tree: Tree(n); m is ignored.
	ModeTree
	// ModeComplete builds K_n: Complete(n); m is ignored.
	ModeComplete
	// ModeCycle builds the ring C_n: Cycle(n); m is ignored.
	ModeCycle
)

// String returns the lowercase mode name.
func (m Mode) String() string {
	switch m {
	case ModeTree:
		return "tree"
	case ModeComplete:
		return "complete"
	case ModeCycle:
		return "cycle"
	default:
		return "random"
	}
}

// ParseMode maps a topology request to a Mode. Matching is case-insensitive;
// any unrecognised string (including "normal" and "") selects ModeRandom.
func ParseMode(s string) Mode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tree":
		return ModeTree
	case "complete":
		return ModeComplete
	case "cycle":
		return ModeCycle
	default:
		return ModeRandom
	}
}

// Build resolves the builder configuration from bopts and runs con.
// Constructor errors are wrapped with "Build: %w".
func Build(bopts []BuilderOption, con Constructor) ([]core.Edge, error) {
	if con == nil {
		return nil, fmt.Errorf("Build: nil constructor: %w", ErrConstructFailed)
	}

	edges, err := con(newBuilderConfig(bopts...))
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	return edges, nil
}

// Generate builds the topology selected by mode over the given vertex count.
// edges is the target edge count for ModeRandom and ignored otherwise.
func Generate(mode Mode, vertices, edges int, opts ...BuilderOption) ([]core.Edge, error) {
	var con Constructor
	switch mode {
	case ModeTree:
		con = Tree(vertices)
	case ModeComplete:
		con = Complete(vertices)
	case ModeCycle:
		con = Cycle(vertices)
	default:
		con = Random(vertices, edges)
	}

	return Build(opts, con)
}
