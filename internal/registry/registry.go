// Package registry is the round catalog. Rounds register themselves in
// init() functions, so the platform can discover and instantiate them
// without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/samber/lo"

	"github.com/vibeware/microware/internal/core"
)

// Round is the capability interface every microgame implements.
// Rounds contain pure logic with no external dependencies (especially no
// Bubble Tea); the platform handles key mapping, timing and display.
type Round interface {
	// ID returns a unique identifier for this round (e.g. "catch").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Prompt returns the short imperative shown before the round starts
	// (e.g. "CATCH!").
	Prompt() string

	// Description explains the round in one sentence, for listings.
	Description() string

	// Controls describes the keys the round reacts to.
	Controls() string

	// Duration returns the base time budget at speed 1.0. The session
	// compresses it as the speed multiplier grows.
	Duration() time.Duration

	// Reset initializes or re-initializes the round state. Called once
	// before the round becomes active.
	Reset(cfg core.RuntimeConfig)

	// Step advances the round by one tick and reports a verdict. The first
	// non-pending verdict is final; anything reported afterwards is
	// ignored. Rounds that win by surviving must report VerdictWon from
	// the tick where Frame.TicksLeft reaches zero.
	Step(f core.Frame) core.Verdict

	// Render draws the current round state into the screen buffer.
	Render(dst *core.Screen)

	// Teardown releases anything the round holds between ticks. Called
	// exactly once per play, on every outcome path.
	Teardown()
}

// Info is the static descriptor of a registered round.
type Info struct {
	ID          string
	Title       string
	Prompt      string
	Description string
	Controls    string
}

// Factory creates a fresh instance of a round.
type Factory func() Round

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]Info)
	mu        sync.RWMutex
)

// Register adds a round factory to the catalog. Typically called from a
// round's init() function. Panics if the ID is already taken.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: round %q already registered", id))
	}
	factories[id] = f

	// Capture the descriptor from a throwaway instance.
	r := f()
	infos[id] = Info{
		ID:          id,
		Title:       r.Title(),
		Prompt:      r.Prompt(),
		Description: r.Description(),
		Controls:    r.Controls(),
	}
}

// List returns descriptors for all registered rounds, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := lo.Values(infos)
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// IDs returns the sorted identifiers of all registered rounds.
func IDs() []string {
	return lo.Map(List(), func(info Info, _ int) string { return info.ID })
}

// Create instantiates a new round by its ID.
func Create(id string) (Round, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown round %q", id)
	}
	return f(), nil
}

// Exists checks whether a round with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
