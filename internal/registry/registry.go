// Package registry maps game IDs to factories. Variants register themselves
// from init functions so the CLI and the menus can list and build them
// without importing each package by name.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-match3/internal/core"
)

// Game is what the terminal front end drives. Implementations hold pure game
// logic; the platform owns input mapping, timing and drawing to the terminal.
type Game interface {
	// ID is the stable identifier used on the command line and as the score
	// key (e.g. "match3_classic").
	ID() string

	// Title is the display name.
	Title() string

	// Reset starts a fresh game for the given screen and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances one tick with the input collected since the last tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws into a pre-cleared screen.
	Render(dst *core.Screen)

	State() core.GameState
}

// Describer is implemented by games that carry a one-line description for
// listings.
type Describer interface {
	Description() string
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory creates a new, not yet Reset, game instance.
type Factory func() Game

// Registry is a set of game factories. Most callers use the package-level
// functions, which operate on a shared default registry.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
	infos     map[string]GameInfo
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
		infos:     make(map[string]GameInfo),
	}
}

// Register adds a factory. It panics if the ID is already taken.
func (r *Registry) Register(id string, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	// A throwaway instance supplies the listing metadata.
	g := f()
	info := GameInfo{ID: id, Title: g.Title()}
	if d, ok := g.(Describer); ok {
		info.Description = d.Description()
	}

	r.factories[id] = f
	r.infos[id] = info
}

// List returns every registered game sorted by ID.
func (r *Registry) List() []GameInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]GameInfo, 0, len(r.infos))
	for _, info := range r.infos {
		result = append(result, info)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create builds a new instance of the game registered under id.
func (r *Registry) Create(id string) (Game, error) {
	r.mu.RLock()
	f, ok := r.factories[id]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether id is registered.
func (r *Registry) Exists(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[id]
	return ok
}

var defaultRegistry = New()

// Register adds a factory to the default registry.
func Register(id string, f Factory) { defaultRegistry.Register(id, f) }

// List returns the games in the default registry.
func List() []GameInfo { return defaultRegistry.List() }

// Create builds a game from the default registry.
func Create(id string) (Game, error) { return defaultRegistry.Create(id) }

// Exists reports whether id is in the default registry.
func Exists(id string) bool { return defaultRegistry.Exists(id) }
