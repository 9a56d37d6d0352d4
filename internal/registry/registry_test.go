package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-match3/internal/core"
)

type stubGame struct {
	id, title, desc string
	resets          int
}

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return g.title }
func (g *stubGame) Description() string { return g.desc }
func (g *stubGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }

func factory(id, title, desc string) Factory {
	return func() Game { return &stubGame{id: id, title: title, desc: desc} }
}

func TestRegistryListSorted(t *testing.T) {
	r := New()
	r.Register("zeta", factory("zeta", "Zeta", ""))
	r.Register("alpha", factory("alpha", "Alpha", "first"))

	list := r.List()
	if len(list) != 2 {
		t.Fatalf("List() returned %d games, expected 2", len(list))
	}
	if list[0].ID != "alpha" || list[1].ID != "zeta" {
		t.Errorf("List() not sorted: %+v", list)
	}
	if list[0].Title != "Alpha" || list[0].Description != "first" {
		t.Errorf("metadata not captured: %+v", list[0])
	}
}

func TestRegistryCreate(t *testing.T) {
	r := New()
	r.Register("one", factory("one", "One", ""))

	a, err := r.Create("one")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	b, err := r.Create("one")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if a == b {
		t.Error("Create should return a fresh instance each call")
	}
	if a.(*stubGame).resets != 0 {
		t.Error("Create must not Reset the game")
	}

	_, err = r.Create("missing")
	if err == nil || !strings.Contains(err.Error(), "missing") {
		t.Errorf("Create(missing) error = %v", err)
	}
	if r.Exists("missing") || !r.Exists("one") {
		t.Error("Exists() mismatch")
	}
}

func TestRegistryDuplicatePanics(t *testing.T) {
	r := New()
	r.Register("dup", factory("dup", "Dup", ""))

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	r.Register("dup", factory("dup", "Dup", ""))
}
