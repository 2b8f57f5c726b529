package registry

import (
	"sort"
	"testing"

	"github.com/vovakirdan/snowball-arcade/internal/core"
)

type stubGame struct {
	id    string
	title string
}

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return g.title }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }

type describedGame struct {
	stubGame
	tags []string
}

func (g *describedGame) Description() string { return "rolls downhill" }
func (g *describedGame) Tags() []string { return g.tags }

func TestRegisterAndCreate(t *testing.T) {
	Register("test-plain", func() Game { return &stubGame{id: "test-plain", title: "Plain"} })

	if !Exists("test-plain") {
		t.Fatal("Exists() = false after Register")
	}
	g, err := Create("test-plain")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.Title() != "Plain" {
		t.Errorf("Title() = %q, expected %q", g.Title(), "Plain")
	}
	if _, err := Create("test-missing"); err == nil {
		t.Error("Create() of an unknown ID should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	f := func() Game { return &stubGame{id: "test-dup", title: "Dup"} }
	Register("test-dup", f)

	defer func() {
		if recover() == nil {
			t.Error("Register() of a duplicate ID should panic")
		}
	}()
	Register("test-dup", f)
}

func TestMetadataAndTags(t *testing.T) {
	Register("test-described", func() Game {
		return &describedGame{stubGame: stubGame{id: "test-described", title: "Described"}, tags: []string{"Physics", "test-only"}}
	})

	var info GameInfo
	for _, gi := range List() {
		if gi.ID == "test-described" {
			info = gi
		}
	}
	if info.Description != "rolls downhill" {
		t.Errorf("Description = %q, expected %q", info.Description, "rolls downhill")
	}
	if !info.HasTag("physics") {
		t.Errorf("HasTag(%q) = false for tags %v", "physics", info.Tags)
	}

	found := ByTag("TEST-ONLY")
	if len(found) != 1 || found[0].ID != "test-described" {
		t.Errorf("ByTag() = %v, expected only test-described", found)
	}
	if got := ByTag("no-such-tag"); len(got) != 0 {
		t.Errorf("ByTag() = %v, expected none", got)
	}

	tags := Tags()
	for _, want := range []string{"physics", "test-only"} {
		if !contains(tags, want) {
			t.Errorf("Tags() = %v, missing %q", tags, want)
		}
	}
	if !sort.StringsAreSorted(tags) {
		t.Errorf("Tags() = %v, expected sorted", tags)
	}
}

func TestListSorted(t *testing.T) {
	Register("test-b", func() Game { return &stubGame{id: "test-b", title: "B"} })
	Register("test-a", func() Game { return &stubGame{id: "test-a", title: "A"} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("List() not sorted at %d: %q >= %q", i, list[i-1].ID, list[i].ID)
		}
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
