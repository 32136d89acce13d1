package registry

import (
	"testing"

	"github.com/vovakirdan/gemlink/internal/core"
)

func TestBuiltinThemes(t *testing.T) {
	for _, id := range []string{"gems", "fruits", "mono"} {
		th, err := Get(id)
		if err != nil {
			t.Fatalf("Get(%q) failed: %v", id, err)
		}
		c, err := th.Catalog()
		if err != nil {
			t.Fatalf("%s: Catalog() failed: %v", id, err)
		}
		if c.Len() != len(th.Tiles) {
			t.Errorf("%s: catalog has %d types, theme has %d tiles", id, c.Len(), len(th.Tiles))
		}
	}
	if !Exists(DefaultTheme) {
		t.Errorf("default theme %q is not registered", DefaultTheme)
	}
}

func TestThemeTileLookup(t *testing.T) {
	th, _ := Get("gems")
	c, _ := th.Catalog()

	second, _ := c.At(1)
	if tile := th.Tile(second); tile.Name != "sapphire" {
		t.Errorf("Tile(At(1)) = %+v, want sapphire", tile)
	}
	if tile := th.Tile(0); tile.Glyph != '?' {
		t.Errorf("Tile(NoTile) = %+v, want placeholder", tile)
	}
}

func TestAddErrors(t *testing.T) {
	tests := []struct {
		name  string
		theme Theme
	}{
		{"empty id", Theme{Tiles: []Tile{{Name: "x"}}}},
		{"no tiles", Theme{ID: "test-empty"}},
		{"duplicate tile", Theme{ID: "test-dup", Tiles: []Tile{{Name: "x"}, {Name: "x"}}}},
		{"taken id", Theme{ID: "gems", Tiles: []Tile{{Name: "x"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Add(tt.theme); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestAddAndList(t *testing.T) {
	custom := Theme{ID: "test-custom", Tiles: []Tile{
		{Name: "up", Glyph: '^', Color: core.ColorCyan},
		{Name: "down", Glyph: 'v', Color: core.ColorCyan},
	}}
	if err := Add(custom); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}

	got, err := Get("test-custom")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if got.Title != "test-custom" {
		t.Errorf("empty title should default to the id, got %q", got.Title)
	}

	infos := List()
	for i := 1; i < len(infos); i++ {
		if infos[i-1].ID >= infos[i].ID {
			t.Fatalf("List() not sorted: %v", infos)
		}
	}
	found := false
	for _, info := range infos {
		if info.ID == "test-custom" && info.Size == 2 {
			found = true
		}
	}
	if !found {
		t.Errorf("custom theme missing from List(): %v", infos)
	}
}

func TestRegisterPanicsOnDuplicate(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Register should panic on a duplicate id")
		}
	}()
	Register(Theme{ID: "mono", Tiles: []Tile{{Name: "x"}}})
}
