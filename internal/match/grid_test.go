package match_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/gemlink/internal/match"
)

func TestNewCatalog(t *testing.T) {
	c := newCatalog(t, "red", "blue", "green")

	if c.Len() != 3 {
		t.Errorf("Len() = %d, want 3", c.Len())
	}
	blue, ok := c.At(1)
	if !ok || c.Name(blue) != "blue" {
		t.Errorf("At(1) = %v/%v, want blue", blue, ok)
	}
	if c.Index(blue) != 1 {
		t.Errorf("Index(blue) = %d, want 1", c.Index(blue))
	}
	if c.Contains(match.NoTile) {
		t.Error("catalog should not contain NoTile")
	}
	if _, ok := c.At(3); ok {
		t.Error("At(3) should be out of range")
	}
}

func TestNewCatalogErrors(t *testing.T) {
	testCases := []struct {
		name  string
		names []string
		code  string
	}{
		{"empty", nil, match.CodeEmptyCatalog},
		{"duplicate", []string{"red", "red"}, match.CodeDuplicateTile},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := match.NewCatalog(tc.names...)
			var cfgErr match.ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected ConfigError, got %v", err)
			}
			if cfgErr.Code != tc.code {
				t.Errorf("code = %s, want %s", cfgErr.Code, tc.code)
			}
		})
	}
}

func TestNewGridFillsEveryCell(t *testing.T) {
	c := newCatalog(t, "red", "blue", "green", "yellow")
	g, err := match.NewGrid(6, 5, c, seeded(1))
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}

	if g.Width() != 6 || g.Height() != 5 {
		t.Errorf("expected 6x5 grid, got %dx%d", g.Width(), g.Height())
	}
	if g.EmptyCount() != 0 {
		t.Errorf("expected no empty cells, got %d", g.EmptyCount())
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 6; x++ {
			tile, ok := g.TileAt(match.C(x, y))
			if !ok || !c.Contains(tile) {
				t.Errorf("at (%d,%d): got %v/%v, want a catalog tile", x, y, tile, ok)
			}
		}
	}
}

func TestNewGridErrors(t *testing.T) {
	c := newCatalog(t, "red")
	testCases := []struct {
		name    string
		w, h    int
		catalog *match.Catalog
		code    string
	}{
		{"zero width", 0, 5, c, match.CodeBadDimensions},
		{"negative height", 5, -1, c, match.CodeBadDimensions},
		{"nil catalog", 5, 5, nil, match.CodeEmptyCatalog},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := match.NewGrid(tc.w, tc.h, tc.catalog, seeded(1))
			var cfgErr match.ConfigError
			if !errors.As(err, &cfgErr) || cfgErr.Code != tc.code {
				t.Errorf("expected ConfigError %s, got %v", tc.code, err)
			}
		})
	}
}

func TestGridInBounds(t *testing.T) {
	g := match.NewGridFromTypes(5, 4, newCatalog(t, "red"), nil)

	testCases := []struct {
		cell     match.Cell
		expected bool
	}{
		{match.C(0, 0), true},
		{match.C(4, 3), true},
		{match.C(-1, 0), false},
		{match.C(0, -1), false},
		{match.C(5, 0), false},
		{match.C(0, 4), false},
	}

	for _, tc := range testCases {
		if got := g.InBounds(tc.cell); got != tc.expected {
			t.Errorf("InBounds(%v): expected %v, got %v", tc.cell, tc.expected, got)
		}
	}
}

func TestGridClear(t *testing.T) {
	c := newCatalog(t, "red", "blue")
	g := gridFromRows(t, c,
		"12",
		"21",
	)

	g.Clear([]match.Cell{match.C(0, 0), match.C(1, 1)})

	want := rows(
		"1.",
		".1",
	)
	if g.String() != want {
		t.Errorf("after Clear got\n%s\nwant\n%s", g.String(), want)
	}
}

func TestGridClearMisuse(t *testing.T) {
	c := newCatalog(t, "red")
	build := func() *match.Grid {
		return gridFromRows(t, c,
			"1.",
			"11",
		)
	}

	expectPanic(t, "empty cell", func() { build().Clear([]match.Cell{match.C(1, 1)}) })
	expectPanic(t, "out of bounds", func() { build().Clear([]match.Cell{match.C(2, 0)}) })
	expectPanic(t, "duplicate", func() { build().Clear([]match.Cell{match.C(0, 0), match.C(0, 0)}) })

	// A rejected clear must not touch the grid.
	g := build()
	func() {
		defer func() { _ = recover() }()
		g.Clear([]match.Cell{match.C(0, 0), match.C(1, 1)})
	}()
	if g.EmptyCount() != 1 {
		t.Errorf("rejected Clear modified the grid:\n%s", g.String())
	}
}

func TestAllCellsOfType(t *testing.T) {
	c := newCatalog(t, "red", "blue")
	g := gridFromRows(t, c,
		"121",
		"2.2",
	)

	blue, _ := c.At(1)
	got := g.AllCellsOfType(blue)
	if len(got) != 3 {
		t.Fatalf("expected 3 blue cells, got %v", got)
	}
	for _, cell := range got {
		if tile, _ := g.TileAt(cell); tile != blue {
			t.Errorf("cell %v holds %v, want blue", cell, tile)
		}
	}
	if cells := g.AllCellsOfType(match.NoTile); len(cells) != 0 {
		t.Errorf("AllCellsOfType(NoTile) = %v, want none", cells)
	}
}

func TestGridCloneIsIndependent(t *testing.T) {
	c := newCatalog(t, "red")
	g := gridFromRows(t, c, "11")
	clone := g.Clone()

	if !g.Equal(clone) {
		t.Error("clone should be equal to original")
	}
	g.Clear([]match.Cell{match.C(0, 0)})
	if _, ok := clone.TileAt(match.C(0, 0)); !ok {
		t.Error("clone should not be affected by original modification")
	}
	if g.Equal(clone) {
		t.Error("grids should differ after Clear")
	}
}

func TestGridEqualNil(t *testing.T) {
	g := gridFromRows(t, newCatalog(t, "red"), "11")
	if g.Equal(nil) {
		t.Error("a grid should not equal nil")
	}
}
