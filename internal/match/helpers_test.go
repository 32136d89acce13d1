package match_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/vovakirdan/gemlink/internal/match"
)

// constRNG always picks the same catalog index (modulo n).
type constRNG int

func (r constRNG) Intn(n int) int {
	return int(r) % n
}

func newCatalog(t *testing.T, names ...string) *match.Catalog {
	t.Helper()
	c, err := match.NewCatalog(names...)
	if err != nil {
		t.Fatalf("NewCatalog(%v) failed: %v", names, err)
	}
	return c
}

// gridFromRows builds a grid from rows written top row first.
// '.' is empty, digits are tile types.
func gridFromRows(t *testing.T, catalog *match.Catalog, rows ...string) *match.Grid {
	t.Helper()
	h := len(rows)
	w := len(rows[0])
	tiles := make(map[match.Cell]match.TileType)
	for i, row := range rows {
		if len(row) != w {
			t.Fatalf("row %d has width %d, want %d", i, len(row), w)
		}
		y := h - 1 - i
		for x, ch := range row {
			if ch == '.' {
				continue
			}
			tiles[match.C(x, y)] = match.TileType(ch - '0')
		}
	}
	return match.NewGridFromTypes(w, h, catalog, tiles)
}

func rows(s ...string) string {
	return strings.Join(s, "\n")
}

func seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}
