package registry

import "github.com/vovakirdan/gemlink/internal/core"

// DefaultTheme is used when config names no theme.
const DefaultTheme = "gems"

func init() {
	Register(Theme{
		ID:    "gems",
		Title: "Gems",
		Tiles: []Tile{
			{Name: "ruby", Glyph: '◆', Color: core.ColorBrightRed},
			{Name: "sapphire", Glyph: '●', Color: core.ColorBrightBlue},
			{Name: "emerald", Glyph: '▲', Color: core.ColorBrightGreen},
			{Name: "topaz", Glyph: '■', Color: core.ColorBrightYellow},
			{Name: "amethyst", Glyph: '★', Color: core.ColorBrightMagenta},
			{Name: "amber", Glyph: '♥', Color: core.ColorOrange},
		},
	})

	Register(Theme{
		ID:    "fruits",
		Title: "Fruit Basket",
		Tiles: []Tile{
			{Name: "apple", Glyph: '●', Color: core.ColorRed},
			{Name: "lime", Glyph: '●', Color: core.ColorGreen},
			{Name: "lemon", Glyph: '●', Color: core.ColorYellow},
			{Name: "plum", Glyph: '●', Color: core.ColorMagenta},
			{Name: "orange", Glyph: '●', Color: core.ColorOrange},
		},
	})

	// Distinct glyphs only, for terminals without color.
	Register(Theme{
		ID:    "mono",
		Title: "Monochrome",
		Tiles: []Tile{
			{Name: "a", Glyph: 'A', Color: core.ColorWhite},
			{Name: "b", Glyph: 'B', Color: core.ColorWhite},
			{Name: "c", Glyph: 'C', Color: core.ColorWhite},
			{Name: "d", Glyph: 'D', Color: core.ColorWhite},
			{Name: "e", Glyph: 'E', Color: core.ColorWhite},
		},
	})
}
