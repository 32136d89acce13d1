package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gemlink/internal/registry"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List all tile themes",
	Long:  `Shows the built-in tile themes and any declared in the config file.`,
	Args:  cobra.NoArgs,
	RunE:  runThemes,
}

func runThemes(_ *cobra.Command, _ []string) error {
	// Loading the config registers custom themes.
	if _, err := loadConfig(); err != nil {
		return err
	}

	themes := registry.List()
	if len(themes) == 0 {
		fmt.Println("No themes available.")
		return nil
	}

	fmt.Println("Available themes:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, t := range themes {
		maxIDLen = max(maxIDLen, len(t.ID))
	}

	fmt.Printf("  %-*s  %-5s  %s\n", maxIDLen, "ID", "Tiles", "Title")
	fmt.Printf("  %-*s  %-5s  %s\n", maxIDLen, "--", "-----", "-----")
	for _, info := range themes {
		theme, err := registry.Get(info.ID)
		if err != nil {
			return err
		}
		glyphs := make([]rune, 0, 2*len(theme.Tiles))
		for _, tile := range theme.Tiles {
			glyphs = append(glyphs, tile.Glyph, ' ')
		}
		fmt.Printf("  %-*s  %-5d  %s  %s\n", maxIDLen, info.ID, info.Size, info.Title, string(glyphs))
	}

	fmt.Println()
	fmt.Println("Run 'gemlink play --theme <id>' to play with a theme.")
	return nil
}
