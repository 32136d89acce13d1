package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Loads the configuration the way 'play' does (config file, preset, .env
and GEMLINK_* variables, --theme), validates it and prints it as YAML.

Search order for the config file:
  --config path
  ~/.gemlink/configs/gemlink.yaml
  ./configs/gemlink.yaml
  built-in default

Examples:
  gemlink config
  gemlink config --preset large
  gemlink config > ~/.gemlink/configs/gemlink.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if _, _, _, err := cfg.Resolve(); err != nil {
		return err
	}
	logger.Debug("config resolved", "source", cfg.Source)

	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "# source: %s\n", cfg.Source)
	_, err = os.Stdout.Write(data)
	return err
}
