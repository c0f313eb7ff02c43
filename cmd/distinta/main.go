package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Mastra10/App-Distinta/internal/config"
	"github.com/Mastra10/App-Distinta/internal/logger"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "distinta",
	Short: "Compilatore Distinta: fills the team sheet from the player roster",
	Long: `Compilatore Distinta loads the player roster, resolves the requested
surnames and fills the .xlsx team sheet template.

Available subcommands:
  serve    - Run the web form
  generate - Fill a team sheet from the command line`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config.toml (default: next to the executable)")
	rootCmd.AddCommand(serveCmd, generateCmd)
}

// loadConfig loads and validates the configuration and sets up logging.
func loadConfig() (*config.AppConfig, config.LoadConfigInfo, error) {
	cfg, info, err := config.LoadConfigWithInfo(configPath)
	if err != nil {
		return nil, info, err
	}
	logger.Setup(cfg.Log.Level, cfg.Log.Console, os.Stderr)
	if !info.FileFound {
		log.Info().Str("path", info.Path).Msg("No config file, using defaults and environment")
	}
	return cfg, info, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
