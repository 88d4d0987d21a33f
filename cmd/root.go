package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"mediarec/internal/config"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "mediarec",
	Short: "Browse TMDB metadata with fuzzy title suggestions",
	Long: `mediarec maintains an offline index of TMDB movie titles and uses it
to suggest the closest known title when a literal search finds nothing.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(
		&cfgFile,
		"config",
		"c",
		"config.ini",
		"path to config file",
	)
}

func loadConfig() (config.Config, error) {
	return config.Load(cfgFile)
}
