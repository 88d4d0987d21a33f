package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"mediarec/internal/titleindex"
)

// buildIndexCmd turns the downloaded export into the persisted title
// index.
var buildIndexCmd = &cobra.Command{
	Use:   "build-index",
	Short: "Build the title index from a downloaded export",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBuildIndex()
	},
}

func init() {
	rootCmd.AddCommand(buildIndexCmd)
}

func runBuildIndex() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	source, err := titleindex.DiscoverExport(cfg.Index.Dir)
	if err != nil {
		return err
	}

	fmt.Printf("--- Processing %s ---\n", source)

	idx, err := titleindex.BuildFromFile(source)
	if err != nil {
		return err
	}

	dest := cfg.IndexPath()
	if err := idx.WriteFile(dest); err != nil {
		return err
	}

	fmt.Printf("Wrote %d titles to %s.\n", len(idx), dest)
	return nil
}
