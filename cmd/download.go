package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"mediarec/internal/tmdb"
)

var downloadDate string

// downloadCmd fetches the daily movie id export.
var downloadCmd = &cobra.Command{
	Use:   "download",
	Short: "Download the daily TMDB movie id export",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDownload(downloadDate)
	},
}

func init() {
	rootCmd.AddCommand(downloadCmd)

	downloadCmd.Flags().StringVar(
		&downloadDate,
		"date",
		"",
		"export date as MM_DD_YYYY (default today)",
	)
}

func runDownload(date string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	day := time.Now()
	if date != "" {
		day, err = time.Parse("01_02_2006", date)
		if err != nil {
			return fmt.Errorf("parse date %q: %w", date, err)
		}
	}

	client, err := tmdb.New(cfg.TMDB.APIKey, tmdb.WithBaseURL(cfg.TMDB.BaseURL), tmdb.WithLanguage(cfg.TMDB.Language))
	if err != nil {
		return err
	}

	fmt.Printf("--- Downloading %s ---\n", tmdb.ExportFileName(day))

	path, err := client.DownloadExport(context.Background(), cfg.Index.Dir, day)
	if err != nil {
		return fmt.Errorf("download export: %w", err)
	}

	fmt.Printf("Saved %s.\n", path)
	fmt.Println("Run 'mediarec build-index' next to build the title index.")
	return nil
}
