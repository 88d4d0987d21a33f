package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"mediarec/internal/suggest"
	"mediarec/internal/tmdb"
)

var searchFamilyMode bool

// searchCmd runs a live search with the fuzzy fallback.
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search TMDB, falling back to a fuzzy suggestion",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSearch(args[0], searchFamilyMode)
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().BoolVar(
		&searchFamilyMode,
		"family",
		true,
		"exclude explicit content",
	)
}

func runSearch(query string, familyMode bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	client, err := tmdb.New(cfg.TMDB.APIKey, tmdb.WithBaseURL(cfg.TMDB.BaseURL), tmdb.WithLanguage(cfg.TMDB.Language))
	if err != nil {
		return err
	}

	s, err := suggest.NewFromFile(cfg.IndexPath(), cfg.Family.Keywords, cfg.Match.Cutoff)
	if err != nil {
		return err
	}

	outcome, err := s.SearchWithFallback(context.Background(), client, query, familyMode)
	if err != nil {
		return err
	}

	switch {
	case len(outcome.Results) > 0:
		for _, r := range outcome.Results {
			date := r.ReleaseDate
			if date == "" {
				date = r.FirstAirDate
			}
			fmt.Printf("%-6d %-5s %s (%s)\n", r.ID, r.MediaType, r.DisplayTitle(), date)
		}
	case outcome.Suggestion != nil:
		fmt.Printf("No results. Did you mean %s (id %d)?\n", outcome.Suggestion.Title, outcome.Suggestion.ID)
	default:
		fmt.Printf("No results found for %q.\n", query)
	}
	return nil
}
