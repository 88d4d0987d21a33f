package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"mediarec/internal/suggest"
)

var suggestFamilyMode bool

// suggestCmd queries the offline index directly, without touching the
// metadata API.
var suggestCmd = &cobra.Command{
	Use:   "suggest <query>",
	Short: "Find the closest known title for a query",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSuggest(args[0], suggestFamilyMode)
	},
}

func init() {
	rootCmd.AddCommand(suggestCmd)

	suggestCmd.Flags().BoolVar(
		&suggestFamilyMode,
		"family",
		true,
		"exclude explicit titles from suggestions",
	)
}

func runSuggest(query string, familyMode bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	s, err := suggest.NewFromFile(cfg.IndexPath(), cfg.Family.Keywords, cfg.Match.Cutoff)
	if err != nil {
		return err
	}
	if !s.Enabled() {
		fmt.Println("Suggestions unavailable: no title index. Run 'mediarec download' and 'mediarec build-index' first.")
		return nil
	}

	m, ok, err := s.Suggest(query, familyMode)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("No confident match.")
		return nil
	}

	fmt.Printf("%s (id %d, score %d)\n", m.Title, m.ID, m.Score)
	return nil
}
