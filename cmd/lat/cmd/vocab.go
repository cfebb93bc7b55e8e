package cmd

import (
	"fmt"

	"github.com/haruki7049/lat/internal/grammar"
	"github.com/haruki7049/lat/internal/lat"
	"github.com/haruki7049/lat/internal/tui/views"
	"github.com/spf13/cobra"
)

var vocabCmd = &cobra.Command{
	Use:   "vocab",
	Short: "List the spell vocabulary",
	Long: `List every word the parser knows as a table of word, category,
variant and gloss.

Examples:
  lat vocab
  lat vocab --category emphasis`,
	Args: cobra.NoArgs,
	RunE: runVocab,
}

var vocabCategory string

func init() {
	rootCmd.AddCommand(vocabCmd)
	vocabCmd.Flags().StringVarP(&vocabCategory, "category", "c", "", "only list one category")
}

func runVocab(cmd *cobra.Command, args []string) error {
	dict := grammar.Default().Dictionary()

	entries := dict.Words()
	if vocabCategory != "" {
		c, err := lat.ParseCategory(vocabCategory)
		if err != nil {
			return err
		}
		entries = dict.WordsIn(c)
	}

	for _, row := range views.VocabularyRows(entries) {
		fmt.Fprintln(cmd.OutOrStdout(), row)
	}
	return nil
}
