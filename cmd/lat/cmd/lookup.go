package cmd

import (
	"fmt"
	"strings"

	"github.com/haruki7049/lat/internal/grammar"
	"github.com/spf13/cobra"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <word...>",
	Short: "Show the dictionary categories of words",
	Long: `Look up words in the spell dictionary and display, for each one:
  - every category it belongs to
  - the variant it names in that category
  - its English gloss

Example:
  lat lookup terra
  lat lookup hostem ad nunc`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLookup,
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	dict := grammar.Default().Dictionary()
	out := cmd.OutOrStdout()

	unknown := 0
	for _, word := range args {
		entries := dict.Lookup(word)
		if len(entries) == 0 {
			unknown++
			fmt.Fprintf(out, "%s: unknown word\n", word)
			continue
		}

		parts := make([]string, len(entries))
		for i, e := range entries {
			parts[i] = fmt.Sprintf("%s %s (%s)", e.Category, e.Variant, e.Gloss())
		}
		fmt.Fprintf(out, "%s: %s\n", word, strings.Join(parts, ", "))
	}

	if unknown > 0 {
		return fmt.Errorf("%d unknown word(s)", unknown)
	}
	return nil
}
