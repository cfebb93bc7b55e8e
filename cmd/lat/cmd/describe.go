package cmd

import (
	"fmt"
	"strings"

	"github.com/haruki7049/lat/internal/describe"
	"github.com/haruki7049/lat/internal/grammar"
	"github.com/spf13/cobra"
)

var describeCmd = &cobra.Command{
	Use:   "describe <words...>",
	Short: "Describe a spell in words",
	Long: `Parse a spell and render it in one of the built-in styles:
  gloss      an English sentence
  canonical  the spell re-spelled with canonical words
  summary    the fields on one line

Examples:
  lat describe Ure Ignis Magnus ad Hostem
  lat describe --style canonical ure ignis magno`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDescribe,
}

var describeStyle string

func init() {
	rootCmd.AddCommand(describeCmd)
	describeCmd.Flags().StringVarP(&describeStyle, "style", "s", "", "style: "+strings.Join(describe.Styles(), ", ")+" (default from config)")
}

func runDescribe(cmd *cobra.Command, args []string) error {
	style := describeStyle
	if style == "" {
		style = appConfig.Output.Style
	}

	parser := grammar.Default()
	narrator := describe.NewNarrator(parser.Dictionary())
	if err := narrator.SetStyle(style); err != nil {
		return err
	}

	spell, err := parser.Parse(strings.Join(args, " "))
	if err != nil {
		return err
	}

	out, err := narrator.Narrate(spell)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
