package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"slices"
	"strings"

	"github.com/haruki7049/lat/internal/config"
	"github.com/haruki7049/lat/internal/describe"
	"github.com/haruki7049/lat/internal/grammar"
	"github.com/haruki7049/lat/internal/host"
	"github.com/haruki7049/lat/internal/lat"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

var parseCmd = &cobra.Command{
	Use:   "parse [words...]",
	Short: "Parse spells and print their structure",
	Long: `Parse a spell and print its components.

With arguments, the arguments are joined into one spell. Without
arguments, every non-blank line of standard input is parsed as its own
spell. The command fails if any spell fails to parse.

Examples:
  lat parse Ure Ignis Magnus
  lat parse --format json "Feri Ventus Celer ad Hostem Nunc"
  cat spells.txt | lat parse --explain`,
	RunE: runParse,
}

var (
	parseFormat  string
	parseExplain bool
)

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", "", "output format: text, json, yaml (default from config)")
	parseCmd.Flags().BoolVarP(&parseExplain, "explain", "e", false, "append the English reading of each spell")
}

// parseResult is one parsed line in json and yaml output.
type parseResult struct {
	Text        string               `json:"text" yaml:"text"`
	Spell       *lat.SpellDescriptor `json:"spell,omitempty" yaml:"spell,omitempty"`
	Error       *host.ErrorPayload   `json:"error,omitempty" yaml:"error,omitempty"`
	Explanation string               `json:"explanation,omitempty" yaml:"explanation,omitempty"`
}

func runParse(cmd *cobra.Command, args []string) error {
	format := parseFormat
	if format == "" {
		format = appConfig.Output.Format
	}
	format = strings.ToLower(format)
	if !slices.Contains(config.OutputFormats, format) {
		return fmt.Errorf("%w %q (want one of %s)", config.ErrInvalidFormat, format, strings.Join(config.OutputFormats, ", "))
	}

	inputs, err := spellInputs(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	results, err := parseAll(cmd.Context(), inputs)
	if err != nil {
		return err
	}

	failures := 0
	for _, r := range results {
		if r.Error != nil {
			failures++
		}
	}

	if err := writeResults(cmd.OutOrStdout(), format, results); err != nil {
		return err
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d spells failed to parse", failures, len(inputs))
	}
	return nil
}

// parseAll parses inputs in parallel. Results keep the input order.
func parseAll(ctx context.Context, inputs []string) ([]parseResult, error) {
	parser := grammar.Default()
	narrator := describe.NewNarrator(parser.Dictionary())

	results := make([]parseResult, len(inputs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, text := range inputs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r := parseResult{Text: text}
			spell, err := parser.Parse(text)
			if err != nil {
				r.Error = host.NewErrorPayload(err)
				logger.Debug("spell rejected", "text", text, "error", err)
			} else {
				r.Spell = spell
				if parseExplain {
					r.Explanation, err = narrator.Narrate(spell)
					if err != nil {
						return fmt.Errorf("explaining %q: %w", text, err)
					}
				}
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// spellInputs joins args into one spell, or reads one spell per stdin line.
func spellInputs(args []string, stdin io.Reader) ([]string, error) {
	if len(args) > 0 {
		return []string{strings.Join(args, " ")}, nil
	}

	var inputs []string
	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		inputs = append(inputs, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	if len(inputs) == 0 {
		return nil, fmt.Errorf("no spells given")
	}
	return inputs, nil
}

func writeResults(w io.Writer, format string, results []parseResult) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		for _, r := range results {
			if err := enc.Encode(r); err != nil {
				return fmt.Errorf("encoding result: %w", err)
			}
		}

	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		for _, r := range results {
			if err := enc.Encode(r); err != nil {
				return fmt.Errorf("encoding result: %w", err)
			}
		}
		return enc.Close()

	default:
		for _, r := range results {
			if r.Error != nil {
				fmt.Fprintf(w, "%s\n  error: %s (line %d, column %d)\n", r.Text, r.Error.Message, r.Error.Line, r.Error.Column)
				continue
			}
			fmt.Fprintf(w, "%s\n  %s\n", r.Text, summary(r.Spell))
			if r.Explanation != "" {
				fmt.Fprintf(w, "  %s\n", r.Explanation)
			}
		}
	}
	return nil
}

func summary(spell *lat.SpellDescriptor) string {
	n := describe.NewNarrator(nil)
	_ = n.SetStyle(describe.StyleSummary)
	out, err := n.Narrate(spell)
	if err != nil {
		return spell.Core()
	}
	return out
}
