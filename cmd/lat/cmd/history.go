package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/haruki7049/lat/internal/history"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent casts from the console",
	Long: `Show the most recent casts recorded by the interactive console.

Examples:
  lat history
  lat history --limit 5
  lat history --clear`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

var (
	historyLimit int
	historyClear bool
)

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "number of casts to show (default from config)")
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "delete every recorded cast")
}

func runHistory(cmd *cobra.Command, args []string) error {
	store, err := openHistory(true)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if historyClear {
		n, err := store.Clear(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Deleted %d cast(s)\n", n)
		return nil
	}

	limit := historyLimit
	if limit <= 0 {
		limit = appConfig.History.Limit
	}

	casts, err := store.Recent(cmd.Context(), limit)
	if err != nil {
		return err
	}
	if len(casts) == 0 {
		fmt.Fprintln(out, "No casts recorded")
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTIME\tRESULT\tSPELL")
	for _, c := range casts {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", c.ID.String()[:8], c.CastAt.Format("2006-01-02 15:04:05"), castResult(c), c.Source)
	}
	return tw.Flush()
}

func castResult(c history.Cast) string {
	switch {
	case c.Failed():
		return c.ErrorKind
	case c.Resetting:
		return "reset"
	default:
		return "ok"
	}
}
