package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Parse spells from stdin as JSON lines",
	Long: `Run a stateless spell host on stdin and stdout.

Each input line is a JSON request:
  {"text": "Ure Ignis Magnus"}

and produces one JSON response line:
  {"spell": {...}, "resetting": false}
  {"error": {"kind": "UnknownWord", ...}, "resetting": false}

Requests are independent. The host stops at end of input or on interrupt.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	handler, err := newHandler(logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("host started")
	err = handler.Serve(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
