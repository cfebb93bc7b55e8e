package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/haruki7049/lat/internal/config"
	"github.com/haruki7049/lat/internal/logging"
	"github.com/haruki7049/lat/internal/tui"
	"github.com/spf13/cobra"
)

var consoleCmd = &cobra.Command{
	Use:     "console",
	Aliases: []string{"interactive", "i"},
	Short:   "Launch the interactive spell console",
	Long: `Launch an interactive console for casting spells.

Features:
  - Cast spells and watch them join the sandbox
  - Reset keywords and reset spells clear the sandbox
  - Parse errors point at the offending word
  - Browse the vocabulary

Controls:
  Enter    Cast
  Ctrl+Y   Copy the last spell
  Tab      Switch between console and vocabulary
  Esc      Quit`,
	RunE: runConsole,
}

func init() {
	rootCmd.AddCommand(consoleCmd)
}

func runConsole(cmd *cobra.Command, args []string) error {
	dir := getConfigDir()
	if err := config.EnsureDir(dir); err != nil {
		return err
	}

	// The console owns the terminal, so logs go to a file.
	logFile, err := os.OpenFile(filepath.Join(dir, "lat.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer logFile.Close()
	log := logging.New(appConfig.Log, logFile)

	handler, err := newHandler(log)
	if err != nil {
		return err
	}

	opts := tui.Options{Handler: handler, Logger: log}

	store, err := openHistory(false)
	if err != nil {
		log.Warn("history unavailable", "error", err)
	} else if store != nil {
		defer store.Close()
		opts.Recorder = store
	}

	log.Info("console started")
	return tui.Run(opts)
}
