package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/haruki7049/lat/internal/config"
	"github.com/haruki7049/lat/internal/logging"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize lat configuration",
	Long: `Write a default config.yaml to your config directory.

The file sets:
  - log       level and format
  - reset     keywords and spells that clear the console sandbox
  - history   where console casts are recorded
  - output    default format and style for parse and describe`,
	Args: cobra.NoArgs,
	// Skips config loading so a broken config.yaml can be replaced.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = logging.New(config.Default().Log, cmd.ErrOrStderr())
		return nil
	},
	RunE: runInit,
}

var initForce bool

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite existing configuration")
}

func runInit(cmd *cobra.Command, args []string) error {
	dir := getConfigDir()
	path := filepath.Join(dir, config.FileName)

	if _, err := os.Stat(path); err == nil && !initForce {
		return fmt.Errorf("config file already exists: %s\nUse --force to overwrite", path)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("checking config file: %w", err)
	}

	if err := config.EnsureDir(dir); err != nil {
		return err
	}
	if err := config.Save(path, config.Default()); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created %s\n\n", path)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  1. Edit the reset keywords and spells to taste")
	fmt.Fprintln(out, "  2. Run 'lat parse Ure Ignis Magnus' to parse a spell")
	fmt.Fprintln(out, "  3. Run 'lat' to open the console")

	logger.Debug("config written", "path", path)
	return nil
}
