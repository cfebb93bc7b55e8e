// Package cmd contains all CLI commands for lat.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/haruki7049/lat/internal/config"
	"github.com/haruki7049/lat/internal/grammar"
	"github.com/haruki7049/lat/internal/history"
	"github.com/haruki7049/lat/internal/host"
	"github.com/haruki7049/lat/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var (
	appConfig = config.Default()
	logger    = logging.Discard()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lat",
	Short: "lat - a tiny spell language",
	Long: `lat parses spells written in a small Latin-flavoured language.

A spell is three mandatory words followed by optional extensions:
  Action Element Modifier   e.g. "Ure Ignis Magnus"
  ad <Target>               e.g. "ad Hostem"
  ex <Origin>               e.g. "ex Caelo"
  Emphasis                  e.g. "Nunc", "CumVi", "Tandem"

Running 'lat' without arguments launches the interactive console.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runConsole,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config directory (default is $HOME/.config/lat)")
	rootCmd.PersistentFlags().Bool("verbose", false, "verbose output (same as --log-level debug)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-format", "", "log format: text, json")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))
}

// initConfig reads ENV variables and resolves the config directory.
func initConfig() {
	if cfgFile != "" {
		viper.Set("config_dir", cfgFile)
	} else {
		dir, err := config.GetConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}
		viper.SetDefault("config_dir", dir)
	}

	viper.SetEnvPrefix("LAT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	for _, key := range envKeys {
		viper.BindEnv(key)
	}
}

// envKeys are the config.yaml keys that LAT_* variables can override,
// e.g. LAT_HISTORY_ENABLED or LAT_OUTPUT_FORMAT. List values are
// comma-separated.
var envKeys = []string{
	"reset.keywords",
	"reset.spells",
	"history.enabled",
	"history.file",
	"history.limit",
	"output.format",
	"output.style",
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	return viper.GetString("config_dir")
}

// setup loads .env and config.yaml, applies flag and environment overrides,
// and builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	if err := config.LoadEnv(getConfigDir()); err != nil {
		return err
	}

	cfg, err := config.LoadDir(getConfigDir())
	if err != nil {
		return err
	}

	applyEnv(cfg)
	if level := viper.GetString("log.level"); level != "" {
		cfg.Log.Level = level
	}
	if format := viper.GetString("log.format"); format != "" {
		cfg.Log.Format = format
	}
	if viper.GetBool("verbose") {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	appConfig = cfg
	logger = logging.New(cfg.Log, cmd.ErrOrStderr())
	slog.SetDefault(logger)

	logger.Debug("config loaded", "dir", getConfigDir(), "command", cmd.Name())
	return nil
}

// applyEnv copies envKeys that are set in the environment over cfg.
func applyEnv(cfg *config.Config) {
	if viper.IsSet("reset.keywords") {
		cfg.Reset.Keywords = splitList(viper.GetString("reset.keywords"))
	}
	if viper.IsSet("reset.spells") {
		cfg.Reset.Spells = splitList(viper.GetString("reset.spells"))
	}
	if viper.IsSet("history.enabled") {
		cfg.History.Enabled = viper.GetBool("history.enabled")
	}
	if viper.IsSet("history.file") {
		cfg.History.File = viper.GetString("history.file")
	}
	if viper.IsSet("history.limit") {
		cfg.History.Limit = viper.GetInt("history.limit")
	}
	if viper.IsSet("output.format") {
		cfg.Output.Format = viper.GetString("output.format")
	}
	if viper.IsSet("output.style") {
		cfg.Output.Style = viper.GetString("output.style")
	}
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// newHandler builds a host handler with the configured reset trigger.
func newHandler(log *slog.Logger) (*host.Handler, error) {
	parser := grammar.Default()
	trigger, err := host.NewTrigger(appConfig.Reset.Keywords, appConfig.Reset.Spells, parser)
	if err != nil {
		return nil, err
	}
	return host.New(parser, trigger, log), nil
}

// openHistory opens the cast log. It returns nil when history is disabled
// and force is false.
func openHistory(force bool) (*history.Store, error) {
	if !appConfig.History.Enabled && !force {
		return nil, nil
	}
	dir := getConfigDir()
	if err := config.EnsureDir(dir); err != nil {
		return nil, err
	}
	return history.Open(appConfig.HistoryPath(dir))
}
