package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/haruki7049/lat/internal/config"
	"github.com/haruki7049/lat/internal/history"
	"github.com/haruki7049/lat/internal/host"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// resetFlags restores every flag to its default between runs.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// run executes the CLI against a fresh config directory.
func run(t *testing.T, dir, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append([]string{"--config", dir}, args...))

	err := rootCmd.Execute()
	return out.String(), err
}

func TestParse_Args(t *testing.T) {
	out, err := run(t, t.TempDir(), "", "parse", "Ure", "Ignis", "Magnus", "ad", "Hostem")
	require.NoError(t, err)
	assert.Equal(t, "Ure Ignis Magnus ad Hostem\n  action=Ure element=Ignis modifier=Magnus target=Hostis\n", out)
}

func TestParseAll_KeepsOrder(t *testing.T) {
	var inputs []string
	for i := range 40 {
		if i%3 == 0 {
			inputs = append(inputs, "Ure Xyzzy")
		} else {
			inputs = append(inputs, "Sana Aqua Parvus")
		}
	}

	results, err := parseAll(t.Context(), inputs)
	require.NoError(t, err)
	require.Len(t, results, len(inputs))
	for i, r := range results {
		assert.Equal(t, inputs[i], r.Text)
		assert.Equal(t, i%3 == 0, r.Error != nil, i)
	}
}

func TestSetup_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.EnvFileName), []byte("LAT_LOG_LEVEL=loud\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("LAT_LOG_LEVEL") })

	_, err := run(t, dir, "", "parse", "Ure Ignis Magnus")
	assert.ErrorIs(t, err, config.ErrInvalidLogLevel)
}

func TestSetup_EnvOverridesConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Output.Format = "yaml"
	require.NoError(t, config.Save(filepath.Join(dir, config.FileName), cfg))

	t.Setenv("LAT_OUTPUT_FORMAT", "json")
	t.Setenv("LAT_HISTORY_ENABLED", "false")
	t.Setenv("LAT_HISTORY_LIMIT", "5")
	t.Setenv("LAT_RESET_KEYWORDS", "abort, stop")
	t.Setenv("LAT_RESET_SPELLS", "Sana Lumen Magnus,Defende Terra Fortis")

	out, err := run(t, dir, "", "parse", "Ure Ignis Magnus")
	require.NoError(t, err)

	var r parseResult
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	require.NotNil(t, r.Spell)

	assert.Equal(t, "json", appConfig.Output.Format)
	assert.False(t, appConfig.History.Enabled)
	assert.Equal(t, 5, appConfig.History.Limit)
	assert.Equal(t, []string{"abort", "stop"}, appConfig.Reset.Keywords)
	assert.Equal(t, []string{"Sana Lumen Magnus", "Defende Terra Fortis"}, appConfig.Reset.Spells)
}

func TestSetup_InvalidEnvFormat(t *testing.T) {
	t.Setenv("LAT_OUTPUT_FORMAT", "toml")
	_, err := run(t, t.TempDir(), "", "parse", "Ure Ignis Magnus")
	assert.ErrorIs(t, err, config.ErrInvalidFormat)
}

func TestParse_Explain(t *testing.T) {
	out, err := run(t, t.TempDir(), "", "parse", "--explain", "Sana Aqua Parvus Nunc")
	require.NoError(t, err)
	assert.Contains(t, out, "Heal with small water, now.")
}

func TestParse_StdinJSON(t *testing.T) {
	stdin := "Ure Ignis Magnus\n\nFeri Xyzzy Celer\n"
	out, err := run(t, t.TempDir(), stdin, "parse", "--format", "json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 spells failed")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)

	var ok, failed parseResult
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &ok))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &failed))

	require.NotNil(t, ok.Spell)
	assert.Equal(t, "Ure", string(ok.Spell.Action))
	require.NotNil(t, failed.Error)
	assert.Equal(t, "UnknownWord", failed.Error.Kind)
	assert.Equal(t, "Xyzzy", failed.Error.Word)
	assert.Equal(t, 6, failed.Error.Column)
}

func TestParse_YAML(t *testing.T) {
	out, err := run(t, t.TempDir(), "", "parse", "-f", "yaml", "Defende", "Terra", "Fortis", "ex", "Terra")
	require.NoError(t, err)

	var r parseResult
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	require.NotNil(t, r.Spell)
	require.NotNil(t, r.Spell.Origin)
	assert.Equal(t, "Terra", string(*r.Spell.Origin))
}

func TestParse_FormatFromConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Output.Format = "json"
	require.NoError(t, config.Save(filepath.Join(dir, config.FileName), cfg))

	out, err := run(t, dir, "", "parse", "Ure Ignis Magnus")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(out)), out)
}

func TestParse_BadFormat(t *testing.T) {
	_, err := run(t, t.TempDir(), "", "parse", "--format", "toml", "Ure Ignis Magnus")
	assert.ErrorIs(t, err, config.ErrInvalidFormat)
}

func TestLookup(t *testing.T) {
	out, err := run(t, t.TempDir(), "", "lookup", "terra", "ad")
	require.NoError(t, err)
	assert.Equal(t, "terra: Element Terra (earth), Origin Terra (the earth)\nad: Preposition ToTarget (toward)\n", out)

	out, err = run(t, t.TempDir(), "", "lookup", "xyzzy")
	require.Error(t, err)
	assert.Equal(t, "xyzzy: unknown word\n", out)
}

func TestVocab(t *testing.T) {
	out, err := run(t, t.TempDir(), "", "vocab", "--category", "emphasis")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "WORD"))
	assert.Contains(t, out, "cumvi")

	_, err = run(t, t.TempDir(), "", "vocab", "--category", "verb")
	assert.Error(t, err)
}

func TestDescribe(t *testing.T) {
	out, err := run(t, t.TempDir(), "", "describe", "ure", "ignis", "magno", "ad", "hostem")
	require.NoError(t, err)
	assert.Equal(t, "Burn with great fire toward the enemy.\n", out)

	out, err = run(t, t.TempDir(), "", "describe", "--style", "canonical", "ure", "ignis", "magno")
	require.NoError(t, err)
	assert.Equal(t, "Ure Ignis Magnus\n", out)

	_, err = run(t, t.TempDir(), "", "describe", "--style", "haiku", "Ure Ignis Magnus")
	assert.Error(t, err)
}

func TestServe(t *testing.T) {
	stdin := `{"text":"Ure Ignis Magnus"}` + "\n" + `{"text":"reset"}` + "\n"
	out, err := run(t, t.TempDir(), stdin, "serve")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)

	var first, second host.Response
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.NotNil(t, first.Spell)
	assert.True(t, second.Resetting)
}

func TestHistory(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "", "history")
	require.NoError(t, err)
	assert.Equal(t, "No casts recorded\n", out)

	store, err := history.Open(filepath.Join(dir, "history.db"))
	require.NoError(t, err)
	require.NoError(t, store.Record(t.Context(), history.NewCast("Ure Ignis Magnus", host.Response{})))
	require.NoError(t, store.Record(t.Context(), history.NewCast("reset", host.Response{Resetting: true})))
	require.NoError(t, store.Close())

	out, err = run(t, dir, "", "history", "--limit", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "RESULT")
	assert.Equal(t, 2, strings.Count(out, "\n"))

	out, err = run(t, dir, "", "history", "--clear")
	require.NoError(t, err)
	assert.Equal(t, "Deleted 2 cast(s)\n", out)
}

func TestInit(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "lat")

	out, err := run(t, dir, "", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Created")

	cfg, err := config.LoadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	_, err = run(t, dir, "", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")

	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte("log: {level: loud}"), 0o644))
	_, err = run(t, dir, "", "init", "--force")
	require.NoError(t, err)
}

func TestInvalidConfigRejected(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte("log: {level: loud}"), 0o644))

	_, err := run(t, dir, "", "parse", "Ure Ignis Magnus")
	assert.ErrorIs(t, err, config.ErrInvalidLogLevel)
}
