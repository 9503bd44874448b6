// filepath: internal/cli/root_test.go
package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"focusboard/internal/config"
	"focusboard/internal/models"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestCommand returns a bare command carrying the global flags, so that
// flag parsing marks them as changed.
func newTestCommand(options *GlobalOptions, args ...string) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.SetErr(&bytes.Buffer{})
	options.registerFlags(cmd)
	if err := cmd.ParseFlags(args); err != nil {
		panic(err)
	}
	return cmd
}

func TestConfigPrecedence(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		options := &GlobalOptions{}
		cmd := newTestCommand(options, "--config_path", filepath.Join(t.TempDir(), "nonexistent.toml"))

		require.NoError(t, options.initializeConfig(cmd))

		assert.Equal(t, config.DefaultDatabasePath, options.Conf.Database.Path)
		assert.Equal(t, "info", options.Conf.Logging.Level)
		assert.NotNil(t, options.Logger)
	})

	t.Run("Environment Overrides Defaults", func(t *testing.T) {
		t.Setenv("FB_DATABASE_PATH", "env.db")
		t.Setenv("FB_LOG_LEVEL", "warn")
		t.Setenv("FB_AUDIT_ENABLED", "true")

		options := &GlobalOptions{}
		cmd := newTestCommand(options, "--config_path", filepath.Join(t.TempDir(), "nonexistent.toml"))

		require.NoError(t, options.initializeConfig(cmd))

		assert.Equal(t, "env.db", options.Conf.Database.Path)
		assert.Equal(t, "warn", options.Conf.Logging.Level)
		assert.True(t, options.Conf.Logging.AuditEnabled)
	})

	t.Run("Flags Override Environment", func(t *testing.T) {
		t.Setenv("FB_DATABASE_PATH", "env.db")
		t.Setenv("FB_LOG_LEVEL", "warn")

		options := &GlobalOptions{}
		cmd := newTestCommand(options,
			"--config_path", filepath.Join(t.TempDir(), "nonexistent.toml"),
			"--db", "flag.db",
			"--log-level", "debug",
		)

		require.NoError(t, options.initializeConfig(cmd))

		assert.Equal(t, "flag.db", options.Conf.Database.Path)
		assert.Equal(t, "debug", options.Conf.Logging.Level)
	})

	t.Run("Config File Loading", func(t *testing.T) {
		tmpFile := filepath.Join(t.TempDir(), "test_config.toml")
		content := []byte(`
[database]
path = "file.db"
[logging]
level = "error"
[tasks]
default_order = "priority"
`)
		require.NoError(t, os.WriteFile(tmpFile, content, 0644))
		t.Setenv("FB_CONFIG_PATH", tmpFile)

		options := &GlobalOptions{}
		cmd := newTestCommand(options)

		require.NoError(t, options.initializeConfig(cmd))

		assert.Equal(t, tmpFile, options.CfgFilePath)
		assert.Equal(t, "file.db", options.Conf.Database.Path)
		assert.Equal(t, "error", options.Conf.Logging.Level)
		assert.Equal(t, "priority", options.Conf.Tasks.DefaultOrder)
	})

	t.Run("Config Path Flag Beats Environment", func(t *testing.T) {
		t.Setenv("FB_CONFIG_PATH", filepath.Join(t.TempDir(), "env.toml"))
		flagPath := filepath.Join(t.TempDir(), "flag.toml")

		options := &GlobalOptions{}
		cmd := newTestCommand(options, "--config_path", flagPath)

		require.NoError(t, options.initializeConfig(cmd))
		assert.Equal(t, flagPath, options.CfgFilePath)
	})

	t.Run("Invalid Values", func(t *testing.T) {
		options := &GlobalOptions{}
		cmd := newTestCommand(options,
			"--config_path", filepath.Join(t.TempDir(), "nonexistent.toml"),
			"--log-level", "loud",
		)
		assert.Error(t, options.initializeConfig(cmd))

		broken := filepath.Join(t.TempDir(), "broken.toml")
		require.NoError(t, os.WriteFile(broken, []byte("[tasks\n"), 0644))
		options = &GlobalOptions{}
		cmd = newTestCommand(options, "--config_path", broken)
		assert.Error(t, options.initializeConfig(cmd))
	})
}

func TestApplyOverrides(t *testing.T) {
	c := &config.Config{
		Database: config.DatabaseConfig{Path: "file.db"},
		Logging:  config.LoggingConfig{Level: "info", AuditEnabled: true},
	}

	options := &GlobalOptions{}
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.StringVar(&options.DBPath, "db", "", "")
	flags.StringVar(&options.LogLevel, "log-level", "", "")
	flags.BoolVar(&options.AuditEnabled, "audit-enabled", false, "")
	require.NoError(t, flags.Parse([]string{"--db", "flag.db", "--audit-enabled=false"}))

	options.applyOverrides(c, flags)

	assert.Equal(t, "flag.db", c.Database.Path)
	assert.Equal(t, "info", c.Logging.Level, "unset flags keep the file value")
	assert.False(t, c.Logging.AuditEnabled)
}

// runCLI executes the root command against dbPath and returns stdout.
func runCLI(t *testing.T, dbPath string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCMD()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(append([]string{
		"--config_path", filepath.Join(filepath.Dir(dbPath), "config.toml"),
		"--db", dbPath,
	}, args...))
	err := root.Execute()
	return out.String(), err
}

func mustRunCLI(t *testing.T, dbPath string, args ...string) string {
	t.Helper()
	out, err := runCLI(t, dbPath, args...)
	require.NoError(t, err, "focusboard %s", strings.Join(args, " "))
	return out
}

func TestCommandsRequireInit(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "board.db")

	_, err := runCLI(t, dbPath, "task", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "focusboard init")
}

func TestInitCommand(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "board.db")

	out := mustRunCLI(t, dbPath, "init", "--write-config")
	assert.Contains(t, out, "schema version 2")
	assert.Contains(t, out, "Configuration written to")

	saved, err := config.LoadConfig(filepath.Join(dir, "config.toml"))
	require.NoError(t, err)
	assert.Equal(t, dbPath, saved.Database.Path)

	out = mustRunCLI(t, dbPath, "init", "--write-config")
	assert.Contains(t, out, "schema version 2")
	assert.NotContains(t, out, "Configuration written to")
}

func TestMigrateCommand(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "board.db")
	mustRunCLI(t, dbPath, "init")

	out := mustRunCLI(t, dbPath, "migrate", "down")
	assert.Contains(t, out, "Schema version: 1")

	_, err := runCLI(t, dbPath, "stats")
	assert.Error(t, err, "outdated schema is rejected")

	out = mustRunCLI(t, dbPath, "migrate", "status")
	assert.Contains(t, out, "Schema version: 1")

	out = mustRunCLI(t, dbPath, "migrate", "up")
	assert.Contains(t, out, "Schema version: 2")
}

func TestTaskCommands(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "board.db")
	mustRunCLI(t, dbPath, "init")

	first := strings.TrimSpace(mustRunCLI(t, dbPath, "task", "add", "Write", "report", "--urgent", "--due", "2026-10-31", "--tag", "work,q4"))
	second := strings.TrimSpace(mustRunCLI(t, dbPath, "task", "add", "Water plants", "-i"))
	require.Len(t, first, 26)
	require.Len(t, second, 26)

	out := mustRunCLI(t, dbPath, "task", "list")
	assert.Contains(t, out, "Write report")
	assert.Contains(t, out, "2026-10-31")
	assert.Contains(t, out, "work,q4")
	assert.Contains(t, out, "Water plants")

	var tasks []models.Task
	require.NoError(t, json.Unmarshal([]byte(mustRunCLI(t, dbPath, "task", "list", "--urgent", "--json")), &tasks))
	require.Len(t, tasks, 1)
	assert.Equal(t, first, tasks[0].ID)
	assert.Equal(t, []string{"work", "q4"}, tasks[0].Tags)

	subID := strings.TrimSpace(mustRunCLI(t, dbPath, "task", "sub", first, "Outline"))
	assert.NotEmpty(t, subID)
	out = mustRunCLI(t, dbPath, "task", "sub", first)
	assert.Contains(t, out, "Outline")

	out = mustRunCLI(t, dbPath, "task", "done", first)
	assert.Contains(t, out, "Completed "+first)

	tasks = nil
	require.NoError(t, json.Unmarshal([]byte(mustRunCLI(t, dbPath, "task", "list", "--status", "open", "--json")), &tasks))
	require.Len(t, tasks, 1)
	assert.Equal(t, second, tasks[0].ID)

	out = mustRunCLI(t, dbPath, "task", "rm", first)
	assert.Contains(t, out, "Deleted "+first)

	_, err := runCLI(t, dbPath, "task", "rm", first)
	assert.Error(t, err)

	_, err = runCLI(t, dbPath, "task", "list", "--status", "later")
	assert.Error(t, err)

	_, err = runCLI(t, dbPath, "task", "add", "Bad date", "--due", "31/10/2026")
	assert.Error(t, err)
}

func TestStatsAndProgressCommands(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "board.db")
	mustRunCLI(t, dbPath, "init")
	mustRunCLI(t, dbPath, "task", "add", "One")
	mustRunCLI(t, dbPath, "task", "add", "Two")

	out := mustRunCLI(t, dbPath, "progress", "add", "alice", "5")
	assert.Contains(t, out, "alice: 5 points, level 1")
	out = mustRunCLI(t, dbPath, "progress", "add", "alice", "2.5")
	assert.Contains(t, out, "alice: 7.5 points")
	out = mustRunCLI(t, dbPath, "progress", "show", "alice")
	assert.Contains(t, out, "alice: 7.5 points")

	_, err := runCLI(t, dbPath, "progress", "show", "bob")
	assert.Error(t, err)
	_, err = runCLI(t, dbPath, "progress", "add", "alice", "lots")
	assert.Error(t, err)

	var stats struct {
		Tables    []models.TableStats `json:"tables"`
		OpenTasks int                 `json:"open_tasks"`
	}
	require.NoError(t, json.Unmarshal([]byte(mustRunCLI(t, dbPath, "stats", "--json")), &stats))
	assert.Equal(t, 2, stats.OpenTasks)
	assert.Contains(t, stats.Tables, models.TableStats{Table: "tasks", Rows: 2})
	assert.Contains(t, stats.Tables, models.TableStats{Table: "progress", Rows: 1})
	assert.Len(t, stats.Tables, 6)
}

func TestRecoveryCommand(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "board.db")
	mustRunCLI(t, dbPath, "init")

	out := mustRunCLI(t, dbPath, "recovery", "--dryrun")
	assert.Contains(t, out, "0 task(s) need fixing")

	out = mustRunCLI(t, dbPath, "recovery")
	assert.Contains(t, out, "0 task(s) fixed")
}
