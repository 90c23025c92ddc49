package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/overpane/internal/cli/styles"
	"github.com/bnema/overpane/internal/config"
	"github.com/bnema/overpane/internal/logging"
	"github.com/bnema/overpane/internal/panels"
)

// execute runs the root command with args and returns its output. Flags
// are reset afterwards since cobra keeps them on the package-level commands.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() {
		resetFlags(rootCmd)
		app = nil
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func TestConfigPath_ReportsMissingFile(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, "--config-dir", dir, "config", "path")
	require.NoError(t, err)

	assert.Contains(t, out, config.ConfigFilePath(dir))
	assert.Contains(t, out, "not created yet")
}

func TestConfigInit_WritesOnce(t *testing.T) {
	// Arrange
	dir := t.TempDir()

	// Act
	out, err := execute(t, "--config-dir", dir, "config", "init")
	require.NoError(t, err)
	again, err := execute(t, "--config-dir", dir, "config", "init")
	require.NoError(t, err)

	// Assert
	assert.Contains(t, out, "Wrote defaults to config.toml")
	assert.Contains(t, again, "already exists")
	data, err := os.ReadFile(config.ConfigFilePath(dir))
	require.NoError(t, err)
	assert.Contains(t, string(data), "hang_factor")
}

func TestConfigShow_StyledAndTOML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(config.ConfigFilePath(dir), []byte("[panels]\nhang_factor = 4\n"), 0o600))

	out, err := execute(t, "--config-dir", dir, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "[panels]")
	assert.Contains(t, out, "hang_factor")
	assert.Contains(t, out, "4")

	out, err = execute(t, "--config-dir", dir, "config", "show", "--toml")
	require.NoError(t, err)
	assert.Contains(t, out, "hang_factor = 4.0")
	assert.Contains(t, out, "[appearance]")
}

func TestConfigShow_InvalidFileShowsDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(config.ConfigFilePath(dir), []byte("[panels]\nhang_factor = 0.5\n"), 0o600))

	out, err := execute(t, "--config-dir", dir, "config", "show")
	require.NoError(t, err)

	assert.Contains(t, out, "Config error")
	assert.NotContains(t, out, "0.5")
}

func TestConfigSchema_PrintAndWrite(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, "--config-dir", dir, "config", "schema")
	require.NoError(t, err)
	assert.Contains(t, out, `"hang_factor"`)

	_, err = execute(t, "--config-dir", dir, "config", "schema", "--write")
	require.NoError(t, err)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasSuffix(entries[0].Name(), ".json"))
}

func TestOffsets_UsesFlags(t *testing.T) {
	out, err := execute(t, "--config-dir", t.TempDir(), "offsets", "--width", "400", "--hang-factor", "4")
	require.NoError(t, err)

	assert.Contains(t, out, "width 400, hang factor 4")
	assert.Contains(t, out, "-300")
	assert.Contains(t, out, "100")
}

func TestOffsets_RejectsBadHangFactor(t *testing.T) {
	tests := []string{"1", "0.5", "NaN", "+Inf"}

	for _, value := range tests {
		t.Run(value, func(t *testing.T) {
			_, err := execute(t, "--config-dir", t.TempDir(), "offsets", "--hang-factor", value)
			require.ErrorIs(t, err, panels.ErrInvalidHangFactor)
		})
	}
}

func TestOffsets_RejectsBadWidth(t *testing.T) {
	tests := []string{"0", "-10", "NaN", "+Inf"}

	for _, value := range tests {
		t.Run(value, func(t *testing.T) {
			out, err := execute(t, "--config-dir", t.TempDir(), "offsets", "--width", value, "--hang-factor", "4")
			require.Error(t, err)
			assert.NotContains(t, out, "hang factor 4")
		})
	}
}

func TestOffsetRows(t *testing.T) {
	rows := offsetRows(600, 6)

	require.Len(t, rows, 3)
	assert.Equal(t, styles.OffsetsRow{State: "left", Offset: -500, DrawerX: 100, DrawerWidth: 500, HasDrawer: true}, rows[0])
	assert.Equal(t, styles.OffsetsRow{State: "center"}, rows[1])
	assert.Equal(t, styles.OffsetsRow{State: "right", Offset: 500, DrawerWidth: 500, HasDrawer: true}, rows[2])
}

func TestVersion_SkipsAppInit(t *testing.T) {
	SetBuildInfo(cliBuildInfo("1.2.3"))
	t.Cleanup(func() { SetBuildInfo(cliBuildInfo("")) })

	out, err := execute(t, "version")
	require.NoError(t, err)

	assert.Contains(t, out, "overpane 1.2.3")
	assert.Nil(t, GetApp())
}

func TestLogs_NoFile(t *testing.T) {
	out, err := execute(t, "--config-dir", t.TempDir(), "logs", "--dir", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "No logs yet")
}

func TestLogs_ShowsLastLines(t *testing.T) {
	dir := t.TempDir()
	lines := []string{
		`{"level":"info","time":"2026-01-01T10:00:00Z","message":"first"}`,
		`{"level":"warn","time":"2026-01-01T10:00:01Z","message":"second","component":"overlapping-panels"}`,
		`plain error line`,
	}
	require.NoError(t, os.WriteFile(logging.LogFilePath(dir), []byte(strings.Join(lines, "\n")+"\n"), 0o600))

	out, err := execute(t, "--config-dir", t.TempDir(), "logs", "--dir", dir, "-n", "2")
	require.NoError(t, err)

	assert.NotContains(t, out, "first")
	assert.Contains(t, out, "second")
	assert.Contains(t, out, "overlapping-panels:")
	assert.Contains(t, out, "plain error line")
}

func TestLogsClear_KeepsActiveUnlessAll(t *testing.T) {
	dir := t.TempDir()
	active := logging.LogFilePath(dir)
	backup := active + ".2026-01-01-10-00-00.000"
	require.NoError(t, os.WriteFile(active, []byte("x\n"), 0o600))
	require.NoError(t, os.WriteFile(backup, []byte("y\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), nil, 0o600))

	out, err := execute(t, "--config-dir", t.TempDir(), "logs", "clear", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Cleared 1 file(s)")
	assert.FileExists(t, active)
	assert.NoFileExists(t, backup)

	_, err = execute(t, "--config-dir", t.TempDir(), "logs", "clear", "--dir", dir, "--all")
	require.NoError(t, err)
	assert.NoFileExists(t, active)
	assert.FileExists(t, filepath.Join(dir, "other.txt"))
}

func TestTailLog_StopsWithContext(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	path := logging.LogFilePath(dir)
	require.NoError(t, os.WriteFile(path, []byte("old\n"), 0o600))
	ctx, cancel := context.WithCancel(context.Background())

	var out safeBuffer
	done := make(chan error, 1)

	// Act
	go func() { done <- tailLog(ctx, &out, path, styles.NewTheme()) }()
	require.Eventually(t, func() bool { return strings.Contains(out.String(), "Following") }, 2*time.Second, 10*time.Millisecond)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o600)
	require.NoError(t, err)
	_, err = f.WriteString(`{"level":"info","message":"appended"}` + "\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	// Assert
	assert.Eventually(t, func() bool { return strings.Contains(out.String(), "appended") }, 2*time.Second, 20*time.Millisecond)
	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("tailLog did not stop")
	}
	assert.NotContains(t, out.String(), "old")
}
