package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/overpane/internal/cli/styles"
	"github.com/bnema/overpane/internal/config"
	"github.com/bnema/overpane/internal/logging"
)

var (
	logsFollow   bool
	logsLines    int
	logsDir      string
	logsClearAll bool
)

const (
	defaultLogsLines = 50
	followPoll       = 100 * time.Millisecond
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "View terminal host logs",
	Long: `View the log file written while 'overpane tui' runs.

Examples:
  overpane logs              # Last 50 lines
  overpane logs -n 200       # Last 200 lines
  overpane logs -f           # Follow new lines until Ctrl+C`,
	RunE: runLogs,
}

var logsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove rotated log files",
	Long: `Remove the rotated backups of the log file. With --all the active
log file is removed too.`,
	RunE: runLogsClear,
}

func init() {
	rootCmd.AddCommand(logsCmd)
	logsCmd.AddCommand(logsClearCmd)

	logsCmd.PersistentFlags().StringVar(&logsDir, "dir", "", "log directory (default $XDG_STATE_HOME/overpane)")
	logsCmd.Flags().BoolVarP(&logsFollow, "follow", "f", false, "follow log output in real-time")
	logsCmd.Flags().IntVarP(&logsLines, "lines", "n", defaultLogsLines, "number of lines to show")
	logsClearCmd.Flags().BoolVar(&logsClearAll, "all", false, "remove the active log file as well")
}

// getLogDir returns the log directory path.
func getLogDir() string {
	if logsDir != "" {
		return logsDir
	}
	return config.DefaultLogDir()
}

func runLogs(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	out := cmd.OutOrStdout()
	path := logging.LogFilePath(getLogDir())
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintln(out, app.Theme.Subtle.Render("No logs yet. Run 'overpane tui' to create them."))
			return nil
		}
		return fmt.Errorf("stat log file: %w", err)
	}

	if logsFollow {
		return tailLog(cmd.Context(), out, path, app.Theme)
	}
	return showLog(out, path, logsLines, app.Theme)
}

// showLog prints the last lines of the log file.
func showLog(out io.Writer, logPath string, lines int, theme *styles.Theme) (retErr error) {
	file, err := os.Open(logPath)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && retErr == nil {
			retErr = fmt.Errorf("close log file: %w", closeErr)
		}
	}()

	var allLines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		allLines = append(allLines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read log file: %w", err)
	}

	start := 0
	if lines >= 0 && len(allLines) > lines {
		start = len(allLines) - lines
	}
	for _, line := range allLines[start:] {
		fmt.Fprintln(out, colorizeLogLine(line, theme))
	}
	return nil
}

// tailLog prints lines appended to the log file until ctx is done.
func tailLog(ctx context.Context, out io.Writer, logPath string, theme *styles.Theme) error {
	file, err := os.Open(logPath)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() { _ = file.Close() }()

	if _, err := file.Seek(0, io.SeekEnd); err != nil {
		return fmt.Errorf("seek log file: %w", err)
	}

	fmt.Fprintln(out, theme.Subtle.Render("Following logs... (Ctrl+C to stop)"))
	fmt.Fprintln(out)

	ticker := time.NewTicker(followPoll)
	defer ticker.Stop()

	reader := bufio.NewReader(file)
	pending := ""
	for {
		chunk, err := reader.ReadString('\n')
		pending += chunk
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("read log file: %w", err)
		}
		if err == nil {
			fmt.Fprintln(out, colorizeLogLine(strings.TrimSuffix(pending, "\n"), theme))
			pending = ""
			continue
		}

		// No full line yet; keep partial data.
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// logEntry represents a parsed JSON log entry.
type logEntry struct {
	Level     string `json:"level"`
	Time      string `json:"time"`
	Message   string `json:"message"`
	Component string `json:"component"`
}

// colorizeLogLine adds color based on log level.
func colorizeLogLine(line string, theme *styles.Theme) string {
	var entry logEntry
	if err := json.Unmarshal([]byte(line), &entry); err == nil {
		return formatJSONLogLine(entry, theme)
	}

	// Fallback to pattern matching for non-JSON logs
	switch {
	case containsAny(line, "ERR", "error"):
		return theme.ErrorStyle.Render(line)
	case containsAny(line, "WRN", "warn"):
		return theme.WarningStyle.Render(line)
	case containsAny(line, "DBG", "debug"):
		return theme.Subtle.Render(line)
	default:
		return line
	}
}

// formatJSONLogLine formats a parsed JSON log entry with colors.
func formatJSONLogLine(entry logEntry, theme *styles.Theme) string {
	timeStr := entry.Time
	if t, err := time.Parse(time.RFC3339, entry.Time); err == nil {
		timeStr = t.Format("15:04:05")
	}

	var levelStr string
	switch entry.Level {
	case "error", "fatal", "panic":
		levelStr = theme.ErrorStyle.Render("ERR")
	case "warn":
		levelStr = theme.WarningStyle.Render("WRN")
	case "info":
		levelStr = theme.Highlight.Render("INF")
	case "debug":
		levelStr = theme.Subtle.Render("DBG")
	case "trace":
		levelStr = theme.Subtle.Render("TRC")
	default:
		levelStr = entry.Level
	}

	msg := entry.Message
	if entry.Component != "" {
		msg = theme.Subtle.Render(entry.Component+":") + " " + msg
	}
	return fmt.Sprintf("%s %s %s", theme.Subtle.Render(timeStr), levelStr, msg)
}

// containsAny checks if s contains any of the substrings.
func containsAny(s string, substrs ...string) bool {
	sLower := strings.ToLower(s)
	for _, substr := range substrs {
		if strings.Contains(sLower, strings.ToLower(substr)) {
			return true
		}
	}
	return false
}

// logFiles lists the active log file and its rotated backups, oldest
// backup first and the active file last.
func logFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read log directory: %w", err)
	}

	active := filepath.Base(logging.LogFilePath(dir))
	var backups []string
	hasActive := false
	for _, entry := range entries {
		switch name := entry.Name(); {
		case entry.IsDir():
		case name == active:
			hasActive = true
		case strings.HasPrefix(name, active+"."):
			backups = append(backups, filepath.Join(dir, name))
		}
	}
	sort.Strings(backups)
	if hasActive {
		backups = append(backups, logging.LogFilePath(dir))
	}
	return backups, nil
}

func runLogsClear(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	out := cmd.OutOrStdout()
	dir := getLogDir()
	files, err := logFiles(dir)
	if err != nil {
		return err
	}

	active := logging.LogFilePath(dir)
	var removed int
	for _, path := range files {
		if path == active && !logsClearAll {
			continue
		}
		if err := os.Remove(path); err != nil {
			fmt.Fprintf(out, "%s %s: %v\n", app.Theme.ErrorStyle.Render(styles.IconX), filepath.Base(path), err)
			continue
		}
		fmt.Fprintf(out, "%s %s\n", app.Theme.SuccessStyle.Render(styles.IconCheck), filepath.Base(path))
		removed++
	}

	if removed == 0 {
		fmt.Fprintln(out, app.Theme.Subtle.Render("No logs to clear"))
		return nil
	}
	fmt.Fprintln(out, app.Theme.SuccessStyle.Render(fmt.Sprintf("Cleared %d file(s)", removed)))
	return nil
}
