package cli

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/sprintline/internal/config"
)

const maxHistoryLines = 500

func shellHistoryPath() string {
	dir, err := config.GlobalConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "shell_history")
}

func appendShellHistory(line string) {
	if path := shellHistoryPath(); path != "" {
		appendHistoryToPath(path, line)
	}
}

// appendHistoryToPath appends line to the history file. History is
// best-effort; failures are ignored.
func appendHistoryToPath(path, line string) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()
	_, _ = f.WriteString(line + "\n")
}

// loadHistoryFromPath returns the most recent history lines, oldest first.
func loadHistoryFromPath(path string) []string {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) > maxHistoryLines {
		lines = lines[len(lines)-maxHistoryLines:]
	}
	return lines
}
