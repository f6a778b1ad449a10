package main

import (
	"encoding/json"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// readRecords parses the JSON lines written so far
func readRecords(t *testing.T) []map[string]any {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(logDir, logFileName))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}

	var records []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		if line == "" {
			continue
		}
		var rec map[string]any
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			t.Fatalf("Expected JSON log line, got %q: %v", line, err)
		}
		records = append(records, rec)
	}
	return records
}

func TestSetupLoggingDiscardsWithoutDebug(t *testing.T) {
	t.Chdir(t.TempDir())
	defer log.SetOutput(os.Stderr)

	logger, logFile := setupLogging(false, slog.LevelDebug)
	if logFile != nil {
		logFile.Close()
		t.Error("Expected no log file without debug")
	}
	if logger.Enabled(t.Context(), slog.LevelError) {
		t.Error("Expected discarding logger without debug")
	}
	if log.Writer() != io.Discard {
		t.Errorf("Expected std log discarded, got %v", log.Writer())
	}
	if _, err := os.Stat(logDir); !os.IsNotExist(err) {
		t.Error("Expected no logs directory without debug")
	}
}

func TestSetupLoggingLevelFilter(t *testing.T) {
	tests := []struct {
		name  string
		level slog.Level
		want  []string
	}{
		{"debug", slog.LevelDebug, []string{"frame", "game event", "dropping invalid frame delta"}},
		{"info", slog.LevelInfo, []string{"game event", "dropping invalid frame delta"}},
		{"warn", slog.LevelWarn, []string{"dropping invalid frame delta"}},
		{"error", slog.LevelError, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			defer log.SetOutput(os.Stderr)

			logger, logFile := setupLogging(true, tt.level)
			if logFile == nil {
				t.Fatal("Expected log file with debug")
			}
			defer logFile.Close()

			logger = logger.With("session_id", "abc")
			logger.Debug("frame", "steps", 1)
			logger.Info("game event", "event", "EnemyKilled", "score", 100)
			logger.Warn("dropping invalid frame delta", "dt", -1)

			records := readRecords(t)
			if len(records) != len(tt.want) {
				t.Fatalf("Expected %d records, got %d", len(tt.want), len(records))
			}
			for i, rec := range records {
				if rec["msg"] != tt.want[i] {
					t.Errorf("Expected record %d to be %q, got %v", i, tt.want[i], rec["msg"])
				}
				if rec["session_id"] != "abc" {
					t.Errorf("Expected session_id attribute, got %v", rec["session_id"])
				}
			}
		})
	}
}

func TestSetupLoggingRotatesLargeFile(t *testing.T) {
	t.Chdir(t.TempDir())
	defer log.SetOutput(os.Stderr)

	if err := os.MkdirAll(logDir, 0755); err != nil {
		t.Fatalf("Failed to create logs directory: %v", err)
	}
	logPath := filepath.Join(logDir, logFileName)
	if err := os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644); err != nil {
		t.Fatalf("Failed to write oversized log: %v", err)
	}

	logger, logFile := setupLogging(true, slog.LevelInfo)
	if logFile == nil {
		t.Fatal("Expected log file with debug")
	}
	defer logFile.Close()
	logger.Info("after rotation")

	entries, err := os.ReadDir(logDir)
	if err != nil {
		t.Fatalf("Failed to read logs directory: %v", err)
	}
	var rotated []string
	for _, e := range entries {
		if e.Name() != logFileName && strings.HasPrefix(e.Name(), "twin-stick-") && filepath.Ext(e.Name()) == ".log" {
			rotated = append(rotated, e.Name())
		}
	}
	if len(rotated) != 1 {
		t.Fatalf("Expected one rotated file, got %v", rotated)
	}

	info, err := os.Stat(filepath.Join(logDir, rotated[0]))
	if err != nil || info.Size() != maxLogSize+1 {
		t.Errorf("Expected rotated file to keep the old content, got %v %v", info, err)
	}
	if records := readRecords(t); len(records) != 1 || records[0]["msg"] != "after rotation" {
		t.Errorf("Expected fresh log with one record, got %v", records)
	}
}

func TestSetupLoggingKeepsSmallFile(t *testing.T) {
	t.Chdir(t.TempDir())
	defer log.SetOutput(os.Stderr)

	for _, msg := range []string{"first run", "second run"} {
		logger, logFile := setupLogging(true, slog.LevelInfo)
		if logFile == nil {
			t.Fatal("Expected log file with debug")
		}
		logger.Info(msg)
		logFile.Close()
	}

	records := readRecords(t)
	if len(records) != 2 || records[0]["msg"] != "first run" || records[1]["msg"] != "second run" {
		t.Errorf("Expected appended records from both runs, got %v", records)
	}
	if log.Writer() == os.Stdout || log.Writer() == os.Stderr {
		t.Error("Expected std log to stay off the terminal")
	}
}
