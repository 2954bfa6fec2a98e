package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/spacefolio/config"
	"github.com/lixenwraith/spacefolio/parameter"
)

func TestSetupLogging_Disabled(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	logger, f, err := setupLogging(config.LogConfig{Enabled: false, Dir: dir})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f != nil {
		t.Error("Expected nil log file when logging is disabled")
		f.Close()
	}
	if logger.GetLevel() != zerolog.Disabled {
		t.Errorf("Expected disabled logger, got level %v", logger.GetLevel())
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Error("Expected no log directory when logging is disabled")
	}
}

func TestSetupLogging_Enabled(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	logger, f, err := setupLogging(config.LogConfig{Enabled: true, Level: "debug", Dir: dir})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f == nil {
		t.Fatal("Expected non-nil log file")
	}
	defer f.Close()

	if f == os.Stdout || f == os.Stderr {
		t.Error("Log output must not be stdout or stderr")
	}

	logger.Debug().Str("key", "value").Msg("test message")

	data, err := os.ReadFile(filepath.Join(dir, parameter.LogFileName))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	line := string(data)
	for _, want := range []string{`"key":"value"`, `"session":"`, `"message":"test message"`} {
		if !strings.Contains(line, want) {
			t.Errorf("Expected log line to contain %s, got %s", want, line)
		}
	}
}

func TestSetupLogging_LevelFilters(t *testing.T) {
	dir := t.TempDir()

	logger, f, err := setupLogging(config.LogConfig{Enabled: true, Level: "warn", Dir: dir})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer f.Close()

	logger.Info().Msg("dropped")
	data, _ := os.ReadFile(filepath.Join(dir, parameter.LogFileName))
	if len(data) != 0 {
		t.Errorf("Expected info to be filtered at warn level, got %q", data)
	}
}

func TestSetupLogging_Rotation(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, parameter.LogFileName)

	const maxSize = 1024
	if err := os.WriteFile(logPath, make([]byte, maxSize+1), 0644); err != nil {
		t.Fatalf("Failed to create large log file: %v", err)
	}

	_, f, err := setupLogging(config.LogConfig{Enabled: true, Level: "info", Dir: dir, MaxSize: maxSize})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer f.Close()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read logs directory: %v", err)
	}

	rotatedFound := false
	for _, entry := range entries {
		if entry.Name() != parameter.LogFileName && filepath.Ext(entry.Name()) == ".log" {
			rotatedFound = true
			break
		}
	}
	if !rotatedFound {
		t.Error("Expected to find rotated log file")
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat new log file: %v", err)
	}
	if info.Size() > maxSize {
		t.Errorf("Expected new log file to be smaller than %d bytes, got %d", maxSize, info.Size())
	}
}

func TestRotateLog_SmallFileKept(t *testing.T) {
	path := filepath.Join(t.TempDir(), "small.log")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := rotateLog(path, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Error("Expected small log to stay in place")
	}

	if err := rotateLog(filepath.Join(t.TempDir(), "missing.log"), 10); err != nil {
		t.Errorf("Missing log should not be an error: %v", err)
	}
}
