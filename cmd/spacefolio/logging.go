package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/spacefolio/config"
	"github.com/lixenwraith/spacefolio/parameter"
)

// setupLogging opens the session log file
// Disabled logging returns a Nop logger and nil file, output never reaches stdout/stderr
// since the screen owns the terminal
func setupLogging(cfg config.LogConfig) (zerolog.Logger, *os.File, error) {
	if !cfg.Enabled {
		return zerolog.Nop(), nil, nil
	}

	dir := cfg.Dir
	if dir == "" {
		dir = parameter.LogDir
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("create log dir: %w", err)
	}

	path := filepath.Join(dir, parameter.LogFileName)
	maxSize := cfg.MaxSize
	if maxSize <= 0 {
		maxSize = parameter.LogMaxSize
	}
	if err := rotateLog(path, maxSize); err != nil {
		return zerolog.Nop(), nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	logger := zerolog.New(f).Level(level).With().
		Timestamp().
		Str("session", uuid.NewString()).
		Logger()
	return logger, f, nil
}

// rotateLog renames an oversized log aside with a timestamp suffix
func rotateLog(path string, maxSize int64) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat log file: %w", err)
	}
	if info.Size() <= maxSize {
		return nil
	}

	ext := filepath.Ext(path)
	rotated := fmt.Sprintf("%s-%s%s", path[:len(path)-len(ext)], time.Now().Format("20060102-150405"), ext)
	if err := os.Rename(path, rotated); err != nil {
		return fmt.Errorf("rotate log file: %w", err)
	}
	return nil
}
