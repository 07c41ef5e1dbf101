package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

const (
	logDir      = "logs"
	logFileName = "vi-snake.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging routes the standard logger to logs/vi-snake.log when debug is on
// Logs never reach stdout or stderr, the terminal belongs to the screen
// A log over maxLogSize is renamed with a timestamp before a fresh file is opened
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		if err := rotateLog(logPath); err != nil {
			// Never keep appending to an oversized file
			log.SetOutput(io.Discard)
			return nil
		}
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)
	log.Printf("=== vi-snake session started ===")
	return f
}

// rotateLog moves path aside under a timestamped name, truncating in place if the rename fails
func rotateLog(path string) error {
	rotated := filepath.Join(filepath.Dir(path), fmt.Sprintf("vi-snake-%s.log", time.Now().Format("20060102-150405")))
	renameErr := os.Rename(path, rotated)
	if renameErr == nil {
		return nil
	}
	if err := os.Truncate(path, 0); err != nil {
		return fmt.Errorf("rotate %s: rename: %v, truncate: %w", path, renameErr, err)
	}
	return nil
}
