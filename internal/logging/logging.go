// internal/logging/logging.go
// Package logging routes the standard logger to the run's log file.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

var (
	mu      sync.Mutex
	logFile *os.File
)

// Init sends log output to logPath when set and to stderr when debug is on.
// With neither, log output is discarded so console output stays clean.
func Init(logPath string, debug bool) error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}

	var writers []io.Writer
	if debug {
		writers = append(writers, os.Stderr)
	}

	if logPath != "" {
		if dir := filepath.Dir(logPath); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		logFile = file
		writers = append(writers, logFile)
	}

	if len(writers) == 0 {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(io.MultiWriter(writers...))
	return nil
}

func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if logFile == nil {
		return nil
	}
	log.SetOutput(os.Stderr)
	err := logFile.Close()
	logFile = nil
	return err
}

func LogEvent(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	log.Println(msg)
}
