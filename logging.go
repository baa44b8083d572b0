package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
)

// stdout and stderr belong to the game screen, so logs only ever go to a file
var logDir = filepath.Join(os.TempDir(), "termdrop")

// setupLogging sends the standard logger to logDir/<name>.log when debug
// is set and discards it otherwise. The returned file, if any, must be
// closed by the caller.
func setupLogging(debug bool, name string) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	f, err := os.OpenFile(filepath.Join(logDir, name+".log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	log.SetPrefix("[" + name + "] ")
	return f
}
