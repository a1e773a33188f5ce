// cmd/replicator/logging.go
package main

import (
	"io"
	"log"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/tamzrod/modal-replicator/internal/config"
)

// setupLogging tees the standard logger into a rotating file when one is
// configured. Stderr output is always kept.
func setupLogging(lc config.LogConfig) func() {
	if lc.File == "" {
		return func() {}
	}

	rot := &lumberjack.Logger{
		Filename:   lc.File,
		MaxSize:    lc.MaxSizeMB,
		MaxBackups: lc.MaxBackups,
		MaxAge:     lc.MaxAgeDays,
		Compress:   lc.Compress,
	}

	log.SetOutput(io.MultiWriter(os.Stderr, rot))
	log.Printf("logging to %s (max %d MB, %d backups)", lc.File, lc.MaxSizeMB, lc.MaxBackups)

	return func() {
		log.SetOutput(os.Stderr)
		_ = rot.Close()
	}
}
