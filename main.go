package main

import (
	"log"
	"os"
	"strings"

	"codedigest/cmd"
	"codedigest/pkg/logging"

	"go.uber.org/zap"
	"golang.org/x/term"
)

func main() {
	// The logger is configured by the command once the --debug flag is known.
	err := cmd.Execute()
	logger := logging.Logger

	if err != nil {
		logger.Error("codedigest execution failed", zap.Error(err))
		syncLogger(logger)
		os.Exit(1)
	}
	syncLogger(logger)
}

// syncLogger flushes the logger when stderr is a terminal or a regular file.
// Syncing a pipe or /dev/null reports "invalid argument" on some platforms.
func syncLogger(logger *zap.Logger) {
	if !term.IsTerminal(int(os.Stderr.Fd())) && !isRegularFile(os.Stderr) {
		return
	}
	if syncErr := logger.Sync(); syncErr != nil {
		lowerErr := strings.ToLower(syncErr.Error())
		if !strings.Contains(lowerErr, "invalid argument") {
			log.Printf("Logger sync failed: %v", syncErr)
		}
	}
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return fileInfo.Mode().IsRegular()
}
