package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"codedigest/pkg/selector"

	"go.uber.org/zap"
)

const (
	structureHeader   = "DIRECTORY STRUCTURE (Important Files Only):\n"
	contentHeader     = "\n\nIMPORTANT FILES & THEIR CONTENT:\n\n"
	unreadableContent = "[Could not read file content]\n"
)

// WriteReportFile creates or truncates outputPath and writes the report to it.
func WriteReportFile(outputPath string, treeLines []string, root string, files []string, logger *zap.Logger) (written int64, err error) {
	logger.Debug("Writing report", zap.String("outputFile", outputPath))

	outFile, err := os.Create(outputPath)
	if err != nil {
		logger.Error("Failed to create output file", zap.String("file", outputPath), zap.Error(err))
		return 0, fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := outFile.Close(); closeErr != nil && err == nil {
			logger.Error("Failed to close output file", zap.String("file", outputPath), zap.Error(closeErr))
			err = fmt.Errorf("failed to close output file: %w", closeErr)
		}
	}()

	writer := bufio.NewWriter(outFile)
	written, err = WriteReport(writer, treeLines, root, files, logger)
	if err != nil {
		logger.Error("Failed to write report", zap.String("file", outputPath), zap.Error(err))
		return written, err
	}

	if err := writer.Flush(); err != nil {
		logger.Error("Failed to flush output file", zap.String("file", outputPath), zap.Error(err))
		return written, fmt.Errorf("failed to flush output: %w", err)
	}
	return written, nil
}

// WriteReport writes the directory structure followed by the content of each
// file, re-read from root. A file that can no longer be read is replaced by a
// placeholder. It returns the number of content bytes written for the files.
func WriteReport(w io.Writer, treeLines []string, root string, files []string, logger *zap.Logger) (int64, error) {
	if _, err := io.WriteString(w, structureHeader+strings.Join(treeLines, "\n")+contentHeader); err != nil {
		return 0, fmt.Errorf("failed to write directory structure: %w", err)
	}

	var written int64
	for _, relPath := range files {
		content, err := selector.ReadText(filepath.Join(root, filepath.FromSlash(relPath)))
		if err != nil {
			logger.Warn("Failed to re-read file, writing placeholder", zap.String("file", relPath), zap.Error(err))
			content = unreadableContent
		}

		if _, err := io.WriteString(w, "--- "+relPath+" ---\n"+content+"\n\n"); err != nil {
			return written, fmt.Errorf("failed to write content of %s: %w", relPath, err)
		}
		written += int64(len(content))
	}
	return written, nil
}
