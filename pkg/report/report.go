// Package report walks a source tree and writes the important-files report.
package report

import (
	"fmt"
	"path/filepath"
	"time"

	"codedigest/pkg/selector"

	"go.uber.org/zap"
)

// Summary describes a completed run.
type Summary struct {
	Root         string
	Output       string
	Scanned      int
	Selected     int
	ContentBytes int64
}

// Reporter produces a report for a directory tree.
type Reporter struct {
	selector *selector.Selector
	logger   *zap.Logger
}

// New returns a Reporter. A nil selector is replaced by selector.New(logger).
func New(logger *zap.Logger, sel *selector.Selector) *Reporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	if sel == nil {
		sel = selector.New(logger)
	}
	return &Reporter{selector: sel, logger: logger}
}

// Generate collects the important files under root, builds the pruned tree
// and writes both to outputPath. Per-file problems are absorbed; only a
// failure to write outputPath is returned.
func (r *Reporter) Generate(root, outputPath string) (Summary, error) {
	startTime := time.Now()

	absRoot, err := filepath.Abs(root)
	if err != nil {
		r.logger.Error("Failed to resolve directory path", zap.String("root", root), zap.Error(err))
		return Summary{}, fmt.Errorf("failed to get absolute path: %w", err)
	}
	r.logger.Info("Starting report generation", zap.String("root", absRoot), zap.String("output", outputPath))

	walkRoot := absRoot
	if resolved, err := filepath.EvalSymlinks(absRoot); err == nil {
		walkRoot = resolved
	} else {
		r.logger.Warn("Root directory cannot be resolved, report will be empty", zap.String("root", absRoot), zap.Error(err))
	}

	collected := CollectFiles(walkRoot, r.selector, r.logger)
	for verdict, count := range collected.Skipped {
		r.logger.Debug("Skipped files", zap.Stringer("reason", verdict), zap.Int("count", count))
	}

	tree := BuildHierarchy(filepath.Base(absRoot), collected.Files)

	written, err := WriteReportFile(outputPath, tree.Lines(), walkRoot, collected.Files, r.logger)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to write report: %w", err)
	}

	summary := Summary{
		Root:         absRoot,
		Output:       outputPath,
		Scanned:      collected.Scanned,
		Selected:     len(collected.Files),
		ContentBytes: written,
	}
	r.logger.Info("Report generation completed",
		zap.Int("scannedFiles", summary.Scanned),
		zap.Int("selectedFiles", summary.Selected),
		zap.Int64("contentBytes", summary.ContentBytes),
		zap.Duration("elapsed", time.Since(startTime)))
	return summary, nil
}
