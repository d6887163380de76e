package report

import (
	"io/fs"
	"os"
	"path/filepath"

	"codedigest/pkg/selector"

	"go.uber.org/zap"
)

// Collection is the outcome of walking a root directory.
type Collection struct {
	Files   []string // Slash-separated paths of selected files, relative to the root, in walk order.
	Scanned int      // Number of files handed to the selector.
	Skipped map[selector.Verdict]int
}

// CollectFiles walks root top-down and returns the files the selector
// accepts. Within each directory the files are visited first, by name, and
// the subdirectories are descended into afterwards, also by name. Entries
// that cannot be accessed are logged and skipped; a missing root yields an
// empty collection.
func CollectFiles(root string, sel *selector.Selector, logger *zap.Logger) Collection {
	collected := Collection{Skipped: map[selector.Verdict]int{}}
	logger.Debug("Starting file collection", zap.String("root", root))

	collected.walkDirectory(root, "", sel, logger)

	logger.Debug("Completed file collection",
		zap.Int("scanned", collected.Scanned),
		zap.Int("selected", len(collected.Files)))
	return collected
}

func (c *Collection) walkDirectory(root, relDir string, sel *selector.Selector, logger *zap.Logger) {
	dir := filepath.Join(root, relDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		logger.Warn("Error reading directory during traversal", zap.String("path", dir), zap.Error(err))
		return
	}

	var subdirs []string
	for _, entry := range entries {
		relPath := filepath.Join(relDir, entry.Name())
		if entry.IsDir() {
			subdirs = append(subdirs, relPath)
			continue
		}
		if !isFileEntry(filepath.Join(root, relPath), entry) {
			logger.Debug("Skipping non-regular file", zap.String("path", relPath))
			continue
		}

		c.Scanned++
		if verdict := sel.Evaluate(root, relPath); verdict != selector.Accepted {
			c.Skipped[verdict]++
			continue
		}
		c.Files = append(c.Files, filepath.ToSlash(relPath))
	}

	for _, subdir := range subdirs {
		c.walkDirectory(root, subdir, sel, logger)
	}
}

// isFileEntry reports whether entry is a regular file or a symlink to
// something other than a directory. Symlinked directories are not followed.
func isFileEntry(path string, entry fs.DirEntry) bool {
	if entry.Type().IsRegular() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err != nil || !info.IsDir()
}
