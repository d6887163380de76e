// Package selector decides which source files are worth including in a report.
package selector

import (
	"os"
	"path/filepath"
	"strings"

	"codedigest/pkg/ignore"

	"go.uber.org/zap"
)

// MaxFileSizeBytes is the largest file, in bytes, that can be selected.
const MaxFileSizeBytes = 200000

// CodeExtensions is the set of lower-cased extensions treated as source code.
var CodeExtensions = map[string]bool{
	".js": true, ".mjs": true, ".cjs": true, ".jsx": true, ".ts": true, ".tsx": true,
	".py": true, ".java": true, ".rb": true, ".go": true, ".php": true,
	".c": true, ".cpp": true, ".cs": true,
	".vue": true, ".rs": true, ".swift": true, ".scala": true,
	".kt": true, ".kts": true, ".ex": true, ".exs": true,
	".sh": true, ".ps1": true, ".erl": true, ".lua": true,
}

// CodeKeywords are the substrings that mark a file as containing code logic.
var CodeKeywords = []string{"function ", "class ", "def ", "import "}

// Verdict records why a file was or was not selected.
type Verdict int

const (
	Accepted Verdict = iota
	IgnoredDirectory
	UnsupportedExtension
	Minified
	TooLarge
	Unreadable
	Blank
	NoCodeConstructs
)

var verdictNames = [...]string{
	Accepted:             "accepted",
	IgnoredDirectory:     "ignored directory",
	UnsupportedExtension: "unsupported extension",
	Minified:             "minified",
	TooLarge:             "too large",
	Unreadable:           "unreadable",
	Blank:                "blank",
	NoCodeConstructs:     "no code constructs",
}

func (v Verdict) String() string {
	if v < 0 || int(v) >= len(verdictNames) {
		return "unknown"
	}
	return verdictNames[v]
}

// Selector applies the importance heuristics to individual files.
type Selector struct {
	ignore *ignore.Matcher
	logger *zap.Logger
}

// New returns a Selector that skips ignore.DefaultDirectories.
func New(logger *zap.Logger) *Selector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Selector{
		ignore: ignore.Default(logger),
		logger: logger,
	}
}

// IsImportant reports whether the file at path should be included.
// Every path segment of path is checked against the ignored directories.
func (s *Selector) IsImportant(path string) bool {
	return s.Evaluate("", path) == Accepted
}

// Evaluate classifies the file at relativePath under root. The checks run in
// order and stop at the first rejection; failures never escape as errors.
func (s *Selector) Evaluate(root, relativePath string) Verdict {
	verdict := s.evaluate(root, relativePath)
	s.logger.Debug("Evaluated file",
		zap.String("path", relativePath),
		zap.Stringer("verdict", verdict))
	return verdict
}

func (s *Selector) evaluate(root, relativePath string) Verdict {
	if s.ignore.MatchesPath(relativePath) {
		return IgnoredDirectory
	}

	ext := strings.ToLower(filepath.Ext(relativePath))
	if !CodeExtensions[ext] {
		return UnsupportedExtension
	}

	if ext == ".js" && strings.Contains(strings.ToLower(filepath.Base(relativePath)), "min") {
		return Minified
	}

	fullPath := filepath.Join(root, relativePath)
	info, err := os.Stat(fullPath)
	if err != nil {
		s.logger.Debug("Failed to stat file", zap.String("file", fullPath), zap.Error(err))
		return Unreadable
	}
	if info.Size() > MaxFileSizeBytes {
		return TooLarge
	}

	content, err := ReadText(fullPath)
	if err != nil {
		s.logger.Debug("Failed to read file", zap.String("file", fullPath), zap.Error(err))
		return Unreadable
	}

	if strings.TrimSpace(content) == "" {
		return Blank
	}

	if !containsCodeKeyword(content) {
		return NoCodeConstructs
	}
	return Accepted
}

func containsCodeKeyword(content string) bool {
	for _, keyword := range CodeKeywords {
		if strings.Contains(content, keyword) {
			return true
		}
	}
	return false
}
