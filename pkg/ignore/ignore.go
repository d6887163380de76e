// Package ignore matches relative paths against ignored directory names.
package ignore

import (
	"path/filepath"
	"regexp"

	"go.uber.org/zap"
)

// DefaultDirectories lists the directory names that are never scanned.
var DefaultDirectories = []string{
	"node_modules",
	".git",
	"vendor",
	"venv",
	"__pycache__",
	".next",
}

// Pattern is a compiled directory pattern and the name it was built from.
type Pattern struct {
	Regexp *regexp.Regexp
	Name   string
}

// Matcher represents a collection of ignored directory patterns.
type Matcher struct {
	patterns []*Pattern
	logger   *zap.Logger
}

// New compiles a Matcher for the given directory names. A name matches a
// path when one of the path's directory segments equals it exactly.
func New(logger *zap.Logger, names ...string) *Matcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &Matcher{logger: logger}
	for _, name := range names {
		if name == "" {
			continue
		}
		p := &Pattern{
			Regexp: regexp.MustCompile(directoryPattern(name)),
			Name:   name,
		}
		m.patterns = append(m.patterns, p)
		m.logger.Debug("Compiled ignore pattern",
			zap.String("directory", p.Name),
			zap.String("regexp", p.Regexp.String()))
	}
	return m
}

// Default returns a Matcher for DefaultDirectories.
func Default(logger *zap.Logger) *Matcher {
	return New(logger, DefaultDirectories...)
}

// Len returns the number of compiled patterns.
func (m *Matcher) Len() int {
	return len(m.patterns)
}

// MatchesPath checks if a path lies under any of the ignored directories.
func (m *Matcher) MatchesPath(path string) bool {
	normalizedPath := filepath.ToSlash(path)
	for _, p := range m.patterns {
		if p.Regexp.MatchString(normalizedPath) {
			return true
		}
	}
	return false
}

// directoryPattern anchors name so that it must be a complete segment
// followed by at least one more segment.
func directoryPattern(name string) string {
	return `^(|.*/)` + regexp.QuoteMeta(name) + `/`
}
