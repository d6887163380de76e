package selector

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
)

var newlineNormalizer = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// ReadText reads a file as UTF-8 text. Invalid byte sequences are replaced
// with U+FFFD and line endings are normalized to "\n". Only I/O failures are
// reported as errors.
func ReadText(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("error reading file %s: %w", path, err)
	}

	decoded, err := unicode.UTF8.NewDecoder().Bytes(raw)
	if err != nil {
		// The UTF-8 decoder replaces rather than fails; keep the raw bytes if it ever does.
		decoded = raw
	}

	return newlineNormalizer.Replace(string(decoded)), nil
}
