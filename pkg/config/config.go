// Package config resolves the command-line inputs of a run.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Keys under which the command flags are bound in viper.
const (
	KeyOutput = "output"
	KeyDebug  = "debug"
)

// DefaultOutput is the report path used when none is given.
const DefaultOutput = "structure_and_files.txt"

// ErrMissingRoot is returned when no root directory was supplied.
var ErrMissingRoot = errors.New("root directory is required")

// Options holds the configuration of a single report run.
type Options struct {
	Root   string // Absolute path of the directory to scan.
	Output string // Destination path of the report file.
	Debug  bool   // Enables development logging with per-file verdicts.
}

// NewViper returns a viper instance carrying the defaults. Environment
// variables and configuration files are not consulted.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyOutput, DefaultOutput)
	v.SetDefault(KeyDebug, false)
	return v
}

// Load builds Options from the bound viper values and the positional arguments.
func Load(v *viper.Viper, args []string) (Options, error) {
	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		return Options{}, ErrMissingRoot
	}

	root, err := filepath.Abs(args[0])
	if err != nil {
		return Options{}, fmt.Errorf("failed to resolve root %q: %w", args[0], err)
	}

	output := v.GetString(KeyOutput)
	if strings.TrimSpace(output) == "" {
		output = DefaultOutput
	}

	return Options{
		Root:   root,
		Output: output,
		Debug:  v.GetBool(KeyDebug),
	}, nil
}
