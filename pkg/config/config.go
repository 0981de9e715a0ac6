// Package config defines the configuration types for codetestguard.
// These types are pure data structures; loading and merging live in
// internal/configloader.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/yaklabco/codetestguard/pkg/export"
)

// Config is the root configuration structure.
type Config struct {
	// Format is the default artifact format. The "yml" alias is accepted
	// and canonicalized by the loader.
	Format export.Format `yaml:"format"`

	// OutputDir is where artifacts are written.
	OutputDir string `yaml:"output_dir"`

	// TimeZone is the IANA zone used for report timestamps.
	// Empty means the host's local zone.
	TimeZone string `yaml:"time_zone"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// FileMode is the octal permission string for written artifacts.
	FileMode string `yaml:"file_mode"`

	// CLI-level options (not persisted to config files).

	// ProjectName qualifies the document title and filename.
	ProjectName string `yaml:"-"`

	// Stdout streams the artifact to standard output instead of a file.
	Stdout bool `yaml:"-"`
}

// Default values.
const (
	DefaultOutputDir = "."
	DefaultLogLevel  = "info"
	DefaultFileMode  = "0644"
)

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Format:    export.FormatHTML,
		OutputDir: DefaultOutputDir,
		TimeZone:  "",
		LogLevel:  DefaultLogLevel,
		FileMode:  DefaultFileMode,
	}
}

// Location resolves TimeZone.
func (c *Config) Location() (*time.Location, error) {
	if c.TimeZone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("load time zone %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

// Mode parses FileMode. An empty string yields 0, meaning "use the default".
func (c *Config) Mode() (os.FileMode, error) {
	if c.FileMode == "" {
		return 0, nil
	}
	mode, err := strconv.ParseUint(c.FileMode, 8, 32)
	if err != nil {
		return 0, fmt.Errorf("parse file mode %q: %w", c.FileMode, err)
	}
	if mode > 0o777 {
		return 0, fmt.Errorf("file mode %q out of range", c.FileMode)
	}
	return os.FileMode(mode), nil
}
