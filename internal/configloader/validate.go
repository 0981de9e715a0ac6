package configloader

import (
	"fmt"
	"strings"
	"time"

	"github.com/yaklabco/codetestguard/pkg/config"
	"github.com/yaklabco/codetestguard/pkg/export"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the config key that failed (e.g., "time_zone").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues.
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// knownLogLevels lists valid log level values.
//
//nolint:gochecknoglobals // Read-only lookup table.
var knownLogLevels = map[string]bool{
	"debug":   true,
	"info":    true,
	"warn":    true,
	"warning": true,
	"error":   true,
}

// Validate checks a configuration for errors and warnings.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if _, err := export.ParseFormat(string(cfg.Format)); err != nil {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "format",
			Value:   cfg.Format,
			Message: err.Error(),
		})
	}

	if cfg.TimeZone != "" {
		if _, err := time.LoadLocation(cfg.TimeZone); err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "time_zone",
				Value:   cfg.TimeZone,
				Message: fmt.Sprintf("unknown time zone %q", cfg.TimeZone),
			})
		}
	}

	if _, err := cfg.Mode(); err != nil {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "file_mode",
			Value:   cfg.FileMode,
			Message: err.Error(),
		})
	}

	if cfg.LogLevel != "" && !knownLogLevels[strings.ToLower(cfg.LogLevel)] {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "log_level",
			Value:   cfg.LogLevel,
			Message: fmt.Sprintf("unknown log level %q; using info", cfg.LogLevel),
		})
	}

	if cfg.Stdout && cfg.OutputDir != "" && cfg.OutputDir != config.DefaultOutputDir {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "output_dir",
			Value:   cfg.OutputDir,
			Message: "ignored when writing to stdout",
		})
	}

	return result
}
