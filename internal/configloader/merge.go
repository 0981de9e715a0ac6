package configloader

import "github.com/yaklabco/codetestguard/pkg/config"

// merge combines two configurations, with override taking precedence over
// base. A field in override replaces base only when it is non-zero, so an
// unset key in a higher layer never clears a lower one.
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := base.Clone()

	if override.Format != "" {
		result.Format = override.Format
	}
	if override.OutputDir != "" {
		result.OutputDir = override.OutputDir
	}
	if override.TimeZone != "" {
		result.TimeZone = override.TimeZone
	}
	if override.LogLevel != "" {
		result.LogLevel = override.LogLevel
	}
	if override.FileMode != "" {
		result.FileMode = override.FileMode
	}
	if override.ProjectName != "" {
		result.ProjectName = override.ProjectName
	}

	// Booleans can only be switched on by a higher layer.
	if override.Stdout {
		result.Stdout = true
	}

	return result
}
