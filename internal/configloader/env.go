package configloader

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/yaklabco/codetestguard/pkg/config"
	"github.com/yaklabco/codetestguard/pkg/export"
)

// envVarPrefix is the prefix for all codetestguard environment variables.
const envVarPrefix = "CODETESTGUARD_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
)

// envMapping defines an environment variable to config field mapping.
type envMapping struct {
	field       string
	typ         envFieldType
	description string
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"FORMAT":     {field: "format", typ: envTypeString, description: "Artifact format: html, json, or yaml"},
	"OUTPUT_DIR": {field: "output_dir", typ: envTypeString, description: "Directory artifacts are written to"},
	"TIME_ZONE":  {field: "time_zone", typ: envTypeString, description: "IANA time zone for report timestamps"},
	"LOG_LEVEL":  {field: "log_level", typ: envTypeString, description: "Log level: debug, info, warn, error"},
	"FILE_MODE":  {field: "file_mode", typ: envTypeString, description: "Octal permissions for written artifacts"},
	"PROJECT":    {field: "project", typ: envTypeString, description: "Project name for titles and filenames"},
	"STDOUT":     {field: "stdout", typ: envTypeBool, description: "Write artifacts to stdout: true or false"},
}

// LoadFromEnv applies CODETESTGUARD_* environment overrides to cfg.
func LoadFromEnv(cfg *config.Config) error {
	return loadFromLookup(cfg, os.LookupEnv)
}

// loadFromLookup applies overrides using lookup, which makes the mapping
// testable without touching the process environment.
func loadFromLookup(cfg *config.Config, lookup func(string) (string, bool)) error {
	if cfg == nil {
		return nil
	}

	for suffix, mapping := range envMappings {
		envVar := envVarPrefix + suffix
		value, ok := lookup(envVar)
		if !ok || value == "" {
			continue
		}
		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "format":
		cfg.Format = export.Format(value)
	case "output_dir":
		cfg.OutputDir = value
	case "time_zone":
		cfg.TimeZone = value
	case "log_level":
		cfg.LogLevel = value
	case "file_mode":
		cfg.FileMode = value
	case "project":
		cfg.ProjectName = value
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "stdout":
		cfg.Stdout = value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

// EnvVar describes one supported environment variable.
type EnvVar struct {
	Name        string
	Description string
}

// ListEnvVars returns the supported environment variables sorted by name.
func ListEnvVars() []EnvVar {
	vars := make([]EnvVar, 0, len(envMappings))
	for suffix, mapping := range envMappings {
		vars = append(vars, EnvVar{Name: envVarPrefix + suffix, Description: mapping.description})
	}
	sort.Slice(vars, func(i, j int) bool { return vars[i].Name < vars[j].Name })
	return vars
}
