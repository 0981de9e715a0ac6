package configloader

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/yaklabco/codetestguard/pkg/config"
	"github.com/yaklabco/codetestguard/pkg/export"
)

func isolatedOptions(dir string) LoadOptions {
	return LoadOptions{
		WorkingDir:         dir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreEnv:          true,
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	// Stop the upward search at the temp dir.
	if err := os.Mkdir(filepath.Join(tmpDir, ".git"), 0755); err != nil {
		t.Fatalf("mkdir .git: %v", err)
	}

	result, err := Load(context.Background(), isolatedOptions(tmpDir))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.Format != export.FormatHTML {
		t.Errorf("expected format %q, got %q", export.FormatHTML, result.Config.Format)
	}
	if result.Config.OutputDir != config.DefaultOutputDir {
		t.Errorf("expected output dir %q, got %q", config.DefaultOutputDir, result.Config.OutputDir)
	}
	if len(result.LoadedFrom) != 0 {
		t.Errorf("expected no files loaded, got %v", result.LoadedFrom)
	}
}

func TestLoad_ProjectConfigFoundUpward(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	if err := os.Mkdir(filepath.Join(tmpDir, ".git"), 0755); err != nil {
		t.Fatalf("mkdir .git: %v", err)
	}
	writeFile(t, filepath.Join(tmpDir, ".codetestguard.yml"), "format: json\ntime_zone: UTC\n")

	nested := filepath.Join(tmpDir, "reports", "daily")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatalf("mkdir nested: %v", err)
	}

	result, err := Load(context.Background(), isolatedOptions(nested))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.Format != export.FormatJSON {
		t.Errorf("expected format json, got %q", result.Config.Format)
	}
	if result.Config.TimeZone != "UTC" {
		t.Errorf("expected time zone UTC, got %q", result.Config.TimeZone)
	}
	if result.Config.OutputDir != config.DefaultOutputDir {
		t.Errorf("unset keys should keep defaults, got output dir %q", result.Config.OutputDir)
	}
	if len(result.LoadedFrom) != 1 {
		t.Errorf("expected one loaded file, got %v", result.LoadedFrom)
	}
}

func TestLoad_Precedence(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	if err := os.Mkdir(filepath.Join(tmpDir, ".git"), 0755); err != nil {
		t.Fatalf("mkdir .git: %v", err)
	}
	writeFile(t, filepath.Join(tmpDir, ".codetestguard.yml"), "format: json\noutput_dir: project-out\n")
	explicit := filepath.Join(tmpDir, "ci.yaml")
	writeFile(t, explicit, "format: yaml\n")

	opts := isolatedOptions(tmpDir)
	opts.ExplicitPath = explicit
	opts.CLIConfig = &config.Config{OutputDir: "cli-out"}

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.Format != export.FormatYAML {
		t.Errorf("explicit config should override project, got format %q", result.Config.Format)
	}
	if result.Config.OutputDir != "cli-out" {
		t.Errorf("CLI should override files, got output dir %q", result.Config.OutputDir)
	}
	if len(result.LoadedFrom) != 2 {
		t.Errorf("expected two loaded files, got %v", result.LoadedFrom)
	}
}

func TestLoad_InvalidConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		field   string
	}{
		{"bad format", "format: pdf\n", "format"},
		{"bad time zone", "time_zone: Nowhere/Land\n", "time_zone"},
		{"bad file mode", "file_mode: rw-r--r--\n", "file_mode"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			tmpDir := t.TempDir()
			if err := os.Mkdir(filepath.Join(tmpDir, ".git"), 0755); err != nil {
				t.Fatalf("mkdir .git: %v", err)
			}
			writeFile(t, filepath.Join(tmpDir, ".codetestguard.yml"), testCase.content)

			_, err := Load(context.Background(), isolatedOptions(tmpDir))
			var validationErr *ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if validationErr.Field != testCase.field {
				t.Errorf("expected field %q, got %q", testCase.field, validationErr.Field)
			}
		})
	}
}

func TestLoad_FormatAliasIsCanonicalized(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	if err := os.Mkdir(filepath.Join(tmpDir, ".git"), 0755); err != nil {
		t.Fatalf("mkdir .git: %v", err)
	}
	writeFile(t, filepath.Join(tmpDir, ".codetestguard.yml"), "format: yml\n")

	result, err := Load(context.Background(), isolatedOptions(tmpDir))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if result.Config.Format != export.FormatYAML {
		t.Errorf("expected format yaml, got %q", result.Config.Format)
	}

	opts := isolatedOptions(tmpDir)
	opts.CLIConfig = &config.Config{Format: "yml"}
	result, err = Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() with CLI alias error = %v", err)
	}
	if result.Config.Format != export.FormatYAML {
		t.Errorf("expected CLI alias to resolve to yaml, got %q", result.Config.Format)
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	if err := os.Mkdir(filepath.Join(tmpDir, ".git"), 0755); err != nil {
		t.Fatalf("mkdir .git: %v", err)
	}
	writeFile(t, filepath.Join(tmpDir, ".codetestguard.yml"), "format: [html\n")

	if _, err := Load(context.Background(), isolatedOptions(tmpDir)); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

func TestLoad_Warnings(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	if err := os.Mkdir(filepath.Join(tmpDir, ".git"), 0755); err != nil {
		t.Fatalf("mkdir .git: %v", err)
	}

	opts := isolatedOptions(tmpDir)
	opts.CLIConfig = &config.Config{LogLevel: "chatty"}

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(result.Warnings) != 1 {
		t.Errorf("expected one warning, got %v", result.Warnings)
	}
}

func TestLoadFromLookup(t *testing.T) {
	t.Parallel()

	env := map[string]string{
		"CODETESTGUARD_FORMAT":    "yaml",
		"CODETESTGUARD_TIME_ZONE": "Asia/Shanghai",
		"CODETESTGUARD_STDOUT":    "1",
		"CODETESTGUARD_PROJECT":   "",
	}
	lookup := func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}

	cfg := config.NewConfig()
	if err := loadFromLookup(cfg, lookup); err != nil {
		t.Fatalf("loadFromLookup() error = %v", err)
	}

	if cfg.Format != export.FormatYAML {
		t.Errorf("expected format yaml, got %q", cfg.Format)
	}
	if cfg.TimeZone != "Asia/Shanghai" {
		t.Errorf("expected time zone Asia/Shanghai, got %q", cfg.TimeZone)
	}
	if !cfg.Stdout {
		t.Error("expected stdout to be enabled")
	}
	if cfg.ProjectName != "" {
		t.Errorf("empty env values should be ignored, got %q", cfg.ProjectName)
	}
}

func TestLoadFromLookup_InvalidBool(t *testing.T) {
	t.Parallel()

	lookup := func(key string) (string, bool) {
		if key == "CODETESTGUARD_STDOUT" {
			return "maybe", true
		}
		return "", false
	}

	if err := loadFromLookup(config.NewConfig(), lookup); err == nil {
		t.Fatal("expected error for invalid boolean")
	}
}

func TestListEnvVars(t *testing.T) {
	t.Parallel()

	vars := ListEnvVars()
	if len(vars) != len(envMappings) {
		t.Fatalf("expected %d vars, got %d", len(envMappings), len(vars))
	}
	for i := 1; i < len(vars); i++ {
		if vars[i-1].Name > vars[i].Name {
			t.Errorf("vars not sorted: %s before %s", vars[i-1].Name, vars[i].Name)
		}
	}
}

func TestMerge(t *testing.T) {
	t.Parallel()

	base := config.NewConfig()
	override := &config.Config{TimeZone: "UTC", Stdout: true}

	merged := merge(base, override)

	if merged.TimeZone != "UTC" || !merged.Stdout {
		t.Errorf("override not applied: %+v", merged)
	}
	if merged.Format != export.FormatHTML {
		t.Errorf("zero override should keep base format, got %q", merged.Format)
	}
	if merge(nil, override) != override || merge(base, nil) != base {
		t.Error("nil handling incorrect")
	}
}
