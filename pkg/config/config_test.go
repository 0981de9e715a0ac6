package config_test

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/codetestguard/pkg/config"
	"github.com/yaklabco/codetestguard/pkg/export"
)

func TestNewConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()

	assert.Equal(t, export.FormatHTML, cfg.Format)
	assert.Equal(t, ".", cfg.OutputDir)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.TimeZone)
}

func TestLocation(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	cfg.TimeZone = "UTC"
	loc, err = cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())

	cfg.TimeZone = "Mars/Olympus_Mons"
	_, err = cfg.Location()
	require.Error(t, err)
}

func TestMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    os.FileMode
		wantErr bool
	}{
		{"", 0, false},
		{"0644", 0o644, false},
		{"600", 0o600, false},
		{"0999", 0, true},
		{"7777", 0, true},
	}

	for _, testCase := range tests {
		cfg := &config.Config{FileMode: testCase.input}
		got, err := cfg.Mode()
		if testCase.wantErr {
			assert.Error(t, err, testCase.input)
			continue
		}
		require.NoError(t, err, testCase.input)
		assert.Equal(t, testCase.want, got)
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	t.Parallel()

	original := config.NewConfig()
	original.TimeZone = "Asia/Shanghai"
	original.ProjectName = "not persisted"

	data, err := original.ToYAML()
	require.NoError(t, err)
	assert.Contains(t, string(data), "time_zone: Asia/Shanghai")
	assert.NotContains(t, string(data), "not persisted")

	parsed, err := config.FromYAML(data)
	require.NoError(t, err)
	assert.Equal(t, original.TimeZone, parsed.TimeZone)
	assert.Empty(t, parsed.ProjectName)
}

func TestFromYAMLInvalid(t *testing.T) {
	t.Parallel()

	_, err := config.FromYAML([]byte("format: [unterminated"))
	require.Error(t, err)
}

func TestClone(t *testing.T) {
	t.Parallel()

	var nilCfg *config.Config
	assert.Nil(t, nilCfg.Clone())

	original := config.NewConfig()
	clone := original.Clone()
	clone.OutputDir = "elsewhere"

	assert.NotSame(t, original, clone)
	assert.Equal(t, ".", original.OutputDir)
}

func TestGenerateTemplate(t *testing.T) {
	t.Parallel()

	content, err := config.GenerateTemplate()
	require.NoError(t, err)

	text := string(content)
	assert.True(t, strings.HasPrefix(text, "# codetestguard configuration"))
	assert.Contains(t, text, "format: html")

	parsed, err := config.FromYAML(content)
	require.NoError(t, err)
	assert.Equal(t, export.FormatHTML, parsed.Format)
}
