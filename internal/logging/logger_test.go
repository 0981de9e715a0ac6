package logging_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/codetestguard/internal/logging"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		level    string
		expected log.Level
	}{
		{"debug level", "debug", log.DebugLevel},
		{"info level", "info", log.InfoLevel},
		{"warn level", "warn", log.WarnLevel},
		{"warning level", "warning", log.WarnLevel},
		{"error level", "error", log.ErrorLevel},
		{"invalid defaults to info", "invalid", log.InfoLevel},
		{"empty defaults to info", "", log.InfoLevel},
		{"case insensitive DEBUG", "DEBUG", log.DebugLevel},
		{"case insensitive Info", "Info", log.InfoLevel},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			logger := logging.New(testCase.level)
			if logger == nil {
				t.Fatal("New returned nil logger")
			}

			if logger.GetLevel() != testCase.expected {
				t.Errorf("expected level %v, got %v", testCase.expected, logger.GetLevel())
			}
		})
	}
}

func TestDefault(t *testing.T) {
	t.Parallel()

	logger := logging.Default()
	if logger == nil {
		t.Fatal("Default returned nil logger")
	}
}

func TestSetLevel(t *testing.T) {
	// Not parallel because it modifies global state.

	// Save original and restore after test.
	original := logging.Default()
	defer logging.SetDefault(original)

	// Create a fresh logger for testing.
	testLogger := logging.New("info")
	logging.SetDefault(testLogger)

	logging.SetLevel("debug")
	if logging.Default().GetLevel() != log.DebugLevel {
		t.Error("SetLevel to debug failed")
	}

	logging.SetLevel("error")
	if logging.Default().GetLevel() != log.ErrorLevel {
		t.Error("SetLevel to error failed")
	}
}

func TestSetDefault(t *testing.T) {
	// Not parallel because it modifies global state.

	original := logging.Default()
	defer logging.SetDefault(original)

	newLogger := logging.New("error")
	logging.SetDefault(newLogger)

	if logging.Default() != newLogger {
		t.Error("SetDefault did not change the default logger")
	}
}

func TestNewInteractive(t *testing.T) {
	t.Parallel()

	logger := logging.NewInteractive()
	if logger == nil {
		t.Fatal("NewInteractive returned nil logger")
	}

	// Interactive loggers should default to info level
	if logger.GetLevel() != log.InfoLevel {
		t.Errorf("expected info level, got %v", logger.GetLevel())
	}
}

func TestNewInteractiveTo(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.NewInteractiveTo(&buf)
	logger.Info("CODETESTGUARD_FORMAT", logging.FieldDescription, "artifact format")
	logger.Debug("hidden")

	out := buf.String()
	if !strings.Contains(out, "codetestguard") || !strings.Contains(out, "CODETESTGUARD_FORMAT") {
		t.Errorf("expected prefixed entry, got %q", out)
	}
	if !strings.Contains(out, "description=") {
		t.Errorf("expected description field, got %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Errorf("debug entry should be filtered, got %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	if logging.ParseLevel("WARN") != log.WarnLevel {
		t.Error("ParseLevel(WARN) should be warn")
	}
	if logging.ParseLevel("verbose") != log.InfoLevel {
		t.Error("unknown levels should default to info")
	}
}

func TestContextLogger(t *testing.T) {
	t.Parallel()

	//nolint:staticcheck // nil context is handled explicitly
	if logging.FromContext(nil) == nil {
		t.Fatal("FromContext(nil) returned nil")
	}

	scoped := logging.New("debug")
	ctx := logging.WithLogger(context.Background(), scoped)
	if logging.FromContext(ctx) != scoped {
		t.Error("FromContext did not return the attached logger")
	}

	if logging.FromContext(context.Background()) == nil {
		t.Error("FromContext without a logger should return the default")
	}
}
