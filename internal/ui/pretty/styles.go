// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/yaklabco/codetestguard/pkg/grade"
)

// defaultTermWidth is used when the writer is not a terminal.
const defaultTermWidth = 80

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Risk styles
	RiskHigh   lipgloss.Style
	RiskMedium lipgloss.Style
	RiskLow    lipgloss.Style
	RiskOther  lipgloss.Style

	// Summary styles
	SummaryTitle lipgloss.Style
	SummaryLabel lipgloss.Style
	SummaryValue lipgloss.Style
	Success      lipgloss.Style
	Failure      lipgloss.Style
	Path         lipgloss.Style

	// Misc
	Dim lipgloss.Style

	colorEnabled bool
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

// newColorStyles creates styles with ANSI 256 colors.
func newColorStyles() *Styles {
	return &Styles{
		RiskHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		RiskMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		RiskLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		RiskOther:  lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),

		SummaryTitle: lipgloss.NewStyle().Bold(true),
		SummaryLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		SummaryValue: lipgloss.NewStyle(),
		Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Path:         lipgloss.NewStyle().Underline(true),

		Dim: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),

		colorEnabled: true,
	}
}

// newNoColorStyles creates styles with no color formatting.
func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		RiskHigh:     plain,
		RiskMedium:   plain,
		RiskLow:      plain,
		RiskOther:    plain,
		SummaryTitle: plain,
		SummaryLabel: plain,
		SummaryValue: plain,
		Success:      plain,
		Failure:      plain,
		Path:         plain,
		Dim:          plain,
	}
}

// Grade returns a style painted in the grade's own color, so the terminal
// badge matches the HTML document.
func (s *Styles) Grade(g grade.Grade) lipgloss.Style {
	if !s.colorEnabled {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("15")).
		Background(lipgloss.Color(g.Color)).
		Padding(0, 1)
}

// Risk returns the style for a risk label, matched case-insensitively.
func (s *Styles) Risk(label string) lipgloss.Style {
	switch strings.ToLower(label) {
	case "high":
		return s.RiskHigh
	case "medium":
		return s.RiskMedium
	case "low":
		return s.RiskLow
	default:
		return s.RiskOther
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		// https://no-color.org/
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}

// TerminalWidth returns the column count of writer, or a default when it
// is not a terminal.
func TerminalWidth(writer io.Writer) int {
	if f, ok := writer.(interface{ Fd() uintptr }); ok {
		width, _, err := term.GetSize(int(f.Fd()))
		if err == nil && width > 0 {
			return width
		}
	}
	return defaultTermWidth
}
