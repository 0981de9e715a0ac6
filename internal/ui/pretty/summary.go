package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/yaklabco/codetestguard/pkg/export"
	"github.com/yaklabco/codetestguard/pkg/grade"
	"github.com/yaklabco/codetestguard/pkg/report"
)

const (
	maxDividerWidth = 48
	labelWidth      = 12
	stdoutLocation  = "-"
)

// FormatSummaryOneLine formats a rendered report as a single line.
// Example: "#42 C 78.5/100, coverage 50.0% (1/2), risk medium".
func (s *Styles) FormatSummaryOneLine(sum report.Summary) string {
	parts := []string{
		fmt.Sprintf("#%d %s %s/100", sum.ID, s.Grade(sum.Grade).Render(sum.Grade.String()), sum.Score),
		fmt.Sprintf("coverage %s (%d/%d)", sum.Rate, sum.Covered, sum.Covered+sum.Uncovered),
	}
	if sum.Risk != "" {
		parts = append(parts, "risk "+s.Risk(sum.Risk).Render(sum.Risk))
	}
	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats a report summary and the saved artifact as a block
// no wider than width.
func (s *Styles) FormatSummary(sum report.Summary, artifact export.Artifact, width int) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render(sum.Title))
	builder.WriteString("\n")
	builder.WriteString(s.Dim.Render(strings.Repeat("-", dividerWidth(width))))
	builder.WriteString("\n")

	s.writeRow(&builder, "Grade", s.Grade(sum.Grade).Render(sum.Grade.String())+" "+
		s.SummaryValue.Render(sum.Score+"/100"))
	s.writeRow(&builder, "Coverage", s.SummaryValue.Render(sum.Rate))
	s.writeRow(&builder, "Covered", s.Success.Render(strconv.Itoa(sum.Covered)))
	if sum.Uncovered > 0 {
		s.writeRow(&builder, "Uncovered", s.Failure.Render(strconv.Itoa(sum.Uncovered)))
	}
	if sum.Risk != "" {
		s.writeRow(&builder, "Risk", s.Risk(sum.Risk).Render(strings.ToUpper(sum.Risk)))
	}

	builder.WriteString("\n")

	if artifact.Location != "" && artifact.Location != stdoutLocation {
		s.writeRow(&builder, "Saved", s.Path.Render(artifact.Location))
	} else {
		s.writeRow(&builder, "Streamed", s.SummaryValue.Render(artifact.Name))
	}
	s.writeRow(&builder, "Size", s.Dim.Render(humanize.Bytes(uint64(artifact.Size))))

	builder.WriteString("\n")
	builder.WriteString(s.verdict(sum.Grade))
	builder.WriteString("\n")

	return builder.String()
}

func (s *Styles) writeRow(builder *strings.Builder, label, value string) {
	builder.WriteString("  ")
	builder.WriteString(s.SummaryLabel.Render(label + ":" + strings.Repeat(" ", max(1, labelWidth-len(label)))))
	builder.WriteString(value)
	builder.WriteString("\n")
}

func (s *Styles) verdict(g grade.Grade) string {
	switch g.Letter {
	case grade.LetterA, grade.LetterB:
		return s.Success.Render("Quality gate passed")
	case grade.LetterC:
		return s.RiskMedium.Render("Quality gate passed with reservations")
	default:
		return s.Failure.Render("Quality gate failed")
	}
}

func dividerWidth(width int) int {
	if width <= 0 || width > maxDividerWidth {
		return maxDividerWidth
	}
	return width
}
