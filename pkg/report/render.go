// Package report renders an analysis record into a self-contained HTML
// quality report.
//
// Rendering is a single pass: the record is normalized, the score is
// classified, and a fixed sequence of section builders each contribute one
// fragment. The only inputs besides the record are an injectable Clock for
// the footer timestamp and the Locale used for dates and numbers.
package report

import (
	"strconv"
	"strings"

	"github.com/yaklabco/codetestguard/pkg/grade"
	"github.com/yaklabco/codetestguard/pkg/record"
)

// Options configures a Renderer. Zero values select the system clock and
// the local time zone.
type Options struct {
	Clock  Clock
	Locale *Locale
}

// Renderer builds report documents. It holds no mutable state and is safe
// for concurrent use.
type Renderer struct {
	clock  Clock
	locale *Locale
}

// NewRenderer creates a Renderer from opts.
func NewRenderer(opts Options) *Renderer {
	r := &Renderer{clock: opts.Clock, locale: opts.Locale}
	if r.clock == nil {
		r.clock = SystemClock{}
	}
	if r.locale == nil {
		r.locale = NewLocale(nil)
	}
	return r
}

// Title returns the unescaped report title. The project prefix is present
// only when projectName is non-empty.
func Title(id int64, projectName string) string {
	base := reportNoun + " #" + strconv.FormatInt(id, 10)
	if projectName == "" {
		return base
	}
	return projectName + titleSeparator + base
}

// Render returns the complete HTML document for rec. It never fails:
// missing or malformed optional fields fall back to their defaults.
func (r *Renderer) Render(rec *record.AnalysisRecord, projectName string) string {
	v := r.buildView(record.Normalize(rec), projectName)

	var sb strings.Builder
	sb.WriteString(documentHead)
	sb.WriteString("<title>" + v.title + "</title>\n")
	sb.WriteString(stylesheet)
	sb.WriteString(documentBodyOpen)
	for _, section := range []func(view) string{
		headerSection,
		scoreSection,
		coverageSection,
		aiSection,
		footerSection,
	} {
		sb.WriteString(section(v))
	}
	sb.WriteString(documentTail)
	return sb.String()
}

// Summary is the headline data of a rendered report, used for terminal
// output alongside an exported artifact.
type Summary struct {
	ID        int64
	Title     string
	Grade     grade.Grade
	Score     string
	Rate      string
	Covered   int
	Uncovered int
	Risk      string
}

// Summarize returns the headline values Render would display for rec.
// Strings are unescaped.
func Summarize(rec *record.AnalysisRecord, projectName string) Summary {
	norm := record.Normalize(rec)
	return Summary{
		ID:        norm.ID,
		Title:     Title(norm.ID, projectName),
		Grade:     grade.Classify(norm.Score),
		Score:     formatOneDecimal(norm.Score),
		Rate:      formatPercent(norm.Coverage.Rate),
		Covered:   len(norm.Coverage.Covered),
		Uncovered: len(norm.Coverage.Uncovered),
		Risk:      norm.AI.RiskAssessment,
	}
}

func (r *Renderer) buildView(norm record.Normalized, projectName string) view {
	return view{
		title:       Escape(Title(norm.ID, projectName)),
		createdAt:   Escape(r.locale.FormatTimestamp(norm.CreatedAt)),
		duration:    strconv.FormatInt(norm.DurationMS, 10) + durationSuffix,
		tokens:      r.locale.FormatInt(norm.TokenUsage),
		cost:        r.locale.FormatCost(norm.Cost),
		grade:       grade.Classify(norm.Score),
		score:       formatOneDecimal(norm.Score),
		rate:        formatPercent(norm.Coverage.Rate),
		covered:     len(norm.Coverage.Covered),
		uncovered:   len(norm.Coverage.Uncovered),
		total:       norm.Coverage.Total(),
		details:     norm.Coverage.Details,
		ai:          norm.AI,
		generatedAt: Escape(r.locale.FormatTime(r.clock.Now())),
		gates:       computeGates(norm),
	}
}
