package record

import (
	"encoding/json"
	"math"
	"strconv"
)

// CoverageRow is one changed method and whether any test case covers it.
type CoverageRow struct {
	Method       string
	Description  string
	IsCovered    bool
	MatchedTests []string
}

// Coverage is the normalized form of test_coverage_result.
type Coverage struct {
	Details   []CoverageRow
	Covered   []string
	Uncovered []string
	Rate      float64
}

// Total is the number of classified methods. It is derived from the two
// lists and never read from the record.
func (c Coverage) Total() int {
	return len(c.Covered) + len(c.Uncovered)
}

// SuggestedTestCase is one test case proposed by the AI analysis.
type SuggestedTestCase struct {
	TestID         string
	TestFunction   string
	TestSteps      string
	ExpectedResult string
}

// AIAnalysis is the normalized form of ai_suggestions.
type AIAnalysis struct {
	RiskAssessment         string
	CoverageGaps           string
	SuggestedTestCases     []SuggestedTestCase
	ImprovementSuggestions []string
	Error                  string
}

// HasContent reports whether any renderable suggestion content is present.
func (a AIAnalysis) HasContent() bool {
	return a.RiskAssessment != "" ||
		a.CoverageGaps != "" ||
		len(a.SuggestedTestCases) > 0 ||
		len(a.ImprovementSuggestions) > 0
}

// Normalized is an AnalysisRecord with every field defaulted. Nothing
// downstream of Normalize needs a presence check.
type Normalized struct {
	ID         int64
	Score      float64
	TokenUsage int64
	Cost       float64
	DurationMS int64
	CreatedAt  string
	Coverage   Coverage
	AI         AIAnalysis
}

// Normalize extracts a fully-defaulted view of rec. It is total: any shape
// of nested payload yields a valid result, and a nil record yields zeros.
// Values are not range-checked.
func Normalize(rec *AnalysisRecord) Normalized {
	norm := Normalized{
		Coverage: Coverage{
			Details:   []CoverageRow{},
			Covered:   []string{},
			Uncovered: []string{},
		},
		AI: AIAnalysis{
			SuggestedTestCases:     []SuggestedTestCase{},
			ImprovementSuggestions: []string{},
		},
	}
	if rec == nil {
		return norm
	}

	norm.ID = rec.ID
	norm.CreatedAt = rec.CreatedAt
	norm.Score, _ = asNumber(rec.TestScore)
	norm.TokenUsage = asCount(rec.TokenUsage)
	norm.Cost, _ = asNumber(rec.Cost)
	norm.DurationMS = asCount(rec.DurationMS)

	if src, ok := asObject(rec.TestCoverageResult); ok {
		norm.Coverage = normalizeCoverage(src)
	}
	if src, ok := asObject(rec.AISuggestions); ok {
		norm.AI = normalizeAI(src)
	}

	return norm
}

func normalizeCoverage(src map[string]any) Coverage {
	cov := Coverage{
		Covered:   stringList(src["covered"]),
		Uncovered: stringList(src["uncovered"]),
		Details:   []CoverageRow{},
	}
	if rate, ok := asNumber(src["coverage_rate"]); ok {
		cov.Rate = rate
	}

	for _, item := range asList(src["details"]) {
		row, ok := asObject(item)
		if !ok {
			continue
		}
		// Only a real boolean true marks a row covered; 1 or "true" do not.
		isCovered, _ := row["is_covered"].(bool)
		cov.Details = append(cov.Details, CoverageRow{
			Method:       asText(row["method"]),
			Description:  asText(row["description"]),
			IsCovered:    isCovered,
			MatchedTests: stringList(row["matched_tests"]),
		})
	}

	return cov
}

func normalizeAI(src map[string]any) AIAnalysis {
	ai := AIAnalysis{
		RiskAssessment:         asText(src["risk_assessment"]),
		CoverageGaps:           asText(src["coverage_gaps"]),
		ImprovementSuggestions: stringList(src["improvement_suggestions"]),
		Error:                  asText(src["error"]),
		SuggestedTestCases:     []SuggestedTestCase{},
	}

	for _, item := range asList(src["suggested_test_cases"]) {
		tc, ok := asObject(item)
		if !ok {
			continue
		}
		ai.SuggestedTestCases = append(ai.SuggestedTestCases, SuggestedTestCase{
			TestID:         asText(tc["test_id"]),
			TestFunction:   asText(tc["test_function"]),
			TestSteps:      asText(tc["test_steps"]),
			ExpectedResult: asText(tc["expected_result"]),
		})
	}

	return ai
}

// asObject accepts the map shapes produced by encoding/json and yaml.v3.
func asObject(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			key, ok := k.(string)
			if !ok {
				continue
			}
			out[key] = val
		}
		return out, true
	default:
		return nil, false
	}
}

func asList(v any) []any {
	switch l := v.(type) {
	case []any:
		return l
	case []string:
		out := make([]any, len(l))
		for i, s := range l {
			out[i] = s
		}
		return out
	default:
		return nil
	}
}

// asNumber reports the value of v when its dynamic type is numeric.
// Strings are never coerced.
func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// asCount reads a numeric value as an integer, truncating any fraction.
// JSON decodes every number as float64, so 1500.0 is a valid count.
func asCount(v any) int64 {
	if n, ok := v.(int64); ok {
		return n
	}
	if n, ok := v.(int); ok {
		return int64(n)
	}
	f, ok := asNumber(v)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return int64(f)
}

// asText returns strings unchanged and formats numbers; anything else is "".
func asText(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	}
	if f, ok := asNumber(v); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return ""
}

// stringList keeps one entry per source element so lengths match the record.
func stringList(v any) []string {
	items := asList(v)
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, asText(item))
	}
	return out
}
