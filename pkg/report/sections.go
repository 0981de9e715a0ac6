package report

import (
	"strconv"
	"strings"

	"github.com/yaklabco/codetestguard/pkg/grade"
	"github.com/yaklabco/codetestguard/pkg/record"
)

// riskClasses maps a lower-cased risk label to its badge modifier class.
//
//nolint:gochecknoglobals // Read-only lookup table.
var riskClasses = map[string]string{
	"high":   "risk-high",
	"medium": "risk-medium",
	"low":    "risk-low",
}

// gates decides which optional sections are emitted. They are computed once
// from the normalized record so the builders below never branch on presence.
type gates struct {
	details     bool
	ai          bool
	aiError     bool
	risk        bool
	gaps        bool
	cases       bool
	suggestions bool
}

func computeGates(norm record.Normalized) gates {
	ai := norm.AI
	return gates{
		details:     len(norm.Coverage.Details) > 0,
		ai:          ai.HasContent() || ai.Error != "",
		aiError:     ai.Error != "",
		risk:        ai.RiskAssessment != "",
		gaps:        ai.CoverageGaps != "",
		cases:       len(ai.SuggestedTestCases) > 0,
		suggestions: len(ai.ImprovementSuggestions) > 0,
	}
}

// view holds every value a section needs, already formatted. Fields that
// originate from the record stay raw here and are escaped by the builder
// that interpolates them; title and timestamps are escaped once up front
// because they appear in more than one place or come pre-formatted.
type view struct {
	title       string
	createdAt   string
	duration    string
	tokens      string
	cost        string
	grade       grade.Grade
	score       string
	rate        string
	covered     int
	uncovered   int
	total       int
	details     []record.CoverageRow
	ai          record.AIAnalysis
	generatedAt string
	gates       gates
}

func headerSection(v view) string {
	var sb strings.Builder
	sb.WriteString(`<div class="header">` + "\n")
	sb.WriteString(`<h1>` + v.title + "</h1>\n")
	sb.WriteString(`<div class="product">` + ProductName + " " + productTagline + "</div>\n")
	sb.WriteString(`<div class="meta">` + "\n")
	sb.WriteString(`<span>创建时间: ` + v.createdAt + "</span>\n")
	sb.WriteString(`<span>分析耗时: ` + v.duration + "</span>\n")
	sb.WriteString(`<span>Token 用量: ` + v.tokens + "</span>\n")
	sb.WriteString(`<span>分析费用: ` + v.cost + "</span>\n")
	sb.WriteString("</div>\n</div>\n")
	return sb.String()
}

func scoreSection(v view) string {
	var sb strings.Builder
	sb.WriteString(`<div class="section score-section">` + "\n")
	sb.WriteString("<h2>质量评分</h2>\n")
	sb.WriteString(`<div class="score-card">` + "\n")
	sb.WriteString(`<div class="grade" style="background: ` + v.grade.Color + `">` + string(v.grade.Letter) + "</div>\n")
	sb.WriteString(`<div class="score"><span class="score-value" style="color: ` + v.grade.Color + `">` +
		v.score + `</span><span class="score-max">` + scoreSuffix + "</span></div>\n")
	sb.WriteString("</div>\n</div>\n")
	return sb.String()
}

func coverageSection(v view) string {
	var sb strings.Builder
	sb.WriteString(`<div class="section coverage-section">` + "\n")
	sb.WriteString("<h2>测试覆盖</h2>\n")
	sb.WriteString(`<div class="stats">` + "\n")
	writeStat(&sb, "覆盖率", v.rate)
	writeStat(&sb, "已覆盖方法", strconv.Itoa(v.covered))
	writeStat(&sb, "未覆盖方法", strconv.Itoa(v.uncovered))
	writeStat(&sb, "变更方法总数", strconv.Itoa(v.total))
	sb.WriteString("</div>\n")
	if v.gates.details {
		sb.WriteString(coverageTable(v.details))
	}
	sb.WriteString("</div>\n")
	return sb.String()
}

func writeStat(sb *strings.Builder, label, value string) {
	sb.WriteString(`<div class="stat"><div class="label">` + label +
		`</div><div class="value">` + value + "</div></div>\n")
}

func coverageTable(rows []record.CoverageRow) string {
	var sb strings.Builder
	sb.WriteString("<h3>覆盖详情</h3>\n<table>\n")
	sb.WriteString("<thead><tr><th>方法</th><th>功能描述</th><th>状态</th><th>匹配用例</th></tr></thead>\n<tbody>\n")
	for _, row := range rows {
		sb.WriteString(`<tr><td class="method">` + Escape(row.Method) + "</td>")
		sb.WriteString("<td>" + Escape(row.Description) + "</td>")
		sb.WriteString("<td>" + statusTag(row.IsCovered) + "</td>")
		sb.WriteString("<td>" + matchedTests(row.MatchedTests) + "</td></tr>\n")
	}
	sb.WriteString("</tbody>\n</table>\n")
	return sb.String()
}

func statusTag(covered bool) string {
	if covered {
		return `<span class="tag tag-covered">` + statusCovered + "</span>"
	}
	return `<span class="tag tag-uncovered">` + statusUncovered + "</span>"
}

func matchedTests(tests []string) string {
	if len(tests) == 0 {
		return emptyCellGlyph
	}
	escaped := make([]string, len(tests))
	for i, name := range tests {
		escaped[i] = Escape(name)
	}
	return strings.Join(escaped, matchedTestJoin)
}

func aiSection(v view) string {
	if !v.gates.ai {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(`<div class="section ai-section">` + "\n")
	sb.WriteString("<h2>AI 分析建议</h2>\n")

	if v.gates.aiError {
		sb.WriteString(`<div class="ai-error">AI 分析失败: ` + Escape(v.ai.Error) + "</div>\n")
		sb.WriteString("</div>\n")
		return sb.String()
	}

	if v.gates.risk {
		sb.WriteString(`<p>风险评估: ` + riskBadge(v.ai.RiskAssessment) + "</p>\n")
	}
	if v.gates.gaps {
		sb.WriteString("<h3>覆盖缺口</h3>\n")
		sb.WriteString(`<div class="gaps">` + Escape(v.ai.CoverageGaps) + "</div>\n")
	}
	if v.gates.cases {
		sb.WriteString(suggestedCasesTable(v.ai.SuggestedTestCases))
	}
	if v.gates.suggestions {
		sb.WriteString(suggestionList(v.ai.ImprovementSuggestions))
	}

	sb.WriteString("</div>\n")
	return sb.String()
}

// riskBadge styles only the three known labels; anything else gets the
// plain badge.
func riskBadge(label string) string {
	class := "risk-badge"
	if modifier, ok := riskClasses[strings.ToLower(label)]; ok {
		class += " " + modifier
	}
	return `<span class="` + class + `">` + Escape(strings.ToUpper(label)) + "</span>"
}

func suggestedCasesTable(cases []record.SuggestedTestCase) string {
	var sb strings.Builder
	sb.WriteString("<h3>建议补充的测试用例</h3>\n<table>\n")
	sb.WriteString("<thead><tr><th>用例ID</th><th>测试功能</th><th>测试步骤</th><th>预期结果</th></tr></thead>\n<tbody>\n")
	for _, tc := range cases {
		sb.WriteString("<tr><td>" + Escape(tc.TestID) + "</td>")
		sb.WriteString("<td>" + Escape(tc.TestFunction) + "</td>")
		sb.WriteString("<td>" + Escape(tc.TestSteps) + "</td>")
		sb.WriteString("<td>" + Escape(tc.ExpectedResult) + "</td></tr>\n")
	}
	sb.WriteString("</tbody>\n</table>\n")
	return sb.String()
}

func suggestionList(items []string) string {
	var sb strings.Builder
	sb.WriteString("<h3>改进建议</h3>\n")
	sb.WriteString(`<ul class="suggestions">` + "\n")
	for _, item := range items {
		sb.WriteString("<li>" + Escape(item) + "</li>\n")
	}
	sb.WriteString("</ul>\n")
	return sb.String()
}

func footerSection(v view) string {
	return `<div class="footer">` + footerAttribute + " · 生成时间: " + v.generatedAt + "</div>\n"
}
