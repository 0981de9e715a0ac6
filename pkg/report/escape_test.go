package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/codetestguard/pkg/report"
)

func TestEscape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text", "hello 世界", "hello 世界"},
		{"ampersand", "a & b", "a &amp; b"},
		{"script tag", "<script>alert(1)</script>", "&lt;script&gt;alert(1)&lt;/script&gt;"},
		{"double quote", `say "hi"`, "say &quot;hi&quot;"},
		{"single quote", "it's", "it&#39;s"},
		{"existing entity is escaped again", "&lt;", "&amp;lt;"},
		{"all five", `&<>"'`, "&amp;&lt;&gt;&quot;&#39;"},
		{"empty", "", ""},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.want, report.Escape(testCase.input))
		})
	}
}
