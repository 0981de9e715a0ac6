package report

// Fixed product strings that appear in every document.
const (
	ProductName     = "CodeTestGuard"
	productTagline  = "代码变更测试质检平台"
	footerAttribute = "由 CodeTestGuard 自动生成"
	reportNoun      = "质检报告"
	titleSeparator  = " — "
	emptyCellGlyph  = "-"
	matchedTestJoin = ", "
	statusCovered   = "已覆盖"
	statusUncovered = "未覆盖"
	scoreSuffix     = "/100"
	durationSuffix  = "ms"
)

const documentHead = `<!DOCTYPE html>
<html lang="zh-CN">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
`

const stylesheet = `<style>
* { margin: 0; padding: 0; box-sizing: border-box; }
body {
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", "PingFang SC", "Microsoft YaHei", sans-serif;
  line-height: 1.6;
  color: #2d3436;
  background: #f5f6fa;
  padding: 24px;
}
.container {
  max-width: 1080px;
  margin: 0 auto;
  background: #fff;
  border-radius: 8px;
  box-shadow: 0 2px 8px rgba(0, 0, 0, 0.08);
  overflow: hidden;
}
.header {
  background: linear-gradient(135deg, #6c5ce7 0%, #0984e3 100%);
  color: #fff;
  padding: 28px 32px;
}
.header h1 { font-size: 24px; margin-bottom: 6px; }
.header .product { font-size: 14px; opacity: 0.9; margin-bottom: 12px; }
.header .meta { display: flex; flex-wrap: wrap; gap: 8px 24px; font-size: 13px; opacity: 0.9; }
.section { padding: 24px 32px; border-bottom: 1px solid #eee; }
.section h2 { font-size: 18px; margin-bottom: 16px; }
.section h3 { font-size: 15px; margin: 16px 0 8px; }
.score-card { display: flex; align-items: center; gap: 24px; }
.grade {
  width: 72px; height: 72px; border-radius: 50%;
  color: #fff; font-size: 36px; font-weight: 700;
  display: flex; align-items: center; justify-content: center;
}
.score-value { font-size: 40px; font-weight: 700; }
.score-max { font-size: 18px; color: #636e72; margin-left: 4px; }
.stats { display: grid; grid-template-columns: repeat(4, 1fr); gap: 16px; margin-bottom: 16px; }
.stat { background: #f8f9fa; border-radius: 6px; padding: 12px 16px; }
.stat .label { font-size: 12px; color: #636e72; }
.stat .value { font-size: 22px; font-weight: 600; }
table { width: 100%; border-collapse: collapse; font-size: 13px; }
th, td { text-align: left; padding: 8px 10px; border-bottom: 1px solid #eee; vertical-align: top; }
th { background: #f8f9fa; font-weight: 600; }
td.method { font-family: "SFMono-Regular", Consolas, monospace; word-break: break-all; }
.tag { display: inline-block; padding: 2px 8px; border-radius: 4px; font-size: 12px; white-space: nowrap; }
.tag-covered { background: #e6f9f3; color: #00b894; }
.tag-uncovered { background: #fdecea; color: #d63031; }
.risk-badge { display: inline-block; padding: 2px 10px; border-radius: 12px; font-size: 12px; font-weight: 600; background: #dfe6e9; color: #2d3436; }
.risk-high { background: #d63031; color: #fff; }
.risk-medium { background: #f39c12; color: #fff; }
.risk-low { background: #00b894; color: #fff; }
.gaps { background: #fffbea; border-left: 4px solid #f39c12; padding: 10px 14px; white-space: pre-wrap; }
.ai-error { background: #fdecea; border-left: 4px solid #d63031; padding: 10px 14px; color: #d63031; }
.suggestions { padding-left: 20px; }
.suggestions li { margin-bottom: 6px; }
.footer { padding: 16px 32px; text-align: center; font-size: 12px; color: #b2bec3; }
@media print { body { background: #fff; padding: 0; } .container { box-shadow: none; } }
</style>
`

const documentBodyOpen = `</head>
<body>
<div class="container">
`

const documentTail = `</div>
</body>
</html>
`
