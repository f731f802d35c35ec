// Package renderer formats fund analyses as markdown report sections.
package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/qjlxg/fundholdings"
)

// ReportMarkdown generates the full markdown report: every fund section, in
// fund discovery order, as one UTF-8 document.
func ReportMarkdown(report *fundholdings.Report) string {
	var b strings.Builder
	for _, a := range report.Funds() {
		b.WriteString(FundMarkdown(a))
	}
	return b.String()
}

// FundMarkdown renders one fund's report section: header, holdings changes,
// preference and concentration tables, and the trend summary.
func FundMarkdown(a *fundholdings.FundAnalysis) string {
	r := &fundRenderer{Builder: &strings.Builder{}}

	r.Printf("## 基金代码: %s 持仓分析报告\n\n---\n\n", a.Fund)
	r.renderChanges(a)
	r.renderPreferences(a)
	r.renderSummary(a)
	return r.String()
}

// fundRenderer formats the output of one fund analysis into a markdown string.
type fundRenderer struct {
	*strings.Builder
}

// Printf formats according to a format specifier and writes to the renderer's buffer.
func (r *fundRenderer) Printf(format string, args ...any) {
	fmt.Fprintf(r, format, args...)
}

func (r *fundRenderer) renderChanges(a *fundholdings.FundAnalysis) {
	r.Printf("### 1. 重仓股变动\n\n")
	for _, c := range a.Changes {
		r.Printf("#### 从 %s 到 %s 的变动\n\n", c.From, c.To)
		if len(c.Added) > 0 {
			r.Printf("- **新增股票**：%s\n", strings.Join(c.Added, ", "))
		}
		if len(c.Removed) > 0 {
			r.Printf("- **移除股票**：%s\n", strings.Join(c.Removed, ", "))
		}
		if len(c.Added) > 0 || len(c.Removed) > 0 {
			r.Printf("\n")
		}
	}
}

func (r *fundRenderer) renderPreferences(a *fundholdings.FundAnalysis) {
	r.Printf("### 2. 行业偏好、主题热点和持仓集中度\n\n")
	r.renderBreakdown("板块偏好（占净值比例之和）", a.Segments)
	r.renderBreakdown("行业偏好（占净值比例之和）", a.Industries)
	r.renderBreakdown("主题热点偏好（占净值比例之和）", a.Themes)
	r.renderConcentration(a.Concentration)
	ConditionalBlock(r, func(w io.Writer) bool { return renderLatestHoldings(w, a) })
}

// renderBreakdown renders one (year × label) pivot as a markdown table.
// Zero cells are rendered blank rather than "0.00%".
func (r *fundRenderer) renderBreakdown(title string, b *fundholdings.Breakdown) {
	r.Printf("#### %s\n\n", title)
	r.Printf("| 年份 |")
	for _, label := range b.Labels() {
		r.Printf(" %s |", label)
	}
	r.Printf("\n|:---|")
	for range b.Labels() {
		r.Printf("---:|")
	}
	r.Printf("\n")
	for _, year := range b.Years() {
		r.Printf("| %d |", year)
		for _, label := range b.Labels() {
			if v := b.At(year, label); v > 0 {
				r.Printf(" %s |", v)
			} else {
				r.Printf("  |")
			}
		}
		r.Printf("\n")
	}
	r.Printf("\n")
}

func (r *fundRenderer) renderConcentration(c fundholdings.Concentration) {
	r.Printf("#### 前十大持仓集中度（占净值比例之和）\n\n")
	r.Printf("| 季度 | 占净值比例 |\n|:---|---:|\n")
	for i, q := range c.Quarters() {
		r.Printf("| %s | %s |\n", q, c.Total(i))
	}
	r.Printf("\n")
}

// renderLatestHoldings renders the latest quarter's holdings detail table.
// It reports false when the history has no quarter to detail.
func renderLatestHoldings(w io.Writer, a *fundholdings.FundAnalysis) bool {
	latest, ok := a.History.Latest()
	if !ok {
		return false
	}
	fmt.Fprintf(w, "#### 最新持仓明细（%s）\n\n", latest)
	fmt.Fprintf(w, "| 股票代码 | 股票名称 | 占净值比例 | 持股数 | 持仓市值 |\n")
	fmt.Fprintf(w, "|:---|:---|---:|---:|---:|\n")
	for _, h := range a.History.InQuarter(latest) {
		fmt.Fprintf(w, "| %s | %s | %s | %s | %s |\n", h.Code, h.Name, h.Weight, h.Shares, h.Value)
	}
	fmt.Fprintf(w, "\n")
	return true
}

func (r *fundRenderer) renderSummary(a *fundholdings.FundAnalysis) {
	r.Printf("### 3. 趋势总结和投资建议\n\n")
	r.Printf("%s\n\n", fundholdings.Disclaimer)
	for _, obs := range fundholdings.Observations(a) {
		r.Printf("%s\n\n", obs)
	}
	r.Printf("**总结与建议：**\n\n%s\n\n", fundholdings.ClosingAdvice)
}
