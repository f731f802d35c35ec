package fundholdings

import "fmt"

// Rule-based trend commentary. Each rule only fires when at least two
// quarters (or years) of data exist; the disclaimer and the closing advice
// are fixed text appended to every report regardless of data volume.

// Disclaimer is the fixed warning quoted at the top of every trend summary.
const Disclaimer = "> **免责声明**：本报告基于历史持仓数据进行分析，不构成任何投资建议。投资有风险，入市需谨慎。"

// ClosingAdvice is the fixed general-advice paragraph closing every fund section.
const ClosingAdvice = "  在考虑投资该基金时，建议将上述分析结果与其他因素结合考量，例如基金的过往业绩、基金经理的管理经验、基金规模以及费率等。"

// concentrationThreshold is the absolute percentage-point move beyond which
// the concentration trend reads as rising or falling rather than stable.
const concentrationThreshold = 10

const (
	concentrationRising  = "- **持仓集中度**：在分析期内，该基金的持仓集中度显著**上升**。这表明基金经理正将资金集中到其看好的少数股票上。这可能带来更高的回报，但同时也伴随着更高的风险。"
	concentrationFalling = "- **持仓集中度**：在分析期内，该基金的持仓集中度显著**下降**。这表明基金经理正在分散投资，这通常有助于降低风险，但可能牺牲部分超额收益。"
	concentrationStable  = "- **持仓集中度**：该基金的持仓集中度在分析期内相对**稳定**。这可能表明基金经理的投资风格较为稳健，并坚持其既定的投资策略。"

	segmentShifted = "- **板块偏好**：基金的投资偏好在分析期内发生了明显变化，从最初主要集中在**%s**转向了**%s**。这可能反映了基金经理对市场热点或宏观经济的最新判断。"
	segmentStable  = "- **板块偏好**：该基金在分析期内保持了相对稳定的投资风格，主要偏向于**%s**板块。"
)

// ConcentrationTrend derives the concentration observation from the raw
// (unformatted) per-quarter sums. The difference between the last and the
// first quarter is compared against an absolute percentage-point threshold.
// With fewer than two quarters there is nothing to observe and "" is returned.
func ConcentrationTrend(c Concentration) string {
	if c.Len() < 2 {
		return ""
	}
	diff := c.Last() - c.First()
	switch {
	case diff > concentrationThreshold:
		return concentrationRising
	case diff < -concentrationThreshold:
		return concentrationFalling
	default:
		return concentrationStable
	}
}

// SegmentShift compares the dominant segment of the first and the last year
// of the segment breakdown. With fewer than two years it returns "".
func SegmentShift(b *Breakdown) string {
	years := b.Years()
	if len(years) < 2 {
		return ""
	}
	first := b.Dominant(years[0])
	last := b.Dominant(years[len(years)-1])
	if first != last {
		return fmt.Sprintf(segmentShifted, first, last)
	}
	return fmt.Sprintf(segmentStable, first)
}

// Observations returns the introduction line and the fired rule statements
// of one fund, in report order.
func Observations(a *FundAnalysis) []string {
	obs := []string{fmt.Sprintf("基于对基金 **%s** 的历史持仓数据分析，本报告得出以下关键观察结果：", a.Fund)}
	if s := ConcentrationTrend(a.Concentration); s != "" {
		obs = append(obs, s)
	}
	if s := SegmentShift(a.Segments); s != "" {
		obs = append(obs, s)
	}
	return obs
}
