package fundholdings

import (
	"strings"
	"testing"

	"github.com/qjlxg/fundholdings/quarter"
)

// concentration builds a Concentration fixture from raw per-quarter sums.
func concentration(totals ...Percent) Concentration {
	var c Concentration
	for i, total := range totals {
		c.quarters = append(c.quarters, quarter.New(2022+i/4, i%4+1))
		c.totals = append(c.totals, total)
	}
	return c
}

func TestConcentrationTrend(t *testing.T) {
	testCases := []struct {
		name string
		c    Concentration
		want string // distinguishing fragment, or "" for no observation
	}{
		{name: "rising above threshold", c: concentration(40, 55), want: "上升"},
		{name: "falling below threshold", c: concentration(55, 40), want: "下降"},
		{name: "small move is stable", c: concentration(40, 38), want: "稳定"},
		{name: "exactly at threshold is stable", c: concentration(40, 50), want: "稳定"},
		{name: "single quarter has no trend", c: concentration(40), want: ""},
		{name: "no data has no trend", c: concentration(), want: ""},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ConcentrationTrend(tc.c)
			if tc.want == "" {
				if got != "" {
					t.Errorf("ConcentrationTrend() = %q, want empty", got)
				}
				return
			}
			if !strings.Contains(got, tc.want) {
				t.Errorf("ConcentrationTrend() = %q, want it to contain %q", got, tc.want)
			}
		})
	}
}

func TestSegmentShift(t *testing.T) {
	shifted := NewFundHistory("000001", []Holding{
		rec("600519", "贵州茅台", "2022年4季度", 8), // 主板 dominates 2022
		rec("688001", "华兴源创", "2023年1季度", 9), // 科创板 dominates 2023
	})
	got := SegmentShift(BreakdownBy(shifted, segmentLabel))
	if !strings.Contains(got, "主板") || !strings.Contains(got, "科创板") || !strings.Contains(got, "转向") {
		t.Errorf("SegmentShift() = %q, want a shift from 主板 to 科创板", got)
	}

	stable := NewFundHistory("000001", []Holding{
		rec("600519", "贵州茅台", "2022年4季度", 8),
		rec("600519", "贵州茅台", "2023年1季度", 9),
	})
	got = SegmentShift(BreakdownBy(stable, segmentLabel))
	if !strings.Contains(got, "稳定") || !strings.Contains(got, "主板") {
		t.Errorf("SegmentShift() = %q, want a stable preference for 主板", got)
	}

	oneYear := NewFundHistory("000001", []Holding{
		rec("600519", "贵州茅台", "2023年1季度", 8),
	})
	if got := SegmentShift(BreakdownBy(oneYear, segmentLabel)); got != "" {
		t.Errorf("SegmentShift() = %q, want empty for a single year", got)
	}
}

func TestObservations(t *testing.T) {
	a := Analyze("000001", []Holding{
		rec("600519", "贵州茅台", "2023年1季度", 40),
		rec("600519", "贵州茅台", "2023年2季度", 55),
	})
	obs := Observations(a)
	if len(obs) != 2 {
		t.Fatalf("Observations() returned %d lines, want 2 (intro + concentration)", len(obs))
	}
	if !strings.Contains(obs[0], "000001") {
		t.Errorf("intro = %q, want it to name the fund", obs[0])
	}
	if !strings.Contains(obs[1], "上升") {
		t.Errorf("observation = %q, want the rising variant", obs[1])
	}
}
