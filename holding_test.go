package fundholdings

import (
	"testing"

	"github.com/qjlxg/fundholdings/quarter"
)

// rec builds a minimal normalized record for merge tests.
func rec(code, name, label string, weight Percent) Holding {
	return Holding{
		Fund:     "000001",
		Code:     code,
		Name:     name,
		Weight:   weight,
		Quarter:  quarter.MustParse(label),
		Segment:  SegmentOf(code),
		Industry: IndustryOf(code),
		Theme:    ThemeOf(code),
	}
}

func TestNewFundHistory_Order(t *testing.T) {
	// Rows arrive in arbitrary file order; the merge re-derives chronology.
	recs := []Holding{
		rec("600519", "贵州茅台", "2023年3季度", 8),
		rec("600519", "贵州茅台", "2022年4季度", 7),
		rec("000858", "五粮液", "2023年1季度", 5),
		rec("600519", "贵州茅台", "2023年1季度", 6),
	}
	h := NewFundHistory("000001", recs)

	want := []quarter.Quarter{
		quarter.New(2022, 4),
		quarter.New(2023, 1),
		quarter.New(2023, 3),
	}
	got := h.Quarters()
	if len(got) != len(want) {
		t.Fatalf("Quarters() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Quarters()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	// Quarter ordering must be numeric on (year, ordinal).
	if h.Holdings()[0].Quarter != quarter.New(2022, 4) {
		t.Errorf("first holding quarter = %v, want 2022-Q4", h.Holdings()[0].Quarter)
	}
}

func TestNewFundHistory_RowOrderWithinQuarter(t *testing.T) {
	// Within one quarter the file row order is preserved.
	recs := []Holding{
		rec("600519", "贵州茅台", "2023年1季度", 6),
		rec("000858", "五粮液", "2023年1季度", 5),
	}
	h := NewFundHistory("000001", recs)
	rows := h.InQuarter(quarter.New(2023, 1))
	if len(rows) != 2 || rows[0].Code != "600519" || rows[1].Code != "000858" {
		t.Errorf("InQuarter() rows = %v, want 600519 then 000858", rows)
	}
}

func TestNewFundHistory_DuplicateCollapses(t *testing.T) {
	recs := []Holding{
		rec("600519", "贵州茅台", "2023年1季度", 6),
		rec("600519", "贵州茅台", "2023年1季度", 9),
	}
	h := NewFundHistory("000001", recs)
	rows := h.InQuarter(quarter.New(2023, 1))
	if len(rows) != 1 {
		t.Fatalf("InQuarter() returned %d rows, want 1", len(rows))
	}
	if !rows[0].Weight.Equal(6) {
		t.Errorf("duplicate kept weight %v, want the first occurrence (6)", rows[0].Weight)
	}
}

func TestFundHistory_Latest(t *testing.T) {
	if _, ok := NewFundHistory("000001", nil).Latest(); ok {
		t.Error("Latest() on empty history reported ok")
	}
	h := NewFundHistory("000001", []Holding{
		rec("600519", "贵州茅台", "2023年3季度", 8),
		rec("600519", "贵州茅台", "2022年4季度", 7),
	})
	latest, ok := h.Latest()
	if !ok || latest != quarter.New(2023, 3) {
		t.Errorf("Latest() = %v, %v, want 2023-Q3, true", latest, ok)
	}
}
