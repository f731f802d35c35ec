package fundholdings

import (
	"log"
	"slices"

	"github.com/qjlxg/fundholdings/quarter"
)

// Holding is one instrument held by a fund as of a reporting quarter, in the
// canonical record shape shared by every snapshot variant. A Holding is
// created during normalization and never mutated afterwards.
type Holding struct {
	Fund    string  // fund identifier, e.g. "000001"
	Code    string  // instrument code, e.g. "600519"
	Name    string  // instrument display name
	News    string  // related-news text carried over from the snapshot
	Weight  Percent // share of the fund's net value
	Shares  Quantity
	Value   Money
	Quarter quarter.Quarter

	// Classification labels, derived from Code at normalization time.
	Segment  string
	Industry string
	Theme    string
}

// FundHistory is the merged, chronologically ordered holdings table of one
// fund, spanning every successfully parsed snapshot quarter.
type FundHistory struct {
	fund     string
	holdings []Holding
}

// NewFundHistory merges normalized records into one chronological table.
// Row order across source files is irrelevant: ordering is re-derived here by
// sorting on (year, quarter ordinal). Duplicate (quarter, code) pairs collapse
// to their first occurrence with a diagnostic.
func NewFundHistory(fund string, recs []Holding) *FundHistory {
	merged := slices.Clone(recs)
	slices.SortStableFunc(merged, func(a, b Holding) int { return a.Quarter.Compare(b.Quarter) })

	type key struct {
		q    quarter.Quarter
		code string
	}
	seen := make(map[key]bool, len(merged))
	holdings := merged[:0]
	for _, h := range merged {
		k := key{q: h.Quarter, code: h.Code}
		if seen[k] {
			log.Printf("fund %s: duplicate holding %s in %s, keeping first occurrence", fund, h.Code, h.Quarter)
			continue
		}
		seen[k] = true
		holdings = append(holdings, h)
	}
	return &FundHistory{fund: fund, holdings: holdings}
}

// Fund returns the fund identifier this history belongs to.
func (h *FundHistory) Fund() string { return h.fund }

// Empty reports whether the history holds no records.
func (h *FundHistory) Empty() bool { return len(h.holdings) == 0 }

// Holdings returns all records in chronological order.
func (h *FundHistory) Holdings() []Holding { return h.holdings }

// Quarters returns the distinct reporting quarters in chronological order.
func (h *FundHistory) Quarters() []quarter.Quarter {
	var quarters []quarter.Quarter
	for _, rec := range h.holdings {
		if len(quarters) == 0 || quarters[len(quarters)-1] != rec.Quarter {
			quarters = append(quarters, rec.Quarter)
		}
	}
	return quarters
}

// InQuarter returns the records of a single reporting quarter, in file row order.
func (h *FundHistory) InQuarter(q quarter.Quarter) []Holding {
	var recs []Holding
	for _, rec := range h.holdings {
		if rec.Quarter == q {
			recs = append(recs, rec)
		}
	}
	return recs
}

// Latest returns the most recent reporting quarter, and false when the
// history is empty.
func (h *FundHistory) Latest() (quarter.Quarter, bool) {
	if len(h.holdings) == 0 {
		return quarter.Quarter{}, false
	}
	return h.holdings[len(h.holdings)-1].Quarter, true
}
