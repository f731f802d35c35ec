package fundholdings

import (
	"slices"

	"github.com/qjlxg/fundholdings/quarter"
)

// Breakdown is a (year × label) pivot of summed allocation percentages,
// built by explicit in-memory aggregation. Year rows are ascending, label
// columns are in lexicographic order, and missing combinations are zero.
type Breakdown struct {
	years  []int
	labels []string
	cells  map[int]map[string]Percent
}

// BreakdownBy aggregates a fund history by year and by an arbitrary label of
// each holding. The same engine serves the segment, industry and theme
// summaries.
func BreakdownBy(h *FundHistory, label func(Holding) string) *Breakdown {
	b := &Breakdown{cells: make(map[int]map[string]Percent)}
	for _, rec := range h.Holdings() {
		year := rec.Quarter.Year()
		row, ok := b.cells[year]
		if !ok {
			row = make(map[string]Percent)
			b.cells[year] = row
			b.years = append(b.years, year)
		}
		l := label(rec)
		if _, ok := row[l]; !ok {
			if !slices.Contains(b.labels, l) {
				b.labels = append(b.labels, l)
			}
		}
		row[l] += rec.Weight
	}
	slices.Sort(b.years)
	slices.Sort(b.labels)
	return b
}

// Years returns the pivot's year rows in ascending order.
func (b *Breakdown) Years() []int { return b.years }

// Labels returns the pivot's label columns in lexicographic order.
func (b *Breakdown) Labels() []string { return b.labels }

// At returns the summed allocation percentage of one (year, label) cell.
// Missing combinations are zero.
func (b *Breakdown) At(year int, label string) Percent {
	return b.cells[year][label]
}

// Dominant returns the label with the maximum summed percentage in the given
// year. Ties resolve to the first label in column order.
func (b *Breakdown) Dominant(year int) string {
	var best string
	var max Percent
	for _, l := range b.labels {
		if v := b.cells[year][l]; best == "" || v > max {
			best, max = l, v
		}
	}
	return best
}

// Concentration is the per-quarter sum of allocation percentages of a fund,
// in chronological order. Because each snapshot is already restricted to the
// fund's largest holdings, the sum serves as a concentration proxy.
type Concentration struct {
	quarters []quarter.Quarter
	totals   []Percent
}

// ConcentrationOf sums the allocation percentages of every reporting quarter.
func ConcentrationOf(h *FundHistory) Concentration {
	var c Concentration
	for _, q := range h.Quarters() {
		var total Percent
		for _, rec := range h.InQuarter(q) {
			total += rec.Weight
		}
		c.quarters = append(c.quarters, q)
		c.totals = append(c.totals, total)
	}
	return c
}

// Len returns the number of quarters with a concentration value.
func (c Concentration) Len() int { return len(c.quarters) }

// Quarters returns the quarters in chronological order.
func (c Concentration) Quarters() []quarter.Quarter { return c.quarters }

// Total returns the summed allocation percentage of the i-th quarter.
func (c Concentration) Total(i int) Percent { return c.totals[i] }

// First returns the earliest quarter's concentration.
func (c Concentration) First() Percent { return c.totals[0] }

// Last returns the latest quarter's concentration.
func (c Concentration) Last() Percent { return c.totals[len(c.totals)-1] }
