package fundholdings

import "github.com/qjlxg/fundholdings/quarter"

// QuarterChange records the holdings turnover between two consecutive
// reporting quarters of one fund: the instruments newly added in To and the
// instruments no longer present since From. Added and Removed carry
// human-readable instrument names, in the row order of the quarter they were
// resolved in.
type QuarterChange struct {
	From, To quarter.Quarter
	Added    []string
	Removed  []string
}

// Changes computes the quarter-over-quarter holdings changes of a fund. It
// returns one entry per consecutive quarter pair, in chronological order.
// A history with fewer than two distinct quarters has no changes; that is
// not an error.
func Changes(h *FundHistory) []QuarterChange {
	quarters := h.Quarters()
	if len(quarters) < 2 {
		return nil
	}

	var changes []QuarterChange
	for i := 0; i < len(quarters)-1; i++ {
		cur, next := quarters[i], quarters[i+1]
		curRows, nextRows := h.InQuarter(cur), h.InQuarter(next)

		curSet := codeSet(curRows)
		nextSet := codeSet(nextRows)

		c := QuarterChange{From: cur, To: next}
		// additions = next minus current, named from the next quarter's rows
		for _, row := range nextRows {
			if !curSet[row.Code] {
				c.Added = append(c.Added, row.Name)
			}
		}
		// removals = current minus next, named from the current quarter's rows
		for _, row := range curRows {
			if !nextSet[row.Code] {
				c.Removed = append(c.Removed, row.Name)
			}
		}
		changes = append(changes, c)
	}
	return changes
}

func codeSet(rows []Holding) map[string]bool {
	set := make(map[string]bool, len(rows))
	for _, row := range rows {
		set[row.Code] = true
	}
	return set
}
