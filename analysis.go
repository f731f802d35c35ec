package fundholdings

import (
	"log"
)

// FundAnalysis gathers everything one fund's report section is built from:
// the merged history and the derived changes, breakdowns, concentration and
// narrative inputs. It is owned by the per-fund job and never shared.
type FundAnalysis struct {
	Fund          string
	History       *FundHistory
	Changes       []QuarterChange
	Segments      *Breakdown
	Industries    *Breakdown
	Themes        *Breakdown
	Concentration Concentration
}

// Analyze runs the per-fund stages over already-normalized records: merge,
// holdings diff, classification breakdowns and concentration.
func Analyze(fund string, recs []Holding) *FundAnalysis {
	history := NewFundHistory(fund, recs)
	return &FundAnalysis{
		Fund:          fund,
		History:       history,
		Changes:       Changes(history),
		Segments:      BreakdownBy(history, func(h Holding) string { return h.Segment }),
		Industries:    BreakdownBy(history, func(h Holding) string { return h.Industry }),
		Themes:        BreakdownBy(history, func(h Holding) string { return h.Theme }),
		Concentration: ConcentrationOf(history),
	}
}

// Report is the ordered collection of per-fund analyses of one run. Sections
// are appended in fund discovery order and never mutated afterwards.
type Report struct {
	funds []*FundAnalysis
}

// Funds returns the analyses in discovery order.
func (r *Report) Funds() []*FundAnalysis { return r.funds }

// Run executes the whole pipeline over a snapshot directory: discovery,
// per-file normalization, and per-fund analysis in discovery order.
//
// Defective inputs are absorbed locally: an unreadable or malformed file is
// skipped with a diagnostic and the fund's other files still proceed; a fund
// with no usable file at all is omitted from the report. Only a directory
// with no usable input makes Run fail.
func Run(dir string) (*Report, error) {
	ff, err := DiscoverFunds(dir)
	if err != nil {
		return nil, err
	}

	report := &Report{}
	for _, fund := range ff.Codes() {
		var recs []Holding
		for _, path := range ff.Files(fund) {
			holdings, err := ReadSnapshot(path, fund)
			if err != nil {
				log.Printf("skipping %v", err)
				continue
			}
			recs = append(recs, holdings...)
		}
		if len(recs) == 0 {
			log.Printf("skipping fund %s: no usable snapshot", fund)
			continue
		}
		report.funds = append(report.funds, Analyze(fund, recs))
	}
	return report, nil
}
