package fundholdings

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/qjlxg/fundholdings/quarter"
)

// This file decodes one quarterly holdings snapshot file into canonical
// Holding records. Two column layouts are observed in the wild:
//
//   - variant A: the canonical column set, possibly with two legacy header
//     spellings (占净值 比例, 持仓市值 （万元）) that are renamed on read;
//   - variant B: a superset that additionally carries 最新价 and other live
//     quote columns, of which only the canonical subset is retained.
//
// The layout is decided once from the header row; every data row is
// normalized immediately, so the rest of the pipeline only ever sees the
// canonical record shape.

// Canonical column names.
const (
	colSeq     = "序号"
	colCode    = "股票代码"
	colName    = "股票名称"
	colNews    = "相关资讯"
	colWeight  = "占净值比例"
	colShares  = "持股数 （万股）"
	colValue   = "持仓市值"
	colQuarter = "季度"

	colLatestPrice = "最新价" // presence marks variant B
)

// renames maps legacy header spellings to their canonical names.
var renames = map[string]string{
	"占净值 比例":     colWeight,
	"持仓市值 （万元）": colValue,
}

// layout resolves canonical column names to their indices in one snapshot file.
type layout struct {
	variantB bool
	index    map[string]int
}

// newLayout classifies the header row and resolves the canonical columns.
func newLayout(header []string) (*layout, error) {
	l := &layout{index: make(map[string]int, len(header))}
	for i, name := range header {
		name = strings.TrimPrefix(strings.TrimSpace(name), "\uFEFF") // pandas writes utf-8-sig
		if canonical, ok := renames[name]; ok {
			name = canonical
		}
		l.index[name] = i
	}
	_, l.variantB = l.index[colLatestPrice]

	// Variant B is known to carry extra columns; retaining the canonical
	// subset requires every one of its columns to be present.
	required := []string{colCode, colName, colWeight, colShares, colValue, colQuarter}
	if l.variantB {
		required = append(required, colSeq, colNews)
	}
	var missing []string
	for _, name := range required {
		if _, ok := l.index[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required column(s) %s", strings.Join(missing, ", "))
	}
	return l, nil
}

// cell returns the named column of a row, or "" when the column is absent
// (only possible for optional columns of variant A).
func (l *layout) cell(row []string, name string) string {
	i, ok := l.index[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// holding normalizes one data row into a canonical record.
func (l *layout) holding(fund string, row []string) (Holding, error) {
	q, err := quarter.Parse(l.cell(row, colQuarter))
	if err != nil {
		return Holding{}, err
	}
	weight, err := ParsePercent(l.cell(row, colWeight))
	if err != nil {
		return Holding{}, err
	}
	shares, err := ParseWanShares(l.cell(row, colShares))
	if err != nil {
		return Holding{}, err
	}
	value, err := ParseWanYuan(l.cell(row, colValue))
	if err != nil {
		return Holding{}, err
	}
	code := l.cell(row, colCode)
	return Holding{
		Fund:     fund,
		Code:     code,
		Name:     l.cell(row, colName),
		News:     l.cell(row, colNews),
		Weight:   weight,
		Shares:   shares,
		Value:    value,
		Quarter:  q,
		Segment:  SegmentOf(code),
		Industry: IndustryOf(code),
		Theme:    ThemeOf(code),
	}, nil
}

// DecodeSnapshot reads one snapshot table from r and normalizes it into
// canonical records for the given fund. Any defect makes the whole snapshot
// unusable: the caller decides whether to skip it.
func DecodeSnapshot(r io.Reader, fund string) ([]Holding, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // variant rows may be ragged; the layout indexes what it needs

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("cannot read header: %w", err)
	}
	l, err := newLayout(header)
	if err != nil {
		return nil, err
	}

	var holdings []Holding
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		h, err := l.holding(fund, row)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		holdings = append(holdings, h)
	}
	return holdings, nil
}

// ReadSnapshot is the file-level counterpart of DecodeSnapshot.
func ReadSnapshot(path, fund string) ([]Holding, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open snapshot %q: %w", path, err)
	}
	defer f.Close()
	holdings, err := DecodeSnapshot(f, fund)
	if err != nil {
		return nil, fmt.Errorf("snapshot %q: %w", path, err)
	}
	return holdings, nil
}
