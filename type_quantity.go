package fundholdings

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt32(int32(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}

}

// Quantity represents an exact number of shares.
type Quantity struct {
	value decimal.Decimal
}

func Q[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Quantity {
	return Quantity{value: newDecimal(value)}
}

// ParseWanShares parses a share-count cell expressed in 万股 (tens of
// thousands of shares, the snapshot file unit) into an exact share count.
// It tolerates thousands separators and surrounding spaces.
func ParseWanShares(s string) (Quantity, error) {
	v, err := parseCell(s)
	if err != nil {
		return Quantity{}, fmt.Errorf("invalid share count %q: %w", s, err)
	}
	return Quantity{value: v.Shift(4)}, nil
}

// parseCell parses a numeric snapshot cell, tolerating thousands separators.
func parseCell(s string) (decimal.Decimal, error) {
	t := strings.TrimSpace(s)
	t = strings.ReplaceAll(t, ",", "")
	v, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return decimal.NewFromFloat(v), nil
}

func (t Quantity) Equal(p Quantity) bool       { return t.value.Equal(p.value) }
func (t Quantity) Add(p Quantity) Quantity     { return Quantity{value: t.value.Add(p.value)} }
func (t Quantity) GreaterThan(p Quantity) bool { return t.value.GreaterThan(p.value) }
func (t Quantity) IsZero() bool                { return t.value.IsZero() }

// String renders the share count as a plain decimal number.
func (t Quantity) String() string { return t.value.String() }
