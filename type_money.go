package fundholdings

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value in CNY, the only currency appearing in
// fund holdings snapshots.
type Money struct {
	value decimal.Decimal // as major unit value
}

func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

// ParseWanYuan parses a market-value cell expressed in 万元 (tens of thousands
// of yuan, the snapshot file unit) into a yuan amount.
func ParseWanYuan(s string) (Money, error) {
	v, err := parseCell(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid market value %q: %w", s, err)
	}
	return Money{value: v.Shift(4)}, nil
}

// currency returns the CNY currency description.
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, money.CNY).Currency()
}

// String returns the value formatted with the CNY currency conventions.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

func (m Money) Equal(n Money) bool       { return m.value.Equal(n.value) }
func (m Money) IsZero() bool             { return m.value.IsZero() }
func (m Money) Add(n Money) Money        { return Money{value: m.value.Add(n.value)} }
func (m Money) GreaterThan(n Money) bool { return m.value.GreaterThan(n.value) }
