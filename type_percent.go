package fundholdings

import (
	"fmt"
	"strconv"
	"strings"
)

// Percent represents an allocation expressed as a percentage of a fund's net
// value. Sums of Percent values are carried as raw numbers; formatting to two
// decimal places only happens at rendering time.
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}

// ParsePercent parses an allocation percentage cell from a snapshot file.
// It tolerates a trailing percent sign and surrounding spaces.
func ParsePercent(s string) (Percent, error) {
	t := strings.TrimSpace(s)
	t = strings.TrimSuffix(t, "%")
	v, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid percentage %q: %w", s, err)
	}
	return Percent(v), nil
}
