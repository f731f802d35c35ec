// Package quarter provides the reporting-period value type used throughout the
// holdings analysis: a calendar year plus a quarter ordinal (1 to 4).
package quarter

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Quarter represents one fund reporting period, e.g. the third quarter of 2023.
type Quarter struct {
	y int
	q int
}

// New returns a Quarter for the given year and ordinal.
func New(year, ord int) Quarter { return Quarter{y: year, q: ord} }

// Year returns the calendar year of the quarter.
func (q Quarter) Year() int { return q.y }

// Ord returns the quarter ordinal within the year (1 to 4).
func (q Quarter) Ord() int { return q.q }

// String formats the quarter in its normalized form, e.g. "2023-Q3".
func (q Quarter) String() string { return fmt.Sprintf("%d-Q%d", q.y, q.q) }

// Label formats the quarter the way the snapshot files spell it, e.g. "2023年3季度".
func (q Quarter) Label() string { return fmt.Sprintf("%d年%d季度", q.y, q.q) }

// Compare orders quarters chronologically. Ordinals are compared as integers,
// never as text, so the ordering stays correct for any ordinal range.
func (q Quarter) Compare(x Quarter) int {
	if q.y != x.y {
		return q.y - x.y
	}
	return q.q - x.q
}

// Before reports whether q is chronologically before x.
func (q Quarter) Before(x Quarter) bool { return q.Compare(x) < 0 }

var normalizedRe = regexp.MustCompile(`^([0-9]{4})-Q([0-9])$`)

// Parse parses a Quarter from a string. It accepts both the raw crawler label
// ("2023年3季度") and the normalized form ("2023-Q3").
func Parse(str string) (Quarter, error) {
	s := strings.TrimSpace(str)
	// Rewrite the raw label into the normalized form before matching.
	s = strings.Replace(s, "年", "-Q", 1)
	s = strings.TrimSuffix(s, "季度")

	m := normalizedRe.FindStringSubmatch(s)
	if m == nil {
		return Quarter{}, fmt.Errorf("invalid quarter %q: want %q or %q", str, "2023年3季度", "2023-Q3")
	}
	y, _ := strconv.Atoi(m[1])
	ord, _ := strconv.Atoi(m[2])
	if ord < 1 || ord > 4 {
		return Quarter{}, fmt.Errorf("invalid quarter %q: ordinal %d out of range 1..4", str, ord)
	}
	return Quarter{y: y, q: ord}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Quarter {
	q, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return q
}

// UnmarshalJSON implements the json specific way to unmarshall a quarter from a json string.
func (q *Quarter) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	parsed, err := Parse(str)
	if err != nil {
		return err
	}
	*q = parsed
	return nil
}

func (q Quarter) MarshalJSON() ([]byte, error) {
	str := q.String()
	return json.Marshal(&str)
}

// check that a Quarter pointer is a valid json marshall/unmarshaller type.
var _ json.Marshaler = (*Quarter)(nil)
var _ json.Unmarshaler = (*Quarter)(nil)
