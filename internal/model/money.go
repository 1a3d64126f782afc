package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Money is a decimal amount (also used for tax percentages and hours).
// Historical exports sometimes stored these fields as strings to dodge
// input parsing, so the wire format accepts either a JSON number or a
// numeric string. The authoritative collection always holds numbers.
type Money float64

// UnmarshalJSON accepts a number, a numeric string, an empty string,
// or null. Empty and null decode to zero.
func (m *Money) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*m = 0
		return nil
	}

	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		str = strings.TrimSpace(str)
		if str == "" {
			*m = 0
			return nil
		}
		f, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return fmt.Errorf("invalid numeric value %q", str)
		}
		*m = Money(f)
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*m = Money(f)
	return nil
}

// Float returns the amount as a plain float64.
func (m Money) Float() float64 {
	return float64(m)
}
