package market

import (
	"database/sql/driver"
	"strconv"
)

// NullFloat is a float64 with an explicit "no value" state. It marks
// quantities that are arithmetically undefined (leverage with a zero start
// position, a stddev over fewer than two points) so they can be excluded
// from means instead of polluting them as sentinel zeros.
type NullFloat struct {
	Float64 float64
	Valid   bool
}

// Float wraps a defined value.
func Float(v float64) NullFloat {
	return NullFloat{Float64: v, Valid: true}
}

// NoValue is the undefined NullFloat.
var NoValue = NullFloat{}

// Value implements driver.Valuer so undefined values land as SQL NULL.
func (f NullFloat) Value() (driver.Value, error) {
	if !f.Valid {
		return nil, nil
	}
	return f.Float64, nil
}

// MarshalCSV renders an undefined value as an empty cell.
func (f NullFloat) MarshalCSV() (string, error) {
	if !f.Valid {
		return "", nil
	}
	return strconv.FormatFloat(f.Float64, 'f', -1, 64), nil
}

// UnmarshalCSV treats an empty cell as undefined.
func (f *NullFloat) UnmarshalCSV(s string) error {
	if s == "" {
		*f = NoValue
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*f = Float(v)
	return nil
}
