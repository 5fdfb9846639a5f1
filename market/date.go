package market

import "time"

// Date is a UTC calendar date. It is comparable and usable as a map key,
// which is what the date join and the daily grouping need.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf truncates t to its UTC calendar date.
func DateOf(t time.Time) Date {
	y, m, d := t.UTC().Date()
	return Date{Year: y, Month: m, Day: d}
}

// DateOfMillis truncates an epoch-milliseconds timestamp to its UTC date.
func DateOfMillis(ms int64) Date {
	return DateOf(time.UnixMilli(ms))
}

// ParseDate parses YYYY-MM-DD.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, err
	}
	return DateOf(t), nil
}

// Time returns midnight UTC of the date.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Before reports whether d is earlier than other.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

func (d Date) String() string {
	return d.Time().Format("2006-01-02")
}

// MarshalCSV renders the date as YYYY-MM-DD for gocsv.
func (d Date) MarshalCSV() (string, error) {
	return d.String(), nil
}

// UnmarshalCSV parses YYYY-MM-DD for gocsv.
func (d *Date) UnmarshalCSV(s string) error {
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
