// Package types implements special types for the Pocket Ledger backend.
package types

import (
	"database/sql"
	"database/sql/driver"
	"regexp"
	"strings"
	"time"
)

// Date is a calendar day in UTC.
type Date time.Time

var fullDate = regexp.MustCompile("^[0-9]{4}-[0-9]{2}-[0-9]{2}$")

// storedLayouts are the formats SQLite may hand back for date columns.
var storedLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05-07:00",
	"2006-01-02 15:04:05",
	time.RFC3339Nano,
	"2006-01-02",
}

// NewDate returns a new Date.
func NewDate(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the Date on which a time occurs in UTC.
func DateOf(t time.Time) Date {
	year, month, day := t.UTC().Date()
	return NewDate(year, month, day)
}

// Today returns the current UTC date.
func Today() Date {
	return DateOf(time.Now())
}

// ParseDate parses a string in RFC3339 full-date format and returns the Date it represents.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, err
	}

	return DateOf(t), nil
}

// DaysIn returns the number of days in the month of the specified year.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// String returns the date formatted as YYYY-MM-DD.
func (d Date) String() string {
	return time.Time(d).Format("2006-01-02")
}

// Time returns the date as time.Time at midnight UTC.
func (d Date) Time() time.Time {
	return time.Time(d)
}

// MarshalJSON implements the json.Marshaler interface.
func (d Date) MarshalJSON() ([]byte, error) {
	return time.Time(d).MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface.
//
// Both "2006-01-02" and RFC3339 timestamps are accepted, the time of day
// is discarded.
func (d *Date) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	return d.UnmarshalParam(value)
}

// UnmarshalParam implements gin's BindUnmarshaler so that dates
// can be bound from query strings and URIs.
func (d *Date) UnmarshalParam(value string) error {
	if value == "" {
		*d = Date{}
		return nil
	}

	pattern := time.RFC3339
	if fullDate.MatchString(value) {
		pattern = "2006-01-02"
	}

	t, err := time.Parse(pattern, value)
	if err != nil {
		return err
	}

	*d = DateOf(t)
	return nil
}

// Scan writes the value from the database.
func (d *Date) Scan(value any) (err error) {
	if s, ok := value.(string); ok {
		for _, layout := range storedLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				*d = DateOf(t)
				return nil
			}
		}
	}

	nullTime := &sql.NullTime{}
	err = nullTime.Scan(value)
	if nullTime.Valid {
		*d = DateOf(nullTime.Time)
	}
	return err
}

// Value returns the value for the SQL driver to write to the database.
func (d Date) Value() (driver.Value, error) {
	return time.Time(d), nil
}

// GormDataType defines the data type used by gorm the type.
func (Date) GormDataType() string {
	return "date"
}

// IsZero reports if the date is the zero value.
func (d Date) IsZero() bool {
	return time.Time(d).IsZero()
}

// AddDays adds the number of days.
func (d Date) AddDays(days int) Date {
	return Date(time.Time(d).AddDate(0, 0, days))
}

// AddMonthsOnDay moves the date by the number of months and sets the day of month.
//
// If the day does not exist in the target month, the last day of that month is used.
// In contrast to time.AddDate, the result never spills over into the following month.
func (d Date) AddMonthsOnDay(months, day int) Date {
	t := time.Time(d)
	first := time.Date(t.Year(), t.Month()+time.Month(months), 1, 0, 0, 0, 0, time.UTC)

	if last := DaysIn(first.Year(), first.Month()); day > last {
		day = last
	}
	if day < 1 {
		day = 1
	}

	return NewDate(first.Year(), first.Month(), day)
}

// Before reports whether d is before e.
func (d Date) Before(e Date) bool {
	return time.Time(d).Before(time.Time(e))
}

// After reports whether d is after e.
func (d Date) After(e Date) bool {
	return time.Time(d).After(time.Time(e))
}

// Equal reports whether d and e are the same day.
func (d Date) Equal(e Date) bool {
	return time.Time(d).Equal(time.Time(e))
}
