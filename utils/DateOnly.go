package utils

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DateOnly is a day-granularity date column: due dates, deadline windows,
// completion dates. Serialized as 2006-01-02 in JSON and in the database.
type DateOnly time.Time

func NewDateOnly(t time.Time) DateOnly {
	return DateOnly(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC))
}

// ParseDateOnly parses a form-submitted 2006-01-02 value.
func ParseDateOnly(s string) (DateOnly, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return DateOnly{}, err
	}
	return DateOnly(t), nil
}

func (d DateOnly) Time() time.Time {
	return time.Time(d)
}

func (d DateOnly) IsZero() bool {
	return time.Time(d).IsZero()
}

// DaysUntil returns the whole number of days from today until d.
// Negative when d is in the past.
func (d DateOnly) DaysUntil(today time.Time) int {
	a := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(d.Time().Year(), d.Time().Month(), d.Time().Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

func (d *DateOnly) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), "\"")
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return err
	}
	*d = DateOnly(t)
	return nil
}

func (d DateOnly) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Format("2006-01-02"))
}

// GormDataType maps the column to a plain DATE.
func (DateOnly) GormDataType() string {
	return "date"
}

// Value implements the driver.Valuer interface for database writes
func (d DateOnly) Value() (driver.Value, error) {
	return time.Time(d).Format("2006-01-02"), nil
}

// Scan implements the sql.Scanner interface for database reads
func (d *DateOnly) Scan(value interface{}) error {
	if value == nil {
		*d = DateOnly(time.Time{})
		return nil
	}
	switch v := value.(type) {
	case time.Time:
		*d = DateOnly(v)
		return nil
	case string:
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return err
		}
		*d = DateOnly(t)
		return nil
	case []byte:
		t, err := time.Parse("2006-01-02", string(v))
		if err != nil {
			return err
		}
		*d = DateOnly(t)
		return nil
	default:
		return fmt.Errorf("cannot scan type %T into DateOnly", value)
	}
}
