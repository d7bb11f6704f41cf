package domain

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

const (
	dateLayout      = "2006-01-02"
	timeLayout      = "15:04:05"
	timeShortLayout = "15:04"
)

// Date 仅日期（无时区语义），JSON 形如 "2025-03-01"
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

func Today() Date { return DateOf(time.Now()) }

func ParseDate(s string) (Date, error) {
	t, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return Date{t}, nil
}

func (d Date) String() string { return d.Format(dateLayout) }

// DaysUntil 到 other 的整天数（other 在前则为负）
func (d Date) DaysUntil(other Date) int {
	return int(other.Time.Sub(d.Time).Hours() / 24)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.Format(dateLayout), nil
}

func (d *Date) Scan(v any) error {
	switch x := v.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = DateOf(x)
		return nil
	case string:
		return d.scanString(x)
	case []byte:
		return d.scanString(string(x))
	default:
		return fmt.Errorf("scan date: unsupported type %T", v)
	}
}

func (d *Date) scanString(s string) error {
	// 部分驱动会带上时间部分
	if len(s) > len(dateLayout) {
		s = s[:len(dateLayout)]
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// TimeOfDay 仅时刻，JSON 形如 "08:30:00"（也接受 "08:30"）
type TimeOfDay struct {
	time.Time
}

func NewTimeOfDay(hour, minute, second int) TimeOfDay {
	return TimeOfDay{time.Date(0, time.January, 1, hour, minute, second, 0, time.UTC)}
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	for _, layout := range []string{timeLayout, timeShortLayout} {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return TimeOfDay{t}, nil
		}
	}
	return TimeOfDay{}, fmt.Errorf("parse time %q: want HH:MM[:SS]", s)
}

func (t TimeOfDay) String() string { return t.Format(timeLayout) }

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + t.Format(timeLayout) + `"`), nil
}

func (t *TimeOfDay) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*t = TimeOfDay{}
		return nil
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t TimeOfDay) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return t.Format(timeLayout), nil
}

func (t *TimeOfDay) Scan(v any) error {
	switch x := v.(type) {
	case nil:
		*t = TimeOfDay{}
		return nil
	case time.Time:
		*t = NewTimeOfDay(x.Hour(), x.Minute(), x.Second())
		return nil
	case string:
		parsed, err := ParseTimeOfDay(x)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case []byte:
		return t.Scan(string(x))
	default:
		return fmt.Errorf("scan time: unsupported type %T", v)
	}
}
