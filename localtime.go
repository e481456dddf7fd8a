package toml

import (
	"fmt"
	"time"
)

// LocalDate represents a calendar day in no specific timezone.
type LocalDate struct {
	Year  int
	Month int
	Day   int
}

// AsTime converts d into a specific time instance at midnight in zone.
func (d LocalDate) AsTime(zone *time.Location) time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, zone)
}

// IsValid reports whether d is a day that exists in the calendar.
func (d LocalDate) IsValid() bool {
	if d.Month < 1 || d.Month > 12 {
		return false
	}
	return d.Day >= 1 && d.Day <= daysInMonth(d.Year, d.Month)
}

func daysInMonth(year, month int) int {
	switch month {
	case 4, 6, 9, 11:
		return 30
	case 2:
		if year%4 == 0 && (year%100 != 0 || year%400 == 0) {
			return 29
		}
		return 28
	default:
		return 31
	}
}

// String returns RFC 3339 representation of d.
func (d LocalDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// MarshalText returns RFC 3339 representation of d.
func (d LocalDate) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText parses b using RFC 3339 to fill d.
func (d *LocalDate) UnmarshalText(b []byte) error {
	groups, end, ok := scanPattern(datetimeRe, string(b), 0)
	if !ok || end != len(b) || groups[4] != "" {
		return fmt.Errorf("toml: cannot parse %q as a local date", b)
	}
	date := localDateFromMatch(groups)
	if !date.IsValid() {
		return fmt.Errorf("toml: cannot parse %q as a local date", b)
	}
	*d = date
	return nil
}

// LocalTime represents a time of day of no specific day in no specific
// timezone.
type LocalTime struct {
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
}

// String returns RFC 3339 representation of d.
func (d LocalTime) String() string {
	s := fmt.Sprintf("%02d:%02d:%02d", d.Hour, d.Minute, d.Second)
	if d.Nanosecond == 0 {
		return s
	}
	return s + fmt.Sprintf(".%09d", d.Nanosecond)
}

// MarshalText returns RFC 3339 representation of d.
func (d LocalTime) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText parses b using RFC 3339 to fill d.
func (d *LocalTime) UnmarshalText(b []byte) error {
	groups, end, ok := scanPattern(localTimeRe, string(b), 0)
	if !ok || end != len(b) {
		return fmt.Errorf("toml: cannot parse %q as a local time", b)
	}
	*d = localTimeFromMatch(groups[1:])
	return nil
}

// LocalDateTime represents a time of a specific day in no specific
// timezone.
type LocalDateTime struct {
	LocalDate
	LocalTime
}

// AsTime converts d into a specific time instance in zone.
func (d LocalDateTime) AsTime(zone *time.Location) time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, d.Hour, d.Minute, d.Second, d.Nanosecond, zone)
}

// String returns RFC 3339 representation of d.
func (d LocalDateTime) String() string {
	return d.LocalDate.String() + " " + d.LocalTime.String()
}

// MarshalText returns RFC 3339 representation of d.
func (d LocalDateTime) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText parses b using RFC 3339 to fill d.
func (d *LocalDateTime) UnmarshalText(b []byte) error {
	groups, end, ok := scanPattern(datetimeRe, string(b), 0)
	if !ok || end != len(b) || groups[4] == "" || groups[8] != "" || groups[9] != "" {
		return fmt.Errorf("toml: cannot parse %q as a local date-time", b)
	}
	date := localDateFromMatch(groups)
	if !date.IsValid() {
		return fmt.Errorf("toml: cannot parse %q as a local date-time", b)
	}
	d.LocalDate = date
	d.LocalTime = localTimeFromMatch(groups[4:])
	return nil
}

func localDateFromMatch(groups []string) LocalDate {
	return LocalDate{
		Year:  atoi(groups[1]),
		Month: atoi(groups[2]),
		Day:   atoi(groups[3]),
	}
}

// localTimeFromMatch builds a LocalTime from the four time groups
// (hour, minute, second, optional fraction with its leading dot).
func localTimeFromMatch(groups []string) LocalTime {
	return LocalTime{
		Hour:       atoi(groups[0]),
		Minute:     atoi(groups[1]),
		Second:     atoi(groups[2]),
		Nanosecond: fractionToNanoseconds(groups[3]),
	}
}

// fractionToNanoseconds converts the fractional-second group to
// nanoseconds with microsecond granularity: digits are right-padded with
// zeros to six places, and anything beyond six digits is discarded.
func fractionToNanoseconds(frac string) int {
	if frac == "" {
		return 0
	}
	digits := frac[1:] // strip the dot
	if len(digits) > 6 {
		digits = digits[:6]
	}
	micros := atoi(digits)
	for i := len(digits); i < 6; i++ {
		micros *= 10
	}
	return micros * 1000
}

// atoi converts a digit-only string, as guaranteed by the patterns in
// scanner.go.
func atoi(digits string) int {
	x := 0
	for i := 0; i < len(digits); i++ {
		x = x*10 + int(digits[i]-'0')
	}
	return x
}
