// Package clock holds the calendar value read from the real-time clock and
// the conversions the layout engine and the time sync need.
package clock

import (
	"fmt"
	"time"
)

// Wildcard marks an alarm field that matches any value.
const Wildcard = -1

// DateTime mirrors the RTC calendar registers.
type DateTime struct {
	Year  int16 // 0..4095
	Month int8  // 1..12, 1 is January
	Day   int8  // 1..31 depending on month
	Dotw  int8  // 0..6, 0 is Sunday
	Hour  int8  // 0..23
	Min   int8  // 0..59
	Sec   int8  // 0..59
}

var (
	dayNames   = [...]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	monthNames = [...]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	lastDay    = [...]int8{0, 31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
)

// Default is the calendar value used when the RTC holds garbage:
// Sunday 2023-01-01 00:00:00.
func Default() DateTime {
	return DateTime{Year: 2023, Month: 1, Day: 1}
}

// FromTime converts t, in its own location, to a DateTime.
func FromTime(t time.Time) DateTime {
	return DateTime{
		Year:  int16(t.Year()),
		Month: int8(t.Month()),
		Day:   int8(t.Day()),
		Dotw:  int8(t.Weekday()),
		Hour:  int8(t.Hour()),
		Min:   int8(t.Minute()),
		Sec:   int8(t.Second()),
	}
}

// Time converts dt to a time in loc. It returns false for an invalid dt.
func (dt DateTime) Time(loc *time.Location) (time.Time, bool) {
	if !dt.Valid() {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(int(dt.Year), time.Month(dt.Month), int(dt.Day), int(dt.Hour), int(dt.Min), int(dt.Sec), 0, loc), true
}

// LastOfMonth returns the last day of month, allowing 29 for February, or
// 0 when month is out of range.
func LastOfMonth(month int8) int8 {
	if month < 1 || int(month) >= len(lastDay) {
		return 0
	}
	return lastDay[month]
}

// Valid reports whether every field lies in its calendar range.
func (dt DateTime) Valid() bool {
	switch {
	case dt.Year < 0:
		return false
	case dt.Month < 1 || dt.Month > 12:
		return false
	case dt.Day < 1 || dt.Day > LastOfMonth(dt.Month):
		return false
	case dt.Dotw < 0 || dt.Dotw > 6:
		return false
	case dt.Hour < 0 || dt.Hour > 23:
		return false
	case dt.Min < 0 || dt.Min > 59:
		return false
	case dt.Sec < 0 || dt.Sec > 59:
		return false
	}
	return true
}

// ClockFace returns the five character clock text "HH:MM".
func (dt DateTime) ClockFace() string {
	if !dt.Valid() {
		return "invalid datetime"
	}
	return fmt.Sprintf("%02d:%02d", dt.Hour, dt.Min)
}

// String formats dt like asctime: "Sun Jan  1 00:00:00 2023".
func (dt DateTime) String() string {
	if !dt.Valid() {
		return "invalid datetime"
	}
	return fmt.Sprintf("%s %s %2d %02d:%02d:%02d %d",
		dayNames[dt.Dotw], monthNames[dt.Month-1], dt.Day, dt.Hour, dt.Min, dt.Sec, dt.Year)
}

// MinuteAlarm fires at second zero of every minute.
func MinuteAlarm() DateTime {
	return DateTime{Year: Wildcard, Month: Wildcard, Day: Wildcard, Dotw: Wildcard, Hour: Wildcard, Min: Wildcard, Sec: 0}
}

// HourAlarm fires during minute 56 of every hour.
func HourAlarm() DateTime {
	return DateTime{Year: Wildcard, Month: Wildcard, Day: Wildcard, Dotw: Wildcard, Hour: Wildcard, Min: 56, Sec: Wildcard}
}

// DayAlarm fires during 02:02 every day.
func DayAlarm() DateTime {
	return DateTime{Year: Wildcard, Month: Wildcard, Day: Wildcard, Dotw: Wildcard, Hour: 2, Min: 2, Sec: Wildcard}
}

// Matches reports whether dt satisfies alarm. Wildcard fields match anything.
func (dt DateTime) Matches(alarm DateTime) bool {
	field := func(a, v int) bool { return a == Wildcard || a == v }
	return field(int(alarm.Year), int(dt.Year)) &&
		field(int(alarm.Month), int(dt.Month)) &&
		field(int(alarm.Day), int(dt.Day)) &&
		field(int(alarm.Dotw), int(dt.Dotw)) &&
		field(int(alarm.Hour), int(dt.Hour)) &&
		field(int(alarm.Min), int(dt.Min)) &&
		field(int(alarm.Sec), int(dt.Sec))
}
