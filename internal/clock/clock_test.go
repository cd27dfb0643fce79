package clock

import (
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	d := Default()
	if !d.Valid() {
		t.Fatalf("Default() is not valid: %+v", d)
	}
	if got, want := d.String(), "Sun Jan  1 00:00:00 2023"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestFromTimeRoundTrip(t *testing.T) {
	loc := time.FixedZone("test", 3600)
	in := time.Date(2024, time.February, 29, 23, 57, 8, 0, loc)
	dt := FromTime(in)
	want := DateTime{Year: 2024, Month: 2, Day: 29, Dotw: 4, Hour: 23, Min: 57, Sec: 8}
	if dt != want {
		t.Fatalf("FromTime() = %+v, want %+v", dt, want)
	}
	out, ok := dt.Time(loc)
	if !ok || !out.Equal(in) {
		t.Fatalf("Time() = %v, %v, want %v", out, ok, in)
	}
}

func TestValid(t *testing.T) {
	base := DateTime{Year: 2023, Month: 4, Day: 30, Dotw: 0, Hour: 12, Min: 30, Sec: 0}
	if !base.Valid() {
		t.Fatalf("base not valid")
	}
	tests := []struct {
		name string
		mod  func(*DateTime)
	}{
		{"year", func(d *DateTime) { d.Year = -1 }},
		{"month 0", func(d *DateTime) { d.Month = 0 }},
		{"month 13", func(d *DateTime) { d.Month = 13 }},
		{"day 31 april", func(d *DateTime) { d.Day = 31 }},
		{"day 0", func(d *DateTime) { d.Day = 0 }},
		{"dotw", func(d *DateTime) { d.Dotw = 7 }},
		{"hour", func(d *DateTime) { d.Hour = 24 }},
		{"min", func(d *DateTime) { d.Min = 60 }},
		{"sec", func(d *DateTime) { d.Sec = -1 }},
	}
	for _, tt := range tests {
		d := base
		tt.mod(&d)
		if d.Valid() {
			t.Fatalf("%s: Valid() = true for %+v", tt.name, d)
		}
		if _, ok := d.Time(time.UTC); ok {
			t.Fatalf("%s: Time() ok for invalid value", tt.name)
		}
		if d.ClockFace() != "invalid datetime" {
			t.Fatalf("%s: ClockFace() = %q", tt.name, d.ClockFace())
		}
	}
}

func TestLastOfMonth(t *testing.T) {
	tests := []struct {
		month int8
		want  int8
	}{
		{0, 0}, {1, 31}, {2, 29}, {4, 30}, {12, 31}, {13, 0}, {-1, 0},
	}
	for _, tt := range tests {
		if got := LastOfMonth(tt.month); got != tt.want {
			t.Fatalf("LastOfMonth(%d) = %d, want %d", tt.month, got, tt.want)
		}
	}
}

func TestClockFace(t *testing.T) {
	dt := Default()
	dt.Hour, dt.Min = 7, 5
	if got := dt.ClockFace(); got != "07:05" {
		t.Fatalf("ClockFace() = %q, want 07:05", got)
	}
	dt.Hour, dt.Min = 23, 59
	if got := dt.ClockFace(); got != "23:59" {
		t.Fatalf("ClockFace() = %q, want 23:59", got)
	}
}

func TestAlarms(t *testing.T) {
	dt := DateTime{Year: 2023, Month: 6, Day: 10, Dotw: 6, Hour: 2, Min: 2, Sec: 0}
	if !dt.Matches(MinuteAlarm()) || !dt.Matches(DayAlarm()) {
		t.Fatalf("%v should match minute and day alarms", dt)
	}
	if dt.Matches(HourAlarm()) {
		t.Fatalf("%v should not match hour alarm", dt)
	}
	dt.Min, dt.Sec = 56, 30
	if !dt.Matches(HourAlarm()) || dt.Matches(MinuteAlarm()) || dt.Matches(DayAlarm()) {
		t.Fatalf("%v alarm matches wrong", dt)
	}
}

func TestEpoch(t *testing.T) {
	e := NewEpoch(DateTime{Month: 13}, time.UTC)
	if e.Start() != Default() {
		t.Fatalf("Start() = %v, want default", e.Start())
	}
	later := Default()
	later.Hour, later.Min, later.Sec = 1, 2, 3
	d, ok := e.Elapsed(later)
	if !ok || d != time.Hour+2*time.Minute+3*time.Second {
		t.Fatalf("Elapsed() = %v, %v", d, ok)
	}
	if _, ok := e.Elapsed(DateTime{}); ok {
		t.Fatalf("Elapsed(invalid) ok")
	}
}
