package models

import (
	"testing"
)

func TestParseClockTime(t *testing.T) {
	cases := []struct {
		in   string
		want ClockTime
	}{
		{"06:30 AM", ClockTime{6, 30}},
		{"06:30 PM", ClockTime{18, 30}},
		{"12:00 PM", ClockTime{12, 0}},
		{"12:15 AM", ClockTime{0, 15}},
		{"6:30AM", ClockTime{6, 30}},
		{"18:45", ClockTime{18, 45}},
		{"00:05", ClockTime{0, 5}},
		{" 08:15 PM ", ClockTime{20, 15}},
	}
	for _, tc := range cases {
		got, err := ParseClockTime(tc.in)
		if err != nil {
			t.Errorf("ParseClockTime(%q) returned error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseClockTime(%q) = %v; want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseClockTime_invalid(t *testing.T) {
	for _, in := range []string{"", "invalid", "25:00", "12:60", "No sunrise"} {
		if got, err := ParseClockTime(in); err == nil {
			t.Errorf("ParseClockTime(%q) = %v; want error", in, got)
		}
	}
}

func TestClockTimeMinutes(t *testing.T) {
	ct := ClockTime{Hour: 6, Minute: 30}
	if got := ct.Minutes(); got != 390 {
		t.Errorf("Minutes() = %d; want 390", got)
	}
}

func TestClockTimeString(t *testing.T) {
	cases := []struct {
		in   ClockTime
		want string
	}{
		{ClockTime{6, 5}, "06:05"},
		{ClockTime{18, 30}, "18:30"},
		{ClockTime{0, 0}, "00:00"},
	}
	for _, tc := range cases {
		if got := tc.in.String(); got != tc.want {
			t.Errorf("%v.String() = %q; want %q", tc.in, got, tc.want)
		}
	}
}
