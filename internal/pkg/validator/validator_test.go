package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidLogDate(t *testing.T) {
	valid := []string{"2024/05/01", "2000/12/31", "2024/02/29"}
	invalid := []string{
		"2024/02/30", // impossible date
		"2023/02/29", // not a leap year
		"2024/5/1",   // unpadded
		"2024-05-01", // wrong separator
		"05/01/2024", // wrong order
		"",
	}
	for _, date := range valid {
		if _, ok := IsValidLogDate(date); !ok {
			t.Errorf("IsValidLogDate(%q) = false, want true", date)
		}
	}
	for _, date := range invalid {
		if _, ok := IsValidLogDate(date); ok {
			t.Errorf("IsValidLogDate(%q) = true, want false", date)
		}
	}
}

func TestIsValidClock(t *testing.T) {
	valid := []string{"0:00", "8:30", "08:30", "12:00", "23:59"}
	invalid := []string{"24:00", "30:00", "08:60", "8:5", "0800", "", "ab:cd"}
	for _, clock := range valid {
		if !IsValidClock(clock) {
			t.Errorf("IsValidClock(%q) = false, want true", clock)
		}
	}
	for _, clock := range invalid {
		if IsValidClock(clock) {
			t.Errorf("IsValidClock(%q) = true, want false", clock)
		}
	}
}

func TestIsValidMeridiem(t *testing.T) {
	valid := []string{"AM", "PM"}
	invalid := []string{"am", "pm", "A.M.", "", "NOON"}
	for _, m := range valid {
		if !IsValidMeridiem(m) {
			t.Errorf("IsValidMeridiem(%q) = false, want true", m)
		}
	}
	for _, m := range invalid {
		if IsValidMeridiem(m) {
			t.Errorf("IsValidMeridiem(%q) = true, want false", m)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"date", "hours"}
	if !IsInSlice("date", slice) {
		t.Error("IsInSlice(date) = false, want true")
	}
	if IsInSlice("clock", slice) {
		t.Error("IsInSlice(clock) = true, want false")
	}
}
