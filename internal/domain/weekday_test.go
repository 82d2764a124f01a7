package domain

import (
	"testing"
	"time"
)

func TestParseWeekday(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Weekday
		wantErr bool
	}{
		{"monday", "0", Monday, false},
		{"sunday", "6", Sunday, false},
		{"midweek", "3", Thursday, false},
		{"out of range high", "7", 0, true},
		{"negative", "-1", 0, true},
		{"not a number", "mon", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWeekday(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseWeekday(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseWeekday(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestWeekdayOf(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want Weekday
	}{
		{"monday", time.Date(2023, 1, 23, 12, 0, 0, 0, time.UTC), Monday},
		{"wednesday", time.Date(2023, 1, 25, 12, 0, 0, 0, time.UTC), Wednesday},
		{"sunday", time.Date(2023, 1, 29, 12, 0, 0, 0, time.UTC), Sunday},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WeekdayOf(tt.date); got != tt.want {
				t.Errorf("WeekdayOf(%v) = %v, want %v", tt.date, got, tt.want)
			}
		})
	}
}

func TestWeekday_Prev(t *testing.T) {
	tests := []struct {
		day  Weekday
		want Weekday
	}{
		{Tuesday, Monday},
		{Sunday, Saturday},
		{Monday, Sunday}, // wraps
	}

	for _, tt := range tests {
		if got := tt.day.Prev(); got != tt.want {
			t.Errorf("%v.Prev() = %v, want %v", tt.day, got, tt.want)
		}
	}
}
