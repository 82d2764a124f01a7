package domain

import "testing"

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeOfDay
		wantErr bool
	}{
		{"midnight", "00:00:00", NewTimeOfDay(0, 0, 0), false},
		{"end of day", "23:59:59", NewTimeOfDay(23, 59, 59), false},
		{"morning", "09:30:15", NewTimeOfDay(9, 30, 15), false},
		{"missing seconds", "09:30", 0, true},
		{"garbage", "not a time", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTimeOfDay(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseTimeOfDay(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTimeOfDay_String(t *testing.T) {
	if got := NewTimeOfDay(9, 5, 3).String(); got != "09:05:03" {
		t.Errorf("String() = %q, want %q", got, "09:05:03")
	}
}

func TestInterval_Contains(t *testing.T) {
	iv := Interval{Start: NewTimeOfDay(9, 0, 0), End: NewTimeOfDay(17, 0, 0)}

	tests := []struct {
		name string
		time TimeOfDay
		want bool
	}{
		{"inside", NewTimeOfDay(12, 0, 0), true},
		{"exactly at start", NewTimeOfDay(9, 0, 0), true},
		{"exactly at end", NewTimeOfDay(17, 0, 0), true},
		{"one second before start", NewTimeOfDay(8, 59, 59), false},
		{"one second after end", NewTimeOfDay(17, 0, 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := iv.Contains(tt.time); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.time, got, tt.want)
			}
		})
	}
}

func TestNewWeekSchedule_FillsDefaults(t *testing.T) {
	ws := NewWeekSchedule(nil)

	for day := range ws {
		if len(ws[day]) != 1 {
			t.Fatalf("day %d: expected 1 default interval, got %d", day, len(ws[day]))
		}
		if ws[day][0] != FullDay() {
			t.Errorf("day %d: expected full-day interval, got %+v", day, ws[day][0])
		}
	}
}

func TestNewWeekSchedule_PreservesConfiguredOrder(t *testing.T) {
	records := []HoursRecord{
		{Day: Monday, Start: NewTimeOfDay(14, 0, 0), End: NewTimeOfDay(18, 0, 0)},
		{Day: Monday, Start: NewTimeOfDay(8, 0, 0), End: NewTimeOfDay(12, 0, 0)},
	}

	ws := NewWeekSchedule(records)

	if len(ws[Monday]) != 2 {
		t.Fatalf("expected 2 intervals for Monday, got %d", len(ws[Monday]))
	}
	if ws[Monday][0].Start != NewTimeOfDay(14, 0, 0) {
		t.Errorf("expected configured order preserved, got first interval %+v", ws[Monday][0])
	}

	// Other days still defaulted
	if len(ws[Tuesday]) != 1 || ws[Tuesday][0] != FullDay() {
		t.Errorf("expected Tuesday defaulted to full day, got %+v", ws[Tuesday])
	}
}
