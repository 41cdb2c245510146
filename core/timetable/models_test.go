package timetable

import "testing"

func TestDayStorageRoundTrip(t *testing.T) {
	for d := Monday; d <= Sunday; d++ {
		if got := DayFromStorage(d.Storage()); got != d {
			t.Errorf("DayFromStorage(Storage(%v)) = %v", d, got)
		}
	}
}

func TestDayStorage(t *testing.T) {
	tests := []struct {
		day  Day
		want int
	}{
		{Monday, 1},
		{Tuesday, 2},
		{Saturday, 6},
		{Sunday, 0},
	}
	for _, tt := range tests {
		t.Run(tt.day.String(), func(t *testing.T) {
			if got := tt.day.Storage(); got != tt.want {
				t.Errorf("%v.Storage() = %d, want %d", tt.day, got, tt.want)
			}
		})
	}
}

func TestDayColorKey(t *testing.T) {
	if got := Monday.ColorKey(); got != "yellow" {
		t.Errorf("Monday.ColorKey() = %q", got)
	}
	if got := Sunday.ColorKey(); got != "red" {
		t.Errorf("Sunday.ColorKey() = %q", got)
	}
	if got := Day(9).ColorKey(); got != "slate" {
		t.Errorf("out-of-range ColorKey() = %q, want slate", got)
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "simple", in: "Data Structures", want: "data-structures"},
		{name: "punctuation runs", in: "Data Structures!!", want: "data-structures"},
		{name: "boundary punctuation", in: "!!Calculus II!!", want: "calculus-ii"},
		{name: "unicode stripped", in: "Física 101", want: "f-sica-101"},
		{name: "empty", in: "", want: ""},
		{name: "symbols only", in: "!!!", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.in); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestUniqueCode(t *testing.T) {
	taken := map[string]bool{"data-structures": true, "data-structures-2": true}
	isTaken := func(code string) bool { return taken[code] }

	if got := UniqueCode("Algorithms", isTaken); got != "algorithms" {
		t.Errorf("UniqueCode() = %q, want algorithms", got)
	}
	if got := UniqueCode("Data Structures!!", isTaken); got != "data-structures-3" {
		t.Errorf("UniqueCode() = %q, want data-structures-3", got)
	}
	if got := UniqueCode("!!!", isTaken); got != "subject" {
		t.Errorf("UniqueCode() on empty slug = %q, want subject", got)
	}
}

func TestEventKey(t *testing.T) {
	persisted := Event{ID: 42, LocalID: "abc"}
	if got := persisted.Key(); got != "42" {
		t.Errorf("persisted Key() = %q", got)
	}
	pending := Event{LocalID: "abc"}
	if got := pending.Key(); got != "abc" {
		t.Errorf("pending Key() = %q", got)
	}
	if persisted.Persisted() != true || pending.Persisted() != false {
		t.Error("Persisted() misreports")
	}
}
