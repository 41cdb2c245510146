package timetable

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Day is a weekday in the UI convention: Monday=0 .. Sunday=6.
// The persistence backend numbers Sunday=0 .. Saturday=6; Storage and
// DayFromStorage convert between the two and are exact inverses.
type Day int

const (
	Monday Day = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var dayNames = [...]string{"MON", "TUE", "WED", "THU", "FRI", "SAT", "SUN"}

// colorKeys is the per-weekday palette the dashboard renders events with.
var colorKeys = [...]string{"yellow", "pink", "green", "orange", "blue", "purple", "red"}

func (d Day) Valid() bool {
	return d >= Monday && d <= Sunday
}

func (d Day) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Day(%d)", int(d))
	}
	return dayNames[d]
}

// Storage converts to the backend's Sunday=0 convention.
func (d Day) Storage() int {
	return (int(d) + 1) % 7
}

// DayFromStorage converts a backend day-of-week back to the UI convention.
func DayFromStorage(dow int) Day {
	return Day((dow + 6) % 7)
}

func (d Day) ColorKey() string {
	if !d.Valid() {
		return "slate"
	}
	return colorKeys[d]
}

// Subject is a backend-owned entity events reference. Subjects are resolved
// by case-insensitive name; codes are unique generated slugs.
type Subject struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// Event is one user-defined weekly recurring time block. Start/End are
// whole hours, End exclusive, End > Start always.
type Event struct {
	ID          int       `json:"id"` // server-assigned; 0 until persisted
	LocalID     string    `json:"local_id"`
	SubjectID   int       `json:"subject_id"`
	Title       string    `json:"title"`
	Day         Day       `json:"day"`
	Start       int       `json:"start"`
	End         int       `json:"end"`
	Description string    `json:"description"`
	UpdatedAt   time.Time `json:"updated_at"` // UTC
}

func (e Event) Persisted() bool {
	return e.ID != 0
}

// Key is the stable client-side identifier: the server ID once persisted,
// the local ID before that.
func (e Event) Key() string {
	if e.Persisted() {
		return strconv.Itoa(e.ID)
	}
	return e.LocalID
}

func (e Event) ColorKey() string {
	return e.Day.ColorKey()
}

const maxCodeLen = 48

var nonAlnumRuns = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases `name`, replaces runs of non-alphanumerics with a
// single hyphen, trims boundary hyphens and bounds the length.
func Slugify(name string) string {
	slug := nonAlnumRuns.ReplaceAllString(strings.ToLower(name), "-")
	slug = strings.Trim(slug, "-")
	if len(slug) > maxCodeLen {
		slug = strings.Trim(slug[:maxCodeLen], "-")
	}
	return slug
}

// UniqueCode slugifies `name` and appends a numeric suffix until `taken`
// reports no collision. Codes are already lowercase so the case-insensitive
// comparison is the callback's concern only for pre-existing data.
func UniqueCode(name string, taken func(code string) bool) string {
	base := Slugify(name)
	if base == "" {
		base = "subject"
	}
	if !taken(base) {
		return base
	}
	for i := 2; ; i++ {
		candidate := fmt.Sprintf("%s-%d", base, i)
		if !taken(candidate) {
			return candidate
		}
	}
}
