package planner

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/Panthutk/UniPlan/core"
	"github.com/Panthutk/UniPlan/core/classroom"
	"github.com/Panthutk/UniPlan/core/timetable"
)

// LinkResult is the heuristic association between an assignment and a
// timetable event, used purely for grouping and color coding.
type LinkResult struct {
	Linked     bool           `json:"linked"`
	Day        *timetable.Day `json:"day"`
	EventTitle string         `json:"event_title"`
}

// Annotated is an assignment plus its link; assignments themselves stay
// immutable per aggregation pass.
type Annotated struct {
	classroom.Assignment
	Link LinkResult `json:"link"`
}

// Matcher decides whether an assignment belongs to a timetable event.
// The default is substring containment; a stricter implementation can be
// substituted without touching callers.
type Matcher interface {
	Match(a classroom.Assignment, ev timetable.Event) bool
}

// ContainsMatcher links when the normalized event title has a containment
// relationship (in either direction) with the assignment's normalized
// course name or title. Known limitation: short event titles can produce
// false positives ("lab" matches "Physics Lab" and "Chem Lab").
type ContainsMatcher struct{}

var _ Matcher = ContainsMatcher{}

func (ContainsMatcher) Match(a classroom.Assignment, ev timetable.Event) bool {
	evTitle := core.NormalizeText(ev.Title)
	if evTitle == "" {
		return false
	}
	for _, needle := range []string{core.NormalizeText(a.CourseName), core.NormalizeText(a.Title)} {
		if needle == "" {
			continue
		}
		if strings.Contains(evTitle, needle) || strings.Contains(needle, evTitle) {
			return true
		}
	}
	return false
}

// RatioMatcher links on sequence similarity instead of containment; the
// stricter alternative to ContainsMatcher. Threshold is in [0, 1];
// DefaultRatioThreshold suits typical course names.
type RatioMatcher struct {
	Threshold float64
}

const DefaultRatioThreshold = 0.7

var _ Matcher = RatioMatcher{}

func (m RatioMatcher) Match(a classroom.Assignment, ev timetable.Event) bool {
	threshold := m.Threshold
	if threshold == 0 {
		threshold = DefaultRatioThreshold
	}
	evTitle := core.NormalizeText(ev.Title)
	if evTitle == "" {
		return false
	}
	for _, needle := range []string{core.NormalizeText(a.CourseName), core.NormalizeText(a.Title)} {
		if needle == "" {
			continue
		}
		ratio := difflib.NewMatcher(strings.Split(needle, ""), strings.Split(evTitle, "")).QuickRatio()
		if ratio >= threshold {
			return true
		}
	}
	return false
}

// Linker matches each assignment to at most one timetable event.
type Linker struct {
	matcher Matcher
}

// NewLinker returns a Linker using `m`, or ContainsMatcher when nil.
func NewLinker(m Matcher) *Linker {
	if m == nil {
		m = ContainsMatcher{}
	}
	return &Linker{matcher: m}
}

// LinkOne scans events in their current iteration order and links to the
// first match. The tie-break is deliberately arbitrary: callers control
// precedence through the order of the event slice.
func (l *Linker) LinkOne(a classroom.Assignment, events []timetable.Event) LinkResult {
	for _, ev := range events {
		if l.matcher.Match(a, ev) {
			day := ev.Day
			return LinkResult{Linked: true, Day: &day, EventTitle: ev.Title}
		}
	}
	return LinkResult{}
}

// Annotate links every assignment against the current event set. Pure:
// re-run on any change to either input.
func (l *Linker) Annotate(items []classroom.Assignment, events []timetable.Event) []Annotated {
	out := make([]Annotated, len(items))
	for i, a := range items {
		out[i] = Annotated{Assignment: a, Link: l.LinkOne(a, events)}
	}
	return out
}
