package planner

import (
	"testing"
	"time"

	"github.com/Panthutk/UniPlan/core/classroom"
	"github.com/Panthutk/UniPlan/core/timetable"
)

func annotated(id string, day *timetable.Day, due *time.Time) Annotated {
	a := Annotated{Assignment: classroom.Assignment{ID: id, Due: due}}
	if day != nil {
		a.Link = LinkResult{Linked: true, Day: day, EventTitle: "ev"}
	}
	return a
}

func dayPtr(d timetable.Day) *timetable.Day { return &d }

func TestGroupByDay(t *testing.T) {
	t1 := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	t2 := t1.Add(24 * time.Hour)

	items := []Annotated{
		annotated("fri-1", dayPtr(timetable.Friday), &t1),
		annotated("mon-1", dayPtr(timetable.Monday), &t1),
		annotated("none-1", nil, nil),
		annotated("mon-2", dayPtr(timetable.Monday), &t2),
	}

	buckets := GroupByDay(items)
	if len(buckets) != 3 {
		t.Fatalf("got %d buckets, want 3", len(buckets))
	}

	if buckets[0].Label != "MON" || buckets[1].Label != "FRI" || buckets[2].Label != UnassignedLabel {
		t.Errorf("bucket order = %q, %q, %q", buckets[0].Label, buckets[1].Label, buckets[2].Label)
	}
	if buckets[0].ColorKey != "yellow" {
		t.Errorf("Monday color = %q, want yellow", buckets[0].ColorKey)
	}
	if buckets[2].Day != nil {
		t.Error("unassigned bucket carries a day")
	}

	// incoming order preserved within the Monday bucket
	mon := buckets[0].Items
	if len(mon) != 2 || mon[0].ID != "mon-1" || mon[1].ID != "mon-2" {
		t.Errorf("Monday bucket = %v", []string{mon[0].ID, mon[1].ID})
	}
}

func TestGroupByDayEmpty(t *testing.T) {
	if got := GroupByDay(nil); len(got) != 0 {
		t.Errorf("GroupByDay(nil) = %v, want empty", got)
	}
}
