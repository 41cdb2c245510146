package planner

import "github.com/Panthutk/UniPlan/core/timetable"

// UnassignedLabel names the bucket for assignments with no linked event.
const UnassignedLabel = "Unassigned"

// Bucket is one display group of the dashboard board: a weekday (with its
// color key) or the unassigned tail.
type Bucket struct {
	Day      *timetable.Day `json:"day"`
	Label    string         `json:"label"`
	ColorKey string         `json:"color_key"`
	Items    []Annotated    `json:"items"`
}

// GroupByDay buckets annotated assignments by linked weekday, Monday..Sunday
// then Unassigned, omitting empty buckets. The incoming (aggregator) order
// is preserved inside each bucket.
func GroupByDay(items []Annotated) []Bucket {
	byDay := make(map[timetable.Day][]Annotated)
	var unassigned []Annotated
	for _, it := range items {
		if it.Link.Linked && it.Link.Day != nil {
			byDay[*it.Link.Day] = append(byDay[*it.Link.Day], it)
		} else {
			unassigned = append(unassigned, it)
		}
	}

	buckets := make([]Bucket, 0, len(byDay)+1)
	for d := timetable.Monday; d <= timetable.Sunday; d++ {
		if group, ok := byDay[d]; ok {
			day := d
			buckets = append(buckets, Bucket{
				Day:      &day,
				Label:    day.String(),
				ColorKey: day.ColorKey(),
				Items:    group,
			})
		}
	}
	if len(unassigned) > 0 {
		buckets = append(buckets, Bucket{
			Label:    UnassignedLabel,
			ColorKey: "slate",
			Items:    unassigned,
		})
	}
	return buckets
}
