package classroom

import (
	"fmt"
	"sort"
	"time"
)

const unknownCourseName = "Unknown Course"

// BuildAssignments flattens per-course submission collections into one
// ranked list. Course names resolve through `courses` (falling back to
// "Unknown Course"); ranking puts dated assignments first, ascending by due
// date, with all undated assignments after them in encounter order.
func BuildAssignments(courses []Course, subsByCourse map[string][]Submission, now time.Time) []Assignment {
	names := make(map[string]string, len(courses))
	for _, c := range courses {
		names[c.Key()] = c.Name
	}

	items := make([]Assignment, 0, len(subsByCourse))
	for _, cid := range orderedCourseIDs(courses, subsByCourse) {
		for _, sub := range subsByCourse[cid] {
			items = append(items, newAssignment(cid, names[cid], sub, now))
		}
	}
	rankAssignments(items)
	return items
}

// rankAssignments sorts in place: soonest first, any undated entries at the
// bottom in encounter order.
func rankAssignments(items []Assignment) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		switch {
		case a.Due != nil && b.Due != nil:
			return a.Due.Before(*b.Due)
		case a.Due != nil:
			return true
		default:
			return false
		}
	})
}

func newAssignment(courseID, courseName string, sub Submission, now time.Time) Assignment {
	if courseName == "" {
		courseName = unknownCourseName
	}

	title := sub.Title
	if title == "" {
		title = sub.CourseWorkType
	}
	if title == "" {
		if sub.AssignmentSubmission != nil {
			title = "Assignment"
		} else {
			title = "CourseWork"
		}
	}

	state := sub.State
	if state == "" {
		state = "NEW"
	}

	a := Assignment{
		ID:         fmt.Sprintf("%s:%s", courseID, sub.ID),
		CourseID:   courseID,
		CourseName: courseName,
		Title:      title,
		State:      state,
		Link:       sub.AlternateLink,
	}
	due := ResolveDueDate(sub, now)
	left := DaysLeft(due, now)
	a.Due = &due
	a.DaysLeft = &left
	return a
}

// orderedCourseIDs yields a deterministic encounter order: course-list order
// first, then any submission keys with no matching course, sorted.
func orderedCourseIDs(courses []Course, subsByCourse map[string][]Submission) []string {
	ids := make([]string, 0, len(subsByCourse))
	seen := make(map[string]bool, len(subsByCourse))
	for _, c := range courses {
		if _, ok := subsByCourse[c.Key()]; ok && !seen[c.Key()] {
			ids = append(ids, c.Key())
			seen[c.Key()] = true
		}
	}
	orphans := make([]string, 0)
	for cid := range subsByCourse {
		if !seen[cid] {
			orphans = append(orphans, cid)
		}
	}
	sort.Strings(orphans)
	return append(ids, orphans...)
}
