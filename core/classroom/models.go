package classroom

import (
	"encoding/json"
	"time"
)

// Course is one classroom course as returned by the coursework proxy.
// The upstream payload is loose: the identifier may come as `id` or
// `courseId` and the state as `courseState` or `state`.
type Course struct {
	ID          string `json:"id"`
	CourseID    string `json:"courseId"`
	Name        string `json:"name"`
	Section     string `json:"section"`
	CourseState string `json:"courseState"`
	State       string `json:"state"`
}

// Key returns the canonical course identifier.
func (c Course) Key() string {
	if c.ID != "" {
		return c.ID
	}
	return c.CourseID
}

// Active reports whether the course should appear on the dashboard.
// A missing state counts as active.
func (c Course) Active() bool {
	state := c.CourseState
	if state == "" {
		state = c.State
	}
	return state == "" || state == "ACTIVE"
}

type (
	// DueDate is a structured calendar date from the coursework source.
	DueDate struct {
		Year  int `json:"year"`
		Month int `json:"month"`
		Day   int `json:"day"`
	}

	// DueTime is an optional time-of-day; both fields may be absent
	// independently, hence the pointers.
	DueTime struct {
		Hours   *int `json:"hours"`
		Minutes *int `json:"minutes"`
	}

	// AssignmentDetail mirrors the `assignmentSubmission` block some
	// submission shapes nest their due-date information under.
	AssignmentDetail struct {
		DueDate *DueDate `json:"dueDate"`
		DueTime *DueTime `json:"dueTime"`
	}

	// Submission is one coursework submission record. Due-date fields may
	// live at the top level or under AssignmentSubmission; resolution order
	// is the normalizer's concern (see ResolveDueDate).
	Submission struct {
		ID                   string            `json:"id"`
		CourseWorkID         string            `json:"courseWorkId"`
		CourseWorkType       string            `json:"courseWorkType"`
		Title                string            `json:"title"`
		State                string            `json:"state"`
		Late                 bool              `json:"late"`
		CreationTime         string            `json:"creationTime"`
		UpdateTime           string            `json:"updateTime"`
		AlternateLink        string            `json:"alternateLink"`
		DueDate              *DueDate          `json:"dueDate"`
		DueTime              *DueTime          `json:"dueTime"`
		AssignmentSubmission *AssignmentDetail `json:"assignmentSubmission"`
	}
)

// Complete reports whether all three date components are set. A partial
// triple counts as "no due date given", not as an error; out-of-range
// components are normalized downstream (month 13 rolls into January).
func (d *DueDate) Complete() bool {
	return d != nil && d.Year != 0 && d.Month != 0 && d.Day != 0
}

// Assignment is one piece of coursework with resolved course context and
// deadline. Assignments are derived, never persisted: each aggregation pass
// rebuilds them from scratch.
type Assignment struct {
	ID         string     `json:"id"` // courseID:submissionID
	CourseID   string     `json:"course_id"`
	CourseName string     `json:"course_name"`
	Title      string     `json:"title"`
	State      string     `json:"state"`
	Link       string     `json:"link"` // external alternateLink
	Due        *time.Time `json:"due"`
	DaysLeft   *int       `json:"days_left"` // negative when overdue
}

type (
	// CourseList accepts both a bare JSON array and the wrapped
	// `{"courses": [...]}` object the proxy sometimes returns.
	CourseList []Course

	// SubmissionList does the same for `{"studentSubmissions": [...]}`.
	SubmissionList []Submission
)

func (l *CourseList) UnmarshalJSON(data []byte) error {
	var plain []Course
	if err := json.Unmarshal(data, &plain); err == nil {
		*l = plain
		return nil
	}
	var wrapped struct {
		Courses []Course `json:"courses"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return err
	}
	*l = wrapped.Courses
	return nil
}

func (l *SubmissionList) UnmarshalJSON(data []byte) error {
	var plain []Submission
	if err := json.Unmarshal(data, &plain); err == nil {
		*l = plain
		return nil
	}
	var wrapped struct {
		Submissions []Submission `json:"studentSubmissions"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return err
	}
	*l = wrapped.Submissions
	return nil
}
