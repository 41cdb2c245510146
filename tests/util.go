package testutil

import (
	"context"
	"testing"

	"github.com/Panthutk/UniPlan/core"
	"github.com/Panthutk/UniPlan/core/classroom"
)

// NewConfig returns a config suitable for tests: no env files, no upstream
// collaborators, fixed secret.
func NewConfig(t *testing.T) *core.Config {
	t.Helper()
	conf := core.NewConfig()
	conf.Debug = false
	conf.TestMode = true
	conf.SecretKey = "test-secret"
	return conf
}

// StubClassroomSource is an in-memory classroom.Source for tests. Failing
// course IDs return ErrSubmissions.
type StubClassroomSource struct {
	CourseList  []classroom.Course
	Submissions map[string][]classroom.Submission
	FailingIDs  map[string]bool

	ErrCourses     error
	ErrSubmissions error
}

var _ classroom.Source = (*StubClassroomSource)(nil)

func (s *StubClassroomSource) Courses(ctx context.Context, sess *core.Session) ([]classroom.Course, error) {
	if s.ErrCourses != nil {
		return nil, s.ErrCourses
	}
	return s.CourseList, nil
}

func (s *StubClassroomSource) ActiveSubmissions(ctx context.Context, sess *core.Session, courseID string) ([]classroom.Submission, error) {
	if s.FailingIDs[courseID] {
		return nil, s.ErrSubmissions
	}
	return s.Submissions[courseID], nil
}

// NewCourse builds an active course.
func NewCourse(id, name string) classroom.Course {
	return classroom.Course{ID: id, Name: name, CourseState: "ACTIVE"}
}

// NewSubmission builds a submission due on the given date at 09:00.
func NewSubmission(id, title string, year, month, day int) classroom.Submission {
	h, m := 9, 0
	return classroom.Submission{
		ID:    id,
		Title: title,
		State: "CREATED",
		DueDate: &classroom.DueDate{
			Year:  year,
			Month: month,
			Day:   day,
		},
		DueTime: &classroom.DueTime{Hours: &h, Minutes: &m},
	}
}
