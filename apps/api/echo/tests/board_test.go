package tests

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Panthutk/UniPlan/core"
	"github.com/Panthutk/UniPlan/core/classroom"
	"github.com/Panthutk/UniPlan/core/planner"
	"github.com/Panthutk/UniPlan/core/timetable"
	testutil "github.com/Panthutk/UniPlan/tests"
)

type boardBody struct {
	Courses []classroom.Course `json:"courses"`
	Buckets []planner.Bucket   `json:"buckets"`
}

func TestBoardRequiresAuth(t *testing.T) {
	env := setup(t)

	req, rec := newRequest(http.MethodGet, "/v1/board")
	env.server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	var body httpErr
	decodeBody(t, rec, &body)
	assert.Equal(t, errMissingToken, body)
}

func TestBoardLinksAssignmentsToTimetable(t *testing.T) {
	env := setup(t)
	token := getToken(t, env.conf)

	due := time.Now().AddDate(0, 0, 5)
	env.source.CourseList = []classroom.Course{
		testutil.NewCourse("c1", "Calculus II"),
		testutil.NewCourse("c2", "History of Art"),
	}
	env.source.Submissions = map[string][]classroom.Submission{
		"c1": {testutil.NewSubmission("s1", "Problem Set 1", due.Year(), int(due.Month()), due.Day())},
		"c2": {testutil.NewSubmission("s2", "Essay Draft", due.Year(), int(due.Month()), due.Day())},
	}

	// only Calculus has a timetable event to link against
	input := timetable.EventInput{Title: "Calculus", Day: 0, Start: 9, End: 11}
	req, rec := newAuthRequest(http.MethodPost, "/v1/timetable", token, marchallObj(t, input))
	env.server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusCreated, rec.Code)

	req, rec = newAuthRequest(http.MethodGet, "/v1/board", token)
	env.server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var body boardBody
	decodeBody(t, rec, &body)

	assert.Len(t, body.Courses, 2)
	if !assert.Len(t, body.Buckets, 2) {
		return
	}

	monday := body.Buckets[0]
	assert.Equal(t, "MON", monday.Label)
	assert.Equal(t, "yellow", monday.ColorKey)
	if assert.Len(t, monday.Items, 1) {
		item := monday.Items[0]
		assert.Equal(t, "c1:s1", item.ID)
		assert.True(t, item.Link.Linked)
		assert.Equal(t, "Calculus", item.Link.EventTitle)
	}

	unassigned := body.Buckets[1]
	assert.Equal(t, planner.UnassignedLabel, unassigned.Label)
	if assert.Len(t, unassigned.Items, 1) {
		assert.Equal(t, "c2:s2", unassigned.Items[0].ID)
		assert.False(t, unassigned.Items[0].Link.Linked)
	}
}

func TestBoardToleratesPartialSubmissionFailures(t *testing.T) {
	env := setup(t)
	token := getToken(t, env.conf)

	due := time.Now().AddDate(0, 0, 2)
	env.source.CourseList = []classroom.Course{
		testutil.NewCourse("c1", "Calculus II"),
		testutil.NewCourse("c2", "History of Art"),
	}
	env.source.Submissions = map[string][]classroom.Submission{
		"c1": {testutil.NewSubmission("s1", "Problem Set 1", due.Year(), int(due.Month()), due.Day())},
	}
	env.source.FailingIDs = map[string]bool{"c2": true}
	env.source.ErrSubmissions = &core.RequestError{Op: "GET /api/classroom/active-submissions/c2", Status: http.StatusBadGateway}

	req, rec := newAuthRequest(http.MethodGet, "/v1/board", token)
	env.server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var body boardBody
	decodeBody(t, rec, &body)

	// both courses are listed; only the reachable one contributes items
	assert.Len(t, body.Courses, 2)
	if assert.Len(t, body.Buckets, 1) {
		assert.Equal(t, planner.UnassignedLabel, body.Buckets[0].Label)
		assert.Len(t, body.Buckets[0].Items, 1)
	}
}

func TestBoardFailsWhenCoursesUnreachable(t *testing.T) {
	env := setup(t)
	token := getToken(t, env.conf)

	env.source.ErrCourses = &core.RequestError{Op: "GET /api/classroom/courses", Status: http.StatusBadGateway}

	req, rec := newAuthRequest(http.MethodGet, "/v1/board", token)
	env.server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
