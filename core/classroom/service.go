package classroom

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/Panthutk/UniPlan/core"
)

type (
	// Source is the coursework proxy the dashboard reads from.
	Source interface {
		Courses(ctx context.Context, sess *core.Session) ([]Course, error)
		ActiveSubmissions(ctx context.Context, sess *core.Session, courseID string) ([]Submission, error)
	}

	Service struct {
		src    Source
		logger core.Logger
	}
)

func NewService(src Source, logger core.Logger) *Service {
	return &Service{src: src, logger: logger}
}

// ActiveCourses fetches the course list and keeps only active courses.
func (svc *Service) ActiveCourses(ctx context.Context, sess *core.Session) ([]Course, error) {
	courses, err := svc.src.Courses(ctx, sess)
	if err != nil {
		return nil, errors.Wrap(err, "fetching courses")
	}
	active := make([]Course, 0, len(courses))
	for _, c := range courses {
		if c.Active() {
			active = append(active, c)
		}
	}
	return active, nil
}

// FetchSubmissions fans out one submission fetch per course and joins the
// results. A failed course is logged and omitted from the map; the fetch as
// a whole never fails, so the dashboard stays usable under partial upstream
// outages.
func (svc *Service) FetchSubmissions(ctx context.Context, sess *core.Session, courses []Course) map[string][]Submission {
	type result struct {
		courseID string
		subs     []Submission
		err      error
	}

	results := make(chan result, len(courses))
	var wg sync.WaitGroup
	for _, c := range courses {
		wg.Add(1)
		go func(courseID string) {
			defer wg.Done()
			subs, err := svc.src.ActiveSubmissions(ctx, sess, courseID)
			results <- result{courseID: courseID, subs: subs, err: err}
		}(c.Key())
	}
	wg.Wait()
	close(results)

	byCourse := make(map[string][]Submission, len(courses))
	for res := range results {
		if res.err != nil {
			svc.logger.Warn(fmt.Sprintf("submissions for course %s skipped: %v", res.courseID, res.err), res.err)
			continue
		}
		byCourse[res.courseID] = res.subs
	}
	return byCourse
}

// Assignments runs the whole pipeline: active courses, concurrent submission
// fetches, then aggregation. Only a failure of the course-list fetch itself
// propagates.
func (svc *Service) Assignments(ctx context.Context, sess *core.Session, now time.Time) ([]Course, []Assignment, error) {
	courses, err := svc.ActiveCourses(ctx, sess)
	if err != nil {
		return nil, nil, err
	}
	subs := svc.FetchSubmissions(ctx, sess, courses)
	return courses, BuildAssignments(courses, subs, now), nil
}
