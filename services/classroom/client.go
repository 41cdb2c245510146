package classroomsvc

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"

	"github.com/Panthutk/UniPlan/core"
	"github.com/Panthutk/UniPlan/core/classroom"
)

// client talks to the coursework source proxy.
type client struct {
	base string
	http *http.Client
}

var _ classroom.Source = (*client)(nil)

func NewClient(conf *core.Config) classroom.Source {
	return &client{
		base: strings.TrimRight(conf.Classroom.BaseURL, "/"),
		http: &http.Client{Timeout: conf.Classroom.Timeout},
	}
}

func (c *client) Courses(ctx context.Context, sess *core.Session) ([]classroom.Course, error) {
	var list classroom.CourseList
	if err := c.get(ctx, sess, "/api/classroom/courses", &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *client) ActiveSubmissions(ctx context.Context, sess *core.Session, courseID string) ([]classroom.Submission, error) {
	var list classroom.SubmissionList
	path := "/api/classroom/active-submissions/" + url.PathEscape(courseID)
	if err := c.get(ctx, sess, path, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *client) get(ctx context.Context, sess *core.Session, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return errors.Wrapf(err, "building request GET %s", path)
	}
	req.Header.Set("Authorization", "Bearer "+sess.Bearer())

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "GET %s", path)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &core.RequestError{Op: "GET " + path, Status: resp.StatusCode}
	}
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "decoding GET %s response", path)
	}
	return nil
}
