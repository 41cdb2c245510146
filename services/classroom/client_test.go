package classroomsvc

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Panthutk/UniPlan/core"
	"github.com/Panthutk/UniPlan/core/classroom"
)

func newTestClient(baseURL string) classroom.Source {
	conf := &core.Config{}
	conf.Classroom.BaseURL = baseURL
	conf.Classroom.Timeout = 2 * time.Second
	return NewClient(conf)
}

func testSession() *core.Session {
	return core.SessionFromClaims("test-token", &core.Claims{Email: "student@gmail.com"})
}

func TestCoursesWrappedAndBarePayloads(t *testing.T) {
	payloads := map[string]string{
		"wrapped": `{"courses": [{"id": "c1", "name": "Calculus II", "courseState": "ACTIVE"}]}`,
		"bare":    `[{"courseId": "c1", "name": "Calculus II", "state": "ACTIVE"}]`,
	}
	for name, payload := range payloads {
		t.Run(name, func(t *testing.T) {
			var gotAuth string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/api/classroom/courses" {
					t.Errorf("path = %s", r.URL.Path)
				}
				gotAuth = r.Header.Get("Authorization")
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(payload))
			}))
			defer srv.Close()

			courses, err := newTestClient(srv.URL).Courses(context.Background(), testSession())
			if err != nil {
				t.Fatalf("Courses() error: %v", err)
			}
			if len(courses) != 1 || courses[0].Key() != "c1" || courses[0].Name != "Calculus II" {
				t.Errorf("courses = %+v", courses)
			}
			if gotAuth != "Bearer test-token" {
				t.Errorf("Authorization = %q", gotAuth)
			}
		})
	}
}

func TestActiveSubmissions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/classroom/active-submissions/c%201" && r.URL.EscapedPath() != "/api/classroom/active-submissions/c%201" {
			t.Errorf("path = %s", r.URL.EscapedPath())
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"studentSubmissions": [
			{"id": "s1", "courseWorkId": "w1", "state": "NEW",
			 "dueDate": {"year": 2024, "month": 3, "day": 20},
			 "dueTime": {"hours": 9, "minutes": 30}}
		]}`))
	}))
	defer srv.Close()

	subs, err := newTestClient(srv.URL).ActiveSubmissions(context.Background(), testSession(), "c 1")
	if err != nil {
		t.Fatalf("ActiveSubmissions() error: %v", err)
	}
	if len(subs) != 1 {
		t.Fatalf("got %d submissions, want 1", len(subs))
	}
	sub := subs[0]
	if sub.DueDate == nil || sub.DueDate.Year != 2024 {
		t.Errorf("dueDate = %+v", sub.DueDate)
	}
	if sub.DueTime == nil || sub.DueTime.Hours == nil || *sub.DueTime.Hours != 9 {
		t.Errorf("dueTime = %+v", sub.DueTime)
	}
}

func TestErrorStatusPreserved(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Courses(context.Background(), testSession())
	if err == nil {
		t.Fatal("Courses() expected error")
	}
	reqErr, ok := err.(*core.RequestError)
	if !ok {
		t.Fatalf("error type = %T, want *core.RequestError", err)
	}
	if reqErr.Status != http.StatusBadGateway {
		t.Errorf("Status = %d, want 502", reqErr.Status)
	}
}
