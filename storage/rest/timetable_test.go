package restrepos

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Panthutk/UniPlan/core"
	"github.com/Panthutk/UniPlan/core/timetable"
)

func newTestRepo(baseURL string) timetable.Repository {
	conf := &core.Config{}
	conf.Backend.BaseURL = baseURL
	conf.Backend.Timeout = 2 * time.Second
	return NewTimetableRepository(NewClient(conf))
}

func testSession() *core.Session {
	return core.SessionFromClaims("test-token", &core.Claims{Email: "student@gmail.com"})
}

func TestQueryEventsJoinsSubjects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/subjects":
			_, _ = w.Write([]byte(`[{"id": 4, "name": "Calculus II", "code": "calculus-ii"}]`))
		case "/timetable-entries":
			_, _ = w.Write([]byte(`[{"id": 9, "subject": 4, "day_of_week": 1, "start_time": "09:00", "end_time": "11:00", "room": "Bldg 3"}]`))
		default:
			t.Errorf("path = %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	events, err := newTestRepo(srv.URL).QueryEvents(context.Background(), testSession())
	if err != nil {
		t.Fatalf("QueryEvents() error: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("events = %+v", events)
	}
	ev := events[0]
	if ev.ID != 9 || ev.SubjectID != 4 || ev.Title != "Calculus II" {
		t.Errorf("event = %+v", ev)
	}
	if ev.Day != timetable.Monday {
		t.Errorf("Day = %v, want Monday", ev.Day)
	}
	if ev.Start != 9 || ev.End != 11 {
		t.Errorf("hours = %d-%d", ev.Start, ev.End)
	}
	if ev.Description != "Bldg 3" {
		t.Errorf("Description = %q", ev.Description)
	}
}

func TestCreateEventWireConversion(t *testing.T) {
	var got entryPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/timetable-entries" {
			t.Errorf("%s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decoding body: %v", err)
		}
		got.ID = 12
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(got)
	}))
	defer srv.Close()

	in := timetable.Event{
		LocalID:     "local-1",
		SubjectID:   4,
		Title:       "Calculus II",
		Day:         timetable.Sunday,
		Start:       13,
		End:         15,
		Description: "Bldg 3",
	}
	created, err := newTestRepo(srv.URL).CreateEvent(context.Background(), testSession(), in)
	if err != nil {
		t.Fatalf("CreateEvent() error: %v", err)
	}

	// Sunday is 6 in the scheduler ordering but 0 in the storage column.
	if got.DayOfWeek != 0 {
		t.Errorf("day_of_week = %d, want 0", got.DayOfWeek)
	}
	if got.StartTime != "13:00" || got.EndTime != "15:00" {
		t.Errorf("times = %s-%s", got.StartTime, got.EndTime)
	}
	if got.Room != "Bldg 3" {
		t.Errorf("room = %q", got.Room)
	}

	if created.ID != 12 || created.LocalID != "local-1" {
		t.Errorf("created = %+v", created)
	}
	if created.Day != timetable.Sunday || created.Start != 13 || created.End != 15 {
		t.Errorf("created = %+v", created)
	}
}

func TestUpdateAndDeletePaths(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 12, "subject": 4, "day_of_week": 2, "start_time": "09:00", "end_time": "10:00"}`))
	}))
	defer srv.Close()

	repo := newTestRepo(srv.URL)
	if _, err := repo.UpdateEvent(context.Background(), testSession(), timetable.Event{ID: 12, Day: timetable.Monday, Start: 9, End: 10}); err != nil {
		t.Fatalf("UpdateEvent() error: %v", err)
	}
	if gotMethod != http.MethodPatch || gotPath != "/timetable-entries/12" {
		t.Errorf("%s %s", gotMethod, gotPath)
	}

	if err := repo.DeleteEvent(context.Background(), testSession(), 12); err != nil {
		t.Fatalf("DeleteEvent() error: %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/timetable-entries/12" {
		t.Errorf("%s %s", gotMethod, gotPath)
	}
}

func TestRequestErrorPreservesStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newTestRepo(srv.URL).QuerySubjects(context.Background(), testSession())
	if err == nil {
		t.Fatal("QuerySubjects() expected error")
	}
	reqErr, ok := err.(*core.RequestError)
	if !ok {
		t.Fatalf("error type = %T, want *core.RequestError", err)
	}
	if reqErr.Status != http.StatusBadGateway {
		t.Errorf("Status = %d, want 502", reqErr.Status)
	}
}
