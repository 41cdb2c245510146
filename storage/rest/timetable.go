package restrepos

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Panthutk/UniPlan/core"
	"github.com/Panthutk/UniPlan/core/timetable"
)

// entryPayload is the wire shape of the backend's timetable-entries
// resource. day_of_week uses the storage convention (0=Sunday..6=Saturday);
// times are "HH:00" strings; the free-text room column carries the event
// description.
type entryPayload struct {
	ID        int    `json:"id,omitempty"`
	Subject   int    `json:"subject"`
	DayOfWeek int    `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Room      string `json:"room"`
}

type timetableRepository struct {
	client *Client
}

var _ timetable.Repository = (*timetableRepository)(nil)

func NewTimetableRepository(client *Client) timetable.Repository {
	return &timetableRepository{client: client}
}

func (repo *timetableRepository) QueryEvents(ctx context.Context, sess *core.Session) ([]timetable.Event, error) {
	subjects, err := repo.QuerySubjects(ctx, sess)
	if err != nil {
		return nil, err
	}
	names := make(map[int]string, len(subjects))
	for _, sub := range subjects {
		names[sub.ID] = sub.Name
	}

	var payloads []entryPayload
	if err = repo.client.do(ctx, sess, "GET", "/timetable-entries", nil, &payloads); err != nil {
		return nil, err
	}

	events := make([]timetable.Event, 0, len(payloads))
	for _, p := range payloads {
		events = append(events, eventFromPayload(p, names[p.Subject]))
	}
	return events, nil
}

func (repo *timetableRepository) CreateEvent(ctx context.Context, sess *core.Session, ev timetable.Event) (timetable.Event, error) {
	var created entryPayload
	if err := repo.client.do(ctx, sess, "POST", "/timetable-entries", payloadFromEvent(ev), &created); err != nil {
		return timetable.Event{}, err
	}
	out := eventFromPayload(created, ev.Title)
	out.LocalID = ev.LocalID
	return out, nil
}

func (repo *timetableRepository) UpdateEvent(ctx context.Context, sess *core.Session, ev timetable.Event) (timetable.Event, error) {
	path := fmt.Sprintf("/timetable-entries/%d", ev.ID)
	var updated entryPayload
	if err := repo.client.do(ctx, sess, "PATCH", path, payloadFromEvent(ev), &updated); err != nil {
		return timetable.Event{}, err
	}
	out := eventFromPayload(updated, ev.Title)
	out.LocalID = ev.LocalID
	return out, nil
}

func (repo *timetableRepository) DeleteEvent(ctx context.Context, sess *core.Session, id int) error {
	return repo.client.do(ctx, sess, "DELETE", fmt.Sprintf("/timetable-entries/%d", id), nil, nil)
}

func payloadFromEvent(ev timetable.Event) entryPayload {
	return entryPayload{
		ID:        ev.ID,
		Subject:   ev.SubjectID,
		DayOfWeek: ev.Day.Storage(),
		StartTime: formatHour(ev.Start),
		EndTime:   formatHour(ev.End),
		Room:      ev.Description,
	}
}

func eventFromPayload(p entryPayload, title string) timetable.Event {
	return timetable.Event{
		ID:          p.ID,
		SubjectID:   p.Subject,
		Title:       title,
		Day:         timetable.DayFromStorage(p.DayOfWeek),
		Start:       parseHour(p.StartTime),
		End:         parseHour(p.EndTime),
		Description: p.Room,
		UpdatedAt:   time.Now().UTC(),
	}
}

func formatHour(h int) string {
	return fmt.Sprintf("%02d:00", h)
}

func parseHour(s string) int {
	h, _ := strconv.Atoi(strings.SplitN(s, ":", 2)[0])
	return h
}
