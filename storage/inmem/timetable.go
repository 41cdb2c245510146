package inmemdb

import (
	"context"
	"sort"
	"time"

	"github.com/Panthutk/UniPlan/core"
	"github.com/Panthutk/UniPlan/core/timetable"
)

var (
	subjectPKCount int
	entryPKCount   int
)

type timetableRepository struct {
	subjects *subjectTable
	entries  *entryTable
}

func NewTimetableRepository(db *DB) timetable.Repository {
	return &timetableRepository{subjects: db.subject, entries: db.entry}
}

func (repo *timetableRepository) QuerySubjects(ctx context.Context, sess *core.Session) ([]timetable.Subject, error) {
	repo.subjects.RLock()
	defer repo.subjects.RUnlock()

	subjects := make([]timetable.Subject, 0, len(repo.subjects.table))
	for _, sub := range repo.subjects.table {
		subjects = append(subjects, *sub)
	}
	sort.Slice(subjects, func(i, j int) bool { return subjects[i].ID < subjects[j].ID })
	return subjects, nil
}

func (repo *timetableRepository) CreateSubject(ctx context.Context, sess *core.Session, sub timetable.Subject) (timetable.Subject, error) {
	repo.subjects.Lock()
	defer repo.subjects.Unlock()

	subjectPKCount++
	sub.ID = subjectPKCount
	repo.subjects.table[sub.ID] = &sub
	return sub, nil
}

func (repo *timetableRepository) QueryEvents(ctx context.Context, sess *core.Session) ([]timetable.Event, error) {
	repo.entries.RLock()
	defer repo.entries.RUnlock()

	events := make([]timetable.Event, 0, len(repo.entries.table))
	for _, ev := range repo.entries.table {
		events = append(events, *ev)
	}
	sort.Slice(events, func(i, j int) bool { return events[i].ID < events[j].ID })
	return events, nil
}

func (repo *timetableRepository) CreateEvent(ctx context.Context, sess *core.Session, ev timetable.Event) (timetable.Event, error) {
	repo.entries.Lock()
	defer repo.entries.Unlock()

	entryPKCount++
	ev.ID = entryPKCount
	ev.UpdatedAt = time.Now().UTC()
	repo.entries.table[ev.ID] = &ev
	return ev, nil
}

func (repo *timetableRepository) UpdateEvent(ctx context.Context, sess *core.Session, ev timetable.Event) (timetable.Event, error) {
	repo.entries.Lock()
	defer repo.entries.Unlock()

	if _, ok := repo.entries.table[ev.ID]; !ok {
		return timetable.Event{}, timetable.ErrEventNotFound
	}
	ev.UpdatedAt = time.Now().UTC()
	repo.entries.table[ev.ID] = &ev
	return ev, nil
}

func (repo *timetableRepository) DeleteEvent(ctx context.Context, sess *core.Session, id int) error {
	repo.entries.Lock()
	defer repo.entries.Unlock()

	if _, ok := repo.entries.table[id]; !ok {
		return timetable.ErrEventNotFound
	}
	delete(repo.entries.table, id)
	return nil
}
