package timetable

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/Panthutk/UniPlan/core"
)

var (
	// errors
	ErrEventNotFound   = errors.New("timetable event not found")
	ErrSubjectNotFound = errors.New("subject not found")
)

type (
	Repository interface {
		QuerySubjects(ctx context.Context, sess *core.Session) ([]Subject, error)
		CreateSubject(ctx context.Context, sess *core.Session, sub Subject) (Subject, error)
		QueryEvents(ctx context.Context, sess *core.Session) ([]Event, error)
		CreateEvent(ctx context.Context, sess *core.Session, ev Event) (Event, error)
		UpdateEvent(ctx context.Context, sess *core.Session, ev Event) (Event, error)
		DeleteEvent(ctx context.Context, sess *core.Session, id int) error
	}

	// Service is the single source of truth for the client's view of
	// timetable events. Local state only changes after the backend confirms
	// a mutation; a failed request leaves it untouched.
	Service struct {
		repo   Repository
		logger core.Logger

		mu     sync.RWMutex
		events []Event
	}
)

func NewService(repo Repository, logger core.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Refresh replaces local state with the backend's authoritative event set.
func (svc *Service) Refresh(ctx context.Context, sess *core.Session) error {
	events, err := svc.repo.QueryEvents(ctx, sess)
	if err != nil {
		return errors.Wrap(err, "loading timetable events")
	}
	svc.mu.Lock()
	svc.events = events
	svc.mu.Unlock()
	return nil
}

// Events returns a copy of the current event set, in insertion order.
func (svc *Service) Events() []Event {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	out := make([]Event, len(svc.events))
	copy(out, svc.events)
	return out
}

// Create resolves (or creates) the subject named by the input's title,
// normalizes the hour range and persists a new event. Local state picks up
// the server-assigned ID only after a confirmed success.
func (svc *Service) Create(ctx context.Context, sess *core.Session, in EventInput) (Event, error) {
	subject, err := svc.findOrCreateSubject(ctx, sess, in.Title)
	if err != nil {
		return Event{}, err
	}

	start, end := in.normalized()
	ev := Event{
		LocalID:     uuid.New().String(),
		SubjectID:   subject.ID,
		Title:       in.Title,
		Day:         Day(in.Day),
		Start:       start,
		End:         end,
		Description: in.Description,
		UpdatedAt:   time.Now().UTC(),
	}

	created, err := svc.repo.CreateEvent(ctx, sess, ev)
	if err != nil {
		return Event{}, errors.Wrap(err, "creating timetable event")
	}
	created.LocalID = ev.LocalID

	svc.mu.Lock()
	svc.events = append(svc.events, created)
	svc.mu.Unlock()
	return created, nil
}

// Update applies the same subject resolution and normalization as Create,
// issues a partial update and replaces the matching local event in place.
// A not-yet-persisted event is updated locally without a network call.
func (svc *Service) Update(ctx context.Context, sess *core.Session, key string, in EventInput) (Event, error) {
	existing, ok := svc.find(key)
	if !ok {
		return Event{}, ErrEventNotFound
	}

	subject, err := svc.findOrCreateSubject(ctx, sess, in.Title)
	if err != nil {
		return Event{}, err
	}

	start, end := in.normalized()
	updated := existing
	updated.SubjectID = subject.ID
	updated.Title = in.Title
	updated.Day = Day(in.Day)
	updated.Start = start
	updated.End = end
	updated.Description = in.Description
	updated.UpdatedAt = time.Now().UTC()

	if existing.Persisted() {
		updated, err = svc.repo.UpdateEvent(ctx, sess, updated)
		if err != nil {
			return Event{}, errors.Wrap(err, "updating timetable event")
		}
		updated.LocalID = existing.LocalID
	}

	svc.replace(key, updated)
	return updated, nil
}

// Delete removes the event from the backend (when persisted) and from local
// state. Local-only events skip the network call.
func (svc *Service) Delete(ctx context.Context, sess *core.Session, key string) error {
	ev, ok := svc.find(key)
	if !ok {
		return ErrEventNotFound
	}
	if ev.Persisted() {
		if err := svc.repo.DeleteEvent(ctx, sess, ev.ID); err != nil {
			return errors.Wrap(err, "deleting timetable event")
		}
	}
	svc.remove(key)
	return nil
}

// ClearAll deletes every persisted event with independent concurrent
// requests. Per-item failures are tolerated; local state is cleared
// regardless of individual outcomes.
func (svc *Service) ClearAll(ctx context.Context, sess *core.Session) {
	svc.mu.Lock()
	events := svc.events
	svc.events = nil
	svc.mu.Unlock()

	var wg sync.WaitGroup
	for _, ev := range events {
		if !ev.Persisted() {
			continue
		}
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			if err := svc.repo.DeleteEvent(ctx, sess, id); err != nil {
				svc.logger.Warn(fmt.Sprintf("clearing event %d failed: %v", id, err), err)
			}
		}(ev.ID)
	}
	wg.Wait()
}

// findOrCreateSubject resolves a subject by case-insensitive name match,
// creating one with a fresh unique code when absent.
func (svc *Service) findOrCreateSubject(ctx context.Context, sess *core.Session, name string) (Subject, error) {
	subjects, err := svc.repo.QuerySubjects(ctx, sess)
	if err != nil {
		return Subject{}, errors.Wrap(err, "loading subjects")
	}

	cleaned := core.CleanString(name)
	for _, sub := range subjects {
		if core.CleanString(sub.Name, true) == core.CleanString(cleaned, true) {
			return sub, nil
		}
	}

	codes := make(map[string]bool, len(subjects))
	for _, sub := range subjects {
		codes[core.CleanString(sub.Code, true)] = true
	}
	code := UniqueCode(cleaned, func(c string) bool { return codes[c] })

	created, err := svc.repo.CreateSubject(ctx, sess, Subject{Name: cleaned, Code: code})
	if err != nil {
		return Subject{}, errors.Wrap(err, "creating subject")
	}
	return created, nil
}

func (svc *Service) find(key string) (Event, bool) {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	for _, ev := range svc.events {
		if ev.Key() == key {
			return ev, true
		}
	}
	return Event{}, false
}

func (svc *Service) replace(key string, ev Event) {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	for i := range svc.events {
		if svc.events[i].Key() == key {
			svc.events[i] = ev
			return
		}
	}
}

func (svc *Service) remove(key string) {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	for i := range svc.events {
		if svc.events[i].Key() == key {
			svc.events = append(svc.events[:i], svc.events[i+1:]...)
			return
		}
	}
}
