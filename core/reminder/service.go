package reminder

import (
	"context"
	"fmt"
	"net/mail"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/Panthutk/UniPlan/core"
	"github.com/Panthutk/UniPlan/core/classroom"
)

// Reminder is the record submitted to the backend's reminders resource.
type Reminder struct {
	AssignmentID string    `json:"assignmentId"`
	CourseName   string    `json:"courseName"`
	Title        string    `json:"title"`
	Due          time.Time `json:"dueISO"`
	RemindAt     time.Time `json:"remindAtISO"`
	OffsetDays   int       `json:"offsetDays"`
	Link         string    `json:"link"`
}

type (
	Repository interface {
		CreateReminder(ctx context.Context, sess *core.Session, rem Reminder) error
	}

	// Service computes remind-at timestamps and submits each reminder at
	// most once per assignment.
	Service struct {
		repo    Repository
		mail    core.EmailService
		logger  core.Logger
		offsets []int

		mu        sync.Mutex
		scheduled map[string]bool
	}
)

// NewService builds a reminder service. `offsets` is the enumerated set of
// allowed "days before" choices; `mailSvc` may be nil to disable email
// notifications.
func NewService(repo Repository, mailSvc core.EmailService, logger core.Logger, offsets []int) *Service {
	return &Service{
		repo:      repo,
		mail:      mailSvc,
		logger:    logger,
		offsets:   offsets,
		scheduled: make(map[string]bool),
	}
}

// Schedule validates and submits one reminder for `a`. Assignments without
// a concrete due date, unknown offsets and already-scheduled assignments
// are rejected locally, before any network call.
func (svc *Service) Schedule(ctx context.Context, sess *core.Session, a classroom.Assignment, offsetDays int) (Reminder, error) {
	if a.Due == nil {
		return Reminder{}, core.NewValidationError(nil,
			core.FieldError{Field: "due", Error: "assignment has no due date"})
	}
	if !svc.validOffset(offsetDays) {
		return Reminder{}, core.NewValidationError(nil,
			core.FieldError{Field: "offsetDays", Error: fmt.Sprintf("offset must be one of %v", svc.offsets)})
	}
	if svc.Scheduled(a.ID) {
		return Reminder{}, core.NewValidationError(nil,
			core.FieldError{Field: "assignmentId", Error: "reminder already scheduled"})
	}

	rem := Reminder{
		AssignmentID: a.ID,
		CourseName:   a.CourseName,
		Title:        a.Title,
		Due:          *a.Due,
		RemindAt:     a.Due.Add(-time.Duration(offsetDays) * 24 * time.Hour),
		OffsetDays:   offsetDays,
		Link:         a.Link,
	}
	if err := svc.repo.CreateReminder(ctx, sess, rem); err != nil {
		return Reminder{}, errors.Wrap(err, "submitting reminder")
	}

	svc.mu.Lock()
	svc.scheduled[a.ID] = true
	svc.mu.Unlock()

	svc.notify(sess, rem)
	return rem, nil
}

// Scheduled reports whether a reminder was already submitted for the
// assignment during this session.
func (svc *Service) Scheduled(assignmentID string) bool {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	return svc.scheduled[assignmentID]
}

func (svc *Service) validOffset(days int) bool {
	for _, o := range svc.offsets {
		if o == days {
			return true
		}
	}
	return false
}

// notify sends a confirmation mail when the session carries an address.
func (svc *Service) notify(sess *core.Session, rem Reminder) {
	if svc.mail == nil || sess == nil || sess.Email == "" {
		return
	}
	svc.mail.SendMessages(&core.EmailMessage{
		To:      []mail.Address{{Name: sess.Name, Address: sess.Email}},
		Subject: fmt.Sprintf("Reminder set: %s", rem.Title),
		BodyStr: fmt.Sprintf(
			"You will be reminded about %q (%s) on %s, %d day(s) before it is due on %s.",
			rem.Title, rem.CourseName,
			rem.RemindAt.Format("Mon, 02 Jan 2006 15:04"),
			rem.OffsetDays,
			rem.Due.Format("Mon, 02 Jan 2006 15:04"),
		),
	})
}
