package restrepos

import (
	"context"
	"time"

	"github.com/Panthutk/UniPlan/core"
	"github.com/Panthutk/UniPlan/core/reminder"
)

// reminderPayload is the wire shape of the backend's reminders resource.
type reminderPayload struct {
	AssignmentID string `json:"assignmentId"`
	CourseName   string `json:"courseName"`
	Title        string `json:"title"`
	DueISO       string `json:"dueISO"`
	RemindAtISO  string `json:"remindAtISO"`
	OffsetDays   int    `json:"offsetDays"`
	Link         string `json:"link"`
}

type reminderRepository struct {
	client *Client
}

var _ reminder.Repository = (*reminderRepository)(nil)

func NewReminderRepository(client *Client) reminder.Repository {
	return &reminderRepository{client: client}
}

func (repo *reminderRepository) CreateReminder(ctx context.Context, sess *core.Session, rem reminder.Reminder) error {
	payload := reminderPayload{
		AssignmentID: rem.AssignmentID,
		CourseName:   rem.CourseName,
		Title:        rem.Title,
		DueISO:       rem.Due.UTC().Format(time.RFC3339),
		RemindAtISO:  rem.RemindAt.UTC().Format(time.RFC3339),
		OffsetDays:   rem.OffsetDays,
		Link:         rem.Link,
	}
	return repo.client.do(ctx, sess, "POST", "/reminders", payload, nil)
}
