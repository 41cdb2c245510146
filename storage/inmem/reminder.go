package inmemdb

import (
	"context"

	"github.com/Panthutk/UniPlan/core"
	"github.com/Panthutk/UniPlan/core/reminder"
)

type reminderRepository struct {
	db *reminderTable
}

func NewReminderRepository(db *DB) reminder.Repository {
	return &reminderRepository{db: db.reminder}
}

func (repo *reminderRepository) CreateReminder(ctx context.Context, sess *core.Session, rem reminder.Reminder) error {
	repo.db.Lock()
	defer repo.db.Unlock()
	repo.db.table = append(repo.db.table, rem)
	return nil
}

// Reminders returns what was submitted, in submission order.
func (repo *reminderRepository) Reminders() []reminder.Reminder {
	repo.db.RLock()
	defer repo.db.RUnlock()
	out := make([]reminder.Reminder, len(repo.db.table))
	copy(out, repo.db.table)
	return out
}
