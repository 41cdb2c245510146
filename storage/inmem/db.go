package inmemdb

import (
	"sync"

	"github.com/Panthutk/UniPlan/core/reminder"
	"github.com/Panthutk/UniPlan/core/timetable"
)

type (
	DB struct {
		subject  *subjectTable
		entry    *entryTable
		reminder *reminderTable
	}

	subjectTable struct {
		sync.RWMutex
		table map[int]*timetable.Subject
	}

	entryTable struct {
		sync.RWMutex
		table map[int]*timetable.Event
	}

	reminderTable struct {
		sync.RWMutex
		table []reminder.Reminder
	}
)

func Open() (*DB, error) {
	db := &DB{
		subject:  &subjectTable{table: make(map[int]*timetable.Subject)},
		entry:    &entryTable{table: make(map[int]*timetable.Event)},
		reminder: &reminderTable{},
	}
	return db, nil
}
