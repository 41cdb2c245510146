package restrepos

import (
	"context"

	"github.com/Panthutk/UniPlan/core"
	"github.com/Panthutk/UniPlan/core/timetable"
)

func (repo *timetableRepository) QuerySubjects(ctx context.Context, sess *core.Session) ([]timetable.Subject, error) {
	var subjects []timetable.Subject
	if err := repo.client.do(ctx, sess, "GET", "/subjects", nil, &subjects); err != nil {
		return nil, err
	}
	return subjects, nil
}

func (repo *timetableRepository) CreateSubject(ctx context.Context, sess *core.Session, sub timetable.Subject) (timetable.Subject, error) {
	var created timetable.Subject
	if err := repo.client.do(ctx, sess, "POST", "/subjects", sub, &created); err != nil {
		return timetable.Subject{}, err
	}
	return created, nil
}
