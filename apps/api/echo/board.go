package echoapi

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Panthutk/UniPlan/core/classroom"
	"github.com/Panthutk/UniPlan/core/planner"
	"github.com/Panthutk/UniPlan/core/timetable"
)

type boardAPI struct {
	classSvc *classroom.Service
	ttSvc    *timetable.Service
	linker   *planner.Linker
}

func registerBoardAPI(
	g *echo.Group,
	jwt echo.MiddlewareFunc,
	classSvc *classroom.Service,
	ttSvc *timetable.Service,
	linker *planner.Linker,
) {
	api := boardAPI{
		classSvc: classSvc,
		ttSvc:    ttSvc,
		linker:   linker,
	}
	g.GET("/board", api.retrieve, jwt)
}

type boardResponse struct {
	Courses []classroom.Course `json:"courses"`
	Buckets []planner.Bucket   `json:"buckets"`
}

// retrieve runs the whole dashboard pipeline: fan out to the classroom
// proxy, aggregate, link against the current timetable and group by day.
func (api *boardAPI) retrieve(ctx echo.Context) error {
	sess, err := contextSession(ctx)
	if err != nil {
		return err
	}
	reqCtx := ctx.Request().Context()

	courses, assignments, err := api.classSvc.Assignments(reqCtx, sess, time.Now())
	if err != nil {
		return errors.Wrap(err, "aggregating assignments")
	}

	if err = api.ttSvc.Refresh(reqCtx, sess); err != nil {
		return errors.Wrap(err, "refreshing timetable")
	}

	annotated := api.linker.Annotate(assignments, api.ttSvc.Events())
	return ctx.JSON(http.StatusOK, boardResponse{
		Courses: courses,
		Buckets: planner.GroupByDay(annotated),
	})
}
