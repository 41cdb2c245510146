package echoapi

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Panthutk/UniPlan/core"
	"github.com/Panthutk/UniPlan/core/classroom"
	"github.com/Panthutk/UniPlan/core/reminder"
)

type reminderAPI struct {
	svc      *reminder.Service
	classSvc *classroom.Service
	validate *validator.Validate
}

func registerReminderAPI(
	g *echo.Group,
	jwt echo.MiddlewareFunc,
	svc *reminder.Service,
	classSvc *classroom.Service,
	validate *validator.Validate,
) {
	api := reminderAPI{
		svc:      svc,
		classSvc: classSvc,
		validate: validate,
	}
	g.POST("/reminders", api.create, jwt)
}

type reminderRequest struct {
	AssignmentID string `json:"assignmentId" validate:"required"`
	OffsetDays   int    `json:"offsetDays" validate:"required"`
}

func (r *reminderRequest) Validate(validate *validator.Validate) error {
	r.AssignmentID = core.CleanString(r.AssignmentID)
	return validate.Struct(r)
}

func (api *reminderAPI) create(ctx echo.Context) error {
	sess, err := contextSession(ctx)
	if err != nil {
		return err
	}

	var data reminderRequest
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to reminderRequest")
	}
	if err = data.Validate(api.validate); err != nil {
		return err
	}

	reqCtx := ctx.Request().Context()
	_, assignments, err := api.classSvc.Assignments(reqCtx, sess, time.Now())
	if err != nil {
		return errors.Wrap(err, "aggregating assignments")
	}

	var target *classroom.Assignment
	for i := range assignments {
		if assignments[i].ID == data.AssignmentID {
			target = &assignments[i]
			break
		}
	}
	if target == nil {
		return errHttpNotFound
	}

	rem, err := api.svc.Schedule(reqCtx, sess, *target, data.OffsetDays)
	if err != nil {
		if core.IsValidationError(err) {
			return err
		}
		return errors.Wrap(err, "scheduling reminder")
	}
	return ctx.JSON(http.StatusCreated, rem)
}
