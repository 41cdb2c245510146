package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Panthutk/UniPlan/core/timetable"
)

type timetableAPI struct {
	svc      *timetable.Service
	validate *validator.Validate
}

func registerTimetableAPI(
	g *echo.Group,
	jwt echo.MiddlewareFunc,
	svc *timetable.Service,
	validate *validator.Validate,
) {
	api := timetableAPI{
		svc:      svc,
		validate: validate,
	}

	tg := g.Group("/timetable", jwt)
	tg.GET("", api.query)
	tg.POST("", api.create)
	tg.PUT("/:id", api.update)
	tg.DELETE("/:id", api.destroy)
	tg.DELETE("", api.clear)
}

// Handlers

func (api *timetableAPI) query(ctx echo.Context) error {
	sess, err := contextSession(ctx)
	if err != nil {
		return err
	}
	if err = api.svc.Refresh(ctx.Request().Context(), sess); err != nil {
		return errors.Wrap(err, "refreshing timetable")
	}
	return ctx.JSON(http.StatusOK, api.svc.Events())
}

func (api *timetableAPI) create(ctx echo.Context) error {
	sess, err := contextSession(ctx)
	if err != nil {
		return err
	}

	var data timetable.EventInput
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to EventInput")
	}
	if err = data.Validate(api.validate); err != nil {
		return err
	}

	ev, err := api.svc.Create(ctx.Request().Context(), sess, data)
	if err != nil {
		return errors.Wrap(err, "creating event")
	}
	return ctx.JSON(http.StatusCreated, ev)
}

func (api *timetableAPI) update(ctx echo.Context) error {
	sess, err := contextSession(ctx)
	if err != nil {
		return err
	}

	var data timetable.EventInput
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to EventInput")
	}
	if err = data.Validate(api.validate); err != nil {
		return err
	}

	ev, err := api.svc.Update(ctx.Request().Context(), sess, ctx.Param("id"), data)
	if err != nil {
		if errors.Cause(err) == timetable.ErrEventNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "updating event")
	}
	return ctx.JSON(http.StatusOK, ev)
}

func (api *timetableAPI) destroy(ctx echo.Context) error {
	sess, err := contextSession(ctx)
	if err != nil {
		return err
	}

	if err = api.svc.Delete(ctx.Request().Context(), sess, ctx.Param("id")); err != nil {
		if errors.Cause(err) == timetable.ErrEventNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "deleting event")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *timetableAPI) clear(ctx echo.Context) error {
	sess, err := contextSession(ctx)
	if err != nil {
		return err
	}
	api.svc.ClearAll(ctx.Request().Context(), sess)
	return ctx.NoContent(http.StatusNoContent)
}
