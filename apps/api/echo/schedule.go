package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/darasa-app/darasa/core/schedule"
)

type scheduleApi struct {
	svc schedule.Service
}

func registerScheduleAPI(g *echo.Group, svc schedule.Service) {
	api := scheduleApi{svc: svc}

	sg := g.Group("/schedules")
	sg.GET("", api.query)
	sg.POST("", api.create)
	sg.GET("/today", api.today)
	sg.GET("/:id", api.retrieve)
	sg.PUT("/:id", api.update)
	sg.DELETE("/:id", api.destroy)

	ng := g.Group("/notifications")
	ng.GET("", api.queryNotifications)
	ng.POST("", api.notify)
	ng.DELETE("/:id", api.destroyNotification)
}

// Handlers

func (api *scheduleApi) create(ctx echo.Context) error {
	var data schedule.NewSchedule
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewSchedule")
	}

	sched, err := api.svc.Create(data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, sched)
}

// query returns schedules, narrowed down by any schedule.QueryFilter
// query params present.
func (api *scheduleApi) query(ctx echo.Context) error {
	var filter schedule.QueryFilter
	if err := ctx.Bind(&filter); err != nil {
		return errors.Wrap(err, "binding to QueryFilter")
	}

	scheds, err := api.svc.Filter(filter)
	if err != nil {
		return errors.Wrap(err, "filtering schedules")
	}
	return ctx.JSON(http.StatusOK, scheds)
}

func (api *scheduleApi) today(ctx echo.Context) error {
	scheds, err := api.svc.Today()
	if err != nil {
		return errors.Wrap(err, "querying today's schedules")
	}
	return ctx.JSON(http.StatusOK, scheds)
}

func (api *scheduleApi) retrieve(ctx echo.Context) error {
	sched, err := api.svc.GetByID(ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, sched)
}

func (api *scheduleApi) update(ctx echo.Context) error {
	var data schedule.Schedule
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Schedule")
	}
	data.ID = ctx.Param("id")

	if err := api.svc.Update(data); err != nil {
		return errors.Wrap(err, "updating schedule")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *scheduleApi) destroy(ctx echo.Context) error {
	if err := api.svc.Delete(ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting schedule")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *scheduleApi) notify(ctx echo.Context) error {
	var data schedule.NewNotification
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewNotification")
	}

	notif, err := api.svc.Notify(data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, notif)
}

func (api *scheduleApi) queryNotifications(ctx echo.Context) error {
	notifs, err := api.svc.QueryNotifications()
	if err != nil {
		return errors.Wrap(err, "querying notifications")
	}
	return ctx.JSON(http.StatusOK, notifs)
}

func (api *scheduleApi) destroyNotification(ctx echo.Context) error {
	if err := api.svc.DeleteNotification(ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting notification")
	}
	return ctx.NoContent(http.StatusNoContent)
}
