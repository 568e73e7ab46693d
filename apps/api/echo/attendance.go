package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/darasa-app/darasa/core/attendance"
)

type attendanceApi struct {
	svc attendance.Service
}

func registerAttendanceAPI(g *echo.Group, svc attendance.Service) {
	api := attendanceApi{svc: svc}

	ag := g.Group("/attendance-requests")
	ag.GET("", api.query)
	ag.POST("", api.create)
	ag.GET("/stats", api.stats)
	ag.GET("/:id", api.retrieve)
	ag.PUT("/:id/review", api.review)
	ag.DELETE("/:id", api.destroy)
}

// Handlers

func (api *attendanceApi) create(ctx echo.Context) error {
	var data attendance.NewRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewRequest")
	}

	req, err := api.svc.Create(data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, req)
}

func (api *attendanceApi) query(ctx echo.Context) error {
	requests, err := api.svc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying attendance requests")
	}
	return ctx.JSON(http.StatusOK, requests)
}

func (api *attendanceApi) stats(ctx echo.Context) error {
	counts, err := api.svc.Stats()
	if err != nil {
		return errors.Wrap(err, "tallying attendance requests")
	}
	return ctx.JSON(http.StatusOK, counts)
}

func (api *attendanceApi) retrieve(ctx echo.Context) error {
	req, err := api.svc.GetByID(ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, req)
}

func (api *attendanceApi) review(ctx echo.Context) error {
	var data attendance.StatusUpdate
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to StatusUpdate")
	}

	if err := api.svc.UpdateStatus(ctx.Param("id"), data); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *attendanceApi) destroy(ctx echo.Context) error {
	if err := api.svc.Delete(ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting attendance request")
	}
	return ctx.NoContent(http.StatusNoContent)
}
