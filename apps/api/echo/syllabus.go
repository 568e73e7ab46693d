package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/darasa-app/darasa/core/syllabus"
)

type syllabusApi struct {
	svc syllabus.Service
}

func registerSyllabusAPI(g *echo.Group, svc syllabus.Service) {
	api := syllabusApi{svc: svc}

	sg := g.Group("/syllabi")
	sg.GET("", api.query)
	sg.POST("", api.create)
	sg.GET("/:id", api.retrieve)
	sg.PUT("/:id", api.update)
	sg.DELETE("/:id", api.destroy)
	sg.POST("/:id/slip-test", api.generateSlipTest)
}

// Handlers

func (api *syllabusApi) create(ctx echo.Context) error {
	var data syllabus.NewSyllabus
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewSyllabus")
	}

	syl, err := api.svc.Create(data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, syl)
}

func (api *syllabusApi) query(ctx echo.Context) error {
	syllabi, err := api.svc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying syllabi")
	}
	return ctx.JSON(http.StatusOK, syllabi)
}

func (api *syllabusApi) retrieve(ctx echo.Context) error {
	syl, err := api.svc.GetByID(ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, syl)
}

func (api *syllabusApi) update(ctx echo.Context) error {
	var data syllabus.Syllabus
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Syllabus")
	}
	data.ID = ctx.Param("id")

	if err := api.svc.Update(data); err != nil {
		return errors.Wrap(err, "updating syllabus")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *syllabusApi) destroy(ctx echo.Context) error {
	if err := api.svc.Delete(ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting syllabus")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *syllabusApi) generateSlipTest(ctx echo.Context) error {
	slip, err := api.svc.GenerateSlipTest(ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, slip)
}
