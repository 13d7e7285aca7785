package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Ayushpund/Acharya/core/dashboard"
)

type courseApi struct {
	svc      *dashboard.Service
	validate *validator.Validate
}

func registerCourseAPI(g *echo.Group, session echo.MiddlewareFunc, svc *dashboard.Service, validate *validator.Validate) {
	api := courseApi{svc: svc, validate: validate}

	g.GET("/catalog", api.catalog)

	enr := g.Group("/enrollments", session)
	enr.GET("", api.listEnrollments)
	enr.POST("", api.enroll)
	enr.GET("/overview", api.overview)
	enr.POST("/:id/materials/complete", api.completeMaterial)
	enr.POST("/:id/materials/start", api.startVideo)
}

func (api *courseApi) catalog(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.svc.Catalog(ctx.QueryParam("search")))
}

func (api *courseApi) listEnrollments(ctx echo.Context) error {
	enrollments, err := api.svc.Enrollments(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, enrollments)
}

func (api *courseApi) enroll(ctx echo.Context) error {
	var data EnrollRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to EnrollRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	enr, err := api.svc.Enroll(ctx.Request().Context(), data.CourseID)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, enr)
}

func (api *courseApi) overview(ctx echo.Context) error {
	ov, err := api.svc.Overview(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, ov)
}

func (api *courseApi) completeMaterial(ctx echo.Context) error {
	var data MaterialRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to MaterialRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	enr, err := api.svc.CompleteMaterial(ctx.Request().Context(), ctx.Param("id"), data.URL)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, enr)
}

func (api *courseApi) startVideo(ctx echo.Context) error {
	var data MaterialRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to MaterialRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	started, err := api.svc.StartVideo(ctx.Request().Context(), ctx.Param("id"), data.URL)
	if err != nil {
		return err
	}
	code := http.StatusOK
	if started {
		code = http.StatusAccepted
	}
	return ctx.JSON(code, StartVideoResponse{Started: started})
}
