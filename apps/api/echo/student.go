package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Ayushpund/Acharya/core/dashboard"
	"github.com/Ayushpund/Acharya/core/student"
)

type studentApi struct {
	svc      *dashboard.Service
	validate *validator.Validate
}

func registerStudentAPI(g *echo.Group, session echo.MiddlewareFunc, svc *dashboard.Service, validate *validator.Validate) {
	api := studentApi{svc: svc, validate: validate}

	g.POST("/register", api.register)
	g.POST("/logout", api.logout)
	g.GET("/me", api.me, session)
}

func (api *studentApi) register(ctx echo.Context) error {
	var data student.Registration
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to student.Registration")
	}
	std, err := api.svc.Register(ctx.Request().Context(), data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, std)
}

func (api *studentApi) logout(ctx echo.Context) error {
	if err := api.svc.Logout(ctx.Request().Context()); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *studentApi) me(ctx echo.Context) error {
	std, _ := getContextStudent(ctx)
	return ctx.JSON(http.StatusOK, std)
}
