package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Ayushpund/Acharya/core/dashboard"
)

type recommendationApi struct {
	svc      *dashboard.Service
	validate *validator.Validate
}

func registerRecommendationAPI(g *echo.Group, session echo.MiddlewareFunc, svc *dashboard.Service, validate *validator.Validate) {
	api := recommendationApi{svc: svc, validate: validate}

	rec := g.Group("/recommendations", session)
	rec.GET("", api.list)
	rec.POST("/materials/complete", api.completeMaterial)
}

// list always answers 200: an unavailable model or an unusable reply shows up in the status field.
func (api *recommendationApi) list(ctx echo.Context) error {
	view, err := api.svc.Recommend(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, view)
}

func (api *recommendationApi) completeMaterial(ctx echo.Context) error {
	var data RecommendedMaterialRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to RecommendedMaterialRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	if err := api.svc.MarkRecommendedComplete(ctx.Request().Context(), data.Title, data.URL); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
