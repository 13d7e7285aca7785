package echoapi

import (
	"github.com/go-playground/validator/v10"

	"github.com/Ayushpund/Acharya/core"
)

type (
	EnrollRequest struct {
		CourseID string `json:"courseId" validate:"required,notblank"`
	}

	MaterialRequest struct {
		URL string `json:"url" validate:"required,notblank"`
	}

	RecommendedMaterialRequest struct {
		Title string `json:"title"`
		URL   string `json:"url" validate:"required,notblank"`
	}

	StartVideoResponse struct {
		Started bool `json:"started"`
	}
)

func (r *EnrollRequest) Validate(validate *validator.Validate) error {
	r.CourseID = core.CleanString(r.CourseID)
	return validate.Struct(r)
}

func (r *MaterialRequest) Validate(validate *validator.Validate) error {
	r.URL = core.CleanString(r.URL)
	return validate.Struct(r)
}

func (r *RecommendedMaterialRequest) Validate(validate *validator.Validate) error {
	r.Title = core.CleanString(r.Title)
	r.URL = core.CleanString(r.URL)
	return validate.Struct(r)
}
