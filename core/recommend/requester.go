package recommend

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/Ayushpund/Acharya/core"
)

// Generator is a generative model able to answer with JSON matching a schema.
type Generator interface {
	GenerateJSON(ctx context.Context, system, user, schemaName string, schema map[string]any) (json.RawMessage, error)
}

// Requester asks the model for course recommendations.
type Requester struct {
	gen      Generator
	validate *validator.Validate
	logger   core.Logger
}

func NewRequester(gen Generator, validate *validator.Validate, logger core.Logger) *Requester {
	return &Requester{gen: gen, validate: validate, logger: logger}
}

// Request makes a single model call for req and never fails: every failure path yields the
// empty result, and the Outcome tells which path was taken.
func (r *Requester) Request(ctx context.Context, req Request) (Recommendations, Outcome) {
	raw, err := r.gen.GenerateJSON(ctx, SystemPrompt, BuildPrompt(req), SchemaName, OutputSchema)
	if err != nil {
		r.logger.Error("recommend: model call failed", errors.Wrap(err, "generating recommendations"))
		return Empty(), OutcomeUnavailable
	}

	out, err := r.decode(raw)
	if err != nil {
		r.logger.Warn("recommend: model reply does not match the output schema", err)
		return Empty(), OutcomeMalformed
	}

	recs := Validate(out)
	if out == nil || out.RecommendedCourses == nil {
		r.logger.Warn("recommend: model reply has no recommendedCourses, returning empty list")
	}
	if len(recs.RecommendedCourses) == 0 {
		return recs, OutcomeNoMatch
	}
	return recs, OutcomeRecommended
}

type (
	// replyShape mirrors ModelOutput with pointers, telling fields the model left out (or set
	// to null) apart from empty strings, which are valid.
	replyShape struct {
		RecommendedCourses []courseShape `json:"recommendedCourses" validate:"dive"`
	}

	courseShape struct {
		Name              *string         `json:"name" validate:"required"`
		Reason            *string         `json:"reason" validate:"required"`
		LearningMaterials []materialShape `json:"learningMaterials" validate:"dive"`
	}

	materialShape struct {
		Type  *string `json:"type" validate:"required"`
		Title *string `json:"title" validate:"required"`
		URL   *string `json:"url" validate:"required"`
	}
)

// decode parses raw into a ModelOutput and enforces the schema constraints:
// required fields must be present, bounds and enums are checked on ModelOutput.
// A null or empty reply decodes to nil.
func (r *Requester) decode(raw json.RawMessage) (*ModelOutput, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}
	var shape replyShape
	if err := json.Unmarshal(raw, &shape); err != nil {
		return nil, errors.Wrap(err, "decoding model output")
	}
	if err := r.validate.Struct(shape); err != nil {
		return nil, errors.Wrap(err, "validating model output fields")
	}

	var out ModelOutput
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, errors.Wrap(err, "decoding model output")
	}
	if err := r.validate.Struct(out); err != nil {
		return nil, errors.Wrap(err, "validating model output")
	}
	return &out, nil
}
