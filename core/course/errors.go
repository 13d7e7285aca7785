package course

import "github.com/pkg/errors"

var (
	ErrNotFound         = errors.New("course not found")
	ErrNotEnrolled      = errors.New("not enrolled in course")
	ErrAlreadyEnrolled  = errors.New("already enrolled in course")
	ErrMaterialNotFound = errors.New("learning material not found")
)
