package student

import (
	"github.com/go-playground/validator/v10"

	"github.com/Ayushpund/Acharya/core"
)

// Student is the locally registered student.
type Student struct {
	Name             string `json:"name"`
	Age              *int   `json:"age,omitempty"`
	InterestedCourse string `json:"interestedCourse,omitempty"`
}

// Registration is the sign-up form. The password is checked against the policy and then dropped.
type Registration struct {
	Name             string `json:"name"`
	Age              int    `json:"age"`
	InterestedCourse string `json:"interestedCourse"`
	Password         string `json:"password"`
}

func (r *Registration) Validate(validate *validator.Validate) error {
	r.Name = core.CleanString(r.Name)
	r.InterestedCourse = core.CleanString(r.InterestedCourse)
	return validate.Struct(r)
}

// Student returns the profile to keep once the form is valid.
func (r Registration) Student() Student {
	age := r.Age
	return Student{
		Name:             r.Name,
		Age:              &age,
		InterestedCourse: r.InterestedCourse,
	}
}
