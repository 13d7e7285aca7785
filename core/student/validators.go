package student

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/Ayushpund/Acharya/core"
)

var (
	nameMinLen  = 2
	nameMinTag  = "namemin"
	nameMinText = fmt.Sprintf("Name must be at least %d characters.", nameMinLen)

	ageMin     = 10
	ageMax     = 100
	ageMinTag  = "agemin"
	ageMinText = fmt.Sprintf("Age must be at least %d.", ageMin)
	ageMaxTag  = "agemax"
	ageMaxText = fmt.Sprintf("Age must be less than %d.", ageMax)

	interestMinLen  = 3
	interestMinTag  = "interestmin"
	interestMinText = fmt.Sprintf("Please specify an interest (min %d chars).", interestMinLen)

	// password policy
	pwdMinLen     = 8
	pwdMinLenTag  = "pwdminlen"
	pwdMinLenText = fmt.Sprintf("Password must be at least %d characters.", pwdMinLen)

	pwdNoSpaceTag  = "pwdnospace"
	pwdNoSpaceText = "Password must not contain whitespace."

	pwdMaxSim      = .7
	pwdAttrSimTag  = "pwdtoosim"
	pwdAttrSimText = "Password cannot be similar to your name."
)

// InitValidators registers the registration form rules and their messages.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	validate.RegisterStructValidation(registrationStructValidation, Registration{})

	core.RegisterCustomTranslation(validate, translator, nameMinTag, nameMinText)
	core.RegisterCustomTranslation(validate, translator, ageMinTag, ageMinText)
	core.RegisterCustomTranslation(validate, translator, ageMaxTag, ageMaxText)
	core.RegisterCustomTranslation(validate, translator, interestMinTag, interestMinText)
	core.RegisterCustomTranslation(validate, translator, pwdMinLenTag, pwdMinLenText)
	core.RegisterCustomTranslation(validate, translator, pwdNoSpaceTag, pwdNoSpaceText)
	core.RegisterCustomTranslation(validate, translator, pwdAttrSimTag, pwdAttrSimText)
}

// registrationStructValidation does struct level validation on the Registration form.
func registrationStructValidation(sl validator.StructLevel) {
	reg, ok := sl.Current().Interface().(Registration)
	if !ok {
		return
	}

	if utf8.RuneCountInString(reg.Name) < nameMinLen {
		sl.ReportError(reg.Name, "name", "Name", nameMinTag, "")
	}

	switch {
	case reg.Age < ageMin:
		sl.ReportError(reg.Age, "age", "Age", ageMinTag, "")
	case reg.Age > ageMax:
		sl.ReportError(reg.Age, "age", "Age", ageMaxTag, "")
	}

	// optional, but meaningful when given
	if reg.InterestedCourse != "" && utf8.RuneCountInString(reg.InterestedCourse) < interestMinLen {
		sl.ReportError(reg.InterestedCourse, "interestedCourse", "InterestedCourse", interestMinTag, "")
	}

	validatePassword(reg.Password, reg.Name, sl)
}

// validatePassword applies the password policy to provided password:
// - minLen: 8
// - no whitespace
// - no similarity with the student name
func validatePassword(pwd, name string, sl validator.StructLevel) {
	reportErr := func(tag string) {
		sl.ReportError(pwd, "password", "Password", tag, "")
	}

	if utf8.RuneCountInString(pwd) < pwdMinLen {
		reportErr(pwdMinLenTag)
		return
	}
	for _, char := range pwd {
		if unicode.IsSpace(char) {
			reportErr(pwdNoSpaceTag)
			return
		}
	}

	if name == "" {
		return
	}
	ratio := difflib.NewMatcher(
		strings.Split(strings.ToLower(pwd), ""),
		strings.Split(strings.ToLower(name), ""),
	).QuickRatio()
	if ratio >= pwdMaxSim {
		reportErr(pwdAttrSimTag)
	}
}
