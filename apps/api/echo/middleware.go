package echoapi

import (
	"github.com/labstack/echo/v4"

	"github.com/Ayushpund/Acharya/core/dashboard"
	"github.com/Ayushpund/Acharya/core/student"
)

const ctxStudentKey = "student"

type studentValue struct {
	student.Student
}

// studentSessionMiddleware only lets requests through when a student is registered.
// Without one, the error handler redirects to the registration form.
func studentSessionMiddleware(svc *dashboard.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			std, err := svc.Me(ctx.Request().Context())
			if err != nil {
				return err
			}
			ctx.Set(ctxStudentKey, studentValue{std})
			return next(ctx)
		}
	}
}

func getContextStudent(ctx echo.Context) (student.Student, bool) {
	v, ok := ctx.Get(ctxStudentKey).(studentValue)
	return v.Student, ok
}
