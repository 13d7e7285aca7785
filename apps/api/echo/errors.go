package echoapi

import (
	"net/http"

	ut "github.com/go-playground/universal-translator"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Ayushpund/Acharya/core"
	"github.com/Ayushpund/Acharya/core/course"
	"github.com/Ayushpund/Acharya/core/session"
)

const registerPath = "/register"

var (
	errHttpCourseNotFound   = echo.NewHTTPError(http.StatusNotFound, "course not found")
	errHttpNotEnrolled      = echo.NewHTTPError(http.StatusNotFound, "not enrolled in this course")
	errHttpMaterialNotFound = echo.NewHTTPError(http.StatusNotFound, "learning material not found")
	errHttpAlreadyEnrolled  = echo.NewHTTPError(http.StatusConflict, "already enrolled in this course")
)

// httpError maps domain errors to their HTTP counterpart; other errors are returned as is.
func httpError(err error) error {
	switch errors.Cause(err) {
	case course.ErrNotFound:
		return errHttpCourseNotFound
	case course.ErrNotEnrolled:
		return errHttpNotEnrolled
	case course.ErrMaterialNotFound:
		return errHttpMaterialNotFound
	case course.ErrAlreadyEnrolled:
		return errHttpAlreadyEnrolled
	}
	return err
}

// newAppHTTPErrorHandler returns a custom echo.HTTPErrorHandler that knows how to handle our errors.
// signalShutdown is called in order to gracefully shutdown the Server whenever a core.shutdown error is caught.
func newAppHTTPErrorHandler(logger core.Logger, translator ut.Translator, signalShutdown func()) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		var code int
		var message interface{}

		// no student yet: send them to the registration form
		if errors.Cause(err) == session.ErrNoStudent {
			if !ctx.Response().Committed {
				if rErr := ctx.Redirect(http.StatusSeeOther, registerPath); rErr != nil {
					ctx.Echo().Logger.Error(rErr)
				}
			}
			return
		}

		if fldErrs, ok := core.TranslateErrors(err, translator); ok {
			code = http.StatusBadRequest
			message = fldErrs
		} else {
			switch origErr := errors.Cause(httpError(err)).(type) {
			case *echo.HTTPError:
				if origErr.Internal != nil {
					if herr, ok := origErr.Internal.(*echo.HTTPError); ok {
						origErr = herr
					}
				}
				code = origErr.Code
				message = origErr.Message
			case *core.ValidationError:
				code = http.StatusBadRequest
				message = origErr.Error()
			default: // any other error is a server error
				code = http.StatusInternalServerError
				msg := http.StatusText(http.StatusInternalServerError)
				message = msg

				args := []interface{}{errors.Wrap(err, msg)}
				if std, ok := ctx.Get(ctxStudentKey).(studentValue); ok {
					args = append(args, std.Student)
				}
				logger.Error(msg, args...)

				// shutting down...
				if core.IsShutdown(err) {
					signalShutdown()
				}
			}
		}

		if ctx.Echo().Debug && code == http.StatusInternalServerError {
			message = err.Error()
		}
		if m, ok := message.(string); ok {
			message = echo.Map{"error": m}
		}

		// Send response
		if !ctx.Response().Committed {
			if ctx.Request().Method == http.MethodHead { // Issue #608
				err = ctx.NoContent(code)
			} else {
				err = ctx.JSON(code, message)
			}
			if err != nil {
				ctx.Echo().Logger.Error(err)
			}
		}
	}
}
