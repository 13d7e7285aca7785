package echoapi

import (
	"context"
	"net/http"
	"os"
	"syscall"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/Ayushpund/Acharya/core"
	"github.com/Ayushpund/Acharya/core/dashboard"
)

type (
	// NotificationSource hands out the notifications queued for the student.
	NotificationSource interface {
		Drain() []core.Notification
	}

	Options struct {
		AppName        string
		Address        string
		Debug          bool
		TestMode       bool
		DisableReqLogs bool
		Shutdown       chan os.Signal // receives SIGTERM on unrecoverable errors; may be nil

		Dashboard     *dashboard.Service
		Notifications NotificationSource
		Logger        core.Logger
		Validate      *validator.Validate
		Translator    ut.Translator
	}

	Server interface {
		http.Handler
		Start() error
		Stop(context.Context) error
	}

	server struct {
		opts *Options
		app  *echo.Echo
	}
)

var _ Server = (*server)(nil)

func NewServer(opts *Options) Server {
	s := &server{
		opts: opts,
		app:  echo.New(),
	}
	s.setup()
	return s
}

func (s *server) setup() {
	s.app.HideBanner = true
	s.app.Pre(middleware.RemoveTrailingSlash())
	s.app.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	if !s.opts.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(s.opts.Debug || s.opts.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.opts.Logger, s.opts.Translator, s.signalShutdown)
	s.app.Debug = s.opts.Debug && !s.opts.TestMode

	s.app.GET("/", s.home)

	session := studentSessionMiddleware(s.opts.Dashboard)
	registerStudentAPI(s.app.Group(""), session, s.opts.Dashboard, s.opts.Validate)
	registerCourseAPI(s.app.Group(""), session, s.opts.Dashboard, s.opts.Validate)
	registerRecommendationAPI(s.app.Group(""), session, s.opts.Dashboard, s.opts.Validate)
	registerNotificationAPI(s.app.Group(""), s.opts.Notifications)
}

func (s *server) Start() error {
	err := s.app.Start(s.opts.Address)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

func (s *server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func (s *server) signalShutdown() {
	if s.opts.Shutdown != nil {
		s.opts.Shutdown <- syscall.SIGTERM
	}
}

func (s *server) home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to "+s.opts.AppName+" API!")
}
