package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Ayushpund/Acharya/core"
)

type notificationApi struct {
	source NotificationSource
}

func registerNotificationAPI(g *echo.Group, source NotificationSource) {
	api := notificationApi{source: source}

	g.GET("/notifications", api.drain)
}

// drain hands out the pending toasts once.
func (api *notificationApi) drain(ctx echo.Context) error {
	notifications := []core.Notification{}
	if api.source != nil {
		notifications = append(notifications, api.source.Drain()...)
	}
	return ctx.JSON(http.StatusOK, notifications)
}
