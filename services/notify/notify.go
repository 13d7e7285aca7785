package notifysvc

import "github.com/Ayushpund/Acharya/core"

type multi []core.Notifier

// Multi fans notifications out to every notifier, in order.
func Multi(notifiers ...core.Notifier) core.Notifier {
	return multi(notifiers)
}

func (m multi) Notify(notifications ...core.Notification) {
	for _, n := range m {
		n.Notify(notifications...)
	}
}
