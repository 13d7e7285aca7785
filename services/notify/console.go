package notifysvc

import (
	"log"
	"sync"

	"github.com/Ayushpund/Acharya/core"
)

// ConsoleService prints notifications and queues them until a client drains them.
type ConsoleService struct {
	std           *log.Logger
	disableOutput bool

	mu     sync.Mutex
	queued []core.Notification
}

var _ core.Notifier = (*ConsoleService)(nil)

func NewConsoleService(std *log.Logger) *ConsoleService {
	return &ConsoleService{std: std}
}

// NewConsoleServiceMock returns a ConsoleService that only queues.
func NewConsoleServiceMock() *ConsoleService {
	return &ConsoleService{disableOutput: true}
}

func (svc *ConsoleService) Notify(notifications ...core.Notification) {
	svc.mu.Lock()
	svc.queued = append(svc.queued, notifications...)
	svc.mu.Unlock()

	if svc.disableOutput {
		return
	}
	for _, n := range notifications {
		svc.std.Printf("[%s] %s: %s\n", n.Kind, n.Title, n.Description)
	}
}

// Drain returns the queued notifications, oldest first, and empties the queue.
func (svc *ConsoleService) Drain() []core.Notification {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	drained := svc.queued
	svc.queued = nil
	if drained == nil {
		drained = make([]core.Notification, 0)
	}
	return drained
}
