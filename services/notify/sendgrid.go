package notifysvc

import (
	"fmt"
	"html"
	"net/http"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/Ayushpund/Acharya/core"
)

var (
	host     = "https://api.sendgrid.com"
	endpoint = "/v3/mail/send"
)

// sendgridService mirrors notifications to the student's mailbox.
type sendgridService struct {
	key        string
	from       *sgmail.Email
	to         *sgmail.Email
	subjPrefix string
	logger     core.Logger
	sync       bool
}

var _ core.Notifier = (*sendgridService)(nil)

func NewSendgridService(conf *core.Config, logger core.Logger) core.Notifier {
	return &sendgridService{
		key:        conf.Notify.SendgridAPIKey,
		from:       sgmail.NewEmail(conf.Notify.FromEmail.Name, conf.Notify.FromEmail.Address),
		to:         sgmail.NewEmail("", conf.Notify.ToEmail),
		subjPrefix: "[" + conf.AppName + "] ",
		logger:     logger,
	}
}

func (svc *sendgridService) Notify(notifications ...core.Notification) {
	for _, n := range notifications {
		n := n
		if svc.sync {
			svc.send(n)
			continue
		}
		go svc.send(n)
	}
}

func (svc *sendgridService) prepare(n core.Notification) *sgmail.SGMailV3 {
	return sgmail.NewSingleEmail(
		svc.from,
		svc.subjPrefix+n.Title,
		svc.to,
		n.Description,
		"<p>"+html.EscapeString(n.Description)+"</p>",
	)
}

func (svc *sendgridService) send(n core.Notification) {
	req := sendgrid.GetRequest(svc.key, endpoint, host)
	req.Method = http.MethodPost
	req.Body = sgmail.GetRequestBody(svc.prepare(n))

	res, err := sendgrid.API(req)
	if err != nil {
		svc.logger.Error(fmt.Sprintf("sending notification email: %v", err), err)
	} else if res.StatusCode >= http.StatusBadRequest {
		svc.logger.Error(fmt.Sprintf("sending notification email - status: %d - Body: %s", res.StatusCode, res.Body))
	}
}
