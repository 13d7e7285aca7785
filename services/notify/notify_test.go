package notifysvc

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"net/mail"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ayushpund/Acharya/core"
	"github.com/Ayushpund/Acharya/tests"
)

func TestConsoleService(t *testing.T) {
	var buf bytes.Buffer
	svc := NewConsoleService(log.New(&buf, "", 0))

	assert.Equal(t, []core.Notification{}, svc.Drain())

	first := core.NewNotification(core.NotifySuccess, "Enrollment Successful!", `You have successfully enrolled in "AI".`)
	second := core.NewNotification(core.NotifyInfo, "Video Material Started", "started")
	svc.Notify(first)
	svc.Notify(second)

	assert.Contains(t, buf.String(), `[success] Enrollment Successful!: You have successfully enrolled in "AI".`)
	assert.Equal(t, []core.Notification{first, second}, svc.Drain())
	assert.Empty(t, svc.Drain())
}

func TestConsoleServiceMock(t *testing.T) {
	svc := NewConsoleServiceMock()
	n := core.NewNotification(core.NotifyError, "Already Enrolled", "again")
	svc.Notify(n)
	assert.Equal(t, []core.Notification{n}, svc.Drain())
}

func TestMulti(t *testing.T) {
	a, b := NewConsoleServiceMock(), NewConsoleServiceMock()
	n := core.NewNotification(core.NotifySuccess, "t", "d")
	Multi(a, b).Notify(n)
	assert.Len(t, a.Drain(), 1)
	assert.Len(t, b.Drain(), 1)
}

func TestSendgridService(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		wantErrLog bool
	}{
		{name: "accepted", statusCode: http.StatusAccepted},
		{name: "rejected", statusCode: http.StatusUnauthorized, wantErrLog: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotBody map[string]interface{}
			var gotAuth string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotAuth = r.Header.Get("Authorization")
				data, _ := io.ReadAll(r.Body)
				_ = json.Unmarshal(data, &gotBody)
				w.WriteHeader(tt.statusCode)
			}))
			defer srv.Close()

			origHost := host
			host = srv.URL
			defer func() { host = origHost }()

			conf := core.NewTestConfig()
			conf.Notify.SendgridAPIKey = "SG.key"
			conf.Notify.FromEmail = mail.Address{Name: "CourseCompass", Address: "noreply@example.com"}
			conf.Notify.ToEmail = "asha@example.com"
			logger := testutil.NewLogger()

			svc := NewSendgridService(conf, logger).(*sendgridService)
			svc.sync = true
			svc.Notify(core.NewNotification(core.NotifySuccess, "Registration Successful!", "Welcome, Asha!"))

			assert.Equal(t, "Bearer SG.key", gotAuth)
			assert.Equal(t, "[CourseCompass] Registration Successful!", gotBody["subject"])
			assert.Equal(t, tt.wantErrLog, len(logger.Entries("error")) > 0)
		})
	}
}
