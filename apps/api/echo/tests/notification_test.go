package tests

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/Ayushpund/Acharya/apps/api/echo"
	"github.com/Ayushpund/Acharya/core"
)

func TestNotifications(t *testing.T) {
	registerStudent(t, "")
	require.Equal(t, http.StatusCreated, serve(http.MethodPost, "/enrollments", marchallObj(t, EnrollRequest{CourseID: "av201"})).Code)

	rec := serve(http.MethodGet, "/notifications")
	assert.Equal(t, http.StatusOK, rec.Code)

	var ns []core.Notification
	if assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ns)) && assert.Len(t, ns, 1) {
		assert.Equal(t, core.NotifySuccess, ns[0].Kind)
		assert.Equal(t, "Enrollment Successful!", ns[0].Title)
		assert.Equal(t, `You have successfully enrolled in "Introduction to Graphic Design".`, ns[0].Description)
	}

	// drained
	checkCodeAndData(t, httpTest{
		wantCode: http.StatusOK,
		wantData: []byte(`[]`),
	}, serve(http.MethodGet, "/notifications"))
}
