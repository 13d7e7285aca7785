package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewConfig(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("TEST_LLM_PROVIDER", "Dummy")
	t.Setenv("TEST_LLM_BASEURL", "http://localhost:9999/")
	t.Setenv("TEST_STORE_DRIVER", "memory")
	t.Setenv("TEST_PROGRESS_VIDEOCOMPLETIONDELAY", "2s")
	t.Setenv("TEST_NOTIFY_FROMEMAIL", "CourseCompass <hello@coursecompass.dev>")

	conf := NewConfig()

	assert.Equal(t, "TEST", conf.Env)
	assert.True(t, conf.TestMode)
	assert.Equal(t, "CourseCompass", conf.AppName)
	assert.Equal(t, "dummy", conf.LLM.Provider)
	assert.Equal(t, "http://localhost:9999", conf.LLM.BaseURL)
	assert.Equal(t, "memory", conf.Store.Driver)
	assert.Equal(t, 2*time.Second, conf.Progress.VideoCompletionDelay)
	assert.Equal(t, 60*time.Second, conf.LLM.Timeout)
	assert.Equal(t, "hello@coursecompass.dev", conf.Notify.FromEmail.Address)
	assert.Equal(t, "CourseCompass", conf.Notify.FromEmail.Name)
}

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{0, 0},
		{33.333, 33},
		{49.5, 50},
		{66.666, 67},
		{100, 100},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RoundHalfUp(tt.in), "RoundHalfUp(%v)", tt.in)
	}
}
