package shared

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ayushpund/Acharya/core"
	"github.com/Ayushpund/Acharya/core/student"
	llmsvc "github.com/Ayushpund/Acharya/services/llm"
	notifysvc "github.com/Ayushpund/Acharya/services/notify"
	testutil "github.com/Ayushpund/Acharya/tests"
)

func TestNewStore(t *testing.T) {
	tests := []struct {
		name    string
		driver  string
		wantDB  bool
		wantErr string
	}{
		{name: "memory", driver: DriverMemory},
		{name: "sqlite", driver: DriverSQLite, wantDB: true},
		{name: "unknown", driver: "redis", wantErr: `unknown store driver "redis"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf := core.NewTestConfig()
			conf.Store.Driver = tt.driver
			conf.Store.Path = filepath.Join(t.TempDir(), "session.db")

			store, db, err := NewStore(conf)
			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			defer store.Close()
			assert.Equal(t, tt.wantDB, db != nil)

			ctx := context.Background()
			require.NoError(t, store.Set(ctx, "studentName", "Asha"))
			got, err := store.Get(ctx, "studentName")
			assert.NoError(t, err)
			assert.Equal(t, "Asha", got)
		})
	}
}

func TestNewGenerator(t *testing.T) {
	tests := []struct {
		name     string
		provider string
		apiKey   string
		wantType interface{}
		wantErr  string
	}{
		{name: "dummy", provider: ProviderDummy, wantType: &llmsvc.DummyGenerator{}},
		{name: "openai", provider: ProviderOpenAI, apiKey: "sk-test", wantType: &llmsvc.OpenAIClient{}},
		{name: "openai without key", provider: ProviderOpenAI, wantErr: "llm.apiKey is required by the openai provider"},
		{name: "unknown", provider: "llama", wantErr: `unknown llm provider "llama"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf := core.NewTestConfig()
			conf.LLM.Provider = tt.provider
			conf.LLM.APIKey = tt.apiKey

			gen, err := NewGenerator(conf, nil)
			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.wantType, gen)
		})
	}
}

func TestNewNotifier(t *testing.T) {
	console := notifysvc.NewConsoleServiceMock()

	conf := core.NewTestConfig()
	assert.Same(t, console, NewNotifier(conf, testutil.NewLogger(), console))

	conf.Notify.SendgridAPIKey = "SG.key"
	conf.Notify.ToEmail = "asha@example.com"
	assert.NotSame(t, console, NewNotifier(conf, testutil.NewLogger(), console))
}

func TestSetup(t *testing.T) {
	d, err := Setup(core.NewTestConfig(), testutil.NewLogger(), nil)
	require.NoError(t, err)
	defer d.Close()

	ctx := context.Background()
	std, err := d.Dashboard.Register(ctx, student.Registration{
		Name:     "Asha Verma",
		Age:      21,
		Password: "s3cure-Passw0rd",
	})
	require.NoError(t, err)
	assert.Equal(t, "Asha Verma", std.Name)

	_, err = d.Dashboard.Enroll(ctx, "av101")
	require.NoError(t, err)

	view, err := d.Dashboard.Recommend(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, view.RecommendedCourses)

	assert.Len(t, d.Notifications.Drain(), 2)
}

func TestSetup_Errors(t *testing.T) {
	conf := core.NewTestConfig()
	conf.LLM.Provider = "llama"
	_, err := Setup(conf, testutil.NewLogger(), nil)
	assert.EqualError(t, err, `setting up recommendation model: unknown llm provider "llama"`)

	conf = core.NewTestConfig()
	conf.Store.Driver = "redis"
	_, err = Setup(conf, testutil.NewLogger(), nil)
	assert.EqualError(t, err, `setting up store: unknown store driver "redis"`)
}
