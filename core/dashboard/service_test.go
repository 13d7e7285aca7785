package dashboard

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/Ayushpund/Acharya/core"
	"github.com/Ayushpund/Acharya/core/course"
	"github.com/Ayushpund/Acharya/core/recommend"
	"github.com/Ayushpund/Acharya/core/session"
	"github.com/Ayushpund/Acharya/core/student"
	notifysvc "github.com/Ayushpund/Acharya/services/notify"
	inmemdb "github.com/Ayushpund/Acharya/storage/database/inmem"
	"github.com/Ayushpund/Acharya/tests"
)

const (
	video1  = "https://www.youtube.com/watch?v=example1"
	article = "https://example.com/core-concepts"
	video2  = "https://www.youtube.com/watch?v=example2"
)

type fixture struct {
	svc      *Service
	sess     *session.Session
	notifier *notifysvc.ConsoleService
	logger   *testutil.Logger
	pending  []func()
}

// setup builds a Service whose video timers only fire through fx.fire.
func setup(t *testing.T, gen recommend.Generator) *fixture {
	validate, translator := testutil.NewValidator()
	student.InitValidators(validate, translator)

	fx := &fixture{
		notifier: notifysvc.NewConsoleServiceMock(),
		logger:   testutil.NewLogger(),
	}
	fx.sess = session.New(inmemdb.NewKVStore(), fx.logger)
	if gen == nil {
		gen = testutil.StaticGenerator(`{"recommendedCourses":[]}`, nil)
	}
	fx.svc = NewService(Deps{
		Session:     fx.sess,
		Catalog:     course.DefaultCatalog(),
		Recommender: recommend.NewRequester(gen, validate, fx.logger),
		Notifier:    fx.notifier,
		Validate:    validate,
		Logger:      fx.logger,
		VideoDelay:  15 * time.Second,
	})

	afterFunc = func(_ time.Duration, f func()) *time.Timer {
		fx.pending = append(fx.pending, f)
		return time.NewTimer(time.Hour)
	}
	t.Cleanup(func() {
		fx.svc.Close()
		afterFunc = time.AfterFunc
	})
	return fx
}

func (fx *fixture) fire() {
	for _, f := range fx.pending {
		f()
	}
	fx.pending = nil
}

func (fx *fixture) register(t *testing.T) {
	_, err := fx.svc.Register(context.Background(), student.Registration{Name: "Asha", Age: 19, InterestedCourse: "Security", Password: "s3cure-pass"})
	if err != nil {
		t.Fatalf("register() failed: %v", err)
	}
	fx.notifier.Drain()
}

func titles(ns []core.Notification) []string {
	res := make([]string, 0, len(ns))
	for _, n := range ns {
		res = append(res, n.Title)
	}
	return res
}

func TestService_Register(t *testing.T) {
	ctx := context.Background()
	fx := setup(t, nil)

	_, err := fx.svc.Register(ctx, student.Registration{Name: "A", Age: 19, Password: "s3cure-pass"})
	assert.Error(t, err)
	_, err = fx.svc.Me(ctx)
	assert.Equal(t, session.ErrNoStudent, err)

	std, err := fx.svc.Register(ctx, student.Registration{Name: "Asha", Age: 19, Password: "s3cure-pass"})
	assert.NoError(t, err)
	assert.Equal(t, "Asha", std.Name)

	ns := fx.notifier.Drain()
	if assert.Len(t, ns, 1) {
		assert.Equal(t, "Registration Successful!", ns[0].Title)
		assert.Equal(t, "Welcome, Asha! Your account has been created.", ns[0].Description)
	}

	me, err := fx.svc.Me(ctx)
	assert.NoError(t, err)
	assert.Equal(t, std, me)
}

func TestService_RequiresStudent(t *testing.T) {
	ctx := context.Background()
	fx := setup(t, nil)

	_, err := fx.svc.Enroll(ctx, "av101")
	assert.Equal(t, session.ErrNoStudent, errors.Cause(err))
	_, err = fx.svc.Enrollments(ctx)
	assert.Equal(t, session.ErrNoStudent, errors.Cause(err))
	_, err = fx.svc.Overview(ctx)
	assert.Equal(t, session.ErrNoStudent, errors.Cause(err))
	_, err = fx.svc.Recommend(ctx)
	assert.Equal(t, session.ErrNoStudent, errors.Cause(err))
	_, err = fx.svc.StartVideo(ctx, "av101", video1)
	assert.Equal(t, session.ErrNoStudent, errors.Cause(err))
	err = fx.svc.MarkRecommendedComplete(ctx, "t", "https://example.com/t")
	assert.Equal(t, session.ErrNoStudent, errors.Cause(err))
}

func TestService_Enroll(t *testing.T) {
	ctx := context.Background()
	fx := setup(t, nil)
	fx.register(t)

	tests := []struct {
		name      string
		courseID  string
		wantErr   error
		wantToast string
	}{
		{name: "new course", courseID: "av102", wantToast: "Enrollment Successful!"},
		{name: "another course", courseID: " av301 ", wantToast: "Enrollment Successful!"},
		{name: "already enrolled", courseID: "av102", wantErr: course.ErrAlreadyEnrolled, wantToast: "Already Enrolled"},
		{name: "unknown course", courseID: "zz999", wantErr: course.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enr, err := fx.svc.Enroll(ctx, tt.courseID)
			if errors.Cause(err) != tt.wantErr {
				t.Fatalf("Enroll() error = %v, wantErr %v", err, tt.wantErr)
			}
			ns := fx.notifier.Drain()
			if tt.wantToast == "" {
				assert.Empty(t, ns)
				return
			}
			assert.Equal(t, []string{tt.wantToast}, titles(ns))
			if tt.wantErr == nil {
				assert.Equal(t, 0, enr.Progress)
			}
		})
	}

	enrollments, err := fx.svc.Enrollments(ctx)
	assert.NoError(t, err)
	if assert.Len(t, enrollments, 2) {
		assert.Equal(t, "av102", enrollments[0].ID)
		assert.Equal(t, "av301", enrollments[1].ID)
	}
}

func TestService_CompleteMaterial(t *testing.T) {
	ctx := context.Background()
	fx := setup(t, nil)
	fx.register(t)
	_, _ = fx.svc.Enroll(ctx, "av102")
	_, _ = fx.svc.Enroll(ctx, "av301")
	fx.notifier.Drain()

	tests := []struct {
		name         string
		courseID     string
		url          string
		wantProgress int
		wantErr      error
		wantToasts   int
	}{
		{name: "first material", courseID: "av102", url: article, wantProgress: 33, wantToasts: 1},
		{name: "same material", courseID: "av102", url: article, wantProgress: 33},
		{name: "unknown material", courseID: "av102", url: "https://example.com/x", wantErr: course.ErrMaterialNotFound},
		{name: "not enrolled", courseID: "av101", url: article, wantErr: course.ErrNotEnrolled},
		{name: "course without materials", courseID: "av301", url: article, wantErr: course.ErrMaterialNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enr, err := fx.svc.CompleteMaterial(ctx, tt.courseID, tt.url)
			if errors.Cause(err) != tt.wantErr {
				t.Fatalf("CompleteMaterial() error = %v, wantErr %v", err, tt.wantErr)
			}
			assert.Len(t, fx.notifier.Drain(), tt.wantToasts)
			if tt.wantErr == nil {
				assert.Equal(t, tt.wantProgress, enr.Progress)
			}
		})
	}
}

func TestService_StartVideo(t *testing.T) {
	ctx := context.Background()
	fx := setup(t, nil)
	fx.register(t)
	_, _ = fx.svc.Enroll(ctx, "av102")
	fx.notifier.Drain()

	started, err := fx.svc.StartVideo(ctx, "av102", video1)
	assert.NoError(t, err)
	assert.True(t, started)
	ns := fx.notifier.Drain()
	if assert.Len(t, ns, 1) {
		assert.Equal(t, "Video Material Started", ns[0].Title)
		assert.Equal(t, `"Module 1: Introduction" for course "Ethical Hacking & Cybersecurity" has started. Progress will update in 15 seconds.`, ns[0].Description)
	}

	// already pending, articles and unknown materials start nothing
	started, err = fx.svc.StartVideo(ctx, "av102", video1)
	assert.NoError(t, err)
	assert.False(t, started)
	started, err = fx.svc.StartVideo(ctx, "av102", article)
	assert.NoError(t, err)
	assert.False(t, started)
	_, err = fx.svc.StartVideo(ctx, "av102", "https://example.com/nope")
	assert.Equal(t, course.ErrMaterialNotFound, err)
	_, err = fx.svc.StartVideo(ctx, "av999", video1)
	assert.Equal(t, course.ErrNotEnrolled, err)
	assert.Equal(t, 1, fx.svc.PendingVideos())

	fx.fire()
	assert.Equal(t, 0, fx.svc.PendingVideos())
	ns = fx.notifier.Drain()
	if assert.Len(t, ns, 1) {
		assert.Equal(t, "Video Material Completed!", ns[0].Title)
		assert.Equal(t, `Progress for "Ethical Hacking & Cybersecurity" updated to 33%.`, ns[0].Description)
	}

	enrollments, _ := fx.svc.Enrollments(ctx)
	assert.Equal(t, 33, enrollments[0].Progress)
	assert.True(t, enrollments[0].LearningMaterials[0].Completed)

	// completed videos do not restart
	started, err = fx.svc.StartVideo(ctx, "av102", video1)
	assert.NoError(t, err)
	assert.False(t, started)
}

func TestService_LogoutStopsVideos(t *testing.T) {
	ctx := context.Background()
	fx := setup(t, nil)
	fx.register(t)
	_, _ = fx.svc.Enroll(ctx, "av102")
	_, _ = fx.svc.StartVideo(ctx, "av102", video2)
	fx.notifier.Drain()

	assert.NoError(t, fx.svc.Logout(ctx))
	assert.Equal(t, 0, fx.svc.PendingVideos())

	fx.fire() // a timer firing after logout changes nothing
	assert.Empty(t, fx.notifier.Drain())
	_, err := fx.svc.Me(ctx)
	assert.Equal(t, session.ErrNoStudent, err)
}

func TestService_StaleVideoTimer(t *testing.T) {
	ctx := context.Background()
	fx := setup(t, nil)
	fx.register(t)
	_, _ = fx.svc.Enroll(ctx, "av102")
	_, _ = fx.svc.StartVideo(ctx, "av102", video1)
	stale := fx.pending[0]

	// a new session starts the same video before the old callback runs
	assert.NoError(t, fx.svc.Logout(ctx))
	fx.register(t)
	_, _ = fx.svc.Enroll(ctx, "av102")
	started, err := fx.svc.StartVideo(ctx, "av102", video1)
	assert.NoError(t, err)
	assert.True(t, started)
	fx.notifier.Drain()

	stale()
	assert.Equal(t, 1, fx.svc.PendingVideos())
	enrollments, _ := fx.svc.Enrollments(ctx)
	assert.Equal(t, 0, enrollments[0].Progress)
	assert.Empty(t, fx.notifier.Drain())

	fx.pending[1]()
	assert.Equal(t, 0, fx.svc.PendingVideos())
	enrollments, _ = fx.svc.Enrollments(ctx)
	assert.Equal(t, 33, enrollments[0].Progress)
}

func TestService_RealTimer(t *testing.T) {
	ctx := context.Background()
	fx := setup(t, nil)
	afterFunc = time.AfterFunc
	fx.svc.videoDelay = 10 * time.Millisecond
	fx.register(t)
	_, _ = fx.svc.Enroll(ctx, "av401") // a single video

	started, err := fx.svc.StartVideo(ctx, "av401", video1)
	assert.NoError(t, err)
	assert.True(t, started)

	assert.Eventually(t, func() bool {
		enrollments, err := fx.svc.Enrollments(ctx)
		return err == nil && enrollments[0].Progress == 100
	}, time.Second, 5*time.Millisecond)
}

func TestService_Overview(t *testing.T) {
	ctx := context.Background()
	fx := setup(t, nil)
	fx.register(t)

	for _, id := range []string{"av101", "av102", "av401", "av501"} {
		_, _ = fx.svc.Enroll(ctx, id)
	}
	_, _ = fx.svc.CompleteMaterial(ctx, "av101", video1)  // 50
	_, _ = fx.svc.CompleteMaterial(ctx, "av401", video1)  // 100
	_, _ = fx.svc.CompleteMaterial(ctx, "av102", article) // 33

	ov, err := fx.svc.Overview(ctx)
	assert.NoError(t, err)
	assert.Equal(t, course.Overview{TotalCourses: 4, Completed: 1, InProgress: 2, NotStarted: 1, AverageProgress: 46}, ov)
}

func TestService_Recommend(t *testing.T) {
	ctx := context.Background()

	reply := `{"recommendedCourses":[{"name":"Network Security","reason":"Builds on your cybersecurity course",` +
		`"learningMaterials":[{"type":"video","title":"Firewalls","url":"https://www.youtube.com/watch?v=fw"},` +
		`{"type":"article","title":"Zero Trust","url":"https://example.com/zero-trust"}]}]}`

	t.Run("recommendations with completed markers", func(t *testing.T) {
		var gotPrompt string
		gen := testutil.GeneratorFunc(func(_ context.Context, _, user string) (json.RawMessage, error) {
			gotPrompt = user
			return json.RawMessage(reply), nil
		})
		fx := setup(t, gen)
		fx.register(t)
		_, _ = fx.svc.Enroll(ctx, "av102")

		assert.NoError(t, fx.svc.MarkRecommendedComplete(ctx, "Zero Trust", "https://example.com/zero-trust"))
		assert.NoError(t, fx.svc.MarkRecommendedComplete(ctx, "Zero Trust", "https://example.com/zero-trust"))
		fx.notifier.Drain()

		view, err := fx.svc.Recommend(ctx)
		assert.NoError(t, err)
		assert.Equal(t, recommend.OutcomeRecommended, view.Status)
		assert.Empty(t, view.Message)
		if assert.Len(t, view.RecommendedCourses, 1) {
			mats := view.RecommendedCourses[0].LearningMaterials
			assert.False(t, mats[0].Completed)
			assert.True(t, mats[1].Completed)
		}
		assert.Contains(t, gotPrompt, "Enrollment History: Ethical Hacking & Cybersecurity\n")
		assert.Contains(t, gotPrompt, "Age: 19\n")
		assert.Contains(t, gotPrompt, "Stated Interest: Security\n")
	})

	t.Run("model failure shows the empty state", func(t *testing.T) {
		fx := setup(t, testutil.StaticGenerator("", errors.New("service unavailable")))
		fx.register(t)

		view, err := fx.svc.Recommend(ctx)
		assert.NoError(t, err)
		assert.Equal(t, recommend.OutcomeUnavailable, view.Status)
		assert.Equal(t, recommend.EmptyStateMessage, view.Message)
		assert.NotNil(t, view.RecommendedCourses)
		assert.Empty(t, view.RecommendedCourses)
	})
}

func TestService_MarkRecommendedComplete(t *testing.T) {
	ctx := context.Background()
	fx := setup(t, nil)
	fx.register(t)

	assert.NoError(t, fx.svc.MarkRecommendedComplete(ctx, "Zero Trust", "https://example.com/zero-trust"))
	ns := fx.notifier.Drain()
	if assert.Len(t, ns, 1) {
		assert.Equal(t, "Material Marked Complete", ns[0].Title)
		assert.Equal(t, `"Zero Trust" from recommendations marked as complete.`, ns[0].Description)
	}

	assert.NoError(t, fx.svc.MarkRecommendedComplete(ctx, "Zero Trust", "https://example.com/zero-trust"))
	assert.Empty(t, fx.notifier.Drain())

	err := fx.svc.MarkRecommendedComplete(ctx, "Zero Trust", "  ")
	_, ok := errors.Cause(err).(*core.ValidationError)
	assert.True(t, ok)
}
