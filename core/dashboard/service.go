package dashboard

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/Ayushpund/Acharya/core"
	"github.com/Ayushpund/Acharya/core/course"
	"github.com/Ayushpund/Acharya/core/recommend"
	"github.com/Ayushpund/Acharya/core/session"
	"github.com/Ayushpund/Acharya/core/student"
)

type (
	// Recommender produces course recommendations for a request.
	Recommender interface {
		Request(ctx context.Context, req recommend.Request) (recommend.Recommendations, recommend.Outcome)
	}

	// RecommendationsView is what the dashboard shows in its recommendations panel.
	RecommendationsView struct {
		RecommendedCourses []recommend.CourseView `json:"recommendedCourses"`
		Status             recommend.Outcome      `json:"status"`
		Message            string                 `json:"message,omitempty"`
	}

	Deps struct {
		Session     *session.Session
		Catalog     *course.Catalog
		Recommender Recommender
		Notifier    core.Notifier
		Validate    *validator.Validate
		Logger      core.Logger
		VideoDelay  time.Duration
	}

	// Service runs the student dashboard actions against the local session.
	Service struct {
		sess        *session.Session
		catalog     *course.Catalog
		recommender Recommender
		notifier    core.Notifier
		validate    *validator.Validate
		logger      core.Logger
		videoDelay  time.Duration

		mu      sync.Mutex // serializes session writes with the video timers
		timers  map[string]videoTimer
		timerID uint64
	}

	// videoTimer identifies a running timer: a callback only acts on the entry it created.
	videoTimer struct {
		t  *time.Timer
		id uint64
	}
)

var afterFunc = time.AfterFunc // mockable

func NewService(deps Deps) *Service {
	return &Service{
		sess:        deps.Session,
		catalog:     deps.Catalog,
		recommender: deps.Recommender,
		notifier:    deps.Notifier,
		validate:    deps.Validate,
		logger:      deps.Logger,
		videoDelay:  deps.VideoDelay,
		timers:      make(map[string]videoTimer),
	}
}

// Register validates the form and starts a fresh session for the new student.
func (svc *Service) Register(ctx context.Context, reg student.Registration) (student.Student, error) {
	if err := reg.Validate(svc.validate); err != nil {
		return student.Student{}, err
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()

	svc.stopTimers()
	std := reg.Student()
	if err := svc.sess.Register(ctx, std); err != nil {
		return student.Student{}, errors.Wrap(err, "registering student")
	}
	svc.notify(core.NotifySuccess, "Registration Successful!", fmt.Sprintf("Welcome, %s! Your account has been created.", std.Name))
	return std, nil
}

// Logout drops every session key and cancels pending video timers.
func (svc *Service) Logout(ctx context.Context) error {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	svc.stopTimers()
	return svc.sess.Clear(ctx)
}

// Me returns the registered student or session.ErrNoStudent.
func (svc *Service) Me(ctx context.Context) (student.Student, error) {
	return svc.sess.Student(ctx)
}

// Catalog returns the catalog courses matching query (all of them for a blank query).
func (svc *Service) Catalog(query string) []course.Course {
	return svc.catalog.Search(query)
}

func (svc *Service) Enrollments(ctx context.Context) ([]course.Enrollment, error) {
	if _, err := svc.sess.Student(ctx); err != nil {
		return nil, err
	}
	return svc.sess.Enrollments(ctx)
}

// Enroll copies the catalog course into the student's enrollments.
func (svc *Service) Enroll(ctx context.Context, courseID string) (course.Enrollment, error) {
	crs, err := svc.catalog.Get(core.CleanString(courseID))
	if err != nil {
		return course.Enrollment{}, err
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()

	enrollments, err := svc.enrollments(ctx)
	if err != nil {
		return course.Enrollment{}, err
	}
	for _, e := range enrollments {
		if e.ID == crs.ID {
			svc.notify(core.NotifyError, "Already Enrolled", fmt.Sprintf("You are already enrolled in \"%s\".", crs.Title))
			return course.Enrollment{}, course.ErrAlreadyEnrolled
		}
	}

	enr := course.NewEnrollment(crs)
	if err = svc.sess.SetEnrollments(ctx, append(enrollments, enr)); err != nil {
		return course.Enrollment{}, errors.Wrap(err, "saving enrollments")
	}
	svc.notify(core.NotifySuccess, "Enrollment Successful!", fmt.Sprintf("You have successfully enrolled in \"%s\".", crs.Title))
	return enr, nil
}

// CompleteMaterial marks a material of an enrolled course as completed and updates its progress.
func (svc *Service) CompleteMaterial(ctx context.Context, courseID, url string) (course.Enrollment, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	enr, changed, err := svc.completeMaterial(ctx, courseID, url)
	if err != nil || !changed {
		return enr, err
	}
	if vt, ok := svc.timers[timerKey(courseID, url)]; ok {
		vt.t.Stop()
		delete(svc.timers, timerKey(courseID, url))
	}
	svc.notify(core.NotifySuccess, "Material Completed", fmt.Sprintf("Progress for \"%s\" updated to %d%%.", enr.Title, enr.Progress))
	return enr, nil
}

// StartVideo starts watching a video material: it is marked completed once the configured delay elapsed.
// It reports false when there is nothing to start (not a video, already completed or already started).
func (svc *Service) StartVideo(ctx context.Context, courseID, url string) (bool, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	enrollments, err := svc.enrollments(ctx)
	if err != nil {
		return false, err
	}
	idx := indexOf(enrollments, courseID)
	if idx < 0 {
		return false, course.ErrNotEnrolled
	}
	enr := enrollments[idx]
	mIdx := enr.Material(url)
	if mIdx < 0 {
		return false, course.ErrMaterialNotFound
	}
	material := enr.LearningMaterials[mIdx]
	key := timerKey(courseID, url)
	if _, pending := svc.timers[key]; material.Type != course.MaterialVideo || material.Completed || pending {
		return false, nil
	}

	svc.notify(core.NotifyInfo, "Video Material Started", fmt.Sprintf(
		"\"%s\" for course \"%s\" has started. Progress will update in %s.",
		material.Title, enr.Title, humanizeDelay(svc.videoDelay),
	))
	svc.timerID++
	id := svc.timerID
	svc.timers[key] = videoTimer{
		t:  afterFunc(svc.videoDelay, func() { svc.finishVideo(courseID, url, id) }),
		id: id,
	}
	return true, nil
}

// PendingVideos returns how many video timers are running.
func (svc *Service) PendingVideos() int {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	return len(svc.timers)
}

func (svc *Service) finishVideo(courseID, url string, id uint64) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	key := timerKey(courseID, url)
	// stopped by logout or registration, or replaced by a later start
	if vt, ok := svc.timers[key]; !ok || vt.id != id {
		return
	}
	delete(svc.timers, key)

	enr, changed, err := svc.completeMaterial(context.Background(), courseID, url)
	if err != nil {
		svc.logger.Warn("dashboard: completing watched video", errors.Wrapf(err, "course %s", courseID))
		return
	}
	if changed {
		svc.notify(core.NotifySuccess, "Video Material Completed!", fmt.Sprintf("Progress for \"%s\" updated to %d%%.", enr.Title, enr.Progress))
	}
}

// Overview summarizes the progress over all enrollments.
func (svc *Service) Overview(ctx context.Context) (course.Overview, error) {
	enrollments, err := svc.Enrollments(ctx)
	if err != nil {
		return course.Overview{}, err
	}
	return course.Summarize(enrollments), nil
}

// Recommend runs the recommendation pipeline for the current student.
// An empty result is never an error: it comes with the empty-state message.
func (svc *Service) Recommend(ctx context.Context) (RecommendationsView, error) {
	profile, err := svc.sess.Profile(ctx)
	if err != nil {
		return RecommendationsView{}, err
	}
	completed, err := svc.sess.CompletedRecommended(ctx)
	if err != nil {
		return RecommendationsView{}, err
	}

	recs, outcome := svc.recommender.Request(ctx, recommend.Aggregate(profile))
	view := RecommendationsView{
		RecommendedCourses: recommend.View(recs, completed),
		Status:             outcome,
	}
	if len(view.RecommendedCourses) == 0 {
		view.Message = recommend.EmptyStateMessage
	}
	return view, nil
}

// MarkRecommendedComplete records a recommended material as completed. Marking it twice is a no-op.
func (svc *Service) MarkRecommendedComplete(ctx context.Context, title, url string) error {
	if url = core.CleanString(url); url == "" {
		return core.NewValidationError(errors.New("invalid material"), core.FieldError{Field: "url", Error: "this field is required"})
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()

	if _, err := svc.sess.Student(ctx); err != nil {
		return err
	}
	added, err := svc.sess.AddCompletedRecommended(ctx, url)
	if err != nil || !added {
		return err
	}
	svc.notify(core.NotifySuccess, "Material Marked Complete", fmt.Sprintf("\"%s\" from recommendations marked as complete.", title))
	return nil
}

// Close cancels pending video timers.
func (svc *Service) Close() {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	svc.stopTimers()
}

// enrollments loads the enrollments of the registered student; callers hold mu.
func (svc *Service) enrollments(ctx context.Context) ([]course.Enrollment, error) {
	if _, err := svc.sess.Student(ctx); err != nil {
		return nil, err
	}
	return svc.sess.Enrollments(ctx)
}

// completeMaterial marks url completed in course courseID and saves; callers hold mu.
func (svc *Service) completeMaterial(ctx context.Context, courseID, url string) (course.Enrollment, bool, error) {
	enrollments, err := svc.enrollments(ctx)
	if err != nil {
		return course.Enrollment{}, false, err
	}
	idx := indexOf(enrollments, courseID)
	if idx < 0 {
		return course.Enrollment{}, false, course.ErrNotEnrolled
	}
	changed, err := enrollments[idx].CompleteMaterial(url)
	if err != nil || !changed {
		return enrollments[idx], false, err
	}
	if err = svc.sess.SetEnrollments(ctx, enrollments); err != nil {
		return course.Enrollment{}, false, errors.Wrap(err, "saving enrollments")
	}
	return enrollments[idx], true, nil
}

// stopTimers cancels all pending video timers; callers hold mu.
func (svc *Service) stopTimers() {
	for key, vt := range svc.timers {
		vt.t.Stop()
		delete(svc.timers, key)
	}
}

func (svc *Service) notify(kind core.NotificationKind, title, description string) {
	svc.notifier.Notify(core.NewNotification(kind, title, description))
}

func indexOf(enrollments []course.Enrollment, courseID string) int {
	for i, e := range enrollments {
		if e.ID == courseID {
			return i
		}
	}
	return -1
}

func timerKey(courseID, url string) string {
	return courseID + "|" + url
}

func humanizeDelay(d time.Duration) string {
	if d >= time.Second && d%time.Second == 0 {
		return fmt.Sprintf("%d seconds", int(d/time.Second))
	}
	return d.String()
}
