package session

import (
	"context"
	"encoding/json"
	"reflect"
	"strconv"

	"github.com/pkg/errors"

	"github.com/Ayushpund/Acharya/core"
	"github.com/Ayushpund/Acharya/core/course"
	"github.com/Ayushpund/Acharya/core/recommend"
	"github.com/Ayushpund/Acharya/core/student"
)

// Store keys, shared with any other client of the same local store.
const (
	KeyStudentName          = "studentName"
	KeyStudentAge           = "studentAge"
	KeyInterestedCourse     = "interestedCourse"
	KeyEnrolledCourses      = "enrolledCourses"
	KeyCompletedRecommended = "completedAiRecommendedMaterials"
)

// AllKeys lists every key the session owns.
var AllKeys = []string{
	KeyStudentName,
	KeyStudentAge,
	KeyInterestedCourse,
	KeyEnrolledCourses,
	KeyCompletedRecommended,
}

// ErrNoStudent is returned when the session holds no registered student.
var ErrNoStudent = errors.New("no registered student")

type completedMaterial struct {
	MaterialURL string `json:"materialUrl"`
}

// Session gives typed access to the student state kept in a local key/value store.
// Corrupted values are logged, discarded and read as empty.
type Session struct {
	store  core.KVStore
	logger core.Logger
}

func New(store core.KVStore, logger core.Logger) *Session {
	return &Session{store: store, logger: logger}
}

// Student returns the registered student or ErrNoStudent.
func (s *Session) Student(ctx context.Context) (student.Student, error) {
	name, err := s.get(ctx, KeyStudentName)
	if err != nil {
		return student.Student{}, err
	}
	if name == "" {
		return student.Student{}, ErrNoStudent
	}
	std := student.Student{Name: name}

	if std.Age, err = s.age(ctx); err != nil {
		return student.Student{}, err
	}
	if std.InterestedCourse, err = s.get(ctx, KeyInterestedCourse); err != nil {
		return student.Student{}, err
	}
	return std, nil
}

// Register stores a freshly registered student and drops any previous enrollment list.
func (s *Session) Register(ctx context.Context, std student.Student) error {
	if err := s.store.Set(ctx, KeyStudentName, std.Name); err != nil {
		return errors.Wrap(err, "storing student name")
	}
	if std.Age != nil {
		if err := s.store.Set(ctx, KeyStudentAge, strconv.Itoa(*std.Age)); err != nil {
			return errors.Wrap(err, "storing student age")
		}
	} else if err := s.store.Delete(ctx, KeyStudentAge); err != nil {
		return errors.Wrap(err, "deleting student age")
	}
	if std.InterestedCourse != "" {
		if err := s.store.Set(ctx, KeyInterestedCourse, std.InterestedCourse); err != nil {
			return errors.Wrap(err, "storing interested course")
		}
	} else if err := s.store.Delete(ctx, KeyInterestedCourse); err != nil {
		return errors.Wrap(err, "deleting interested course")
	}
	return errors.Wrap(s.store.Delete(ctx, KeyEnrolledCourses), "deleting enrolled courses")
}

// Clear removes every session key.
func (s *Session) Clear(ctx context.Context) error {
	return errors.Wrap(s.store.Delete(ctx, AllKeys...), "clearing session")
}

// Enrollments returns the enrolled courses, in enrollment order.
func (s *Session) Enrollments(ctx context.Context) ([]course.Enrollment, error) {
	enrollments := make([]course.Enrollment, 0)
	if err := s.getJSON(ctx, KeyEnrolledCourses, &enrollments); err != nil {
		return nil, err
	}
	if enrollments == nil { // stored as null
		enrollments = make([]course.Enrollment, 0)
	}
	return enrollments, nil
}

func (s *Session) SetEnrollments(ctx context.Context, enrollments []course.Enrollment) error {
	if enrollments == nil {
		enrollments = make([]course.Enrollment, 0)
	}
	return s.setJSON(ctx, KeyEnrolledCourses, enrollments)
}

// CompletedRecommended returns the URLs of the recommended materials marked complete.
func (s *Session) CompletedRecommended(ctx context.Context) ([]string, error) {
	var items []completedMaterial
	if err := s.getJSON(ctx, KeyCompletedRecommended, &items); err != nil {
		return nil, err
	}
	urls := make([]string, 0, len(items))
	for _, it := range items {
		urls = append(urls, it.MaterialURL)
	}
	return urls, nil
}

// AddCompletedRecommended marks the material at url complete.
// It reports false, and changes nothing, when url was already marked.
func (s *Session) AddCompletedRecommended(ctx context.Context, url string) (bool, error) {
	urls, err := s.CompletedRecommended(ctx)
	if err != nil {
		return false, err
	}
	items := make([]completedMaterial, 0, len(urls)+1)
	for _, u := range urls {
		if u == url {
			return false, nil
		}
		items = append(items, completedMaterial{MaterialURL: u})
	}
	items = append(items, completedMaterial{MaterialURL: url})
	if err = s.setJSON(ctx, KeyCompletedRecommended, items); err != nil {
		return false, err
	}
	return true, nil
}

// Profile assembles the recommendation input from the session.
func (s *Session) Profile(ctx context.Context) (recommend.Profile, error) {
	std, err := s.Student(ctx)
	if err != nil {
		return recommend.Profile{}, err
	}
	enrollments, err := s.Enrollments(ctx)
	if err != nil {
		return recommend.Profile{}, err
	}
	return recommend.Profile{
		Enrollments:      enrollments,
		Age:              std.Age,
		InterestedCourse: std.InterestedCourse,
	}, nil
}

// get returns the raw value at key, "" when absent.
func (s *Session) get(ctx context.Context, key string) (string, error) {
	val, err := s.store.Get(ctx, key)
	if errors.Cause(err) == core.ErrKeyNotFound {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrapf(err, "reading %s", key)
	}
	return val, nil
}

func (s *Session) age(ctx context.Context) (*int, error) {
	raw, err := s.get(ctx, KeyStudentAge)
	if err != nil || raw == "" {
		return nil, err
	}
	age, err := strconv.Atoi(raw)
	if err != nil {
		return nil, s.discard(ctx, KeyStudentAge, err)
	}
	return &age, nil
}

func (s *Session) getJSON(ctx context.Context, key string, dst interface{}) error {
	raw, err := s.get(ctx, key)
	if err != nil || raw == "" {
		return err
	}
	if err = json.Unmarshal([]byte(raw), dst); err != nil {
		// drop whatever got partially decoded
		v := reflect.ValueOf(dst).Elem()
		v.Set(reflect.Zero(v.Type()))
		return s.discard(ctx, key, err)
	}
	return nil
}

func (s *Session) setJSON(ctx context.Context, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "encoding %s", key)
	}
	return errors.Wrapf(s.store.Set(ctx, key, string(data)), "storing %s", key)
}

// discard drops a corrupted value; reading it again yields the empty value.
func (s *Session) discard(ctx context.Context, key string, cause error) error {
	s.logger.Warn("session: discarding corrupted value for "+key, errors.Wrapf(cause, "parsing %s", key))
	if err := s.store.Delete(ctx, key); err != nil {
		return errors.Wrapf(err, "deleting corrupted %s", key)
	}
	return nil
}
