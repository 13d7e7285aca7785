package testutil

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/Ayushpund/Acharya/core"
	"github.com/Ayushpund/Acharya/core/course"
)

// NewValidator returns a validator initialized with the core validators and english translations.
func NewValidator() (*validator.Validate, ut.Translator) {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	validate := validator.New()
	core.InitValidators(validate, translator)
	return validate, translator
}

// LogEntry is a message recorded by Logger.
type LogEntry struct {
	Level string
	Msg   string
	Args  []interface{}
}

// Logger is a core.Logger keeping every entry in memory.
type Logger struct {
	mu      sync.Mutex
	entries []LogEntry
}

var _ core.Logger = (*Logger)(nil)

func NewLogger() *Logger {
	return &Logger{}
}

func (l *Logger) log(level, msg string, args []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, LogEntry{Level: level, Msg: msg, Args: args})
}

func (l *Logger) Debug(msg string, args ...interface{}) { l.log("debug", msg, args) }
func (l *Logger) Info(msg string, args ...interface{})  { l.log("info", msg, args) }
func (l *Logger) Warn(msg string, args ...interface{})  { l.log("warn", msg, args) }
func (l *Logger) Error(msg string, args ...interface{}) { l.log("error", msg, args) }
func (l *Logger) Fatal(msg string, args ...interface{}) {
	l.log("fatal", msg, args)
	panic(fmt.Sprintf("fatal: %s", msg))
}

// Entries returns the recorded entries for level ("" for all).
func (l *Logger) Entries(level string) []LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	res := make([]LogEntry, 0, len(l.entries))
	for _, e := range l.entries {
		if level == "" || e.Level == level {
			res = append(res, e)
		}
	}
	return res
}

// GeneratorFunc adapts a function to the recommendation model interface.
type GeneratorFunc func(ctx context.Context, system, user string) (json.RawMessage, error)

func (f GeneratorFunc) GenerateJSON(ctx context.Context, system, user, _ string, _ map[string]any) (json.RawMessage, error) {
	return f(ctx, system, user)
}

// StaticGenerator always replies with reply, or fails with err when set.
func StaticGenerator(reply string, err error) GeneratorFunc {
	return func(context.Context, string, string) (json.RawMessage, error) {
		if err != nil {
			return nil, err
		}
		return json.RawMessage(reply), nil
	}
}

// CreateEnrollment builds an enrollment for the catalog course id with the given materials completed.
func CreateEnrollment(t *testing.T, id string, completedURLs ...string) course.Enrollment {
	crs, err := course.DefaultCatalog().Get(id)
	if err != nil {
		t.Fatalf("CreateEnrollment() failed: %v", err)
	}
	enr := course.NewEnrollment(crs)
	for _, u := range completedURLs {
		if _, err = enr.CompleteMaterial(u); err != nil {
			t.Fatalf("CreateEnrollment() failed: %v", err)
		}
	}
	return enr
}

// Enrollment builds a bare enrollment record.
func Enrollment(title, category string, progress int) course.Enrollment {
	return course.Enrollment{
		ID:       strings.ToLower(strings.ReplaceAll(title, " ", "-")),
		Title:    title,
		Category: category,
		Progress: progress,
	}
}
