package recommend

import (
	"fmt"
	"strings"

	"github.com/Ayushpund/Acharya/core"
	"github.com/Ayushpund/Acharya/core/course"
)

const (
	NoHistorySummary     = "No courses enrolled yet."
	NoPerformanceSummary = "Student has not started any courses or shown progress."

	maxActiveExamples = 2
)

// Aggregate derives the model Request from the student's session state.
func Aggregate(p Profile) Request {
	return Request{
		EnrollmentHistory:  HistorySummary(p.Enrollments),
		PerformanceSummary: PerformanceSummary(p.Enrollments),
		Age:                p.Age,
		InterestedCourse:   core.CleanString(p.InterestedCourse),
	}
}

// HistorySummary joins the enrolled course titles, or returns NoHistorySummary.
func HistorySummary(enrollments []course.Enrollment) string {
	if len(enrollments) == 0 {
		return NoHistorySummary
	}
	titles := make([]string, 0, len(enrollments))
	for _, e := range enrollments {
		titles = append(titles, e.Title)
	}
	return strings.Join(titles, ", ")
}

// PerformanceSummary describes the student's progress in plain sentences.
func PerformanceSummary(enrollments []course.Enrollment) string {
	if len(enrollments) == 0 {
		return NoPerformanceSummary
	}

	var started bool
	for _, e := range enrollments {
		if e.Progress > 0 {
			started = true
			break
		}
	}
	categories := distinctCategories(enrollments)

	if !started {
		summary := fmt.Sprintf(
			"Enrolled in %d course(s) (e.g., \"%s\") but has not made progress yet.",
			len(enrollments), enrollments[0].Title,
		)
		if len(categories) > 0 {
			summary += fmt.Sprintf(" Initial interests appear to be in: %s.", strings.Join(categories, ", "))
		}
		return summary
	}

	var active, completed []course.Enrollment
	for _, e := range enrollments {
		switch {
		case e.IsInProgress():
			active = append(active, e)
		case e.IsCompleted():
			completed = append(completed, e)
		}
	}

	parts := []string{fmt.Sprintf("Enrolled in %d course(s).", len(enrollments))}
	if len(active) > 0 {
		examples := make([]string, 0, maxActiveExamples)
		var total int
		for i, e := range active {
			if i < maxActiveExamples {
				examples = append(examples, fmt.Sprintf("\"%s\" (at %d%%)", e.Title, e.Progress))
			}
			total += e.Progress
		}
		parts = append(parts,
			fmt.Sprintf("Actively progressing in %d course(s) like %s.", len(active), strings.Join(examples, ", ")),
			fmt.Sprintf("Average progress in active courses: %d%%.", core.RoundHalfUp(float64(total)/float64(len(active)))),
		)
	}
	if len(completed) > 0 {
		parts = append(parts, fmt.Sprintf("Completed %d course(s), including \"%s\".", len(completed), completed[0].Title))
	}
	if len(categories) > 0 {
		parts = append(parts, fmt.Sprintf("Shows interest in categories such as: %s.", strings.Join(categories, ", ")))
	}
	return strings.Join(parts, " ")
}

// distinctCategories returns the non-empty categories in order of first appearance.
func distinctCategories(enrollments []course.Enrollment) []string {
	seen := make(map[string]struct{}, len(enrollments))
	categories := make([]string, 0, len(enrollments))
	for _, e := range enrollments {
		if e.Category == "" {
			continue
		}
		if _, ok := seen[e.Category]; ok {
			continue
		}
		seen[e.Category] = struct{}{}
		categories = append(categories, e.Category)
	}
	return categories
}
