package course

import (
	"github.com/pkg/errors"

	"github.com/Ayushpund/Acharya/core"
)

// CompleteMaterial marks the material with the given url as completed and recomputes progress.
// It reports whether anything changed; completing an already completed material is a no-op.
func (e *Enrollment) CompleteMaterial(url string) (changed bool, err error) {
	idx := e.Material(url)
	if idx < 0 {
		return false, errors.Wrapf(ErrMaterialNotFound, "course %s: %s", e.ID, url)
	}
	if e.LearningMaterials[idx].Completed {
		return false, nil
	}
	e.LearningMaterials[idx].Completed = true
	e.RecomputeProgress()
	return true, nil
}

// RecomputeProgress sets Progress to the rounded share of completed materials.
// A course without materials keeps its previous progress.
func (e *Enrollment) RecomputeProgress() {
	total := len(e.LearningMaterials)
	if total == 0 {
		return
	}
	var done int
	for _, m := range e.LearningMaterials {
		if m.Completed {
			done++
		}
	}
	e.Progress = core.RoundHalfUp(float64(done) / float64(total) * 100)
}

// Overview holds the progress totals shown on the dashboard.
type Overview struct {
	TotalCourses    int `json:"totalCourses"`
	Completed       int `json:"completed"`
	InProgress      int `json:"inProgress"`
	NotStarted      int `json:"notStarted"`
	AverageProgress int `json:"averageProgress"`
}

// Summarize computes the progress Overview over all enrollments.
func Summarize(enrollments []Enrollment) Overview {
	ov := Overview{TotalCourses: len(enrollments)}
	if ov.TotalCourses == 0 {
		return ov
	}
	var sum int
	for _, e := range enrollments {
		sum += e.Progress
		switch {
		case e.IsCompleted():
			ov.Completed++
		case e.IsInProgress():
			ov.InProgress++
		default:
			ov.NotStarted++
		}
	}
	ov.AverageProgress = core.RoundHalfUp(float64(sum) / float64(ov.TotalCourses))
	return ov
}
