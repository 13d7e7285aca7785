package course

import "strings"

type MaterialType string

const (
	MaterialVideo   MaterialType = "video"
	MaterialArticle MaterialType = "article"
)

func (t MaterialType) Valid() bool {
	return t == MaterialVideo || t == MaterialArticle
}

// LearningMaterial is a single resource attached to a course.
// Completed only ever goes from false to true.
type LearningMaterial struct {
	Type      MaterialType `json:"type"`
	Title     string       `json:"title"`
	URL       string       `json:"url"`
	Completed bool         `json:"completed"`
}

// Course is a catalog entry.
type Course struct {
	ID                string             `json:"id"`
	Title             string             `json:"title"`
	Description       string             `json:"description"`
	Instructor        string             `json:"instructor"`
	Category          string             `json:"category"`
	Duration          string             `json:"duration"`
	ImageURL          string             `json:"imageUrl"`
	ImageHint         string             `json:"dataAiHint,omitempty"`
	LearningMaterials []LearningMaterial `json:"learningMaterials,omitempty"`
}

// matches reports whether the lowered query occurs in any of the searchable fields.
func (c Course) matches(query string) bool {
	for _, fld := range []string{c.Title, c.Category, c.Description, c.Instructor} {
		if strings.Contains(strings.ToLower(fld), query) {
			return true
		}
	}
	return false
}

// Enrollment is a catalog course the student enrolled in, with its tracked progress.
type Enrollment struct {
	ID                string             `json:"id"`
	Title             string             `json:"title"`
	Description       string             `json:"description"`
	Instructor        string             `json:"instructor"`
	Category          string             `json:"category"`
	ImageURL          string             `json:"imageUrl"`
	ImageHint         string             `json:"dataAiHint,omitempty"`
	Progress          int                `json:"progress"`
	LearningMaterials []LearningMaterial `json:"learningMaterials,omitempty"`
}

// NewEnrollment copies c into a fresh Enrollment: progress 0, no material completed.
func NewEnrollment(c Course) Enrollment {
	enr := Enrollment{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		Instructor:  c.Instructor,
		Category:    c.Category,
		ImageURL:    c.ImageURL,
		ImageHint:   c.ImageHint,
	}
	if len(c.LearningMaterials) > 0 {
		enr.LearningMaterials = make([]LearningMaterial, len(c.LearningMaterials))
		for i, m := range c.LearningMaterials {
			m.Completed = false
			enr.LearningMaterials[i] = m
		}
	}
	return enr
}

// Material returns the index of the material with the given url, or -1.
func (e Enrollment) Material(url string) int {
	for i, m := range e.LearningMaterials {
		if m.URL == url {
			return i
		}
	}
	return -1
}

func (e Enrollment) IsCompleted() bool  { return e.Progress >= 100 }
func (e Enrollment) IsInProgress() bool { return e.Progress > 0 && e.Progress < 100 }
func (e Enrollment) IsNotStarted() bool { return e.Progress <= 0 }
