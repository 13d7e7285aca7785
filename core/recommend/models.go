package recommend

import "github.com/Ayushpund/Acharya/core/course"

type (
	// Profile is the explicit session state the recommendation pipeline reads from.
	Profile struct {
		Enrollments      []course.Enrollment
		Age              *int
		InterestedCourse string
	}

	// Request is the model input derived from a Profile.
	Request struct {
		EnrollmentHistory  string `json:"enrollmentHistory"`
		PerformanceSummary string `json:"performanceSummary"`
		Age                *int   `json:"age,omitempty"`
		InterestedCourse   string `json:"interestedCourse,omitempty"`
	}

	// Material is a recommended learning material; unlike course materials it carries no completion flag.
	Material struct {
		Type  course.MaterialType `json:"type" validate:"oneof=video article"`
		Title string              `json:"title"`
		URL   string              `json:"url"`
	}

	RecommendedCourse struct {
		Name              string     `json:"name"`
		Reason            string     `json:"reason"`
		LearningMaterials []Material `json:"learningMaterials" validate:"required,min=1,max=3,dive"`
	}

	// Recommendations is the normalized pipeline result: RecommendedCourses is never nil.
	Recommendations struct {
		RecommendedCourses []RecommendedCourse `json:"recommendedCourses"`
	}

	// ModelOutput is the model reply as decoded, before normalization.
	// A nil RecommendedCourses means the field was absent or null.
	ModelOutput struct {
		RecommendedCourses []RecommendedCourse `json:"recommendedCourses" validate:"max=3,dive"`
	}
)

// Empty returns the empty-recommendations result.
func Empty() Recommendations {
	return Recommendations{RecommendedCourses: []RecommendedCourse{}}
}

// Outcome tells why a Recommendations value looks the way it does.
// Every outcome other than OutcomeRecommended comes with an empty result.
type Outcome string

const (
	OutcomeRecommended Outcome = "recommended"
	OutcomeNoMatch     Outcome = "no_match"    // the model found nothing suitable
	OutcomeMalformed   Outcome = "malformed"   // the reply did not fit the output schema
	OutcomeUnavailable Outcome = "unavailable" // the model could not be reached
)

// IsFailure reports whether the outcome stems from a failed model exchange.
func (o Outcome) IsFailure() bool {
	return o == OutcomeMalformed || o == OutcomeUnavailable
}
