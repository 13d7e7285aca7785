package recommend

// EmptyStateMessage is shown in place of recommendations when there are none, whatever the Outcome.
const EmptyStateMessage = "No specific recommendations available right now. As you enroll and progress, or update your interests, we'll tailor suggestions for you! Explore our course catalog to find something new."

type (
	MaterialView struct {
		Material
		Completed bool `json:"completed"`
	}

	CourseView struct {
		Name              string         `json:"name"`
		Reason            string         `json:"reason"`
		LearningMaterials []MaterialView `json:"learningMaterials"`
	}
)

// View merges recs with the URLs of recommended materials the student already completed.
// recs is left untouched.
func View(recs Recommendations, completedURLs []string) []CourseView {
	done := make(map[string]struct{}, len(completedURLs))
	for _, u := range completedURLs {
		done[u] = struct{}{}
	}

	views := make([]CourseView, 0, len(recs.RecommendedCourses))
	for _, rc := range recs.RecommendedCourses {
		cv := CourseView{
			Name:              rc.Name,
			Reason:            rc.Reason,
			LearningMaterials: make([]MaterialView, 0, len(rc.LearningMaterials)),
		}
		for _, m := range rc.LearningMaterials {
			_, ok := done[m.URL]
			cv.LearningMaterials = append(cv.LearningMaterials, MaterialView{Material: m, Completed: ok})
		}
		views = append(views, cv)
	}
	return views
}
