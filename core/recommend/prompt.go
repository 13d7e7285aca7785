package recommend

import (
	"strconv"
	"strings"
)

// SystemPrompt sets the model's role.
const SystemPrompt = `You are a course recommendation expert for students. Provide personalized course recommendations.
You MUST answer with JSON that strictly follows the requested schema.`

const instructions = `Based on this profile, recommend 0 to 3 courses. If no specific courses fit well, you can return an empty list for recommendedCourses. For each recommended course:
1. Provide the course "name".
2. Provide a concise "reason" for the recommendation.
3. Suggest 1 to 3 "learningMaterials" (mix of video and article). For each material:
   a. Specify its "type" ('video' or 'article').
   b. Provide a concise "title".
   c. Provide a plausible placeholder "url" (e.g., for videos use https://www.youtube.com/watch?v=example, for articles use https://example.com/article-title-slug).

Ensure your entire output strictly adheres to the JSON schema, including an empty array for recommendedCourses if no recommendations are suitable.
Example for one recommended course's learning material:
{ "type": "video", "title": "Introduction to Python", "url": "https://www.youtube.com/watch?v=xyz123" }
`

// BuildPrompt renders the user prompt for req. Age and interest appear only when set.
func BuildPrompt(req Request) string {
	var b strings.Builder
	b.WriteString("Student Profile:\n")
	b.WriteString("Enrollment History: " + req.EnrollmentHistory + "\n")
	b.WriteString("Performance Summary: " + req.PerformanceSummary + "\n")
	if req.Age != nil {
		b.WriteString("Age: " + strconv.Itoa(*req.Age) + "\n")
	}
	if req.InterestedCourse != "" {
		b.WriteString("Stated Interest: " + req.InterestedCourse + "\n")
	}
	b.WriteString("\n")
	b.WriteString(instructions)
	return b.String()
}
