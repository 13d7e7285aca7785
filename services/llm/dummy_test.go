package llmsvc

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ayushpund/Acharya/core/course"
)

func TestDummyGenerator_GenerateJSON(t *testing.T) {
	gen := NewDummyGenerator(course.DefaultCatalog())

	type reply struct {
		RecommendedCourses []dummyCourse `json:"recommendedCourses"`
	}
	names := func(r reply) []string {
		res := make([]string, 0, len(r.RecommendedCourses))
		for _, c := range r.RecommendedCourses {
			res = append(res, c.Name)
		}
		return res
	}

	tests := []struct {
		name      string
		prompt    string
		wantNames []string
	}{
		{
			name:      "no history",
			prompt:    "Student Profile:\nEnrollment History: No courses enrolled yet.\n",
			wantNames: []string{"Blockchain Fundamentals", "Ethical Hacking & Cybersecurity", "Introduction to Graphic Design"},
		},
		{
			name:      "skips enrolled courses",
			prompt:    "Enrollment History: Blockchain Fundamentals, Introduction to Graphic Design\n",
			wantNames: []string{"Ethical Hacking & Cybersecurity", "Mobile App Development with React Native", "The Science of Well-being"},
		},
		{
			name:      "interest first",
			prompt:    "Enrollment History: No courses enrolled yet.\nStated Interest: data visualization\n",
			wantNames: []string{"Data Visualization with D3.js", "Blockchain Fundamentals", "Ethical Hacking & Cybersecurity"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := gen.GenerateJSON(context.Background(), "", tt.prompt, "course_recommendations", nil)
			assert.NoError(t, err)

			var r reply
			assert.NoError(t, json.Unmarshal(raw, &r))
			assert.Equal(t, tt.wantNames, names(r))
			for _, c := range r.RecommendedCourses {
				assert.NotEmpty(t, c.Reason)
				assert.True(t, len(c.LearningMaterials) >= 1 && len(c.LearningMaterials) <= 3)
			}
		})
	}
}

func TestDummyGenerator_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewDummyGenerator(course.DefaultCatalog()).GenerateJSON(ctx, "", "", "n", nil)
	assert.Equal(t, context.Canceled, err)
}
