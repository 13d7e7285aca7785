package llmsvc

import (
	"context"
	"encoding/json"
	"regexp"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/Ayushpund/Acharya/core/course"
)

const maxDummyCourses = 3

var (
	historyLine  = regexp.MustCompile(`(?m)^Enrollment History: (.*)$`)
	interestLine = regexp.MustCompile(`(?m)^Stated Interest: (.*)$`)
	slugInvalid  = regexp.MustCompile(`[^a-z0-9]+`)
)

type (
	dummyMaterial struct {
		Type  course.MaterialType `json:"type"`
		Title string              `json:"title"`
		URL   string              `json:"url"`
	}

	dummyCourse struct {
		Name              string          `json:"name"`
		Reason            string          `json:"reason"`
		LearningMaterials []dummyMaterial `json:"learningMaterials"`
	}
)

// DummyGenerator answers offline by picking catalog courses the student has not enrolled in,
// favouring those matching the stated interest.
type DummyGenerator struct {
	catalog *course.Catalog
}

func NewDummyGenerator(catalog *course.Catalog) *DummyGenerator {
	return &DummyGenerator{catalog: catalog}
}

func (g *DummyGenerator) GenerateJSON(ctx context.Context, _, user, schemaName string, _ map[string]any) (json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if schemaName == "" {
		return nil, errors.New("schemaName required")
	}

	history := firstMatch(historyLine, user)
	interest := strings.ToLower(firstMatch(interestLine, user))

	type candidate struct {
		crs   course.Course
		score int
	}
	candidates := make([]candidate, 0)
	for _, crs := range g.catalog.All() {
		if history != "" && strings.Contains(history, crs.Title) {
			continue
		}
		var score int
		if interest != "" {
			for _, word := range strings.Fields(interest) {
				if len(word) > 2 && strings.Contains(strings.ToLower(crs.Title+" "+crs.Category+" "+crs.Description), word) {
					score++
				}
			}
		}
		candidates = append(candidates, candidate{crs: crs, score: score})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	courses := make([]dummyCourse, 0, maxDummyCourses)
	for _, c := range candidates {
		if len(courses) == maxDummyCourses {
			break
		}
		reason := "It broadens your current learning path in " + c.crs.Category + "."
		if c.score > 0 {
			reason = "It matches your stated interest in " + interest + "."
		}
		courses = append(courses, dummyCourse{
			Name:              c.crs.Title,
			Reason:            reason,
			LearningMaterials: dummyMaterials(c.crs),
		})
	}

	data, err := json.Marshal(map[string]interface{}{"recommendedCourses": courses})
	if err != nil {
		return nil, errors.Wrap(err, "encoding dummy recommendations")
	}
	return data, nil
}

func dummyMaterials(crs course.Course) []dummyMaterial {
	if len(crs.LearningMaterials) == 0 {
		slug := strings.Trim(slugInvalid.ReplaceAllString(strings.ToLower(crs.Title), "-"), "-")
		return []dummyMaterial{
			{Type: course.MaterialVideo, Title: crs.Title + ": Overview", URL: "https://www.youtube.com/watch?v=example"},
			{Type: course.MaterialArticle, Title: "Getting Started with " + crs.Title, URL: "https://example.com/" + slug},
		}
	}
	materials := make([]dummyMaterial, 0, len(crs.LearningMaterials))
	for i, m := range crs.LearningMaterials {
		if i == 3 {
			break
		}
		materials = append(materials, dummyMaterial{Type: m.Type, Title: m.Title, URL: m.URL})
	}
	return materials
}

func firstMatch(re *regexp.Regexp, s string) string {
	if m := re.FindStringSubmatch(s); len(m) > 1 {
		return strings.TrimSpace(m[1])
	}
	return ""
}
