package recommend

// SchemaName names the structured output format requested from the model.
const SchemaName = "course_recommendations"

// OutputSchema is the JSON schema the model reply must conform to.
// Array bounds are checked after decoding (see Requester), as strict structured-output
// modes reject minItems/maxItems.
var OutputSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"recommendedCourses": map[string]any{
			"type":        "array",
			"description": "Between 0 and 3 recommended courses; empty when nothing fits the student",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"name": map[string]any{
						"type":        "string",
						"description": "Name of the recommended course",
					},
					"reason": map[string]any{
						"type":        "string",
						"description": "Concise reason this course suits the student",
					},
					"learningMaterials": map[string]any{
						"type":        "array",
						"description": "Between 1 and 3 learning materials, mixing videos and articles",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"type": map[string]any{
									"type": "string",
									"enum": []any{"video", "article"},
								},
								"title": map[string]any{
									"type":        "string",
									"description": "Concise title of the material",
								},
								"url": map[string]any{
									"type":        "string",
									"description": "Plausible placeholder URL for the material",
								},
							},
							"required":             []any{"type", "title", "url"},
							"additionalProperties": false,
						},
					},
				},
				"required":             []any{"name", "reason", "learningMaterials"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"recommendedCourses"},
	"additionalProperties": false,
}
