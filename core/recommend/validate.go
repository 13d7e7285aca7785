package recommend

// Validate normalizes a decoded model reply: an absent reply or an absent course list becomes
// the empty result, anything else passes through unchanged.
// Schema constraints are enforced by the Requester before this point.
func Validate(raw *ModelOutput) Recommendations {
	if raw == nil || raw.RecommendedCourses == nil {
		return Empty()
	}
	return Recommendations{RecommendedCourses: raw.RecommendedCourses}
}
