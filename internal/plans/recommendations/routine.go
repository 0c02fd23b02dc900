package recommendations

// ClassifyRoutine returns the routine type and its description. Rules are a
// priority list, so Sensitive always outranks Dry and the time budget
// outranks every skin type except Sensitive.
func ClassifyRoutine(skinTypes []SkinType, skinCareTime SkinCareTime) (string, string) {
	s := Survey{SkinTypes: skinTypes, Lifestyle: Lifestyle{SkinCareTime: skinCareTime}}
	for _, rule := range routineRules {
		if rule.match(s) {
			return rule.routine, rule.description
		}
	}
	// unreachable: the last rule always matches
	last := routineRules[len(routineRules)-1]
	return last.routine, last.description
}
