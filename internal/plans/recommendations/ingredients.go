package recommendations

// ResolveKeyIngredients collects the first two ingredients of every concern in
// ranked order, then the fixed skin-type pairs (Dry, Oily, Sensitive), and
// keeps the first six distinct entries.
func ResolveKeyIngredients(concerns []Concern, skinTypes []SkinType) []string {
	set := newOrderedSet()
	for _, c := range concerns {
		ingredients := concernIngredients[c]
		if len(ingredients) > ingredientsPerConcern {
			ingredients = ingredients[:ingredientsPerConcern]
		}
		set.add(ingredients...)
	}

	s := Survey{SkinTypes: skinTypes}
	for _, entry := range skinTypeIngredients {
		if s.hasSkinType(entry.skinType) {
			set.add(entry.ingredients...)
		}
	}
	return set.first(maxKeyIngredients)
}

// ResolveAvoidIngredients lists allergens as given followed by the exclusions
// implied by formulation preferences. Repeats across the two sources are kept.
// Allergens are copied verbatim here; through BuildPlan they arrive already
// trimmed by Normalize, so " Lanolin " is listed as "Lanolin".
func ResolveAvoidIngredients(allergens []string, preferences []Preference) []string {
	out := make([]string, 0, len(allergens)+4)
	out = append(out, allergens...)

	s := Survey{Preferences: preferences}
	for _, entry := range preferenceExclusions {
		if s.hasPreference(entry.preference) {
			out = append(out, entry.ingredients...)
		}
	}
	return out
}
