package recommendations

import (
	"fmt"
	"strings"
)

// Normalize validates a survey and returns a canonical copy: enum values take
// their canonical spelling, set-like fields drop repeats (first occurrence
// wins), allergens are trimmed. Concerns are a ranking, so a repeated concern
// is rejected rather than merged. The input is never modified.
func Normalize(s Survey, allowEmptyConcerns bool) (Survey, error) {
	verr := &ValidationError{}
	out := Survey{
		SkinTypes:     canonicalList("skinTypes", s.SkinTypes, skinTypeValues, verr),
		Concerns:      canonicalRanking("concerns", s.Concerns, concernValues, verr),
		ScarringTypes: canonicalList("scarringTypes", s.ScarringTypes, scarringTypeValues, verr),
		AcneTypes:     canonicalList("acneTypes", s.AcneTypes, acneTypeValues, verr),
		Complexion:    canonicalOptional("complexion", s.Complexion, complexionValues, verr),
		Allergens:     make([]string, 0, len(s.Allergens)),
		Preferences:   canonicalList("preferences", s.Preferences, preferenceValues, verr),
		Lifestyle: Lifestyle{
			SleepHours:   canonicalOptional("lifestyle.sleepHours", s.Lifestyle.SleepHours, sleepValues, verr),
			StressLevel:  canonicalOptional("lifestyle.stressLevel", s.Lifestyle.StressLevel, stressValues, verr),
			Exercise:     canonicalOptional("lifestyle.exercise", s.Lifestyle.Exercise, exerciseValues, verr),
			SkinCareTime: canonicalOptional("lifestyle.skinCareTime", s.Lifestyle.SkinCareTime, skinCareTimeValues, verr),
		},
	}

	if len(s.SkinTypes) == 0 {
		verr.add("skinTypes", "required", "")
	}
	if len(s.Concerns) == 0 && !allowEmptyConcerns {
		verr.add("concerns", "required", "")
	}
	for i, allergen := range s.Allergens {
		trimmed := strings.TrimSpace(allergen)
		if trimmed == "" {
			verr.add(fmt.Sprintf("allergens[%d]", i), "blank", "")
			continue
		}
		out.Allergens = append(out.Allergens, trimmed)
	}

	if len(verr.Fields) > 0 {
		return Survey{}, verr
	}
	return out, nil
}

func canonicalList[T ~string](field string, raw []T, values []T, verr *ValidationError) []T {
	out := make([]T, 0, len(raw))
	seen := make(map[T]bool, len(raw))
	for i, item := range raw {
		v, ok := canonical(item, values)
		if !ok {
			verr.add(fmt.Sprintf("%s[%d]", field, i), "unrecognized", string(item))
			continue
		}
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// canonicalRanking keeps the given order and reports repeats as duplicate.
func canonicalRanking[T ~string](field string, raw []T, values []T, verr *ValidationError) []T {
	out := make([]T, 0, len(raw))
	seen := make(map[T]bool, len(raw))
	for i, item := range raw {
		v, ok := canonical(item, values)
		switch {
		case !ok:
			verr.add(fmt.Sprintf("%s[%d]", field, i), "unrecognized", string(item))
		case seen[v]:
			verr.add(fmt.Sprintf("%s[%d]", field, i), "duplicate", string(item))
		default:
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

func canonicalOptional[T ~string](field string, raw T, values []T, verr *ValidationError) T {
	if strings.TrimSpace(string(raw)) == "" {
		return ""
	}
	v, ok := canonical(raw, values)
	if !ok {
		verr.add(field, "unrecognized", string(raw))
		return ""
	}
	return v
}
