package recommendations

// LifestyleAdvice returns conditional advisories followed by the hydration and
// sunscreen advisories, which are always last.
func LifestyleAdvice(l Lifestyle) []string {
	out := make([]string, 0, len(lifestyleRules)+len(closingAdvice))
	for _, rule := range lifestyleRules {
		if rule.match(l) {
			out = append(out, rule.advice)
		}
	}
	return append(out, closingAdvice...)
}
