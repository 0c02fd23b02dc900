package recommendations

// RecommendProducts assembles cleanser, treatments, moisturizer and SPF and
// caps the list at six. SPF is appended last, so enough treatments push it
// out; see Engine's WithSPFGuaranteed for the alternative.
func RecommendProducts(skinTypes []SkinType, concerns []Concern) []ProductRecommendation {
	return capProducts(assembleProducts(Survey{SkinTypes: skinTypes, Concerns: concerns}), false)
}

func assembleProducts(s Survey) []ProductRecommendation {
	out := make([]ProductRecommendation, 0, maxProducts+2)
	for _, stage := range productStages {
		for _, rule := range stage.rules {
			if !rule.match(s) {
				continue
			}
			out = append(out, cloneProduct(rule.product))
			if stage.mode == firstMatch {
				break
			}
		}
	}
	return out
}

// capProducts truncates to maxProducts. With reserveSPF the SPF entry keeps
// the last slot and the cut falls on the entries before it.
func capProducts(items []ProductRecommendation, reserveSPF bool) []ProductRecommendation {
	if len(items) <= maxProducts {
		return items
	}
	if !reserveSPF {
		return items[:maxProducts]
	}
	spfIdx := -1
	for i, item := range items {
		if item.Category == CategorySPF {
			spfIdx = i
			break
		}
	}
	if spfIdx < 0 || spfIdx < maxProducts {
		return items[:maxProducts]
	}
	out := make([]ProductRecommendation, 0, maxProducts)
	out = append(out, items[:maxProducts-1]...)
	return append(out, items[spfIdx])
}

func cloneProduct(p ProductRecommendation) ProductRecommendation {
	p.KeyIngredients = append([]string(nil), p.KeyIngredients...)
	return p
}
