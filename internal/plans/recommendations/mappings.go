package recommendations

// Static rule tables. Nothing here is mutated after package init; stages copy
// slices before handing them to callers.

const (
	RoutineBarrierRepair = "Gentle Barrier-Repair Routine"
	RoutineStreamlined   = "Streamlined Essential Routine"
	RoutineHydration     = "Intensive Hydration Routine"
	RoutineBalancing     = "Balancing & Clarifying Routine"
	RoutineMultiZone     = "Balanced Multi-Zone Routine"
	RoutineMaintenance   = "Maintenance & Prevention Routine"
)

const (
	maxKeyIngredients      = 6
	maxProducts            = 6
	ingredientsPerConcern  = 2
	priorityConcernsLength = 3
)

type routineRule struct {
	routine     string
	description string
	match       func(Survey) bool
}

// routineRules is evaluated top to bottom; the first match wins.
var routineRules = []routineRule{
	{
		routine:     RoutineBarrierRepair,
		description: "Your skin needs calm before anything else. Keep steps minimal, skip harsh actives, and focus on rebuilding the moisture barrier.",
		match:       func(s Survey) bool { return s.hasSkinType(SkinSensitive) },
	},
	{
		routine:     RoutineStreamlined,
		description: "A short, high-impact routine built around a few multitasking essentials that fit your schedule.",
		match: func(s Survey) bool {
			t := s.Lifestyle.SkinCareTime
			return t == TimeUnder5 || t == Time5To10
		},
	},
	{
		routine:     RoutineHydration,
		description: "Layered hydration and barrier-supporting ingredients to replenish moisture and keep it locked in.",
		match:       func(s Survey) bool { return s.hasSkinType(SkinDry) },
	},
	{
		routine:     RoutineBalancing,
		description: "Oil-regulating, pore-clearing steps that keep shine and congestion in check without stripping the skin.",
		match:       func(s Survey) bool { return s.hasSkinType(SkinOily) },
	},
	{
		routine:     RoutineMultiZone,
		description: "Targeted care for different zones of your face, balancing oilier areas while hydrating drier ones.",
		match: func(s Survey) bool {
			return len(s.SkinTypes) > 1 || s.hasSkinType(SkinCombination)
		},
	},
	{
		routine:     RoutineMaintenance,
		description: "Your skin is in good shape. A consistent routine with prevention-focused ingredients keeps it that way.",
		match:       func(Survey) bool { return true },
	},
}

var concernIngredients = map[Concern][]string{
	ConcernAcneProne:         {"Salicylic Acid", "Niacinamide", "Zinc PCA", "Tea Tree Oil"},
	ConcernSignsOfAging:      {"Retinol", "Peptides", "Bakuchiol"},
	ConcernUnevenSkinTone:    {"Vitamin C", "Alpha Arbutin", "Niacinamide"},
	ConcernDullness:          {"Vitamin C", "Glycolic Acid", "Lactic Acid"},
	ConcernLackOfHydration:   {"Hyaluronic Acid", "Glycerin", "Squalane"},
	ConcernScarring:          {"Alpha Arbutin", "Tranexamic Acid", "Centella Asiatica"},
	ConcernEnlargedPores:     {"Niacinamide", "Salicylic Acid", "Kaolin Clay"},
	ConcernRedness:           {"Centella Asiatica", "Azelaic Acid", "Allantoin"},
	ConcernHyperpigmentation: {"Tranexamic Acid", "Kojic Acid", "Vitamin C"},
	ConcernDarkCircles:       {"Caffeine", "Vitamin K", "Peptides"},
	ConcernTexture:           {"Lactic Acid", "Glycolic Acid", "Polyhydroxy Acids"},
	ConcernBlackheads:        {"Salicylic Acid", "Kaolin Clay", "Niacinamide"},
}

// skinTypeIngredients run in this order regardless of concerns.
var skinTypeIngredients = []struct {
	skinType    SkinType
	ingredients []string
}{
	{SkinDry, []string{"Hyaluronic Acid", "Ceramides"}},
	{SkinOily, []string{"Niacinamide", "Salicylic Acid"}},
	{SkinSensitive, []string{"Centella Asiatica", "Panthenol"}},
}

var preferenceExclusions = []struct {
	preference  Preference
	ingredients []string
}{
	{PrefFragranceFree, []string{"Fragrance", "Essential Oils"}},
	{PrefAlcoholFree, []string{"Alcohol Denat."}},
	{PrefSiliconeFree, []string{"Dimethicone", "Cyclopentasiloxane"}},
}

const (
	AdviceSleep     = "Aim for 7-9 hours of sleep. Skin repairs itself overnight, and short nights show up as dullness and slower healing."
	AdviceStress    = "Build in daily stress relief such as a short walk or breathing exercises. Elevated cortisol can trigger breakouts and flare-ups."
	AdviceExercise  = "Add light activity a few times a week to boost circulation, and cleanse soon after sweating."
	AdviceMultitask = "Lean on multitasking products, like a moisturizer with SPF, to keep your routine quick without skipping protection."
	AdviceHydration = "Drink water consistently through the day to support skin hydration from within."
	AdviceSunscreen = "Apply broad-spectrum SPF 30 or higher every morning, even on cloudy days, and reapply when outdoors."
)

type adviceRule struct {
	advice string
	match  func(Lifestyle) bool
}

// lifestyleRules are independent; every match is appended in this order.
var lifestyleRules = []adviceRule{
	{AdviceSleep, func(l Lifestyle) bool { return l.SleepHours == SleepLessThan6 }},
	{AdviceStress, func(l Lifestyle) bool { return l.StressLevel == StressHigh || l.StressLevel == StressVeryHigh }},
	{AdviceExercise, func(l Lifestyle) bool { return l.Exercise == ExerciseNever || l.Exercise == Exercise1To2 }},
	{AdviceMultitask, func(l Lifestyle) bool { return l.SkinCareTime == TimeUnder5 }},
}

// closingAdvice always ends the list, in this order.
var closingAdvice = []string{AdviceHydration, AdviceSunscreen}

type evalMode int

const (
	firstMatch evalMode = iota
	allMatches
)

type productRule struct {
	match   func(Survey) bool
	product ProductRecommendation
}

type productStage struct {
	mode  evalMode
	rules []productRule
}

func always(Survey) bool { return true }

var (
	gentleCleanser = ProductRecommendation{
		Category:       CategoryCleanser,
		Name:           "Gentle Hydrating Cleanser",
		Reason:         "A non-stripping cream cleanser that removes impurities without disturbing a dry or reactive barrier.",
		KeyIngredients: []string{"Glycerin", "Ceramides"},
	}
	salicylicCleanser = ProductRecommendation{
		Category:       CategoryCleanser,
		Name:           "Salicylic Acid Foaming Cleanser",
		Reason:         "Clears excess oil and exfoliates inside the pore to keep breakouts from forming.",
		KeyIngredients: []string{"Salicylic Acid", "Zinc PCA"},
	}
	gelCleanser = ProductRecommendation{
		Category:       CategoryCleanser,
		Name:           "Balanced pH Gel Cleanser",
		Reason:         "A pH-balanced gel that cleans thoroughly without over-drying.",
		KeyIngredients: []string{"Glycerin", "Aloe Vera"},
	}
	niacinamideSerum = ProductRecommendation{
		Category:       CategoryTreatment,
		Name:           "Niacinamide + Zinc Serum",
		Reason:         "Regulates oil production and calms active breakouts.",
		KeyIngredients: []string{"Niacinamide", "Zinc PCA"},
	}
	retinolSerum = ProductRecommendation{
		Category:       CategorySerum,
		Name:           "Retinol Night Serum",
		Reason:         "Speeds up cell turnover to soften fine lines and firm the skin over time.",
		KeyIngredients: []string{"Retinol", "Peptides"},
	}
	vitaminCSerum = ProductRecommendation{
		Category:       CategorySerum,
		Name:           "Vitamin C Brightening Serum",
		Reason:         "Fades discoloration and restores radiance to dull, uneven skin.",
		KeyIngredients: []string{"Vitamin C", "Ferulic Acid", "Vitamin E"},
	}
	hyaluronicSerum = ProductRecommendation{
		Category:       CategorySerum,
		Name:           "Hyaluronic Acid + B5 Serum",
		Reason:         "Draws water into the skin and supports barrier recovery.",
		KeyIngredients: []string{"Hyaluronic Acid", "Panthenol"},
	}
	arbutinTreatment = ProductRecommendation{
		Category:       CategoryTreatment,
		Name:           "Alpha Arbutin Treatment",
		Reason:         "Targets post-acne marks and dark spots left behind by scarring.",
		KeyIngredients: []string{"Alpha Arbutin", "Tranexamic Acid"},
	}
	ceramideCream = ProductRecommendation{
		Category:       CategoryMoisturizer,
		Name:           "Rich Ceramide Cream",
		Reason:         "Replenishes lipids and seals in moisture for dry skin.",
		KeyIngredients: []string{"Ceramides", "Shea Butter", "Squalane"},
	}
	gelMoisturizer = ProductRecommendation{
		Category:       CategoryMoisturizer,
		Name:           "Lightweight Gel Moisturizer",
		Reason:         "Oil-free hydration that will not clog pores or add shine.",
		KeyIngredients: []string{"Hyaluronic Acid", "Niacinamide"},
	}
	dailyMoisturizer = ProductRecommendation{
		Category:       CategoryMoisturizer,
		Name:           "Balanced Daily Moisturizer",
		Reason:         "Everyday hydration that keeps the barrier healthy.",
		KeyIngredients: []string{"Glycerin", "Squalane"},
	}
	sunscreen = ProductRecommendation{
		Category:       CategorySPF,
		Name:           "Broad Spectrum SPF 50",
		Reason:         "Protects against UV damage, the leading cause of premature aging and dark spots.",
		KeyIngredients: []string{"Zinc Oxide", "Titanium Dioxide"},
		Warning:        "Reapply every 2 hours outdoors. Daily SPF is essential when using retinol, vitamin C or exfoliating acids.",
	}
)

// productStages run in order; each stage appends per its evaluation mode.
var productStages = []productStage{
	{
		mode: firstMatch,
		rules: []productRule{
			{func(s Survey) bool { return s.hasSkinType(SkinDry) || s.hasSkinType(SkinSensitive) }, gentleCleanser},
			{func(s Survey) bool { return s.hasSkinType(SkinOily) || s.hasConcern(ConcernAcneProne) }, salicylicCleanser},
			{always, gelCleanser},
		},
	},
	{
		mode: allMatches,
		rules: []productRule{
			{func(s Survey) bool { return s.hasConcern(ConcernAcneProne) }, niacinamideSerum},
			{func(s Survey) bool { return s.hasConcern(ConcernSignsOfAging) }, retinolSerum},
			{func(s Survey) bool { return s.hasConcern(ConcernUnevenSkinTone) || s.hasConcern(ConcernDullness) }, vitaminCSerum},
			{func(s Survey) bool { return s.hasConcern(ConcernLackOfHydration) || s.hasSkinType(SkinDry) }, hyaluronicSerum},
			{func(s Survey) bool { return s.hasConcern(ConcernScarring) }, arbutinTreatment},
		},
	},
	{
		mode: firstMatch,
		rules: []productRule{
			{func(s Survey) bool { return s.hasSkinType(SkinDry) }, ceramideCream},
			{func(s Survey) bool { return s.hasSkinType(SkinOily) }, gelMoisturizer},
			{always, dailyMoisturizer},
		},
	},
	{
		mode:  allMatches,
		rules: []productRule{{always, sunscreen}},
	},
}

// ConcernIngredients returns the full ingredient list for a concern.
func ConcernIngredients(c Concern) []string {
	return append([]string(nil), concernIngredients[c]...)
}
