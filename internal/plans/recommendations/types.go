package recommendations

// Lifestyle holds the four independent lifestyle buckets. Empty fields mean
// the question was not answered.
type Lifestyle struct {
	SleepHours   SleepHours        `json:"sleepHours" yaml:"sleepHours"`
	StressLevel  StressLevel       `json:"stressLevel" yaml:"stressLevel"`
	Exercise     ExerciseFrequency `json:"exercise" yaml:"exercise"`
	SkinCareTime SkinCareTime      `json:"skinCareTime" yaml:"skinCareTime"`
}

// Survey is the structured skin-profile survey response.
type Survey struct {
	SkinTypes     []SkinType     `json:"skinTypes" yaml:"skinTypes"`
	Concerns      []Concern      `json:"concerns" yaml:"concerns"`
	ScarringTypes []ScarringType `json:"scarringTypes" yaml:"scarringTypes"`
	AcneTypes     []AcneType     `json:"acneTypes" yaml:"acneTypes"`
	Complexion    Complexion     `json:"complexion" yaml:"complexion"`
	Allergens     []string       `json:"allergens" yaml:"allergens"`
	Preferences   []Preference   `json:"preferences" yaml:"preferences"`
	Lifestyle     Lifestyle      `json:"lifestyle" yaml:"lifestyle"`
}

// Category is a product slot in the routine.
type Category string

const (
	CategoryCleanser    Category = "Cleanser"
	CategoryTreatment   Category = "Treatment"
	CategorySerum       Category = "Serum"
	CategoryMoisturizer Category = "Moisturizer"
	CategorySPF         Category = "SPF"
)

// ProductRecommendation is one suggested product slot.
type ProductRecommendation struct {
	Category       Category `json:"category" yaml:"category"`
	Name           string   `json:"name" yaml:"name"`
	Reason         string   `json:"reason" yaml:"reason"`
	KeyIngredients []string `json:"keyIngredients" yaml:"keyIngredients"`
	Warning        string   `json:"warning,omitempty" yaml:"warning,omitempty"`
}

// Plan is the personalized skincare plan derived from a Survey.
type Plan struct {
	RoutineType         string                  `json:"routineType" yaml:"routineType"`
	RoutineDescription  string                  `json:"routineDescription" yaml:"routineDescription"`
	PriorityConcerns    []Concern               `json:"priorityConcerns" yaml:"priorityConcerns"`
	KeyIngredients      []string                `json:"keyIngredients" yaml:"keyIngredients"`
	AvoidIngredients    []string                `json:"avoidIngredients" yaml:"avoidIngredients"`
	LifestyleAdvice     []string                `json:"lifestyleAdvice" yaml:"lifestyleAdvice"`
	RecommendedProducts []ProductRecommendation `json:"recommendedProducts" yaml:"recommendedProducts"`
}

// HasSPF reports whether the plan still carries an SPF recommendation.
func (p Plan) HasSPF() bool {
	for _, product := range p.RecommendedProducts {
		if product.Category == CategorySPF {
			return true
		}
	}
	return false
}

func (s Survey) hasSkinType(t SkinType) bool {
	for _, v := range s.SkinTypes {
		if v == t {
			return true
		}
	}
	return false
}

func (s Survey) hasConcern(c Concern) bool {
	for _, v := range s.Concerns {
		if v == c {
			return true
		}
	}
	return false
}

func (s Survey) hasPreference(p Preference) bool {
	for _, v := range s.Preferences {
		if v == p {
			return true
		}
	}
	return false
}
