package recommendations

import "strings"

// SkinType is a self-reported skin type tag.
type SkinType string

const (
	SkinDry         SkinType = "Dry"
	SkinOily        SkinType = "Oily"
	SkinCombination SkinType = "Combination"
	SkinSensitive   SkinType = "Sensitive"
	SkinNormal      SkinType = "Normal"
	SkinMature      SkinType = "Mature"
)

// Concern is a ranked skin issue reported by the respondent.
type Concern string

const (
	ConcernAcneProne         Concern = "Acne Prone"
	ConcernSignsOfAging      Concern = "Signs of Aging"
	ConcernUnevenSkinTone    Concern = "Uneven Skin Tone"
	ConcernDullness          Concern = "Dullness"
	ConcernLackOfHydration   Concern = "Lack of Hydration"
	ConcernScarring          Concern = "Scarring"
	ConcernEnlargedPores     Concern = "Enlarged Pores"
	ConcernRedness           Concern = "Redness"
	ConcernHyperpigmentation Concern = "Hyperpigmentation"
	ConcernDarkCircles       Concern = "Dark Circles"
	ConcernTexture           Concern = "Texture"
	ConcernBlackheads        Concern = "Blackheads"
)

// ScarringType is informational and does not feed ingredient logic.
type ScarringType string

const (
	ScarIcePick      ScarringType = "Ice Pick"
	ScarBoxcar       ScarringType = "Boxcar"
	ScarRolling      ScarringType = "Rolling"
	ScarHypertrophic ScarringType = "Hypertrophic"
	ScarPIH          ScarringType = "Post-Inflammatory Hyperpigmentation"
	ScarPIE          ScarringType = "Post-Inflammatory Erythema"
)

// AcneType is informational and does not feed ingredient logic.
type AcneType string

const (
	AcneBlackheads AcneType = "Blackheads"
	AcneWhiteheads AcneType = "Whiteheads"
	AcnePapules    AcneType = "Papules"
	AcnePustules   AcneType = "Pustules"
	AcneNodules    AcneType = "Nodules"
	AcneCystic     AcneType = "Cystic"
	AcneHormonal   AcneType = "Hormonal"
)

// Complexion is informational.
type Complexion string

const (
	ComplexionFair   Complexion = "Fair"
	ComplexionLight  Complexion = "Light"
	ComplexionMedium Complexion = "Medium"
	ComplexionOlive  Complexion = "Olive"
	ComplexionTan    Complexion = "Tan"
	ComplexionDeep   Complexion = "Deep"
)

// Preference is a formulation preference tag.
type Preference string

const (
	PrefFragranceFree Preference = "Fragrance-free"
	PrefAlcoholFree   Preference = "Alcohol-Free"
	PrefSiliconeFree  Preference = "Silicone-free"
	PrefCrueltyFree   Preference = "Cruelty-Free"
	PrefVegan         Preference = "Vegan"
)

// SleepHours is the nightly sleep bucket.
type SleepHours string

const (
	SleepLessThan6 SleepHours = "Less than 6"
	Sleep6To8      SleepHours = "6-8"
	SleepMoreThan8 SleepHours = "More than 8"
)

// StressLevel is the self-reported stress bucket.
type StressLevel string

const (
	StressLow      StressLevel = "Low"
	StressModerate StressLevel = "Moderate"
	StressHigh     StressLevel = "High"
	StressVeryHigh StressLevel = "Very High"
)

// ExerciseFrequency is the weekly exercise bucket.
type ExerciseFrequency string

const (
	ExerciseNever   ExerciseFrequency = "Never"
	Exercise1To2    ExerciseFrequency = "1-2x/week"
	Exercise3To4    ExerciseFrequency = "3-4x/week"
	Exercise5OrMore ExerciseFrequency = "5+ x/week"
)

// SkinCareTime is the daily time budget for a routine.
type SkinCareTime string

const (
	TimeUnder5   SkinCareTime = "Less than 5 min"
	Time5To10    SkinCareTime = "5-10 min"
	Time10To20   SkinCareTime = "10-20 min"
	Time20OrMore SkinCareTime = "20+ min"
)

var (
	skinTypeValues     = []SkinType{SkinDry, SkinOily, SkinCombination, SkinSensitive, SkinNormal, SkinMature}
	concernValues      = []Concern{ConcernAcneProne, ConcernSignsOfAging, ConcernUnevenSkinTone, ConcernDullness, ConcernLackOfHydration, ConcernScarring, ConcernEnlargedPores, ConcernRedness, ConcernHyperpigmentation, ConcernDarkCircles, ConcernTexture, ConcernBlackheads}
	scarringTypeValues = []ScarringType{ScarIcePick, ScarBoxcar, ScarRolling, ScarHypertrophic, ScarPIH, ScarPIE}
	acneTypeValues     = []AcneType{AcneBlackheads, AcneWhiteheads, AcnePapules, AcnePustules, AcneNodules, AcneCystic, AcneHormonal}
	complexionValues   = []Complexion{ComplexionFair, ComplexionLight, ComplexionMedium, ComplexionOlive, ComplexionTan, ComplexionDeep}
	preferenceValues   = []Preference{PrefFragranceFree, PrefAlcoholFree, PrefSiliconeFree, PrefCrueltyFree, PrefVegan}
	sleepValues        = []SleepHours{SleepLessThan6, Sleep6To8, SleepMoreThan8}
	stressValues       = []StressLevel{StressLow, StressModerate, StressHigh, StressVeryHigh}
	exerciseValues     = []ExerciseFrequency{ExerciseNever, Exercise1To2, Exercise3To4, Exercise5OrMore}
	skinCareTimeValues = []SkinCareTime{TimeUnder5, Time5To10, Time10To20, Time20OrMore}
)

// canonical matches raw against the recognized values case-insensitively and
// returns the canonical spelling.
func canonical[T ~string](raw T, values []T) (T, bool) {
	needle := strings.TrimSpace(string(raw))
	for _, v := range values {
		if strings.EqualFold(needle, string(v)) {
			return v, true
		}
	}
	return "", false
}

// SurveyValues lists every recognized survey value, in display order.
type SurveyValues struct {
	SkinTypes     []SkinType          `json:"skinTypes" yaml:"skinTypes"`
	Concerns      []Concern           `json:"concerns" yaml:"concerns"`
	ScarringTypes []ScarringType      `json:"scarringTypes" yaml:"scarringTypes"`
	AcneTypes     []AcneType          `json:"acneTypes" yaml:"acneTypes"`
	Complexions   []Complexion        `json:"complexions" yaml:"complexions"`
	Preferences   []Preference        `json:"preferences" yaml:"preferences"`
	SleepHours    []SleepHours        `json:"sleepHours" yaml:"sleepHours"`
	StressLevels  []StressLevel       `json:"stressLevels" yaml:"stressLevels"`
	Exercise      []ExerciseFrequency `json:"exercise" yaml:"exercise"`
	SkinCareTimes []SkinCareTime      `json:"skinCareTimes" yaml:"skinCareTimes"`

	// ConcernIngredients is the full ingredient catalog per concern. Plans use
	// only the first two of each list.
	ConcernIngredients map[Concern][]string `json:"concernIngredients" yaml:"concernIngredients"`
}

// RecognizedValues returns copies of the recognized value sets.
func RecognizedValues() SurveyValues {
	return SurveyValues{
		SkinTypes:     append([]SkinType(nil), skinTypeValues...),
		Concerns:      append([]Concern(nil), concernValues...),
		ScarringTypes: append([]ScarringType(nil), scarringTypeValues...),
		AcneTypes:     append([]AcneType(nil), acneTypeValues...),
		Complexions:   append([]Complexion(nil), complexionValues...),
		Preferences:   append([]Preference(nil), preferenceValues...),
		SleepHours:    append([]SleepHours(nil), sleepValues...),
		StressLevels:  append([]StressLevel(nil), stressValues...),
		Exercise:      append([]ExerciseFrequency(nil), exerciseValues...),
		SkinCareTimes: append([]SkinCareTime(nil), skinCareTimeValues...),

		ConcernIngredients: concernCatalog(),
	}
}

func concernCatalog() map[Concern][]string {
	out := make(map[Concern][]string, len(concernValues))
	for _, c := range concernValues {
		out[c] = ConcernIngredients(c)
	}
	return out
}
