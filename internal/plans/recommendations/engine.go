package recommendations

// Engine turns surveys into plans. It holds only read-only settings and is
// safe for concurrent use.
type Engine struct {
	allowEmptyConcerns bool
	guaranteeSPF       bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithEmptyConcernsAllowed accepts surveys that list no concerns.
func WithEmptyConcernsAllowed() Option {
	return func(e *Engine) { e.allowEmptyConcerns = true }
}

// WithSPFGuaranteed keeps the SPF recommendation when the product cap would
// otherwise drop it.
func WithSPFGuaranteed() Option {
	return func(e *Engine) { e.guaranteeSPF = true }
}

// New builds an Engine.
func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultEngine = New()

// Variant names the settings that change plan output, for use in cache keys.
func (e *Engine) Variant() string {
	v := "v1"
	if e.allowEmptyConcerns {
		v += ".ec"
	}
	if e.guaranteeSPF {
		v += ".spf"
	}
	return v
}

// BuildPlan builds a plan with the default engine settings.
func BuildPlan(s Survey) (Plan, error) {
	return defaultEngine.BuildPlan(s)
}

// Normalize validates and canonicalizes a survey using the engine settings.
func (e *Engine) Normalize(s Survey) (Survey, error) {
	return Normalize(s, e.allowEmptyConcerns)
}

// BuildPlan validates the survey and runs the four rule stages in order:
// routine, ingredients, lifestyle, products.
func (e *Engine) BuildPlan(s Survey) (Plan, error) {
	survey, err := e.Normalize(s)
	if err != nil {
		return Plan{}, err
	}

	routine, description := ClassifyRoutine(survey.SkinTypes, survey.Lifestyle.SkinCareTime)
	return Plan{
		RoutineType:         routine,
		RoutineDescription:  description,
		PriorityConcerns:    PriorityConcerns(survey.Concerns),
		KeyIngredients:      ResolveKeyIngredients(survey.Concerns, survey.SkinTypes),
		AvoidIngredients:    ResolveAvoidIngredients(survey.Allergens, survey.Preferences),
		LifestyleAdvice:     LifestyleAdvice(survey.Lifestyle),
		RecommendedProducts: capProducts(assembleProducts(survey), e.guaranteeSPF),
	}, nil
}

// PriorityConcerns returns the first three concerns in ranked order.
func PriorityConcerns(concerns []Concern) []Concern {
	n := len(concerns)
	if n > priorityConcernsLength {
		n = priorityConcernsLength
	}
	out := make([]Concern, n)
	copy(out, concerns[:n])
	return out
}
