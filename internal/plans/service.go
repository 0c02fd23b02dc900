package plans

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"skincare-backend/internal/plans/recommendations"
	"skincare-backend/internal/shared/metrics"
	"skincare-backend/internal/shared/storage/cache"
	"skincare-backend/internal/shared/telemetry"
	"skincare-backend/internal/shared/util"
)

const defaultBatchConcurrency = 4

// Service builds plans, caches them by survey fingerprint and stores the ones
// a profile asks to keep. Cache and Metrics are optional.
type Service struct {
	Engine           *recommendations.Engine
	Repo             Repo
	Cache            cache.Cache
	Metrics          *metrics.Metrics
	CacheTTL         time.Duration
	BatchConcurrency int

	Now   func() time.Time
	NewID func() string
}

type built struct {
	survey      recommendations.Survey
	plan        recommendations.Plan
	fingerprint string
	cached      bool
}

// Preview builds a plan without persisting it.
func (s *Service) Preview(ctx context.Context, survey recommendations.Survey) (recommendations.Plan, error) {
	b, err := s.build(ctx, survey)
	if err != nil {
		return recommendations.Plan{}, err
	}
	return b.plan, nil
}

// Generate builds a plan and stores it under a new ID.
func (s *Service) Generate(ctx context.Context, profileID string, survey recommendations.Survey) (PlanRecord, error) {
	b, err := s.build(ctx, survey)
	if err != nil {
		return PlanRecord{}, err
	}
	record := PlanRecord{
		ID:          s.newID(),
		ProfileID:   strings.TrimSpace(profileID),
		Fingerprint: b.fingerprint,
		Survey:      b.survey,
		Plan:        b.plan,
		SPFDropped:  !b.plan.HasSPF(),
		CreatedAt:   s.now().UTC(),
	}
	if err := s.Repo.Create(ctx, record); err != nil {
		telemetry.Error("plan.store_failed", map[string]any{
			"plan_id": record.ID,
			"error":   err,
		})
		return PlanRecord{}, fmt.Errorf("store plan: %w", err)
	}
	telemetry.Info("plan.generated", map[string]any{
		"plan_id":      record.ID,
		"profile_id":   record.ProfileID,
		"routine_type": record.Plan.RoutineType,
		"products":     len(record.Plan.RecommendedProducts),
		"cache_hit":    b.cached,
	})
	return record, nil
}

// GenerateBatch previews up to MaxBatchSize surveys concurrently. Invalid
// surveys are reported in their BatchResult; only infrastructure failures or
// cancellation fail the whole call. Results keep input order.
func (s *Service) GenerateBatch(ctx context.Context, surveys []recommendations.Survey) ([]BatchResult, error) {
	if len(surveys) == 0 {
		return nil, ErrEmptyBatch
	}
	if len(surveys) > MaxBatchSize {
		return nil, fmt.Errorf("%w: %d > %d", ErrBatchTooLarge, len(surveys), MaxBatchSize)
	}

	results := make([]BatchResult, len(surveys))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.batchConcurrency())
	for i, survey := range surveys {
		g.Go(func() error {
			plan, err := s.Preview(gctx, survey)
			switch {
			case err == nil:
				results[i] = BatchResult{Index: i, Plan: &plan}
			case errors.Is(err, recommendations.ErrInvalidInput):
				results[i] = BatchResult{Index: i, Error: batchError(err)}
			default:
				return fmt.Errorf("survey %d: %w", i, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Get loads a stored plan.
func (s *Service) Get(ctx context.Context, id string) (PlanRecord, error) {
	return s.Repo.GetByID(ctx, id)
}

// List returns a profile's stored plans, newest first.
func (s *Service) List(ctx context.Context, profileID string, limit, offset int) ([]PlanRecord, error) {
	profileID = strings.TrimSpace(profileID)
	if profileID == "" {
		return nil, ErrProfileMissing
	}
	return s.Repo.ListByProfile(ctx, profileID, limit, offset)
}

func (s *Service) build(ctx context.Context, survey recommendations.Survey) (built, error) {
	normalized, err := s.Engine.Normalize(survey)
	if err != nil {
		s.Metrics.IncValidationFailure()
		return built{}, err
	}
	fingerprint, err := util.Fingerprint(normalized)
	if err != nil {
		return built{}, fmt.Errorf("fingerprint survey: %w", err)
	}
	key := s.Engine.Variant() + ":" + fingerprint

	if plan, ok := s.cached(ctx, key); ok {
		return built{survey: normalized, plan: plan, fingerprint: fingerprint, cached: true}, nil
	}

	start := time.Now()
	plan, err := s.Engine.BuildPlan(normalized)
	if err != nil {
		return built{}, err
	}
	spfDropped := !plan.HasSPF()
	s.Metrics.ObservePlan(plan.RoutineType, time.Since(start).Seconds(), spfDropped)
	if spfDropped {
		telemetry.Warn("plan.spf_dropped", map[string]any{
			"fingerprint":  fingerprint,
			"routine_type": plan.RoutineType,
			"products":     len(plan.RecommendedProducts),
		})
	}
	s.store(ctx, key, plan)
	return built{survey: normalized, plan: plan, fingerprint: fingerprint}, nil
}

// cached returns a plan from the cache. Cache failures degrade to a miss.
func (s *Service) cached(ctx context.Context, key string) (recommendations.Plan, bool) {
	if s.Cache == nil {
		return recommendations.Plan{}, false
	}
	raw, ok, err := s.Cache.Get(ctx, key)
	if err != nil {
		telemetry.Warn("plan.cache_get_failed", map[string]any{"key": key, "error": err})
		return recommendations.Plan{}, false
	}
	var plan recommendations.Plan
	if ok {
		if err := json.Unmarshal(raw, &plan); err != nil {
			telemetry.Warn("plan.cache_decode_failed", map[string]any{"key": key, "error": err})
			ok = false
		}
	}
	s.Metrics.ObserveCache(ok)
	return plan, ok
}

func (s *Service) store(ctx context.Context, key string, plan recommendations.Plan) {
	if s.Cache == nil {
		return
	}
	raw, err := json.Marshal(plan)
	if err != nil {
		telemetry.Warn("plan.cache_encode_failed", map[string]any{"key": key, "error": err})
		return
	}
	if err := s.Cache.Set(ctx, key, raw, s.CacheTTL); err != nil {
		telemetry.Warn("plan.cache_set_failed", map[string]any{"key": key, "error": err})
	}
}

func (s *Service) batchConcurrency() int {
	if s.BatchConcurrency > 0 {
		return s.BatchConcurrency
	}
	return defaultBatchConcurrency
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Service) newID() string {
	if s.NewID != nil {
		return s.NewID()
	}
	return uuid.NewString()
}

func batchError(err error) *BatchError {
	out := &BatchError{Code: "validation_error", Message: err.Error()}
	var verr *recommendations.ValidationError
	if errors.As(err, &verr) {
		out.Message = "invalid survey"
		out.Details = verr.Fields
	}
	return out
}
