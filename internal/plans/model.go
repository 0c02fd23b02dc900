package plans

import (
	"time"

	"skincare-backend/internal/plans/recommendations"
)

// MaxBatchSize bounds a single GenerateBatch call.
const MaxBatchSize = 50

// PlanRecord is a persisted plan together with the normalized survey it was
// built from.
type PlanRecord struct {
	ID          string                 `json:"id"`
	ProfileID   string                 `json:"profileId,omitempty"`
	Fingerprint string                 `json:"fingerprint"`
	Survey      recommendations.Survey `json:"survey"`
	Plan        recommendations.Plan   `json:"plan"`
	SPFDropped  bool                   `json:"spfDropped"`
	CreatedAt   time.Time              `json:"createdAt"`
}

// BatchResult is the outcome for one survey of a batch, at the survey's
// input index. Exactly one of Plan and Error is set.
type BatchResult struct {
	Index int                   `json:"index"`
	Plan  *recommendations.Plan `json:"plan,omitempty"`
	Error *BatchError           `json:"error,omitempty"`
}

// BatchError reports why a single survey in a batch was rejected.
type BatchError struct {
	Code    string                       `json:"code"`
	Message string                       `json:"message"`
	Details []recommendations.FieldError `json:"details,omitempty"`
}
