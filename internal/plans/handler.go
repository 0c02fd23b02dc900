package plans

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"skincare-backend/internal/plans/recommendations"
	"skincare-backend/internal/shared/server/middleware"
	"skincare-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the plans service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches plan routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/plans/preview", h.previewPlan)
	rg.POST("/plans/batch", h.batchPlans)
	rg.POST("/plans", h.createPlan)
	rg.GET("/plans", h.listPlans)
	rg.GET("/plans/:id", h.getPlan)
	rg.GET("/survey/options", h.surveyOptions)
}

type batchRequest struct {
	Surveys []recommendations.Survey `json:"surveys"`
}

func (h *Handler) previewPlan(c *gin.Context) {
	var survey recommendations.Survey
	if !bindSurvey(c, &survey) {
		return
	}
	plan, err := h.Svc.Preview(c.Request.Context(), survey)
	if err != nil {
		writeBuildError(c, err, "failed to build plan")
		return
	}
	respond.OK(c, plan)
}

func (h *Handler) createPlan(c *gin.Context) {
	var survey recommendations.Survey
	if !bindSurvey(c, &survey) {
		return
	}
	record, err := h.Svc.Generate(c.Request.Context(), middleware.ProfileIDFromContext(c), survey)
	if err != nil {
		writeBuildError(c, err, "failed to create plan")
		return
	}
	c.Set(middleware.PlanIDKey, record.ID)
	c.Header("Location", "/api/v1/plans/"+record.ID)
	respond.Created(c, record)
}

func (h *Handler) batchPlans(c *gin.Context) {
	var req batchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_json", "request body must be {\"surveys\": [...]}", nil)
		return
	}
	results, err := h.Svc.GenerateBatch(c.Request.Context(), req.Surveys)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyBatch), errors.Is(err, ErrBatchTooLarge):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), []map[string]any{
				{"field": "surveys", "issue": "size", "max": MaxBatchSize},
			})
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to build plans", nil)
		}
		return
	}
	respond.OK(c, gin.H{"results": results})
}

func (h *Handler) getPlan(c *gin.Context) {
	planID := c.Param("id")
	if planID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "plan id is required", nil)
		return
	}
	c.Set(middleware.PlanIDKey, planID)

	record, err := h.Svc.Get(c.Request.Context(), planID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "plan not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch plan", nil)
		}
		return
	}
	respond.OK(c, record)
}

func (h *Handler) listPlans(c *gin.Context) {
	limit := queryInt(c, "limit", defaultListLimit)
	offset := queryInt(c, "offset", 0)

	records, err := h.Svc.List(c.Request.Context(), middleware.ProfileIDFromContext(c), limit, offset)
	if err != nil {
		switch {
		case errors.Is(err, ErrProfileMissing):
			respond.Error(c, http.StatusBadRequest, "profile_required", "X-Profile-Id header is required", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list plans", nil)
		}
		return
	}

	resp := make([]gin.H, 0, len(records))
	for _, r := range records {
		resp = append(resp, gin.H{
			"id":               r.ID,
			"routineType":      r.Plan.RoutineType,
			"priorityConcerns": r.Plan.PriorityConcerns,
			"spfDropped":       r.SPFDropped,
			"createdAt":        r.CreatedAt,
		})
	}
	respond.OK(c, resp)
}

func (h *Handler) surveyOptions(c *gin.Context) {
	respond.OK(c, recommendations.RecognizedValues())
}

func bindSurvey(c *gin.Context, survey *recommendations.Survey) bool {
	if err := c.ShouldBindJSON(survey); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_json", "request body must be a survey object", nil)
		return false
	}
	return true
}

func writeBuildError(c *gin.Context, err error, fallback string) {
	var verr *recommendations.ValidationError
	switch {
	case errors.As(err, &verr):
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid survey", verr.Fields)
	case errors.Is(err, recommendations.ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}

func queryInt(c *gin.Context, name string, fallback int) int {
	v := c.Query(name)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}
