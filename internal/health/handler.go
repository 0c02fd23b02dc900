package health

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skincare-backend/internal/shared/server/respond"
	"skincare-backend/internal/shared/telemetry"
)

// RegisterRoutes attaches GET /health.
func (s *Service) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", s.handle)
}

func (s *Service) handle(c *gin.Context) {
	report := s.Status(c.Request.Context())
	if !report.OK {
		telemetry.Warn("health.degraded", map[string]any{"checks": report.Checks})
		respond.JSON(c, http.StatusServiceUnavailable, report)
		return
	}
	respond.OK(c, report)
}
