package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	response "github.com/jsau0309/altarflowdev-sub007/internal/adapter/http/dto/response"
	"github.com/jsau0309/altarflowdev-sub007/internal/usecase"
)

// HealthHandler serves the cached auth-provider health verdict.

type HealthHandler struct {
	usecase usecase.IAuthHealthUseCase
}

func NewHealthHandler(uc usecase.IAuthHealthUseCase) *HealthHandler {
	return &HealthHandler{usecase: uc}
}

// AuthHealth handles GET /health/auth. When no trustworthy verdict is
// available because the upstream is rate limiting, the answer is 429
// rather than a stale verdict presented as current.
func (h *HealthHandler) AuthHealth(c *gin.Context) {
	result := h.usecase.Check(c.Request.Context())
	status := http.StatusOK
	if result.Status == "rate_limited" {
		status = http.StatusTooManyRequests
	}
	c.JSON(status, response.FromAuthHealthResult(result))
}
