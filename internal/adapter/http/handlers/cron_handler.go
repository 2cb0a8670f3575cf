package handlers

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	response "github.com/jsau0309/altarflowdev-sub007/internal/adapter/http/dto/response"
	"github.com/jsau0309/altarflowdev-sub007/internal/usecase"
	"github.com/jsau0309/altarflowdev-sub007/internal/usecase/interfaces"
	"github.com/jsau0309/altarflowdev-sub007/pkg"
)

// CronHandler handles scheduler-triggered entrypoints. The shared secret
// is checked before any side effect; in production a missing secret is a
// configuration error that fails the whole endpoint.

type CronHandler struct {
	sweeper         usecase.IDonationSweepUseCase
	idempotencyRepo interfaces.IIdempotencyRepository
}

func NewCronHandler(sweeper usecase.IDonationSweepUseCase, idempotencyRepo interfaces.IIdempotencyRepository) *CronHandler {
	return &CronHandler{sweeper: sweeper, idempotencyRepo: idempotencyRepo}
}

// CleanupPendingDonations handles GET /cron/cleanup-pending-donations.
func (h *CronHandler) CleanupPendingDonations(c *gin.Context) {
	secret := os.Getenv("CRON_SECRET")
	if secret == "" {
		if os.Getenv("APP_ENV") == "production" {
			log.Printf("[cron][handler] CRON_SECRET not configured in production")
			appErr := pkg.NewDomainErrorSimple("MISSING_CONFIG", "Cron secret not configured", http.StatusInternalServerError)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	} else if bearerToken(c.GetHeader("Authorization")) != secret {
		appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid cron secret", http.StatusUnauthorized)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	// Opportunistic housekeeping while the scheduler has us running.
	if h.idempotencyRepo != nil {
		if n, err := h.idempotencyRepo.DeleteExpired(c.Request.Context()); err != nil {
			log.Printf("[cron][handler] idempotency cleanup failed err=%v", err)
		} else if n > 0 {
			log.Printf("[cron][handler] idempotency cleanup removed=%d", n)
		}
	}

	result, err := h.sweeper.Sweep(c.Request.Context())
	if err != nil {
		log.Printf("[cron][handler] sweep failed err=%v", err)
		appErr := pkg.NewDomainError("SWEEP_FAILED", "Donation sweep failed before processing any rows", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	// Per-row failures are embedded, not surfaced as a non-200.
	c.JSON(http.StatusOK, response.FromSweepResult(result))
}
