package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	request "github.com/jsau0309/altarflowdev-sub007/internal/adapter/http/dto/request"
	response "github.com/jsau0309/altarflowdev-sub007/internal/adapter/http/dto/response"
	"github.com/jsau0309/altarflowdev-sub007/internal/usecase"
	"github.com/jsau0309/altarflowdev-sub007/internal/usecase/interfaces"
	"github.com/jsau0309/altarflowdev-sub007/pkg"
)

var errInvalidReconcilePayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

// ReconcileHandler handles HTTP requests for payout reconciliation:
// manual triggers, per-church statistics and the historical import.

type ReconcileHandler struct {
	reconciler usecase.IPayoutReconcileUseCase
	importer   usecase.IPayoutImportUseCase
	payoutRepo interfaces.IPayoutSummaryRepository
}

func NewReconcileHandler(reconciler usecase.IPayoutReconcileUseCase, importer usecase.IPayoutImportUseCase, payoutRepo interfaces.IPayoutSummaryRepository) *ReconcileHandler {
	return &ReconcileHandler{reconciler: reconciler, importer: importer, payoutRepo: payoutRepo}
}

// TriggerReconcile handles POST /reconcile with either {payout_id} or
// {church_id}. The ownership check happens here, before the reconciler;
// the reconciler trusts its caller on it.
func (h *ReconcileHandler) TriggerReconcile(c *gin.Context) {
	church, ok := ChurchFromContext(c)
	if !ok {
		c.JSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
		return
	}

	var payload request.ReconcileRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidReconcilePayload.HTTPStatus, errInvalidReconcilePayload.ToHTTPError())
		return
	}
	if err := payload.Validate(); err != nil {
		c.JSON(errInvalidReconcilePayload.HTTPStatus, errInvalidReconcilePayload.ToHTTPError())
		return
	}

	if payoutID := payload.ResolvePayoutID(); payoutID != "" {
		log.Printf("[reconcile][handler] single start church_id=%s payout_id=%s", church.ID, payoutID)

		existing, err := h.payoutRepo.GetByPayoutID(c.Request.Context(), payoutID)
		if err != nil {
			appErr := mapReconcileError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		if existing.PayoutID != "" && existing.ChurchID != church.ID {
			appErr := pkg.NewDomainErrorSimple("FORBIDDEN", "Payout does not belong to your organization", http.StatusForbidden)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		summary, err := h.reconciler.Reconcile(c.Request.Context(), church, payoutID)
		if err != nil {
			log.Printf("[reconcile][handler] single failed payout_id=%s err=%v", payoutID, err)
			appErr := mapReconcileError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.JSON(http.StatusOK, response.FromReconciledSummary(summary))
		return
	}

	if payload.ResolveChurchID() != church.ID {
		appErr := pkg.NewDomainErrorSimple("FORBIDDEN", "Cannot reconcile another organization", http.StatusForbidden)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[reconcile][handler] bulk start church_id=%s", church.ID)
	result, err := h.reconciler.ReconcilePending(c.Request.Context(), church)
	if err != nil {
		log.Printf("[reconcile][handler] bulk failed church_id=%s err=%v", church.ID, err)
		appErr := mapReconcileError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	// Partial failures stay 200 with the breakdown embedded.
	c.JSON(http.StatusOK, response.FromBulkReconcile(result))
}

// GetStats handles GET /reconcile.
func (h *ReconcileHandler) GetStats(c *gin.Context) {
	church, ok := ChurchFromContext(c)
	if !ok {
		c.JSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
		return
	}

	stats, err := h.reconciler.Stats(c.Request.Context(), church.ID)
	if err != nil {
		log.Printf("[reconcile][handler] stats failed church_id=%s err=%v", church.ID, err)
		appErr := mapReconcileError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromStats(stats))
}

// ImportHistorical handles POST /reconcile/import-historical.
func (h *ReconcileHandler) ImportHistorical(c *gin.Context) {
	church, ok := ChurchFromContext(c)
	if !ok {
		c.JSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
		return
	}

	var payload request.ImportHistoricalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidReconcilePayload.HTTPStatus, errInvalidReconcilePayload.ToHTTPError())
		return
	}
	start, end, err := payload.ResolveRange()
	if err != nil {
		appErr := pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[reconcile][handler] import start church_id=%s limit=%d", church.ID, payload.Limit)
	result, err := h.importer.ImportHistorical(c.Request.Context(), church, payload.Limit, start, end)
	if err != nil {
		log.Printf("[reconcile][handler] import failed church_id=%s err=%v", church.ID, err)
		appErr := mapReconcileError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromImportResult(result))
}

func mapReconcileError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPayoutID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid payout id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrChurchNotOnboarded):
		return pkg.NewDomainErrorSimple("CHURCH_NOT_ONBOARDED", "Organization has no payments account", http.StatusConflict)
	case errors.Is(err, interfaces.ErrProviderResourceMissing):
		return pkg.NewDomainErrorSimple("PAYOUT_NOT_FOUND", "Payout not found at the payments provider", http.StatusNotFound)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("MISSING_CONFIG", "Payments gateway not configured", http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
