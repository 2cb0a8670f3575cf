package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	request "github.com/jsau0309/altarflowdev-sub007/internal/adapter/http/dto/request"
	response "github.com/jsau0309/altarflowdev-sub007/internal/adapter/http/dto/response"
	"github.com/jsau0309/altarflowdev-sub007/internal/usecase"
	"github.com/jsau0309/altarflowdev-sub007/pkg"
)

const (
	idempotencyKeyHeader = "Idempotency-Key"

	accountCreatePrefix = "account-create:"
	accountLinkPrefix   = "account-link:"
)

var errMissingIdempotencyKey = pkg.NewDomainErrorSimple("MISSING_IDEMPOTENCY_KEY", "Idempotency-Key header is required", http.StatusBadRequest)

// AccountHandler handles payments-provider setup endpoints. Both are
// mutating against the provider, so both run through the idempotency
// guard: a client retry with the same key replays the original response
// verbatim instead of creating a second account or link.

type AccountHandler struct {
	setup usecase.IAccountSetupUseCase
	guard usecase.IIdempotencyUseCase
}

func NewAccountHandler(setup usecase.IAccountSetupUseCase, guard usecase.IIdempotencyUseCase) *AccountHandler {
	return &AccountHandler{setup: setup, guard: guard}
}

// CreateAccount handles POST /accounts.
func (h *AccountHandler) CreateAccount(c *gin.Context) {
	church, ok := ChurchFromContext(c)
	if !ok {
		c.JSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
		return
	}

	key := strings.TrimSpace(c.GetHeader(idempotencyKeyHeader))
	if key == "" {
		c.JSON(errMissingIdempotencyKey.HTTPStatus, errMissingIdempotencyKey.ToHTTPError())
		return
	}
	log.Printf("[account][handler] create start church_id=%s", church.ID)

	// The client key is scoped by organization: two tenants reusing the
	// same key must never replay each other's responses.
	outcome, err := h.guard.Execute(c.Request.Context(), accountCreatePrefix, church.ID+":"+key, func(ctx context.Context) ([]byte, int, error) {
		updated, err := h.setup.CreateProviderAccount(ctx, church)
		if err != nil {
			return nil, 0, err
		}
		body, err := json.Marshal(response.FromOnboardedChurch(updated))
		if err != nil {
			return nil, 0, err
		}
		return body, http.StatusCreated, nil
	})
	if err != nil {
		log.Printf("[account][handler] create failed church_id=%s err=%v", church.ID, err)
		appErr := mapAccountError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if outcome.Replayed {
		log.Printf("[account][handler] create replayed church_id=%s", church.ID)
	}

	c.Data(outcome.StatusCode, "application/json", outcome.Body)
}

// CreateAccountLink handles POST /accounts/link.
func (h *AccountHandler) CreateAccountLink(c *gin.Context) {
	church, ok := ChurchFromContext(c)
	if !ok {
		c.JSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
		return
	}

	key := strings.TrimSpace(c.GetHeader(idempotencyKeyHeader))
	if key == "" {
		c.JSON(errMissingIdempotencyKey.HTTPStatus, errMissingIdempotencyKey.ToHTTPError())
		return
	}

	var payload request.AccountLinkRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	outcome, err := h.guard.Execute(c.Request.Context(), accountLinkPrefix, church.ID+":"+key, func(ctx context.Context) ([]byte, int, error) {
		url, err := h.setup.CreateOnboardingLink(ctx, church, payload.RefreshURL, payload.ReturnURL)
		if err != nil {
			return nil, 0, err
		}
		body, err := json.Marshal(response.AccountLinkResponse{URL: url})
		if err != nil {
			return nil, 0, err
		}
		return body, http.StatusCreated, nil
	})
	if err != nil {
		log.Printf("[account][handler] link failed church_id=%s err=%v", church.ID, err)
		appErr := mapAccountError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Data(outcome.StatusCode, "application/json", outcome.Body)
}

func mapAccountError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingIdempotencyKey):
		return errMissingIdempotencyKey
	case errors.Is(err, usecase.ErrChurchAlreadyOnboarded):
		return pkg.NewDomainErrorSimple("ALREADY_ONBOARDED", "Organization already has a payments account", http.StatusConflict)
	case errors.Is(err, usecase.ErrChurchNotOnboarded):
		return pkg.NewDomainErrorSimple("CHURCH_NOT_ONBOARDED", "Organization has no payments account", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidLinkURL):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Link URLs must be https", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("MISSING_CONFIG", "Payments gateway not configured", http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
