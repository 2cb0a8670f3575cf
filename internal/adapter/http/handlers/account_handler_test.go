package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsau0309/altarflowdev-sub007/internal/adapter/http/handlers/mocks"
	"github.com/jsau0309/altarflowdev-sub007/internal/domain/entities"
	"github.com/jsau0309/altarflowdev-sub007/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

// passthroughGuard makes the mocked idempotency guard run the wrapped
// operation, so handler tests exercise the real closure.
func passthroughGuard(guard *mocks.MockIIdempotencyUseCase, prefix, key string) *gomock.Call {
	return guard.EXPECT().Execute(gomock.Any(), prefix, key, gomock.Any()).DoAndReturn(
		func(ctx context.Context, _, _ string, op usecase.IdempotentOp) (usecase.IdempotentOutcome, error) {
			body, status, err := op(ctx)
			if err != nil {
				return usecase.IdempotentOutcome{}, err
			}
			return usecase.IdempotentOutcome{Body: body, StatusCode: status}, nil
		})
}

func TestAccountHandler_CreateAccount(t *testing.T) {
	gin.SetMode(gin.TestMode)
	church := entities.Church{ID: "ch-1", Name: "Grace Chapel", Email: "grace@example.org"}

	newRouter := func(h *AccountHandler) *gin.Engine {
		r := gin.New()
		r.POST("/v1/accounts", withChurch(church), h.CreateAccount)
		return r
	}

	t.Run("missing idempotency key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewAccountHandler(mocks.NewMockIAccountSetupUseCase(ctrl), mocks.NewMockIIdempotencyUseCase(ctrl))
		r := newRouter(h)

		req := httptest.NewRequest(http.MethodPost, "/v1/accounts", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body["code"] != "MISSING_IDEMPOTENCY_KEY" {
			t.Fatalf("expected MISSING_IDEMPOTENCY_KEY, got %v", body)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		setup := mocks.NewMockIAccountSetupUseCase(ctrl)
		guard := mocks.NewMockIIdempotencyUseCase(ctrl)
		h := NewAccountHandler(setup, guard)
		r := newRouter(h)

		passthroughGuard(guard, "account-create:", "ch-1:key-1")
		setup.EXPECT().CreateProviderAccount(gomock.Any(), church).Return(entities.Church{
			ID: "ch-1", Name: "Grace Chapel", StripeAccountID: "acct_new",
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/accounts", nil)
		req.Header.Set("Idempotency-Key", "key-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("replayed response served verbatim", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		setup := mocks.NewMockIAccountSetupUseCase(ctrl)
		guard := mocks.NewMockIIdempotencyUseCase(ctrl)
		h := NewAccountHandler(setup, guard)
		r := newRouter(h)

		cached := []byte(`{"id":"ch-1","stripe_account_id":"acct_new"}`)
		guard.EXPECT().Execute(gomock.Any(), "account-create:", "ch-1:key-1", gomock.Any()).
			Return(usecase.IdempotentOutcome{Body: cached, StatusCode: http.StatusCreated, Replayed: true}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/accounts", nil)
		req.Header.Set("Idempotency-Key", "key-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		if !bytes.Equal(w.Body.Bytes(), cached) {
			t.Fatalf("replayed body must be byte-identical, got %s", w.Body.String())
		}
	})

	t.Run("same client key from another organization is a distinct cache key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		setup := mocks.NewMockIAccountSetupUseCase(ctrl)
		guard := mocks.NewMockIIdempotencyUseCase(ctrl)
		h := NewAccountHandler(setup, guard)

		other := entities.Church{ID: "ch-other", Name: "Hope Parish", Email: "hope@example.org"}
		r := gin.New()
		r.POST("/v1/accounts", withChurch(other), h.CreateAccount)

		passthroughGuard(guard, "account-create:", "ch-other:key-1")
		setup.EXPECT().CreateProviderAccount(gomock.Any(), other).Return(entities.Church{
			ID: "ch-other", StripeAccountID: "acct_other",
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/accounts", nil)
		req.Header.Set("Idempotency-Key", "key-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("already onboarded maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		setup := mocks.NewMockIAccountSetupUseCase(ctrl)
		guard := mocks.NewMockIIdempotencyUseCase(ctrl)
		h := NewAccountHandler(setup, guard)
		r := newRouter(h)

		passthroughGuard(guard, "account-create:", "ch-1:key-1")
		setup.EXPECT().CreateProviderAccount(gomock.Any(), church).Return(entities.Church{}, usecase.ErrChurchAlreadyOnboarded)

		req := httptest.NewRequest(http.MethodPost, "/v1/accounts", nil)
		req.Header.Set("Idempotency-Key", "key-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestAccountHandler_CreateAccountLink(t *testing.T) {
	gin.SetMode(gin.TestMode)
	church := entities.Church{ID: "ch-1", StripeAccountID: "acct_1"}

	newRouter := func(h *AccountHandler) *gin.Engine {
		r := gin.New()
		r.POST("/v1/accounts/link", withChurch(church), h.CreateAccountLink)
		return r
	}

	t.Run("missing required urls", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewAccountHandler(mocks.NewMockIAccountSetupUseCase(ctrl), mocks.NewMockIIdempotencyUseCase(ctrl))
		r := newRouter(h)

		req := httptest.NewRequest(http.MethodPost, "/v1/accounts/link", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Idempotency-Key", "key-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		setup := mocks.NewMockIAccountSetupUseCase(ctrl)
		guard := mocks.NewMockIIdempotencyUseCase(ctrl)
		h := NewAccountHandler(setup, guard)
		r := newRouter(h)

		passthroughGuard(guard, "account-link:", "ch-1:key-1")
		setup.EXPECT().CreateOnboardingLink(gomock.Any(), church, "https://a.example/r", "https://a.example/c").
			Return("https://connect.example/onboard/xyz", nil)

		body := `{"refresh_url":"https://a.example/r","return_url":"https://a.example/c"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/accounts/link", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Idempotency-Key", "key-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		var resp map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if resp["url"] != "https://connect.example/onboard/xyz" {
			t.Fatalf("unexpected link response %v", resp)
		}
	})

	t.Run("invalid link url maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		setup := mocks.NewMockIAccountSetupUseCase(ctrl)
		guard := mocks.NewMockIIdempotencyUseCase(ctrl)
		h := NewAccountHandler(setup, guard)
		r := newRouter(h)

		passthroughGuard(guard, "account-link:", "ch-1:key-1")
		setup.EXPECT().CreateOnboardingLink(gomock.Any(), church, gomock.Any(), gomock.Any()).
			Return("", usecase.ErrInvalidLinkURL)

		body := `{"refresh_url":"http://a.example/r","return_url":"https://a.example/c"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/accounts/link", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Idempotency-Key", "key-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
