package usecase

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jsau0309/altarflowdev-sub007/internal/domain/entities"
	mock_interfaces "github.com/jsau0309/altarflowdev-sub007/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestIdempotencyUseCase_Execute_MissingKey(t *testing.T) {
	uc := NewIdempotencyUseCase(nil)
	_, err := uc.Execute(context.Background(), "account-create:", "", nil)
	if !errors.Is(err, ErrMissingIdempotencyKey) {
		t.Fatalf("expected ErrMissingIdempotencyKey, got %v", err)
	}
}

func TestIdempotencyUseCase_Execute_Replay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIIdempotencyRepository(ctrl)
	uc := NewIdempotencyUseCase(repo)
	now := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return now }

	cached := []byte(`{"id":"ch-1"}`)
	repo.EXPECT().Get(gomock.Any(), "account-create:key-1").Return(entities.IdempotencyRecord{
		CacheKey:     "account-create:key-1",
		ResponseBody: cached,
		StatusCode:   201,
		ExpiresAt:    now.Add(time.Hour),
	}, nil)

	opCalls := 0
	op := func(ctx context.Context) ([]byte, int, error) {
		opCalls++
		return []byte(`{"id":"ch-other"}`), 201, nil
	}

	got, err := uc.Execute(context.Background(), "account-create:", "key-1", op)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opCalls != 0 {
		t.Fatalf("operation must not run on replay, ran %d times", opCalls)
	}
	if !got.Replayed {
		t.Fatal("expected replayed outcome")
	}
	if !bytes.Equal(got.Body, cached) || got.StatusCode != 201 {
		t.Fatalf("replayed response must be byte-identical, got status=%d body=%s", got.StatusCode, got.Body)
	}
}

func TestIdempotencyUseCase_Execute_FreshRun(t *testing.T) {
	t.Run("success cached with 24h ttl", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIIdempotencyRepository(ctrl)
		uc := NewIdempotencyUseCase(repo)
		now := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)
		uc.now = func() time.Time { return now }

		repo.EXPECT().Get(gomock.Any(), "account-create:key-1").Return(entities.IdempotencyRecord{}, nil)
		repo.EXPECT().Put(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, rec entities.IdempotencyRecord) error {
				if rec.CacheKey != "account-create:key-1" {
					t.Fatalf("unexpected cache key %s", rec.CacheKey)
				}
				if !rec.ExpiresAt.Equal(now.Add(24 * time.Hour)) {
					t.Fatalf("expected 24h expiry, got %s", rec.ExpiresAt)
				}
				return nil
			})

		got, err := uc.Execute(context.Background(), "account-create:", "key-1", func(ctx context.Context) ([]byte, int, error) {
			return []byte(`ok`), 200, nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Replayed {
			t.Fatal("fresh run must not be marked replayed")
		}
	})

	t.Run("non-2xx not cached", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIIdempotencyRepository(ctrl)
		uc := NewIdempotencyUseCase(repo)

		repo.EXPECT().Get(gomock.Any(), "account-create:key-1").Return(entities.IdempotencyRecord{}, nil)

		got, err := uc.Execute(context.Background(), "account-create:", "key-1", func(ctx context.Context) ([]byte, int, error) {
			return []byte(`{"code":"CONFLICT"}`), 409, nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.StatusCode != 409 {
			t.Fatalf("expected passthrough 409, got %d", got.StatusCode)
		}
	})

	t.Run("operation error not cached", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIIdempotencyRepository(ctrl)
		uc := NewIdempotencyUseCase(repo)

		repo.EXPECT().Get(gomock.Any(), "account-create:key-1").Return(entities.IdempotencyRecord{}, nil)

		_, err := uc.Execute(context.Background(), "account-create:", "key-1", func(ctx context.Context) ([]byte, int, error) {
			return nil, 0, errors.New("provider down")
		})
		if err == nil || err.Error() != "provider down" {
			t.Fatalf("expected provider down error, got %v", err)
		}
	})

	t.Run("cache write failure does not surface", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIIdempotencyRepository(ctrl)
		uc := NewIdempotencyUseCase(repo)

		repo.EXPECT().Get(gomock.Any(), "account-create:key-1").Return(entities.IdempotencyRecord{}, nil)
		repo.EXPECT().Put(gomock.Any(), gomock.Any()).Return(errors.New("db"))

		got, err := uc.Execute(context.Background(), "account-create:", "key-1", func(ctx context.Context) ([]byte, int, error) {
			return []byte(`ok`), 200, nil
		})
		if err != nil {
			t.Fatalf("cache write failure must not fail the call: %v", err)
		}
		if got.StatusCode != 200 {
			t.Fatalf("expected 200, got %d", got.StatusCode)
		}
	})
}

func TestIdempotencyUseCase_Execute_ExpiredRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIIdempotencyRepository(ctrl)
	uc := NewIdempotencyUseCase(repo)
	now := time.Date(2025, 4, 2, 11, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return now }

	repo.EXPECT().Get(gomock.Any(), "account-create:key-1").Return(entities.IdempotencyRecord{
		CacheKey:     "account-create:key-1",
		ResponseBody: []byte(`stale`),
		StatusCode:   201,
		ExpiresAt:    now.Add(-time.Minute),
	}, nil)
	repo.EXPECT().Put(gomock.Any(), gomock.Any()).Return(nil)

	opCalls := 0
	got, err := uc.Execute(context.Background(), "account-create:", "key-1", func(ctx context.Context) ([]byte, int, error) {
		opCalls++
		return []byte(`fresh`), 200, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opCalls != 1 {
		t.Fatalf("expired record must re-execute, op ran %d times", opCalls)
	}
	if got.Replayed || string(got.Body) != "fresh" {
		t.Fatalf("expected fresh outcome, got %+v", got)
	}
}
