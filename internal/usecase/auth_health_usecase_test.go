package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jsau0309/altarflowdev-sub007/internal/usecase/interfaces"
	mock_interfaces "github.com/jsau0309/altarflowdev-sub007/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

// fakeHealthCache holds a single entry, like the in-memory cache the
// service runs with, so tests can drive multi-call scenarios.
type fakeHealthCache struct {
	entry interfaces.CachedAuthHealth
	set   bool
}

func (c *fakeHealthCache) Get() (interfaces.CachedAuthHealth, bool) { return c.entry, c.set }
func (c *fakeHealthCache) Put(entry interfaces.CachedAuthHealth)    { c.entry, c.set = entry, true }

func TestAuthHealthUseCase_Check_FreshProbe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := mock_interfaces.NewMockIAuthHealthClient(ctrl)
	cache := &fakeHealthCache{}
	uc := NewAuthHealthUseCase(client, cache, nil)
	now := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return now }

	client.EXPECT().CheckHealth(gomock.Any()).Return(interfaces.AuthHealthProbe{Healthy: true, Detail: "ok"}, nil)

	got := uc.Check(context.Background())
	if got.Status != "healthy" || got.Cached {
		t.Fatalf("expected fresh healthy verdict, got %+v", got)
	}
	if !cache.set || !cache.entry.FetchedAt.Equal(now) || cache.entry.ValidFor != 4*time.Minute {
		t.Fatalf("expected cached entry with 4m validity, got %+v", cache.entry)
	}
}

func TestAuthHealthUseCase_Check_CachedWithinWindow(t *testing.T) {
	cache := &fakeHealthCache{}
	uc := NewAuthHealthUseCase(nil, cache, nil)
	fetched := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)
	cache.Put(interfaces.CachedAuthHealth{Healthy: false, Detail: "timeout", FetchedAt: fetched, ValidFor: 4 * time.Minute})
	uc.now = func() time.Time { return fetched.Add(3 * time.Minute) }

	got := uc.Check(context.Background())
	if got.Status != "unhealthy" || !got.Cached {
		t.Fatalf("expected cached unhealthy verdict, got %+v", got)
	}
	if !got.CheckedAt.Equal(fetched) {
		t.Fatalf("checked_at must be the original fetch time, got %s", got.CheckedAt)
	}
}

func TestAuthHealthUseCase_Check_RateLimited(t *testing.T) {
	fetched := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)

	t.Run("extends validity without touching the timestamp", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		client := mock_interfaces.NewMockIAuthHealthClient(ctrl)
		cache := &fakeHealthCache{}
		uc := NewAuthHealthUseCase(client, cache, nil)
		cache.Put(interfaces.CachedAuthHealth{Healthy: true, FetchedAt: fetched, ValidFor: 4 * time.Minute})

		// Entry just lapsed; the refresh attempt gets throttled.
		uc.now = func() time.Time { return fetched.Add(4*time.Minute + time.Second) }
		client.EXPECT().CheckHealth(gomock.Any()).Return(interfaces.AuthHealthProbe{}, interfaces.ErrAuthRateLimited)

		got := uc.Check(context.Background())
		if got.Status != "rate_limited" || !got.RateLimited {
			t.Fatalf("past the 4m window no verdict may be served, got %+v", got)
		}
		if !cache.entry.FetchedAt.Equal(fetched) {
			t.Fatalf("fetched_at must not be refreshed, got %s", cache.entry.FetchedAt)
		}
		if cache.entry.ValidFor != 15*time.Minute {
			t.Fatalf("expected 15m extension, got %s", cache.entry.ValidFor)
		}
	})

	t.Run("verdict still served inside the original window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		client := mock_interfaces.NewMockIAuthHealthClient(ctrl)
		cache := &fakeHealthCache{}
		uc := NewAuthHealthUseCase(client, cache, nil)
		// ValidFor already lapsed but the 4m verdict window has not;
		// this forces a refresh that gets throttled.
		cache.Put(interfaces.CachedAuthHealth{Healthy: true, FetchedAt: fetched, ValidFor: 2 * time.Minute})
		uc.now = func() time.Time { return fetched.Add(3 * time.Minute) }
		client.EXPECT().CheckHealth(gomock.Any()).Return(interfaces.AuthHealthProbe{}, interfaces.ErrAuthRateLimited)

		got := uc.Check(context.Background())
		if got.Status != "healthy" || !got.Cached || !got.RateLimited {
			t.Fatalf("expected cached healthy verdict flagged rate limited, got %+v", got)
		}
	})

	t.Run("extended entry past the window answers rate_limited", func(t *testing.T) {
		cache := &fakeHealthCache{}
		uc := NewAuthHealthUseCase(nil, cache, nil)
		cache.Put(interfaces.CachedAuthHealth{Healthy: true, FetchedAt: fetched, ValidFor: 15 * time.Minute, RateLimited: true})
		uc.now = func() time.Time { return fetched.Add(10 * time.Minute) }

		got := uc.Check(context.Background())
		if got.Status != "rate_limited" || !got.RateLimited {
			t.Fatalf("extended entry must not yield a verdict past 4m, got %+v", got)
		}
	})

	t.Run("no previous entry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		client := mock_interfaces.NewMockIAuthHealthClient(ctrl)
		cache := &fakeHealthCache{}
		uc := NewAuthHealthUseCase(client, cache, nil)
		uc.now = func() time.Time { return fetched }
		client.EXPECT().CheckHealth(gomock.Any()).Return(interfaces.AuthHealthProbe{}, interfaces.ErrAuthRateLimited)

		got := uc.Check(context.Background())
		if got.Status != "rate_limited" {
			t.Fatalf("expected rate_limited with empty cache, got %+v", got)
		}
	})
}

func TestAuthHealthUseCase_Check_ClientNotConfigured(t *testing.T) {
	cache := &fakeHealthCache{}
	uc := NewAuthHealthUseCase(nil, cache, nil)
	now := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return now }

	got := uc.Check(context.Background())
	if got.Status != "unhealthy" {
		t.Fatalf("expected unhealthy without a client, got %+v", got)
	}
	if got.Detail != ErrAuthClientNotConfigured.Error() {
		t.Fatalf("unexpected detail %q", got.Detail)
	}
	if !cache.set || cache.entry.Healthy {
		t.Fatalf("expected an unhealthy entry cached, got %+v", cache.entry)
	}
}

func TestAuthHealthUseCase_Check_Notifications(t *testing.T) {
	fetched := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)

	t.Run("notifies on healthy to unhealthy", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		client := mock_interfaces.NewMockIAuthHealthClient(ctrl)
		notifier := mock_interfaces.NewMockIHealthNotifier(ctrl)
		cache := &fakeHealthCache{}
		uc := NewAuthHealthUseCase(client, cache, notifier)
		cache.Put(interfaces.CachedAuthHealth{Healthy: true, FetchedAt: fetched, ValidFor: 4 * time.Minute})
		uc.now = func() time.Time { return fetched.Add(5 * time.Minute) }

		client.EXPECT().CheckHealth(gomock.Any()).Return(interfaces.AuthHealthProbe{Healthy: false, Detail: "timeout"}, nil)
		notifier.EXPECT().NotifyTransition(gomock.Any(), false, "timeout").Return(nil)

		got := uc.Check(context.Background())
		if got.Status != "unhealthy" {
			t.Fatalf("expected unhealthy, got %+v", got)
		}
	})

	t.Run("no notification when state is unchanged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		client := mock_interfaces.NewMockIAuthHealthClient(ctrl)
		notifier := mock_interfaces.NewMockIHealthNotifier(ctrl)
		cache := &fakeHealthCache{}
		uc := NewAuthHealthUseCase(client, cache, notifier)
		cache.Put(interfaces.CachedAuthHealth{Healthy: false, FetchedAt: fetched, ValidFor: 4 * time.Minute})
		uc.now = func() time.Time { return fetched.Add(5 * time.Minute) }

		client.EXPECT().CheckHealth(gomock.Any()).Return(interfaces.AuthHealthProbe{Healthy: false, Detail: "still down"}, nil)
		// No NotifyTransition expectation: the controller fails on any call.

		got := uc.Check(context.Background())
		if got.Status != "unhealthy" {
			t.Fatalf("expected unhealthy, got %+v", got)
		}
	})

	t.Run("probe failure counts as unhealthy", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		client := mock_interfaces.NewMockIAuthHealthClient(ctrl)
		notifier := mock_interfaces.NewMockIHealthNotifier(ctrl)
		cache := &fakeHealthCache{}
		uc := NewAuthHealthUseCase(client, cache, notifier)
		cache.Put(interfaces.CachedAuthHealth{Healthy: true, FetchedAt: fetched, ValidFor: 4 * time.Minute})
		uc.now = func() time.Time { return fetched.Add(5 * time.Minute) }

		client.EXPECT().CheckHealth(gomock.Any()).Return(interfaces.AuthHealthProbe{}, errors.New("connection refused"))
		notifier.EXPECT().NotifyTransition(gomock.Any(), false, "connection refused").Return(nil)

		got := uc.Check(context.Background())
		if got.Status != "unhealthy" {
			t.Fatalf("expected unhealthy on probe failure, got %+v", got)
		}
	})
}
