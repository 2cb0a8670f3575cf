package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/jsau0309/altarflowdev-sub007/internal/usecase/interfaces"
)

const (
	authHealthTTL         = 4 * time.Minute
	authHealthRateLimited = 15 * time.Minute
)

var ErrAuthClientNotConfigured = errors.New("auth health client not configured")

// AuthHealthResult is the verdict served to monitoring. Status is
// "healthy", "unhealthy" or "rate_limited"; the last one means no
// trustworthy verdict is available and the handler answers 429.
type AuthHealthResult struct {
	Status      string    `json:"status"`
	Detail      string    `json:"detail,omitempty"`
	Cached      bool      `json:"cached"`
	RateLimited bool      `json:"rateLimited"`
	CheckedAt   time.Time `json:"checked_at"`
}

// IAuthHealthUseCase shields the upstream auth provider from being
// polled every monitoring cycle.

type IAuthHealthUseCase interface {
	Check(ctx context.Context) AuthHealthResult
}

type AuthHealthUseCase struct {
	client   interfaces.IAuthHealthClient
	cache    interfaces.IAuthHealthCache
	notifier interfaces.IHealthNotifier
	now      func() time.Time
}

var _ IAuthHealthUseCase = (*AuthHealthUseCase)(nil)

func NewAuthHealthUseCase(client interfaces.IAuthHealthClient, cache interfaces.IAuthHealthCache, notifier interfaces.IHealthNotifier) *AuthHealthUseCase {
	return &AuthHealthUseCase{client: client, cache: cache, notifier: notifier, now: time.Now}
}

// Check serves the cached verdict while it is younger than 4 minutes.
// When the upstream rate-limits a refresh, the cached entry's validity is
// extended to 15 minutes from the ORIGINAL fetch so the upstream is not
// hammered, but the verdict itself is only served inside the original
// 4-minute window; past it the answer is rate_limited, never a stale
// verdict presented as fresh.
func (u *AuthHealthUseCase) Check(ctx context.Context) AuthHealthResult {
	now := u.now().UTC()

	if entry, ok := u.cache.Get(); ok && now.Before(entry.FetchedAt.Add(entry.ValidFor)) {
		if entry.RateLimited && !now.Before(entry.FetchedAt.Add(authHealthTTL)) {
			return AuthHealthResult{Status: "rate_limited", RateLimited: true, CheckedAt: entry.FetchedAt}
		}
		return AuthHealthResult{
			Status:      verdict(entry.Healthy),
			Detail:      entry.Detail,
			Cached:      true,
			RateLimited: entry.RateLimited,
			CheckedAt:   entry.FetchedAt,
		}
	}

	prev, hadPrev := u.cache.Get()

	var probe interfaces.AuthHealthProbe
	var err error
	if u.client == nil {
		err = ErrAuthClientNotConfigured
	} else {
		probe, err = u.client.CheckHealth(ctx)
	}
	if errors.Is(err, interfaces.ErrAuthRateLimited) {
		log.Printf("[health][usecase] upstream rate limited")
		if hadPrev {
			// Keep the entry alive without refreshing its timestamp.
			extended := prev
			extended.ValidFor = authHealthRateLimited
			extended.RateLimited = true
			u.cache.Put(extended)
			if now.Before(prev.FetchedAt.Add(authHealthTTL)) {
				return AuthHealthResult{
					Status:      verdict(prev.Healthy),
					Detail:      prev.Detail,
					Cached:      true,
					RateLimited: true,
					CheckedAt:   prev.FetchedAt,
				}
			}
		}
		return AuthHealthResult{Status: "rate_limited", RateLimited: true, CheckedAt: now}
	}
	if err != nil {
		log.Printf("[health][usecase] probe failed err=%v", err)
		probe = interfaces.AuthHealthProbe{Healthy: false, Detail: err.Error()}
	}

	u.cache.Put(interfaces.CachedAuthHealth{
		Healthy:   probe.Healthy,
		Detail:    probe.Detail,
		FetchedAt: now,
		ValidFor:  authHealthTTL,
	})

	if hadPrev && prev.Healthy != probe.Healthy && u.notifier != nil {
		// Transition-only: sustained outages alert once.
		if err := u.notifier.NotifyTransition(ctx, probe.Healthy, probe.Detail); err != nil {
			log.Printf("[health][usecase] notify failed err=%v", err)
		}
	}

	return AuthHealthResult{Status: verdict(probe.Healthy), Detail: probe.Detail, CheckedAt: now}
}

func verdict(healthy bool) string {
	if healthy {
		return "healthy"
	}
	return "unhealthy"
}
