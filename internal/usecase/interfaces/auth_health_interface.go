package interfaces

import (
	"context"
	"errors"
	"time"
)

// ErrAuthRateLimited is returned by the health client when the upstream
// auth provider answers with a rate-limit signal instead of a verdict.
var ErrAuthRateLimited = errors.New("auth provider rate limited")

// AuthHealthProbe is the result of one live upstream check.
type AuthHealthProbe struct {
	Healthy bool
	Detail  string
}

// CachedAuthHealth is the stored result of the last successful probe.
// FetchedAt never changes after the probe; under a rate-limit response
// only ValidFor is extended, so the original fetch age stays observable.
type CachedAuthHealth struct {
	Healthy     bool
	Detail      string
	FetchedAt   time.Time
	ValidFor    time.Duration
	RateLimited bool
}

// IAuthHealthClient probes the upstream auth provider.
type IAuthHealthClient interface {
	CheckHealth(ctx context.Context) (AuthHealthProbe, error)
}

// IAuthHealthCache stores the last probe result. Implementations are dumb
// stores; validity decisions stay in the usecase so the windows are
// testable against an injected clock. The default implementation is a
// process-local in-memory cell, swappable for a shared cache.
type IAuthHealthCache interface {
	Get() (CachedAuthHealth, bool)
	Put(CachedAuthHealth)
}

// IHealthNotifier sends an outward notification when the auth provider's
// verdict transitions between healthy and unhealthy. It is never called
// for repeated identical verdicts.
type IHealthNotifier interface {
	NotifyTransition(ctx context.Context, healthy bool, detail string) error
}
