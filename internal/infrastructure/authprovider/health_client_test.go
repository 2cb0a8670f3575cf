package authprovider

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsau0309/altarflowdev-sub007/internal/usecase/interfaces"
)

func TestNewHealthClient(t *testing.T) {
	if _, err := NewHealthClient("  "); !errors.Is(err, ErrMissingAuthHealthURL) {
		t.Fatalf("expected ErrMissingAuthHealthURL, got %v", err)
	}
	if _, err := NewHealthClient("https://auth.example/health"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestHealthClient_CheckHealth(t *testing.T) {
	newClient := func(t *testing.T, status int) *HealthClient {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(status)
		}))
		t.Cleanup(srv.Close)
		c, err := NewHealthClient(srv.URL)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return c
	}

	t.Run("2xx is healthy", func(t *testing.T) {
		c := newClient(t, http.StatusOK)
		probe, err := c.CheckHealth(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !probe.Healthy {
			t.Fatalf("expected healthy, got %+v", probe)
		}
	})

	t.Run("429 surfaces the rate-limit sentinel", func(t *testing.T) {
		c := newClient(t, http.StatusTooManyRequests)
		_, err := c.CheckHealth(context.Background())
		if !errors.Is(err, interfaces.ErrAuthRateLimited) {
			t.Fatalf("expected ErrAuthRateLimited, got %v", err)
		}
	})

	t.Run("5xx is unhealthy, not an error", func(t *testing.T) {
		c := newClient(t, http.StatusServiceUnavailable)
		probe, err := c.CheckHealth(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if probe.Healthy || probe.Detail == "" {
			t.Fatalf("expected unhealthy verdict with detail, got %+v", probe)
		}
	})

	t.Run("unreachable upstream is an error", func(t *testing.T) {
		c, err := NewHealthClient("http://127.0.0.1:1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := c.CheckHealth(context.Background()); err == nil {
			t.Fatal("expected a transport error")
		}
	})
}
