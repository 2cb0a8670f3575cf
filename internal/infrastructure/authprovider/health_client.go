package authprovider

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/jsau0309/altarflowdev-sub007/internal/usecase/interfaces"
)

var ErrMissingAuthHealthURL = errors.New("missing AUTH_HEALTH_URL")

// HealthClient probes the upstream auth provider's REST health endpoint.
// A 429 from the upstream is surfaced as ErrAuthRateLimited so the
// caching layer can decide what to serve.

type HealthClient struct {
	url        string
	httpClient *http.Client
}

var _ interfaces.IAuthHealthClient = (*HealthClient)(nil)

func NewHealthClient(url string) (*HealthClient, error) {
	if strings.TrimSpace(url) == "" {
		return nil, ErrMissingAuthHealthURL
	}
	return &HealthClient{
		url:        url,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}, nil
}

func (c *HealthClient) CheckHealth(ctx context.Context) (interfaces.AuthHealthProbe, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return interfaces.AuthHealthProbe{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return interfaces.AuthHealthProbe{}, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	if resp.StatusCode == http.StatusTooManyRequests {
		return interfaces.AuthHealthProbe{}, interfaces.ErrAuthRateLimited
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return interfaces.AuthHealthProbe{Healthy: true, Detail: "ok"}, nil
	}

	log.Printf("[health][client] upstream unhealthy status=%d", resp.StatusCode)
	return interfaces.AuthHealthProbe{
		Healthy: false,
		Detail:  fmt.Sprintf("upstream returned status %d", resp.StatusCode),
	}, nil
}
