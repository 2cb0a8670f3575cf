package authprovider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jsau0309/altarflowdev-sub007/internal/usecase/interfaces"
)

// WebhookNotifier posts health transitions to an ops webhook. A nil or
// empty-URL notifier is valid and drops notifications with a log line,
// so local environments need no webhook configured.

type WebhookNotifier struct {
	url        string
	httpClient *http.Client
}

var _ interfaces.IHealthNotifier = (*WebhookNotifier)(nil)

func NewWebhookNotifier(url string) *WebhookNotifier {
	return &WebhookNotifier{
		url:        url,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (n *WebhookNotifier) NotifyTransition(ctx context.Context, healthy bool, detail string) error {
	if n == nil || n.url == "" {
		log.Printf("[health][notifier] no webhook configured; transition healthy=%t dropped", healthy)
		return nil
	}

	payload, err := json.Marshal(map[string]any{
		"source":  "auth-health",
		"healthy": healthy,
		"detail":  detail,
		"at":      time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	log.Printf("[health][notifier] transition sent healthy=%t", healthy)
	return nil
}
