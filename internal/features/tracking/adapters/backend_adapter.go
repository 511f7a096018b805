package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"order-tracker/internal/core/config"
	"order-tracker/internal/core/httpclient"
	"order-tracker/internal/core/logger"
	"order-tracker/internal/features/tracking/domain"

	"go.uber.org/zap"
)

// fallbackPaths are alternate route spellings tried after the configured
// primary path. The backend team has renamed this route more than once, so
// the adapter probes the plausible variants in order rather than assuming a
// single contract.
var fallbackPaths = []string{
	"/api/orders/%s/track/",
	"/api/track/%s/",
	"/api/tracking/%s/",
}

// messageKeys are probed on error bodies for a backend-supplied explanation.
var messageKeys = []string{"message", "error", "detail"}

// statusError marks a non-2xx response. Unlike transport errors its text is
// not worth surfacing to a customer, so exhaustion messages skip it.
type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("backend returned status %d", e.code)
}

// BackendAdapter implements ports.TrackingSource against the storefront
// backend REST API.
type BackendAdapter struct {
	client      *http.Client
	baseURL     string
	token       string
	primaryPath string
	logger      *zap.Logger
}

// NewBackendAdapter creates a new BackendAdapter.
func NewBackendAdapter(backend config.BackendConfig, tracking config.TrackingConfig) *BackendAdapter {
	return &BackendAdapter{
		client:      httpclient.NewClient(10 * time.Second),
		baseURL:     backend.URL,
		token:       backend.Token,
		primaryPath: tracking.Path,
		logger:      logger.Get(),
	}
}

// FetchTracking resolves an order identifier into a TrackingRecord by trying
// each candidate endpoint in order, one attempt per candidate, first usable
// record wins. Per-candidate failures are logged and swallowed; only total
// exhaustion surfaces, as a domain.NotFoundError whose message prefers the
// backend-supplied explanation from the last failure.
func (a *BackendAdapter) FetchTracking(ctx context.Context, orderID string) (*domain.TrackingRecord, error) {
	var lastMessage string

	for _, candidate := range a.candidateURLs(orderID) {
		record, backendMsg, err := a.tryCandidate(ctx, candidate)
		if err != nil {
			var se *statusError
			switch {
			case backendMsg != "":
				lastMessage = backendMsg
			case !errors.As(err, &se):
				lastMessage = err.Error()
			}
			a.logger.Debug("Tracking candidate failed",
				zap.String("order_id", orderID),
				zap.String("url", candidate),
				zap.Error(err),
			)
			continue
		}

		if record.Usable() {
			return record, nil
		}

		a.logger.Debug("Tracking candidate returned unusable record",
			zap.String("order_id", orderID),
			zap.String("url", candidate),
		)
	}

	if lastMessage == "" {
		lastMessage = "Tracking not found"
	}
	return nil, &domain.NotFoundError{Message: lastMessage}
}

// candidateURLs builds the ordered endpoint list: the configured primary path
// first, then the hardcoded fallbacks, skipping duplicates of the primary.
func (a *BackendAdapter) candidateURLs(orderID string) []string {
	paths := make([]string, 0, 1+len(fallbackPaths))
	paths = append(paths, a.primaryPath)
	for _, p := range fallbackPaths {
		if p != a.primaryPath {
			paths = append(paths, p)
		}
	}

	urls := make([]string, 0, len(paths))
	for _, p := range paths {
		urls = append(urls, a.baseURL+fmt.Sprintf(p, url.PathEscape(orderID)))
	}
	return urls
}

// tryCandidate issues one authenticated GET and normalizes the response.
// On a non-2xx status the second return value carries any structured message
// found in the error body.
func (a *BackendAdapter) tryCandidate(ctx context.Context, candidate string) (*domain.TrackingRecord, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, candidate, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+a.token)
	req.Header.Set("Accept", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, backendMessage(body), &statusError{code: resp.StatusCode}
	}

	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, "", fmt.Errorf("failed to parse response: %w", err)
	}

	record := normalizeRecord(raw)
	if record == nil {
		return nil, "", fmt.Errorf("empty tracking payload")
	}
	return record, "", nil
}

// backendMessage extracts a structured explanation from an error body, if the
// backend supplied one.
func backendMessage(body []byte) string {
	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return ""
	}
	return probeString(messageKeys, raw)
}
