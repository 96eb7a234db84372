package persistence

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/felixbrock/positive-prompt/internal/domain"
)

const DefaultPHUrl = "https://eu.posthog.com/capture/"

// PHRepo sends product analytics events to PostHog.
type PHRepo struct {
	ApiKey string
	Url    string
	Client *http.Client
}

type phCapture struct {
	ApiKey     string            `json:"api_key"`
	Event      string            `json:"event"`
	DistinctId string            `json:"distinct_id"`
	Properties map[string]string `json:"properties,omitempty"`
}

func (r PHRepo) Capture(ctx context.Context, event domain.Event) error {
	body, err := json.Marshal(phCapture{
		ApiKey:     r.ApiKey,
		Event:      event.Name,
		DistinctId: event.DistinctId,
		Properties: event.Properties,
	})

	if err != nil {
		return err
	}

	url := r.Url
	if url == "" {
		url = DefaultPHUrl
	}

	_, err = request[struct{}](ctx, r.Client, reqConfig{
		Method:  http.MethodPost,
		Url:     url,
		Headers: []string{"Content-Type:application/json"},
		Body:    body},
		200)

	if err != nil {
		return err
	}

	return nil
}
