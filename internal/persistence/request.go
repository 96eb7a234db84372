package persistence

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
)

type reqConfig struct {
	Method  string
	Url     string
	Headers []string
	Body    []byte
}

// StatusError is returned when a response carries an unexpected status code.
type StatusError struct {
	Url        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected response status code %d from %s", e.StatusCode, e.Url)
}

func request[T any](ctx context.Context, client *http.Client, config reqConfig, expectedResCode int) (*T, error) {
	req, err := http.NewRequestWithContext(ctx, config.Method, config.Url, bytes.NewBuffer(config.Body))

	if err != nil {
		return nil, err
	}

	for i := 0; i < len(config.Headers); i++ {
		headerKV := strings.SplitN(config.Headers[i], ":", 2)
		if len(headerKV) != 2 {
			return nil, fmt.Errorf("malformed header %q", config.Headers[i])
		}
		req.Header.Add(strings.TrimSpace(headerKV[0]), strings.TrimSpace(headerKV[1]))
	}

	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)

	if err != nil {
		return nil, err
	}

	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			zerolog.Ctx(ctx).Error().Err(cerr).Msg("failed to close response body")
		}
	}()

	if resp.StatusCode != expectedResCode {
		return nil, &StatusError{Url: config.Url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)

	if err != nil {
		return nil, err
	}

	var t T
	if len(body) == 0 {
		return &t, nil
	}

	err = json.Unmarshal(body, &t)

	if err != nil {
		return nil, err
	}

	return &t, nil
}
