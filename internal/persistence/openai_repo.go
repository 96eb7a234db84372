package persistence

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/felixbrock/positive-prompt/internal/domain"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

type OpenAIRepo struct {
	client openai.Client
}

// NewOpenAIRepo builds a repo without a credential of its own. Every call
// carries the caller's key. An empty baseUrl targets the public API.
func NewOpenAIRepo(baseUrl string, httpClient *http.Client) OpenAIRepo {
	opts := []option.RequestOption{option.WithMaxRetries(0)}

	if baseUrl != "" {
		opts = append(opts, option.WithBaseURL(baseUrl))
	}
	if httpClient != nil {
		opts = append(opts, option.WithHTTPClient(httpClient))
	}

	return OpenAIRepo{client: openai.NewClient(opts...)}
}

func toMessageParams(msgs []domain.Message) ([]openai.ChatCompletionMessageParamUnion, error) {
	params := make([]openai.ChatCompletionMessageParamUnion, 0, len(msgs))

	for _, m := range msgs {
		switch m.Role {
		case domain.RoleSystem:
			params = append(params, openai.SystemMessage(m.Content))
		case domain.RoleUser:
			params = append(params, openai.UserMessage(m.Content))
		default:
			return nil, fmt.Errorf("unsupported message role %q", m.Role)
		}
	}

	return params, nil
}

// Complete returns the content of the first choice. Failures come back as
// *domain.UpstreamError.
func (r OpenAIRepo) Complete(ctx context.Context, req domain.CompletionReq) (string, error) {
	msgs, err := toMessageParams(req.Messages)

	if err != nil {
		return "", err
	}

	resp, err := r.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(req.Model),
		Messages: msgs,
	}, option.WithAPIKey(req.ApiKey))

	if err != nil {
		upErr := &domain.UpstreamError{Err: err}
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			upErr.StatusCode = apiErr.StatusCode
		}
		return "", upErr
	}

	if len(resp.Choices) == 0 {
		return "", &domain.UpstreamError{StatusCode: http.StatusOK, Err: domain.ErrEmptyCompletion}
	}

	return resp.Choices[0].Message.Content, nil
}
