package app

import (
	"context"
	"errors"

	"github.com/felixbrock/positive-prompt/internal/domain"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

//go:generate mockgen -source=optimizer.go -destination=mocks/mock_repos.go -package=mocks

type CompletionRepo interface {
	Complete(ctx context.Context, req domain.CompletionReq) (string, error)
}

type EventRepo interface {
	Capture(ctx context.Context, event domain.Event) error
}

// Optimizer forwards one prompt and its meta prompt to the completion
// provider. Events is optional.
type Optimizer struct {
	Completions CompletionRepo
	Events      EventRepo
	Model       string
}

func buildMessages(req domain.OptimizationReq) []domain.Message {
	return []domain.Message{
		{Role: domain.RoleSystem, Content: req.MetaPrompt},
		{Role: domain.RoleUser, Content: req.InputPrompt},
	}
}

func (o Optimizer) Optimize(ctx context.Context, req domain.OptimizationReq) (string, error) {
	if req.ApiKey == "" {
		return "", domain.ErrMissingApiKey
	}

	text, err := o.Completions.Complete(ctx, domain.CompletionReq{
		ApiKey:   req.ApiKey,
		Model:    o.Model,
		Messages: buildMessages(req),
	})

	o.capture(ctx, err)

	if err != nil {
		return "", err
	}

	return text, nil
}

func eventStatus(err error) string {
	switch {
	case err == nil:
		return "succeeded"
	case errors.Is(err, domain.ErrInvalidApiKey):
		return "invalid_key"
	default:
		return "failed"
	}
}

func (o Optimizer) capture(ctx context.Context, err error) {
	if o.Events == nil {
		return
	}

	name := "optimization_succeeded"
	if err != nil {
		name = "optimization_failed"
	}

	cerr := o.Events.Capture(ctx, domain.Event{
		Name:       name,
		DistinctId: uuid.NewString(),
		Properties: map[string]string{
			"model":  o.Model,
			"status": eventStatus(err),
		},
	})

	if cerr != nil {
		zerolog.Ctx(ctx).Warn().Err(cerr).Str("event", name).Msg("failed to capture event")
	}
}

// failureClass labels an optimization error for the logs. Users only ever
// see the invalid-key or generic message.
func failureClass(err error) string {
	var upErr *domain.UpstreamError

	switch {
	case errors.Is(err, domain.ErrInvalidApiKey):
		return "auth"
	case errors.Is(err, domain.ErrEmptyCompletion):
		return "empty_completion"
	case errors.As(err, &upErr) && upErr.StatusCode == 0:
		return "network"
	case errors.As(err, &upErr):
		return "upstream_status"
	default:
		return "internal"
	}
}
