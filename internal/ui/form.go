// Package ui holds the interaction state behind the optimizer form.
package ui

import (
	"context"

	"github.com/felixbrock/positive-prompt/internal/domain"
	"github.com/rs/zerolog"
)

const (
	MsgMissingApiKey = "Please enter your OpenAI API key."
	MsgFailed        = "An error occurred while optimizing the prompt."
)

type Optimizer interface {
	Optimize(ctx context.Context, req domain.OptimizationReq) (string, error)
}

// Form has no invariants across its fields; Submit resets Result, Error and
// Loading before doing anything else.
type Form struct {
	Prompt  string
	Result  string
	Loading bool
	Error   string
}

// Submit performs one optimization round trip. An empty apiKey short-circuits
// without calling o. Loading is false again once Submit returns.
func (f *Form) Submit(ctx context.Context, apiKey string, metaPrompt string, o Optimizer) {
	f.Loading = true
	f.Error = ""
	f.Result = ""

	defer func() {
		f.Loading = false
	}()

	if apiKey == "" {
		f.Error = MsgMissingApiKey
		return
	}

	result, err := o.Optimize(ctx, domain.OptimizationReq{
		InputPrompt: f.Prompt,
		MetaPrompt:  metaPrompt,
		ApiKey:      apiKey,
	})

	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("optimization from form failed")
		f.Error = MsgFailed
		return
	}

	f.Result = result
}
