package app

import (
	"errors"
	"net/http"

	"github.com/felixbrock/positive-prompt/internal/components"
	"github.com/felixbrock/positive-prompt/internal/domain"
	"github.com/felixbrock/positive-prompt/internal/ui"
	"github.com/rs/zerolog"
)

func (a *App) optimize(w http.ResponseWriter, r *http.Request) *AppResp {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		return errResp(get405(), nil)
	}

	logger := zerolog.Ctx(r.Context())

	body, err := Read(http.MaxBytesReader(w, r.Body, maxBodyBytes), logger)

	if err != nil {
		return errResp(get400(), err)
	}

	req, err := ReadJSON[domain.OptimizationReq](body)

	if err != nil {
		return errResp(get400(), err)
	}

	if err = a.validate.Struct(req); err != nil {
		return errResp(getMissingKey(), err)
	}

	text, err := a.Optimizer.Optimize(r.Context(), *req)

	if err != nil {
		logger.Error().Err(err).Str("class", failureClass(err)).Msg("optimization failed")

		switch {
		case errors.Is(err, domain.ErrMissingApiKey):
			return errResp(getMissingKey(), nil)
		case errors.Is(err, domain.ErrInvalidApiKey):
			return errResp(get401(), nil)
		default:
			return errResp(get500(), nil)
		}
	}

	return &AppResp{Code: http.StatusOK, Body: domain.OptimizationResp{OptimizedPrompt: text}}
}

func (a *App) health(w http.ResponseWriter, r *http.Request) *AppResp {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		return errResp(get405(), nil)
	}

	return &AppResp{Code: http.StatusOK, Body: map[string]string{"status": "ok"}}
}

func errPage(e errCtx) *ComponentResponse {
	return &ComponentResponse{Component: components.Error(e.Code, e.Title, e.Msg), Code: e.Code, Message: e.Title}
}

func (a *App) index(w http.ResponseWriter, r *http.Request) *ComponentResponse {
	if r.URL.Path != "/" {
		return errPage(get404())
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		return errPage(get405())
	}

	return &ComponentResponse{Component: components.Index(), Code: http.StatusOK, Message: "OK"}
}

// submit handles the htmx form post. The fragment is always returned with
// 200 so htmx swaps it in, failures included.
func (a *App) submit(w http.ResponseWriter, r *http.Request) *ComponentResponse {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		return errPage(get405())
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		return &ComponentResponse{
			Error:     err,
			Message:   "failed to parse form",
			Code:      http.StatusOK,
			Component: components.Outcome(ui.MsgFailed, ""),
		}
	}

	form := ui.Form{Prompt: r.PostFormValue("inputPrompt")}
	form.Submit(r.Context(), r.PostFormValue("apiKey"), a.MetaPrompt, a.Optimizer)

	return &ComponentResponse{Component: components.Outcome(form.Error, form.Result), Code: http.StatusOK, Message: "OK"}
}
