package app

import (
	"encoding/json"
	"net/http"

	"github.com/felixbrock/positive-prompt/internal/domain"
	"github.com/rs/zerolog"
)

// AppResp is what a JSON route hands back to AppHandler. Codes of 400 and
// above are written as {"error": Message}, everything else as Body.
type AppResp struct {
	Error   error
	Message string
	Code    int
	Body    any
}

type AppHandler func(http.ResponseWriter, *http.Request) *AppResp

func errResp(e errCtx, err error) *AppResp {
	return &AppResp{Error: err, Message: e.Msg, Code: e.Code}
}

func (h AppHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp := h(w, r)
	logger := zerolog.Ctx(r.Context())

	if resp.Error != nil {
		ev := logger.Warn()
		if resp.Code >= http.StatusInternalServerError {
			ev = logger.Error()
		}
		ev.Err(resp.Error).Int("status", resp.Code).Msg(resp.Message)
	}

	body := resp.Body
	if resp.Code >= http.StatusBadRequest {
		body = domain.ErrorResp{Error: resp.Message}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.Code)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error().Err(err).Msg("failed to write response body")
	}
}
