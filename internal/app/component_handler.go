package app

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/rs/zerolog"
)

type ComponentResponse struct {
	Error     error
	Message   string
	Code      int
	Component templ.Component
}

type ComponentHandler func(http.ResponseWriter, *http.Request) *ComponentResponse

func (ch ComponentHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp := ch(w, r)
	logger := zerolog.Ctx(r.Context())

	if resp.Error != nil {
		logger.Error().Err(resp.Error).Int("status", resp.Code).Msg(resp.Message)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if resp.Code != 0 {
		w.WriteHeader(resp.Code)
	}

	err := resp.Component.Render(r.Context(), w)

	if err != nil {
		logger.Error().Err(err).Msg("failed to render component")
	}
}
