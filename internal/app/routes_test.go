package app

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/felixbrock/positive-prompt/internal/app/mocks"
	"github.com/felixbrock/positive-prompt/internal/domain"
	"github.com/felixbrock/positive-prompt/internal/persistence"
	"github.com/felixbrock/positive-prompt/internal/ui"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestApp(completions CompletionRepo, logs *bytes.Buffer) http.Handler {
	logger := zerolog.Nop()
	if logs != nil {
		logger = zerolog.New(logs)
	}

	a := New(Config{Port: "0"}, Optimizer{Completions: completions, Model: "gpt-4"}, "<meta>", logger)
	return a.Routes()
}

func doJSON(t *testing.T, h http.Handler, method string, path string, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var resp domain.ErrorResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Error
}

const validBody = `{"inputPrompt": "Do not lie", "metaPrompt": "<meta>", "apiKey": "sk-test"}`

func TestOptimize_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	completions := mocks.NewMockCompletionRepo(ctrl)
	completions.EXPECT().
		Complete(gomock.Any(), domain.CompletionReq{
			ApiKey: "sk-test",
			Model:  "gpt-4",
			Messages: []domain.Message{
				{Role: domain.RoleSystem, Content: "<meta>"},
				{Role: domain.RoleUser, Content: "Do not lie"},
			},
		}).
		Return("Tell the truth.", nil)

	w := doJSON(t, newTestApp(completions, nil), http.MethodPost, "/api/optimize", validBody)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"optimizedPrompt": "Tell the truth."}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
}

func TestOptimize_MethodNotAllowed(t *testing.T) {
	methods := []string{http.MethodGet, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions}
	bodies := []string{"", validBody, "not json"}

	for _, method := range methods {
		for _, body := range bodies {
			t.Run(method, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				completions := mocks.NewMockCompletionRepo(ctrl)

				w := doJSON(t, newTestApp(completions, nil), method, "/api/optimize", body)

				assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
				assert.Equal(t, http.MethodPost, w.Header().Get("Allow"))
				assert.Equal(t, "Method Not Allowed", decodeError(t, w))
			})
		}
	}
}

func TestOptimize_MissingApiKey(t *testing.T) {
	bodies := []string{
		`{"inputPrompt": "Do not lie", "metaPrompt": "<meta>"}`,
		`{"inputPrompt": "Do not lie", "metaPrompt": "<meta>", "apiKey": ""}`,
		``,
		`{}`,
	}

	for _, body := range bodies {
		t.Run(body, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			completions := mocks.NewMockCompletionRepo(ctrl)

			w := doJSON(t, newTestApp(completions, nil), http.MethodPost, "/api/optimize", body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "API key is required", decodeError(t, w))
		})
	}
}

func TestOptimize_InvalidBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	completions := mocks.NewMockCompletionRepo(ctrl)
	h := newTestApp(completions, nil)

	w := doJSON(t, h, http.MethodPost, "/api/optimize", `{"apiKey": `)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request body.", decodeError(t, w))

	huge := `{"apiKey": "sk-test", "inputPrompt": "` + strings.Repeat("a", maxBodyBytes) + `"}`
	w = doJSON(t, h, http.MethodPost, "/api/optimize", huge)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request body.", decodeError(t, w))
}

func TestOptimize_UpstreamErrors(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantCode  int
		wantMsg   string
		wantClass string
	}{
		{
			name:      "unauthorized",
			err:       &domain.UpstreamError{StatusCode: 401, Err: errors.New("Incorrect API key provided")},
			wantCode:  http.StatusUnauthorized,
			wantMsg:   "Invalid OpenAI API key.",
			wantClass: "auth",
		},
		{
			name:      "server error",
			err:       &domain.UpstreamError{StatusCode: 500, Err: errors.New("boom")},
			wantCode:  http.StatusInternalServerError,
			wantMsg:   "Failed to optimize the prompt.",
			wantClass: "upstream_status",
		},
		{
			name:      "forbidden is not auth",
			err:       &domain.UpstreamError{StatusCode: 403, Err: errors.New("region")},
			wantCode:  http.StatusInternalServerError,
			wantMsg:   "Failed to optimize the prompt.",
			wantClass: "upstream_status",
		},
		{
			name:      "network",
			err:       &domain.UpstreamError{Err: errors.New("dial tcp: connection refused")},
			wantCode:  http.StatusInternalServerError,
			wantMsg:   "Failed to optimize the prompt.",
			wantClass: "network",
		},
		{
			name:      "empty completion",
			err:       &domain.UpstreamError{StatusCode: 200, Err: domain.ErrEmptyCompletion},
			wantCode:  http.StatusInternalServerError,
			wantMsg:   "Failed to optimize the prompt.",
			wantClass: "empty_completion",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			completions := mocks.NewMockCompletionRepo(ctrl)
			completions.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("", tt.err).Times(1)

			var logs bytes.Buffer
			w := doJSON(t, newTestApp(completions, &logs), http.MethodPost, "/api/optimize", validBody)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, tt.wantMsg, decodeError(t, w))
			assert.Contains(t, logs.String(), `"class":"`+tt.wantClass+`"`)
		})
	}
}

func TestOptimize_EndToEndWithOpenAIRepo(t *testing.T) {
	var seen struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&seen))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "chatcmpl-1", "object": "chat.completion", "created": 1, "model": "gpt-4",
			"choices": [{"index": 0, "finish_reason": "stop", "message": {"role": "assistant", "content": "Tell the truth."}}]}`))
	}))
	defer upstream.Close()

	repo := persistence.NewOpenAIRepo(upstream.URL+"/v1/", upstream.Client())
	w := doJSON(t, newTestApp(repo, nil), http.MethodPost, "/api/optimize", validBody)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"optimizedPrompt": "Tell the truth."}`, w.Body.String())
	require.Len(t, seen.Messages, 2)
	assert.Equal(t, "system", seen.Messages[0].Role)
	assert.Equal(t, "<meta>", seen.Messages[0].Content)
	assert.Equal(t, "user", seen.Messages[1].Role)
	assert.Equal(t, "Do not lie", seen.Messages[1].Content)
}

func TestOptimize_CORSPreflightIsNotAllowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := newTestApp(mocks.NewMockCompletionRepo(ctrl), nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/optimize", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, "Method Not Allowed", decodeError(t, w))
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestHealth(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := doJSON(t, newTestApp(mocks.NewMockCompletionRepo(ctrl), nil), http.MethodGet, "/healthz", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "ok"}`, w.Body.String())
}

func TestIndex(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := newTestApp(mocks.NewMockCompletionRepo(ctrl), nil)

	w := doJSON(t, h, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "Negative Instruction Optimizer")

	w = doJSON(t, h, http.MethodGet, "/missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, h, http.MethodDelete, "/", "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func postForm(t *testing.T, h http.Handler, values url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/optimize", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	return w
}

func TestSubmit_MissingApiKeyMakesNoCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	completions := mocks.NewMockCompletionRepo(ctrl)

	w := postForm(t, newTestApp(completions, nil), url.Values{"inputPrompt": {"Do not lie"}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), ui.MsgMissingApiKey)
}

func TestSubmit_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	completions := mocks.NewMockCompletionRepo(ctrl)
	completions.EXPECT().
		Complete(gomock.Any(), domain.CompletionReq{
			ApiKey: "sk-test",
			Model:  "gpt-4",
			Messages: []domain.Message{
				{Role: domain.RoleSystem, Content: "<meta>"},
				{Role: domain.RoleUser, Content: "Do not lie"},
			},
		}).
		Return("Tell the truth.", nil)

	w := postForm(t, newTestApp(completions, nil), url.Values{"inputPrompt": {"Do not lie"}, "apiKey": {"sk-test"}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<pre>Tell the truth.</pre>")
}

func TestSubmit_FailureRendersGenericMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	completions := mocks.NewMockCompletionRepo(ctrl)
	completions.EXPECT().
		Complete(gomock.Any(), gomock.Any()).
		Return("", &domain.UpstreamError{StatusCode: 401, Err: errors.New("bad key")})

	w := postForm(t, newTestApp(completions, nil), url.Values{"inputPrompt": {"Do not lie"}, "apiKey": {"sk-bad"}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), ui.MsgFailed)
}

func TestSubmit_MethodNotAllowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := doJSON(t, newTestApp(mocks.NewMockCompletionRepo(ctrl), nil), http.MethodGet, "/optimize", "")

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, http.MethodPost, w.Header().Get("Allow"))
}
