package serverless

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/meta-ads-platform-api/pkg/log"
)

func echoHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Path", r.URL.Path)
		w.Header().Set("X-Query", r.URL.Query().Get("date_preset"))
		w.Header().Set("X-Correlation", log.GetCorrelationID(r.Context()))
		w.Header().Set("X-Custom", r.Header.Get("X-Custom"))
		w.WriteHeader(http.StatusCreated)
		w.Write(body)
	})
}

func TestInvoke(t *testing.T) {
	req := &Request{
		Method:    http.MethodPost,
		Path:      "/api/meta/account/act 1/campaign",
		Headers:   http.Header{"X-Custom": []string{"valor"}},
		Query:     url.Values{"date_preset": []string{"last_7d"}},
		Body:      []byte(`{"name":"Campanha"}`),
		RequestID: "req-abc",
	}

	resp, err := Invoke(context.Background(), echoHandler(), req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, `{"name":"Campanha"}`, string(resp.Body))
	assert.Equal(t, "/api/meta/account/act 1/campaign", resp.Headers.Get("X-Path"))
	assert.Equal(t, "last_7d", resp.Headers.Get("X-Query"))
	assert.Equal(t, "req-abc", resp.Headers.Get("X-Correlation"))
	assert.Equal(t, "valor", resp.Headers.Get("X-Custom"))
}

func TestInvoke_Defaults(t *testing.T) {
	var gotMethod, gotPath string
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
	})

	resp, err := Invoke(context.Background(), h, &Request{})

	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, gotMethod)
	assert.Equal(t, "/", gotPath)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, resp.Body)
}

func TestInvoke_Errors(t *testing.T) {
	tests := []struct {
		name      string
		handler   http.Handler
		req       *Request
		wantStage string
	}{
		{
			name:      "requisição nula",
			handler:   echoHandler(),
			req:       nil,
			wantStage: StageRequest,
		},
		{
			name:      "método inválido",
			handler:   echoHandler(),
			req:       &Request{Method: "MÉTODO INVÁLIDO", Path: "/"},
			wantStage: StageRequest,
		},
		{
			name: "panic no handler",
			handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				panic("boom")
			}),
			req:       &Request{Method: http.MethodGet, Path: "/api/status"},
			wantStage: StageDispatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := Invoke(context.Background(), tt.handler, tt.req)

			assert.Nil(t, resp)
			var adapterErr *AdapterError
			require.True(t, errors.As(err, &adapterErr))
			assert.Equal(t, tt.wantStage, adapterErr.Stage)
			assert.Contains(t, adapterErr.Error(), tt.wantStage)
		})
	}
}

func TestErrorResponse(t *testing.T) {
	resp := ErrorResponse(context.Background(), NewAdapterError(StageRequest, errors.New("corpo base64 inválido")))

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Headers.Get("Content-Type"))
	assert.JSONEq(t, `{"error":"Falha ao processar a invocação","code":"SRV_002"}`, string(resp.Body))
}

func TestResponseRecorder_FirstStatusWins(t *testing.T) {
	rec := newResponseRecorder()
	rec.WriteHeader(http.StatusUnauthorized)
	rec.WriteHeader(http.StatusOK)
	rec.Write([]byte("x"))

	result := rec.result()
	assert.Equal(t, http.StatusUnauthorized, result.StatusCode)
	assert.Equal(t, "x", string(result.Body))
}
