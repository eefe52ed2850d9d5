package awslambda

import (
	"context"
	"encoding/base64"
	"io"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/meta-ads-platform-api/internal/api"
	"github.com/vfg2006/meta-ads-platform-api/internal/api/handler/router"
	"github.com/vfg2006/meta-ads-platform-api/internal/config"
	"github.com/vfg2006/meta-ads-platform-api/pkg/log"
	"github.com/vfg2006/meta-ads-platform-api/pkg/metrics"
	"github.com/vfg2006/meta-ads-platform-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type echo struct {
	Method        string              `json:"method"`
	AccountID     string              `json:"account_id"`
	Query         map[string][]string `json:"query"`
	Body          string              `json:"body"`
	Header        string              `json:"header"`
	CorrelationID string              `json:"correlation_id"`
}

func echoRouter() http.Handler {
	echoHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.Header().Add("Set-Cookie", "a=1")
		w.Header().Add("Set-Cookie", "b=2")
		json.NewEncoder(w).Encode(echo{
			Method:        r.Method,
			AccountID:     httprouter.ParamsFromContext(r.Context()).ByName("account_id"),
			Query:         r.URL.Query(),
			Body:          string(body),
			Header:        r.Header.Get("X-Test"),
			CorrelationID: log.GetCorrelationID(r.Context()),
		})
	})

	return router.New(router.WithRoutes(
		router.Route{Path: "/api/meta/account/:account_id/campaigns", Method: http.MethodGet, Handler: echoHandler},
		router.Route{Path: "/api/ai/chat", Method: http.MethodPost, Handler: echoHandler},
		router.Route{Path: "/binario", Method: http.MethodGet, Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte{0xff, 0xfe, 0x00})
		})},
		router.Route{Path: "/panico", Method: http.MethodGet, Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("falha inesperada")
		})},
	))
}

func decodeEcho(t *testing.T, resp events.APIGatewayProxyResponse) echo {
	t.Helper()
	var out echo
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &out))
	return out
}

func TestHandle_PathParamsAndRequestID(t *testing.T) {
	h := New(echoRouter())

	resp, err := h.Handle(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodGet,
		Path:       "/api/meta/account/XYZ/campaigns",
		Headers:    map[string]string{"X-Test": "valor"},
		MultiValueQueryStringParameters: map[string][]string{
			"fields": {"id", "name"},
		},
		QueryStringParameters: map[string]string{"limit": "10"},
		RequestContext:        events.APIGatewayProxyRequestContext{RequestID: "req-123"},
	})

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, resp.IsBase64Encoded)
	assert.Equal(t, "application/json", resp.Headers["Content-Type"])
	assert.Equal(t, []string{"a=1", "b=2"}, resp.MultiValueHeaders["Set-Cookie"])

	got := decodeEcho(t, resp)
	assert.Equal(t, "XYZ", got.AccountID)
	assert.Equal(t, "valor", got.Header)
	assert.Equal(t, []string{"id", "name"}, got.Query["fields"])
	assert.Equal(t, []string{"10"}, got.Query["limit"])
	assert.Equal(t, "req-123", got.CorrelationID)
}

func TestHandle_Base64Body(t *testing.T) {
	h := New(echoRouter())

	resp, err := h.Handle(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod:      http.MethodPost,
		Path:            "/api/ai/chat",
		Body:            base64.StdEncoding.EncodeToString([]byte(`{"message":"oi"}`)),
		IsBase64Encoded: true,
	})

	require.NoError(t, err)
	assert.Equal(t, `{"message":"oi"}`, decodeEcho(t, resp).Body)
}

func TestHandle_RequestIDFromLambdaContext(t *testing.T) {
	h := New(echoRouter())
	ctx := lambdacontext.NewContext(context.Background(), &lambdacontext.LambdaContext{AwsRequestID: "aws-456"})

	resp, err := h.Handle(ctx, events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodGet,
		Path:       "/api/meta/account/ABC/campaigns",
	})

	require.NoError(t, err)
	assert.Equal(t, "aws-456", decodeEcho(t, resp).CorrelationID)
}

func TestHandle_BinaryResponseIsBase64(t *testing.T) {
	h := New(echoRouter())

	resp, err := h.Handle(context.Background(), events.APIGatewayProxyRequest{HTTPMethod: http.MethodGet, Path: "/binario"})

	require.NoError(t, err)
	assert.True(t, resp.IsBase64Encoded)
	decoded, err := base64.StdEncoding.DecodeString(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xff, 0xfe, 0x00}, decoded)
}

func TestHandle_FaultsBecome500(t *testing.T) {
	tests := []struct {
		name  string
		event events.APIGatewayProxyRequest
	}{
		{
			name:  "corpo base64 inválido",
			event: events.APIGatewayProxyRequest{HTTPMethod: http.MethodPost, Path: "/api/ai/chat", Body: "%%%", IsBase64Encoded: true},
		},
		{
			name:  "panic no handler",
			event: events.APIGatewayProxyRequest{HTTPMethod: http.MethodGet, Path: "/panico"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(metrics.AdapterInvocations.WithLabelValues(AdapterName, metrics.OutcomeError))

			resp, err := New(echoRouter()).Handle(context.Background(), tt.event)

			require.NoError(t, err)
			assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
			assert.JSONEq(t, `{"error":"Falha ao processar a invocação","code":"SRV_002"}`, resp.Body)
			assert.Equal(t, before+1, testutil.ToFloat64(metrics.AdapterInvocations.WithLabelValues(AdapterName, metrics.OutcomeError)))
		})
	}
}

func TestHandle_UnknownRouteKeepsRouterStatus(t *testing.T) {
	resp, err := New(echoRouter()).Handle(context.Background(), events.APIGatewayProxyRequest{HTTPMethod: http.MethodGet, Path: "/nada"})

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func apiHandler() http.Handler {
	cfg := &config.Config{
		Service: config.Service{Name: "Meta Ads Platform API", Version: "1.0.0"},
		Cors:    config.Cors{AllowedOrigins: []string{"*"}},
	}
	return api.NewHandler(cfg, api.NewServices(utils.SystemClock{}))
}

func TestHandle_API(t *testing.T) {
	h := New(apiHandler())

	tests := []struct {
		name       string
		event      events.APIGatewayProxyRequest
		wantStatus int
		wantBody   map[string]any
	}{
		{
			name: "preflight",
			event: events.APIGatewayProxyRequest{
				HTTPMethod: http.MethodOptions,
				Path:       "/api/meta/accounts",
				Headers:    map[string]string{"Origin": "https://painel.exemplo.com", "Access-Control-Request-Method": "GET"},
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name: "campanhas ecoam a conta",
			event: events.APIGatewayProxyRequest{
				HTTPMethod: http.MethodGet,
				Path:       "/api/meta/account/XYZ/campaigns",
				Headers:    map[string]string{"Origin": "https://painel.exemplo.com"},
			},
			wantStatus: http.StatusOK,
			wantBody:   map[string]any{"account_id": "XYZ"},
		},
		{
			name: "login com corpo em base64",
			event: events.APIGatewayProxyRequest{
				HTTPMethod:      http.MethodPost,
				Path:            "/api/auth/login",
				Body:            base64.StdEncoding.EncodeToString([]byte(`{"email":"a@b.com","password":"x"}`)),
				IsBase64Encoded: true,
			},
			wantStatus: http.StatusOK,
			wantBody:   map[string]any{"access_token": "demo-token-12345"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := h.Handle(context.Background(), tt.event)

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Equal(t, "*", resp.Headers["Access-Control-Allow-Origin"])

			if tt.wantBody == nil {
				return
			}
			var body map[string]any
			require.NoError(t, json.Unmarshal([]byte(resp.Body), &body))
			for key, want := range tt.wantBody {
				assert.Equal(t, want, body[key])
			}
		})
	}
}
