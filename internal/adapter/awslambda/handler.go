package awslambda

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/url"
	"unicode/utf8"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/pkg/errors"
	"github.com/vfg2006/meta-ads-platform-api/pkg/log"
	"github.com/vfg2006/meta-ads-platform-api/pkg/metrics"
	"github.com/vfg2006/meta-ads-platform-api/pkg/serverless"
)

// AdapterName identifica este adaptador em logs e métricas
const AdapterName = "aws_lambda"

// Handler traduz eventos do API Gateway (proxy REST) para o http.Handler da API
type Handler struct {
	handler http.Handler
}

func New(h http.Handler) *Handler {
	return &Handler{handler: h}
}

// Handle nunca devolve erro ao runtime: falhas viram resposta 500 em JSON
func (h *Handler) Handle(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	req, err := toRequest(ctx, event)
	if err != nil {
		return h.fail(ctx, serverless.NewAdapterError(serverless.StageRequest, err)), nil
	}

	ctx, req.RequestID = log.ContextWithCorrelationID(ctx, req.RequestID)

	resp, err := serverless.Invoke(ctx, h.handler, req)
	if err != nil {
		return h.fail(ctx, err), nil
	}

	metrics.AdapterInvocations.WithLabelValues(AdapterName, metrics.OutcomeOK).Inc()

	return toProxyResponse(resp), nil
}

func (h *Handler) fail(ctx context.Context, err error) events.APIGatewayProxyResponse {
	metrics.AdapterInvocations.WithLabelValues(AdapterName, metrics.OutcomeError).Inc()

	ctx, _ = log.WithCorrelationID(ctx)
	return toProxyResponse(serverless.ErrorResponse(ctx, errors.Wrap(err, AdapterName)))
}

func toRequest(ctx context.Context, event events.APIGatewayProxyRequest) (*serverless.Request, error) {
	body := []byte(event.Body)
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(event.Body)
		if err != nil {
			return nil, errors.Wrap(err, "corpo base64 inválido")
		}
		body = decoded
	}

	headers := make(http.Header)
	for key, values := range event.MultiValueHeaders {
		for _, value := range values {
			headers.Add(key, value)
		}
	}
	for key, value := range event.Headers {
		if headers.Get(key) == "" {
			headers.Set(key, value)
		}
	}

	query := make(url.Values)
	for key, values := range event.MultiValueQueryStringParameters {
		for _, value := range values {
			query.Add(key, value)
		}
	}
	for key, value := range event.QueryStringParameters {
		if !query.Has(key) {
			query.Set(key, value)
		}
	}

	requestID := event.RequestContext.RequestID
	if requestID == "" {
		if lc, ok := lambdacontext.FromContext(ctx); ok {
			requestID = lc.AwsRequestID
		}
	}

	return &serverless.Request{
		Method:     event.HTTPMethod,
		Path:       event.Path,
		Headers:    headers,
		Query:      query,
		Body:       body,
		RemoteAddr: event.RequestContext.Identity.SourceIP,
		RequestID:  requestID,
	}, nil
}

// toProxyResponse preenche Headers e MultiValueHeaders; corpos binários seguem em base64
func toProxyResponse(resp *serverless.Response) events.APIGatewayProxyResponse {
	out := events.APIGatewayProxyResponse{
		StatusCode:        resp.StatusCode,
		Headers:           make(map[string]string, len(resp.Headers)),
		MultiValueHeaders: make(map[string][]string, len(resp.Headers)),
	}

	for key, values := range resp.Headers {
		if len(values) == 0 {
			continue
		}
		out.Headers[key] = values[0]
		out.MultiValueHeaders[key] = append([]string(nil), values...)
	}

	if utf8.Valid(resp.Body) {
		out.Body = string(resp.Body)
	} else {
		out.Body = base64.StdEncoding.EncodeToString(resp.Body)
		out.IsBase64Encoded = true
	}

	return out
}
