package cloudfunction

import (
	"context"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/vfg2006/meta-ads-platform-api/pkg/log"
	"github.com/vfg2006/meta-ads-platform-api/pkg/metrics"
	"github.com/vfg2006/meta-ads-platform-api/pkg/middleware"
	"github.com/vfg2006/meta-ads-platform-api/pkg/serverless"
)

const (
	// AdapterName identifica este adaptador em logs e métricas
	AdapterName = "cloud_function"

	// ExecutionIDHeader é enviado pelo Cloud Functions em cada execução
	ExecutionIDHeader = "Function-Execution-Id"
)

// Etapas de cada execução, na ordem em que rodam
const (
	StagePreprocess    = "preprocess"
	StageDispatch      = serverless.StageDispatch
	StageBuildResponse = "build_response"
	StagePostprocess   = "postprocess"
)

// Function adapta a requisição nativa do Cloud Functions ao http.Handler da API.
// Cada chamada percorre preprocess, dispatch, buildResponse e postprocess, nessa ordem.
type Function struct {
	handler http.Handler
}

func New(h http.Handler) *Function {
	return &Function{handler: h}
}

func (f *Function) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := scope(r)
	logger := log.ForContext(ctx).WithField("adapter", AdapterName)

	resp, err := f.run(ctx, r)
	if err != nil {
		metrics.AdapterInvocations.WithLabelValues(AdapterName, metrics.OutcomeError).Inc()
		resp = serverless.ErrorResponse(ctx, err)
	} else {
		metrics.AdapterInvocations.WithLabelValues(AdapterName, metrics.OutcomeOK).Inc()
	}

	postprocess(ctx, w, resp)
	stageDone(ctx, StagePostprocess)

	logger.WithField("status_code", resp.StatusCode).Debug("Execução concluída")
}

func stageDone(ctx context.Context, stage string) {
	log.ForContext(ctx).WithFields(log.Fields{
		"adapter": AdapterName,
		"stage":   stage,
	}).Debug("Etapa concluída")
}

// run devolve a resposta pronta ou um *serverless.AdapterError; panics também viram erro
func (f *Function) run(ctx context.Context, r *http.Request) (resp *serverless.Response, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			resp = nil
			err = serverless.NewAdapterError(serverless.StageResponse, errors.Errorf("panic: %v", rec))
		}
	}()

	req, err := preprocess(ctx, r)
	if err != nil {
		return nil, err
	}
	stageDone(ctx, StagePreprocess)

	resp, err = serverless.Invoke(ctx, f.handler, req)
	if err != nil {
		return nil, err
	}
	stageDone(ctx, StageDispatch)

	resp = buildResponse(resp)
	stageDone(ctx, StageBuildResponse)

	return resp, nil
}

// scope abre o escopo da execução, com o ID da plataforma como correlação
func scope(r *http.Request) context.Context {
	executionID := r.Header.Get(ExecutionIDHeader)
	if executionID == "" {
		executionID = uuid.New().String()
	}

	ctx, _ := log.ContextWithCorrelationID(r.Context(), executionID)
	return ctx
}

func preprocess(ctx context.Context, r *http.Request) (*serverless.Request, error) {
	var body []byte
	if r.Body != nil {
		// Sem limite próprio: vale o tamanho máximo da plataforma
		raw, err := io.ReadAll(r.Body)
		if err != nil {
			return nil, serverless.NewAdapterError(serverless.StageRequest, errors.Wrap(err, "lendo corpo da requisição"))
		}
		body = raw
	}

	path := r.URL.Path
	if path == "" {
		path = "/"
	}

	return &serverless.Request{
		Method:     r.Method,
		Path:       path,
		Headers:    r.Header.Clone(),
		Query:      r.URL.Query(),
		Body:       body,
		RemoteAddr: r.RemoteAddr,
		RequestID:  log.GetCorrelationID(ctx),
	}, nil
}

// buildResponse garante Content-Type e status válidos antes da escrita
func buildResponse(resp *serverless.Response) *serverless.Response {
	if resp.Headers == nil {
		resp.Headers = make(http.Header)
	}
	if resp.StatusCode == 0 {
		resp.StatusCode = http.StatusOK
	}
	if len(resp.Body) > 0 && resp.Headers.Get("Content-Type") == "" {
		resp.Headers.Set("Content-Type", "application/json")
	}
	return resp
}

func postprocess(ctx context.Context, w http.ResponseWriter, resp *serverless.Response) {
	header := w.Header()
	for key, values := range resp.Headers {
		header[key] = append([]string(nil), values...)
	}
	header.Set(middleware.CorrelationIDHeader, log.GetCorrelationID(ctx))

	w.WriteHeader(resp.StatusCode)
	if _, err := w.Write(resp.Body); err != nil {
		log.ForContext(ctx).WithError(err).Warn("Erro ao escrever resposta da função")
	}
}
