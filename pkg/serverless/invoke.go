package serverless

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
	"github.com/vfg2006/meta-ads-platform-api/pkg/apiErrors"
	"github.com/vfg2006/meta-ads-platform-api/pkg/log"
)

// Etapas em que uma invocação pode falhar
const (
	StageRequest  = "request"
	StageDispatch = "dispatch"
	StageResponse = "response"
)

// AdapterError indica falha ao traduzir ou executar uma invocação da plataforma
type AdapterError struct {
	Stage string
	Err   error
}

func (e *AdapterError) Error() string {
	return fmt.Sprintf("serverless: falha na etapa %s: %v", e.Stage, e.Err)
}

func (e *AdapterError) Unwrap() error {
	return e.Err
}

func NewAdapterError(stage string, err error) *AdapterError {
	return &AdapterError{Stage: stage, Err: errors.WithStack(err)}
}

// HTTPRequest converte a invocação em *http.Request ligado ao contexto informado
func (req *Request) HTTPRequest(ctx context.Context) (*http.Request, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	path := req.Path
	if path == "" {
		path = "/"
	}

	target := &url.URL{Path: path, RawQuery: req.Query.Encode()}

	httpReq, err := http.NewRequestWithContext(ctx, method, target.String(), bytes.NewReader(req.Body))
	if err != nil {
		return nil, errors.Wrapf(err, "montando requisição %s %s", method, path)
	}

	for key, values := range req.Headers {
		for _, value := range values {
			httpReq.Header.Add(key, value)
		}
	}
	if host := httpReq.Header.Get("Host"); host != "" {
		httpReq.Host = host
	}
	httpReq.RemoteAddr = req.RemoteAddr
	httpReq.RequestURI = target.RequestURI()

	return httpReq, nil
}

// Invoke executa o handler para a invocação e devolve a resposta ou um *AdapterError.
// Panics fora da cadeia de middlewares também viram *AdapterError.
func Invoke(ctx context.Context, h http.Handler, req *Request) (resp *Response, err error) {
	if req == nil {
		return nil, NewAdapterError(StageRequest, errors.New("requisição nula"))
	}

	ctx, _ = log.ContextWithCorrelationID(ctx, req.RequestID)

	httpReq, reqErr := req.HTTPRequest(ctx)
	if reqErr != nil {
		return nil, NewAdapterError(StageRequest, reqErr)
	}

	defer func() {
		if rec := recover(); rec != nil {
			resp = nil
			err = NewAdapterError(StageDispatch, errors.Errorf("panic: %v", rec))
		}
	}()

	recorder := newResponseRecorder()
	h.ServeHTTP(recorder, httpReq)

	return recorder.result(), nil
}

// ErrorResponse registra a falha do adaptador e a converte na resposta 500 padronizada
func ErrorResponse(ctx context.Context, err error) *Response {
	stage := StageDispatch
	var adapterErr *AdapterError
	if errors.As(err, &adapterErr) {
		stage = adapterErr.Stage
	}
	log.ForContext(ctx).WithError(err).WithField("stage", stage).Error("Falha no adaptador serverless")

	headers := make(http.Header)
	headers.Set("Content-Type", "application/json")

	return &Response{
		StatusCode: http.StatusInternalServerError,
		Headers:    headers,
		Body:       apiErrors.Marshal(apiErrors.ErrAdapter, apiErrors.MsgAdapter),
	}
}

// responseRecorder acumula a resposta do handler em memória
type responseRecorder struct {
	header      http.Header
	body        bytes.Buffer
	statusCode  int
	wroteHeader bool
}

func newResponseRecorder() *responseRecorder {
	return &responseRecorder{header: make(http.Header)}
}

func (r *responseRecorder) Header() http.Header {
	return r.header
}

func (r *responseRecorder) WriteHeader(code int) {
	if r.wroteHeader {
		return
	}
	r.statusCode = code
	r.wroteHeader = true
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	if !r.wroteHeader {
		r.WriteHeader(http.StatusOK)
	}
	return r.body.Write(b)
}

func (r *responseRecorder) result() *Response {
	status := r.statusCode
	if !r.wroteHeader {
		status = http.StatusOK
	}

	return &Response{
		StatusCode: status,
		Headers:    r.header.Clone(),
		Body:       r.body.Bytes(),
	}
}
