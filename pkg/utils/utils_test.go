package utils

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleBody struct {
	URL     *string `json:"url"`
	Message string  `json:"message"`
}

func TestDecodeBody(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantOK  bool
		wantURL string
		wantMsg string
	}{
		{name: "corpo válido", body: `{"url":"https://a.com","message":"oi"}`, wantOK: true, wantURL: "https://a.com", wantMsg: "oi"},
		{name: "corpo vazio", body: "", wantOK: false},
		{name: "apenas espaços", body: "   \n", wantOK: false},
		{name: "JSON malformado", body: `{"url":`, wantOK: false},
		{name: "texto não JSON", body: "url=https://a.com", wantOK: false},
		{name: "número em campo texto é convertido", body: `{"message": 42}`, wantOK: true, wantMsg: "42"},
		{name: "campo inconversível não descarta os demais", body: `{"url": {"a": 1}, "message": "oi"}`, wantOK: true, wantMsg: "oi"},
		{name: "url nula fica ausente", body: `{"url": null, "message": "oi"}`, wantOK: true, wantMsg: "oi"},
		{name: "lista no lugar de objeto", body: `["oi"]`, wantOK: false},
		{name: "campo url ausente", body: `{"message":"oi"}`, wantOK: true, wantMsg: "oi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))

			got, ok := DecodeBody[sampleBody](req)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantMsg, got.Message)
			if tt.wantURL == "" {
				assert.Nil(t, got.URL)
			} else {
				require.NotNil(t, got.URL)
				assert.Equal(t, tt.wantURL, *got.URL)
			}
		})
	}
}

func TestDecodeBody_NilBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Body = nil

	_, ok := DecodeBody[sampleBody](req)
	assert.False(t, ok)
}

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	err := WriteJSON(rec, http.StatusCreated, map[string]string{"status": "ok"})

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestGenerateNumericID(t *testing.T) {
	id, err := GenerateNumericID()

	require.NoError(t, err)
	assert.Len(t, id, 14)
	assert.True(t, strings.HasPrefix(id, "2385"))
	for _, c := range id {
		assert.True(t, c >= '0' && c <= '9', "caractere não numérico: %q", c)
	}
}

func TestRatio(t *testing.T) {
	assert.Equal(t, 0.0, Ratio(10, 0))
	assert.Equal(t, 3.38, Ratio(27000*100, 800000))
	assert.Equal(t, 400.0, Ratio(120000, 300))
}

func TestFormatTimestamp(t *testing.T) {
	ts := time.Date(2024, 1, 15, 6, 30, 0, 123456789, time.UTC)

	formatted := FormatTimestamp(ts)

	assert.Equal(t, "2024-01-15T06:30:00.123456Z", formatted)
	parsed, err := time.Parse(TimestampLayout, formatted)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(ts.Truncate(time.Microsecond)))
}
