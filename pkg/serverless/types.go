package serverless

import (
	"net/http"
	"net/url"
)

// Request representa uma invocação HTTP independente da plataforma serverless
type Request struct {
	Method     string
	Path       string
	Headers    http.Header
	Query      url.Values
	Body       []byte
	RemoteAddr string
	// RequestID é o identificador da plataforma, reaproveitado como ID de correlação
	RequestID string
}

// Response é a resposta produzida pelo Router, antes da tradução para a plataforma
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}
