package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "meta_ads_api_http_requests_total",
			Help: "Total de requisições HTTP atendidas por rota",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "meta_ads_api_http_request_duration_seconds",
			Help:    "Duração das requisições HTTP em segundos",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// AdapterInvocations conta invocações por adaptador serverless e resultado (ok | error)
	AdapterInvocations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "meta_ads_api_adapter_invocations_total",
			Help: "Total de invocações recebidas pelos adaptadores serverless",
		},
		[]string{"adapter", "outcome"},
	)
)

const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)
