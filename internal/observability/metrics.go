// Package observability registra as métricas Prometheus do painel
package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	upstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mcp_dashboard",
		Name:      "upstream_requests_total",
		Help:      "Requisições para a API do MCP por endpoint e resultado",
	}, []string{"endpoint", "outcome"})

	upstreamDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "mcp_dashboard",
		Name:      "upstream_request_duration_seconds",
		Help:      "Duração das requisições para a API do MCP",
		Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 90},
	}, []string{"endpoint"})

	kitGenerations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mcp_dashboard",
		Name:      "kit_generations_total",
		Help:      "Gerações de kit finalizadas por resultado",
	}, []string{"result"})

	aiStatus = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "mcp_dashboard",
		Name:      "ai_status",
		Help:      "Status atual do gerador de conteúdo (1 para o status vigente)",
	}, []string{"status"})

	jobRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mcp_dashboard",
		Name:      "scheduler_job_runs_total",
		Help:      "Execuções dos jobs agendados",
	}, []string{"job", "result"})
)

var aiStatuses = []string{"checking", "active", "template", "error"}

// ObserveUpstream registra uma chamada à API do MCP
func ObserveUpstream(endpoint, outcome string, elapsed time.Duration) {
	upstreamRequests.WithLabelValues(endpoint, outcome).Inc()
	upstreamDuration.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}

// ObserveKitGeneration registra o resultado final de uma geração
func ObserveKitGeneration(result string) {
	kitGenerations.WithLabelValues(result).Inc()
}

// SetAIStatus marca o status vigente e zera os demais
func SetAIStatus(status string) {
	for _, s := range aiStatuses {
		value := 0.0
		if s == status {
			value = 1
		}
		aiStatus.WithLabelValues(s).Set(value)
	}
}

func ObserveJobRun(job string, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	jobRuns.WithLabelValues(job, result).Inc()
}

// Handler expõe as métricas no formato do Prometheus
func Handler() http.Handler {
	return promhttp.Handler()
}
