package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	metricPrefix = "hvac_reward_"

	resultSuccess = "success"
	resultInvalid = "invalid"
	resultError   = "error"
)

var (
	registerOnce sync.Once

	computeTotal   *prometheus.CounterVec
	computeLatency *prometheus.HistogramVec
	agentReward    *prometheus.GaugeVec

	publishTotal *prometheus.CounterVec

	exportTotal   *prometheus.CounterVec
	exportLatency *prometheus.HistogramVec

	streamClients prometheus.Gauge
)

// Init registers reward service metrics with the default registry.
func Init() {
	registerOnce.Do(func() {
		computeTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "compute_total",
				Help: "Total reward computations by result",
			},
			[]string{"result"},
		)
		computeLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "compute_latency_seconds",
				Help:    "Reward computation latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"result"},
		)
		agentReward = prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: metricPrefix + "agent_reward_value",
				Help: "Most recent agent reward value by agent",
			},
			[]string{"agent_id"},
		)

		publishTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "publish_total",
				Help: "Total reward record publications by result",
			},
			[]string{"result"},
		)

		exportTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "export_total",
				Help: "Total reward history exports by result",
			},
			[]string{"result"},
		)
		exportLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "export_latency_seconds",
				Help:    "Reward history export latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"result"},
		)

		streamClients = prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: metricPrefix + "stream_clients",
				Help: "Connected websocket reward stream clients",
			},
		)

		prometheus.MustRegister(
			computeTotal,
			computeLatency,
			agentReward,
			publishTotal,
			exportTotal,
			exportLatency,
			streamClients,
		)
	})
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveCompute records computation duration and result.
func ObserveCompute(result string, duration time.Duration) {
	if result == "" {
		result = resultSuccess
	}
	if computeTotal != nil {
		computeTotal.WithLabelValues(result).Inc()
	}
	if computeLatency != nil {
		computeLatency.WithLabelValues(result).Observe(duration.Seconds())
	}
}

// SetAgentReward stores the latest reward value for an agent.
func SetAgentReward(agentID string, value float64) {
	if agentID == "" {
		agentID = "unknown"
	}
	if agentReward != nil {
		agentReward.WithLabelValues(agentID).Set(value)
	}
}

func IncPublish(result string) {
	if result == "" {
		result = resultSuccess
	}
	if publishTotal != nil {
		publishTotal.WithLabelValues(result).Inc()
	}
}

// ObserveExport records export duration and result.
func ObserveExport(result string, duration time.Duration) {
	if result == "" {
		result = resultSuccess
	}
	if exportTotal != nil {
		exportTotal.WithLabelValues(result).Inc()
	}
	if exportLatency != nil {
		exportLatency.WithLabelValues(result).Observe(duration.Seconds())
	}
}

// StreamConnected adjusts the websocket client gauge by delta.
func StreamConnected(delta int) {
	if streamClients != nil {
		streamClients.Add(float64(delta))
	}
}

// Exported constants for callers.
const (
	ResultSuccess = resultSuccess
	ResultInvalid = resultInvalid
	ResultError   = resultError
)
