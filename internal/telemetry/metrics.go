package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CommandsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "voxboard_commands_total",
		Help: "Voice commands processed, by outcome kind and mapped action",
	}, []string{"kind", "action"})

	StageDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "voxboard_stage_duration_seconds",
		Help:    "Latency of each pipeline station",
		Buckets: prometheus.DefBuckets,
	}, []string{"stage"})

	ScratchCleanupFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "voxboard_scratch_cleanup_failures_total",
		Help: "Scratch files that could not be removed after a request",
	})
)
