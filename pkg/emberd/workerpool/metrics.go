package workerpool

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	tasksSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "emberd",
		Subsystem: "workerpool",
		Name:      "tasks_submitted_total",
		Help:      "Total number of tasks submitted to the pool.",
	})

	tasksCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "emberd",
		Subsystem: "workerpool",
		Name:      "tasks_completed_total",
		Help:      "Total number of tasks that finished running.",
	})

	queueGrowths = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "emberd",
		Subsystem: "workerpool",
		Name:      "queue_growths_total",
		Help:      "Total number of times the task queue doubled its capacity.",
	})

	queueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "emberd",
		Subsystem: "workerpool",
		Name:      "queue_depth",
		Help:      "Current number of tasks waiting in the queue.",
	})
)
