package fanout

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	entriesDelivered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fanout_stream_entries_delivered_total",
		Help: "Number of stream entries written by the fan-out engine.",
	})

	entriesDuplicate = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fanout_stream_entries_duplicate_total",
		Help: "Number of fan-out inserts skipped because the entry already existed.",
	})

	entriesFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fanout_stream_entries_failed_total",
		Help: "Number of stream entry writes that failed.",
	})
)
