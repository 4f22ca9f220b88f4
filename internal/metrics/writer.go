package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-blkdecoder/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	writerOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "blkdecoder_writer",
		Name:      "operations_total",
		Help:      "Count of record sink operations.",
	}, []string{"sink", "operation", "coin", "network", "status"})
	writerOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "blkdecoder_writer",
		Name:      "operation_duration_seconds",
		Help:      "Duration of record sink operations.",
		Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
	}, []string{"sink", "operation", "coin", "network", "status"})
	writerRowsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "blkdecoder_writer",
		Name:      "rows_total",
		Help:      "Rows written by record sinks.",
	}, []string{"sink", "operation", "coin", "network"})
)

// Writer tracks metrics for one record sink.
type Writer struct {
	sink string
}

// NewWriter creates a Writer collector labelled with sink ("csv", "clickhouse").
func NewWriter(sink string) *Writer {
	if sink == "" {
		sink = "unknown"
	}
	return &Writer{sink: sink}
}

// Observe records duration, status and row count of a sink operation. Rows are
// only counted on success.
func (m Writer) Observe(operation string, coin model.Coin, network model.Network, rows int, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	if coin == "" {
		coin = "unknown"
	}
	if network == "" {
		network = "unknown"
	}

	writerOperationsTotal.WithLabelValues(m.sink, operation, string(coin), string(network), status).Inc()
	writerOperationDuration.WithLabelValues(m.sink, operation, string(coin), string(network), status).
		Observe(time.Since(started).Seconds())
	if err == nil && rows > 0 {
		writerRowsTotal.WithLabelValues(m.sink, operation, string(coin), string(network)).Add(float64(rows))
	}
}
