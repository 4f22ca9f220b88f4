package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-blkdecoder/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	decoderBlocksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "blkdecoder",
		Name:      "blocks_total",
		Help:      "Count of decoded block frames.",
	}, []string{"coin", "network"})

	decoderTransactionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "blkdecoder",
		Name:      "transactions_total",
		Help:      "Count of decoded transactions.",
	}, []string{"coin", "network", "witness"})

	decoderBlockDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "blkdecoder",
		Name:      "block_duration_seconds",
		Help:      "Duration of decoding and writing a single block.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"coin", "network", "status"})

	decoderBlockTransactions = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "blkdecoder",
		Name:      "block_transactions",
		Help:      "Number of transactions per block.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 14), // 1..8192
	}, []string{"coin", "network"})

	decoderFilesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "blkdecoder",
		Name:      "files_total",
		Help:      "Count of block files finished, by outcome.",
	}, []string{"coin", "network", "status"})

	decoderFormatErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "blkdecoder",
		Name:      "format_errors_total",
		Help:      "Count of malformed frames by failing check.",
	}, []string{"coin", "network", "kind"})

	decoderScriptErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "blkdecoder",
		Name:      "script_errors_total",
		Help:      "Count of scripts whose pushes overrun the script end.",
	}, []string{"coin", "network", "position"})

	decoderSizeMismatchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "blkdecoder",
		Name:      "size_mismatch_total",
		Help:      "Count of frames whose declared size differs from the bytes decoded.",
	}, []string{"coin", "network"})
)

// Decoder tracks metrics of a decode run.
type Decoder struct {
	coin    model.Coin
	network model.Network
}

// NewDecoder creates a Decoder collector.
func NewDecoder(coin model.Coin, network model.Network) *Decoder {
	if coin == "" {
		coin = "unknown"
	}
	if network == "" {
		network = "unknown"
	}
	return &Decoder{coin: coin, network: network}
}

func (m Decoder) ObserveBlock(err error, txs, witnessTxs int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	decoderBlockDuration.WithLabelValues(string(m.coin), string(m.network), status).
		Observe(time.Since(started).Seconds())
	if err != nil {
		return
	}
	decoderBlocksTotal.WithLabelValues(string(m.coin), string(m.network)).Inc()
	decoderBlockTransactions.WithLabelValues(string(m.coin), string(m.network)).Observe(float64(txs))
	decoderTransactionsTotal.WithLabelValues(string(m.coin), string(m.network), "false").Add(float64(txs - witnessTxs))
	decoderTransactionsTotal.WithLabelValues(string(m.coin), string(m.network), "true").Add(float64(witnessTxs))
}

func (m Decoder) ObserveFile(err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	decoderFilesTotal.WithLabelValues(string(m.coin), string(m.network), status).Inc()
}

func (m Decoder) ObserveFormatError(kind string) {
	decoderFormatErrorsTotal.WithLabelValues(string(m.coin), string(m.network), kind).Inc()
}

func (m Decoder) ObserveScriptError(position string) {
	decoderScriptErrorsTotal.WithLabelValues(string(m.coin), string(m.network), position).Inc()
}

func (m Decoder) ObserveSizeMismatch() {
	decoderSizeMismatchTotal.WithLabelValues(string(m.coin), string(m.network)).Inc()
}
