package clickhouse

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-blkdecoder/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-blkdecoder/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-blkdecoder/pkg/batcher"
	"go.uber.org/zap"
)

//go:generate mockgen -source=$GOFILE -destination=writer_mocks_test.go -package=$GOPACKAGE

// Inserter stores one table's worth of rows per call.
type Inserter interface {
	InsertBlocks(ctx context.Context, blocks []model.Block) error
	InsertTransactions(ctx context.Context, txs []model.Transaction) error
	InsertTransactionInputs(ctx context.Context, inputs []model.TransactionInput) error
	InsertTransactionOutputs(ctx context.Context, outputs []model.TransactionOutput) error
}

// WriterConfig tunes batching and retries of a Writer.
type WriterConfig struct {
	FlushSize     int
	FlushInterval time.Duration
	FlushRPS      int
	Attempts      int
	Backoff       time.Duration
}

// Writer buffers decoded blocks and inserts them in batches. Each table insert
// is retried on its own, so a failed retry never duplicates rows of another
// table.
type Writer struct {
	repo     Inserter
	batcher  *batcher.Batcher[model.InsertBlock]
	attempts int
	backoff  time.Duration
	logger   *zap.Logger
}

func NewWriter(repo Inserter, cfg WriterConfig, logger *zap.Logger) (*Writer, error) {
	if repo == nil {
		return nil, errors.New("clickhouse inserter is required")
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = time.Second
	}
	if cfg.FlushRPS <= 0 {
		cfg.FlushRPS = 10
	}

	w := &Writer{
		repo:     repo,
		attempts: cfg.Attempts,
		backoff:  cfg.Backoff,
		logger:   logger.Named("clickhouse_writer"),
	}
	w.batcher = batcher.New(w.logger, w.flush, cfg.FlushSize, cfg.FlushInterval, cfg.FlushRPS)
	return w, nil
}

func (w *Writer) Start(ctx context.Context) {
	w.batcher.Start(ctx)
}

// Stop flushes buffered blocks and returns the first insert failure.
func (w *Writer) Stop() error {
	return w.batcher.Stop()
}

// WriteBlock queues b for the next batch. It fails once an earlier batch could
// not be stored.
func (w *Writer) WriteBlock(ctx context.Context, b model.InsertBlock) error {
	if err := w.batcher.Err(); err != nil {
		return fmt.Errorf("previous batch failed: %w", err)
	}
	return w.batcher.Add(ctx, b)
}

func (w *Writer) flush(ctx context.Context, items []model.InsertBlock) error {
	var (
		blocks  = make([]model.Block, 0, len(items))
		txs     []model.Transaction
		inputs  []model.TransactionInput
		outputs []model.TransactionOutput
	)
	for _, item := range items {
		blocks = append(blocks, item.Block)
		txs = append(txs, item.Txs...)
		inputs = append(inputs, item.Inputs...)
		outputs = append(outputs, item.Outputs...)
	}

	steps := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"blocks", func(ctx context.Context) error { return w.repo.InsertBlocks(ctx, blocks) }},
		{"transactions", func(ctx context.Context) error { return w.repo.InsertTransactions(ctx, txs) }},
		{"inputs", func(ctx context.Context) error { return w.repo.InsertTransactionInputs(ctx, inputs) }},
		{"outputs", func(ctx context.Context) error { return w.repo.InsertTransactionOutputs(ctx, outputs) }},
	}
	for _, step := range steps {
		if err := clock.Retry(ctx, w.attempts, w.backoff, step.fn); err != nil {
			return fmt.Errorf("insert %s: %w", step.name, err)
		}
	}

	w.logger.Debug("batch stored",
		zap.Int("blocks", len(blocks)),
		zap.Int("transactions", len(txs)),
		zap.Int("inputs", len(inputs)),
		zap.Int("outputs", len(outputs)),
	)
	return nil
}
