// Package csv writes decoded records to four CSV files: blocks, transactions,
// inputs and outputs.
package csv

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/goodnatureofminers/blockinsight7000-blkdecoder/internal/model"
	"go.uber.org/zap"
)

const (
	BlocksFile  = "blocks.csv"
	TxsFile     = "tx.csv"
	InputsFile  = "txi.csv"
	OutputsFile = "txo.csv"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type Metrics interface {
	Observe(operation string, coin model.Coin, network model.Network, rows int, err error, started time.Time)
}

// Outputs are the destinations of the four tables.
type Outputs struct {
	Blocks  io.Writer
	Txs     io.Writer
	Inputs  io.Writer
	Outputs io.Writer
}

type table struct {
	name string
	w    gocsv.CSVWriter
}

// Writer appends records to CSV tables. Each table starts with its header row.
// It is safe for concurrent use.
type Writer struct {
	mu      sync.Mutex
	blocks  table
	txs     table
	inputs  table
	outputs table
	closers []io.Closer
	metrics Metrics
	logger  *zap.Logger
}

// Open creates the four files in dir, truncating existing ones.
func Open(dir string, metrics Metrics, logger *zap.Logger) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	var files []*os.File
	closeAll := func() {
		for _, f := range files {
			_ = f.Close()
		}
	}
	for _, name := range []string{BlocksFile, TxsFile, InputsFile, OutputsFile} {
		f, err := os.Create(filepath.Join(dir, name))
		if err != nil {
			closeAll()
			return nil, fmt.Errorf("create %s: %w", name, err)
		}
		files = append(files, f)
	}

	w, err := NewWriter(Outputs{Blocks: files[0], Txs: files[1], Inputs: files[2], Outputs: files[3]}, metrics, logger)
	if err != nil {
		closeAll()
		return nil, err
	}
	for _, f := range files {
		w.closers = append(w.closers, f)
	}
	logger.Info("csv output opened", zap.String("dir", dir))
	return w, nil
}

// NewWriter writes the header rows to out and returns a Writer over it.
func NewWriter(out Outputs, metrics Metrics, logger *zap.Logger) (*Writer, error) {
	if metrics == nil {
		return nil, errors.New("csv writer metrics is required")
	}
	w := &Writer{
		blocks:  table{name: BlocksFile, w: gocsv.NewSafeCSVWriter(csv.NewWriter(out.Blocks))},
		txs:     table{name: TxsFile, w: gocsv.NewSafeCSVWriter(csv.NewWriter(out.Txs))},
		inputs:  table{name: InputsFile, w: gocsv.NewSafeCSVWriter(csv.NewWriter(out.Inputs))},
		outputs: table{name: OutputsFile, w: gocsv.NewSafeCSVWriter(csv.NewWriter(out.Outputs))},
		metrics: metrics,
		logger:  logger.Named("csv"),
	}

	headers := []struct {
		t    table
		rows any
	}{
		{w.blocks, []blockRow{}},
		{w.txs, []txRow{}},
		{w.inputs, []inputRow{}},
		{w.outputs, []outputRow{}},
	}
	for _, h := range headers {
		if err := gocsv.MarshalCSV(h.rows, h.t.w); err != nil {
			return nil, fmt.Errorf("write %s header: %w", h.t.name, err)
		}
	}
	return w, nil
}

// Start is a no-op; rows are written synchronously.
func (w *Writer) Start(context.Context) {}

// WriteBlock appends the block and its transaction, input and output rows.
func (w *Writer) WriteBlock(_ context.Context, b model.InsertBlock) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	coin, network := b.Block.Coin, b.Block.Network
	if err := w.write(w.blocks, "write_blocks", coin, network, []blockRow{toBlockRow(b.Block)}, 1); err != nil {
		return err
	}
	if err := w.write(w.txs, "write_transactions", coin, network, toTxRows(b.Txs), len(b.Txs)); err != nil {
		return err
	}
	if len(b.Inputs) > 0 {
		if err := w.write(w.inputs, "write_inputs", coin, network, toInputRows(b.Inputs), len(b.Inputs)); err != nil {
			return err
		}
	}
	if len(b.Outputs) > 0 {
		if err := w.write(w.outputs, "write_outputs", coin, network, toOutputRows(b.Outputs), len(b.Outputs)); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) write(t table, operation string, coin model.Coin, network model.Network, rows any, n int) (err error) {
	start := time.Now()
	defer func() {
		w.metrics.Observe(operation, coin, network, n, err, start)
	}()

	if err = gocsv.MarshalCSVWithoutHeaders(rows, t.w); err != nil {
		return fmt.Errorf("write %s: %w", t.name, err)
	}
	return nil
}

// Stop flushes every table and closes the files opened by Open.
func (w *Writer) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	var errs []error
	for _, t := range []table{w.blocks, w.txs, w.inputs, w.outputs} {
		t.w.Flush()
		if err := t.w.Error(); err != nil {
			errs = append(errs, fmt.Errorf("flush %s: %w", t.name, err))
		}
	}
	for _, c := range w.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	w.closers = nil
	if err := errors.Join(errs...); err != nil {
		return err
	}
	w.logger.Debug("csv output flushed")
	return nil
}
