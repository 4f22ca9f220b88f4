// Package decoder drives a pass over the block files: it pulls decoded blocks,
// converts them to records and hands them to a BlockWriter.
package decoder

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-blkdecoder/internal/blkfile"
	"github.com/goodnatureofminers/blockinsight7000-blkdecoder/internal/model"
	"go.uber.org/zap"
)

const defaultProgressEvery = 1000

// ErrorPolicy decides what a malformed file does to the run.
type ErrorPolicy int

const (
	// AbortFile logs the error, skips the rest of the file and continues.
	AbortFile ErrorPolicy = iota
	// AbortRun stops the run with the error.
	AbortRun
)

// ParseErrorPolicy maps a config value to an ErrorPolicy.
func ParseErrorPolicy(s string) (ErrorPolicy, error) {
	switch s {
	case "", "skip-file":
		return AbortFile, nil
	case "abort":
		return AbortRun, nil
	default:
		return 0, fmt.Errorf("unknown error policy %q", s)
	}
}

// Config holds the run options of a Service.
type Config struct {
	Coin    model.Coin
	Network model.Network
	// Details adds input and output records to every block.
	Details       bool
	Policy        ErrorPolicy
	ProgressEvery uint64
}

// Stats summarises a finished run.
type Stats struct {
	Files        int
	FailedFiles  int
	Blocks       uint64
	Transactions uint64
	Inputs       uint64
	Outputs      uint64
	ScriptErrors uint64
}

type Service struct {
	source        BlockSource
	writer        BlockWriter
	metrics       DecoderMetrics
	conv          *converter
	policy        ErrorPolicy
	progressEvery uint64
	logger        *zap.Logger

	currentFile int
	fileOpen    bool
	stats       Stats
}

func NewService(
	source BlockSource,
	writer BlockWriter,
	classifier ScriptClassifier,
	metrics DecoderMetrics,
	cfg Config,
	logger *zap.Logger,
) (*Service, error) {
	if source == nil {
		return nil, errors.New("block source is required")
	}
	if writer == nil {
		return nil, errors.New("block writer is required")
	}
	if metrics == nil {
		return nil, errors.New("decoder metrics is required")
	}
	if cfg.ProgressEvery == 0 {
		cfg.ProgressEvery = defaultProgressEvery
	}

	return &Service{
		source:  source,
		writer:  writer,
		metrics: metrics,
		conv: &converter{
			coin:       cfg.Coin,
			network:    cfg.Network,
			classifier: classifier,
			details:    cfg.Details,
		},
		policy:        cfg.Policy,
		progressEvery: cfg.ProgressEvery,
		logger: logger.With(
			zap.String("coin", string(cfg.Coin)),
			zap.String("network", string(cfg.Network)),
		),
	}, nil
}

// Run decodes every block the source yields. The writer is started before the
// first block and stopped before Run returns.
func (s *Service) Run(ctx context.Context) (stats Stats, err error) {
	s.writer.Start(ctx)
	defer func() {
		if stopErr := s.writer.Stop(); stopErr != nil {
			s.logger.Error("stop block writer failed", zap.Error(stopErr))
			if err == nil {
				err = fmt.Errorf("stop block writer: %w", stopErr)
			}
		}
		if closeErr := s.source.Close(); closeErr != nil {
			s.logger.Warn("close block source failed", zap.Error(closeErr))
		}
		stats = s.stats
	}()

	for {
		if err = s.step(ctx); err != nil {
			if errors.Is(err, io.EOF) {
				s.finishFile(nil)
				s.logger.Info("decode finished",
					zap.Int("files", s.stats.Files),
					zap.Int("failed_files", s.stats.FailedFiles),
					zap.Uint64("blocks", s.stats.Blocks),
					zap.Uint64("transactions", s.stats.Transactions),
					zap.Uint64("script_errors", s.stats.ScriptErrors),
				)
				return s.stats, nil
			}
			return s.stats, err
		}
	}
}

func (s *Service) step(ctx context.Context) error {
	started := time.Now()
	block, err := s.source.Next(ctx)
	if err != nil {
		if errors.Is(err, io.EOF) || ctx.Err() != nil {
			return err
		}
		return s.handleSourceError(err)
	}

	if !s.fileOpen || block.FileIndex != s.currentFile {
		s.finishFile(nil)
		s.startFile(block.FileIndex)
	}

	err = s.processBlock(ctx, block)
	witnessTxs := 0
	for i := range block.Transactions {
		if block.Transactions[i].HasWitness {
			witnessTxs++
		}
	}
	s.metrics.ObserveBlock(err, len(block.Transactions), witnessTxs, started)
	return err
}

func (s *Service) processBlock(ctx context.Context, block *blkfile.Block) error {
	if block.ConsumedSize != int64(block.DeclaredSize) {
		s.metrics.ObserveSizeMismatch()
		s.logger.Warn("declared block size differs from decoded size",
			zap.Int("file", block.FileIndex),
			zap.Uint64("block", block.Index),
			zap.Uint32("declared", block.DeclaredSize),
			zap.Int64("consumed", block.ConsumedSize),
		)
	}

	record, issues, err := s.conv.convert(block)
	if err != nil {
		return fmt.Errorf("convert block %d: %w", block.Index, err)
	}
	for _, issue := range issues {
		s.metrics.ObserveScriptError(issue.Position)
		s.logger.Warn("script disassembly incomplete",
			zap.Uint64("block", block.Index),
			zap.String("txid", issue.TxID),
			zap.String("position", issue.Position),
			zap.Uint32("index", issue.Index),
			zap.Error(issue.Err),
		)
	}

	if err := s.writer.WriteBlock(ctx, record); err != nil {
		return fmt.Errorf("write block %d: %w", block.Index, err)
	}

	s.stats.Blocks++
	s.stats.Transactions += uint64(len(record.Txs))
	for i := range block.Transactions {
		s.stats.Inputs += uint64(len(block.Transactions[i].Inputs))
		s.stats.Outputs += uint64(len(block.Transactions[i].Outputs))
	}
	s.stats.ScriptErrors += uint64(len(issues))

	fields := []zap.Field{
		zap.Int("file", block.FileIndex),
		zap.Uint64("block", block.Index),
		zap.String("hash", record.Block.Hash),
		zap.String("date", record.Block.Date()),
		zap.String("time", record.Block.Time()),
		zap.Int("txs", len(record.Txs)),
	}
	if (block.Index+1)%s.progressEvery == 0 {
		s.logger.Info("progress", fields...)
	} else {
		s.logger.Debug("block decoded", fields...)
	}
	return nil
}

func (s *Service) handleSourceError(err error) error {
	fileIndex := -1
	if src, ok := s.source.CurrentSource(); ok {
		fileIndex = src.Index
	}
	msg := "block file is malformed"
	var (
		fe *blkfile.FormatError
		oe *blkfile.OpenError
	)
	switch {
	case errors.As(err, &fe):
		fileIndex = fe.FileIndex
		s.metrics.ObserveFormatError(formatErrorKind(err))
	case errors.As(err, &oe):
		fileIndex = oe.FileIndex
		msg = "block file cannot be opened"
	}

	if fileIndex >= 0 && (!s.fileOpen || s.currentFile != fileIndex) {
		s.finishFile(nil)
		s.startFile(fileIndex)
	}
	s.finishFile(err)

	if s.policy == AbortRun {
		s.logger.Error(msg+"; aborting", zap.Int("file", fileIndex), zap.Error(err))
		return err
	}

	s.logger.Error(msg+"; skipping rest of file", zap.Int("file", fileIndex), zap.Error(err))
	if skipErr := s.source.SkipSource(); skipErr != nil {
		return fmt.Errorf("skip block file: %w", skipErr)
	}
	return nil
}

func (s *Service) startFile(index int) {
	s.currentFile = index
	s.fileOpen = true
	s.logger.Debug("block file started", zap.Int("file", index))
}

func (s *Service) finishFile(err error) {
	if !s.fileOpen {
		if err != nil {
			s.stats.Files++
			s.stats.FailedFiles++
			s.metrics.ObserveFile(err)
		}
		return
	}
	s.fileOpen = false
	s.stats.Files++
	if err != nil {
		s.stats.FailedFiles++
	}
	s.metrics.ObserveFile(err)
}

func formatErrorKind(err error) string {
	switch {
	case errors.Is(err, blkfile.ErrMagicMismatch):
		return "magic_mismatch"
	case errors.Is(err, blkfile.ErrSegwitFlag):
		return "segwit_flag"
	case errors.Is(err, blkfile.ErrUnsupportedVersion):
		return "unsupported_version"
	case errors.Is(err, blkfile.ErrTruncatedField):
		return "truncated"
	default:
		return "other"
	}
}
