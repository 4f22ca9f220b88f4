package decoder

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-blkdecoder/internal/blkfile"
	"github.com/goodnatureofminers/blockinsight7000-blkdecoder/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	BlockSource interface {
		Next(ctx context.Context) (*blkfile.Block, error)
		SkipSource() error
		CurrentSource() (blkfile.Source, bool)
		Close() error
	}
	BlockWriter interface {
		Start(ctx context.Context)
		Stop() error
		WriteBlock(ctx context.Context, b model.InsertBlock) error
	}
	ScriptClassifier interface {
		Classify(pkScript []byte) (string, []string)
	}

	DecoderMetrics interface {
		ObserveBlock(err error, txs, witnessTxs int, started time.Time)
		ObserveFile(err error)
		ObserveFormatError(kind string)
		ObserveScriptError(position string)
		ObserveSizeMismatch()
	}
)
