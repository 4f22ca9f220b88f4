package main

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockinsight7000-blkdecoder/internal/blkfile"
	"github.com/goodnatureofminers/blockinsight7000-blkdecoder/internal/chain"
	"github.com/goodnatureofminers/blockinsight7000-blkdecoder/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-blkdecoder/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-blkdecoder/internal/script"
	"github.com/goodnatureofminers/blockinsight7000-blkdecoder/internal/service/decoder"
	"github.com/goodnatureofminers/blockinsight7000-blkdecoder/internal/writer/clickhouse"
	"github.com/goodnatureofminers/blockinsight7000-blkdecoder/internal/writer/csv"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type config struct {
	BlocksDir       string        `long:"blocks-dir" env:"BLKDECODER_BLOCKS_DIR" description:"directory holding blk*.dat files" required:"true"`
	FirstFile       int           `long:"first-file" env:"BLKDECODER_FIRST_FILE" description:"index of the first blk file to read" default:"0"`
	Files           int           `long:"files" env:"BLKDECODER_FILES" description:"number of blk files to read, 0 reads until the first missing file" default:"0"`
	FirstBlockIndex uint64        `long:"first-block-index" env:"BLKDECODER_FIRST_BLOCK_INDEX" description:"index assigned to the first decoded block" default:"0"`
	Coin            model.Coin    `long:"coin" env:"BLKDECODER_COIN" description:"coin name" default:"BTC"`
	Network         model.Network `long:"network" env:"BLKDECODER_NETWORK" description:"network the files were written for (mainnet, testnet, regtest, signet)" default:"mainnet"`
	XORKey          string        `long:"xor-key" env:"BLKDECODER_XOR_KEY" description:"hex obfuscation key; read from xor.dat in blocks-dir when empty"`
	Workers         int           `long:"workers" env:"BLKDECODER_WORKERS" description:"files decoded concurrently; 1 decodes sequentially. Each extra worker keeps up to 16 decoded blocks in memory" default:"1"`
	VersionPolicy   string        `long:"version-policy" env:"BLKDECODER_VERSION_POLICY" description:"transaction version policy (any, strict)" default:"any"`
	ErrorPolicy     string        `long:"error-policy" env:"BLKDECODER_ERROR_POLICY" description:"what a malformed file does (skip-file, abort)" default:"skip-file"`
	StrictPadding   bool          `long:"strict-padding" env:"BLKDECODER_STRICT_PADDING" description:"report zero padding after the last block as a magic mismatch instead of ending the file; required for the strict frame format"`
	Details         bool          `long:"details" env:"BLKDECODER_DETAILS" description:"write input and output records"`
	Sink            string        `long:"sink" env:"BLKDECODER_SINK" description:"record sink (csv, clickhouse)" default:"csv"`
	OutDir          string        `long:"out-dir" env:"BLKDECODER_OUT_DIR" description:"directory for csv output" default:"csv"`
	ClickhouseDSN   string        `long:"clickhouse-dsn" env:"BLKDECODER_CLICKHOUSE_DSN" description:"ClickHouse DSN"`
	FlushSize       int           `long:"flush-size" env:"BLKDECODER_FLUSH_SIZE" description:"blocks per ClickHouse batch" default:"500"`
	FlushInterval   time.Duration `long:"flush-interval" env:"BLKDECODER_FLUSH_INTERVAL" description:"maximum time a block waits in the batch" default:"5s"`
	FlushRPS        int           `long:"flush-rps" env:"BLKDECODER_FLUSH_RPS" description:"maximum ClickHouse batches per second" default:"10"`
	WriteAttempts   int           `long:"write-attempts" env:"BLKDECODER_WRITE_ATTEMPTS" description:"attempts per ClickHouse insert" default:"3"`
	WriteBackoff    time.Duration `long:"write-backoff" env:"BLKDECODER_WRITE_BACKOFF" description:"pause before the first insert retry" default:"1s"`
	MetricsAddr     string        `long:"metrics-addr" env:"BLKDECODER_METRICS_ADDR" description:"address for metrics server, empty disables it" default:":2112"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("blk decoder failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	if cfg.MetricsAddr != "" {
		startMetricsServer(ctx, cfg.MetricsAddr, logger)
	}

	params, err := chain.ParamsForNetwork(cfg.Network)
	if err != nil {
		return err
	}
	versionPolicy, err := blkfile.ParseVersionPolicy(cfg.VersionPolicy)
	if err != nil {
		return err
	}
	errorPolicy, err := decoder.ParseErrorPolicy(cfg.ErrorPolicy)
	if err != nil {
		return err
	}

	key, err := xorKey(cfg)
	if err != nil {
		return err
	}
	sources, err := blkfile.DirSources(cfg.BlocksDir, cfg.FirstFile, cfg.Files, key)
	if err != nil {
		return err
	}
	logger.Info("block files found",
		zap.String("dir", cfg.BlocksDir),
		zap.Int("files", len(sources)),
		zap.Bool("obfuscated", key != nil),
		zap.Int("workers", cfg.Workers),
	)

	source := newSource(cfg, sources, chain.Magic(params), versionPolicy)

	writer, closeWriter, err := newWriter(cfg, logger)
	if err != nil {
		return err
	}
	defer closeWriter()

	svc, err := decoder.NewService(
		source,
		writer,
		script.NewClassifier(params),
		metrics.NewDecoder(cfg.Coin, cfg.Network),
		decoder.Config{
			Coin:    cfg.Coin,
			Network: cfg.Network,
			Details: cfg.Details,
			Policy:  errorPolicy,
		},
		logger,
	)
	if err != nil {
		return err
	}

	stats, err := svc.Run(ctx)
	logger.Info("decode summary",
		zap.Int("files", stats.Files),
		zap.Int("failed_files", stats.FailedFiles),
		zap.Uint64("blocks", stats.Blocks),
		zap.Uint64("transactions", stats.Transactions),
		zap.Uint64("inputs", stats.Inputs),
		zap.Uint64("outputs", stats.Outputs),
		zap.Uint64("script_errors", stats.ScriptErrors),
	)
	return err
}

func newSource(cfg config, sources []blkfile.Source, magic wire.BitcoinNet, versionPolicy blkfile.VersionPolicy) decoder.BlockSource {
	opts := []blkfile.Option{
		blkfile.WithMagic(magic),
		blkfile.WithVersionPolicy(versionPolicy),
		blkfile.WithZeroPaddingAsEOF(!cfg.StrictPadding),
	}
	if cfg.Workers > 1 {
		return decoder.NewParallelSource(sources, cfg.Workers, cfg.FirstBlockIndex, opts...)
	}
	return blkfile.NewSession(sources, append(opts, blkfile.WithFirstBlockIndex(cfg.FirstBlockIndex))...)
}

func xorKey(cfg config) ([]byte, error) {
	if cfg.XORKey != "" {
		key, err := hex.DecodeString(cfg.XORKey)
		if err != nil {
			return nil, fmt.Errorf("parse xor key: %w", err)
		}
		return key, nil
	}
	return blkfile.LoadXORKey(filepath.Join(cfg.BlocksDir, blkfile.XORKeyFile))
}

func newWriter(cfg config, logger *zap.Logger) (decoder.BlockWriter, func(), error) {
	switch cfg.Sink {
	case "csv":
		w, err := csv.Open(cfg.OutDir, metrics.NewWriter("csv"), logger)
		if err != nil {
			return nil, nil, fmt.Errorf("init csv writer: %w", err)
		}
		return w, func() {}, nil
	case "clickhouse":
		if cfg.ClickhouseDSN == "" {
			return nil, nil, errors.New("ClickHouse DSN is required for the clickhouse sink")
		}
		repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewWriter("clickhouse"))
		if err != nil {
			return nil, nil, fmt.Errorf("init repository: %w", err)
		}
		w, err := clickhouse.NewWriter(repo, clickhouse.WriterConfig{
			FlushSize:     cfg.FlushSize,
			FlushInterval: cfg.FlushInterval,
			FlushRPS:      cfg.FlushRPS,
			Attempts:      cfg.WriteAttempts,
			Backoff:       cfg.WriteBackoff,
		}, logger)
		if err != nil {
			_ = repo.Close()
			return nil, nil, err
		}
		return w, func() {
			if err := repo.Close(); err != nil {
				logger.Warn("close clickhouse connection failed", zap.Error(err))
			}
		}, nil
	default:
		return nil, nil, fmt.Errorf("unknown sink %q", cfg.Sink)
	}
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
