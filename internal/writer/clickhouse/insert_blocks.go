package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-blkdecoder/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-blkdecoder/pkg/safe"
)

const insertBlocksQuery = `
INSERT INTO blk_blocks (
	coin,
	network,
	block_index,
	file_index,
	file_offset,
	hash,
	timestamp,
	version,
	prev_hash,
	merkle_root,
	bits,
	nonce,
	declared_size,
	consumed_size,
	tx_count
) VALUES`

// InsertBlocks stores block rows in ClickHouse.
func (r *Repository) InsertBlocks(ctx context.Context, blocks []model.Block) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_blocks", firstCoin(blocks), firstNetwork(blocks), len(blocks), err, start)
	}()

	if len(blocks) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertBlocksQuery)
	if err != nil {
		return fmt.Errorf("prepare blocks batch: %w", err)
	}

	for _, block := range blocks {
		var fileIndex uint32
		if fileIndex, err = safe.Uint32(block.FileIndex); err != nil {
			return fmt.Errorf("block %d file index: %w", block.BlockIndex, err)
		}
		if err = batch.Append(
			string(block.Coin),
			string(block.Network),
			block.BlockIndex,
			fileIndex,
			block.FileOffset,
			block.Hash,
			block.Timestamp,
			block.Version,
			block.PrevHash,
			block.MerkleRoot,
			block.Bits,
			block.Nonce,
			block.DeclaredSize,
			block.ConsumedSize,
			block.TXCount,
		); err != nil {
			return fmt.Errorf("append block: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert blocks: %w", err)
	}
	return nil
}
