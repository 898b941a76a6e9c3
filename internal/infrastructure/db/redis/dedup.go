package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultDedupTTL = 24 * time.Hour

// TxnDedup guards against replayed payment transaction references, backed
// by Redis. Key format: txn:<transaction_id>
//
// The Mongo unique index on transaction_id is the durable backstop; this
// check answers faster and keeps replays out of the write path.
type TxnDedup struct {
	client *redis.Client
	ttl    time.Duration
}

// NewTxnDedup creates a TxnDedup wrapping the given Redis client. A zero
// ttl falls back to the default.
func NewTxnDedup(client *redis.Client, ttl time.Duration) *TxnDedup {
	if ttl <= 0 {
		ttl = defaultDedupTTL
	}
	return &TxnDedup{client: client, ttl: ttl}
}

// Seen reports whether this transaction reference was already recorded.
func (d *TxnDedup) Seen(ctx context.Context, transactionID string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(transactionID)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records the transaction reference (expires after the configured TTL).
func (d *TxnDedup) Mark(ctx context.Context, transactionID string) error {
	return d.client.Set(ctx, d.key(transactionID), "1", d.ttl).Err()
}

func (d *TxnDedup) key(transactionID string) string {
	return "txn:" + transactionID
}
