package redis

import (
	"context"
	"hash/crc32"
	"hash/fnv"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/Guyuepp/forum-api/domain"
)

// KeyThreadBloom holds the bitset of every known thread id.
const KeyThreadBloom = "bloom:thread:ids"

// redisBloomRepo is a k=3 bloom filter over a redis bitset.
//
// Ids whose bits could not be written are kept in unsynced and reported as
// present until a later write succeeds, so a failed Add never turns an
// existing thread into a "definitely absent" answer.
type redisBloomRepo struct {
	client  redis.Cmdable
	bitSize uint64

	mu       sync.Mutex
	unsynced map[string]struct{}
}

var _ domain.BloomRepository = (*redisBloomRepo)(nil)

// NewRedisBloomRepo sizes the filter in bits. Thread ids are uuid based strings, so
// roughly 10 bits per expected thread keeps false positives near 1%.
func NewRedisBloomRepo(client redis.Cmdable, bitSize uint64) *redisBloomRepo {
	if bitSize == 0 {
		bitSize = 1
	}
	return &redisBloomRepo{
		client:   client,
		bitSize:  bitSize,
		unsynced: make(map[string]struct{}),
	}
}

func (r *redisBloomRepo) Add(ctx context.Context, id string) error {
	return r.BulkAdd(ctx, []string{id})
}

// BulkAdd writes ids together with any earlier ids that failed to sync.
func (r *redisBloomRepo) BulkAdd(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	batch := append(r.snapshotUnsynced(), ids...)
	if err := r.setBits(ctx, batch); err != nil {
		r.markUnsynced(ids)
		return err
	}
	r.forgetUnsynced(batch)
	return nil
}

// Exists reports false only when one of the id's bits is clear in redis.
func (r *redisBloomRepo) Exists(ctx context.Context, id string) (bool, error) {
	if r.isUnsynced(id) {
		pending := r.snapshotUnsynced()
		if err := r.setBits(ctx, pending); err == nil {
			r.forgetUnsynced(pending)
		}
		return true, nil
	}

	pipe := r.client.Pipeline()
	for _, offset := range r.offsets(id) {
		pipe.GetBit(ctx, KeyThreadBloom, int64(offset))
	}
	cmds, err := pipe.Exec(ctx)
	if err != nil {
		return false, err
	}
	for _, cmd := range cmds {
		bit, err := cmd.(*redis.IntCmd).Result()
		if err != nil {
			return false, err
		}
		if bit == 0 {
			return false, nil
		}
	}
	return true, nil
}

func (r *redisBloomRepo) setBits(ctx context.Context, ids []string) error {
	pipe := r.client.Pipeline()
	for _, id := range ids {
		for _, offset := range r.offsets(id) {
			pipe.SetBit(ctx, KeyThreadBloom, int64(offset), 1)
		}
	}
	_, err := pipe.Exec(ctx)
	return err
}

// snapshotUnsynced copies the pending ids. They stay pending until forgetUnsynced
// runs after their bits are written.
func (r *redisBloomRepo) snapshotUnsynced() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]string, 0, len(r.unsynced))
	for id := range r.unsynced {
		ids = append(ids, id)
	}
	return ids
}

func (r *redisBloomRepo) forgetUnsynced(ids []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range ids {
		delete(r.unsynced, id)
	}
}

func (r *redisBloomRepo) markUnsynced(ids []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range ids {
		r.unsynced[id] = struct{}{}
	}
}

func (r *redisBloomRepo) isUnsynced(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.unsynced[id]
	return ok
}

// offsets derives three bit positions: crc32, fnv64 and their sum.
func (r *redisBloomRepo) offsets(id string) [3]uint64 {
	data := []byte(id)

	h := fnv.New64()
	_, _ = h.Write(data)

	a := uint64(crc32.ChecksumIEEE(data)) % r.bitSize
	b := h.Sum64() % r.bitSize
	return [3]uint64{a, b, (a + b + 0xABC) % r.bitSize}
}
