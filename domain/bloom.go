package domain

import "context"

type BloomRepository interface {
	// Add puts a thread id into the filter. When it fails, Exists must keep
	// reporting the id as present until its bits are written.
	Add(ctx context.Context, id string) error

	// Exists reports whether id may be present.
	// true: maybe present, go on to cache/DB.
	// false: definitely absent, answer 404 straight away.
	Exists(ctx context.Context, id string) (bool, error)

	// BulkAdd adds many ids in one round trip.
	BulkAdd(ctx context.Context, ids []string) error
}
