package domain

import "context"

// AddThread is the validated payload of a new thread.
type AddThread struct {
	Title string
	Body  string
}

// NewAddThread validates a raw payload into an AddThread.
func NewAddThread(p Payload) (AddThread, error) {
	if err := requireFields(EntityAddThread, p, "title", "body"); err != nil {
		return AddThread{}, err
	}
	if err := stringFields(EntityAddThread, p, "title", "body"); err != nil {
		return AddThread{}, err
	}
	return AddThread{Title: str(p, "title"), Body: str(p, "body")}, nil
}

// AddedThread is what the store returns after inserting a thread.
type AddedThread struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Owner string `json:"owner"`
}

func NewAddedThread(p Payload) (AddedThread, error) {
	if err := requireFields(EntityAddedThread, p, "id", "title", "owner"); err != nil {
		return AddedThread{}, err
	}
	if err := stringFields(EntityAddedThread, p, "id", "title", "owner"); err != nil {
		return AddedThread{}, err
	}
	return AddedThread{ID: str(p, "id"), Title: str(p, "title"), Owner: str(p, "owner")}, nil
}

// ThreadDetail is the composite read view of a thread.
// Comments is always non-nil and sorted by date, earliest first.
type ThreadDetail struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Body     string          `json:"body"`
	Date     string          `json:"date"`
	Username string          `json:"username"`
	Comments []CommentDetail `json:"comments"`
}

// NewThreadDetail validates a raw payload into a ThreadDetail.
// A missing "comments" key defaults to an empty sequence.
func NewThreadDetail(p Payload) (ThreadDetail, error) {
	if err := requireFields(EntityThreadDetail, p, "id", "title", "body", "date", "username"); err != nil {
		return ThreadDetail{}, err
	}
	if err := stringFields(EntityThreadDetail, p, "id", "title", "body", "date", "username"); err != nil {
		return ThreadDetail{}, err
	}

	comments := []CommentDetail{}
	if raw, ok := p["comments"]; ok && raw != nil {
		typed, isSlice := raw.([]CommentDetail)
		if !isSlice {
			return ThreadDetail{}, &ValidationError{Entity: EntityThreadDetail, Kind: WrongType}
		}
		if typed != nil {
			comments = typed
		}
	}

	return ThreadDetail{
		ID:       str(p, "id"),
		Title:    str(p, "title"),
		Body:     str(p, "body"),
		Date:     str(p, "date"),
		Username: str(p, "username"),
		Comments: comments,
	}, nil
}

// ThreadRepository defines the contract for thread persistence.
type ThreadRepository interface {
	// AddThread stores a new thread owned by owner.
	AddThread(ctx context.Context, thread AddThread, owner string) (AddedThread, error)

	// GetThreadByID returns the thread with an empty Comments field.
	// Returns ErrNotFound if the thread doesn't exist.
	GetThreadByID(ctx context.Context, id string) (ThreadDetail, error)

	// FetchIDs pages through thread ids in ascending order, starting after cursor.
	FetchIDs(ctx context.Context, cursor string, limit int) ([]string, error)
}

// ThreadDetailCache caches assembled thread views.
type ThreadDetailCache interface {
	// Get returns ErrCacheMiss when nothing is cached for threadID.
	Get(ctx context.Context, threadID string) (ThreadDetail, error)
	Set(ctx context.Context, detail ThreadDetail) error
	Delete(ctx context.Context, threadID string) error
}

type ThreadUsecase interface {
	AddThread(ctx context.Context, thread AddThread, owner string) (AddedThread, error)
	GetThreadDetail(ctx context.Context, threadID string) (ThreadDetail, error)
	InitBloomFilter(ctx context.Context) error
}
