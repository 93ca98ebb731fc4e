package domain

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Payload is a raw, decoded request or row mapping handed to the entity constructors.
type Payload map[string]any

// Entity names used in ValidationError codes.
const (
	EntityAddThread     = "ADD_THREAD"
	EntityAddedThread   = "ADDED_THREAD"
	EntityThreadDetail  = "THREAD_DETAIL"
	EntityAddComment    = "ADD_COMMENT"
	EntityAddedComment  = "ADDED_COMMENT"
	EntityCommentDetail = "COMMENT_DETAIL"
	EntityAddReply      = "ADD_REPLY"
	EntityAddedReply    = "ADDED_REPLY"
	EntityReplyDetail   = "REPLY_DETAIL"
)

// DateLayout is the fixed width ISO-8601 layout every stored date uses,
// so that string order equals chronological order.
const DateLayout = "2006-01-02T15:04:05.000Z"

// FormatDate renders t in DateLayout (UTC).
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// IDGenerator supplies the opaque part of a new thread, comment or reply id.
type IDGenerator func() string

// Clock supplies creation timestamps.
type Clock func() time.Time

var validate = validator.New()

// requireFields fails with MissingRequiredField when any key is absent or holds a zero value
// ("", 0, false, nil).
func requireFields(entity string, p Payload, keys ...string) error {
	for _, key := range keys {
		if err := validate.Var(p[key], "required"); err != nil {
			return &ValidationError{Entity: entity, Kind: MissingRequiredField}
		}
	}
	return nil
}

// stringFields fails with WrongType when a present key is not a string.
func stringFields(entity string, p Payload, keys ...string) error {
	for _, key := range keys {
		v, ok := p[key]
		if !ok {
			continue
		}
		if _, isString := v.(string); !isString {
			return &ValidationError{Entity: entity, Kind: WrongType}
		}
	}
	return nil
}

func str(p Payload, key string) string {
	s, _ := p[key].(string)
	return s
}
