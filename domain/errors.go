package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("your requested Item is not found")
	// ErrForbidden will throw if the actor does not own the item it tries to mutate
	ErrForbidden = errors.New("you are not allowed to modify this item")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given Param is not valid")
	// ErrCacheMiss will throw if the requested key is not cached
	ErrCacheMiss = errors.New("cache miss")
	// ErrMethodNotImplemented is returned by the Unimplemented* repository bases
	ErrMethodNotImplemented = errors.New("method not implemented")
)

// Error is a domain failure with a client facing message.
// errors.Is(err, ErrNotFound) and friends match on Kind.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Kind.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// NewNotFoundError reports a missing thread, comment or reply.
func NewNotFoundError(message string) error {
	return &Error{Kind: ErrNotFound, Message: message}
}

// NewAuthorizationError reports an actor mutating something it does not own.
func NewAuthorizationError(message string) error {
	return &Error{Kind: ErrForbidden, Message: message}
}

// ValidationKind tells which payload check failed.
type ValidationKind int

const (
	MissingRequiredField ValidationKind = iota + 1
	WrongType
)

func (k ValidationKind) String() string {
	switch k {
	case MissingRequiredField:
		return "NOT_CONTAIN_NEEDED_PROPERTY"
	case WrongType:
		return "NOT_MEET_DATA_TYPE_SPECIFICATION"
	default:
		return "UNKNOWN"
	}
}

// ValidationError is raised while constructing a value object from a raw payload.
type ValidationError struct {
	Entity string // e.g. ADD_THREAD
	Kind   ValidationKind
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s.%s", e.Entity, e.Kind)
}

func (e *ValidationError) Unwrap() error {
	return ErrBadParamInput
}

var validationSubjects = map[string]string{
	EntityAddThread:     "membuat thread baru",
	EntityAddComment:    "membuat komentar baru",
	EntityAddReply:      "membuat balasan baru",
	EntityAddedThread:   "menampilkan thread yang ditambahkan",
	EntityAddedComment:  "menampilkan komentar yang ditambahkan",
	EntityAddedReply:    "menampilkan balasan yang ditambahkan",
	EntityThreadDetail:  "menampilkan detail thread",
	EntityCommentDetail: "menampilkan detail komentar",
	EntityReplyDetail:   "menampilkan detail balasan",
}

// Message is the client facing text for the failed validation.
func (e *ValidationError) Message() string {
	subject, ok := validationSubjects[e.Entity]
	if !ok {
		return e.Error()
	}
	switch e.Kind {
	case MissingRequiredField:
		return "tidak dapat " + subject + " karena properti yang dibutuhkan tidak ada"
	case WrongType:
		return "tidak dapat " + subject + " karena tipe data tidak sesuai"
	default:
		return e.Error()
	}
}

// IsValidationKind reports whether err is a ValidationError of the given kind.
func IsValidationKind(err error, kind ValidationKind) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr) && vErr.Kind == kind
}
