package domain

import "context"

// LikeCountNotComputed marks a CommentDetail whose likes were never counted.
// Zero is a real count, so it cannot double as "unknown".
const LikeCountNotComputed = -1

// AddComment is the validated payload of a new comment.
type AddComment struct {
	Content string
}

func NewAddComment(p Payload) (AddComment, error) {
	if err := requireFields(EntityAddComment, p, "content"); err != nil {
		return AddComment{}, err
	}
	if err := stringFields(EntityAddComment, p, "content"); err != nil {
		return AddComment{}, err
	}
	return AddComment{Content: str(p, "content")}, nil
}

// AddedComment is what the store returns after inserting a comment.
type AddedComment struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

func NewAddedComment(p Payload) (AddedComment, error) {
	if err := requireFields(EntityAddedComment, p, "id", "content", "owner"); err != nil {
		return AddedComment{}, err
	}
	if err := stringFields(EntityAddedComment, p, "id", "content", "owner"); err != nil {
		return AddedComment{}, err
	}
	return AddedComment{ID: str(p, "id"), Content: str(p, "content"), Owner: str(p, "owner")}, nil
}

// CommentDetail is a comment as shown inside a ThreadDetail.
type CommentDetail struct {
	ID        string        `json:"id"`
	Username  string        `json:"username"`
	Date      string        `json:"date"`
	Content   string        `json:"content"`
	Replies   []ReplyDetail `json:"replies"`
	LikeCount int           `json:"likeCount"`
}

// NewCommentDetail validates a raw payload into a CommentDetail.
// Only id, username, date and content are mandatory; replies defaults to an empty
// sequence and likeCount to LikeCountNotComputed.
func NewCommentDetail(p Payload) (CommentDetail, error) {
	if err := requireFields(EntityCommentDetail, p, "id", "username", "date", "content"); err != nil {
		return CommentDetail{}, err
	}
	if err := stringFields(EntityCommentDetail, p, "id", "username", "date", "content"); err != nil {
		return CommentDetail{}, err
	}

	replies := []ReplyDetail{}
	if raw, ok := p["replies"]; ok && raw != nil {
		typed, isSlice := raw.([]ReplyDetail)
		if !isSlice {
			return CommentDetail{}, &ValidationError{Entity: EntityCommentDetail, Kind: WrongType}
		}
		if typed != nil {
			replies = typed
		}
	}

	likeCount := LikeCountNotComputed
	if raw, ok := p["likeCount"]; ok && raw != nil {
		switch v := raw.(type) {
		case int:
			likeCount = v
		case int64:
			likeCount = int(v)
		case float64:
			if v != float64(int(v)) {
				return CommentDetail{}, &ValidationError{Entity: EntityCommentDetail, Kind: WrongType}
			}
			likeCount = int(v)
		default:
			return CommentDetail{}, &ValidationError{Entity: EntityCommentDetail, Kind: WrongType}
		}
	}

	return CommentDetail{
		ID:        str(p, "id"),
		Username:  str(p, "username"),
		Date:      str(p, "date"),
		Content:   str(p, "content"),
		Replies:   replies,
		LikeCount: likeCount,
	}, nil
}

// CommentRow is a raw comment as read from the store, before redaction.
type CommentRow struct {
	ID        string
	Username  string
	Date      string
	Content   string
	IsDeleted bool
}

// CommentRepository defines the contract for comment and comment-like persistence.
type CommentRepository interface {
	// AddComment stores a new comment under threadID.
	// Returns ErrNotFound if the thread doesn't exist.
	AddComment(ctx context.Context, comment AddComment, threadID, owner string) (AddedComment, error)

	// GetCommentsByThreadID returns every comment of the thread, deleted ones included,
	// ordered by date ascending.
	GetCommentsByThreadID(ctx context.Context, threadID string) ([]CommentRow, error)

	// RemoveCommentByID soft deletes the comment after checking that userID owns it.
	// Returns ErrNotFound or ErrForbidden without mutating anything when the check fails.
	RemoveCommentByID(ctx context.Context, threadID, commentID, userID string) error

	GetCommentLikesCountByCommentID(ctx context.Context, commentID string) (int, error)

	// AddCommentLike inserts the (commentID, userID) like.
	// Returns ErrConflict if the pair already exists, ErrNotFound if the comment is not in the thread.
	AddCommentLike(ctx context.Context, threadID, commentID, userID string) error

	// RemoveCommentLike deletes the (commentID, userID) like.
	RemoveCommentLike(ctx context.Context, threadID, commentID, userID string) error
}

type CommentUsecase interface {
	AddComment(ctx context.Context, comment AddComment, threadID, owner string) (AddedComment, error)
	RemoveComment(ctx context.Context, threadID, commentID, userID string) error
	// LikeUnlikeComment flips the like of userID on the comment and returns the confirmation message.
	LikeUnlikeComment(ctx context.Context, threadID, commentID, userID string) (string, error)
}
