package domain

import "context"

// AddReply is the validated payload of a new reply.
type AddReply struct {
	Content string
}

func NewAddReply(p Payload) (AddReply, error) {
	if err := requireFields(EntityAddReply, p, "content"); err != nil {
		return AddReply{}, err
	}
	if err := stringFields(EntityAddReply, p, "content"); err != nil {
		return AddReply{}, err
	}
	return AddReply{Content: str(p, "content")}, nil
}

// AddedReply is what the store returns after inserting a reply.
type AddedReply struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

func NewAddedReply(p Payload) (AddedReply, error) {
	if err := requireFields(EntityAddedReply, p, "id", "content", "owner"); err != nil {
		return AddedReply{}, err
	}
	if err := stringFields(EntityAddedReply, p, "id", "content", "owner"); err != nil {
		return AddedReply{}, err
	}
	return AddedReply{ID: str(p, "id"), Content: str(p, "content"), Owner: str(p, "owner")}, nil
}

// ReplyDetail is a reply as shown inside a CommentDetail. All fields are mandatory.
type ReplyDetail struct {
	ID       string `json:"id"`
	Content  string `json:"content"`
	Date     string `json:"date"`
	Username string `json:"username"`
}

func NewReplyDetail(p Payload) (ReplyDetail, error) {
	if err := requireFields(EntityReplyDetail, p, "id", "content", "date", "username"); err != nil {
		return ReplyDetail{}, err
	}
	if err := stringFields(EntityReplyDetail, p, "id", "content", "date", "username"); err != nil {
		return ReplyDetail{}, err
	}
	return ReplyDetail{
		ID:       str(p, "id"),
		Content:  str(p, "content"),
		Date:     str(p, "date"),
		Username: str(p, "username"),
	}, nil
}

// ReplyRow is a raw reply as read from the store, before redaction.
type ReplyRow struct {
	ID        string
	Content   string
	Date      string
	Username  string
	IsDeleted bool
}

// ReplyRepository defines the contract for reply persistence.
type ReplyRepository interface {
	// AddReply checks that commentID belongs to threadID, then stores the reply.
	// Returns ErrNotFound, and inserts nothing, when the comment is not in the thread.
	AddReply(ctx context.Context, reply AddReply, threadID, commentID, owner string) (AddedReply, error)

	// GetRepliesByCommentID returns every reply of the comment, deleted ones included,
	// ordered by date ascending.
	GetRepliesByCommentID(ctx context.Context, commentID string) ([]ReplyRow, error)

	// RemoveReplyByID soft deletes the reply after checking that userID owns it
	// and that it hangs off commentID in threadID.
	RemoveReplyByID(ctx context.Context, threadID, commentID, replyID, userID string) error
}

type ReplyUsecase interface {
	AddReply(ctx context.Context, reply AddReply, threadID, commentID, owner string) (AddedReply, error)
	RemoveReply(ctx context.Context, threadID, commentID, replyID, userID string) error
}
