package domain

import "context"

// UnimplementedThreadRepository can be embedded by partial ThreadRepository
// implementations; every method it does not override fails with ErrMethodNotImplemented.
type UnimplementedThreadRepository struct{}

func (UnimplementedThreadRepository) AddThread(context.Context, AddThread, string) (AddedThread, error) {
	return AddedThread{}, ErrMethodNotImplemented
}

func (UnimplementedThreadRepository) GetThreadByID(context.Context, string) (ThreadDetail, error) {
	return ThreadDetail{}, ErrMethodNotImplemented
}

func (UnimplementedThreadRepository) FetchIDs(context.Context, string, int) ([]string, error) {
	return nil, ErrMethodNotImplemented
}

// UnimplementedCommentRepository is the CommentRepository counterpart.
type UnimplementedCommentRepository struct{}

func (UnimplementedCommentRepository) AddComment(context.Context, AddComment, string, string) (AddedComment, error) {
	return AddedComment{}, ErrMethodNotImplemented
}

func (UnimplementedCommentRepository) GetCommentsByThreadID(context.Context, string) ([]CommentRow, error) {
	return nil, ErrMethodNotImplemented
}

func (UnimplementedCommentRepository) RemoveCommentByID(context.Context, string, string, string) error {
	return ErrMethodNotImplemented
}

func (UnimplementedCommentRepository) GetCommentLikesCountByCommentID(context.Context, string) (int, error) {
	return 0, ErrMethodNotImplemented
}

func (UnimplementedCommentRepository) AddCommentLike(context.Context, string, string, string) error {
	return ErrMethodNotImplemented
}

func (UnimplementedCommentRepository) RemoveCommentLike(context.Context, string, string, string) error {
	return ErrMethodNotImplemented
}

// UnimplementedReplyRepository is the ReplyRepository counterpart.
type UnimplementedReplyRepository struct{}

func (UnimplementedReplyRepository) AddReply(context.Context, AddReply, string, string, string) (AddedReply, error) {
	return AddedReply{}, ErrMethodNotImplemented
}

func (UnimplementedReplyRepository) GetRepliesByCommentID(context.Context, string) ([]ReplyRow, error) {
	return nil, ErrMethodNotImplemented
}

func (UnimplementedReplyRepository) RemoveReplyByID(context.Context, string, string, string, string) error {
	return ErrMethodNotImplemented
}

var (
	_ ThreadRepository  = UnimplementedThreadRepository{}
	_ CommentRepository = UnimplementedCommentRepository{}
	_ ReplyRepository   = UnimplementedReplyRepository{}
)
