package memory

import (
	"context"

	"github.com/Guyuepp/forum-api/domain"
)

type commentRepository struct {
	store *Store
	newID domain.IDGenerator
	clock domain.Clock
}

var _ domain.CommentRepository = (*commentRepository)(nil)

func NewCommentRepository(store *Store, newID domain.IDGenerator, clock domain.Clock) *commentRepository {
	return &commentRepository{store: store, newID: newID, clock: clock}
}

func (r *commentRepository) AddComment(_ context.Context, comment domain.AddComment, threadID, owner string) (domain.AddedComment, error) {
	s := r.store
	s.mu.Lock()
	if _, ok := s.threads[threadID]; !ok {
		s.mu.Unlock()
		return domain.AddedComment{}, domain.NewNotFoundError(domain.MsgCommentThreadInvalid)
	}
	rec := &commentRecord{
		seq:      s.nextSeqLocked(),
		id:       "comment-" + r.newID(),
		threadID: threadID,
		owner:    owner,
		content:  comment.Content,
		date:     domain.FormatDate(r.clock()),
	}
	if _, exists := s.comments[rec.id]; exists {
		s.mu.Unlock()
		return domain.AddedComment{}, &domain.Error{Kind: domain.ErrConflict}
	}
	s.comments[rec.id] = rec
	s.mu.Unlock()

	return domain.NewAddedComment(domain.Payload{"id": rec.id, "content": rec.content, "owner": rec.owner})
}

func (r *commentRepository) GetCommentsByThreadID(_ context.Context, threadID string) ([]domain.CommentRow, error) {
	s := r.store
	s.mu.RLock()
	var recs []commentRecord
	for _, c := range s.comments {
		if c.threadID == threadID {
			recs = append(recs, *c)
		}
	}
	byDate(recs, func(c commentRecord) string { return c.date }, func(c commentRecord) int { return c.seq })

	res := make([]domain.CommentRow, len(recs))
	for i, c := range recs {
		res[i] = domain.CommentRow{
			ID:        c.id,
			Username:  s.usernameLocked(c.owner),
			Date:      c.date,
			Content:   c.content,
			IsDeleted: c.isDeleted,
		}
	}
	s.mu.RUnlock()
	return res, nil
}

func (r *commentRepository) RemoveCommentByID(_ context.Context, threadID, commentID, userID string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	c, found := s.comments[commentID]
	found = found && c.threadID == threadID
	var owner string
	if found {
		owner = c.owner
	}
	if err := domain.CommentOwnership.Authorize(owner, found, userID); err != nil {
		return err
	}
	c.isDeleted = true
	return nil
}

func (r *commentRepository) GetCommentLikesCountByCommentID(_ context.Context, commentID string) (int, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for k := range s.likes {
		if k.commentID == commentID {
			n++
		}
	}
	return n, nil
}

func (r *commentRepository) AddCommentLike(_ context.Context, threadID, commentID, userID string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.comments[commentID]
	if !ok || c.threadID != threadID {
		return domain.NewNotFoundError(domain.MsgCommentToLikeInvalid)
	}
	key := likeKey{commentID, userID}
	if _, liked := s.likes[key]; liked {
		return &domain.Error{Kind: domain.ErrConflict}
	}
	s.likes[key] = struct{}{}
	return nil
}

func (r *commentRepository) RemoveCommentLike(_ context.Context, _, commentID, userID string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.likes, likeKey{commentID, userID})
	return nil
}
