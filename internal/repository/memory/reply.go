package memory

import (
	"context"

	"github.com/Guyuepp/forum-api/domain"
)

type replyRepository struct {
	store *Store
	newID domain.IDGenerator
	clock domain.Clock
}

var _ domain.ReplyRepository = (*replyRepository)(nil)

func NewReplyRepository(store *Store, newID domain.IDGenerator, clock domain.Clock) *replyRepository {
	return &replyRepository{store: store, newID: newID, clock: clock}
}

func (r *replyRepository) AddReply(_ context.Context, reply domain.AddReply, threadID, commentID, owner string) (domain.AddedReply, error) {
	s := r.store
	s.mu.Lock()
	c, ok := s.comments[commentID]
	if !ok || c.threadID != threadID {
		s.mu.Unlock()
		return domain.AddedReply{}, domain.NewNotFoundError(domain.MsgReplyParentInvalid)
	}
	rec := &replyRecord{
		seq:       s.nextSeqLocked(),
		id:        "reply-" + r.newID(),
		commentID: commentID,
		owner:     owner,
		content:   reply.Content,
		date:      domain.FormatDate(r.clock()),
	}
	if _, exists := s.replies[rec.id]; exists {
		s.mu.Unlock()
		return domain.AddedReply{}, &domain.Error{Kind: domain.ErrConflict}
	}
	s.replies[rec.id] = rec
	s.mu.Unlock()

	return domain.NewAddedReply(domain.Payload{"id": rec.id, "content": rec.content, "owner": rec.owner})
}

func (r *replyRepository) GetRepliesByCommentID(_ context.Context, commentID string) ([]domain.ReplyRow, error) {
	s := r.store
	s.mu.RLock()
	var recs []replyRecord
	for _, rep := range s.replies {
		if rep.commentID == commentID {
			recs = append(recs, *rep)
		}
	}
	byDate(recs, func(r replyRecord) string { return r.date }, func(r replyRecord) int { return r.seq })

	res := make([]domain.ReplyRow, len(recs))
	for i, rep := range recs {
		res[i] = domain.ReplyRow{
			ID:        rep.id,
			Content:   rep.content,
			Date:      rep.date,
			Username:  s.usernameLocked(rep.owner),
			IsDeleted: rep.isDeleted,
		}
	}
	s.mu.RUnlock()
	return res, nil
}

func (r *replyRepository) RemoveReplyByID(_ context.Context, threadID, commentID, replyID, userID string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	rep, found := s.replies[replyID]
	found = found && rep.commentID == commentID
	if found {
		c, ok := s.comments[commentID]
		found = ok && c.threadID == threadID
	}
	var owner string
	if found {
		owner = rep.owner
	}
	if err := domain.ReplyOwnership.Authorize(owner, found, userID); err != nil {
		return err
	}
	rep.isDeleted = true
	return nil
}
