package reply

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/forum-api/domain"
)

type service struct {
	replyRepo   domain.ReplyRepository
	threadCache domain.ThreadDetailCache
}

var _ domain.ReplyUsecase = (*service)(nil)

// NewService will create a new reply service object. threadCache may be nil.
func NewService(replyRepo domain.ReplyRepository, threadCache domain.ThreadDetailCache) *service {
	return &service{
		replyRepo:   replyRepo,
		threadCache: threadCache,
	}
}

func (s *service) AddReply(ctx context.Context, reply domain.AddReply, threadID, commentID, owner string) (domain.AddedReply, error) {
	added, err := s.replyRepo.AddReply(ctx, reply, threadID, commentID, owner)
	if err != nil {
		return domain.AddedReply{}, err
	}
	s.evictThread(ctx, threadID)
	return added, nil
}

func (s *service) RemoveReply(ctx context.Context, threadID, commentID, replyID, userID string) error {
	if err := s.replyRepo.RemoveReplyByID(ctx, threadID, commentID, replyID, userID); err != nil {
		return err
	}
	s.evictThread(ctx, threadID)
	return nil
}

func (s *service) evictThread(ctx context.Context, threadID string) {
	if s.threadCache == nil {
		return
	}
	if err := s.threadCache.Delete(ctx, threadID); err != nil {
		logrus.Warnf("failed to evict thread %s from cache: %v", threadID, err)
	}
}
