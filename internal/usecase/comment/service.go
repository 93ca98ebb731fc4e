package comment

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/forum-api/domain"
)

type service struct {
	commentRepo domain.CommentRepository
	threadCache domain.ThreadDetailCache
	bloomRepo   domain.BloomRepository
}

var _ domain.CommentUsecase = (*service)(nil)

// NewService will create a new comment service object.
// threadCache and bloomRepo are optional and may be nil.
func NewService(commentRepo domain.CommentRepository, threadCache domain.ThreadDetailCache, bloomRepo domain.BloomRepository) *service {
	return &service{
		commentRepo: commentRepo,
		threadCache: threadCache,
		bloomRepo:   bloomRepo,
	}
}

func (s *service) AddComment(ctx context.Context, comment domain.AddComment, threadID, owner string) (domain.AddedComment, error) {
	if err := s.mustExist(ctx, threadID); err != nil {
		return domain.AddedComment{}, err
	}

	added, err := s.commentRepo.AddComment(ctx, comment, threadID, owner)
	if err != nil {
		return domain.AddedComment{}, err
	}
	s.evictThread(ctx, threadID)
	return added, nil
}

func (s *service) RemoveComment(ctx context.Context, threadID, commentID, userID string) error {
	if err := s.commentRepo.RemoveCommentByID(ctx, threadID, commentID, userID); err != nil {
		return err
	}
	s.evictThread(ctx, threadID)
	return nil
}

// LikeUnlikeComment tries to insert the like and lets the unique (comment, user)
// constraint decide: a conflict means the comment was already liked, so the like
// is removed instead. Any other insert failure is returned as is.
//
// Two concurrent toggles by the same user can both hit the conflict and both
// delete, leaving the comment unliked. A serializable transaction would close
// that window.
func (s *service) LikeUnlikeComment(ctx context.Context, threadID, commentID, userID string) (string, error) {
	err := s.commentRepo.AddCommentLike(ctx, threadID, commentID, userID)
	if err == nil {
		s.evictThread(ctx, threadID)
		return domain.MsgCommentLiked, nil
	}
	if !errors.Is(err, domain.ErrConflict) {
		return "", err
	}

	if err := s.commentRepo.RemoveCommentLike(ctx, threadID, commentID, userID); err != nil {
		return "", err
	}
	s.evictThread(ctx, threadID)
	return domain.MsgCommentUnliked, nil
}

func (s *service) mustExist(ctx context.Context, threadID string) error {
	if s.bloomRepo == nil {
		return nil
	}
	exists, err := s.bloomRepo.Exists(ctx, threadID)
	if err != nil {
		logrus.Warnf("bloom filter error: %v", err)
		return nil
	}
	if !exists {
		logrus.Warnf("bloom filter says thread %s does not exist", threadID)
		return domain.NewNotFoundError(domain.MsgCommentThreadInvalid)
	}
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
