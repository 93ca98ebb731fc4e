package thread

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/Guyuepp/forum-api/domain"
)

const (
	bloomInitPageSize = 500
	rebuildTimeout    = 10 * time.Second
)

type Service struct {
	threadRepo   domain.ThreadRepository
	commentRepo  domain.CommentRepository
	replyRepo    domain.ReplyRepository
	cache        domain.ThreadDetailCache
	bloomRepo    domain.BloomRepository
	rebuildGroup singleflight.Group
}

var _ domain.ThreadUsecase = (*Service)(nil)

// NewService will create a new thread service object.
// cache and bloomRepo are optional and may be nil.
func NewService(t domain.ThreadRepository, c domain.CommentRepository, r domain.ReplyRepository, cache domain.ThreadDetailCache, bloomRepo domain.BloomRepository) *Service {
	return &Service{
		threadRepo:  t,
		commentRepo: c,
		replyRepo:   r,
		cache:       cache,
		bloomRepo:   bloomRepo,
	}
}

func (s *Service) AddThread(ctx context.Context, thread domain.AddThread, owner string) (domain.AddedThread, error) {
	added, err := s.threadRepo.AddThread(ctx, thread, owner)
	if err != nil {
		return domain.AddedThread{}, err
	}

	if s.bloomRepo != nil {
		if err := s.bloomRepo.Add(ctx, added.ID); err != nil {
			logrus.Errorf("failed to add thread %s to bloom filter: %v", added.ID, err)
		}
	}
	return added, nil
}

// GetThreadDetail serves the assembled thread from cache when possible.
// Concurrent misses for the same thread share one assembly.
func (s *Service) GetThreadDetail(ctx context.Context, threadID string) (domain.ThreadDetail, error) {
	if err := s.mustExist(ctx, threadID); err != nil {
		return domain.ThreadDetail{}, err
	}

	if s.cache != nil {
		detail, err := s.cache.Get(ctx, threadID)
		if err == nil {
			return detail, nil
		}
		if !errors.Is(err, domain.ErrCacheMiss) {
			logrus.Warnf("cache get error: %v", err)
		}
	}

	// The assembly is shared by every waiting caller, so it must outlive the first one.
	result, err, _ := s.rebuildGroup.Do(threadID, func() (any, error) {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), rebuildTimeout)
		defer cancel()

		detail, err := s.assembleThreadDetail(ctx, threadID)
		if err != nil {
			return nil, err
		}
		if s.cache != nil {
			if err := s.cache.Set(ctx, detail); err != nil {
				logrus.Warnf("cache set error: %v", err)
			}
		}
		return detail, nil
	})
	if err != nil {
		return domain.ThreadDetail{}, err
	}
	return result.(domain.ThreadDetail), nil
}

// InitBloomFilter loads every stored thread id into the bloom filter.
func (s *Service) InitBloomFilter(ctx context.Context) error {
	if s.bloomRepo == nil {
		return nil
	}

	cursor := ""
	total := 0
	for {
		ids, err := s.threadRepo.FetchIDs(ctx, cursor, bloomInitPageSize)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			break
		}
		if err := s.bloomRepo.BulkAdd(ctx, ids); err != nil {
			return err
		}
		total += len(ids)
		if len(ids) < bloomInitPageSize {
			break
		}
		cursor = ids[len(ids)-1]
	}

	logrus.Infof("bloom filter initialized with %d threads", total)
	return nil
}

func (s *Service) mustExist(ctx context.Context, threadID string) error {
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
		return domain.NewNotFoundError(domain.MsgThreadNotFound)
	}
	return nil
}
