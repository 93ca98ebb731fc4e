package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/Guyuepp/forum-api/domain"
	"github.com/Guyuepp/forum-api/internal/repository/mysql/model"
)

type threadRepository struct {
	DB    *gorm.DB
	newID domain.IDGenerator
	clock domain.Clock
}

var _ domain.ThreadRepository = (*threadRepository)(nil)

// NewThreadRepository will create an implementation of domain.ThreadRepository
func NewThreadRepository(db *gorm.DB, newID domain.IDGenerator, clock domain.Clock) *threadRepository {
	return &threadRepository{
		DB:    db,
		newID: newID,
		clock: clock,
	}
}

func (m *threadRepository) AddThread(ctx context.Context, thread domain.AddThread, owner string) (domain.AddedThread, error) {
	threadModel := model.NewThreadFromDomain(thread, "thread-"+m.newID(), owner, domain.FormatDate(m.clock()))

	if err := m.DB.WithContext(ctx).Create(threadModel).Error; err != nil {
		return domain.AddedThread{}, err
	}
	return threadModel.ToAdded()
}

func (m *threadRepository) GetThreadByID(ctx context.Context, id string) (domain.ThreadDetail, error) {
	var rows []model.ThreadWithUsername
	err := m.DB.WithContext(ctx).
		Table("threads").
		Select("threads.id, threads.title, threads.body, threads.date, users.username").
		Joins("JOIN users ON users.id = threads.owner").
		Where("threads.id = ?", id).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return domain.ThreadDetail{}, err
	}
	if len(rows) == 0 {
		return domain.ThreadDetail{}, domain.NewNotFoundError(domain.MsgThreadNotFound)
	}
	return rows[0].ToDomain()
}

func (m *threadRepository) FetchIDs(ctx context.Context, cursor string, limit int) ([]string, error) {
	var ids []string
	err := m.DB.WithContext(ctx).
		Model(&model.Thread{}).
		Where("id > ?", cursor).
		Order("id").
		Limit(limit).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
