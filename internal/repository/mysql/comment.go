package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/Guyuepp/forum-api/domain"
	"github.com/Guyuepp/forum-api/internal/repository/mysql/model"
)

type commentRepository struct {
	DB    *gorm.DB
	newID domain.IDGenerator
	clock domain.Clock
}

var _ domain.CommentRepository = (*commentRepository)(nil)

func NewCommentRepository(db *gorm.DB, newID domain.IDGenerator, clock domain.Clock) *commentRepository {
	return &commentRepository{
		DB:    db,
		newID: newID,
		clock: clock,
	}
}

func (c *commentRepository) AddComment(ctx context.Context, comment domain.AddComment, threadID, owner string) (domain.AddedComment, error) {
	commentModel := model.NewCommentFromDomain(comment, "comment-"+c.newID(), threadID, owner, domain.FormatDate(c.clock()))

	err := c.DB.WithContext(ctx).Create(commentModel).Error
	if err != nil {
		return domain.AddedComment{}, classifyError(err, domain.MsgCommentThreadInvalid)
	}
	return commentModel.ToAdded()
}

func (c *commentRepository) GetCommentsByThreadID(ctx context.Context, threadID string) ([]domain.CommentRow, error) {
	var rows []model.CommentWithUsername
	err := c.DB.WithContext(ctx).
		Table("thread_comments").
		Select("thread_comments.id, users.username, thread_comments.date, thread_comments.content, thread_comments.is_deleted").
		Joins("JOIN users ON users.id = thread_comments.owner").
		Where("thread_comments.thread_id = ?", threadID).
		Order("thread_comments.date ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.CommentRow, len(rows))
	for i := range rows {
		res[i] = rows[i].ToDomain()
	}
	return res, nil
}

func (c *commentRepository) RemoveCommentByID(ctx context.Context, threadID, commentID, userID string) error {
	db := c.DB.WithContext(ctx)

	owner, found, err := lookupOwner(db.Model(&model.Comment{}).
		Select("owner").
		Where("id = ? AND thread_id = ?", commentID, threadID))
	if err != nil {
		return err
	}
	if err := domain.CommentOwnership.Authorize(owner, found, userID); err != nil {
		return err
	}

	return db.Model(&model.Comment{}).
		Where("thread_id = ? AND id = ?", threadID, commentID).
		Update("is_deleted", true).Error
}

func (c *commentRepository) GetCommentLikesCountByCommentID(ctx context.Context, commentID string) (int, error) {
	var n int64
	err := c.DB.WithContext(ctx).
		Model(&model.CommentLike{}).
		Where("comment_id = ?", commentID).
		Count(&n).Error
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

func (c *commentRepository) AddCommentLike(ctx context.Context, threadID, commentID, userID string) error {
	db := c.DB.WithContext(ctx)

	if err := verifyCommentInThread(db, threadID, commentID, domain.MsgCommentToLikeInvalid); err != nil {
		return err
	}

	like := &model.CommentLike{
		ID:        "like-" + c.newID(),
		CommentID: commentID,
		UserID:    userID,
	}
	return classifyError(db.Create(like).Error, domain.MsgCommentToLikeInvalid)
}

func (c *commentRepository) RemoveCommentLike(ctx context.Context, threadID, commentID, userID string) error {
	return c.DB.WithContext(ctx).
		Where("comment_id = ? AND user_id = ?", commentID, userID).
		Delete(&model.CommentLike{}).Error
}

// verifyCommentInThread fails with a not found error unless commentID belongs to threadID.
func verifyCommentInThread(db *gorm.DB, threadID, commentID, notFoundMessage string) error {
	var n int64
	err := db.Model(&model.Comment{}).
		Where("id = ? AND thread_id = ?", commentID, threadID).
		Count(&n).Error
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.NewNotFoundError(notFoundMessage)
	}
	return nil
}
