package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/Guyuepp/forum-api/domain"
	"github.com/Guyuepp/forum-api/internal/repository/mysql/model"
)

type replyRepository struct {
	DB    *gorm.DB
	newID domain.IDGenerator
	clock domain.Clock
}

var _ domain.ReplyRepository = (*replyRepository)(nil)

func NewReplyRepository(db *gorm.DB, newID domain.IDGenerator, clock domain.Clock) *replyRepository {
	return &replyRepository{
		DB:    db,
		newID: newID,
		clock: clock,
	}
}

func (r *replyRepository) AddReply(ctx context.Context, reply domain.AddReply, threadID, commentID, owner string) (domain.AddedReply, error) {
	db := r.DB.WithContext(ctx)

	if err := verifyCommentInThread(db, threadID, commentID, domain.MsgReplyParentInvalid); err != nil {
		return domain.AddedReply{}, err
	}

	replyModel := model.NewReplyFromDomain(reply, "reply-"+r.newID(), commentID, owner, domain.FormatDate(r.clock()))
	if err := db.Create(replyModel).Error; err != nil {
		// the comment can vanish between the check and the insert
		return domain.AddedReply{}, classifyError(err, domain.MsgReplyParentInvalid)
	}
	return replyModel.ToAdded()
}

func (r *replyRepository) GetRepliesByCommentID(ctx context.Context, commentID string) ([]domain.ReplyRow, error) {
	var rows []model.ReplyWithUsername
	err := r.DB.WithContext(ctx).
		Table("comment_replies").
		Select("comment_replies.id, comment_replies.content, comment_replies.date, users.username, comment_replies.is_deleted").
		Joins("JOIN users ON users.id = comment_replies.owner").
		Where("comment_replies.comment_id = ?", commentID).
		Order("comment_replies.date ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.ReplyRow, len(rows))
	for i := range rows {
		res[i] = rows[i].ToDomain()
	}
	return res, nil
}

func (r *replyRepository) RemoveReplyByID(ctx context.Context, threadID, commentID, replyID, userID string) error {
	db := r.DB.WithContext(ctx)

	owner, found, err := lookupOwner(db.Table("comment_replies").
		Select("comment_replies.owner").
		Joins("JOIN thread_comments ON thread_comments.id = comment_replies.comment_id").
		Where("comment_replies.id = ? AND comment_replies.comment_id = ? AND thread_comments.thread_id = ?", replyID, commentID, threadID))
	if err != nil {
		return err
	}
	if err := domain.ReplyOwnership.Authorize(owner, found, userID); err != nil {
		return err
	}

	return db.Model(&model.Reply{}).
		Where("comment_id = ? AND id = ?", commentID, replyID).
		Update("is_deleted", true).Error
}
