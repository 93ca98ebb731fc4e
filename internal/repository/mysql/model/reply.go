package model

import "github.com/Guyuepp/forum-api/domain"

type Reply struct {
	ID        string `gorm:"type:varchar(50);primaryKey"`
	CommentID string `gorm:"column:comment_id;type:varchar(50);not null"`
	Owner     string `gorm:"type:varchar(50);not null"`
	Content   string `gorm:"type:text;not null"`
	Date      string `gorm:"type:varchar(32);not null"`
	IsDeleted bool   `gorm:"column:is_deleted;not null;default:false"`
}

func (Reply) TableName() string {
	return "comment_replies"
}

func NewReplyFromDomain(r domain.AddReply, id, commentID, owner, date string) *Reply {
	return &Reply{
		ID:        id,
		CommentID: commentID,
		Owner:     owner,
		Content:   r.Content,
		Date:      date,
	}
}

func (m *Reply) ToAdded() (domain.AddedReply, error) {
	return domain.NewAddedReply(domain.Payload{
		"id":      m.ID,
		"content": m.Content,
		"owner":   m.Owner,
	})
}

// ReplyWithUsername is a reply row joined with its owner's username.
type ReplyWithUsername struct {
	ID        string
	Content   string
	Date      string
	Username  string
	IsDeleted bool
}

func (r *ReplyWithUsername) ToDomain() domain.ReplyRow {
	return domain.ReplyRow{
		ID:        r.ID,
		Content:   r.Content,
		Date:      r.Date,
		Username:  r.Username,
		IsDeleted: r.IsDeleted,
	}
}
