package model

import "github.com/Guyuepp/forum-api/domain"

type Comment struct {
	ID        string `gorm:"type:varchar(50);primaryKey"`
	ThreadID  string `gorm:"column:thread_id;type:varchar(50);not null"`
	Owner     string `gorm:"type:varchar(50);not null"`
	Content   string `gorm:"type:text;not null"`
	Date      string `gorm:"type:varchar(32);not null"`
	IsDeleted bool   `gorm:"column:is_deleted;not null;default:false"`
}

func (Comment) TableName() string {
	return "thread_comments"
}

func NewCommentFromDomain(c domain.AddComment, id, threadID, owner, date string) *Comment {
	return &Comment{
		ID:       id,
		ThreadID: threadID,
		Owner:    owner,
		Content:  c.Content,
		Date:     date,
	}
}

func (m *Comment) ToAdded() (domain.AddedComment, error) {
	return domain.NewAddedComment(domain.Payload{
		"id":      m.ID,
		"content": m.Content,
		"owner":   m.Owner,
	})
}

// CommentWithUsername is a comment row joined with its owner's username.
type CommentWithUsername struct {
	ID        string
	Username  string
	Date      string
	Content   string
	IsDeleted bool
}

func (r *CommentWithUsername) ToDomain() domain.CommentRow {
	return domain.CommentRow{
		ID:        r.ID,
		Username:  r.Username,
		Date:      r.Date,
		Content:   r.Content,
		IsDeleted: r.IsDeleted,
	}
}
