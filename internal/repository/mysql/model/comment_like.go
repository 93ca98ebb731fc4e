package model

// CommentLike is one (comment, user) like; the pair is unique.
type CommentLike struct {
	ID        string `gorm:"type:varchar(50);primaryKey"`
	CommentID string `gorm:"column:comment_id;type:varchar(50);not null;uniqueIndex:uq_comment_likes_comment_id_user_id"`
	UserID    string `gorm:"column:user_id;type:varchar(50);not null;uniqueIndex:uq_comment_likes_comment_id_user_id"`
}

func (CommentLike) TableName() string {
	return "comment_likes"
}
