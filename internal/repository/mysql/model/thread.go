package model

import "github.com/Guyuepp/forum-api/domain"

type Thread struct {
	ID    string `gorm:"type:varchar(50);primaryKey"`
	Owner string `gorm:"type:varchar(50);not null"`
	Title string `gorm:"type:text;not null"`
	Body  string `gorm:"type:text;not null"`
	Date  string `gorm:"type:varchar(32);not null"`
}

func (Thread) TableName() string {
	return "threads"
}

func NewThreadFromDomain(t domain.AddThread, id, owner, date string) *Thread {
	return &Thread{
		ID:    id,
		Owner: owner,
		Title: t.Title,
		Body:  t.Body,
		Date:  date,
	}
}

func (m *Thread) ToAdded() (domain.AddedThread, error) {
	return domain.NewAddedThread(domain.Payload{
		"id":    m.ID,
		"title": m.Title,
		"owner": m.Owner,
	})
}

// ThreadWithUsername is a thread row joined with its owner's username.
type ThreadWithUsername struct {
	ID       string
	Title    string
	Body     string
	Date     string
	Username string
}

// ToDomain builds the thread view with no comments attached yet.
func (r *ThreadWithUsername) ToDomain() (domain.ThreadDetail, error) {
	return domain.NewThreadDetail(domain.Payload{
		"id":       r.ID,
		"title":    r.Title,
		"body":     r.Body,
		"date":     r.Date,
		"username": r.Username,
	})
}
