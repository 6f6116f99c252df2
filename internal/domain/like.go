package domain

import "time"

// Like records one user liking one answer (likes table). The composite
// unique index is the guard that keeps the likes counter honest.
type Like struct {
	ID        string    `gorm:"column:id;primaryKey;size:36" json:"id"`
	UserID    string    `gorm:"column:user_id;size:36;uniqueIndex:idx_likes_user_answer" json:"user_id"`
	AnswerID  string    `gorm:"column:answer_id;size:36;uniqueIndex:idx_likes_user_answer" json:"answer_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName returns the table name for GORM
func (Like) TableName() string {
	return "likes"
}

// LikeResponse is the response DTO for like/unlike actions
type LikeResponse struct {
	Likes     int  `json:"likes"`
	UserLiked bool `json:"user_liked"`
}
