package domain

import (
	"time"

	"gorm.io/datatypes"
)

// Answer represents an author's answer to a question (answers table).
// An answer is created pending and stays hidden from public listings until
// an administrator approves its submission job.
type Answer struct {
	ID         string                      `gorm:"column:id;primaryKey;size:36" json:"id"`
	QuestionID string                      `gorm:"column:question_id;size:36;index" json:"question_id"`
	UserID     string                      `gorm:"column:user_id;size:36;index" json:"user_id"`
	Title      string                      `gorm:"column:title;size:500" json:"title,omitempty"`
	Summary    string                      `gorm:"column:summary;size:1000" json:"summary"`
	Content    string                      `gorm:"column:content;type:text" json:"content"`
	Links      datatypes.JSONSlice[string] `gorm:"column:links" json:"links,omitempty"`
	Likes      int                         `gorm:"column:likes;default:0" json:"likes"`
	Status     JobStatus                   `gorm:"column:status;size:16;default:pending" json:"status"`
	CreatedAt  time.Time                   `gorm:"column:created_at" json:"created_at"`
	UpdatedAt  time.Time                   `gorm:"column:updated_at" json:"updated_at"`
}

// TableName returns the table name for GORM
func (Answer) TableName() string {
	return "answers"
}

// AnswerQuestion carries the parent question's display context on answer DTOs
type AnswerQuestion struct {
	ID     string `json:"id"`
	Number int    `json:"number"`
	Title  string `json:"title"`
}

// AnswerWithQuestion is an answer joined with its parent question
type AnswerWithQuestion struct {
	Answer
	Question *AnswerQuestion `json:"question"`
}

// AnswerUser is the answering user's display fields
type AnswerUser struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	IsAuthor  bool   `json:"is_author"`
}

// AnswerAuthorProfile is the answering author's profile card
type AnswerAuthorProfile struct {
	ID       string `json:"id"`
	ImageURL string `json:"image_url,omitempty"`
}

// AnswerListItem is an answer with its user and author profile resolved
// for question pages
type AnswerListItem struct {
	Answer
	User          *AnswerUser          `json:"user"`
	AuthorProfile *AnswerAuthorProfile `json:"author_profile"`
}

// SubmitAnswerRequest is the body of the answer submission endpoint
type SubmitAnswerRequest struct {
	Title   string   `json:"title"`
	Summary string   `json:"summary" binding:"required"`
	Content string   `json:"content" binding:"required"`
	Links   []string `json:"links"`
}
