package domain

import "time"

// Question represents a curated question (questions table)
type Question struct {
	ID          string    `gorm:"column:id;primaryKey;size:36" json:"id"`
	Number      int       `gorm:"column:number;uniqueIndex" json:"number"`
	Title       string    `gorm:"column:title;size:500" json:"title"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	ImageURL    string    `gorm:"column:image_url;size:500" json:"image_url,omitempty"`
	VideoURL    string    `gorm:"column:video_url;size:500" json:"video_url,omitempty"`
	CreatedBy   string    `gorm:"column:created_by;size:36" json:"created_by"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName returns the table name for GORM
func (Question) TableName() string {
	return "questions"
}

// CreateQuestionRequest is the admin request to add a question
type CreateQuestionRequest struct {
	Number      int    `json:"number" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	ImageURL    string `json:"image_url"`
	VideoURL    string `json:"video_url"`
}
