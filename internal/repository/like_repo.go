package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/humanity/backend/internal/domain"
	"gorm.io/gorm"
)

// LikeRepository handles answer like operations
type LikeRepository interface {
	Has(userID, answerID string) (bool, error)
	Add(userID, answerID string) error
	Remove(userID, answerID string) error
	CountForAnswer(answerID string) (int64, error)
}

type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository creates a new LikeRepository
func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

// Has checks if the user has already liked the answer
func (r *likeRepository) Has(userID, answerID string) (bool, error) {
	var count int64
	err := r.db.Model(&domain.Like{}).
		Where("user_id = ? AND answer_id = ?", userID, answerID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Add records a like and increments the answer counter in a transaction
func (r *likeRepository) Add(userID, answerID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		like := &domain.Like{
			ID:        uuid.New().String(),
			UserID:    userID,
			AnswerID:  answerID,
			CreatedAt: time.Now(),
		}
		if err := tx.Create(like).Error; err != nil {
			return err
		}

		return tx.Model(&domain.Answer{}).
			Where("id = ?", answerID).
			UpdateColumn("likes", gorm.Expr("likes + 1")).Error
	})
}

// Remove deletes a like record and decrements the answer counter in a transaction
func (r *likeRepository) Remove(userID, answerID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("user_id = ? AND answer_id = ?", userID, answerID).
			Delete(&domain.Like{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}

		return tx.Model(&domain.Answer{}).
			Where("id = ?", answerID).
			UpdateColumn("likes", gorm.Expr("GREATEST(likes - 1, 0)")).Error
	})
}

func (r *likeRepository) CountForAnswer(answerID string) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Like{}).
		Where("answer_id = ?", answerID).
		Count(&count).Error
	return count, err
}
