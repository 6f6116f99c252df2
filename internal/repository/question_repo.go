package repository

import (
	"github.com/humanity/backend/internal/domain"
	"gorm.io/gorm"
)

// QuestionRepository handles question data operations
type QuestionRepository interface {
	Create(question *domain.Question) error
	GetByID(id string) (*domain.Question, error)
	List() ([]domain.Question, error)
	ExistsByNumber(number int) (bool, error)
}

type questionRepository struct {
	db *gorm.DB
}

// NewQuestionRepository creates a new QuestionRepository
func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(question *domain.Question) error {
	return r.db.Create(question).Error
}

func (r *questionRepository) GetByID(id string) (*domain.Question, error) {
	var question domain.Question
	if err := r.db.Where("id = ?", id).First(&question).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

// List retrieves all questions ordered by their display number
func (r *questionRepository) List() ([]domain.Question, error) {
	var questions []domain.Question
	if err := r.db.Order("number ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) ExistsByNumber(number int) (bool, error) {
	var count int64
	err := r.db.Model(&domain.Question{}).Where("number = ?", number).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
