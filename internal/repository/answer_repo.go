package repository

import (
	"github.com/humanity/backend/internal/domain"
	"gorm.io/gorm"
)

// AnswerRepository handles answer data operations
type AnswerRepository interface {
	WithTx(tx *gorm.DB) AnswerRepository
	Create(answer *domain.Answer) error
	GetByID(id string) (*domain.Answer, error)
	GetWithQuestion(id string) (*domain.AnswerWithQuestion, error)
	ListByQuestion(questionID string, statuses []domain.JobStatus) ([]domain.AnswerListItem, error)
	ListByUser(userID string, statuses []domain.JobStatus) ([]domain.AnswerWithQuestion, error)
	UpdateStatus(id string, status domain.JobStatus) error
}

type answerRepository struct {
	db *gorm.DB
}

// NewAnswerRepository creates a new AnswerRepository
func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

// WithTx returns a copy bound to the given transaction
func (r *answerRepository) WithTx(tx *gorm.DB) AnswerRepository {
	if tx == nil {
		return r
	}
	return &answerRepository{db: tx}
}

func (r *answerRepository) Create(answer *domain.Answer) error {
	return r.db.Create(answer).Error
}

func (r *answerRepository) GetByID(id string) (*domain.Answer, error) {
	var answer domain.Answer
	if err := r.db.Where("id = ?", id).First(&answer).Error; err != nil {
		return nil, err
	}
	return &answer, nil
}

// GetWithQuestion retrieves an answer joined with its parent question
func (r *answerRepository) GetWithQuestion(id string) (*domain.AnswerWithQuestion, error) {
	answer, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	result := &domain.AnswerWithQuestion{Answer: *answer}

	var question domain.Question
	if err := r.db.Where("id = ?", answer.QuestionID).First(&question).Error; err == nil {
		result.Question = &domain.AnswerQuestion{
			ID:     question.ID,
			Number: question.Number,
			Title:  question.Title,
		}
	} else if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	return result, nil
}

// ListByQuestion retrieves a question's answers with their users and author
// profiles resolved, most liked first. An empty statuses slice means no
// status filter.
func (r *answerRepository) ListByQuestion(questionID string, statuses []domain.JobStatus) ([]domain.AnswerListItem, error) {
	var answers []domain.Answer
	query := r.db.Where("question_id = ?", questionID)
	if len(statuses) > 0 {
		query = query.Where("status IN ?", statuses)
	}
	if err := query.Order("likes DESC, created_at DESC").Find(&answers).Error; err != nil {
		return nil, err
	}

	items := make([]domain.AnswerListItem, len(answers))
	for i, answer := range answers {
		items[i] = domain.AnswerListItem{Answer: answer}

		var user domain.User
		if err := r.db.Where("id = ?", answer.UserID).First(&user).Error; err == nil {
			items[i].User = &domain.AnswerUser{
				ID:        user.ID,
				FirstName: user.FirstName,
				LastName:  user.LastName,
				IsAuthor:  user.IsAuthor,
			}
		} else if err != gorm.ErrRecordNotFound {
			return nil, err
		}

		var profile domain.AuthorProfile
		if err := r.db.Where("user_id = ?", answer.UserID).First(&profile).Error; err == nil {
			items[i].AuthorProfile = &domain.AnswerAuthorProfile{
				ID:       profile.ID,
				ImageURL: profile.ImageURL,
			}
		} else if err != gorm.ErrRecordNotFound {
			return nil, err
		}
	}

	return items, nil
}

// ListByUser retrieves a user's answers joined with their questions, newest
// first. An empty statuses slice means no status filter.
func (r *answerRepository) ListByUser(userID string, statuses []domain.JobStatus) ([]domain.AnswerWithQuestion, error) {
	var answers []domain.Answer
	query := r.db.Where("user_id = ?", userID)
	if len(statuses) > 0 {
		query = query.Where("status IN ?", statuses)
	}
	if err := query.Order("created_at DESC").Find(&answers).Error; err != nil {
		return nil, err
	}

	items := make([]domain.AnswerWithQuestion, len(answers))
	for i, answer := range answers {
		items[i] = domain.AnswerWithQuestion{Answer: answer}

		var question domain.Question
		if err := r.db.Where("id = ?", answer.QuestionID).First(&question).Error; err == nil {
			items[i].Question = &domain.AnswerQuestion{
				ID:     question.ID,
				Number: question.Number,
				Title:  question.Title,
			}
		} else if err != gorm.ErrRecordNotFound {
			return nil, err
		}
	}

	return items, nil
}

func (r *answerRepository) UpdateStatus(id string, status domain.JobStatus) error {
	result := r.db.Model(&domain.Answer{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
