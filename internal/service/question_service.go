package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/humanity/backend/internal/common"
	"github.com/humanity/backend/internal/domain"
	"github.com/humanity/backend/internal/repository"
	"github.com/humanity/backend/pkg/cache"
	"github.com/humanity/backend/pkg/logger"
	"gorm.io/gorm"
)

// QuestionService question business logic
type QuestionService interface {
	List(ctx context.Context) ([]domain.Question, error)
	Get(id string) (*domain.Question, error)
	Create(caller domain.Principal, req *domain.CreateQuestionRequest) (*domain.Question, error)
}

type questionService struct {
	questionRepo repository.QuestionRepository
	cache        cache.Service
}

// NewQuestionService creates a new QuestionService
func NewQuestionService(questionRepo repository.QuestionRepository, cacheService cache.Service) QuestionService {
	return &questionService{
		questionRepo: questionRepo,
		cache:        cacheService,
	}
}

// List returns all questions ordered by number
func (s *questionService) List(ctx context.Context) ([]domain.Question, error) {
	if s.cache != nil && s.cache.IsAvailable() {
		var cached []domain.Question
		if err := s.cache.GetQuestions(ctx, &cached); err == nil {
			return cached, nil
		}
	}

	questions, err := s.questionRepo.List()
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetQuestions(ctx, questions); err != nil {
			logger.Warn("failed to cache question list: %v", err)
		}
	}

	return questions, nil
}

// Get returns a single question by ID
func (s *questionService) Get(id string) (*domain.Question, error) {
	question, err := s.questionRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrQuestionNotFound
		}
		return nil, err
	}
	return question, nil
}

// Create adds a new question. Administrators only; question numbers are
// unique across the catalog.
func (s *questionService) Create(caller domain.Principal, req *domain.CreateQuestionRequest) (*domain.Question, error) {
	if !caller.CanModerate() {
		return nil, common.ErrForbidden
	}

	exists, err := s.questionRepo.ExistsByNumber(req.Number)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, common.ErrQuestionNumberUsed
	}

	now := time.Now()
	question := &domain.Question{
		ID:          uuid.New().String(),
		Number:      req.Number,
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		VideoURL:    req.VideoURL,
		CreatedBy:   caller.UserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.questionRepo.Create(question); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.InvalidateQuestions(context.Background()); err != nil {
			logger.Warn("failed to invalidate question cache: %v", err)
		}
	}

	return question, nil
}
