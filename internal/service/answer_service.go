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
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SubmitAnswerResponse is returned after an answer submission: the pending
// answer plus the moderation job that gates it.
type SubmitAnswerResponse struct {
	Answer *domain.Answer `json:"answer"`
	Job    *domain.Job    `json:"job"`
}

// AnswerService answer business logic
type AnswerService interface {
	Submit(caller domain.Principal, questionID string, req *domain.SubmitAnswerRequest) (*SubmitAnswerResponse, error)
	ListForQuestion(ctx context.Context, caller domain.Principal, questionID string, includeAll bool) ([]domain.AnswerListItem, error)
	Get(caller domain.Principal, id string) (*domain.AnswerWithQuestion, error)
	ListByUser(caller domain.Principal, userID string) ([]domain.AnswerWithQuestion, error)
}

type answerService struct {
	answerRepo   repository.AnswerRepository
	questionRepo repository.QuestionRepository
	jobRepo      repository.JobRepository
	db           txRunner
	cache        cache.Service
}

// NewAnswerService creates a new AnswerService
func NewAnswerService(
	answerRepo repository.AnswerRepository,
	questionRepo repository.QuestionRepository,
	jobRepo repository.JobRepository,
	db txRunner,
	cacheService cache.Service,
) AnswerService {
	return &answerService{
		answerRepo:   answerRepo,
		questionRepo: questionRepo,
		jobRepo:      jobRepo,
		db:           db,
		cache:        cacheService,
	}
}

// Submit creates a pending answer and the moderation job gating it, in one
// transaction. Only approved authors can submit.
func (s *answerService) Submit(caller domain.Principal, questionID string, req *domain.SubmitAnswerRequest) (*SubmitAnswerResponse, error) {
	if !caller.IsAuthor {
		return nil, common.ErrNotAuthor
	}

	if _, err := s.questionRepo.GetByID(questionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrQuestionNotFound
		}
		return nil, err
	}

	if err := common.ValidateLinks(req.Links); err != nil {
		return nil, err
	}

	now := time.Now()
	answer := &domain.Answer{
		ID:         uuid.New().String(),
		QuestionID: questionID,
		UserID:     caller.UserID,
		Title:      req.Title,
		Summary:    req.Summary,
		Content:    req.Content,
		Links:      datatypes.JSONSlice[string](req.Links),
		Status:     domain.JobStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	job := domain.NewJob(domain.JobTypeAnswerSubmission, caller.UserID, answer.ID)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.answerRepo.WithTx(tx).Create(answer); err != nil {
			return err
		}
		return s.jobRepo.WithTx(tx).Create(job)
	})
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.InvalidateAnswers(context.Background(), questionID); err != nil {
			logger.Warn("failed to invalidate answer cache for question %s: %v", questionID, err)
		}
		if err := s.cache.InvalidatePendingJobCount(context.Background()); err != nil {
			logger.Warn("failed to invalidate pending job count: %v", err)
		}
	}

	return &SubmitAnswerResponse{Answer: answer, Job: job}, nil
}

// ListForQuestion returns a question's answers, most liked first. The public
// view shows approved answers only; moderators may request all statuses with
// includeAll.
func (s *answerService) ListForQuestion(ctx context.Context, caller domain.Principal, questionID string, includeAll bool) ([]domain.AnswerListItem, error) {
	if _, err := s.questionRepo.GetByID(questionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrQuestionNotFound
		}
		return nil, err
	}

	if includeAll {
		if !caller.CanModerate() {
			return nil, common.ErrForbidden
		}
		return s.answerRepo.ListByQuestion(questionID, nil)
	}

	if s.cache != nil && s.cache.IsAvailable() {
		var cached []domain.AnswerListItem
		if err := s.cache.GetAnswers(ctx, questionID, &cached); err == nil {
			return cached, nil
		}
	}

	items, err := s.answerRepo.ListByQuestion(questionID, []domain.JobStatus{domain.JobStatusApproved})
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetAnswers(ctx, questionID, items); err != nil {
			logger.Warn("failed to cache answers for question %s: %v", questionID, err)
		}
	}

	return items, nil
}

// Get returns a single answer with its question. Pending and rejected
// answers are visible only to their owner and to moderators.
func (s *answerService) Get(caller domain.Principal, id string) (*domain.AnswerWithQuestion, error) {
	answer, err := s.answerRepo.GetWithQuestion(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrAnswerNotFound
		}
		return nil, err
	}

	if answer.Status != domain.JobStatusApproved {
		if caller.UserID != answer.UserID && !caller.CanModerate() {
			return nil, common.ErrAnswerNotFound
		}
	}

	return answer, nil
}

// ListByUser returns a user's answers with their questions. The owner and
// moderators see every status; everyone else sees approved answers only.
func (s *answerService) ListByUser(caller domain.Principal, userID string) ([]domain.AnswerWithQuestion, error) {
	if caller.UserID == userID || caller.CanModerate() {
		return s.answerRepo.ListByUser(userID, nil)
	}
	return s.answerRepo.ListByUser(userID, []domain.JobStatus{domain.JobStatusApproved})
}
