package service

import (
	"context"
	"errors"

	"github.com/humanity/backend/internal/common"
	"github.com/humanity/backend/internal/domain"
	"github.com/humanity/backend/internal/repository"
	"github.com/humanity/backend/pkg/cache"
	"github.com/humanity/backend/pkg/logger"
	"gorm.io/gorm"
)

// JobService moderation job business logic. Every method gates on the
// caller's role; regular users cannot see or touch the queue.
type JobService interface {
	List(caller domain.Principal, status string, page, limit int) ([]domain.JobListItem, int64, error)
	Get(caller domain.Principal, id string) (*domain.JobDetail, error)
	SetStatus(caller domain.Principal, id, status string) (*domain.Job, error)
	PendingCount(ctx context.Context, caller domain.Principal) (int64, error)
}

type jobService struct {
	jobRepo     repository.JobRepository
	userRepo    repository.UserRepository
	answerRepo  repository.AnswerRepository
	profileRepo repository.AuthorProfileRepository
	db          txRunner
	cache       cache.Service
}

// NewJobService creates a new JobService
func NewJobService(
	jobRepo repository.JobRepository,
	userRepo repository.UserRepository,
	answerRepo repository.AnswerRepository,
	profileRepo repository.AuthorProfileRepository,
	db txRunner,
	cacheService cache.Service,
) JobService {
	return &jobService{
		jobRepo:     jobRepo,
		userRepo:    userRepo,
		answerRepo:  answerRepo,
		profileRepo: profileRepo,
		db:          db,
		cache:       cacheService,
	}
}

// List returns paginated jobs with their owners, newest first, optionally
// filtered by status.
func (s *jobService) List(caller domain.Principal, status string, page, limit int) ([]domain.JobListItem, int64, error) {
	if !caller.CanModerate() {
		return nil, 0, common.ErrForbidden
	}

	filter := domain.JobStatus(status)
	if status != "" && !filter.Valid() {
		return nil, 0, common.ErrInvalidJobStatus
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	return s.jobRepo.List(filter, page, limit)
}

// Get returns a job with its owner and the entity it concerns. The related
// entity may be nil when it has since been deleted; the job itself stays
// visible either way.
func (s *jobService) Get(caller domain.Principal, id string) (*domain.JobDetail, error) {
	if !caller.CanModerate() {
		return nil, common.ErrForbidden
	}

	item, err := s.jobRepo.GetByIDWithUser(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrJobNotFound
		}
		return nil, err
	}

	detail := &domain.JobDetail{Job: item.Job, User: item.User}

	related, err := s.resolveRelated(&item.Job)
	if err != nil {
		return nil, err
	}
	detail.RelatedData = related

	return detail, nil
}

// resolveRelated loads the entity a job concerns. Profile jobs fall back to
// a lookup by owner when the stored related ID no longer resolves.
func (s *jobService) resolveRelated(job *domain.Job) (interface{}, error) {
	switch job.Type {
	case domain.JobTypeNewAuthor, domain.JobTypeProfileUpdate:
		if job.RelatedID != "" {
			profile, err := s.profileRepo.FindByID(job.RelatedID)
			if err == nil {
				return profile, nil
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
		}
		profile, err := s.profileRepo.FindByUserID(job.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil
			}
			return nil, err
		}
		return profile, nil

	case domain.JobTypeAnswerSubmission:
		if job.RelatedID == "" {
			return nil, nil
		}
		answer, err := s.answerRepo.GetWithQuestion(job.RelatedID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil
			}
			return nil, err
		}
		return answer, nil
	}

	return nil, nil
}

// SetStatus transitions a pending job to approved or rejected and applies
// the entity side effect in the same transaction. Terminal jobs are sealed.
func (s *jobService) SetStatus(caller domain.Principal, id, status string) (*domain.Job, error) {
	if !caller.CanModerate() {
		return nil, common.ErrForbidden
	}

	target := domain.JobStatus(status)
	if !target.Valid() || !target.Terminal() {
		return nil, common.ErrInvalidJobStatus
	}

	job, err := s.jobRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrJobNotFound
		}
		return nil, err
	}

	if job.Status.Terminal() {
		return nil, common.ErrJobAlreadyProcessed
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.jobRepo.WithTx(tx).UpdateStatus(job.ID, target); err != nil {
			return err
		}
		return s.applyEffect(tx, job, target)
	})
	if err != nil {
		return nil, err
	}

	job.Status = target

	if s.cache != nil {
		if err := s.cache.InvalidatePendingJobCount(context.Background()); err != nil {
			logger.Warn("failed to invalidate pending job count: %v", err)
		}
		if job.Type == domain.JobTypeAnswerSubmission && job.RelatedID != "" {
			if answer, err := s.answerRepo.GetByID(job.RelatedID); err == nil {
				if err := s.cache.InvalidateAnswers(context.Background(), answer.QuestionID); err != nil {
					logger.Warn("failed to invalidate answer cache for question %s: %v", answer.QuestionID, err)
				}
			}
		}
	}

	return job, nil
}

// applyEffect runs the entity change a moderation decision implies.
func (s *jobService) applyEffect(tx *gorm.DB, job *domain.Job, target domain.JobStatus) error {
	switch job.Type {
	case domain.JobTypeNewAuthor:
		if target == domain.JobStatusApproved {
			return s.userRepo.WithTx(tx).SetIsAuthor(job.UserID, true)
		}

	case domain.JobTypeAnswerSubmission:
		if job.RelatedID == "" {
			return nil
		}
		if err := s.answerRepo.WithTx(tx).UpdateStatus(job.RelatedID, target); err != nil {
			// the answer may have been deleted; the decision still stands
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

	case domain.JobTypeProfileUpdate:
		// profile changes applied at submission time, nothing to do
	}
	return nil
}

// PendingCount returns the number of pending jobs for the admin dashboard
func (s *jobService) PendingCount(ctx context.Context, caller domain.Principal) (int64, error) {
	if !caller.CanModerate() {
		return 0, common.ErrForbidden
	}

	if s.cache != nil && s.cache.IsAvailable() {
		if count, err := s.cache.GetPendingJobCount(ctx); err == nil {
			return count, nil
		}
	}

	count, err := s.jobRepo.CountByStatus(domain.JobStatusPending)
	if err != nil {
		return 0, err
	}

	if s.cache != nil {
		if err := s.cache.SetPendingJobCount(ctx, count); err != nil {
			logger.Warn("failed to cache pending job count: %v", err)
		}
	}

	return count, nil
}
