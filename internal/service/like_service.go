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

// LikeService answer like business logic
type LikeService interface {
	Like(caller domain.Principal, answerID string) (*domain.LikeResponse, error)
	Unlike(caller domain.Principal, answerID string) (*domain.LikeResponse, error)
	Status(caller domain.Principal, answerID string) (*domain.LikeResponse, error)
}

type likeService struct {
	likeRepo   repository.LikeRepository
	answerRepo repository.AnswerRepository
	cache      cache.Service
}

// NewLikeService creates a new LikeService
func NewLikeService(likeRepo repository.LikeRepository, answerRepo repository.AnswerRepository, cacheService cache.Service) LikeService {
	return &likeService{
		likeRepo:   likeRepo,
		answerRepo: answerRepo,
		cache:      cacheService,
	}
}

// Like records the caller's like on an approved answer. One like per user
// per answer.
func (s *likeService) Like(caller domain.Principal, answerID string) (*domain.LikeResponse, error) {
	answer, err := s.getApprovedAnswer(answerID)
	if err != nil {
		return nil, err
	}

	liked, err := s.likeRepo.Has(caller.UserID, answerID)
	if err != nil {
		return nil, err
	}
	if liked {
		return nil, common.ErrAlreadyLiked
	}

	if err := s.likeRepo.Add(caller.UserID, answerID); err != nil {
		return nil, err
	}

	s.invalidateAnswers(answer.QuestionID)

	return &domain.LikeResponse{Likes: answer.Likes + 1, UserLiked: true}, nil
}

// Unlike removes the caller's like from an answer
func (s *likeService) Unlike(caller domain.Principal, answerID string) (*domain.LikeResponse, error) {
	answer, err := s.getApprovedAnswer(answerID)
	if err != nil {
		return nil, err
	}

	liked, err := s.likeRepo.Has(caller.UserID, answerID)
	if err != nil {
		return nil, err
	}
	if !liked {
		return nil, common.ErrNotLiked
	}

	if err := s.likeRepo.Remove(caller.UserID, answerID); err != nil {
		return nil, err
	}

	s.invalidateAnswers(answer.QuestionID)

	likes := answer.Likes - 1
	if likes < 0 {
		likes = 0
	}
	return &domain.LikeResponse{Likes: likes, UserLiked: false}, nil
}

// Status reports the answer's like count and whether the caller liked it
func (s *likeService) Status(caller domain.Principal, answerID string) (*domain.LikeResponse, error) {
	answer, err := s.getApprovedAnswer(answerID)
	if err != nil {
		return nil, err
	}

	liked := false
	if caller.UserID != "" {
		liked, err = s.likeRepo.Has(caller.UserID, answerID)
		if err != nil {
			return nil, err
		}
	}

	return &domain.LikeResponse{Likes: answer.Likes, UserLiked: liked}, nil
}

func (s *likeService) getApprovedAnswer(answerID string) (*domain.Answer, error) {
	answer, err := s.answerRepo.GetByID(answerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrAnswerNotFound
		}
		return nil, err
	}
	if answer.Status != domain.JobStatusApproved {
		return nil, common.ErrAnswerNotFound
	}
	return answer, nil
}

func (s *likeService) invalidateAnswers(questionID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateAnswers(context.Background(), questionID); err != nil {
		logger.Warn("failed to invalidate answer cache for question %s: %v", questionID, err)
	}
}
