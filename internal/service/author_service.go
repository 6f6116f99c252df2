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

// ProfileResponse is returned after a profile mutation: the profile plus the
// moderation job it raised.
type ProfileResponse struct {
	Profile *domain.AuthorProfile `json:"profile"`
	Job     *domain.Job           `json:"job"`
}

// AuthorService author profile business logic
type AuthorService interface {
	CreateProfile(caller domain.Principal, req *domain.CreateAuthorProfileRequest) (*ProfileResponse, error)
	UpdateProfile(caller domain.Principal, req *domain.UpdateAuthorProfileRequest) (*ProfileResponse, error)
	GetOwnProfile(caller domain.Principal) (*domain.AuthorProfile, error)
	ListAuthors(page, limit int) ([]domain.AuthorListItem, int64, error)
	GetAuthor(userID string) (*domain.AuthorDetail, error)
}

type authorService struct {
	profileRepo repository.AuthorProfileRepository
	userRepo    repository.UserRepository
	answerRepo  repository.AnswerRepository
	jobRepo     repository.JobRepository
	db          txRunner
	cache       cache.Service
}

// NewAuthorService creates a new AuthorService
func NewAuthorService(
	profileRepo repository.AuthorProfileRepository,
	userRepo repository.UserRepository,
	answerRepo repository.AnswerRepository,
	jobRepo repository.JobRepository,
	db txRunner,
	cacheService cache.Service,
) AuthorService {
	return &authorService{
		profileRepo: profileRepo,
		userRepo:    userRepo,
		answerRepo:  answerRepo,
		jobRepo:     jobRepo,
		db:          db,
		cache:       cacheService,
	}
}

// CreateProfile creates an author profile and raises the authorship request
// job in one transaction. The caller stays a regular user until that job is
// approved.
func (s *authorService) CreateProfile(caller domain.Principal, req *domain.CreateAuthorProfileRequest) (*ProfileResponse, error) {
	if _, err := s.profileRepo.FindByUserID(caller.UserID); err == nil {
		return nil, common.ErrProfileAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := common.ValidateLinks(req.Links); err != nil {
		return nil, err
	}

	now := time.Now()
	profile := &domain.AuthorProfile{
		ID:                 uuid.New().String(),
		UserID:             caller.UserID,
		PreNominals:        req.PreNominals,
		MiddleInitials:     req.MiddleInitials,
		CountryOfResidence: req.CountryOfResidence,
		Bio:                req.Bio,
		Links:              datatypes.JSONSlice[string](req.Links),
		ImageURL:           req.ImageURL,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	job := domain.NewJob(domain.JobTypeNewAuthor, caller.UserID, profile.ID)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.profileRepo.WithTx(tx).Create(profile); err != nil {
			return err
		}
		return s.jobRepo.WithTx(tx).Create(job)
	})
	if err != nil {
		return nil, err
	}

	s.invalidatePendingCount()

	return &ProfileResponse{Profile: profile, Job: job}, nil
}

// UpdateProfile applies the given profile changes and raises a review job in
// one transaction. The changes take effect immediately; the job gives
// moderators an audit trail to act on.
func (s *authorService) UpdateProfile(caller domain.Principal, req *domain.UpdateAuthorProfileRequest) (*ProfileResponse, error) {
	if req.Empty() {
		return nil, common.ErrInvalidInput
	}

	profile, err := s.profileRepo.FindByUserID(caller.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrProfileNotFound
		}
		return nil, err
	}

	if req.PreNominals != nil {
		profile.PreNominals = *req.PreNominals
	}
	if req.MiddleInitials != nil {
		profile.MiddleInitials = *req.MiddleInitials
	}
	if req.CountryOfResidence != nil {
		profile.CountryOfResidence = *req.CountryOfResidence
	}
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.Links != nil {
		if err := common.ValidateLinks(*req.Links); err != nil {
			return nil, err
		}
		profile.Links = datatypes.JSONSlice[string](*req.Links)
	}
	if req.ImageURL != nil {
		profile.ImageURL = *req.ImageURL
	}
	profile.UpdatedAt = time.Now()

	job := domain.NewJob(domain.JobTypeProfileUpdate, caller.UserID, profile.ID)

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.profileRepo.WithTx(tx).Update(profile); err != nil {
			return err
		}
		return s.jobRepo.WithTx(tx).Create(job)
	})
	if err != nil {
		return nil, err
	}

	s.invalidatePendingCount()

	return &ProfileResponse{Profile: profile, Job: job}, nil
}

// GetOwnProfile returns the caller's own profile
func (s *authorService) GetOwnProfile(caller domain.Principal) (*domain.AuthorProfile, error) {
	profile, err := s.profileRepo.FindByUserID(caller.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

// ListAuthors returns the paginated public author directory
func (s *authorService) ListAuthors(page, limit int) ([]domain.AuthorListItem, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.profileRepo.ListAuthors(page, limit)
}

// GetAuthor returns an author's public page: profile, display name and
// approved answers. Users without approved authorship are not exposed.
func (s *authorService) GetAuthor(userID string) (*domain.AuthorDetail, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	if !user.IsAuthor {
		return nil, common.ErrNotFound
	}

	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrProfileNotFound
		}
		return nil, err
	}

	answers, err := s.answerRepo.ListByUser(userID, []domain.JobStatus{domain.JobStatusApproved})
	if err != nil {
		return nil, err
	}

	return &domain.AuthorDetail{
		AuthorListItem: domain.AuthorListItem{
			UserID:             user.ID,
			FirstName:          user.FirstName,
			LastName:           user.LastName,
			PreNominals:        profile.PreNominals,
			MiddleInitials:     profile.MiddleInitials,
			CountryOfResidence: profile.CountryOfResidence,
			Bio:                profile.Bio,
			ImageURL:           profile.ImageURL,
		},
		Answers: answers,
	}, nil
}

func (s *authorService) invalidatePendingCount() {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidatePendingJobCount(context.Background()); err != nil {
		logger.Warn("failed to invalidate pending job count: %v", err)
	}
}
