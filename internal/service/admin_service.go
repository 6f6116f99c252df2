package service

import (
	"context"
	"errors"

	"github.com/humanity/backend/internal/common"
	"github.com/humanity/backend/internal/domain"
	"github.com/humanity/backend/internal/repository"
	"github.com/humanity/backend/pkg/cache"
	"gorm.io/gorm"
)

// DashboardStats are the admin dashboard counters
type DashboardStats struct {
	PendingJobs  int64 `json:"pending_jobs"`
	ApprovedJobs int64 `json:"approved_jobs"`
	RejectedJobs int64 `json:"rejected_jobs"`
	TotalUsers   int64 `json:"total_users"`
}

// AdminService administrative user management
type AdminService interface {
	ListUsers(caller domain.Principal, page, limit int) ([]domain.UserResponse, int64, error)
	UpdateUserRole(caller domain.Principal, userID, role string) (*domain.UserResponse, error)
	Dashboard(ctx context.Context, caller domain.Principal) (*DashboardStats, error)
}

type adminService struct {
	userRepo repository.UserRepository
	jobRepo  repository.JobRepository
	cache    cache.Service
}

// NewAdminService creates a new AdminService
func NewAdminService(userRepo repository.UserRepository, jobRepo repository.JobRepository, cacheService cache.Service) AdminService {
	return &adminService{
		userRepo: userRepo,
		jobRepo:  jobRepo,
		cache:    cacheService,
	}
}

// ListUsers returns paginated registered users, newest first
func (s *adminService) ListUsers(caller domain.Principal, page, limit int) ([]domain.UserResponse, int64, error) {
	if !caller.CanModerate() {
		return nil, 0, common.ErrForbidden
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	users, total, err := s.userRepo.List(page, limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]domain.UserResponse, len(users))
	for i := range users {
		responses[i] = *users[i].ToResponse()
	}

	return responses, total, nil
}

// UpdateUserRole changes a user's role. Granting or revoking super_admin is
// reserved for super administrators.
func (s *adminService) UpdateUserRole(caller domain.Principal, userID, role string) (*domain.UserResponse, error) {
	if !caller.CanModerate() {
		return nil, common.ErrForbidden
	}
	if !domain.ValidRole(role) {
		return nil, common.ErrInvalidRole
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, err
	}

	if (role == domain.RoleSuperAdmin || user.Role == domain.RoleSuperAdmin) && caller.Role != domain.RoleSuperAdmin {
		return nil, common.ErrForbidden
	}

	if err := s.userRepo.UpdateRole(userID, role); err != nil {
		return nil, err
	}

	user.Role = role
	return user.ToResponse(), nil
}

// Dashboard returns moderation queue and user counters
func (s *adminService) Dashboard(ctx context.Context, caller domain.Principal) (*DashboardStats, error) {
	if !caller.CanModerate() {
		return nil, common.ErrForbidden
	}

	stats := &DashboardStats{}

	var err error
	if s.cache != nil && s.cache.IsAvailable() {
		if count, cacheErr := s.cache.GetPendingJobCount(ctx); cacheErr == nil {
			stats.PendingJobs = count
		} else {
			stats.PendingJobs, err = s.jobRepo.CountByStatus(domain.JobStatusPending)
		}
	} else {
		stats.PendingJobs, err = s.jobRepo.CountByStatus(domain.JobStatusPending)
	}
	if err != nil {
		return nil, err
	}

	if stats.ApprovedJobs, err = s.jobRepo.CountByStatus(domain.JobStatusApproved); err != nil {
		return nil, err
	}
	if stats.RejectedJobs, err = s.jobRepo.CountByStatus(domain.JobStatusRejected); err != nil {
		return nil, err
	}

	if _, total, err := s.userRepo.List(1, 1); err == nil {
		stats.TotalUsers = total
	} else {
		return nil, err
	}

	return stats, nil
}
