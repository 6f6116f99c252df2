package service

import (
	"context"
	"testing"
	"time"

	"github.com/humanity/backend/internal/common"
	"github.com/humanity/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newTestJobService(
	jobRepo *MockJobRepository,
	userRepo *MockUserRepository,
	answerRepo *MockAnswerRepository,
	profileRepo *MockAuthorProfileRepository,
) JobService {
	return NewJobService(jobRepo, userRepo, answerRepo, profileRepo, &fakeTxRunner{}, nil)
}

func pendingJob(jobType domain.JobType, relatedID string) *domain.Job {
	return &domain.Job{
		ID:        "job-1",
		AdminNo:   domain.NewAdminNo(jobType, time.Now()),
		Type:      jobType,
		Status:    domain.JobStatusPending,
		UserID:    "author-1",
		RelatedID: relatedID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func TestSetStatus_ForbiddenForRegularUser(t *testing.T) {
	jobRepo := new(MockJobRepository)
	userRepo := new(MockUserRepository)
	answerRepo := new(MockAnswerRepository)
	profileRepo := new(MockAuthorProfileRepository)
	svc := newTestJobService(jobRepo, userRepo, answerRepo, profileRepo)

	job, err := svc.SetStatus(testUser, "job-1", "approved")

	assert.Nil(t, job)
	assert.ErrorIs(t, err, common.ErrForbidden)
	jobRepo.AssertNotCalled(t, "GetByID")
	jobRepo.AssertNotCalled(t, "UpdateStatus")
}

func TestSetStatus_InvalidTargetStatus(t *testing.T) {
	jobRepo := new(MockJobRepository)
	userRepo := new(MockUserRepository)
	answerRepo := new(MockAnswerRepository)
	profileRepo := new(MockAuthorProfileRepository)
	svc := newTestJobService(jobRepo, userRepo, answerRepo, profileRepo)

	tests := []string{"", "pending", "done", "APPROVED"}
	for _, status := range tests {
		t.Run("status "+status, func(t *testing.T) {
			job, err := svc.SetStatus(testAdmin, "job-1", status)
			assert.Nil(t, job)
			assert.ErrorIs(t, err, common.ErrInvalidJobStatus)
		})
	}
	jobRepo.AssertNotCalled(t, "UpdateStatus")
}

func TestSetStatus_JobNotFound(t *testing.T) {
	jobRepo := new(MockJobRepository)
	userRepo := new(MockUserRepository)
	answerRepo := new(MockAnswerRepository)
	profileRepo := new(MockAuthorProfileRepository)
	svc := newTestJobService(jobRepo, userRepo, answerRepo, profileRepo)

	jobRepo.On("GetByID", "missing").Return(nil, gorm.ErrRecordNotFound)

	job, err := svc.SetStatus(testAdmin, "missing", "approved")

	assert.Nil(t, job)
	assert.ErrorIs(t, err, common.ErrJobNotFound)
}

func TestSetStatus_AlreadyProcessed(t *testing.T) {
	jobRepo := new(MockJobRepository)
	userRepo := new(MockUserRepository)
	answerRepo := new(MockAnswerRepository)
	profileRepo := new(MockAuthorProfileRepository)
	svc := newTestJobService(jobRepo, userRepo, answerRepo, profileRepo)

	sealed := pendingJob(domain.JobTypeNewAuthor, "profile-1")
	sealed.Status = domain.JobStatusApproved
	jobRepo.On("GetByID", "job-1").Return(sealed, nil)

	job, err := svc.SetStatus(testAdmin, "job-1", "rejected")

	assert.Nil(t, job)
	assert.ErrorIs(t, err, common.ErrJobAlreadyProcessed)
	jobRepo.AssertNotCalled(t, "UpdateStatus")
	userRepo.AssertNotCalled(t, "SetIsAuthor")
}

func TestSetStatus_NewAuthorApprove_GrantsAuthorship(t *testing.T) {
	jobRepo := new(MockJobRepository)
	userRepo := new(MockUserRepository)
	answerRepo := new(MockAnswerRepository)
	profileRepo := new(MockAuthorProfileRepository)
	svc := newTestJobService(jobRepo, userRepo, answerRepo, profileRepo)

	jobRepo.On("GetByID", "job-1").Return(pendingJob(domain.JobTypeNewAuthor, "profile-1"), nil)
	jobRepo.On("UpdateStatus", "job-1", domain.JobStatusApproved).Return(nil)
	userRepo.On("SetIsAuthor", "author-1", true).Return(nil)

	job, err := svc.SetStatus(testAdmin, "job-1", "approved")

	assert.NoError(t, err)
	assert.Equal(t, domain.JobStatusApproved, job.Status)
	userRepo.AssertExpectations(t)
	jobRepo.AssertExpectations(t)
}

func TestSetStatus_NewAuthorReject_NoSideEffect(t *testing.T) {
	jobRepo := new(MockJobRepository)
	userRepo := new(MockUserRepository)
	answerRepo := new(MockAnswerRepository)
	profileRepo := new(MockAuthorProfileRepository)
	svc := newTestJobService(jobRepo, userRepo, answerRepo, profileRepo)

	jobRepo.On("GetByID", "job-1").Return(pendingJob(domain.JobTypeNewAuthor, "profile-1"), nil)
	jobRepo.On("UpdateStatus", "job-1", domain.JobStatusRejected).Return(nil)

	job, err := svc.SetStatus(testAdmin, "job-1", "rejected")

	assert.NoError(t, err)
	assert.Equal(t, domain.JobStatusRejected, job.Status)
	userRepo.AssertNotCalled(t, "SetIsAuthor")
}

func TestSetStatus_AnswerSubmission_UpdatesAnswerStatus(t *testing.T) {
	for _, target := range []domain.JobStatus{domain.JobStatusApproved, domain.JobStatusRejected} {
		t.Run(string(target), func(t *testing.T) {
			jobRepo := new(MockJobRepository)
			userRepo := new(MockUserRepository)
			answerRepo := new(MockAnswerRepository)
			profileRepo := new(MockAuthorProfileRepository)
			svc := newTestJobService(jobRepo, userRepo, answerRepo, profileRepo)

			jobRepo.On("GetByID", "job-1").Return(pendingJob(domain.JobTypeAnswerSubmission, "answer-1"), nil)
			jobRepo.On("UpdateStatus", "job-1", target).Return(nil)
			answerRepo.On("UpdateStatus", "answer-1", target).Return(nil)

			job, err := svc.SetStatus(testAdmin, "job-1", string(target))

			assert.NoError(t, err)
			assert.Equal(t, target, job.Status)
			answerRepo.AssertExpectations(t)
			userRepo.AssertNotCalled(t, "SetIsAuthor")
		})
	}
}

func TestSetStatus_AnswerSubmission_MissingAnswerStillTransitions(t *testing.T) {
	jobRepo := new(MockJobRepository)
	userRepo := new(MockUserRepository)
	answerRepo := new(MockAnswerRepository)
	profileRepo := new(MockAuthorProfileRepository)
	svc := newTestJobService(jobRepo, userRepo, answerRepo, profileRepo)

	jobRepo.On("GetByID", "job-1").Return(pendingJob(domain.JobTypeAnswerSubmission, "answer-1"), nil)
	jobRepo.On("UpdateStatus", "job-1", domain.JobStatusRejected).Return(nil)
	answerRepo.On("UpdateStatus", "answer-1", domain.JobStatusRejected).Return(gorm.ErrRecordNotFound)

	job, err := svc.SetStatus(testAdmin, "job-1", "rejected")

	assert.NoError(t, err)
	assert.Equal(t, domain.JobStatusRejected, job.Status)
}

func TestSetStatus_ProfileUpdate_NoSideEffect(t *testing.T) {
	jobRepo := new(MockJobRepository)
	userRepo := new(MockUserRepository)
	answerRepo := new(MockAnswerRepository)
	profileRepo := new(MockAuthorProfileRepository)
	svc := newTestJobService(jobRepo, userRepo, answerRepo, profileRepo)

	jobRepo.On("GetByID", "job-1").Return(pendingJob(domain.JobTypeProfileUpdate, "profile-1"), nil)
	jobRepo.On("UpdateStatus", "job-1", domain.JobStatusApproved).Return(nil)

	job, err := svc.SetStatus(testAdmin, "job-1", "approved")

	assert.NoError(t, err)
	assert.Equal(t, domain.JobStatusApproved, job.Status)
	userRepo.AssertNotCalled(t, "SetIsAuthor")
	answerRepo.AssertNotCalled(t, "UpdateStatus")
}

func TestSetStatus_TransactionFailure_SurfacesError(t *testing.T) {
	jobRepo := new(MockJobRepository)
	userRepo := new(MockUserRepository)
	answerRepo := new(MockAnswerRepository)
	profileRepo := new(MockAuthorProfileRepository)
	svc := NewJobService(jobRepo, userRepo, answerRepo, profileRepo, &fakeTxRunner{err: gorm.ErrInvalidTransaction}, nil)

	jobRepo.On("GetByID", "job-1").Return(pendingJob(domain.JobTypeNewAuthor, "profile-1"), nil)

	job, err := svc.SetStatus(testAdmin, "job-1", "approved")

	assert.Nil(t, job)
	assert.ErrorIs(t, err, gorm.ErrInvalidTransaction)
}

func TestList_ForbiddenForRegularUser(t *testing.T) {
	jobRepo := new(MockJobRepository)
	svc := newTestJobService(jobRepo, new(MockUserRepository), new(MockAnswerRepository), new(MockAuthorProfileRepository))

	items, total, err := svc.List(testUser, "", 1, 20)

	assert.Nil(t, items)
	assert.Zero(t, total)
	assert.ErrorIs(t, err, common.ErrForbidden)
	jobRepo.AssertNotCalled(t, "List")
}

func TestList_InvalidStatusFilter(t *testing.T) {
	jobRepo := new(MockJobRepository)
	svc := newTestJobService(jobRepo, new(MockUserRepository), new(MockAnswerRepository), new(MockAuthorProfileRepository))

	_, _, err := svc.List(testAdmin, "whatever", 1, 20)

	assert.ErrorIs(t, err, common.ErrInvalidJobStatus)
	jobRepo.AssertNotCalled(t, "List")
}

func TestList_StatusFilterAndPagingDefaults(t *testing.T) {
	jobRepo := new(MockJobRepository)
	svc := newTestJobService(jobRepo, new(MockUserRepository), new(MockAnswerRepository), new(MockAuthorProfileRepository))

	expected := []domain.JobListItem{{Job: *pendingJob(domain.JobTypeNewAuthor, "profile-1")}}
	jobRepo.On("List", domain.JobStatusPending, 1, 20).Return(expected, int64(1), nil)

	items, total, err := svc.List(testSuperAdmin, "pending", 0, 0)

	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, items, 1)
	jobRepo.AssertExpectations(t)
}

func TestGet_AnswerSubmission_ResolvesAnswer(t *testing.T) {
	jobRepo := new(MockJobRepository)
	answerRepo := new(MockAnswerRepository)
	svc := newTestJobService(jobRepo, new(MockUserRepository), answerRepo, new(MockAuthorProfileRepository))

	job := pendingJob(domain.JobTypeAnswerSubmission, "answer-1")
	item := &domain.JobListItem{Job: *job, User: &domain.JobUser{ID: "author-1", Email: "author@example.com"}}
	jobRepo.On("GetByIDWithUser", "job-1").Return(item, nil)

	answer := &domain.AnswerWithQuestion{
		Answer:   domain.Answer{ID: "answer-1", QuestionID: "q-1", UserID: "author-1"},
		Question: &domain.AnswerQuestion{ID: "q-1", Number: 3, Title: "What is consciousness?"},
	}
	answerRepo.On("GetWithQuestion", "answer-1").Return(answer, nil)

	detail, err := svc.Get(testAdmin, "job-1")

	assert.NoError(t, err)
	assert.Equal(t, "job-1", detail.ID)
	assert.NotNil(t, detail.User)
	assert.Equal(t, answer, detail.RelatedData)
}

func TestGet_ProfileJob_FallsBackToOwnerLookup(t *testing.T) {
	jobRepo := new(MockJobRepository)
	profileRepo := new(MockAuthorProfileRepository)
	svc := newTestJobService(jobRepo, new(MockUserRepository), new(MockAnswerRepository), profileRepo)

	job := pendingJob(domain.JobTypeProfileUpdate, "stale-id")
	jobRepo.On("GetByIDWithUser", "job-1").Return(&domain.JobListItem{Job: *job}, nil)

	profileRepo.On("FindByID", "stale-id").Return(nil, gorm.ErrRecordNotFound)
	profile := &domain.AuthorProfile{ID: "profile-1", UserID: "author-1"}
	profileRepo.On("FindByUserID", "author-1").Return(profile, nil)

	detail, err := svc.Get(testAdmin, "job-1")

	assert.NoError(t, err)
	assert.Equal(t, profile, detail.RelatedData)
}

func TestGet_RelatedEntityDeleted_NilRelatedData(t *testing.T) {
	jobRepo := new(MockJobRepository)
	profileRepo := new(MockAuthorProfileRepository)
	svc := newTestJobService(jobRepo, new(MockUserRepository), new(MockAnswerRepository), profileRepo)

	job := pendingJob(domain.JobTypeNewAuthor, "profile-1")
	jobRepo.On("GetByIDWithUser", "job-1").Return(&domain.JobListItem{Job: *job}, nil)
	profileRepo.On("FindByID", "profile-1").Return(nil, gorm.ErrRecordNotFound)
	profileRepo.On("FindByUserID", "author-1").Return(nil, gorm.ErrRecordNotFound)

	detail, err := svc.Get(testAdmin, "job-1")

	assert.NoError(t, err)
	assert.Nil(t, detail.RelatedData)
	assert.Nil(t, detail.User)
}

func TestGet_NotFound(t *testing.T) {
	jobRepo := new(MockJobRepository)
	svc := newTestJobService(jobRepo, new(MockUserRepository), new(MockAnswerRepository), new(MockAuthorProfileRepository))

	jobRepo.On("GetByIDWithUser", "missing").Return(nil, gorm.ErrRecordNotFound)

	detail, err := svc.Get(testAdmin, "missing")

	assert.Nil(t, detail)
	assert.ErrorIs(t, err, common.ErrJobNotFound)
}

func TestPendingCount(t *testing.T) {
	jobRepo := new(MockJobRepository)
	svc := newTestJobService(jobRepo, new(MockUserRepository), new(MockAnswerRepository), new(MockAuthorProfileRepository))

	jobRepo.On("CountByStatus", domain.JobStatusPending).Return(int64(4), nil)

	count, err := svc.PendingCount(context.Background(), testAdmin)

	assert.NoError(t, err)
	assert.Equal(t, int64(4), count)

	_, err = svc.PendingCount(context.Background(), testUser)
	assert.ErrorIs(t, err, common.ErrForbidden)
}
