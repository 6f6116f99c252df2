package service

import (
	"database/sql"

	"github.com/humanity/backend/internal/domain"
	"github.com/humanity/backend/internal/repository"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// fakeTxRunner runs the transaction body directly with a nil tx, so WithTx
// on the mocks falls through to the mock itself.
type fakeTxRunner struct {
	err error
}

func (f *fakeTxRunner) Transaction(fc func(tx *gorm.DB) error, opts ...*sql.TxOptions) error {
	if f.err != nil {
		return f.err
	}
	return fc(nil)
}

// MockUserRepository is a mock implementation of repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) WithTx(tx *gorm.DB) repository.UserRepository {
	return m
}

func (m *MockUserRepository) Create(user *domain.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(id string) (*domain.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(email string) (*domain.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(email string) (bool, error) {
	args := m.Called(email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) List(page, limit int) ([]domain.User, int64, error) {
	args := m.Called(page, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) UpdateRole(id, role string) error {
	args := m.Called(id, role)
	return args.Error(0)
}

func (m *MockUserRepository) SetIsAuthor(id string, isAuthor bool) error {
	args := m.Called(id, isAuthor)
	return args.Error(0)
}

// MockQuestionRepository is a mock implementation of repository.QuestionRepository
type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) Create(question *domain.Question) error {
	args := m.Called(question)
	return args.Error(0)
}

func (m *MockQuestionRepository) GetByID(id string) (*domain.Question, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Question), args.Error(1)
}

func (m *MockQuestionRepository) List() ([]domain.Question, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Question), args.Error(1)
}

func (m *MockQuestionRepository) ExistsByNumber(number int) (bool, error) {
	args := m.Called(number)
	return args.Bool(0), args.Error(1)
}

// MockAnswerRepository is a mock implementation of repository.AnswerRepository
type MockAnswerRepository struct {
	mock.Mock
}

func (m *MockAnswerRepository) WithTx(tx *gorm.DB) repository.AnswerRepository {
	return m
}

func (m *MockAnswerRepository) Create(answer *domain.Answer) error {
	args := m.Called(answer)
	return args.Error(0)
}

func (m *MockAnswerRepository) GetByID(id string) (*domain.Answer, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Answer), args.Error(1)
}

func (m *MockAnswerRepository) GetWithQuestion(id string) (*domain.AnswerWithQuestion, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AnswerWithQuestion), args.Error(1)
}

func (m *MockAnswerRepository) ListByQuestion(questionID string, statuses []domain.JobStatus) ([]domain.AnswerListItem, error) {
	args := m.Called(questionID, statuses)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AnswerListItem), args.Error(1)
}

func (m *MockAnswerRepository) ListByUser(userID string, statuses []domain.JobStatus) ([]domain.AnswerWithQuestion, error) {
	args := m.Called(userID, statuses)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AnswerWithQuestion), args.Error(1)
}

func (m *MockAnswerRepository) UpdateStatus(id string, status domain.JobStatus) error {
	args := m.Called(id, status)
	return args.Error(0)
}

// MockAuthorProfileRepository is a mock implementation of repository.AuthorProfileRepository
type MockAuthorProfileRepository struct {
	mock.Mock
}

func (m *MockAuthorProfileRepository) WithTx(tx *gorm.DB) repository.AuthorProfileRepository {
	return m
}

func (m *MockAuthorProfileRepository) Create(profile *domain.AuthorProfile) error {
	args := m.Called(profile)
	return args.Error(0)
}

func (m *MockAuthorProfileRepository) FindByID(id string) (*domain.AuthorProfile, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuthorProfile), args.Error(1)
}

func (m *MockAuthorProfileRepository) FindByUserID(userID string) (*domain.AuthorProfile, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuthorProfile), args.Error(1)
}

func (m *MockAuthorProfileRepository) Update(profile *domain.AuthorProfile) error {
	args := m.Called(profile)
	return args.Error(0)
}

func (m *MockAuthorProfileRepository) ListAuthors(page, limit int) ([]domain.AuthorListItem, int64, error) {
	args := m.Called(page, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.AuthorListItem), args.Get(1).(int64), args.Error(2)
}

// MockJobRepository is a mock implementation of repository.JobRepository
type MockJobRepository struct {
	mock.Mock
}

func (m *MockJobRepository) WithTx(tx *gorm.DB) repository.JobRepository {
	return m
}

func (m *MockJobRepository) Create(job *domain.Job) error {
	args := m.Called(job)
	return args.Error(0)
}

func (m *MockJobRepository) GetByID(id string) (*domain.Job, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobRepository) GetByIDWithUser(id string) (*domain.JobListItem, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobListItem), args.Error(1)
}

func (m *MockJobRepository) List(status domain.JobStatus, page, limit int) ([]domain.JobListItem, int64, error) {
	args := m.Called(status, page, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.JobListItem), args.Get(1).(int64), args.Error(2)
}

func (m *MockJobRepository) UpdateStatus(id string, status domain.JobStatus) error {
	args := m.Called(id, status)
	return args.Error(0)
}

func (m *MockJobRepository) CountByStatus(status domain.JobStatus) (int64, error) {
	args := m.Called(status)
	return args.Get(0).(int64), args.Error(1)
}

// MockLikeRepository is a mock implementation of repository.LikeRepository
type MockLikeRepository struct {
	mock.Mock
}

func (m *MockLikeRepository) Has(userID, answerID string) (bool, error) {
	args := m.Called(userID, answerID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeRepository) Add(userID, answerID string) error {
	args := m.Called(userID, answerID)
	return args.Error(0)
}

func (m *MockLikeRepository) Remove(userID, answerID string) error {
	args := m.Called(userID, answerID)
	return args.Error(0)
}

func (m *MockLikeRepository) CountForAnswer(answerID string) (int64, error) {
	args := m.Called(answerID)
	return args.Get(0).(int64), args.Error(1)
}

// Common test principals
var (
	testUser = domain.Principal{
		UserID: "user-1",
		Email:  "user@example.com",
		Role:   domain.RoleUser,
	}
	testAuthor = domain.Principal{
		UserID:   "author-1",
		Email:    "author@example.com",
		Role:     domain.RoleUser,
		IsAuthor: true,
	}
	testAdmin = domain.Principal{
		UserID: "admin-1",
		Email:  "admin@example.com",
		Role:   domain.RoleAdmin,
	}
	testSuperAdmin = domain.Principal{
		UserID: "super-1",
		Email:  "super@example.com",
		Role:   domain.RoleSuperAdmin,
	}
)
