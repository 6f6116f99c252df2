package service

import (
	"context"
	"testing"

	"github.com/humanity/backend/internal/common"
	"github.com/humanity/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func TestQuestionList_OrderedByNumber(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	svc := NewQuestionService(questionRepo, nil)

	expected := []domain.Question{
		{ID: "q-1", Number: 1, Title: "First"},
		{ID: "q-2", Number: 2, Title: "Second"},
	}
	questionRepo.On("List").Return(expected, nil)

	questions, err := svc.List(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, expected, questions)
}

func TestQuestionGet_NotFound(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	svc := NewQuestionService(questionRepo, nil)

	questionRepo.On("GetByID", "missing").Return(nil, gorm.ErrRecordNotFound)

	question, err := svc.Get("missing")

	assert.Nil(t, question)
	assert.ErrorIs(t, err, common.ErrQuestionNotFound)
}

func TestQuestionCreate_AdminOnly(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	svc := NewQuestionService(questionRepo, nil)

	req := &domain.CreateQuestionRequest{Number: 1, Title: "T", Description: "D"}
	question, err := svc.Create(testUser, req)

	assert.Nil(t, question)
	assert.ErrorIs(t, err, common.ErrForbidden)
	questionRepo.AssertNotCalled(t, "Create")
}

func TestQuestionCreate_DuplicateNumber(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	svc := NewQuestionService(questionRepo, nil)

	questionRepo.On("ExistsByNumber", 7).Return(true, nil)

	req := &domain.CreateQuestionRequest{Number: 7, Title: "T", Description: "D"}
	question, err := svc.Create(testAdmin, req)

	assert.Nil(t, question)
	assert.ErrorIs(t, err, common.ErrQuestionNumberUsed)
}

func TestQuestionCreate_Success(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	svc := NewQuestionService(questionRepo, nil)

	questionRepo.On("ExistsByNumber", 7).Return(false, nil)
	questionRepo.On("Create", mock.AnythingOfType("*domain.Question")).Return(nil)

	req := &domain.CreateQuestionRequest{Number: 7, Title: "T", Description: "D"}
	question, err := svc.Create(testAdmin, req)

	assert.NoError(t, err)
	assert.Equal(t, 7, question.Number)
	assert.Equal(t, testAdmin.UserID, question.CreatedBy)
	assert.NotEmpty(t, question.ID)
}
