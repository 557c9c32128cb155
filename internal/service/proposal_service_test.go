package service

import (
	"testing"

	"github.com/promptdeck/promptdeck-backend/internal/common"
	"github.com/promptdeck/promptdeck-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// --- Mock ProposalRepository ---

type mockProposalRepo struct {
	mock.Mock
}

func (m *mockProposalRepo) FindByID(id int64, includeDeleted bool) (*domain.Proposal, error) {
	args := m.Called(id, includeDeleted)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Proposal), args.Error(1)
}

func (m *mockProposalRepo) Search(term string, status domain.ProposalStatus, page, limit int) ([]*domain.Proposal, int64, error) {
	args := m.Called(term, status, page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*domain.Proposal), args.Get(1).(int64), args.Error(2)
}

func (m *mockProposalRepo) Create(p *domain.Proposal) error {
	return m.Called(p).Error(0)
}

func (m *mockProposalRepo) Save(p *domain.Proposal) error {
	return m.Called(p).Error(0)
}

func (m *mockProposalRepo) SoftDelete(id int64) error {
	return m.Called(id).Error(0)
}

func (m *mockProposalRepo) HardDelete(id int64) error {
	return m.Called(id).Error(0)
}

func (m *mockProposalRepo) Restore(id int64) error {
	return m.Called(id).Error(0)
}

// --- Tests ---

func TestCreateProposal_AnonymousAlwaysPending(t *testing.T) {
	repo := new(mockProposalRepo)
	svc := NewProposalService(repo)

	repo.On("Create", mock.AnythingOfType("*domain.Proposal")).Return(nil)

	got, err := svc.Create(&domain.CreateProposalRequest{
		Type:  "prompt",
		Title: "Add a prompt about testing",
		Email: "submitter@example.com",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.ProposalPending, got.Status)
	assert.Nil(t, got.ReviewerID)
}

func TestReviewProposal_RecordsReviewer(t *testing.T) {
	repo := new(mockProposalRepo)
	svc := NewProposalService(repo)

	existing := &domain.Proposal{ID: 1, Status: domain.ProposalPending}
	repo.On("FindByID", int64(1), false).Return(existing, nil)
	repo.On("Save", existing).Return(nil)

	got, err := svc.UpdateStatus(1, domain.ProposalApproved, moderator)

	assert.NoError(t, err)
	assert.Equal(t, domain.ProposalApproved, got.Status)
	if assert.NotNil(t, got.ReviewerID) {
		assert.Equal(t, moderator.ID, *got.ReviewerID)
	}
}

func TestReviewProposal_PlainUserForbidden(t *testing.T) {
	repo := new(mockProposalRepo)
	svc := NewProposalService(repo)

	_, err := svc.UpdateStatus(1, domain.ProposalApproved, trustedAuthor)

	assert.ErrorIs(t, err, common.ErrForbidden)
	repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}
