package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/daonlab/crm-calendar-backend/internal/common"
	"github.com/daonlab/crm-calendar-backend/internal/domain"
)

// MockCampaignRepository is a mock implementation of CampaignRepository
type MockCampaignRepository struct {
	mock.Mock
}

func (m *MockCampaignRepository) List(filter *domain.CampaignFilter) ([]domain.Campaign, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Campaign), args.Error(1)
}

func (m *MockCampaignRepository) GetByID(id string) (*domain.Campaign, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Campaign), args.Error(1)
}

func (m *MockCampaignRepository) Create(campaign *domain.Campaign) error {
	args := m.Called(campaign)
	return args.Error(0)
}

func (m *MockCampaignRepository) Update(campaign *domain.Campaign) error {
	args := m.Called(campaign)
	return args.Error(0)
}

func (m *MockCampaignRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func validServiceInput() *domain.CampaignInput {
	size := 5000
	return &domain.CampaignInput{
		Title:            "Spring Sale",
		SendAt:           "2026-03-02T10:00:00",
		BizUnit:          "인터넷, 모바일",
		Channel:          "SMS",
		AudienceSize:     &size,
		ExpectedReaction: domain.ReactionHigh,
	}
}

func TestListReturnsEmptySliceNotNil(t *testing.T) {
	repo := new(MockCampaignRepository)
	repo.On("List", mock.Anything).Return([]domain.Campaign(nil), nil)

	svc := NewCampaignService(repo, nil, false)
	campaigns, err := svc.List(&domain.CampaignFilter{})

	assert.NoError(t, err)
	assert.NotNil(t, campaigns)
	assert.Empty(t, campaigns)
}

func TestListStoreFailure(t *testing.T) {
	repo := new(MockCampaignRepository)
	repo.On("List", mock.Anything).Return(nil, errors.New("connection reset"))

	svc := NewCampaignService(repo, nil, false)
	_, err := svc.List(nil)

	assert.ErrorIs(t, err, common.ErrStoreFailure)
}

func TestGetNotFound(t *testing.T) {
	repo := new(MockCampaignRepository)
	repo.On("GetByID", "missing").Return(nil, nil)

	svc := NewCampaignService(repo, nil, false)
	_, err := svc.Get("missing")

	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestCreateStampsCallerIdentity(t *testing.T) {
	repo := new(MockCampaignRepository)
	repo.On("Create", mock.MatchedBy(func(c *domain.Campaign) bool {
		return c.CreatedBy == "user-1" && c.Title == "Spring Sale" && c.AudienceSize == 5000
	})).Return(nil)

	svc := NewCampaignService(repo, nil, false)
	campaign, err := svc.Create("user-1", validServiceInput())

	assert.NoError(t, err)
	assert.Equal(t, "user-1", campaign.CreatedBy)
	repo.AssertExpectations(t)
}

// Validation failure must be detected before any store access
func TestCreateInvalidInputNeverTouchesStore(t *testing.T) {
	repo := new(MockCampaignRepository)
	svc := NewCampaignService(repo, nil, false)

	input := validServiceInput()
	input.Title = ""
	_, err := svc.Create("user-1", input)

	assert.ErrorIs(t, err, common.ErrInvalidInput)
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestUpdateNotFound(t *testing.T) {
	repo := new(MockCampaignRepository)
	repo.On("GetByID", "missing").Return(nil, nil)

	svc := NewCampaignService(repo, nil, false)
	_, err := svc.Update("missing", validServiceInput())

	assert.ErrorIs(t, err, common.ErrNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestUpdateMutatesFields(t *testing.T) {
	existing := &domain.Campaign{
		ID:               "c-1",
		Title:            "old",
		SendAt:           "2026-01-01T09:00:00",
		BizUnit:          "렌탈",
		Channel:          "LMS",
		AudienceSize:     100,
		ExpectedReaction: domain.ReactionLow,
		CreatedBy:        "user-1",
	}

	repo := new(MockCampaignRepository)
	repo.On("GetByID", "c-1").Return(existing, nil)
	repo.On("Update", mock.MatchedBy(func(c *domain.Campaign) bool {
		return c.ID == "c-1" && c.Title == "Spring Sale" && c.CreatedBy == "user-1"
	})).Return(nil)

	svc := NewCampaignService(repo, nil, false)
	updated, err := svc.Update("c-1", validServiceInput())

	assert.NoError(t, err)
	assert.Equal(t, "Spring Sale", updated.Title)
	assert.Equal(t, "SMS", updated.Channel)
	repo.AssertExpectations(t)
}

func TestCopyCarriesFieldsReplacesSendAt(t *testing.T) {
	source := &domain.Campaign{
		ID:               "src-1",
		Title:            "연말 프로모션",
		SendAt:           "2026-01-29T18:00:00",
		BizUnit:          "인터넷, 모바일",
		Channel:          "SMS",
		AudienceSize:     5000,
		ExpectedReaction: domain.ReactionHigh,
		CSMemo:           "문의 폭주 주의",
		CreatedBy:        "original-author",
	}

	repo := new(MockCampaignRepository)
	repo.On("GetByID", "src-1").Return(source, nil)
	repo.On("Create", mock.MatchedBy(func(c *domain.Campaign) bool {
		return c.ID != "src-1" &&
			c.Title == source.Title && // no suffix by default
			c.SendAt == "2026-02-01T09:00:00" &&
			c.BizUnit == source.BizUnit &&
			c.Channel == source.Channel &&
			c.AudienceSize == source.AudienceSize &&
			c.ExpectedReaction == source.ExpectedReaction &&
			c.CSMemo == source.CSMemo &&
			c.CreatedBy == "user-2"
	})).Return(nil)

	svc := NewCampaignService(repo, nil, false)
	duplicate, err := svc.Copy("user-2", "src-1", &domain.CopyInput{SendAt: "2026-02-01T09:00:00"})

	assert.NoError(t, err)
	assert.Equal(t, "2026-02-01T09:00:00", duplicate.SendAt)
	repo.AssertExpectations(t)
}

func TestCopyTitleSuffixWhenConfigured(t *testing.T) {
	source := &domain.Campaign{ID: "src-1", Title: "연말 프로모션", SendAt: "2026-01-29T18:00:00"}

	repo := new(MockCampaignRepository)
	repo.On("GetByID", "src-1").Return(source, nil)
	repo.On("Create", mock.MatchedBy(func(c *domain.Campaign) bool {
		return c.Title == "연말 프로모션 (복사본)"
	})).Return(nil)

	svc := NewCampaignService(repo, nil, true)
	_, err := svc.Copy("user-2", "src-1", &domain.CopyInput{SendAt: "2026-02-01T09:00:00"})

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCopyMissingSendAt(t *testing.T) {
	repo := new(MockCampaignRepository)
	svc := NewCampaignService(repo, nil, false)

	_, err := svc.Copy("user-2", "src-1", &domain.CopyInput{})

	assert.ErrorIs(t, err, common.ErrInvalidInput)
	repo.AssertNotCalled(t, "GetByID", mock.Anything)
}

func TestCopySourceNotFound(t *testing.T) {
	repo := new(MockCampaignRepository)
	repo.On("GetByID", "missing").Return(nil, nil)

	svc := NewCampaignService(repo, nil, false)
	_, err := svc.Copy("user-2", "missing", &domain.CopyInput{SendAt: "2026-02-01T09:00:00"})

	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestDelete(t *testing.T) {
	repo := new(MockCampaignRepository)
	repo.On("GetByID", "c-1").Return(&domain.Campaign{ID: "c-1"}, nil)
	repo.On("Delete", "c-1").Return(nil)

	svc := NewCampaignService(repo, nil, false)
	assert.NoError(t, svc.Delete("c-1"))
	repo.AssertExpectations(t)
}

func TestDeleteNotFound(t *testing.T) {
	repo := new(MockCampaignRepository)
	repo.On("GetByID", "missing").Return(nil, nil)

	svc := NewCampaignService(repo, nil, false)
	assert.ErrorIs(t, svc.Delete("missing"), common.ErrNotFound)
	repo.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestGetMonthView(t *testing.T) {
	campaigns := []domain.Campaign{
		{ID: "a", Title: "Spring Sale", SendAt: "2026-03-02T10:00:00", BizUnit: "인터넷"},
		{ID: "b", Title: "둘째 주 안내", SendAt: "2026-03-02T08:00:00", BizUnit: "렌탈"},
	}

	repo := new(MockCampaignRepository)
	repo.On("List", mock.Anything).Return(campaigns, nil)

	svc := NewCampaignService(repo, nil, false)
	view, err := svc.GetMonthView(context.Background(), 2026, 3, &domain.CampaignFilter{})

	assert.NoError(t, err)
	assert.Equal(t, 2026, view.Year)
	assert.Equal(t, 3, view.Month)
	assert.Len(t, view.Days, 42)

	// March 2026 starts on a Sunday, so cell 1 is 2026-03-02
	day := view.Days[1]
	assert.Equal(t, "2026-03-02", day.Date)
	assert.True(t, day.InMonth)
	assert.Len(t, day.Campaigns, 2)
	assert.Equal(t, "b", day.Campaigns[0].ID)

	// Empty cells carry an empty slice, not null
	assert.NotNil(t, view.Days[2].Campaigns)
	assert.Empty(t, view.Days[2].Campaigns)
}

func TestMonthViewKeyVariesByDateRange(t *testing.T) {
	march := &domain.CampaignFilter{DateStart: "2026-03-01", DateEnd: "2026-03-31"}
	april := &domain.CampaignFilter{DateStart: "2026-04-01", DateEnd: "2026-04-30"}

	assert.NotEqual(t, monthViewKey(2026, 3, march), monthViewKey(2026, 3, april))
	assert.Equal(t, monthViewKey(2026, 3, march), monthViewKey(2026, 3, march))
	assert.NotEqual(t, monthViewKey(2026, 3, march), monthViewKey(2026, 3, &domain.CampaignFilter{}))
}
