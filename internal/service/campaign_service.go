package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/daonlab/crm-calendar-backend/internal/calendar"
	"github.com/daonlab/crm-calendar-backend/internal/common"
	"github.com/daonlab/crm-calendar-backend/internal/domain"
	"github.com/daonlab/crm-calendar-backend/internal/repository"
	"github.com/daonlab/crm-calendar-backend/pkg/cache"
	"github.com/daonlab/crm-calendar-backend/pkg/logger"
)

// copyTitleSuffix matches the legacy UI's duplication label
const copyTitleSuffix = " (복사본)"

// CampaignService handles campaign lifecycle business logic.
// Authorization happens at the middleware boundary; every write method here
// already runs on behalf of an authenticated user.
type CampaignService struct {
	repo            repository.CampaignRepository
	cache           cache.Service
	suffixCopyTitle bool
}

// NewCampaignService creates a CampaignService. cacheService may be nil.
func NewCampaignService(repo repository.CampaignRepository, cacheService cache.Service, suffixCopyTitle bool) *CampaignService {
	return &CampaignService{
		repo:            repo,
		cache:           cacheService,
		suffixCopyTitle: suffixCopyTitle,
	}
}

// List returns campaigns matching the filter, ascending by send_at.
// An empty result is an empty slice, never an error.
func (s *CampaignService) List(filter *domain.CampaignFilter) ([]domain.Campaign, error) {
	campaigns, err := s.repo.List(filter)
	if err != nil {
		return nil, storeFailure("list campaigns", err)
	}
	if campaigns == nil {
		campaigns = []domain.Campaign{}
	}
	return campaigns, nil
}

// Get returns the campaign or common.ErrNotFound
func (s *CampaignService) Get(id string) (*domain.Campaign, error) {
	campaign, err := s.repo.GetByID(id)
	if err != nil {
		return nil, storeFailure("get campaign", err)
	}
	if campaign == nil {
		return nil, common.ErrNotFound
	}
	return campaign, nil
}

// Create validates the input, stamps the caller identity and persists.
// Validation failure carries the first failing field's message and nothing
// is persisted.
func (s *CampaignService) Create(userID string, input *domain.CampaignInput) (*domain.Campaign, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	campaign := &domain.Campaign{
		Title:            input.Title,
		SendAt:           input.SendAt,
		BizUnit:          input.BizUnit,
		Channel:          input.Channel,
		AudienceSize:     *input.AudienceSize,
		ExpectedReaction: input.ExpectedReaction,
		SendMessage:      input.SendMessage,
		CSMemo:           input.CSMemo,
		CreatedBy:        userID,
	}

	if err := s.repo.Create(campaign); err != nil {
		return nil, storeFailure("create campaign", err)
	}

	writeLog := logger.WithUserID(userID)
	writeLog.Info().Str("campaign_id", campaign.ID).Msg("campaign created")

	s.invalidateCache()
	return campaign, nil
}

// Update requires the record to exist, re-validates and persists the
// mutable fields; updated_at is refreshed by the store.
func (s *CampaignService) Update(id string, input *domain.CampaignInput) (*domain.Campaign, error) {
	campaign, err := s.repo.GetByID(id)
	if err != nil {
		return nil, storeFailure("get campaign", err)
	}
	if campaign == nil {
		return nil, common.ErrNotFound
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	campaign.Title = input.Title
	campaign.SendAt = input.SendAt
	campaign.BizUnit = input.BizUnit
	campaign.Channel = input.Channel
	campaign.AudienceSize = *input.AudienceSize
	campaign.ExpectedReaction = input.ExpectedReaction
	campaign.SendMessage = input.SendMessage
	campaign.CSMemo = input.CSMemo

	if err := s.repo.Update(campaign); err != nil {
		return nil, storeFailure("update campaign", err)
	}

	s.invalidateCache()
	return campaign, nil
}

// Copy duplicates a campaign onto a new send time. Every field carries over
// except id, timestamps and send_at; the title gains the legacy suffix only
// when configured.
func (s *CampaignService) Copy(userID, id string, input *domain.CopyInput) (*domain.Campaign, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	source, err := s.repo.GetByID(id)
	if err != nil {
		return nil, storeFailure("get campaign", err)
	}
	if source == nil {
		return nil, common.ErrNotFound
	}

	title := source.Title
	if s.suffixCopyTitle {
		title += copyTitleSuffix
	}

	duplicate := &domain.Campaign{
		Title:            title,
		SendAt:           input.SendAt,
		BizUnit:          source.BizUnit,
		Channel:          source.Channel,
		AudienceSize:     source.AudienceSize,
		ExpectedReaction: source.ExpectedReaction,
		SendMessage:      source.SendMessage,
		CSMemo:           source.CSMemo,
		CreatedBy:        userID,
	}

	if err := s.repo.Create(duplicate); err != nil {
		return nil, storeFailure("copy campaign", err)
	}

	writeLog := logger.WithUserID(userID)
	writeLog.Info().Str("campaign_id", duplicate.ID).Str("source_id", source.ID).Msg("campaign copied")

	s.invalidateCache()
	return duplicate, nil
}

// Delete removes the campaign permanently
func (s *CampaignService) Delete(id string) error {
	campaign, err := s.repo.GetByID(id)
	if err != nil {
		return storeFailure("get campaign", err)
	}
	if campaign == nil {
		return common.ErrNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		return storeFailure("delete campaign", err)
	}

	s.invalidateCache()
	return nil
}

// DayCell is one grid cell of a month view
type DayCell struct {
	Date      string            `json:"date"`
	InMonth   bool              `json:"in_month"`
	Today     bool              `json:"today"`
	Campaigns []domain.Campaign `json:"campaigns"`
}

// MonthView is the 42-cell calendar for one month
type MonthView struct {
	Year  int       `json:"year"`
	Month int       `json:"month"`
	Days  []DayCell `json:"days"`
}

// GetMonthView computes the six-week grid for a one-based month with each
// day's campaigns bucketed and sorted. Results are memoized in redis per
// (year, month, filter); every campaign write invalidates them.
func (s *CampaignService) GetMonthView(ctx context.Context, year, month int, filter *domain.CampaignFilter) (*MonthView, error) {
	key := monthViewKey(year, month, filter)
	if s.cache != nil && s.cache.IsAvailable() {
		var cached MonthView
		if err := s.cache.GetCampaigns(ctx, key, &cached); err == nil {
			return &cached, nil
		}
	}

	campaigns, err := s.List(filter)
	if err != nil {
		return nil, err
	}

	days := calendar.MonthGrid(year, month-1)
	buckets := domain.GroupByDay(campaigns, days)

	view := &MonthView{Year: year, Month: month, Days: make([]DayCell, 0, len(days))}
	for _, day := range days {
		dateKey := calendar.FormatDateKey(day)
		bucket := buckets[dateKey]
		if bucket == nil {
			bucket = []domain.Campaign{}
		}
		view.Days = append(view.Days, DayCell{
			Date:      dateKey,
			InMonth:   calendar.IsInMonth(day, year, month-1),
			Today:     calendar.IsToday(day),
			Campaigns: bucket,
		})
	}

	if s.cache != nil && s.cache.IsAvailable() {
		if err := s.cache.SetCampaigns(ctx, key, view); err != nil {
			logger.Get().Warn().Err(err).Msg("month view cache write failed")
		}
	}
	return view, nil
}

func monthViewKey(year, month int, filter *domain.CampaignFilter) string {
	if filter == nil {
		filter = &domain.CampaignFilter{}
	}
	return fmt.Sprintf("month:%04d-%02d:bu=%s:ch=%s:re=%s:q=%s:d=%s..%s",
		year, month,
		strings.Join(filter.BizUnits, "|"),
		strings.Join(filter.Channels, "|"),
		strings.Join(filter.Reactions, "|"),
		filter.Query,
		filter.DateStart, filter.DateEnd)
}

func (s *CampaignService) invalidateCache() {
	if s.cache == nil || !s.cache.IsAvailable() {
		return
	}
	if err := s.cache.InvalidateCampaigns(context.Background()); err != nil {
		logger.Get().Warn().Err(err).Msg("campaign cache invalidation failed")
	}
}

func storeFailure(op string, err error) error {
	logger.Get().Error().Err(err).Str("op", op).Msg("record store error")
	return fmt.Errorf("%s: %w", op, common.ErrStoreFailure)
}
