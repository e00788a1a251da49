package repository

import (
	"strings"

	"gorm.io/gorm"

	"github.com/daonlab/crm-calendar-backend/internal/domain"
)

// CampaignRepository is the record-store surface for campaigns
type CampaignRepository interface {
	List(filter *domain.CampaignFilter) ([]domain.Campaign, error)
	GetByID(id string) (*domain.Campaign, error)
	Create(campaign *domain.Campaign) error
	Update(campaign *domain.Campaign) error
	Delete(id string) error
}

type campaignRepository struct {
	db *gorm.DB
}

// NewCampaignRepository creates a CampaignRepository backed by gorm
func NewCampaignRepository(db *gorm.DB) CampaignRepository {
	return &campaignRepository{db: db}
}

// List returns campaigns matching the filter, ascending by send_at.
// The SQL translation mirrors domain.CampaignFilter.Matches dimension for
// dimension — the two evaluations must stay equivalent:
//   - biz units match the primary (first comma-separated) label only
//   - title search is a case-insensitive substring
//   - the date range compares the date part of send_at, bounds inclusive
func (r *campaignRepository) List(filter *domain.CampaignFilter) ([]domain.Campaign, error) {
	query := r.db.Model(&domain.Campaign{})

	if filter != nil {
		if len(filter.BizUnits) > 0 {
			query = query.Where("TRIM(SUBSTRING_INDEX(biz_unit, ',', 1)) IN ?", filter.BizUnits)
		}
		if len(filter.Channels) > 0 {
			query = query.Where("channel IN ?", filter.Channels)
		}
		if len(filter.Reactions) > 0 {
			query = query.Where("expected_reaction IN ?", filter.Reactions)
		}
		if filter.Query != "" {
			query = query.Where("LOWER(title) LIKE ?", "%"+escapeLike(strings.ToLower(filter.Query))+"%")
		}
		if filter.DateStart != "" {
			query = query.Where("SUBSTR(send_at, 1, 10) >= ?", filter.DateStart)
		}
		if filter.DateEnd != "" {
			query = query.Where("SUBSTR(send_at, 1, 10) <= ?", filter.DateEnd)
		}
	}

	var campaigns []domain.Campaign
	if err := query.Order("send_at ASC").Find(&campaigns).Error; err != nil {
		return nil, err
	}
	return campaigns, nil
}

// GetByID retrieves a campaign, returning (nil, nil) when absent
func (r *campaignRepository) GetByID(id string) (*domain.Campaign, error) {
	var campaign domain.Campaign
	err := r.db.Where("id = ?", id).First(&campaign).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &campaign, nil
}

// Create persists a new campaign; the id is assigned in BeforeCreate
func (r *campaignRepository) Create(campaign *domain.Campaign) error {
	return r.db.Create(campaign).Error
}

// Update persists every mutable field and refreshes updated_at
func (r *campaignRepository) Update(campaign *domain.Campaign) error {
	return r.db.Save(campaign).Error
}

// Delete removes a campaign permanently
func (r *campaignRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&domain.Campaign{}).Error
}

// escapeLike escapes LIKE wildcards in user-supplied search text
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
