package domain

import (
	"slices"
	"strings"

	"github.com/daonlab/crm-calendar-backend/internal/calendar"
)

// CampaignFilter carries the optional, independently applied filter
// dimensions. An empty dimension passes every record; supplied dimensions
// combine with logical AND.
//
// The same filter is evaluated two ways: in memory via Matches, and as
// store-level constraints by the campaign repository. The two must stay
// equivalent for any record set.
type CampaignFilter struct {
	BizUnits  []string
	Channels  []string
	Reactions []string
	Query     string
	DateStart string // YYYY-MM-DD, inclusive; empty means unbounded
	DateEnd   string // YYYY-MM-DD, inclusive; empty means unbounded
}

// IsEmpty reports whether no dimension is set
func (f *CampaignFilter) IsEmpty() bool {
	return len(f.BizUnits) == 0 && len(f.Channels) == 0 && len(f.Reactions) == 0 &&
		f.Query == "" && f.DateStart == "" && f.DateEnd == ""
}

// Matches reports whether the campaign passes every supplied dimension.
//
// Biz-unit membership is checked against the primary label only, not every
// label the campaign carries. Single-tag-match is the established behavior;
// keep it in sync with the SQL translation in repository.CampaignRepository.
func (f *CampaignFilter) Matches(c *Campaign) bool {
	if len(f.BizUnits) > 0 && !slices.Contains(f.BizUnits, c.PrimaryBizUnit()) {
		return false
	}
	if len(f.Channels) > 0 && !slices.Contains(f.Channels, c.Channel) {
		return false
	}
	if len(f.Reactions) > 0 && !slices.Contains(f.Reactions, c.ExpectedReaction) {
		return false
	}
	if f.Query != "" && !strings.Contains(strings.ToLower(c.Title), strings.ToLower(f.Query)) {
		return false
	}
	if f.DateStart != "" || f.DateEnd != "" {
		date := calendar.ExtractDatePart(c.SendAt)
		if f.DateStart != "" && date < f.DateStart {
			return false
		}
		if f.DateEnd != "" && date > f.DateEnd {
			return false
		}
	}
	return true
}

// Apply filters a campaign list in memory, preserving input order.
func (f *CampaignFilter) Apply(campaigns []Campaign) []Campaign {
	out := make([]Campaign, 0, len(campaigns))
	for i := range campaigns {
		if f.Matches(&campaigns[i]) {
			out = append(out, campaigns[i])
		}
	}
	return out
}
