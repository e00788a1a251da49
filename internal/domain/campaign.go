package domain

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/daonlab/crm-calendar-backend/internal/common"
)

// Campaign represents a scheduled marketing campaign (마케팅 캠페인)
//
// SendAt is stored as the raw wall-clock string (YYYY-MM-DDTHH:MM[:SS]),
// never as a zoned DATETIME, so no layer can accidentally shift it through
// a timezone conversion.
type Campaign struct {
	ID               string    `gorm:"column:id;primaryKey;size:36" json:"id"`
	Title            string    `gorm:"column:title;size:200" json:"title"`
	SendAt           string    `gorm:"column:send_at;size:32;index" json:"send_at"`
	BizUnit          string    `gorm:"column:biz_unit;size:255" json:"biz_unit"`
	Channel          string    `gorm:"column:channel;size:50" json:"channel"`
	AudienceSize     int       `gorm:"column:audience_size" json:"audience_size"`
	ExpectedReaction string    `gorm:"column:expected_reaction;size:10" json:"expected_reaction"`
	SendMessage      string    `gorm:"column:send_message;type:text" json:"send_message,omitempty"`
	CSMemo           string    `gorm:"column:cs_memo;type:text" json:"cs_memo,omitempty"`
	CreatedBy        string    `gorm:"column:created_by;size:36" json:"created_by"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName returns the table name
func (Campaign) TableName() string {
	return "campaigns"
}

// BeforeCreate assigns the record id
func (c *Campaign) BeforeCreate(_ *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

// PrimaryBizUnit returns the first comma-separated business-unit label.
// The primary label drives both display color and biz-unit filtering.
func (c *Campaign) PrimaryBizUnit() string {
	first, _, _ := strings.Cut(c.BizUnit, ",")
	return strings.TrimSpace(first)
}

// BizUnitList returns every business-unit label the campaign carries.
func (c *Campaign) BizUnitList() []string {
	parts := strings.Split(c.BizUnit, ",")
	labels := make([]string, 0, len(parts))
	for _, p := range parts {
		if label := strings.TrimSpace(p); label != "" {
			labels = append(labels, label)
		}
	}
	return labels
}

// CampaignInput is the request body for create and update.
// AudienceSize is a pointer so a missing field fails validation
// instead of silently becoming zero.
type CampaignInput struct {
	Title            string `json:"title"`
	SendAt           string `json:"send_at"`
	BizUnit          string `json:"biz_unit"`
	Channel          string `json:"channel"`
	AudienceSize     *int   `json:"audience_size"`
	ExpectedReaction string `json:"expected_reaction"`
	SendMessage      string `json:"send_message"`
	CSMemo           string `json:"cs_memo"`
}

// Validate checks the field constraints in schema order and returns the
// first failing field's message only.
func (in *CampaignInput) Validate() error {
	if in.Title == "" {
		return common.NewInvalidInput("title", "캠페인명을 입력해주세요")
	}
	if utf8.RuneCountInString(in.Title) > 200 {
		return common.NewInvalidInput("title", "캠페인명은 200자 이내로 입력해주세요")
	}
	if in.SendAt == "" {
		return common.NewInvalidInput("send_at", "발송 일시를 선택해주세요")
	}
	if in.BizUnit == "" {
		return common.NewInvalidInput("biz_unit", "사업부를 선택해주세요")
	}
	if in.Channel == "" {
		return common.NewInvalidInput("channel", "발송 채널을 선택해주세요")
	}
	if in.AudienceSize == nil {
		return common.NewInvalidInput("audience_size", "정수를 입력해주세요")
	}
	if *in.AudienceSize < 0 {
		return common.NewInvalidInput("audience_size", "0 이상의 숫자를 입력해주세요")
	}
	if !IsValidReaction(in.ExpectedReaction) {
		return common.NewInvalidInput("expected_reaction", "예상 반응도를 선택해주세요")
	}
	return nil
}

// CopyInput is the request body for the copy operation
type CopyInput struct {
	SendAt string `json:"send_at"`
}

// Validate checks the new send time is present
func (in *CopyInput) Validate() error {
	if in.SendAt == "" {
		return common.NewInvalidInput("send_at", "발송 일시를 선택해주세요")
	}
	return nil
}
