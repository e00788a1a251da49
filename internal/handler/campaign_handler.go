package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/daonlab/crm-calendar-backend/internal/calendar"
	"github.com/daonlab/crm-calendar-backend/internal/common"
	"github.com/daonlab/crm-calendar-backend/internal/domain"
	"github.com/daonlab/crm-calendar-backend/internal/middleware"
	"github.com/daonlab/crm-calendar-backend/internal/service"
)

// CampaignHandler handles campaign requests
type CampaignHandler struct {
	service *service.CampaignService
}

// NewCampaignHandler creates a new CampaignHandler
func NewCampaignHandler(service *service.CampaignService) *CampaignHandler {
	return &CampaignHandler{service: service}
}

// List handles GET /api/campaigns
//
// Query parameters: year + month (1-based) narrow to the month's inclusive
// date range; biz_unit, channel and expected_reaction repeat for membership
// filters; q is a case-insensitive title search.
func (h *CampaignHandler) List(c *gin.Context) {
	filter := filterFromQuery(c)

	campaigns, err := h.service.List(filter)
	if err != nil {
		common.ServerError(c, "캠페인 목록을 가져오는데 실패했습니다")
		return
	}

	common.Success(c, http.StatusOK, campaigns)
}

// Get handles GET /api/campaigns/:id
func (h *CampaignHandler) Get(c *gin.Context) {
	campaign, err := h.service.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			common.NotFound(c, "캠페인을 찾을 수 없습니다")
			return
		}
		common.ServerError(c, "캠페인을 가져오는데 실패했습니다")
		return
	}

	common.Success(c, http.StatusOK, campaign)
}

// Create handles POST /api/campaigns
func (h *CampaignHandler) Create(c *gin.Context) {
	var input domain.CampaignInput
	if err := c.ShouldBindJSON(&input); err != nil {
		common.Error(c, http.StatusBadRequest, "요청 본문이 올바르지 않습니다")
		return
	}

	campaign, err := h.service.Create(middleware.GetUserID(c), &input)
	if err != nil {
		if errors.Is(err, common.ErrInvalidInput) {
			common.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		common.ServerError(c, "캠페인 생성에 실패했습니다")
		return
	}

	common.Success(c, http.StatusCreated, campaign)
}

// Update handles PUT /api/campaigns/:id
func (h *CampaignHandler) Update(c *gin.Context) {
	var input domain.CampaignInput
	if err := c.ShouldBindJSON(&input); err != nil {
		common.Error(c, http.StatusBadRequest, "요청 본문이 올바르지 않습니다")
		return
	}

	campaign, err := h.service.Update(c.Param("id"), &input)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrNotFound):
			common.NotFound(c, "캠페인을 찾을 수 없습니다")
		case errors.Is(err, common.ErrInvalidInput):
			common.Error(c, http.StatusBadRequest, err.Error())
		default:
			common.ServerError(c, "캠페인 수정에 실패했습니다")
		}
		return
	}

	common.Success(c, http.StatusOK, campaign)
}

// Delete handles DELETE /api/campaigns/:id
func (h *CampaignHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Param("id")); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			common.NotFound(c, "캠페인을 찾을 수 없습니다")
			return
		}
		common.ServerError(c, "캠페인 삭제에 실패했습니다")
		return
	}

	common.Success(c, http.StatusOK, gin.H{"message": "캠페인이 삭제되었습니다"})
}

// Copy handles POST /api/campaigns/:id/copy
func (h *CampaignHandler) Copy(c *gin.Context) {
	var input domain.CopyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		common.Error(c, http.StatusBadRequest, "요청 본문이 올바르지 않습니다")
		return
	}

	campaign, err := h.service.Copy(middleware.GetUserID(c), c.Param("id"), &input)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrNotFound):
			common.NotFound(c, "복사할 캠페인을 찾을 수 없습니다")
		case errors.Is(err, common.ErrInvalidInput):
			common.Error(c, http.StatusBadRequest, err.Error())
		default:
			common.ServerError(c, "캠페인 복사에 실패했습니다")
		}
		return
	}

	common.Success(c, http.StatusCreated, campaign)
}

// Meta handles GET /api/meta
//
// Enumeration lists and display colors that the campaign form and the
// calendar legend render from. Colors are keyed by primary biz-unit label.
func (h *CampaignHandler) Meta(c *gin.Context) {
	common.Success(c, http.StatusOK, gin.H{
		"biz_units":       domain.BizUnits,
		"biz_unit_colors": domain.BizUnitColors,
		"channels":        domain.Channels,
		"reactions":       domain.Reactions,
	})
}

// MonthView handles GET /api/calendar
func (h *CampaignHandler) MonthView(c *gin.Context) {
	now := time.Now()
	year := queryInt(c, "year", now.Year())
	month := queryInt(c, "month", int(now.Month()))
	if month < 1 || month > 12 {
		common.Error(c, http.StatusBadRequest, "유효하지 않은 월입니다")
		return
	}

	filter := filterFromQuery(c)
	filter.DateStart, filter.DateEnd = calendar.MonthRange(year, month)

	view, err := h.service.GetMonthView(c.Request.Context(), year, month, filter)
	if err != nil {
		common.ServerError(c, "캘린더를 가져오는데 실패했습니다")
		return
	}

	common.Success(c, http.StatusOK, view)
}

func filterFromQuery(c *gin.Context) *domain.CampaignFilter {
	filter := &domain.CampaignFilter{
		BizUnits:  c.QueryArray("biz_unit"),
		Channels:  c.QueryArray("channel"),
		Reactions: c.QueryArray("expected_reaction"),
		Query:     c.Query("q"),
	}

	yearStr, monthStr := c.Query("year"), c.Query("month")
	if yearStr != "" && monthStr != "" {
		year, yerr := strconv.Atoi(yearStr)
		month, merr := strconv.Atoi(monthStr)
		if yerr == nil && merr == nil && month >= 1 && month <= 12 {
			filter.DateStart, filter.DateEnd = calendar.MonthRange(year, month)
		}
	}

	return filter
}

func queryInt(c *gin.Context, key string, def int) int {
	if v := c.Query(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
