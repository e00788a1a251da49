package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/daonlab/crm-calendar-backend/internal/common"
	"github.com/daonlab/crm-calendar-backend/internal/middleware"
	"github.com/daonlab/crm-calendar-backend/internal/service"
)

// AuthHandler handles authentication requests
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(service *service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// LoginRequest login request
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		common.Error(c, http.StatusBadRequest, "이메일과 비밀번호를 입력해주세요")
		return
	}

	token, user, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			common.Error(c, http.StatusUnauthorized, "이메일 또는 비밀번호가 올바르지 않습니다")
			return
		}
		common.ServerError(c, "로그인에 실패했습니다")
		return
	}

	common.Success(c, http.StatusOK, gin.H{
		"access_token": token,
		"user":         user,
	})
}

// Me handles GET /api/auth/me — the currentUser() surface.
// Runs behind RequireAuth, so a missing user here means the token outlived
// its account.
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.service.CurrentUser(middleware.GetUserID(c))
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			common.Unauthorized(c)
			return
		}
		common.ServerError(c, "사용자 정보를 가져오는데 실패했습니다")
		return
	}

	common.Success(c, http.StatusOK, user)
}
