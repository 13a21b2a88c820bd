package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/catwiki/catwiki-api/internal/application"
	"github.com/catwiki/catwiki-api/internal/domain/entity"
	"github.com/catwiki/catwiki-api/internal/interface/middleware"
	"github.com/catwiki/catwiki-api/pkg/response"
	"github.com/catwiki/catwiki-api/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

// Binding checks presence only; format and complexity live in the
// value objects so the error reasons come from the domain.
type registerRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	user, err := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}

	response.JSON(c, http.StatusCreated, gin.H{
		"id":    user.ID().Value(),
		"email": user.Email().Value(),
		"name":  user.Name(),
	}, "user registered successfully", nil)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	res, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, res, "login successful", nil)
}

func (h *AuthHandler) GetProfile(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	profile, err := h.Svc.GetUserByID(c.Request.Context(), uid)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, profile, "profile", nil)
}

// CheckAuth reports whether the authenticated subject still maps to a
// live account. A user deleted after token issue is 401, not 404.
func (h *AuthHandler) CheckAuth(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	id, err := entity.NewUserID(uid)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}

	user, err := h.Svc.CheckAuthentication(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	if user == nil {
		response.Fail(c, http.StatusUnauthorized, "not authenticated", gin.H{"authenticated": false})
		return
	}
	response.JSON(c, http.StatusOK, gin.H{
		"authenticated": true,
		"user": gin.H{
			"id":    user.ID().Value(),
			"email": user.Email().Value(),
			"name":  user.Name(),
		},
	}, "authenticated", nil)
}

type searchUsersRequest struct {
	Query string `form:"q" binding:"required"`
	Size  int    `form:"size"`
}

func (h *AuthHandler) Search(c *gin.Context) {
	var req searchUsersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid query", validation.ToDetails(err))
		return
	}

	hits, err := h.Svc.SearchUsers(c.Request.Context(), req.Query, req.Size)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, hits, "search results", map[string]any{"count": len(hits)})
}
