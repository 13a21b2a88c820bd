package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/catwiki/catwiki-api/internal/application"
	"github.com/catwiki/catwiki-api/internal/domain/repository"
	"github.com/catwiki/catwiki-api/pkg/response"
)

const (
	defaultBreedsPage  = 0
	defaultBreedsLimit = 10
	maxBreedsLimit     = 100
)

type CatsHandler struct {
	Svc    *application.CatsService
	Logger *logrus.Logger
}

func NewCatsHandler(svc *application.CatsService, logger *logrus.Logger) *CatsHandler {
	return &CatsHandler{Svc: svc, Logger: logger}
}

func (h *CatsHandler) ListBreeds(c *gin.Context) {
	page := intQuery(c, "page", defaultBreedsPage)
	limit := intQuery(c, "limit", defaultBreedsLimit)
	if page < 0 {
		page = defaultBreedsPage
	}
	if limit <= 0 || limit > maxBreedsLimit {
		limit = defaultBreedsLimit
	}

	breeds, err := h.Svc.ListBreeds(c.Request.Context(), page, limit)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, breeds, "breeds", map[string]any{"page": page, "limit": limit})
}

func (h *CatsHandler) GetBreedByID(c *gin.Context) {
	breed, err := h.Svc.GetBreedByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, "breed not found", nil)
			return
		}
		writeError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, breed, "breed", nil)
}

func (h *CatsHandler) SearchBreeds(c *gin.Context) {
	query := c.Query("q")
	breeds, err := h.Svc.SearchBreeds(c.Request.Context(), query)
	if err != nil {
		if errors.Is(err, application.ErrSearchQueryRequired) {
			response.Fail(c, http.StatusBadRequest, err.Error(), nil)
			return
		}
		writeError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, breeds, "search results", map[string]any{"count": len(breeds)})
}

func intQuery(c *gin.Context, name string, def int) int {
	v := c.Query(name)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}
