package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/catwiki/catwiki-api/internal/application"
	"github.com/catwiki/catwiki-api/internal/domain/repository"
	"github.com/catwiki/catwiki-api/pkg/response"
)

type ImagesHandler struct {
	Svc    *application.ImagesService
	Logger *logrus.Logger
}

func NewImagesHandler(svc *application.ImagesService, logger *logrus.Logger) *ImagesHandler {
	return &ImagesHandler{Svc: svc, Logger: logger}
}

func (h *ImagesHandler) GetImagesByBreedID(c *gin.Context) {
	images, err := h.Svc.GetImagesByBreedID(c.Request.Context(), c.Param("breedId"))
	if err != nil {
		if errors.Is(err, application.ErrBreedIDRequired) {
			response.Fail(c, http.StatusBadRequest, err.Error(), nil)
			return
		}
		writeError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, images, "images", map[string]any{"count": len(images)})
}

func (h *ImagesHandler) GetImageByReferenceID(c *gin.Context) {
	image, err := h.Svc.GetImageByReferenceID(c.Request.Context(), c.Param("referenceImageId"))
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			response.Fail(c, http.StatusNotFound, "image not found", nil)
		case errors.Is(err, application.ErrReferenceIDRequired):
			response.Fail(c, http.StatusBadRequest, err.Error(), nil)
		default:
			writeError(c, h.Logger, err)
		}
		return
	}
	response.JSON(c, http.StatusOK, image, "image", nil)
}
