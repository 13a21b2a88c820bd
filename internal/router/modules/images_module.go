package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/catwiki/catwiki-api/internal/interface/http"
)

// ImagesModule exposes breed image lookups.
type ImagesModule struct {
	Handler *handlers.ImagesHandler
}

func NewImagesModule(h *handlers.ImagesHandler) *ImagesModule {
	return &ImagesModule{Handler: h}
}

func (m *ImagesModule) Register(rg *gin.RouterGroup) {
	rg.GET("/images/breed/:breedId", m.Handler.GetImagesByBreedID)
	rg.GET("/images/reference/:referenceImageId", m.Handler.GetImageByReferenceID)
}
