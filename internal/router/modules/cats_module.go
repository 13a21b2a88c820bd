package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/catwiki/catwiki-api/internal/interface/http"
)

// CatsModule exposes the public breed catalogue.
type CatsModule struct {
	Handler *handlers.CatsHandler
}

func NewCatsModule(h *handlers.CatsHandler) *CatsModule {
	return &CatsModule{Handler: h}
}

func (m *CatsModule) Register(rg *gin.RouterGroup) {
	rg.GET("/cats/breeds", m.Handler.ListBreeds)
	rg.GET("/cats/breeds/:id", m.Handler.GetBreedByID)
	rg.GET("/cats/search", m.Handler.SearchBreeds)
}
