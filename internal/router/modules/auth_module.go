package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/catwiki/catwiki-api/internal/application"
	handlers "github.com/catwiki/catwiki-api/internal/interface/http"
	"github.com/catwiki/catwiki-api/internal/interface/middleware"
)

// AuthModule wires auth HTTP handlers and the bearer gate into routes.
// Public: POST /auth/register, POST /auth/login
// Protected: GET /auth/profile, GET /auth/check-auth, GET /auth/users/search
type AuthModule struct {
	Handler *handlers.AuthHandler
	Tokens  application.TokenService
	Redis   *redis.Client
}

func NewAuthModule(h *handlers.AuthHandler, tokens application.TokenService, rdb *redis.Client) *AuthModule {
	return &AuthModule{Handler: h, Tokens: tokens, Redis: rdb}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	// Public endpoints with IP-based rate limits
	registerLimiter := middleware.RateLimit(m.Redis, 5, time.Minute, middleware.KeyByIPAndPath(), nil)
	loginLimiter := middleware.RateLimit(m.Redis, 10, time.Minute, middleware.KeyByIP(), nil)

	rg.POST("/auth/register", registerLimiter, m.Handler.Register)
	rg.POST("/auth/login", loginLimiter, m.Handler.Login)

	// Protected
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Tokens))
	auth.Use(middleware.RateLimit(m.Redis, 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.GET("/auth/profile", m.Handler.GetProfile)
		auth.GET("/auth/check-auth", m.Handler.CheckAuth)
		auth.GET("/auth/users/search", m.Handler.Search)
	}
}
