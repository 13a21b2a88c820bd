package router

import (
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/catwiki/catwiki-api/config"
	"github.com/catwiki/catwiki-api/internal/application"
	"github.com/catwiki/catwiki-api/internal/infrastructure/catapi"
	"github.com/catwiki/catwiki-api/internal/infrastructure/mongodb"
	handlers "github.com/catwiki/catwiki-api/internal/interface/http"
	"github.com/catwiki/catwiki-api/internal/router/modules"
)

// Deps carries the process-wide collaborators constructed in main.
// Everything downstream is wired explicitly from here; there is no
// ambient container. Redis, ES and Mail may be nil, disabling the
// features that need them.
type Deps struct {
	Cfg    *config.Config
	Logger *logrus.Logger
	Mongo  *mongo.Database
	Redis  *redis.Client
	ES     *elasticsearch.Client
	Mail   application.EmailEnqueuer
	Tokens application.TokenService
	Hasher application.PasswordHasher
}

// InitModules assembles the dependency graph for every feature module
// and registers them with the router registry. Called once at startup.
func InitModules(r *Registry, d Deps) {
	userRepo := mongodb.NewUserRepository(d.Mongo)

	authSvc := application.NewAuthService(
		userRepo,
		d.Hasher,
		d.Tokens,
		d.Mail,
		d.ES,
		d.Cfg.ESUsersIndex,
		d.Logger,
	)
	authHandler := handlers.NewAuthHandler(authSvc, d.Logger)
	r.Add(modules.NewAuthModule(authHandler, d.Tokens, d.Redis))

	catClient := catapi.NewClient(d.Cfg.CatAPIBaseURL, d.Cfg.CatAPIKey, d.Cfg.CatAPITimeout)

	catsSvc := application.NewCatsService(
		catapi.NewBreedRepository(catClient),
		d.Redis,
		d.Cfg.BreedCacheTTL,
		d.Logger,
	)
	r.Add(modules.NewCatsModule(handlers.NewCatsHandler(catsSvc, d.Logger)))

	imagesSvc := application.NewImagesService(catapi.NewImageRepository(catClient), d.Logger)
	r.Add(modules.NewImagesModule(handlers.NewImagesHandler(imagesSvc, d.Logger)))

	if d.Cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule(d.Redis))
	}
}
