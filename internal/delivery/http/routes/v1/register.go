package v1

import (
	"log"

	"med-ready/internal/config"
	"med-ready/internal/database"
	"med-ready/internal/delivery/http/handler"
	"med-ready/internal/delivery/http/middleware"
	"med-ready/internal/domain/recommend"
	"med-ready/internal/infrastructure/cache"
	"med-ready/internal/infrastructure/github"
	"med-ready/internal/infrastructure/persistence/postgres"
	"med-ready/internal/pkg/jwt"
	"med-ready/internal/repository"
	"med-ready/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// Dependencies carries the shared infrastructure the v1 API is built on.
type Dependencies struct {
	Config   config.Config
	DB       database.DB
	Cache    *cache.Redis
	Search   github.SearchClient
	Notifier usecase.AnalysisNotifier
	Logger   *log.Logger
}

func Register(r fiber.Router, deps Dependencies) error {
	if r == nil {
		return nil
	}

	jwtSvc := jwt.NewHMACService(
		deps.Config.JWT.AccessSecret,
		deps.Config.JWT.RefreshSecret,
		deps.Config.JWT.AccessExpiresIn,
		deps.Config.JWT.RefreshExpiresIn,
	)
	authMw := middleware.NewAuthMiddleware(jwtSvc)

	userRepo, err := postgres.NewUserRepository(deps.DB.SQLDB())
	if err != nil {
		return err
	}
	roleRepo := repository.NewPostgresRoleRepository(deps.DB)
	skillRepo := repository.NewPostgresSkillRepository(deps.DB)
	userSkillRepo := repository.NewPostgresUserSkillRepository(deps.DB)
	courseRepo := repository.NewPostgresCourseRepository(deps.DB)

	matcher := recommend.NameMatcher{}
	durations := recommend.DefaultPhaseDurations()

	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)
	userUC := usecase.NewUserUsecase(userRepo)
	skillUC := usecase.NewSkillUsecase(skillRepo)
	userSkillUC := usecase.NewUserSkillUsecase(userSkillRepo)
	roleUC := usecase.NewRoleUsecase(roleRepo)
	analysisUC := usecase.NewAnalysisUsecase(roleRepo, userSkillRepo, deps.Notifier)
	recUC := usecase.NewRecommendationUsecase(roleRepo, userSkillRepo, courseRepo, matcher, durations)
	pathUC := usecase.NewLearningPathUsecase(roleRepo, userSkillRepo, courseRepo, matcher, durations, deps.Notifier, nil)
	projectUC := usecase.NewProjectUsecase(roleRepo, userSkillRepo, deps.Search, deps.Cache, deps.Logger)

	authHandler := handler.NewAuthHandler(authUC)
	userHandler := handler.NewUserHandler(userUC)
	skillHandler := handler.NewSkillHandler(skillUC)
	userSkillHandler := handler.NewUserSkillHandler(userSkillUC)
	roleHandler := handler.NewRoleHandler(roleUC)
	analysisHandler := handler.NewAnalysisHandler(analysisUC, recUC, pathUC)
	projectHandler := handler.NewProjectHandler(projectUC)

	authHandler.RegisterRoutes(r.Group("/auth"))
	roleHandler.RegisterRoutes(r)
	skillHandler.RegisterRoutes(r)
	projectHandler.RegisterPublicRoutes(r)

	protected := r.Group("", authMw.Middleware())
	usersGroup := protected.Group("/users")
	userHandler.RegisterRoutes(usersGroup)
	userSkillHandler.RegisterRoutes(usersGroup)
	analysisHandler.RegisterRoutes(protected)
	projectHandler.RegisterRoutes(protected)

	return nil
}
