package routes

import (
	"career-compass/internal/config"
	"career-compass/internal/database"
	"career-compass/internal/delivery/http/handler"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/infrastructure/cache"
	"career-compass/internal/pkg/jwt"
	"career-compass/internal/repository"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// Register wires repositories, usecases, and handlers onto the app. The
// access gate runs before every route, so handlers can trust the locals it
// sets.
func Register(app *fiber.App, cfg config.Config, db database.DB, rc *cache.Redis) {
	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	app.Use(middleware.NewAccessGate(jwtSvc).Middleware())

	userRepo := repository.NewPostgresUserRepository(db)
	careerRepo := repository.NewPostgresCareerRepository(db)
	resumeRepo := repository.NewPostgresResumeRepository(db)

	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)
	resumeUC := usecase.NewResumeUsecase(resumeRepo, userRepo, careerRepo, rc)
	careerUC := usecase.NewCareerUsecase(careerRepo)
	onboardingUC := usecase.NewOnboardingUsecase()

	handler.NewHealthHandler(db, rc).RegisterRoutes(app)

	api := app.Group("/api")

	handler.NewAuthHandler(authUC, cfg.App.IsProduction(), cfg.JWT.AccessExpiresIn, cfg.JWT.RefreshExpiresIn).
		RegisterRoutes(api.Group("/auth"))
	handler.NewResumeHandler(resumeUC).RegisterRoutes(api.Group("/resumes"))
	handler.NewOnboardingHandler(onboardingUC).RegisterRoutes(api)
	handler.NewCareerHandler(careerUC).RegisterRoutes(api)
	handler.NewInterviewHandler().RegisterRoutes(api.Group("/interview"))

	api.Get("/test/ping", func(c fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "pong"})
	})
}
