package handlers

import (
	"github.com/artcom/cheminova-backend/internal/config"
	"github.com/artcom/cheminova-backend/internal/imageauth"
	"github.com/artcom/cheminova-backend/internal/middleware"
	"github.com/artcom/cheminova-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Register mounts the application routes below the configured base path.
// session resolves the caller for every api route.
func Register(app *fiber.App, cfg *config.Config, db *gorm.DB, session fiber.Handler) {
	repo := services.NewRepository(db)
	imageAuth := &ImageAuthHandler{Checker: imageauth.NewChecker(cfg.MediaURL, repo, repo)}
	images := &ImagesHandler{DB: db, Cfg: cfg}
	experience := &ExperienceHandler{DB: db, Cfg: cfg}

	app.Get(cfg.BasePath+"health", Health)

	api := app.Group(cfg.APIPath(""), session)

	api.Get("/image-auth", imageAuth.CheckPermissions)

	api.Get("/images", middleware.AuthUser(), images.ListImages)
	api.Get("/images/:character/approved", images.ApprovedCharacterImages)
	api.Get("/images/:character", middleware.AuthUser(), images.CharacterImages)

	api.Get("/all", experience.GetAll)
	api.Get("/:type", experience.GetPages)
}

// Health handles GET /health
// @Summary Liveness probe
// @Tags Health
// @Produce plain
// @Success 200 {string} string "ok"
// @Router /health [get]
func Health(c *fiber.Ctx) error {
	return c.SendString("ok")
}
