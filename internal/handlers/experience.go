package handlers

import (
	"fmt"

	"github.com/artcom/cheminova-backend/internal/config"
	"github.com/artcom/cheminova-backend/internal/logging"
	"github.com/artcom/cheminova-backend/internal/pages"
	"github.com/artcom/cheminova-backend/internal/services"
	"github.com/artcom/cheminova-backend/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ExperienceHandler serves the live page tree of the experience
type ExperienceHandler struct {
	DB  *gorm.DB
	Cfg *config.Config
}

// GetPages handles GET /api/:type
// @Summary Get pages of a type
// @Description Get the live pages of a page type with their children nested down to depth levels
// @Tags Experience
// @Produce json
// @Param type path string true "Page type"
// @Param locale query string false "Language code"
// @Param depth query int false "Levels of children to include"
// @Success 200 {array} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /{type} [get]
func (h *ExperienceHandler) GetPages(c *fiber.Ctx) error {
	pageType := c.Params("type")
	if _, ok := pages.Lookup(pageType); !ok {
		return utils.NotFoundResponse(c, fmt.Sprintf("Page type '%s' not found", pageType))
	}
	return h.render(c, pageType, parseDepth(c))
}

// GetAll handles GET /api/all
// @Summary Get the whole experience
// @Description Get every live language root with its complete subtree
// @Tags Experience
// @Produce json
// @Param locale query string false "Language code"
// @Success 200 {array} map[string]interface{}
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /all [get]
func (h *ExperienceHandler) GetAll(c *fiber.Ctx) error {
	return h.render(c, "welcome-language", -1)
}

func (h *ExperienceHandler) render(c *fiber.Ctx, pageType string, depth int) error {
	ctx := c.UserContext()

	var localeID *uint64
	if code := parseLocale(c); code != "" {
		id, err := services.LocaleID(ctx, h.DB, code)
		if err != nil {
			return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "experience")
		}
		localeID = id
	}

	live, err := services.LivePages(ctx, h.DB)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "experience")
	}

	nodes := pages.NewTree(live).OfType(pageType, localeID)
	imageIDs, characterPages, err := pages.Collect(nodes, depth)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "experience")
	}

	images, err := services.ImagesByID(ctx, h.DB, imageIDs)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "experience")
	}
	characters, err := services.CharactersByPage(ctx, h.DB, characterPages)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "experience")
	}

	renderer := &pages.Renderer{Images: images, Characters: characters, ImageURL: imageURL(h.Cfg)}
	result := make([]map[string]any, 0, len(nodes))
	for _, n := range nodes {
		obj, err := renderer.Render(n, depth)
		if err != nil {
			log := logging.FromFiber(c)
			log.Error().Err(err).Uint64("page", n.Page.ID).Msg("Failed to render page")
			return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "experience")
		}
		result = append(result, obj)
	}

	return utils.SuccessResponse(c, result, fiber.StatusOK)
}
