package handlers

import (
	"github.com/artcom/cheminova-backend/internal/config"
	"github.com/artcom/cheminova-backend/internal/services"
	"github.com/artcom/cheminova-backend/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ImagesHandler lists images for the CMS and the character galleries
type ImagesHandler struct {
	DB  *gorm.DB
	Cfg *config.Config
}

// ListImages handles GET /api/images
// @Summary List images
// @Description List every image
// @Tags Images
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /images [get]
func (h *ImagesHandler) ListImages(c *fiber.Ctx) error {
	images, err := services.ListImages(c.UserContext(), h.DB)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "listImages")
	}
	return utils.SuccessResponse(c, imageList(images, imageURL(h.Cfg)), fiber.StatusOK)
}

// CharacterImages handles GET /api/images/:character
// @Summary List a character's images
// @Description List the images in a character's approved and not approved collections
// @Tags Images
// @Produce json
// @Param character path string true "Character slug"
// @Success 200 {array} map[string]interface{}
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /images/{character} [get]
func (h *ImagesHandler) CharacterImages(c *fiber.Ctx) error {
	images, err := services.CharacterImages(c.UserContext(), h.DB, c.Params("character"))
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "characterImages")
	}
	return utils.SuccessResponse(c, imageList(images, imageURL(h.Cfg)), fiber.StatusOK)
}

// ApprovedCharacterImages handles GET /api/images/:character/approved
// @Summary List a character's approved images
// @Description List the images in a character's approved collection
// @Tags Images
// @Produce json
// @Param character path string true "Character slug"
// @Success 200 {array} map[string]interface{}
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /images/{character}/approved [get]
func (h *ImagesHandler) ApprovedCharacterImages(c *fiber.Ctx) error {
	images, err := services.ApprovedCharacterImages(c.UserContext(), h.DB, c.Params("character"))
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "approvedCharacterImages")
	}
	return utils.SuccessResponse(c, imageList(images, imageURL(h.Cfg)), fiber.StatusOK)
}
