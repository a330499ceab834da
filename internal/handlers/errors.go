package handlers

import (
	"errors"

	"github.com/artcom/cheminova-backend/internal/logging"
	"github.com/artcom/cheminova-backend/internal/types"
	"github.com/artcom/cheminova-backend/internal/utils"
	"github.com/gofiber/fiber/v2"
)

// ErrorHandler renders errors returned by handlers and middleware
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()
	errorType := "unknown"

	var fe *fiber.Error
	var ce *types.CustomError
	switch {
	case errors.As(err, &ce):
		code, message, errorType = ce.Code, ce.Message, ce.Type
	case errors.As(err, &fe):
		code, message = fe.Code, fe.Message
	}

	if code >= fiber.StatusInternalServerError {
		log := logging.FromFiber(c)
		log.Error().Err(err).Str("url", c.OriginalURL()).Msg("Request failed")
	}

	return utils.ErrorResponse(c, message, code, errorType)
}

// NotFound is the catch all handler for unknown routes
func NotFound(c *fiber.Ctx) error {
	return utils.NotFoundResponse(c, "[404] Resource Not Found")
}
