package handlers

import (
	"errors"
	"fmt"
	"time"

	"github.com/artcom/cheminova-backend/internal/imageauth"
	"github.com/artcom/cheminova-backend/internal/logging"
	"github.com/artcom/cheminova-backend/internal/metrics"
	"github.com/artcom/cheminova-backend/internal/middleware"
	"github.com/artcom/cheminova-backend/internal/utils"
	"github.com/gofiber/fiber/v2"
)

// OriginalURIHeader carries the media URI the proxy wants to serve
const OriginalURIHeader = "X-Original-Uri"

// ImageAuthHandler answers reverse proxy auth subrequests for media files
type ImageAuthHandler struct {
	Checker *imageauth.Checker
}

// CheckPermissions handles GET /api/image-auth
// @Summary Check image access
// @Description Decide whether the caller may fetch the media file named by the X-Original-Uri header.
// @Description Anonymous callers see images used by a live page or in a character's approved collection.
// @Description Signed in callers see images in collections they may change, add, delete or choose.
// @Tags ImageAuth
// @Produce json
// @Param X-Original-Uri header string true "Requested media URI"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 400 {object} utils.MessageResponseStruct
// @Failure 401 {object} utils.MessageResponseStruct
// @Failure 404 {object} utils.MessageResponseStruct
// @Security CookieAuth
// @Router /image-auth [get]
func (h *ImageAuthHandler) CheckPermissions(c *fiber.Ctx) (err error) {
	start := time.Now()
	principal := middleware.PrincipalFrom(c)
	log := logging.FromFiber(c)

	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("Image auth check panicked")
			metrics.RecordImageAuth("bad_request", principal.IsAuthenticated(), time.Since(start))
			err = utils.MessageResponse(c, fiber.StatusBadRequest, fmt.Sprint(r))
		}
	}()

	uri := c.Get(OriginalURIHeader)
	decision, checkErr := h.Checker.Check(c.UserContext(), uri, principal)
	status, message, verdict := respond(checkErr)

	event := log.Debug()
	if status == fiber.StatusBadRequest && !errors.Is(checkErr, imageauth.ErrBadRequest) {
		event = log.Warn()
	}
	event.
		Str("uri", uri).
		Str("kind", string(decision.Kind)).
		Bool("authenticated", principal.IsAuthenticated()).
		Int("status", status).
		Err(checkErr).
		Msg("Image auth decision")

	metrics.RecordImageAuth(verdict, principal.IsAuthenticated(), time.Since(start))
	return utils.MessageResponse(c, status, message)
}

// respond maps a check result to the status, message and metric label of the response.
// Internal errors answer 400 with the error text; the proxy treats them as a denial.
func respond(err error) (int, string, string) {
	switch {
	case err == nil:
		return fiber.StatusOK, "OK", "ok"
	case errors.Is(err, imageauth.ErrBadRequest):
		return fiber.StatusBadRequest, "Bad Request", "bad_request"
	case errors.Is(err, imageauth.ErrNotFound):
		return fiber.StatusNotFound, "Not found", "not_found"
	case errors.Is(err, imageauth.ErrUnauthorized):
		return fiber.StatusUnauthorized, "Unauthorized", "unauthorized"
	default:
		return fiber.StatusBadRequest, err.Error(), "error"
	}
}
