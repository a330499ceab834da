package middleware

import (
	"sync"

	"github.com/artcom/cheminova-backend/internal/imageauth"
	"github.com/artcom/cheminova-backend/internal/logging"
	"github.com/artcom/cheminova-backend/internal/services"
	"github.com/artcom/cheminova-backend/internal/types"
	"github.com/gofiber/fiber/v2"
)

// SessionCookie is the Authorizer session cookie
const SessionCookie = "cookie_session"

const principalKey = "principal"

// SessionValidator resolves a session cookie to a user id
type SessionValidator func(cookie string) (string, error)

var warnOnce sync.Once

// Session resolves the caller from the Authorizer session cookie. It never
// rejects: callers without a valid session continue as anonymous.
func Session() fiber.Handler {
	return SessionWith(authorizerSession)
}

// SessionWith is Session with a custom validator
func SessionWith(validate SessionValidator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal := imageauth.Anonymous()

		if cookie := c.Cookies(SessionCookie); cookie != "" {
			userID, err := validate(cookie)
			if err != nil {
				log := logging.FromFiber(c)
				log.Debug().Err(err).Msg("Session rejected, continuing as anonymous")
			} else {
				principal = imageauth.Authenticated(userID)
			}
		}

		SetPrincipal(c, principal)
		return c.Next()
	}
}

// AuthUser rejects requests without a valid session. Session must run first.
func AuthUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !PrincipalFrom(c).IsAuthenticated() {
			return &types.CustomError{
				Code:    fiber.StatusForbidden,
				Message: "Authorizer cookie \"" + SessionCookie + "\" missing or invalid",
				Type:    "images.authorization.user",
			}
		}
		return c.Next()
	}
}

// SetPrincipal stores the caller in the request locals
func SetPrincipal(c *fiber.Ctx, p imageauth.Principal) {
	c.Locals(principalKey, p)
}

// PrincipalFrom returns the caller stored by Session, anonymous if none
func PrincipalFrom(c *fiber.Ctx) imageauth.Principal {
	if p, ok := c.Locals(principalKey).(imageauth.Principal); ok {
		return p
	}
	return imageauth.Anonymous()
}

func authorizerSession(cookie string) (string, error) {
	if !services.IsAuthorizerInitialized() {
		warnOnce.Do(func() {
			logging.Warn().Msg("Authorizer not configured, every caller is anonymous")
		})
		return "", services.ErrAuthorizerNotInitialized
	}

	user, err := services.ValidateSession(cookie)
	if err != nil {
		return "", err
	}
	return user.ID, nil
}
