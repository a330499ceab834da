package services

import (
	"errors"
	"fmt"
	"sync"

	"github.com/artcom/cheminova-backend/internal/config"
	"github.com/artcom/cheminova-backend/internal/logging"
	"github.com/artcom/cheminova-backend/internal/utils"
	authorizer "github.com/localnerve/authorizer-go"
)

// ErrAuthorizerNotInitialized is returned when sessions are validated before InitAuthorizer succeeded
var ErrAuthorizerNotInitialized = errors.New("authorizer client not initialized")

var (
	authClient *authorizer.AuthorizerClient
	authOnce   sync.Once
	authMu     sync.RWMutex
)

// SessionUser is the signed in user behind a valid session
type SessionUser struct {
	ID string
}

// IsAuthorizerInitialized returns true if the Authorizer client is initialized
func IsAuthorizerInitialized() bool {
	authMu.RLock()
	defer authMu.RUnlock()
	return authClient != nil
}

// InitAuthorizer initializes the Authorizer client (singleton pattern)
func InitAuthorizer(cfg *config.Config) error {
	var initErr error

	authOnce.Do(func() {
		// Ping the Authorizer service first
		if err := utils.PingAuthorizer(cfg.AuthzURL); err != nil {
			initErr = fmt.Errorf("authorizer ping failed: %w", err)
			return
		}

		logging.Info().
			Str("authorizer_url", cfg.AuthzURL).
			Str("client_id", cfg.AuthzClientID).
			Str("redirect_url", cfg.SiteURL).
			Msg("Initializing Authorizer")

		client, err := authorizer.NewAuthorizerClient(cfg.AuthzClientID, cfg.AuthzURL, cfg.SiteURL, nil)
		if err != nil {
			initErr = fmt.Errorf("failed to create authorizer client: %w", err)
			return
		}

		authMu.Lock()
		authClient = client
		authMu.Unlock()
	})

	return initErr
}

// ValidateSession validates a session cookie and returns its user
func ValidateSession(cookie string) (*SessionUser, error) {
	authMu.RLock()
	client := authClient
	authMu.RUnlock()

	if client == nil {
		return nil, ErrAuthorizerNotInitialized
	}

	res, err := client.ValidateSession(&authorizer.ValidateSessionInput{
		Cookie: cookie,
	})
	if err != nil {
		return nil, fmt.Errorf("session validation failed: %w", err)
	}

	// Check if session is valid
	if res == nil || !res.IsValid || res.User == nil || res.User.ID == "" {
		return nil, fmt.Errorf("session is not valid")
	}

	return &SessionUser{ID: res.User.ID}, nil
}
