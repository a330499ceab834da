package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/artcom/cheminova-backend/internal/config"
	"github.com/artcom/cheminova-backend/internal/handlers"
	"github.com/artcom/cheminova-backend/internal/middleware"
	"github.com/artcom/cheminova-backend/internal/testutil"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const mediaURL = "/media/"

// cookieSessions treats the cookie value as the user id
func cookieSessions(cookie string) (string, error) {
	if cookie == "expired" {
		return "", errors.New("session is not valid")
	}
	return cookie, nil
}

func testConfig() *config.Config {
	return &config.Config{
		BasePath: "/",
		MediaURL: mediaURL,
		SiteURL:  "https://cheminova.example.org",
	}
}

func setupApp(t *testing.T) (*fiber.App, *gorm.DB, *testutil.Fixture) {
	t.Helper()
	db := testutil.NewDB(t)
	f := testutil.Seed(t, db)

	app := fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler})
	handlers.Register(app, testConfig(), db, middleware.SessionWith(cookieSessions))
	app.Use(handlers.NotFound)

	return app, db, f
}

func get(t *testing.T, app *fiber.App, target, user string, header map[string]string) *http.Response {
	t.Helper()
	req := httptest.NewRequest("GET", target, nil)
	if user != "" {
		req.Header.Set("Cookie", middleware.SessionCookie+"="+user)
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	return out
}

func TestHealth(t *testing.T) {
	app, _, _ := setupApp(t)

	resp := get(t, app, "/health", "", nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}
}

func TestUnknownRoute(t *testing.T) {
	app, _, _ := setupApp(t)

	resp := get(t, app, "/nowhere", "", nil)
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("Expected status 404, got %d", resp.StatusCode)
	}
}
