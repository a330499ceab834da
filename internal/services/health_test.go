package services_test

import (
	"context"
	"testing"

	"github.com/artcom/cheminova-backend/internal/config"
	"github.com/artcom/cheminova-backend/internal/services"
	"github.com/artcom/cheminova-backend/internal/testutil"
)

func TestHealthCheck(t *testing.T) {
	db := testutil.NewDB(t)

	t.Run("database only", func(t *testing.T) {
		cfg := &config.Config{DBType: "sqlite-pure", DBDatabase: "test.db"}
		result := services.HealthCheck(context.Background(), cfg, db)
		if result.Status != "healthy" {
			t.Errorf("Expected healthy, got %q (%s)", result.Status, result.ErrorMessage)
		}
		if result.Database != "ok" || result.Authorizer != "disabled" {
			t.Errorf("Unexpected result %+v", result)
		}
	})

	t.Run("unreachable authorizer", func(t *testing.T) {
		cfg := &config.Config{
			DBType:        "sqlite-pure",
			DBDatabase:    "test.db",
			AuthzURL:      "http://127.0.0.1:1",
			AuthzClientID: "cheminova",
		}
		result := services.HealthCheck(context.Background(), cfg, db)
		if result.Status != "unhealthy" || result.Authorizer != "unreachable" {
			t.Errorf("Expected unreachable authorizer, got %+v", result)
		}
	})
}

func TestValidateSessionWithoutClient(t *testing.T) {
	if services.IsAuthorizerInitialized() {
		t.Skip("Authorizer initialized by another test")
	}
	if _, err := services.ValidateSession("cookie"); err == nil {
		t.Error("Expected an error before the authorizer is initialized")
	}
}
