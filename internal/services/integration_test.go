package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/artcom/cheminova-backend/internal/config"
	"github.com/artcom/cheminova-backend/internal/database"
	"github.com/artcom/cheminova-backend/internal/imageauth"
	"github.com/artcom/cheminova-backend/internal/services"
	"github.com/artcom/cheminova-backend/internal/testutil"
	"github.com/docker/go-connections/nat"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestImageAuthPostgres runs the repository queries against a real PostgreSQL
func TestImageAuthPostgres(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping container test in short mode")
	}

	ctx := context.Background()
	pgPort, err := nat.NewPort("tcp", "5432")
	if err != nil {
		t.Fatalf("Failed to create port: %v", err)
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{string(pgPort)},
			Env: map[string]string{
				"POSTGRES_USER":     "cheminova",
				"POSTGRES_PASSWORD": "cheminova",
				"POSTGRES_DB":       "cheminova",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Skipf("Docker not available: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("Failed to terminate postgres: %v", err)
		}
	})

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}
	mapped, err := container.MappedPort(ctx, pgPort)
	if err != nil {
		t.Fatalf("Failed to get mapped port: %v", err)
	}

	cfg := &config.Config{
		DBType:            "postgres",
		DBHost:            host,
		DBPort:            mapped.Port(),
		DBDatabase:        "cheminova",
		DBUser:            "cheminova",
		DBPassword:        "cheminova",
		DBConnectionLimit: 2,
		LogLevel:          "warn",
	}
	db, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("Failed to connect: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	f := testutil.Seed(t, db)

	repo := services.NewRepository(db)
	checker := imageauth.NewChecker("/media/", repo, repo)

	tests := []struct {
		name      string
		file      string
		principal imageauth.Principal
		allowed   bool
	}{
		{"anonymous published", f.PublishedImage.File, imageauth.Anonymous(), true},
		{"anonymous approved rendition", f.RenditionOf(f.ApprovedImage).File, imageauth.Anonymous(), true},
		{"anonymous not approved", f.NotApprovedImage.File, imageauth.Anonymous(), false},
		{"editor unpublished rendition", f.RenditionOf(f.UnpublishedImage).File, imageauth.Authenticated(testutil.EditorID), true},
		{"editor not approved", f.NotApprovedImage.File, imageauth.Authenticated(testutil.EditorID), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := checker.Check(ctx, "/media/"+tt.file, tt.principal)
			if tt.allowed && err != nil {
				t.Errorf("Expected allow, got %v", err)
			}
			if !tt.allowed && err == nil {
				t.Error("Expected deny")
			}
		})
	}
}
