package config

import (
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_DATABASE", "cheminova.db")
	t.Setenv("BASE_PATH", "")
	t.Setenv("MEDIA_URL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.BasePath != "/" {
		t.Errorf("Expected base path '/', got %q", cfg.BasePath)
	}
	if cfg.MediaURL != "/media/" {
		t.Errorf("Expected media url '/media/', got %q", cfg.MediaURL)
	}
	if cfg.DBType != "sqlite" {
		t.Errorf("Expected sqlite default, got %q", cfg.DBType)
	}
	if cfg.AuthorizerEnabled() {
		t.Error("Expected authorizer to be disabled without AUTHZ_URL")
	}
	if got := cfg.APIPath("/image-auth"); got != "/api/image-auth" {
		t.Errorf("Unexpected api path %q", got)
	}
}

func TestLoadDefaultsSQLiteDatabase(t *testing.T) {
	t.Setenv("DB_TYPE", "")
	t.Setenv("DB_DATABASE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DBDatabase != "cheminova.db" {
		t.Errorf("Expected cheminova.db, got %q", cfg.DBDatabase)
	}

	t.Setenv("DB_TYPE", "sqlite-pure")
	if cfg, err = Load(); err != nil || cfg.DBDatabase != "cheminova.db" {
		t.Errorf("Expected cheminova.db for sqlite-pure, got %v %v", cfg, err)
	}
}

func TestLoadBasePathDerivesMediaURL(t *testing.T) {
	t.Setenv("DB_DATABASE", "cheminova.db")
	t.Setenv("BASE_PATH", "cms")
	t.Setenv("MEDIA_URL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.BasePath != "/cms/" {
		t.Errorf("Expected normalized base path '/cms/', got %q", cfg.BasePath)
	}
	if cfg.MediaURL != "/cms/media/" {
		t.Errorf("Expected media url '/cms/media/', got %q", cfg.MediaURL)
	}
}

func TestLoadCORSOrigins(t *testing.T) {
	t.Setenv("DB_DATABASE", "cheminova.db")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173, ,https://example.org")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(cfg.CORSAllowedOrigins) != 2 {
		t.Fatalf("Expected 2 origins, got %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{
			name: "missing database",
			env:  map[string]string{"DB_DATABASE": "", "DB_TYPE": "postgres"},
			want: "DBDatabase",
		},
		{
			name: "unsupported database type",
			env:  map[string]string{"DB_DATABASE": "x", "DB_TYPE": "oracle"},
			want: "DBType",
		},
		{
			name: "authorizer url without client id",
			env:  map[string]string{"DB_DATABASE": "x", "AUTHZ_URL": "http://authorizer:8080"},
			want: "AuthzClientID",
		},
		{
			name: "unknown log level",
			env:  map[string]string{"DB_DATABASE": "x", "LOG_LEVEL": "verbose"},
			want: "LogLevel",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			if err == nil {
				t.Fatal("Expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error mentioning %s, got %v", tt.want, err)
			}
		})
	}
}
