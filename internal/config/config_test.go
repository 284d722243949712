package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DB_DRIVER", "DB_HOST", "DB_PORT", "DB_NAME", "AUTH_BCRYPT_COST", "MINIO_ENDPOINT", "DB_QUERY_TIMEOUT"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Server.Port != "5000" {
		t.Errorf("expected default port 5000, got %s", cfg.Server.Port)
	}
	if cfg.Database.Driver != DriverMySQL {
		t.Errorf("expected default driver %s, got %s", DriverMySQL, cfg.Database.Driver)
	}
	if cfg.Database.QueryTimeout != 10*time.Second {
		t.Errorf("expected default query timeout 10s, got %v", cfg.Database.QueryTimeout)
	}
	if cfg.Auth.BcryptCost != 10 {
		t.Errorf("expected default bcrypt cost 10, got %d", cfg.Auth.BcryptCost)
	}
	if cfg.MinIO.Enabled() {
		t.Error("minio should be disabled without an endpoint")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_MAX_OPEN_CONNS", "42")
	t.Setenv("DB_QUERY_TIMEOUT", "3s")
	t.Setenv("DB_AUTO_MIGRATE", "true")
	t.Setenv("MINIO_ENDPOINT", "localhost:9000")
	t.Setenv("MINIO_USE_SSL", "false")
	t.Setenv("AUTH_BCRYPT_COST", "not-a-number")

	cfg := Load()

	if cfg.Server.Port != "8080" {
		t.Errorf("expected port 8080, got %s", cfg.Server.Port)
	}
	if cfg.Database.Driver != DriverPostgres {
		t.Errorf("expected postgres driver, got %s", cfg.Database.Driver)
	}
	if cfg.Database.MaxOpenConns != 42 {
		t.Errorf("expected 42 open conns, got %d", cfg.Database.MaxOpenConns)
	}
	if cfg.Database.QueryTimeout != 3*time.Second {
		t.Errorf("expected 3s query timeout, got %v", cfg.Database.QueryTimeout)
	}
	if !cfg.Database.AutoMigrate {
		t.Error("expected auto migrate to be enabled")
	}
	if !cfg.MinIO.Enabled() || cfg.MinIO.UseSSL {
		t.Errorf("unexpected minio config: %+v", cfg.MinIO)
	}
	if cfg.Auth.BcryptCost != 10 {
		t.Errorf("invalid int should fall back to default, got %d", cfg.Auth.BcryptCost)
	}
}

func TestGetDSN(t *testing.T) {
	tests := []struct {
		name     string
		driver   string
		contains []string
	}{
		{"mysql", DriverMySQL, []string{"user:secret@tcp(db:3306)/streaming", "parseTime=True"}},
		{"postgres", DriverPostgres, []string{"host=db", "port=3306", "dbname=streaming", "sslmode=disable"}},
		{"sqlite", DriverSQLite, []string{"streaming"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Database: DatabaseConfig{
				Driver:   tt.driver,
				Host:     "db",
				Port:     "3306",
				User:     "user",
				Password: "secret",
				DBName:   "streaming",
				SSLMode:  "disable",
			}}
			dsn := cfg.GetDSN()
			for _, want := range tt.contains {
				if !strings.Contains(dsn, want) {
					t.Errorf("dsn %q does not contain %q", dsn, want)
				}
			}
		})
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{Database: DatabaseConfig{Driver: DriverMySQL, Host: "db", DBName: "streaming"}}
	}

	if err := base().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg := base()
	cfg.Database.Driver = "oracle"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unsupported driver")
	}

	cfg = base()
	cfg.Database.Host = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing host")
	}

	cfg = base()
	cfg.Database.Driver = DriverSQLite
	cfg.Database.Host = ""
	if err := cfg.Validate(); err != nil {
		t.Errorf("sqlite does not need a host: %v", err)
	}

	cfg = base()
	cfg.MinIO.Endpoint = "localhost:9000"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for minio without credentials")
	}
}
