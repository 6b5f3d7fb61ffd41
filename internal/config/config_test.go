package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FileWithEnvExpansion(t *testing.T) {
	t.Setenv("TEST_DB_PASSWORD", "s3cret")
	t.Setenv(jwtSecretEnv, "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: "8081"
database:
  host: db
  password: ${TEST_DB_PASSWORD}
auth:
  jwt_secret: from-file
  verification_method: link
upload:
  image_max_bytes: 1024
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Server.Port)
	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, "s3cret", cfg.Database.Password)
	assert.Equal(t, "from-file", cfg.Auth.JWTSecret)
	assert.Equal(t, "link", cfg.Auth.VerificationMethod)
	assert.Equal(t, int64(1024), cfg.Upload.ImageMaxBytes)
	assert.Equal(t, int64(10<<20), cfg.Upload.DocumentMaxBytes)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "http://localhost:8081/uploads", cfg.Upload.PublicBaseURL)
}

func TestLoad_MissingFileUsesDefaultsAndEnv(t *testing.T) {
	t.Setenv(jwtSecretEnv, "env-secret")
	t.Setenv(databaseURLEnv, "postgres://u:p@h:5432/d")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, "postgres://u:p@h:5432/d", cfg.Database.DSN())
	assert.Equal(t, "otp", cfg.Auth.VerificationMethod)
	assert.Equal(t, 30*time.Second, cfg.Upload.ImgBBTimeout)
	assert.Equal(t, int64(5<<20), cfg.Upload.ImageMaxBytes)
}

func TestLoad_RequiresSecret(t *testing.T) {
	t.Setenv(jwtSecretEnv, "")

	_, err := Load("")
	assert.Error(t, err)
}

func TestLoad_RejectsUnknownVerificationMethod(t *testing.T) {
	t.Setenv(jwtSecretEnv, "x")
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("auth:\n  verification_method: sms\n"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{Host: "h", Port: 5433, User: "u", Password: "p", DBName: "n", SSLMode: "disable", TimeZone: "UTC"}
	assert.Equal(t, "host=h port=5433 user=u password=p dbname=n sslmode=disable TimeZone=UTC application_name=newsportal", d.DSN())
}
