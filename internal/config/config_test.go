package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var managedKeys = []string{
	"SERVER_PORT", "ENVIRONMENT", "ALLOW_ORIGINS",
	"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME",
	"GCS_BUCKET_NAME", "GOOGLE_CLOUD_PROJECT", "GCS_CREDENTIALS_PATH",
	"GOTENBERG_URL", "GOTENBERG_TIMEOUT",
	"CONTRACT_TEMPLATE_PATH", "CONTRACT_OUTPUT_DIR",
	"UPLOAD_DIR", "UPLOAD_MAX_AGE", "CEP_BASE_URL", "CEP_TIMEOUT", "LOG_LEVEL",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range managedKeys {
		t.Setenv(k, "")
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.True(t, cfg.Server.IsDevelopment())
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:3001"}, cfg.Server.AllowOrigins)
	assert.False(t, cfg.Database.Enabled())
	assert.False(t, cfg.GCS.Enabled())
	assert.False(t, cfg.Gotenberg.Enabled())
	assert.Equal(t, "templates/contrato_som_banda.docx", cfg.Contract.TemplatePath)
	assert.Equal(t, "contratos_gerados", cfg.Contract.OutputDir)
	assert.Equal(t, "uploads", cfg.Upload.Dir)
	assert.Equal(t, 24*time.Hour, cfg.Upload.MaxAge)
	assert.Equal(t, "https://viacep.com.br/ws", cfg.CEP.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.CEP.Timeout)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestFromEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("ALLOW_ORIGINS", " https://a.example , ,https://b.example")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("GCS_BUCKET_NAME", "contratos")
	t.Setenv("GOTENBERG_URL", "http://gotenberg:3000")
	t.Setenv("UPLOAD_MAX_AGE", "2h")
	t.Setenv("CEP_BASE_URL", "http://cep.local/ws/")
	t.Setenv("ENVIRONMENT", "production")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowOrigins)
	assert.False(t, cfg.Server.IsDevelopment())
	assert.True(t, cfg.Database.Enabled())
	assert.True(t, cfg.GCS.Enabled())
	assert.True(t, cfg.Gotenberg.Enabled())
	assert.Equal(t, 2*time.Hour, cfg.Upload.MaxAge)
	assert.Equal(t, "http://cep.local/ws", cfg.CEP.BaseURL)
}

func TestFromEnvRejectsBadDurations(t *testing.T) {
	clearEnv(t)
	t.Setenv("CEP_TIMEOUT", "soon")
	_, err := FromEnv()
	assert.ErrorContains(t, err, "CEP_TIMEOUT")

	t.Setenv("CEP_TIMEOUT", "")
	t.Setenv("UPLOAD_MAX_AGE", "-1h")
	_, err = FromEnv()
	assert.ErrorContains(t, err, "UPLOAD_MAX_AGE")
}

func TestDSN(t *testing.T) {
	tcp := DatabaseConfig{Host: "db", Port: "3306", User: "u", Password: "p", DBName: "n"}
	assert.Equal(t, "u:p@tcp(db:3306)/n?charset=utf8mb4&parseTime=True&loc=Local", tcp.DSN())

	socket := DatabaseConfig{Host: "/cloudsql/x", User: "u", Password: "p", DBName: "n"}
	assert.Equal(t, "u:p@unix(/cloudsql/x)/n?charset=utf8mb4&parseTime=True&loc=Local", socket.DSN())
}
