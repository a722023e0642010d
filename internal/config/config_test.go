package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
api:
  environment: test
  port: "9000"
  jwt_signing_key: "0123456789abcdef0123"
gin:
  mode: test
report:
  low_stock_threshold: 7
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	conf, err := Load(writeConfig(t, testConfig))
	require.NoError(t, err)

	assert.Equal(t, "9000", conf.API.Port)
	assert.Equal(t, "test", conf.Gin.Mode)
	assert.Equal(t, 24*time.Hour, conf.API.TokenTTL)
	assert.Equal(t, 7, conf.Report.LowStockThreshold)
	assert.Equal(t, "localhost", conf.Postgres.Host)
	assert.Equal(t, []string{"*"}, conf.API.AllowedCORSDomains)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("API_PORT", "9100")
	t.Setenv("POSTGRES_HOST", "db.internal")

	conf, err := Load(writeConfig(t, testConfig))
	require.NoError(t, err)

	assert.Equal(t, "9100", conf.API.Port)
	assert.Equal(t, "db.internal", conf.Postgres.Host)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"short signing key", "api:\n  jwt_signing_key: short\n"},
		{"bad log level", testConfig + "log:\n  level: loud\n"},
		{"bad threshold", "api:\n  jwt_signing_key: \"0123456789abcdef0123\"\nreport:\n  low_stock_threshold: 0\n"},
		{"bad admin email", "api:\n  jwt_signing_key: \"0123456789abcdef0123\"\nadmin:\n  email: nope\n  password: x\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.content))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}

func TestPostgresConfig_DSN(t *testing.T) {
	c := PostgresConfig{Host: "h", Port: "1", User: "u", Password: "p", DB: "d", SSLMode: "disable"}

	assert.Equal(t, "host=h port=1 user=u password=p dbname=d sslmode=disable TimeZone=UTC", c.DSN())
}
