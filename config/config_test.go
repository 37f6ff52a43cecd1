package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_ACCESS_SECRET", "access")
	t.Setenv("JWT_REFRESH_SECRET", "refresh")
	t.Setenv("FE_ORIGINS", "http://a.test;http://b.test")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 30*time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, 720*time.Hour, cfg.RefreshTokenTTL)
	assert.Equal(t, "@every 1h", cfg.TokenSweepSchedule)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.FEOrigins)
	assert.Equal(t, 50, cfg.DBMaxConns)
}

func TestLoadRequiresDistinctSecrets(t *testing.T) {
	t.Setenv("JWT_ACCESS_SECRET", "same")
	t.Setenv("JWT_REFRESH_SECRET", "same")

	_, err := Load()
	assert.Error(t, err)
}

func TestDSN(t *testing.T) {
	cfg := &Config{DBUser: "u", DBPass: "p", DBHost: "h:3306", DBName: "blog", DBTLS: true}
	assert.Equal(t, "u:p@tcp(h:3306)/blog?tls=true&parseTime=true", cfg.DSN())
}
