package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"DB_HOST", "DB_PORT", "JWT_EXPIRY", "LEADERBOARD_TOP_N", "SESSION_IDLE_TTL", "PORT"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, 12*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, 10, cfg.LeaderboardTopN)
	assert.Equal(t, 2*time.Hour, cfg.SessionIdleTTL)
	assert.Equal(t, "8080", cfg.Port)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("JWT_EXPIRY", "30m")
	t.Setenv("LEADERBOARD_TOP_N", "25")
	t.Setenv("SESSION_IDLE_TTL", "15m")

	cfg := Load()

	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, 30*time.Minute, cfg.JWTExpiry)
	assert.Equal(t, 25, cfg.LeaderboardTopN)
	assert.Equal(t, 15*time.Minute, cfg.SessionIdleTTL)
}

func TestLoadBadValuesFallBack(t *testing.T) {
	t.Setenv("JWT_EXPIRY", "not-a-duration")
	t.Setenv("LEADERBOARD_TOP_N", "-3")

	cfg := Load()

	assert.Equal(t, 12*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, 10, cfg.LeaderboardTopN)
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBHost:     "db",
		DBPort:     "5433",
		DBUser:     "app",
		DBPassword: "secret",
		DBName:     "megawatt_db",
		DBSSLMode:  "require",
	}
	assert.Equal(t,
		"host=db user=app password=secret dbname=megawatt_db port=5433 sslmode=require TimeZone=UTC",
		cfg.DSN())
}
