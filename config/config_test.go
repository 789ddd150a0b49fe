package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 200.0, cfg.Territory.CheckInRadiusMeters)
	assert.Equal(t, 100.0, cfg.Territory.CaptureRadiusMeters)
	assert.Equal(t, 60*time.Second, cfg.Territory.CheckInCooldown)
	assert.Equal(t, 5*time.Minute, cfg.Territory.PresenceWindow)
	assert.Equal(t, 7*24*time.Hour, cfg.Territory.LeaderboardWindow)
	assert.Equal(t, 2, cfg.Territory.ComboMinTeammates)
	assert.Equal(t, 1.5, cfg.Territory.ComboMultiplier)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "test-secret")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DATABASE_HOST", "db.internal")
	t.Setenv("TERRITORY_CHECKIN_COOLDOWN", "90s")
	t.Setenv("TERRITORY_CHECKIN_RADIUS_METERS", "350")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 90*time.Second, cfg.Territory.CheckInCooldown)
	assert.Equal(t, 350.0, cfg.Territory.CheckInRadiusMeters)
}

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsBadPolicy(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "test-secret")
	t.Setenv("TERRITORY_COMBO_MULTIPLIER", "0.5")

	_, err := Load()
	assert.Error(t, err)
}

func TestEngineConfigKeepsRewardDefaults(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "test-secret")
	t.Setenv("TERRITORY_CAPTURE_RADIUS_METERS", "150")

	cfg, err := Load()
	require.NoError(t, err)

	engine := cfg.EngineConfig()
	assert.Equal(t, 150.0, engine.CaptureRadiusMeters)
	assert.Equal(t, 10, engine.CheckInReward.Fuel)
	assert.Equal(t, 50, engine.CaptureReward.Respect)
	assert.Equal(t, 100, engine.CaptureReward.XP)
}
