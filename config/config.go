package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/turfwars/api-go/territory"
)

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// DatabaseConfig holds PostgreSQL connection and pool configuration.
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
}

// AuthConfig holds JWT verification configuration.
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
}

// TerritoryConfig holds the policy knobs of the territory engine. These are
// tuning parameters, not structure: all of them can change per environment
// without touching the engine.
type TerritoryConfig struct {
	CheckInRadiusMeters float64       `mapstructure:"checkin_radius_meters"`
	CaptureRadiusMeters float64       `mapstructure:"capture_radius_meters"`
	CheckInCooldown     time.Duration `mapstructure:"checkin_cooldown"`
	PresenceWindow      time.Duration `mapstructure:"presence_window"`
	ComboMinTeammates   int           `mapstructure:"combo_min_teammates"`
	ComboMultiplier     float64       `mapstructure:"combo_multiplier"`
	LeaderboardWindow   time.Duration `mapstructure:"leaderboard_window"`
}

// Config is the root application configuration.
type Config struct {
	Debug     bool            `mapstructure:"debug"`
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Territory TerritoryConfig `mapstructure:"territory"`
}

// Load reads configuration from the environment (optionally seeded from a
// .env file) with sane defaults. Keys map as SECTION_FIELD, e.g.
// TERRITORY_CHECKIN_COOLDOWN or DATABASE_HOST.
func Load() (*Config, error) {
	// .env is optional; production sets real environment variables.
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// AutomaticEnv alone does not surface env values through Unmarshal, so
	// bind each known key explicitly.
	for _, key := range v.AllKeys() {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind env key %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	engine := territory.DefaultConfig()

	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "")
	v.SetDefault("database.dbname", "turfwars")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 20)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", 5*time.Minute)
	v.SetDefault("database.conn_max_idle_time", 10*time.Minute)

	v.SetDefault("auth.jwt_secret", "")

	v.SetDefault("territory.checkin_radius_meters", engine.CheckInRadiusMeters)
	v.SetDefault("territory.capture_radius_meters", engine.CaptureRadiusMeters)
	v.SetDefault("territory.checkin_cooldown", engine.CheckInCooldown)
	v.SetDefault("territory.presence_window", engine.PresenceWindow)
	v.SetDefault("territory.combo_min_teammates", engine.ComboMinTeammates)
	v.SetDefault("territory.combo_multiplier", engine.ComboMultiplier)
	v.SetDefault("territory.leaderboard_window", engine.LeaderboardWindow)
}

// Validate rejects configurations the engine cannot run with.
func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("AUTH_JWT_SECRET is required")
	}
	if c.Territory.CheckInRadiusMeters <= 0 || c.Territory.CaptureRadiusMeters <= 0 {
		return fmt.Errorf("geofence radii must be positive")
	}
	if c.Territory.CheckInCooldown <= 0 {
		return fmt.Errorf("check-in cooldown must be positive")
	}
	if c.Territory.LeaderboardWindow <= 0 {
		return fmt.Errorf("leaderboard window must be positive")
	}
	if c.Territory.ComboMultiplier < 1 {
		return fmt.Errorf("combo multiplier must be at least 1")
	}
	return nil
}

// EngineConfig maps the territory section onto the engine's config,
// keeping the base rewards at their defaults.
func (c *Config) EngineConfig() territory.Config {
	engine := territory.DefaultConfig()
	engine.CheckInRadiusMeters = c.Territory.CheckInRadiusMeters
	engine.CaptureRadiusMeters = c.Territory.CaptureRadiusMeters
	engine.CheckInCooldown = c.Territory.CheckInCooldown
	engine.PresenceWindow = c.Territory.PresenceWindow
	engine.ComboMinTeammates = c.Territory.ComboMinTeammates
	engine.ComboMultiplier = c.Territory.ComboMultiplier
	engine.LeaderboardWindow = c.Territory.LeaderboardWindow
	return engine
}
