package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the bot configuration
type Config struct {
	// Credentials - both required, the bot refuses to start without them
	DiscordToken  string `env:"DISCORD_TOKEN,required,notEmpty"`
	HypixelAPIKey string `env:"HYPIXEL_API_KEY,required,notEmpty"`
	DiscordAppID  string `env:"DISCORD_APP_ID"`

	// Upstream services
	MojangAPIURL   string        `env:"MOJANG_API_URL" envDefault:"https://api.mojang.com" validate:"required,url"`
	HypixelAPIURL  string        `env:"HYPIXEL_API_URL" envDefault:"https://api.hypixel.net" validate:"required,url"`
	SkinServiceURL string        `env:"SKIN_SERVICE_URL" envDefault:"https://visage.surgeplay.com" validate:"required,url"`
	HTTPTimeout    time.Duration `env:"HTTP_TIMEOUT" envDefault:"10s" validate:"gt=0"`

	// Liveness server
	Port int `env:"PORT" envDefault:"3000" validate:"min=1,max=65535"`

	// Verification state storage
	StoreBackend     string `env:"STORE_BACKEND" envDefault:"file" validate:"oneof=file postgres redis"`
	StorePath        string `env:"STORE_PATH" envDefault:"data/verification.json" validate:"required_if=StoreBackend file"`
	DatabaseURL      string `env:"DATABASE_URL" validate:"required_if=StoreBackend postgres"`
	DatabaseMaxConns int32  `env:"DATABASE_MAX_CONNS" envDefault:"4" validate:"min=1"`
	RedisURL         string `env:"REDIS_URL" validate:"required_if=StoreBackend redis"`

	// Discord surface
	VerifyChannelName string `env:"VERIFY_CHANNEL_NAME" envDefault:"verify" validate:"required"`
	VerifiedRole      string `env:"VERIFIED_ROLE" envDefault:"Verified" validate:"required"`
	UnverifiedRole    string `env:"UNVERIFIED_ROLE" envDefault:"Unverified"`
	GuildName         string `env:"GUILD_NAME"`
	GuildRole         string `env:"GUILD_ROLE" envDefault:"Guild Member"`
	StaffRoleName     string `env:"STAFF_ROLE_NAME" envDefault:"Staff" validate:"required"`
	AnnounceChannelID string `env:"ANNOUNCE_CHANNEL_ID"`
	WelcomeChannelID  string `env:"WELCOME_CHANNEL_ID"`
	BackgroundPath    string `env:"BACKGROUND_PATH" envDefault:"assets/background.png"`
	ForceCommandSync  bool   `env:"DISCORD_FORCE_COMMAND_UPDATE"`

	// Verification rules
	Cooldown  time.Duration `env:"COOLDOWN" envDefault:"6h" validate:"gt=0"`
	NoticeTTL time.Duration `env:"NOTICE_TTL" envDefault:"10s" validate:"gt=0"`

	// Logging
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`
	LogDir      string `env:"LOG_DIR" envDefault:"logs"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`
	Version     string `env:"VERSION" envDefault:"dev"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// GuildRoleEnabled reports whether the guild-conditional role is configured
func (c *Config) GuildRoleEnabled() bool {
	return c.GuildName != "" && c.GuildRole != ""
}
