package logger

import (
	"log/slog"
	"strings"

	"github.com/osse101/HypixelVerify_Go/internal/config"
)

// Config selects the slog handler and the attributes stamped on every record.
type Config struct {
	Level       string
	Format      string
	ServiceName string
	Version     string
	Environment string
	// AddSource includes file:line, only wanted while developing
	AddSource bool
}

// FromAppConfig derives the handler settings from the bot configuration.
func FromAppConfig(cfg *config.Config) Config {
	return Config{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: DefaultServiceName,
		Version:     cfg.Version,
		Environment: cfg.Environment,
		AddSource:   cfg.Environment == EnvironmentDev,
	}
}

// LogLevel maps the configured name onto a slog level; unknown names mean info.
func (c Config) LogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn, LogLevelWarning:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (c Config) isJSON() bool {
	return strings.EqualFold(c.Format, LogFormatJSON)
}

func (c Config) baseAttributes() []any {
	return []any{
		slog.String(AttrKeyService, c.ServiceName),
		slog.String(AttrKeyVersion, c.Version),
		slog.String(AttrKeyEnvironment, c.Environment),
	}
}
