package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/osse101/HypixelVerify_Go/internal/config"
	"github.com/osse101/HypixelVerify_Go/internal/logger"
)

// SetupLogger initializes the application logger with file and stdout output.
// Returns the log file handle (caller must close) and any error encountered.
func SetupLogger(cfg *config.Config) (*os.File, error) {
	return setupLogger(cfg, os.Stdout, time.Now())
}

func setupLogger(cfg *config.Config, stdout io.Writer, now time.Time) (*os.File, error) {
	if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
		return nil, fmt.Errorf("%s: %w", LogMsgFailedCreateLogsDir, err)
	}

	cleanupLogs(cfg.LogDir)

	logFileName := filepath.Join(cfg.LogDir, fmt.Sprintf(LogFileNamePattern, now.Format(LogFileTimestampFormat)))
	logFile, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", LogMsgFailedOpenLogFile, err)
	}

	logger.InitLoggerWithWriter(logger.FromAppConfig(cfg), io.MultiWriter(stdout, logFile))

	slog.Info(LogMsgLoggingInitialized, "log_level", cfg.LogLevel, "log_format", cfg.LogFormat)
	slog.Debug(LogMsgConfigurationLoaded,
		"store_backend", cfg.StoreBackend,
		"port", cfg.Port,
		"verify_channel", cfg.VerifyChannelName,
		"guild_role_enabled", cfg.GuildRoleEnabled())

	return logFile, nil
}

// cleanupLogs removes old session logs so at most LogFileRetentionCount remain
// once the new one is created. Names embed the timestamp, so lexical order is age order.
func cleanupLogs(logDir string) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var logFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), LogFileExtension) {
			logFiles = append(logFiles, entry.Name())
		}
	}
	if len(logFiles) < LogFileRetentionLimit {
		return
	}

	sort.Strings(logFiles)
	for _, name := range logFiles[:len(logFiles)-LogFileRetentionCount] {
		if err := os.Remove(filepath.Join(logDir, name)); err != nil {
			fmt.Fprintf(os.Stderr, LogMsgFailedDeleteOldLog, name, err)
		}
	}
}
