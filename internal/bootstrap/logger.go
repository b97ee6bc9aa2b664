package bootstrap

import (
	"io"
	"log/slog"

	"github.com/osse101/BattleArena_Go/internal/config"
	"github.com/osse101/BattleArena_Go/internal/logger"
)

// SetupLogger installs the default logger from cfg and logs the startup
// banner. With fileOnly set records go to LOG_FILE alone, leaving the
// terminal to the game. The returned Closer releases the log file.
func SetupLogger(cfg *config.Config, fileOnly bool) (io.Closer, error) {
	// source locations only in dev
	addSource := cfg.Environment == config.EnvDev

	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	)
	loggerConfig.File = cfg.LogFile
	loggerConfig.FileOnly = fileOnly && cfg.LogFile != ""

	closer, err := logger.InitLogger(loggerConfig)
	if err != nil {
		return nil, err
	}

	slog.Info(LogMsgStarting,
		"environment", cfg.Environment,
		"log_level", cfg.LogLevel,
		"version", cfg.Version)

	slog.Debug(LogMsgConfigurationLoaded,
		"catalog_source", cfg.CatalogSource,
		"catalog_path", cfg.CatalogPath,
		"max_rounds", cfg.MaxRounds,
		"port", cfg.Port)

	for _, w := range cfg.Warnings() {
		slog.Warn(LogMsgConfigWarning, "warning", w)
	}

	return closer, nil
}
