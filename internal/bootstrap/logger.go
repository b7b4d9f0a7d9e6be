package bootstrap

import (
	"log/slog"

	"github.com/LeeSanghyun1212/Item-Simulator/internal/config"
	"github.com/LeeSanghyun1212/Item-Simulator/internal/logger"
)

// SetupLogger installs the process-wide logger from cfg and logs the
// startup banner plus any configuration warnings.
func SetupLogger(cfg *config.Config) *slog.Logger {
	addSource := cfg.Environment == logger.EnvironmentDev

	l := logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		logger.DefaultServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	))

	l.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel, "format", cfg.LogFormat)
	l.Info(LogMsgStartingApplication,
		"environment", cfg.Environment,
		"version", cfg.Version)

	l.Debug(LogMsgConfigurationLoaded,
		"db_host", cfg.DBHost,
		"db_port", cfg.DBPort,
		"db_name", cfg.DBName,
		"port", cfg.Port,
		"max_tx_retries", cfg.MaxTxRetries,
		"lock_timeout", cfg.LockTimeout)

	for _, w := range cfg.Warnings() {
		l.Warn(LogMsgConfigWarning, "warning", w)
	}

	return l
}
