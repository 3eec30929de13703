package cmd

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"gooze.dev/pkg/mockprep/internal/domain"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "mockprep"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	dryRunFlagName   = "dry-run"
	openFlagName     = "open"
	formatFlagName   = "format"
	parallelFlagName = "parallel"
	debounceFlagName = "debounce-ms"
	verboseFlagName  = "verbose"
	logFileFlagName  = "log-file"
	debugFlagName    = "debug"

	layoutMainRootKey    = "layout.main_root"
	layoutTestRootKey    = "layout.test_root"
	scaffoldPrefixKey    = "scaffold.prefix"
	scaffoldTemplateKey  = "scaffold.template"
	scaffoldOpenKey      = "scaffold.open"
	editorCommandKey     = "editor.command"
	notifyDebugKey       = "notify.debug"
	listParallelKey      = "list.parallel"
	listFormatKey        = "list.format"
	watchDebounceKey     = "watch.debounce_ms"
	journalDirKey        = "journal.dir"
	journalMaxEntriesKey = "journal.max_entries"

	defaultScaffoldOpen      = false
	defaultNotifyDebug       = false
	defaultListParallel      = 4
	defaultListFormat        = "table"
	defaultWatchDebounceMS   = 500
	defaultJournalDir        = ".mockprep/journal"
	defaultJournalMaxEntries = 20

	envPrefix = "MOCKPREP"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".mockprep.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(layoutMainRootKey, domain.DefaultLayout.MainRoot)
	viper.SetDefault(layoutTestRootKey, domain.DefaultLayout.TestRoot)
	viper.SetDefault(scaffoldPrefixKey, domain.DefaultLayout.Prefix)
	viper.SetDefault(scaffoldTemplateKey, "")
	viper.SetDefault(scaffoldOpenKey, defaultScaffoldOpen)
	viper.SetDefault(editorCommandKey, "")
	viper.SetDefault(notifyDebugKey, defaultNotifyDebug)
	viper.SetDefault(listParallelKey, defaultListParallel)
	viper.SetDefault(listFormatKey, defaultListFormat)
	viper.SetDefault(watchDebounceKey, defaultWatchDebounceMS)
	viper.SetDefault(journalDirKey, defaultJournalDir)
	viper.SetDefault(journalMaxEntriesKey, defaultJournalMaxEntries)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}

		slog.Warn("failed to read config file", "error", err)
	}
}

// layoutFromConfig returns the source layout configured for scaffolding.
func layoutFromConfig() domain.Layout {
	return domain.Layout{
		MainRoot: viper.GetString(layoutMainRootKey),
		TestRoot: viper.GetString(layoutTestRootKey),
		Prefix:   viper.GetString(scaffoldPrefixKey),
	}
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
