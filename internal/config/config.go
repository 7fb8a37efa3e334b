// internal/config/config.go
package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"availbuilder/internal/logger"
)

// Variables available everywhere
var (
	baseDir       string
	dataDirectory string
	logsDirectory string

	// Data file paths
	catalogPath   string
	overridesPath string
	outputPath    string
	historyDBPath string

	LogFileFormat string
)

// Default data file names, matching what the frontend expects to fetch.
const (
	DefaultCatalogFile   = "catalog.json"
	DefaultOverridesFile = "overrides.json"
	DefaultOutputFile    = "availability.json"
	DefaultHistoryDBFile = "availability_history.db"
)

// HistoryDisabled is the sentinel value of HISTORY_DB_FILE that turns off
// run-history recording entirely.
const HistoryDisabled = "off"

//
// --- Utility Helpers ---
//

// Helper: get a setting based on ENVIRONMENT (dev or prod)
func GetEnvBasedSetting(base string) string {
	env := os.Getenv("ENVIRONMENT")
	if env == "" {
		env = "dev"
	}
	if v := os.Getenv(fmt.Sprintf("%s_%s", base, strings.ToUpper(env))); v != "" {
		return v
	}
	return os.Getenv(base)
}

// Helper: log which environment is running
func LogCurrentEnvironment() {
	env := os.Getenv("ENVIRONMENT")
	if env == "" {
		env = "dev"
	}

	if env == "dev" {
		logger.LogInfo("Running in development environment")
	} else {
		logger.LogInfo("Running in production environment")
	}
}

//
// --- Loaders ---
//

// LoadEnv reads .env file
func LoadEnv() {
	wd, err := os.Getwd()
	if err != nil {
		log.Printf("Could not determine working directory: %v", err)
	} else {
		log.Printf("Current working directory: %s", wd)
	}

	err = godotenv.Load(".env")
	if err != nil {
		log.Printf("No .env file found in %s. Using system environment variables.", wd)
	} else {
		log.Printf("Loaded environment variables from .env file in %s", wd)
	}
}

// LoggerConfig returns a logger.Config struct populated from environment
func LoggerConfig() logger.Config {
	logDir := GetEnvBasedSetting("LOGS_DIRECTORY")
	if logDir == "" {
		logDir = "./logs"
	}

	logFormat := GetEnvBasedSetting("LOG_FILE_FORMAT")
	if logFormat == "" {
		logFormat = "builder_%s.log"
	}

	timezone := os.Getenv("TIME_ZONE")
	if timezone == "" {
		timezone = "Local"
	}

	return logger.Config{
		LogsDirectory: logDir,
		LogFileFormat: logFormat,
		TimeZone:      timezone,
	}
}

// ConfigurePaths sets up folders and paths. With no environment set, every
// path lands under ./data so the tool keeps working with zero configuration.
func ConfigurePaths() {
	wd, err := os.Getwd()
	if err != nil {
		logger.LogFatal("Failed to get working directory: %v", err)
	}
	baseDir = wd

	dataDir := GetEnvBasedSetting("DATA_DIRECTORY")
	if dataDir != "" {
		dataDirectory = dataDir
	} else {
		dataDirectory = filepath.Join(baseDir, "data")
	}

	logsDir := GetEnvBasedSetting("LOGS_DIRECTORY")
	if logsDir != "" {
		logsDirectory = logsDir
	} else {
		logsDirectory = filepath.Join(baseDir, "logs")
	}

	catalogPath = resolveDataFile("CATALOG_FILE", DefaultCatalogFile)
	overridesPath = resolveDataFile("OVERRIDES_FILE", DefaultOverridesFile)
	outputPath = resolveDataFile("OUTPUT_FILE", DefaultOutputFile)

	history := GetEnvBasedSetting("HISTORY_DB_FILE")
	switch {
	case history == HistoryDisabled:
		historyDBPath = ""
	case history != "":
		historyDBPath = resolvePath(history)
	default:
		historyDBPath = filepath.Join(dataDirectory, DefaultHistoryDBFile)
	}

	LogFileFormat = filepath.Join(logsDirectory, "builder_%s.log")
}

// resolveDataFile looks up an env override for a data file; relative values
// are taken relative to the data directory.
func resolveDataFile(envKey, defaultName string) string {
	v := GetEnvBasedSetting(envKey)
	if v == "" {
		return filepath.Join(dataDirectory, defaultName)
	}
	return resolvePath(v)
}

func resolvePath(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dataDirectory, p)
}

//
// --- Getters (exported) ---
//

func DataDirectory() string {
	return dataDirectory
}

func LogsDirectory() string {
	return logsDirectory
}

func CatalogPath() string {
	return catalogPath
}

func OverridesPath() string {
	return overridesPath
}

func OutputPath() string {
	return outputPath
}

// HistoryDBPath returns the sqlite history file path, or "" when run-history
// recording is disabled.
func HistoryDBPath() string {
	return historyDBPath
}
