// main.go
package main

import (
	"log"

	"availbuilder/internal/availability"
	"availbuilder/internal/config"
	"availbuilder/internal/data"
	"availbuilder/internal/logger"
)

func main() {
	// Step 1: Setup configuration first
	config.LoadEnv()
	config.ConfigurePaths()

	// Step 2: Setup logging
	loggerConfig := config.LoggerConfig()
	if err := logger.SetupLogger(loggerConfig); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// Only NOW is logging safe to use!
	logger.LogInfo("Environment and paths loaded. Logger ready.")
	config.LogCurrentEnvironment()

	// Step 3: Open the run-history database (best-effort, optional)
	historyReady := false
	if dbPath := config.HistoryDBPath(); dbPath != "" {
		if err := data.InitDB(dbPath); err != nil {
			logger.LogWarn("Run history disabled: %v", err)
		} else if err := data.CreateTables(); err != nil {
			logger.LogWarn("Run history disabled: %v", err)
		} else {
			historyReady = true
			defer data.CloseDB()
		}
	} else {
		logger.LogInfo("Run history disabled via configuration")
	}

	// Step 4: Build and write the availability file
	builder := &availability.Builder{
		CatalogPath:   config.CatalogPath(),
		OverridesPath: config.OverridesPath(),
		OutputPath:    config.OutputPath(),
	}

	doc, err := builder.Build()
	if err != nil {
		logger.LogFatal("Failed to build availability: %v", err)
	}

	// Step 5: Record the run. Failures here never undo a written output file.
	if historyReady {
		runID, err := data.RecordRun(doc, config.OutputPath())
		if err != nil {
			logger.LogWarn("Failed to record run history: %v", err)
		} else {
			logger.LogInfo("Recorded run %s in history", runID)
		}
	}
}
