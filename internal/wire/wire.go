// Package wire provides dependency injection for the questlog application.
// It creates singleton services with lazy initialization.
package wire

import (
	"io"
	"log"
	"os"
	"sync"

	cliadapter "github.com/example/questlog/internal/adapters/cli"
	"github.com/example/questlog/internal/adapters/httpapi"
	"github.com/example/questlog/internal/adapters/sqlite"
	"github.com/example/questlog/internal/app"
	"github.com/example/questlog/internal/db"
	"github.com/example/questlog/internal/ports/primary"
)

var (
	checklistService primary.ChecklistService
	rewardService    primary.RewardService
	progressService  primary.ProgressService
	once             sync.Once
)

// ChecklistService returns the singleton ChecklistService instance.
func ChecklistService() primary.ChecklistService {
	once.Do(initServices)
	return checklistService
}

// RewardService returns the singleton RewardService instance.
func RewardService() primary.RewardService {
	once.Do(initServices)
	return rewardService
}

// ProgressService returns the singleton ProgressService instance.
func ProgressService() primary.ProgressService {
	once.Do(initServices)
	return progressService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	database, err := db.GetDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Repository adapters (secondary ports) with injected DB
	gameRepo := sqlite.NewGameRepository(database)
	checklistRepo := sqlite.NewChecklistRepository(database)
	itemRepo := sqlite.NewItemRepository(database)
	rewardRepo := sqlite.NewRewardRepository(database)
	prereqRepo := sqlite.NewPrerequisiteRepository(database)
	trackedRepo := sqlite.NewTrackedRepository(database)
	progressRepo := sqlite.NewProgressRepository(database)
	logWriter := sqlite.NewLogWriterAdapter(sqlite.NewActivityLogRepository(database))

	// Services (primary port implementations)
	checklistService = app.NewChecklistService(gameRepo, checklistRepo, itemRepo, trackedRepo, progressRepo, logWriter)
	rewardService = app.NewRewardService(rewardRepo, itemRepo, prereqRepo, logWriter)
	progressService = app.NewProgressService(trackedRepo, checklistRepo, itemRepo, prereqRepo, rewardRepo, progressRepo, logWriter)
}

// ProgressAdapter returns a new ProgressAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func ProgressAdapter() *cliadapter.ProgressAdapter {
	return ProgressAdapterWithOutput(os.Stdout)
}

// ProgressAdapterWithOutput returns a new ProgressAdapter writing to the
// given output. This variant allows testing or alternate destinations.
func ProgressAdapterWithOutput(out io.Writer) *cliadapter.ProgressAdapter {
	once.Do(initServices)
	return cliadapter.NewProgressAdapter(progressService, out)
}

// ChecklistAdapter returns a new ChecklistAdapter writing to stdout.
func ChecklistAdapter() *cliadapter.ChecklistAdapter {
	return ChecklistAdapterWithOutput(os.Stdout)
}

// ChecklistAdapterWithOutput returns a new ChecklistAdapter writing to the
// given output.
func ChecklistAdapterWithOutput(out io.Writer) *cliadapter.ChecklistAdapter {
	once.Do(initServices)
	return cliadapter.NewChecklistAdapter(checklistService, out)
}

// HTTPServer returns an HTTP API server over the singleton services.
func HTTPServer(logger *log.Logger) *httpapi.Server {
	once.Do(initServices)
	return httpapi.NewServer(progressService, checklistService, rewardService, logger)
}
