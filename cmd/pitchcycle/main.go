package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/pitchcycle/internal/cli"
	"github.com/alexanderramin/pitchcycle/internal/db"
	"github.com/alexanderramin/pitchcycle/internal/intelligence"
	"github.com/alexanderramin/pitchcycle/internal/library"
	"github.com/alexanderramin/pitchcycle/internal/llm"
	"github.com/alexanderramin/pitchcycle/internal/periodization"
	"github.com/alexanderramin/pitchcycle/internal/repository"
	"github.com/alexanderramin/pitchcycle/internal/service"
	"github.com/alexanderramin/pitchcycle/internal/training"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.pitchcycle/pitchcycle.db
	dbPath := os.Getenv("PITCHCYCLE_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".pitchcycle", "pitchcycle.db")
	}

	// Optional drill library override; empty uses the embedded library.
	libraryPath := os.Getenv("PITCHCYCLE_LIBRARY")

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	catalogue, err := library.LoadCatalogue(libraryPath)
	if err != nil {
		return fmt.Errorf("loading drill library: %w", err)
	}

	// Wire repositories
	teamRepo := repository.NewSQLiteTeamRepo(database)
	planRepo := repository.NewSQLitePlanRepo(database)
	fixtureRepo := repository.NewSQLiteFixtureRepo(database)

	tun := periodization.DefaultTunables()

	// Model-assisted layers only when the LLM is enabled; deterministic
	// periodization and library selection otherwise.
	llmCfg := llm.LoadConfig()
	var assigner intelligence.LoadAssigner = intelligence.DeterministicAssigner{Tunables: tun}
	var summaries intelligence.SummaryService = intelligence.NewSummaryService(nil, false)
	var generator training.DrillGenerator
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		client := llm.NewOllamaClient(llmCfg, observer)
		assigner = intelligence.ModelAssigner{Client: client, Tunables: tun}
		summaries = intelligence.NewSummaryService(client, true)
		generator = intelligence.NewDrillService(client)
	}

	teams := service.NewTeamService(teamRepo)
	app := &cli.App{
		Plans:       service.NewPlanService(planRepo, fixtureRepo, teams, catalogue, assigner, summaries, generator, tun),
		Fixtures:    service.NewFixtureService(fixtureRepo, teams, tun),
		Teams:       teams,
		LibraryPath: libraryPath,
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
