package cli

import (
	"github.com/alexanderramin/pitchcycle/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to the service interfaces used by CLI commands.
type App struct {
	Plans    service.PlanService
	Fixtures service.FixtureService
	Teams    service.TeamService

	// LibraryPath is the drill library override, empty for the embedded one.
	LibraryPath string
}

// NewRootCmd creates the top-level "pitchcycle" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "pitchcycle",
		Short: "Fixture-aware training plan generator",
	}

	root.AddCommand(
		newPlanCmd(app),
		newFixtureCmd(app),
		newLibraryCmd(app),
		newTeamCmd(app),
	)

	return root
}
