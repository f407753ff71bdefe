package cli

import (
	"fmt"
	"sort"

	"github.com/alexanderramin/pitchcycle/internal/cli/formatter"
	"github.com/alexanderramin/pitchcycle/internal/library"
	"github.com/spf13/cobra"
)

func newLibraryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "library",
		Short: "Inspect the drill library",
	}

	cmd.AddCommand(
		newLibraryValidateCmd(app),
		newLibraryStatsCmd(app),
	)

	return cmd
}

func newLibraryValidateCmd(app *App) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a drill library file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := file
			if path == "" {
				path = app.LibraryPath
			}
			cat, err := library.LoadCatalogue(path)
			if err != nil {
				return err
			}
			fmt.Printf("Library OK: %d drills, version %s\n", cat.Len(), cat.Version)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Library JSON file (default: the active library)")

	return cmd
}

func newLibraryStatsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show drill counts per phase",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := library.LoadCatalogue(app.LibraryPath)
			if err != nil {
				return err
			}

			phases := cat.PhaseNames()
			sort.Strings(phases)

			headers := []string{"PHASE", "DRILLS"}
			rows := make([][]string, 0, len(phases))
			for _, p := range phases {
				rows = append(rows, []string{p, fmt.Sprintf("%d", len(cat.ForPhase(p)))})
			}
			fmt.Print(formatter.RenderTable(headers, rows))
			fmt.Printf("\n%d drills total (version %s)\n", cat.Len(), cat.Version)
			return nil
		},
	}

	return cmd
}
