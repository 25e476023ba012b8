package cli

import (
	"alpha-x/internal/config"
	"alpha-x/internal/database"
	"alpha-x/internal/services"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the top-level "alpha-x" command and registers all
// subcommands.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "alpha-x",
		Short:        "Personal tracking insights, delivered",
		Long:         "Scores your daily self-tracking log across career, health and relationship goals and delivers weekly/monthly reports.",
		SilenceUsage: true,
	}

	root.AddCommand(
		newWeeklyCmd(),
		newMonthlyCmd(),
		newImportCmd(),
		newServeCmd(),
	)

	return root
}

// openServices performs the shared wiring for one-shot commands. The caller
// owns closing the database.
func openServices() (*config.Config, *database.Database, *services.ServiceManager, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}

	db, err := database.New(cfg.Database.Path)
	if err != nil {
		return nil, nil, nil, err
	}

	return cfg, db, services.NewServiceManager(db), nil
}
