package cli

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"alpha-x/internal/app"
	"alpha-x/internal/config"

	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the bot and report scheduler until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			application, err := app.New(cfg)
			if err != nil {
				return err
			}

			if err := application.Start(); err != nil {
				return err
			}
			defer application.Stop()

			waitForShutdown()
			log.Println("👋 Shutting down")
			return nil
		},
	}
}

func waitForShutdown() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
}
