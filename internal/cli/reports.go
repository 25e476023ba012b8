package cli

import (
	"fmt"
	"log"

	"alpha-x/internal/config"
	"alpha-x/internal/database"
	"alpha-x/internal/services"
	"alpha-x/internal/telegram"

	"github.com/spf13/cobra"
)

func newWeeklyCmd() *cobra.Command {
	var weeksAgo int
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "weekly",
		Short: "Generate and deliver the weekly report",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, db, sm, err := openServices()
			if err != nil {
				return err
			}
			defer db.Close()

			report, err := sm.Report.WeeklyReport(weeksAgo)
			if err != nil {
				return err
			}

			fmt.Println(report)

			return deliver(cfg, db, sm, report, dryRun)
		},
	}

	cmd.Flags().IntVar(&weeksAgo, "weeks-ago", 0, "how many weeks back to analyze (0 = current week)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the report without sending it")

	return cmd
}

func newMonthlyCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "monthly",
		Short: "Generate and deliver the monthly report",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, db, sm, err := openServices()
			if err != nil {
				return err
			}
			defer db.Close()

			report, err := sm.Report.MonthlyReport()
			if err != nil {
				return err
			}

			fmt.Println(report)

			return deliver(cfg, db, sm, report, dryRun)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the report without sending it")

	return cmd
}

func deliver(cfg *config.Config, db *database.Database, sm *services.ServiceManager, report string, dryRun bool) error {
	if dryRun {
		log.Println("⚠️ Dry run mode - report not sent")
		return nil
	}

	if err := cfg.RequireTelegram(); err != nil {
		return err
	}

	bot, err := telegram.NewBot(cfg.Telegram.Token, cfg.Telegram.ChatID, cfg.Report.MsgLimit, db, sm)
	if err != nil {
		return err
	}
	sm.SetNotificationSender(bot)

	if err := sm.Report.Deliver(report); err != nil {
		return fmt.Errorf("delivering report: %w", err)
	}

	log.Println("✅ Report sent successfully!")
	return nil
}

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <csv>",
		Short: "Import a form-response CSV export into the tracker",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, sm, err := openServices()
			if err != nil {
				return err
			}
			defer db.Close()

			imported, err := sm.Importer.ImportCSV(args[0])
			if err != nil {
				return err
			}

			fmt.Printf("✅ Imported %d entries\n", imported)
			return nil
		},
	}
}
