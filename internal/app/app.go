package app

import (
	"context"
	"log"

	"alpha-x/internal/config"
	"alpha-x/internal/database"
	"alpha-x/internal/services"
	"alpha-x/internal/telegram"

	"github.com/robfig/cron/v3"
)

type Application struct {
	config     *config.Config
	db         *database.Database
	bot        *telegram.Bot
	services   *services.ServiceManager
	cron       *cron.Cron
	cancelFunc context.CancelFunc
	ctx        context.Context
}

func New(cfg *config.Config) (*Application, error) {
	if err := cfg.RequireTelegram(); err != nil {
		return nil, err
	}

	db, err := database.New(cfg.Database.Path)
	if err != nil {
		return nil, err
	}

	serviceManager := services.NewServiceManager(db)
	bot, err := telegram.NewBot(cfg.Telegram.Token, cfg.Telegram.ChatID, cfg.Report.MsgLimit, db, serviceManager)
	if err != nil {
		db.Close()
		return nil, err
	}

	serviceManager.SetNotificationSender(bot)
	ctx, cancel := context.WithCancel(context.Background())

	app := &Application{
		config:     cfg,
		db:         db,
		bot:        bot,
		services:   serviceManager,
		cron:       cron.New(),
		cancelFunc: cancel,
		ctx:        ctx,
	}

	app.setupCronJobs()

	return app, nil
}

func (a *Application) Start() error {
	log.Println("🚀 Starting application...")

	go a.bot.Start(a.ctx)

	a.cron.Start()

	log.Printf("✅ Application started. Bot: @%s", a.bot.GetUsername())

	return nil
}

func (a *Application) Stop() error {
	log.Println("🛑 Stopping application...")

	a.cancelFunc()
	a.cron.Stop()

	if err := a.db.Close(); err != nil {
		log.Printf("⚠️ Error closing database: %v", err)
	}

	log.Println("✅ Application stopped")
	return nil
}

func (a *Application) setupCronJobs() {
	// Weekly report every Sunday at 13:00 UTC
	_, err := a.cron.AddFunc("0 13 * * 0", func() {
		log.Println("⏰ Scheduled weekly report...")
		if err := a.services.Report.SendWeekly(0); err != nil {
			log.Printf("❌ Weekly report failed: %v", err)
		}
	})
	if err != nil {
		panic(err)
	}

	// Monthly report on the 1st at 09:00 UTC
	_, err = a.cron.AddFunc("0 9 1 * *", func() {
		log.Println("⏰ Scheduled monthly report...")
		if err := a.services.Report.SendMonthly(); err != nil {
			log.Printf("❌ Monthly report failed: %v", err)
		}
	})
	if err != nil {
		panic(err)
	}

	// Daily check-in reminder at 18:00 UTC
	_, err = a.cron.AddFunc("0 18 * * *", func() {
		a.bot.SendMessageOrLogError(
			"📝 Don't forget to record today's answers!\n" +
				"Use: /log coding=... workout=... sleep=...",
		)
	})
	if err != nil {
		panic(err)
	}
}
