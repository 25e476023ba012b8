package telegram

import (
	"context"
	"fmt"
	"log"
	"strings"

	"alpha-x/internal/database"
	"alpha-x/internal/insight"
	"alpha-x/internal/services"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// splitMargin keeps part headers and a safety buffer under the message cap.
const splitMargin = 100

type Bot struct {
	bot      *tgbotapi.BotAPI
	chatID   int64
	msgLimit int
	db       *database.Database
	services *services.ServiceManager
	handlers map[string]func(*tgbotapi.Message)
}

func NewBot(token string, chatID int64, msgLimit int, db *database.Database, serviceManager *services.ServiceManager) (*Bot, error) {
	botAPI, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("creating bot: %w", err)
	}

	bot := &Bot{
		bot:      botAPI,
		chatID:   chatID,
		msgLimit: msgLimit,
		db:       db,
		services: serviceManager,
		handlers: make(map[string]func(*tgbotapi.Message)),
	}

	bot.registerHandlers()
	log.Printf("🤖 Bot initialized: %s", botAPI.Self.UserName)
	return bot, nil
}

func (b *Bot) registerHandlers() {
	b.handlers["/start"] = b.handleStart
	b.handlers["/weekly"] = b.handleWeekly
	b.handlers["/monthly"] = b.handleMonthly
	b.handlers["/log"] = b.handleLogUsage
	b.handlers["/help"] = b.handleHelp
}

func (b *Bot) SendMessage(text string) error {
	msg := tgbotapi.NewMessage(b.chatID, text)
	_, err := b.bot.Send(msg)
	return err
}

// SendReport delivers a report under the single-message size cap. Short
// reports go out whole; long ones are split into whole-line parts tagged
// "(Part i/n)".
func (b *Bot) SendReport(report string) error {
	if len(report) <= b.msgLimit {
		return b.SendMessage(report)
	}

	log.Printf("⚠️ Report is %d chars, sending in parts...", len(report))
	parts := insight.SplitReport(report, b.msgLimit-splitMargin)
	for i, part := range parts {
		message := fmt.Sprintf("📊 Report (Part %d/%d)\n\n%s", i+1, len(parts), part)
		if err := b.SendMessage(message); err != nil {
			return fmt.Errorf("sending part %d/%d: %w", i+1, len(parts), err)
		}
	}
	return nil
}

func (b *Bot) GetUsername() string {
	return b.bot.Self.UserName
}

func (b *Bot) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return
		case update := <-updates:
			b.handleUpdate(update)
		}
	}
}

func (b *Bot) handleUpdate(update tgbotapi.Update) {
	if update.Message == nil {
		return
	}

	if update.Message.Chat.ID != b.chatID {
		b.SendMessageOrLogError("⛔ Access denied")
		return
	}

	b.handleMessage(update.Message)
}

func (b *Bot) handleMessage(msg *tgbotapi.Message) {
	text := msg.Text
	if text == "" {
		return
	}

	// Commands that carry arguments first.
	switch {
	case strings.HasPrefix(text, "/log "):
		b.handleLog(msg)
	case strings.HasPrefix(text, "/weekly "):
		b.handleWeekly(msg)
	default:
		if strings.HasPrefix(text, "/") {
			parts := strings.Fields(text)
			command := parts[0]

			if handler, exists := b.handlers[command]; exists {
				handler(msg)
			} else {
				b.SendMessageOrLogError("❌ Unknown command. Use /help")
			}
		}
	}
}
