package telegram

import "log"

func (b *Bot) SendMessageOrLogError(message string) {
	if err := b.SendMessage(message); err != nil {
		log.Printf("❌ Failed to send message: %v", err)
	}
}
