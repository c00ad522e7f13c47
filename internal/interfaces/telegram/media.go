package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// largestPhoto returns the highest-resolution variant of a message's photo,
// or nil when the message carries none. Telegram orders PhotoSize entries
// smallest first.
func largestPhoto(msg *tgbotapi.Message) *tgbotapi.PhotoSize {
	if msg == nil || len(msg.Photo) == 0 {
		return nil
	}
	return &msg.Photo[len(msg.Photo)-1]
}
