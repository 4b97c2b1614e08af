package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Sender implements the outbound notification channel over the Bot API.
type Sender struct {
	bot *tgbotapi.BotAPI
}

// NewSender wraps a bot client.
func NewSender(bot *tgbotapi.BotAPI) *Sender {
	return &Sender{bot: bot}
}

// SendText sends a text message. parseMode may be empty for plain text.
func (s *Sender) SendText(chatID int64, text string, parseMode string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	if parseMode != "" {
		msg.ParseMode = parseMode
	}
	_, err := s.bot.Send(msg)
	return err
}

// SendPhoto sends an image blob as a photo.
func (s *Sender) SendPhoto(chatID int64, image []byte) error {
	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: "birthdays.png", Bytes: image})
	_, err := s.bot.Send(photo)
	return err
}
