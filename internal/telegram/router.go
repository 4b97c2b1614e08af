package telegram

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// Dispatcher is the set of dispatch entry points the commands map to.
type Dispatcher interface {
	SendBirthdayTable(ctx context.Context, chatID int64) error
	SendUpcomingBirthdays(ctx context.Context, chatID int64) error
	SendVacations(ctx context.Context, chatID int64) error
}

// textSender is the slice of the notification channel the router needs
// for its own service replies.
type textSender interface {
	SendText(chatID int64, text string, parseMode string) error
}

// Router wires Telegram updates to dispatch entry points. Every command
// except /birthdays and /start is gated by the admin identity check.
type Router struct {
	log     *zap.Logger
	sender  textSender
	svc     Dispatcher
	adminID int64
}

// NewRouter creates a Router.
func NewRouter(log *zap.Logger, sender textSender, svc Dispatcher, adminID int64) *Router {
	return &Router{log: log, sender: sender, svc: svc, adminID: adminID}
}

// Greet sends the startup greeting to the admin chat.
func (r *Router) Greet() {
	if err := r.sender.SendText(r.adminID, greetingText, ""); err != nil {
		r.log.Warn("startup greeting failed", zap.Error(err))
		return
	}
	r.log.Info("startup greeting sent")
}

// isAdmin compares the sender identity with the configured admin id.
func (r *Router) isAdmin(msg *tgbotapi.Message) bool {
	return msg.From != nil && msg.From.ID == r.adminID
}

// HandleUpdate routes a single update. Dispatch errors are logged and
// swallowed: a failed delivery never takes the bot down.
func (r *Router) HandleUpdate(ctx context.Context, upd tgbotapi.Update) {
	if upd.Message == nil {
		return
	}
	msg := upd.Message
	chatID := msg.Chat.ID
	text := strings.TrimSpace(msg.Text)

	switch {
	case strings.HasPrefix(text, "/start"):
		if err := r.sender.SendText(chatID, startText, ""); err != nil {
			r.log.Error("send start failed", zap.Error(err), zap.Int64("chatID", chatID))
		}

	case strings.HasPrefix(text, "/birthdays"):
		// The table view is open to any sender, into their own chat.
		if err := r.svc.SendBirthdayTable(ctx, chatID); err != nil {
			r.log.Error("birthday table dispatch failed", zap.Error(err), zap.Int64("chatID", chatID))
		}

	case strings.HasPrefix(text, "/next5"):
		if !r.isAdmin(msg) {
			r.deny(chatID)
			return
		}
		if err := r.svc.SendUpcomingBirthdays(ctx, chatID); err != nil {
			r.log.Error("upcoming birthdays dispatch failed", zap.Error(err), zap.Int64("chatID", chatID))
		}

	case strings.HasPrefix(text, "/vacations"):
		if !r.isAdmin(msg) {
			r.deny(chatID)
			return
		}
		if err := r.svc.SendVacations(ctx, chatID); err != nil {
			r.log.Error("vacations dispatch failed", zap.Error(err), zap.Int64("chatID", chatID))
		}

	default:
		// Any free-form admin message triggers the table view.
		if chatID == r.adminID {
			if err := r.svc.SendBirthdayTable(ctx, chatID); err != nil {
				r.log.Error("birthday table dispatch failed", zap.Error(err), zap.Int64("chatID", chatID))
			}
		}
	}
}

func (r *Router) deny(chatID int64) {
	if err := r.sender.SendText(chatID, deniedText, ""); err != nil {
		r.log.Error("send denial failed", zap.Error(err), zap.Int64("chatID", chatID))
	}
}
