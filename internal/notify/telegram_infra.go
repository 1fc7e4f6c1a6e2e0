package notify

import (
	"context"
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type TelegramNotifier struct {
	bot         *tgbotapi.BotAPI
	adminChatID int64
}

func NewTelegramNotifier(bot *tgbotapi.BotAPI, adminChatID int64) *TelegramNotifier {
	return &TelegramNotifier{bot: bot, adminChatID: adminChatID}
}

func (n *TelegramNotifier) Notify(ctx context.Context, err error, details string) error {
	if n.bot == nil || n.adminChatID == 0 {
		log.Printf("[notify] skipped (no bot/admin chat): %v", err)
		return nil
	}

	text := fmt.Sprintf("❗ Dubbing pipeline failed\n\nError: %v\n\nDetails: %s", err, details)

	if _, sendErr := n.bot.Send(tgbotapi.NewMessage(n.adminChatID, text)); sendErr != nil {
		log.Printf("[notify] send fail: %v", sendErr)
		return sendErr
	}
	return nil
}

// Nop — заглушка, когда бот не сконфигурирован.
type Nop struct{}

func (Nop) Notify(context.Context, error, string) error { return nil }
