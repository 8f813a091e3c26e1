package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/ndmitr1/EventRegistrar/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyRegistrationConfirmed(ctx context.Context, user *domain.User, event *domain.Event, role *domain.Role) {
	text := fmt.Sprintf(
		"*Регистрация подтверждена!*\n\n"+"Мероприятие: %s\n"+"Роль: %s\n"+"Дата (время указано в UTC): %s",
		event.Title, role.Name, event.StartsAt.Format("02.01.2006 15:04"),
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyCheckoutStarted(ctx context.Context, user *domain.User, event *domain.Event, role *domain.Role, checkoutURL string) {
	text := fmt.Sprintf(
		"*Ожидается оплата*\n\n"+"Мероприятие: %s\n"+"Роль: %s\n"+"Сумма: %.2f\n"+"Ссылка на оплату: %s",
		event.Title, role.Name, float64(role.PriceCents)/100, checkoutURL,
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyPaymentCompleted(ctx context.Context, user *domain.User, event *domain.Event, role *domain.Role) {
	text := fmt.Sprintf(
		"*Оплата получена!*\n\n"+"Мероприятие: %s\n"+"Роль: %s\n"+"Дата (время указано в UTC): %s",
		event.Title, role.Name, event.StartsAt.Format("02.01.2006 15:04"),
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyPaymentExpired(ctx context.Context, user *domain.User, event *domain.Event, role *domain.Role) {
	text := fmt.Sprintf(
		"*Оплата не поступила, заявка отменена*\n\n"+"Мероприятие: %s\n"+"Роль: %s\n"+"Вы можете оформить заявку заново.",
		event.Title, role.Name,
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
