package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const dateLayout = "02.01.2006"

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

func (n *TelegramNotifier) NotifyBookingCreated(ctx context.Context, host *domain.User, b *domain.Booking, l *domain.Listing) {
	n.send(ctx, host.TelegramChatID, createdText(b, l))
}

func (n *TelegramNotifier) NotifyBookingConfirmed(ctx context.Context, guest *domain.User, b *domain.Booking, l *domain.Listing) {
	n.send(ctx, guest.TelegramChatID, confirmedText(b, l))
}

func (n *TelegramNotifier) NotifyBookingCancelled(ctx context.Context, guest, host *domain.User, b *domain.Booking, l *domain.Listing) {
	text := cancelledText(b, l)
	n.send(ctx, guest.TelegramChatID, text)
	n.send(ctx, host.TelegramChatID, text)
}

func stay(b *domain.Booking) string {
	return fmt.Sprintf("%s - %s", b.StartDate.Format(dateLayout), b.EndDate.Format(dateLayout))
}

func createdText(b *domain.Booking, l *domain.Listing) string {
	return fmt.Sprintf(
		"*Новая заявка на бронирование*\n\n"+"Объект: %s\n"+"Даты: %s\n"+"Гостей: %d\n"+"Сумма: %d\n"+"Подтвердите или отклоните заявку.",
		l.Title, stay(b), b.Guests.Total(), b.TotalPrice,
	)
}

func confirmedText(b *domain.Booking, l *domain.Listing) string {
	return fmt.Sprintf(
		"*Бронирование подтверждено!*\n\n"+"Объект: %s\n"+"Адрес: %s\n"+"Даты: %s",
		l.Title, l.Address, stay(b),
	)
}

func cancelledText(b *domain.Booking, l *domain.Listing) string {
	refund := "0"
	reason := ""
	if b.Cancellation != nil {
		refund = b.Cancellation.RefundAmount.StringFixed(2)
		reason = b.Cancellation.Reason
	}
	return fmt.Sprintf(
		"*Бронирование отменено*\n\n"+"Объект: %s\n"+"Даты: %s\n"+"Причина: %s\n"+"Возврат: %s",
		l.Title, stay(b), reason, refund,
	)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.LogAttrs(ctx, logger.DebugLevel, "notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.LogAttrs(ctx, logger.DebugLevel, "notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.LogAttrs(ctx, logger.DebugLevel, "notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.LogAttrs(ctx, logger.ErrorLevel, "failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
