package notification

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const (
	EventBookingCreated   = "booking.created"
	EventBookingConfirmed = "booking.confirmed"
	EventBookingCancelled = "booking.cancelled"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// BookingEvent is the JSON payload published for every lifecycle change.
type BookingEvent struct {
	Type         string           `json:"type"`
	BookingID    string           `json:"booking_id"`
	ListingID    string           `json:"listing_id"`
	GuestID      string           `json:"guest_id"`
	HostID       string           `json:"host_id"`
	Status       string           `json:"status"`
	StartDate    string           `json:"start_date"`
	EndDate      string           `json:"end_date"`
	TotalPrice   int64            `json:"total_price"`
	RefundAmount *decimal.Decimal `json:"refund_amount,omitempty"`
	Reason       string           `json:"reason,omitempty"`
	OccurredAt   time.Time        `json:"occurred_at"`
}

type KafkaNotifier struct {
	writer messageWriter
	logger logger.Logger
	now    func() time.Time
}

func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
}

func NewKafkaNotifier(writer messageWriter, logger logger.Logger) *KafkaNotifier {
	return &KafkaNotifier{
		writer: writer,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (n *KafkaNotifier) NotifyBookingCreated(ctx context.Context, _ *domain.User, b *domain.Booking, _ *domain.Listing) {
	n.publish(ctx, EventBookingCreated, b)
}

func (n *KafkaNotifier) NotifyBookingConfirmed(ctx context.Context, _ *domain.User, b *domain.Booking, _ *domain.Listing) {
	n.publish(ctx, EventBookingConfirmed, b)
}

func (n *KafkaNotifier) NotifyBookingCancelled(ctx context.Context, _, _ *domain.User, b *domain.Booking, _ *domain.Listing) {
	n.publish(ctx, EventBookingCancelled, b)
}

func (n *KafkaNotifier) publish(ctx context.Context, eventType string, b *domain.Booking) {
	ev := BookingEvent{
		Type:       eventType,
		BookingID:  b.ID,
		ListingID:  b.ListingID,
		GuestID:    b.GuestID,
		HostID:     b.HostID,
		Status:     string(b.Status),
		StartDate:  b.StartDate.Format(time.DateOnly),
		EndDate:    b.EndDate.Format(time.DateOnly),
		TotalPrice: b.TotalPrice,
		OccurredAt: n.now(),
	}
	if c := b.Cancellation; c != nil {
		refund := c.RefundAmount
		ev.RefundAmount = &refund
		ev.Reason = c.Reason
	}

	payload, err := json.Marshal(ev)
	if err != nil {
		n.logger.LogAttrs(ctx, logger.ErrorLevel, "failed to encode booking event",
			logger.String("booking_id", b.ID),
			logger.String("error", err.Error()),
		)
		return
	}

	err = n.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(b.ID),
		Value: payload,
	})
	if err != nil {
		n.logger.LogAttrs(ctx, logger.ErrorLevel, "failed to publish booking event",
			logger.String("type", eventType),
			logger.String("booking_id", b.ID),
			logger.String("error", err.Error()),
		)
	}
}
