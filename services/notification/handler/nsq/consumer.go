package nsq

import (
	"context"

	"github.com/cargolink/cargolink/internal/pkg/constants"
	"github.com/cargolink/cargolink/internal/pkg/logger"
	"github.com/cargolink/cargolink/internal/pkg/models"
	nsqpkg "github.com/cargolink/cargolink/internal/pkg/nsq"
	"github.com/cargolink/cargolink/services/notification"
)

// NotificationConsumer subscribes to the booking and trip topics and
// turns their events into per-user notification records.
type NotificationConsumer struct {
	notificationUC notification.NotificationUC
	consumers      []*nsqpkg.Consumer
}

// NewNotificationConsumer connects one consumer per topic on the
// notifications channel.
func NewNotificationConsumer(cfg *models.Config, notificationUC notification.NotificationUC) (*NotificationConsumer, error) {
	nc := &NotificationConsumer{notificationUC: notificationUC}

	bookingTopics := []string{
		constants.TopicBookingRequested,
		constants.TopicBookingApproved,
		constants.TopicBookingRejected,
	}
	for _, topic := range bookingTopics {
		topic := topic
		consumer, err := nsqpkg.NewConsumer(topic, constants.ChannelNotifications, cfg.NSQ.Address,
			func(message []byte) error {
				return nc.handleBookingEvent(topic, message)
			})
		if err != nil {
			nc.Stop()
			return nil, err
		}
		nc.consumers = append(nc.consumers, consumer)
	}

	consumer, err := nsqpkg.NewConsumer(constants.TopicTripStatus, constants.ChannelNotifications, cfg.NSQ.Address,
		nc.handleTripStatusEvent)
	if err != nil {
		nc.Stop()
		return nil, err
	}
	nc.consumers = append(nc.consumers, consumer)

	return nc, nil
}

// Stop gracefully stops all topic consumers
func (nc *NotificationConsumer) Stop() {
	for _, consumer := range nc.consumers {
		consumer.Stop()
	}
}

func (nc *NotificationConsumer) handleBookingEvent(topic string, message []byte) error {
	var event models.BookingEvent
	if err := nsqpkg.UnmarshalMessage(message, &event); err != nil {
		logger.Warn("dropping malformed booking event",
			logger.String("topic", topic),
			logger.Err(err))
		return nil
	}

	if err := nc.notificationUC.RecordBookingEvent(context.Background(), topic, &event); err != nil {
		logger.Warn("failed to record booking notification",
			logger.String("topic", topic),
			logger.String("booking_id", event.BookingID.String()),
			logger.Err(err))
		return err
	}
	return nil
}

func (nc *NotificationConsumer) handleTripStatusEvent(message []byte) error {
	var event models.TripStatusEvent
	if err := nsqpkg.UnmarshalMessage(message, &event); err != nil {
		logger.Warn("dropping malformed trip status event", logger.Err(err))
		return nil
	}

	if err := nc.notificationUC.RecordTripStatus(context.Background(), &event); err != nil {
		logger.Warn("failed to record trip notification",
			logger.String("trip_id", event.TripID.String()),
			logger.Err(err))
		return err
	}
	return nil
}
