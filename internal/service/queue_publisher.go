// Package service publishes domain events to RabbitMQ. Publish failures
// are logged and returned so callers can ignore them without failing the
// request; a booking confirmation must not depend on broker health.
package service

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"

	"github.com/quadraplay/court-booking-api/internal/queue"
)

// PublishBookingConfirmed publishes a BookingConfirmedEvent to the durable
// booking.confirmed queue. Messages are persistent so they survive broker
// restarts.
func PublishBookingConfirmed(ctx context.Context, log zerolog.Logger, event queue.BookingConfirmedEvent) error {
	conn, err := amqp.Dial(queue.BrokerURL())
	if err != nil {
		log.Warn().Err(err).Msg("rabbitmq: dial failed")
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Warn().Err(err).Msg("rabbitmq: channel open failed")
		return err
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(queue.BookingQueueName, true, false, false, false, nil); err != nil {
		log.Warn().Err(err).Msg("rabbitmq: queue declare failed")
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		log.Warn().Err(err).Msg("rabbitmq: marshal event failed")
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", queue.BookingQueueName, false, false, pub); err != nil {
		log.Warn().Err(err).Uint64("booking_id", event.BookingID).Msg("rabbitmq: publish failed")
		return err
	}
	return nil
}
