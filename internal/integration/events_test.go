package integration_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/metinatakli/seatmap/internal/domain"
	"github.com/metinatakli/seatmap/internal/events"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
)

func TestAMQPPublisherDeliversReservationConfirmed(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}

	ctx := context.Background()

	broker, err := getBrokerContainer(ctx)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(broker.Container); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	})

	publisher, err := events.NewAMQPPublisher(broker.URL, events.ReservationConfirmedQueue)
	require.NoError(t, err)
	defer publisher.Close()

	event := events.ReservationConfirmedEvent{
		ConfirmationCode: uuid.New(),
		ShowtimeID:       TestShowtimeID,
		ReservationType:  domain.ReservationTypeSeatAssigned,
		Tickets:          2,
		SeatIDs:          []int{TestSeatA1, TestSeatA2},
		TotalPrice:       decimal.NewFromInt(25),
		CreatedAt:        time.Now().UTC().Truncate(time.Second),
	}

	require.NoError(t, publisher.PublishReservationConfirmed(ctx, event))

	conn, err := amqp.Dial(broker.URL)
	require.NoError(t, err)
	defer conn.Close()

	ch, err := conn.Channel()
	require.NoError(t, err)
	defer ch.Close()

	var msg amqp.Delivery
	require.Eventually(t, func() bool {
		var ok bool
		msg, ok, err = ch.Get(events.ReservationConfirmedQueue, true)
		return err == nil && ok
	}, 5*time.Second, 50*time.Millisecond)

	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, amqp.Persistent, msg.DeliveryMode)
	assert.Equal(t, event.ConfirmationCode.String(), msg.MessageId)

	var got events.ReservationConfirmedEvent
	require.NoError(t, json.Unmarshal(msg.Body, &got))

	assert.Equal(t, event.ConfirmationCode, got.ConfirmationCode)
	assert.Equal(t, event.SeatIDs, got.SeatIDs)
	assert.True(t, event.TotalPrice.Equal(got.TotalPrice))
	assert.True(t, event.CreatedAt.Equal(got.CreatedAt))
}
