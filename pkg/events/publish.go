package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

// Metadata keys set on every message built by NewMessage.
const (
	MetaEventID      = "event_id"
	MetaEventVersion = "event_version"
)

// NewMessage marshals payload to JSON and returns a message carrying the
// event identity and the OTel trace context of ctx in its metadata.
func NewMessage(ctx context.Context, eventID uuid.UUID, version int, payload any) (*message.Message, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("events: marshal payload: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), body)
	msg.Metadata.Set(MetaEventID, eventID.String())
	msg.Metadata.Set(MetaEventVersion, strconv.Itoa(version))
	injectTrace(ctx, msg)
	return msg, nil
}

func injectTrace(ctx context.Context, msgs ...*message.Message) {
	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)
	for _, msg := range msgs {
		for k, v := range carrier {
			msg.Metadata.Set(k, v)
		}
	}
}

// NewTxPublisher returns a Publisher whose writes run inside tx, so the
// message commits or rolls back together with the business change. In
// forwarder mode the messages are enveloped for the Forwarder daemon.
//
// Tables exist once the bus has started, so schema initialisation is skipped.
func (b *EventBus) NewTxPublisher(tx *sql.Tx) (message.Publisher, error) {
	pub, err := newSQLPublisher(tx, newLogAdapter(b.log), false)
	if err != nil {
		return nil, fmt.Errorf("events: new tx publisher: %w", err)
	}
	if b.useForwarder {
		return wrapForwarder(pub), nil
	}
	return pub, nil
}

// PublishInTx builds a message from payload and publishes it to topic inside tx.
func (b *EventBus) PublishInTx(ctx context.Context, tx *sql.Tx, topic string, eventID uuid.UUID, version int, payload any) error {
	msg, err := NewMessage(ctx, eventID, version, payload)
	if err != nil {
		return err
	}
	p, err := b.NewTxPublisher(tx)
	if err != nil {
		return err
	}
	if err := p.Publish(topic, msg); err != nil {
		return fmt.Errorf("events: publish to %s: %w", topic, err)
	}
	return nil
}
