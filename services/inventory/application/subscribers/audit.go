// Package subscribers holds the worker-side consumers of inventory change events.
package subscribers

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/ghuser/inventory/pkg/events"
	"github.com/ghuser/inventory/pkg/logger"
	domainevents "github.com/ghuser/inventory/services/inventory/domain/events"
)

// ChangesMetric counts every consumed change event, labelled by topic.
const ChangesMetric = "inventory_changes_total"

// Audit writes one structured log line per inventory change and counts it.
// Handling has no side effects beyond the log and the counter, so redelivery is safe.
type Audit struct {
	log     logger.Logger
	changes metric.Int64Counter
}

// NewAudit registers the change counter on meter.
func NewAudit(meter metric.Meter, log logger.Logger) (*Audit, error) {
	changes, err := meter.Int64Counter(ChangesMetric,
		metric.WithDescription("Inventory change events consumed by the worker"),
	)
	if err != nil {
		return nil, fmt.Errorf("subscribers: register %s: %w", ChangesMetric, err)
	}
	return &Audit{log: log.With("component", "audit"), changes: changes}, nil
}

// Handler returns the handler for one topic.
// A payload that cannot be decoded is logged and acked, since a retry would fail the same way.
func (a *Audit) Handler(topic string) events.Handler {
	return func(ctx context.Context, msg *message.Message) error {
		args, err := auditFields(topic, msg.Payload)
		if err != nil {
			a.log.ErrorContext(ctx, "undecodable inventory event",
				"topic", topic,
				"message_uuid", msg.UUID,
				"error", err,
			)
			return nil
		}
		a.changes.Add(ctx, 1, metric.WithAttributes(attribute.String("topic", topic)))
		args = append(args, "topic", topic, "event_id", msg.Metadata.Get(events.MetaEventID))
		a.log.InfoContext(ctx, "inventory change", args...)
		return nil
	}
}

func auditFields(topic string, payload []byte) ([]any, error) {
	switch {
	case strings.HasPrefix(topic, "item."):
		var evt domainevents.ItemChangedEvent
		if err := json.Unmarshal(payload, &evt); err != nil {
			return nil, err
		}
		return []any{
			"item_id", evt.ItemID,
			"title", evt.Title,
			"location_id", evt.LocationID,
			"occurred_at", evt.OccurredAt,
		}, nil
	case strings.HasPrefix(topic, "location."):
		var evt domainevents.LocationChangedEvent
		if err := json.Unmarshal(payload, &evt); err != nil {
			return nil, err
		}
		args := []any{
			"location_id", evt.LocationID,
			"title", evt.Title,
			"occurred_at", evt.OccurredAt,
		}
		if evt.XCor != nil && evt.YCor != nil {
			args = append(args, "x_cor", *evt.XCor, "y_cor", *evt.YCor)
		}
		return args, nil
	default:
		return nil, fmt.Errorf("unknown topic %q", topic)
	}
}
