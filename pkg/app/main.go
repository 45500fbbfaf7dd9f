package app

import (
	"github.com/ghuser/inventory/pkg/database"
	"github.com/ghuser/inventory/pkg/events"
	"github.com/ghuser/inventory/pkg/logger"
)

// Application holds shared infrastructure dependencies for all bounded contexts.
// cmd/api builds one at startup and hands it to each context's Routes function.
//
// Logging: app.Logger is backed by a trace-aware handler. Use the context methods
// and trace_id, span_id and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "location created", "location_id", id)
//	app.Logger.ErrorContext(ctx, "failed to save", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Db       *database.Database
	Logger   logger.Logger
	EventBus *events.EventBus // nil disables change events
}
