package app

import (
	"github.com/gorilla/sessions"

	"github.com/ghuser/porcelarte/pkg/cache"
	"github.com/ghuser/porcelarte/pkg/config"
	"github.com/ghuser/porcelarte/pkg/database"
	"github.com/ghuser/porcelarte/pkg/events"
	"github.com/ghuser/porcelarte/pkg/logger"
	"github.com/ghuser/porcelarte/pkg/workflows"
)

// Application holds shared infrastructure dependencies for all bounded contexts.
// Pass it to every context's Routes function during server initialization.
//
// Logging: app.Logger is backed by a trace-aware handler. Use slog's context
// methods and trace_id, span_id and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "stock movement recorded", "movement_id", id)
//	app.Logger.ErrorContext(ctx, "failed to commit", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Config         *config.Config
	Db             *database.Database
	Logger         logger.Logger
	EventBus       *events.EventBus
	Redis          *cache.RedisClient       // nil when the cache is unavailable
	TemporalClient *workflows.TemporalClient // nil unless TEMPORAL_ENABLED
	SessionStore   sessions.Store            // Redis-backed session store; nil in worker process
}
