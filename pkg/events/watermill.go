// Package events carries domain events (stock movements) from the API to the
// worker over PostgreSQL, using Watermill's SQL transport.
//
// The API publishes inside the ledger transaction through NewTxPublisher, so a
// movement and its event commit or roll back together. Subscribers share one
// consumer group: each event is handled by a single worker instance.
// Handlers must be idempotent; a failing handler is retried with exponential
// backoff, then Nacked for redelivery.
package events

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	watermillsql "github.com/ThreeDotsLabs/watermill-sql/v3/pkg/sql"
	"github.com/ThreeDotsLabs/watermill/components/forwarder"
	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/porcelarte/pkg/config"
	"github.com/ghuser/porcelarte/pkg/logger"
)

const (
	defaultMaxAttempts    = 3
	defaultRetryBaseDelay = time.Second
	errBufferSize         = 100
	shutdownTimeout       = 30 * time.Second
	forwarderTopic        = "_forwarder_queue"
)

// Options tunes an EventBus. Zero values take the defaults.
type Options struct {
	// Forwarder routes every publish through an outbox topic that
	// StartForwarder drains to the real topic.
	Forwarder bool
	// ConsumerGroup defaults to "<service>-consumer".
	ConsumerGroup  string
	MaxAttempts    int
	RetryBaseDelay time.Duration
}

func (o Options) withDefaults(cfg *config.Config) Options {
	if o.ConsumerGroup == "" {
		o.ConsumerGroup = cfg.ServiceName + "-consumer"
	}
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = defaultMaxAttempts
	}
	if o.RetryBaseDelay <= 0 {
		o.RetryBaseDelay = defaultRetryBaseDelay
	}
	return o
}

// EventBus publishes and consumes messages stored in PostgreSQL. Delivery
// uses FOR UPDATE SKIP LOCKED, so concurrent workers never share a message.
type EventBus struct {
	db         *sql.DB
	log        logger.Logger
	wlog       watermill.LoggerAdapter
	opts       Options
	retry      retryPolicy
	publisher  message.Publisher
	subscriber *watermillsql.Subscriber
	fwd        *forwarder.Forwarder
	wg         sync.WaitGroup
}

// NewEventBus opens its own connection to cfg.DefinitionDatabaseURL and
// creates the Watermill tables on first use.
func NewEventBus(cfg *config.Config, log logger.Logger, opts Options) (*EventBus, error) {
	opts = opts.withDefaults(cfg)

	db, err := sql.Open("pgx", cfg.DefinitionDatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("events: open db: %w", err)
	}

	q := &EventBus{
		db:    db,
		log:   log,
		wlog:  &slogAdapter{log: log},
		opts:  opts,
		retry: retryPolicy{attempts: opts.MaxAttempts, baseDelay: opts.RetryBaseDelay},
	}

	pub, err := q.sqlPublisher(db, true)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	q.publisher = q.wrapForwarder(pub)

	q.subscriber, err = q.sqlSubscriber(opts.ConsumerGroup)
	if err != nil {
		_ = pub.Close()
		_ = db.Close()
		return nil, err
	}
	return q, nil
}

func (q *EventBus) sqlPublisher(db watermillsql.ContextExecutor, initSchema bool) (*watermillsql.Publisher, error) {
	pub, err := watermillsql.NewPublisher(db, watermillsql.PublisherConfig{
		SchemaAdapter:        watermillsql.DefaultPostgreSQLSchema{},
		AutoInitializeSchema: initSchema,
	}, q.wlog)
	if err != nil {
		return nil, fmt.Errorf("events: new publisher: %w", err)
	}
	return pub, nil
}

func (q *EventBus) sqlSubscriber(group string) (*watermillsql.Subscriber, error) {
	sub, err := watermillsql.NewSubscriber(q.db, watermillsql.SubscriberConfig{
		SchemaAdapter:    watermillsql.DefaultPostgreSQLSchema{},
		OffsetsAdapter:   watermillsql.DefaultPostgreSQLOffsetsAdapter{},
		InitializeSchema: true,
		ConsumerGroup:    group,
	}, q.wlog)
	if err != nil {
		return nil, fmt.Errorf("events: new subscriber %s: %w", group, err)
	}
	return sub, nil
}

func (q *EventBus) wrapForwarder(pub message.Publisher) message.Publisher {
	if !q.opts.Forwarder {
		return pub
	}
	return forwarder.NewPublisher(pub, forwarder.PublisherConfig{ForwarderTopic: forwarderTopic})
}

// StartForwarder drains the outbox topic into the target topics in the
// background and returns once the forwarder is running. Only valid on a bus
// created with Options.Forwarder, and only once.
func (q *EventBus) StartForwarder(ctx context.Context) error {
	if !q.opts.Forwarder {
		return errors.New("events: StartForwarder called on non-forwarder EventBus")
	}
	if q.fwd != nil {
		return errors.New("events: forwarder already started")
	}

	fwdSub, err := q.sqlSubscriber("forwarder-consumer")
	if err != nil {
		return err
	}
	targetPub, err := q.sqlPublisher(q.db, true)
	if err != nil {
		_ = fwdSub.Close()
		return err
	}
	fwd, err := forwarder.NewForwarder(fwdSub, targetPub, q.wlog, forwarder.Config{ForwarderTopic: forwarderTopic})
	if err != nil {
		_ = targetPub.Close()
		_ = fwdSub.Close()
		return fmt.Errorf("events: create forwarder: %w", err)
	}
	q.fwd = fwd

	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		if err := fwd.Run(ctx); err != nil {
			q.log.ErrorContext(ctx, "events: forwarder stopped with error", "error", err)
			return
		}
		q.log.InfoContext(ctx, "events: forwarder stopped")
	}()

	select {
	case <-fwd.Running():
		q.log.InfoContext(ctx, "events: forwarder started")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("events: waiting for forwarder: %w", ctx.Err())
	}
}

// NewTxPublisher returns a Publisher whose writes join tx, so the event is
// only visible if tx commits. The caller is responsible for InjectTrace.
func (q *EventBus) NewTxPublisher(tx *sql.Tx) (message.Publisher, error) {
	pub, err := q.sqlPublisher(tx, false)
	if err != nil {
		return nil, err
	}
	return q.wrapForwarder(pub), nil
}

// Publish sends msgs to topic with the trace context of ctx attached.
func (q *EventBus) Publish(ctx context.Context, topic string, msgs ...*message.Message) error {
	InjectTrace(ctx, msgs...)
	if err := q.publisher.Publish(topic, msgs...); err != nil { //nolint:contextcheck
		return fmt.Errorf("events: publish to %s: %w", topic, err)
	}
	return nil
}

// Subscribe consumes topic in the background until ctx is cancelled or the
// bus closes. Each message is acked when handler returns nil; otherwise it is
// retried per Options and finally Nacked, with the error sent on the returned
// channel. Callers must drain the channel. Close waits for in-flight handlers.
func (q *EventBus) Subscribe(ctx context.Context, topic string, handler func(context.Context, *message.Message) error) (<-chan error, error) {
	ch, err := q.subscriber.Subscribe(ctx, topic)
	if err != nil {
		return nil, fmt.Errorf("events: subscribe to %s: %w", topic, err)
	}

	errCh := make(chan error, errBufferSize)
	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		defer close(errCh)
		for msg := range ch {
			q.handle(ExtractTrace(ctx, msg), topic, msg, handler, errCh)
		}
	}()
	return errCh, nil
}

func (q *EventBus) handle(ctx context.Context, topic string, msg *message.Message, handler func(context.Context, *message.Message) error, errCh chan<- error) {
	err := q.retry.run(ctx, msg, handler, q.log)
	if err == nil {
		msg.Ack()
		return
	}
	msg.Nack()
	select {
	case errCh <- err:
	default:
		q.log.ErrorContext(ctx, "events: error channel full, dropping error", "error", err, "topic", topic)
	}
}

// retryPolicy calls a handler up to attempts times, doubling the delay after
// each failure.
type retryPolicy struct {
	attempts  int
	baseDelay time.Duration
}

func (p retryPolicy) run(ctx context.Context, msg *message.Message, handler func(context.Context, *message.Message) error, log logger.Logger) error {
	delay := p.baseDelay
	var err error
	for attempt := 1; ; attempt++ {
		if err = handler(ctx, msg); err == nil {
			return nil
		}
		if attempt >= p.attempts {
			return fmt.Errorf("events: handler failed after %d attempts: %w", p.attempts, err)
		}
		log.WarnContext(ctx, "events: handler failed, retrying",
			"message_id", msg.UUID,
			"attempt", attempt,
			"next_delay", delay,
			"error", err,
		)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}
}

// Ping checks the EventBus database connection health.
func (q *EventBus) Ping(ctx context.Context) error {
	if err := q.db.PingContext(ctx); err != nil {
		return fmt.Errorf("events: ping db: %w", err)
	}
	return nil
}

// Close stops consuming, gives in-flight handlers up to 30s, then releases
// the publisher and the database connection.
func (q *EventBus) Close() error {
	if err := q.subscriber.Close(); err != nil {
		return fmt.Errorf("events: close subscriber: %w", err)
	}
	if q.fwd != nil {
		if err := q.fwd.Close(); err != nil {
			return fmt.Errorf("events: close forwarder: %w", err)
		}
	}

	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(shutdownTimeout):
		q.log.Error("events: timed out waiting for in-flight handlers")
	}

	if err := q.publisher.Close(); err != nil {
		return fmt.Errorf("events: close publisher: %w", err)
	}
	return q.db.Close()
}

// slogAdapter bridges logger.Logger to watermill.LoggerAdapter.
type slogAdapter struct{ log logger.Logger }

func (a *slogAdapter) Error(msg string, err error, fields watermill.LogFields) {
	a.log.Error(msg, append(fieldsToArgs(fields), "error", err)...)
}
func (a *slogAdapter) Info(msg string, fields watermill.LogFields) {
	a.log.Info(msg, fieldsToArgs(fields)...)
}
func (a *slogAdapter) Debug(msg string, fields watermill.LogFields) {
	a.log.Debug(msg, fieldsToArgs(fields)...)
}
func (a *slogAdapter) Trace(msg string, fields watermill.LogFields) {
	a.log.Debug(msg, fieldsToArgs(fields)...)
}
func (a *slogAdapter) With(fields watermill.LogFields) watermill.LoggerAdapter {
	return &slogAdapter{log: a.log.With(fieldsToArgs(fields)...)}
}

func fieldsToArgs(fields watermill.LogFields) []any {
	args := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	return args
}
