package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"github.com/ghuser/porcelarte/pkg/config"
	"github.com/ghuser/porcelarte/pkg/logger"
)

func setupTracer() *sdktrace.TracerProvider {
	tp := sdktrace.NewTracerProvider()
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	return tp
}

func nopLogger() logger.Logger {
	return logger.New(&config.Config{LogLevel: "error"})
}

// TestRetryPolicy_SuccessOnFirstAttempt verifies no retry occurs on success.
func TestRetryPolicy_SuccessOnFirstAttempt(t *testing.T) {
	calls := 0
	handler := func(_ context.Context, _ *message.Message) error {
		calls++
		return nil
	}
	msg := message.NewMessage("id", nil)
	err := retryPolicy{attempts: defaultMaxAttempts, baseDelay: time.Millisecond}.run(context.Background(), msg, handler, nopLogger())
	if err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

// TestRetryPolicy_SuccessAfterRetries verifies retry continues until success.
func TestRetryPolicy_SuccessAfterRetries(t *testing.T) {
	calls := 0
	handler := func(_ context.Context, _ *message.Message) error {
		calls++
		if calls < 3 {
			return errors.New("transient error")
		}
		return nil
	}
	msg := message.NewMessage("id", nil)
	err := retryPolicy{attempts: defaultMaxAttempts, baseDelay: time.Millisecond}.run(context.Background(), msg, handler, nopLogger())
	if err != nil {
		t.Fatalf("expected nil after eventual success, got %v", err)
	}
	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
}

// TestRetryPolicy_ExhaustsRetries verifies an error is returned after all retries fail.
func TestRetryPolicy_ExhaustsRetries(t *testing.T) {
	calls := 0
	handler := func(_ context.Context, _ *message.Message) error {
		calls++
		return errors.New("permanent error")
	}
	msg := message.NewMessage("id", nil)
	err := retryPolicy{attempts: defaultMaxAttempts, baseDelay: time.Millisecond}.run(context.Background(), msg, handler, nopLogger())
	if err == nil {
		t.Fatal("expected error after exhausted retries")
	}
	if calls != defaultMaxAttempts {
		t.Errorf("expected %d calls, got %d", defaultMaxAttempts, calls)
	}
}

// TestRetryPolicy_ContextCancelled verifies retry stops when context is canceled.
func TestRetryPolicy_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // cancel immediately

	calls := 0
	handler := func(_ context.Context, _ *message.Message) error {
		calls++
		return errors.New("error")
	}
	msg := message.NewMessage("id", nil)
	err := retryPolicy{attempts: defaultMaxAttempts, baseDelay: time.Second}.run(ctx, msg, handler, nopLogger())
	if err == nil {
		t.Fatal("expected error from canceled context")
	}
	// Should have called handler once then exited on ctx.Done
	if calls != 1 {
		t.Errorf("expected 1 call before context cancel, got %d", calls)
	}
}

func TestOptions_Defaults(t *testing.T) {
	got := Options{}.withDefaults(&config.Config{ServiceName: "porcelarte-worker"})
	if got.ConsumerGroup != "porcelarte-worker-consumer" {
		t.Errorf("ConsumerGroup = %q", got.ConsumerGroup)
	}
	if got.MaxAttempts != defaultMaxAttempts || got.RetryBaseDelay != defaultRetryBaseDelay {
		t.Errorf("retry defaults = %d/%v", got.MaxAttempts, got.RetryBaseDelay)
	}

	custom := Options{ConsumerGroup: "g", MaxAttempts: 5, RetryBaseDelay: time.Millisecond}.withDefaults(&config.Config{})
	if custom.ConsumerGroup != "g" || custom.MaxAttempts != 5 || custom.RetryBaseDelay != time.Millisecond {
		t.Errorf("explicit options overridden: %+v", custom)
	}
}

// TestStartForwarder_NonForwarderMode verifies StartForwarder refuses a bus
// created without Options.Forwarder.
func TestStartForwarder_NonForwarderMode(t *testing.T) {
	bus := &EventBus{}
	err := bus.StartForwarder(context.Background())
	if err == nil {
		t.Fatal("expected error for non-forwarder EventBus")
	}
}

// TestOTelPropagation_InjectExtract verifies the trace context survives the
// trip through message metadata.
func TestOTelPropagation_InjectExtract(t *testing.T) {
	tp := setupTracer()
	defer tp.Shutdown(context.Background()) //nolint:errcheck

	ctx, span := otel.Tracer("test").Start(context.Background(), "publish-span")
	defer span.End()
	wantTraceID := span.SpanContext().TraceID()

	msg := message.NewMessage("id", nil)
	InjectTrace(ctx, msg)
	msgCtx := ExtractTrace(context.Background(), msg)

	gotSpan := trace.SpanFromContext(msgCtx)
	if !gotSpan.SpanContext().IsValid() {
		t.Fatal("extracted span context is not valid")
	}
	if gotSpan.SpanContext().TraceID() != wantTraceID {
		t.Errorf("trace ID mismatch: want %s, got %s", wantTraceID, gotSpan.SpanContext().TraceID())
	}
}

type movementPayload struct {
	MovementID string `json:"movement_id"`
	NewStock   int    `json:"new_stock"`
}

func TestNewJSONMessage(t *testing.T) {
	msg, err := NewJSONMessage("evt-1", 2, movementPayload{MovementID: "m-1", NewStock: 3})
	if err != nil {
		t.Fatalf("NewJSONMessage: %v", err)
	}
	if msg.Metadata.Get(MetadataEventID) != "evt-1" {
		t.Errorf("event_id = %q", msg.Metadata.Get(MetadataEventID))
	}
	if EventVersion(msg) != 2 {
		t.Errorf("EventVersion = %d, want 2", EventVersion(msg))
	}

	var got movementPayload
	if err := DecodeJSON(msg, &got); err != nil {
		t.Fatalf("DecodeJSON: %v", err)
	}
	if got.MovementID != "m-1" || got.NewStock != 3 {
		t.Errorf("decoded %+v", got)
	}
}

func TestNewJSONMessage_Unmarshalable(t *testing.T) {
	if _, err := NewJSONMessage("evt-1", 1, make(chan int)); err == nil {
		t.Fatal("expected marshal error for a channel payload")
	}
}

func TestDecodeJSON_Malformed(t *testing.T) {
	msg := message.NewMessage("id", []byte("{not json"))
	var got movementPayload
	if err := DecodeJSON(msg, &got); err == nil {
		t.Fatal("expected decode error")
	}
	if EventVersion(msg) != 0 {
		t.Errorf("EventVersion without metadata = %d, want 0", EventVersion(msg))
	}
}
