package trace

import (
	"context"
	"encoding/hex"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"habittrainer/internal/interval"
)

func newTestRecorder(t *testing.T) (*Recorder, *tracetest.SpanRecorder) {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return NewRecorder(tp), sr
}

func attrs(span sdktrace.ReadOnlySpan) map[attribute.Key]attribute.Value {
	out := make(map[attribute.Key]attribute.Value)
	for _, kv := range span.Attributes() {
		out[kv.Key] = kv.Value
	}
	return out
}

// record feeds every traceable result of the timer into r.
func record(r *Recorder, now time.Time, res interval.Result) {
	if ev, ok := FromResult(res, now); ok {
		r.Record(ev)
	}
}

func TestFromResult(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name string
		res  interval.Result
		want EventType
		ok   bool
	}{
		{"plain tick", interval.Result{}, "", false},
		{"notify", interval.Result{Notify: true}, EventCycleExpired, true},
		{"start", interval.Result{Adjustment: interval.AdjustStarted}, EventCycleStart, true},
		{"grow", interval.Result{Adjustment: interval.AdjustGrew}, EventFeedback, true},
		{"shrink", interval.Result{Adjustment: interval.AdjustShrank}, EventFeedback, true},
		{"hold", interval.Result{Adjustment: interval.AdjustHeld}, EventFeedback, true},
		{"mild shrink", interval.Result{Adjustment: interval.AdjustMildShrank}, EventAutoShrink, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, ok := FromResult(tt.res, now)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, ev.Type)
		})
	}
}

func TestRecorder_SpanPerCycle(t *testing.T) {
	r, sr := newTestRecorder(t)
	tm := interval.New()
	now := time.Now()

	record(r, now, tm.Start())
	for range 32 {
		now = now.Add(time.Second)
		record(r, now, tm.Tick())
	}
	record(r, now, tm.Grow())

	ended := sr.Ended()
	require.Len(t, ended, 1)
	span := ended[0]
	assert.Equal(t, SpanCycle, span.Name())

	a := attrs(span)
	assert.Equal(t, int64(30), a[AttrInterval].AsInt64())
	assert.Equal(t, string(interval.AdjustGrew), a[AttrOutcome].AsString())
	assert.Equal(t, int64(2), a[AttrOverrun].AsInt64())
	assert.Equal(t, int64(1), a[AttrCycle].AsInt64())
	assert.Equal(t, r.Session(), a[AttrSession].AsString())

	require.Len(t, span.Events(), 1)
	assert.Equal(t, "expired", span.Events()[0].Name)

	r.Close()
	ended = sr.Ended()
	require.Len(t, ended, 2)
	a = attrs(ended[1])
	assert.Equal(t, int64(42), a[AttrInterval].AsInt64())
	assert.Equal(t, int64(2), a[AttrCycle].AsInt64())
	assert.Equal(t, OutcomeAbandoned, a[AttrOutcome].AsString())
}

func TestRecorder_AutoShrinkEndsCycle(t *testing.T) {
	r, sr := newTestRecorder(t)
	tm := interval.New()
	now := time.Now()

	record(r, now, tm.Start())
	for range 41 {
		now = now.Add(time.Second)
		record(r, now, tm.Tick())
	}

	ended := sr.Ended()
	require.Len(t, ended, 1)
	a := attrs(ended[0])
	assert.Equal(t, string(interval.AdjustMildShrank), a[AttrOutcome].AsString())
	assert.Equal(t, int64(11), a[AttrOverrun].AsInt64())
	assert.Equal(t, 1, len(sr.Started())-len(ended))
}

func TestRecorder_CloseWithoutCycle(t *testing.T) {
	r, sr := newTestRecorder(t)
	r.Close()
	assert.Empty(t, sr.Ended())
}

func TestRecorder_NilProvider(t *testing.T) {
	r := NewRecorder(nil)
	r.Record(Event{Type: EventCycleStart, Timestamp: time.Now(), IntervalSeconds: 30})
	r.Close()
}

func TestNewSessionID(t *testing.T) {
	id := NewSessionID()
	assert.Len(t, id, 32)
	_, err := hex.DecodeString(id)
	assert.NoError(t, err)
	assert.NotEqual(t, id, NewSessionID())
}
