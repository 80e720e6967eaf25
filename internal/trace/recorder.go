package trace

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Attribute keys set on cycle spans.
const (
	AttrSession  = "habittrainer.session.id"
	AttrCycle    = "habittrainer.cycle"
	AttrInterval = "habittrainer.interval.seconds"
	AttrOutcome  = "habittrainer.outcome"
	AttrOverrun  = "habittrainer.overrun.seconds"
)

// SpanCycle is the name of the span covering one countdown cycle.
const SpanCycle = "interval.cycle"

// OutcomeAbandoned marks a cycle still open when the recorder closed.
const OutcomeAbandoned = "abandoned"

// Recorder turns timer events into one span per countdown cycle.
// A cycle starts on session start, feedback or auto shrink and ends when the
// next one starts. Not safe for concurrent use; call from the event loop.
type Recorder struct {
	tracer  oteltrace.Tracer
	session string
	cycle   int
	span    oteltrace.Span
}

// NewRecorder creates a Recorder. A nil provider disables tracing.
func NewRecorder(tp oteltrace.TracerProvider) *Recorder {
	if tp == nil {
		tp = noop.NewTracerProvider()
	}
	return &Recorder{
		tracer:  tp.Tracer("habittrainer/interval"),
		session: NewSessionID(),
	}
}

// Session returns the ID attached to every span of this recorder.
func (r *Recorder) Session() string {
	return r.session
}

// Record applies ev to the current cycle span.
func (r *Recorder) Record(ev Event) {
	switch ev.Type {
	case EventCycleExpired:
		if r.span != nil {
			r.span.AddEvent("expired", oteltrace.WithTimestamp(ev.Timestamp))
		}
	case EventCycleStart, EventFeedback, EventAutoShrink:
		r.endCycle(ev)
		r.cycle++
		_, r.span = r.tracer.Start(context.Background(), SpanCycle,
			oteltrace.WithTimestamp(ev.Timestamp),
			oteltrace.WithAttributes(
				attribute.String(AttrSession, r.session),
				attribute.Int(AttrCycle, r.cycle),
				attribute.Int(AttrInterval, ev.IntervalSeconds),
			),
		)
	}
}

// Close ends the open cycle, if any.
func (r *Recorder) Close() {
	if r.span == nil {
		return
	}
	r.span.SetAttributes(attribute.String(AttrOutcome, OutcomeAbandoned))
	r.span.End()
	r.span = nil
}

func (r *Recorder) endCycle(ev Event) {
	if r.span == nil {
		return
	}
	r.span.SetAttributes(
		attribute.String(AttrOutcome, string(ev.Adjustment)),
		attribute.Int(AttrOverrun, ev.Overrun),
	)
	r.span.End(oteltrace.WithTimestamp(ev.Timestamp))
	r.span = nil
}
