package ui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"habittrainer/internal/haptic"
	"habittrainer/internal/interval"
	"habittrainer/internal/trace"
)

func newTestWatch(t *testing.T) (*WatchModel, *haptic.Recorder) {
	t.Helper()
	rec := &haptic.Recorder{}
	m := NewWatchModel(WatchOptions{
		Vibrator:   rec,
		TickPeriod: time.Millisecond,
	})
	return m, rec
}

// runCmd executes cmd and every command it batches, returning the messages.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// start presses select and returns the first tick.
func start(t *testing.T, m *WatchModel) tickMsg {
	t.Helper()
	msgs := runCmd(m.Update(ButtonMsg{Button: ButtonSelect}))
	require.Len(t, msgs, 1)
	tick, ok := msgs[0].(tickMsg)
	require.True(t, ok, "start should arm a tick, got %T", msgs[0])
	return tick
}

// tickN delivers n ticks and returns the messages produced along the way.
func tickN(t *testing.T, m *WatchModel, first tickMsg, n int) (tickMsg, []tea.Msg) {
	t.Helper()
	next := first
	var other []tea.Msg
	for range n {
		var armed bool
		for _, msg := range runCmd(m.Update(next)) {
			if tm, ok := msg.(tickMsg); ok {
				next = tm
				armed = true
				continue
			}
			other = append(other, msg)
		}
		require.True(t, armed, "every tick must re-arm the next one while running")
	}
	return next, other
}

func TestWatchModel_KeyDispatchesButton(t *testing.T) {
	m, _ := newTestWatch(t)
	msgs := runCmd(m.Update(keyMsg("enter")))
	assert.Equal(t, []tea.Msg{ButtonMsg{Button: ButtonSelect}}, msgs)
	assert.Nil(t, m.Update(keyMsg("x")))
}

func TestWatchModel_SelectStarts(t *testing.T) {
	m, _ := newTestWatch(t)
	assert.Equal(t, ModeIdle, m.Mode())

	tick := start(t, m)
	assert.Equal(t, 1, tick.Gen)
	assert.Equal(t, ModeCountdown, m.Mode())
	assert.Equal(t, interval.State{Running: true, IntervalSeconds: 30, SecondsLeft: 30}, m.Timer.State())
}

func TestWatchModel_TickBeforeStartIsDropped(t *testing.T) {
	m, _ := newTestWatch(t)
	assert.Nil(t, m.Update(tickMsg{Gen: 0}))
	assert.False(t, m.Timer.State().Running)
}

func TestWatchModel_StaleTickIsDropped(t *testing.T) {
	m, _ := newTestWatch(t)
	start(t, m)

	assert.Nil(t, m.Update(tickMsg{Gen: 7}))
	assert.Equal(t, 30, m.Timer.State().SecondsLeft)
}

func TestWatchModel_NotifyVibratesOnce(t *testing.T) {
	m, rec := newTestWatch(t)
	first := start(t, m)

	next, msgs := tickN(t, m, first, 29)
	assert.Empty(t, msgs)
	assert.Empty(t, rec.Patterns())

	next, msgs = tickN(t, m, next, 1)
	assert.Equal(t, []tea.Msg{hapticDoneMsg{}}, msgs)
	assert.Equal(t, []haptic.Pattern{haptic.DoublePulse}, rec.Patterns())
	assert.True(t, m.flash)
	assert.Equal(t, ModeFeedback, m.Mode())

	_, msgs = tickN(t, m, next, 5)
	assert.Empty(t, msgs)
	assert.Len(t, rec.Patterns(), 1)
	assert.False(t, m.flash)
	assert.Equal(t, -5, m.Timer.State().SecondsLeft)
}

func TestWatchModel_FeedbackButtons(t *testing.T) {
	tests := []struct {
		button Button
		want   int
	}{
		{ButtonUp, 42},
		{ButtonDown, 15},
		{ButtonSelect, 30},
	}
	for _, tt := range tests {
		t.Run(tt.button.String(), func(t *testing.T) {
			m, _ := newTestWatch(t)
			first := start(t, m)

			// Too early: ignored.
			assert.Nil(t, m.Update(ButtonMsg{Button: tt.button}))
			assert.Equal(t, 30, m.Timer.State().IntervalSeconds)

			tickN(t, m, first, 30)
			assert.Nil(t, m.Update(ButtonMsg{Button: tt.button}))
			assert.Equal(t, tt.want, m.Timer.State().IntervalSeconds)
			assert.Equal(t, tt.want, m.Timer.State().SecondsLeft)
			assert.Equal(t, ModeCountdown, m.Mode())
		})
	}
}

func TestWatchModel_TracesCycles(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	m := NewWatchModel(WatchOptions{
		Recorder:   trace.NewRecorder(tp),
		TickPeriod: time.Millisecond,
	})
	first := start(t, m)
	tickN(t, m, first, 30)
	m.Update(ButtonMsg{Button: ButtonDown})
	m.Recorder.Close()

	ended := sr.Ended()
	require.Len(t, ended, 2)
	assert.Equal(t, trace.SpanCycle, ended[0].Name())
	require.Len(t, ended[0].Events(), 1)
}

func TestWatchModel_View(t *testing.T) {
	m, _ := newTestWatch(t)
	assert.Contains(t, m.View(), interval.PromptStart)
	assert.Contains(t, m.View(), "not started")

	first := start(t, m)
	assert.Contains(t, m.View(), "30 seconds left")

	tickN(t, m, first, 32)
	view := m.View()
	assert.Contains(t, view, "increase")
	assert.Contains(t, view, "over by 2s")
}

func TestWatchModel_HapticError(t *testing.T) {
	m, _ := newTestWatch(t)
	m.Update(hapticDoneMsg{Err: errors.New("motor stalled")})
	assert.Contains(t, m.View(), "haptic: motor stalled")
}

func TestWatchModel_ToggleHelp(t *testing.T) {
	m, _ := newTestWatch(t)
	runCmd(m.Update(keyMsg("?")))
	assert.False(t, m.help.ShowAll, "key only dispatches the toggle message")

	m.Update(ToggleHelpMsg{})
	assert.True(t, m.help.ShowAll)
}

func TestWatchModel_AsTeaModel(t *testing.T) {
	m, _ := newTestWatch(t)
	tm := m.AsTeaModel()
	assert.Nil(t, tm.Init())

	next, cmd := tm.Update(ButtonMsg{Button: ButtonSelect})
	assert.Same(t, tm, next)
	assert.NotNil(t, cmd)
	assert.Contains(t, tm.View(), "30 seconds left")
}
