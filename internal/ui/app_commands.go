package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"habittrainer/internal/haptic"
)

// tickCmd returns a command that schedules a tickMsg for chain gen after period.
// The timer never re-arms itself; Update calls this after every handled tick.
func tickCmd(period time.Duration, gen int) tea.Cmd {
	return tea.Tick(period, func(t time.Time) tea.Msg {
		return tickMsg{Gen: gen, Time: t}
	})
}

// vibrateCmd plays the elapsed pattern off the update loop.
func vibrateCmd(ctx context.Context, v haptic.Vibrator) tea.Cmd {
	return func() tea.Msg {
		return hapticDoneMsg{Err: v.Vibrate(ctx, haptic.DoublePulse)}
	}
}

// pressCmd returns a command that reports a button press.
func pressCmd(b Button) tea.Cmd {
	return func() tea.Msg {
		return ButtonMsg{Button: b}
	}
}

// DefaultKeybinds binds the device buttons, help and quit.
func DefaultKeybinds() *KeybindRegistry {
	reg := NewKeybindRegistry()
	reg.BindForMode([]string{"enter", " "}, "enter", "start", pressCmd(ButtonSelect), []WatchMode{ModeIdle})
	reg.BindForMode([]string{"up", "k"}, "↑/k", "increase", pressCmd(ButtonUp), []WatchMode{ModeFeedback})
	reg.BindForMode([]string{"enter", " "}, "enter", "maintain", pressCmd(ButtonSelect), []WatchMode{ModeFeedback})
	reg.BindForMode([]string{"down", "j"}, "↓/j", "decrease", pressCmd(ButtonDown), []WatchMode{ModeFeedback})
	reg.Bind([]string{"?"}, "?", "help", func() tea.Msg { return ToggleHelpMsg{} })
	reg.Bind([]string{"q", "ctrl+c"}, "q", "quit", tea.Quit)
	return reg
}
