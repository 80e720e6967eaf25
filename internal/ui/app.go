package ui

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"habittrainer/internal/haptic"
	"habittrainer/internal/interval"
	"habittrainer/internal/trace"
	"habittrainer/internal/ui/textutil"
)

// DefaultTickPeriod is the countdown cadence of the device.
const DefaultTickPeriod = time.Second

// WatchOptions configures a WatchModel. Zero fields get defaults.
type WatchOptions struct {
	Timer      *interval.Timer
	Vibrator   haptic.Vibrator
	Recorder   *trace.Recorder
	Keybinds   *KeybindRegistry
	TickPeriod time.Duration
	// Context bounds haptic playback.
	Context context.Context
	// Now is used for trace timestamps.
	Now func() time.Time
}

// WatchModel is the watch face. It owns the single timer and is the only
// caller of its operations.
type WatchModel struct {
	Timer    *interval.Timer
	Vibrator haptic.Vibrator
	Recorder *trace.Recorder
	Keybinds *KeybindRegistry
	Period   time.Duration

	ctx    context.Context
	now    func() time.Time
	help   help.Model
	gen    int  // current tick chain
	flash  bool // elapsed pulse shown on this tick
	hapErr error
	width  int
	height int
}

// NewWatchModel creates a WatchModel from opts.
func NewWatchModel(opts WatchOptions) *WatchModel {
	if opts.Timer == nil {
		opts.Timer = interval.New()
	}
	if opts.Vibrator == nil {
		opts.Vibrator = haptic.Nop{}
	}
	if opts.Recorder == nil {
		opts.Recorder = trace.NewRecorder(nil)
	}
	if opts.Keybinds == nil {
		opts.Keybinds = DefaultKeybinds()
	}
	if opts.TickPeriod <= 0 {
		opts.TickPeriod = DefaultTickPeriod
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	h := help.New()
	h.Styles.ShortKey = Styles.HelpKey
	h.Styles.ShortDesc = Styles.HelpDesc
	h.Styles.ShortSeparator = Styles.HelpDesc
	h.Styles.FullKey = Styles.HelpKey
	h.Styles.FullDesc = Styles.HelpDesc
	h.Styles.FullSeparator = Styles.HelpDesc
	return &WatchModel{
		Timer:    opts.Timer,
		Vibrator: opts.Vibrator,
		Recorder: opts.Recorder,
		Keybinds: opts.Keybinds,
		Period:   opts.TickPeriod,
		ctx:      opts.Context,
		now:      opts.Now,
		help:     h,
	}
}

// Mode returns the current watch mode.
func (m *WatchModel) Mode() WatchMode {
	return modeFor(m.Timer.State())
}

// Ensure WatchModel can be used as tea.Model via adapter.
var _ tea.Model = (*watchModelAdapter)(nil)

// watchModelAdapter wraps WatchModel to implement tea.Model.
type watchModelAdapter struct {
	*WatchModel
}

// AsTeaModel returns the model for tea.NewProgram.
func (m *WatchModel) AsTeaModel() tea.Model {
	return &watchModelAdapter{m}
}

// Init implements tea.Model.
func (a *watchModelAdapter) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a *watchModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return a, a.WatchModel.Update(msg)
}

// View implements tea.Model.
func (a *watchModelAdapter) View() string {
	return a.WatchModel.View()
}

// Update handles one message and returns the follow-up command.
func (m *WatchModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if _, cmd := m.Keybinds.Handle(msg); cmd != nil {
			return cmd
		}
		return nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return nil
	case ToggleHelpMsg:
		m.help.ShowAll = !m.help.ShowAll
		return nil
	case ButtonMsg:
		return m.press(msg.Button)
	case tickMsg:
		return m.tick(msg)
	case hapticDoneMsg:
		m.hapErr = msg.Err
		if msg.Err != nil {
			log.Printf("ui.WatchModel: haptic failed: %v", msg.Err)
		}
		return nil
	}
	return nil
}

// press applies a button to the timer. Select starts the session when idle
// and holds the interval otherwise.
func (m *WatchModel) press(b Button) tea.Cmd {
	var res interval.Result
	switch b {
	case ButtonUp:
		res = m.Timer.Grow()
	case ButtonDown:
		res = m.Timer.Shrink()
	case ButtonSelect:
		if !m.Timer.State().Running {
			res = m.Timer.Start()
			m.observe(res)
			m.gen++
			return tickCmd(m.Period, m.gen)
		}
		res = m.Timer.Hold()
	}
	m.observe(res)
	return nil
}

func (m *WatchModel) tick(msg tickMsg) tea.Cmd {
	if msg.Gen != m.gen || !m.Timer.State().Running {
		return nil
	}
	m.flash = false
	res := m.Timer.Tick()
	m.observe(res)

	next := tickCmd(m.Period, m.gen)
	if !res.Notify {
		return next
	}
	m.flash = true
	return tea.Batch(next, vibrateCmd(m.ctx, m.Vibrator))
}

// observe logs and traces a timer result.
func (m *WatchModel) observe(res interval.Result) {
	if res.Adjustment.Restarted() {
		log.Printf("ui.WatchModel: %s, interval=%ds overrun=%ds", res.Adjustment, res.IntervalSeconds, res.Overrun)
	}
	if ev, ok := trace.FromResult(res, m.now()); ok {
		m.Recorder.Record(ev)
	}
}

// View renders the watch face.
func (m *WatchModel) View() string {
	var b strings.Builder

	b.WriteString(Styles.Title.Render(textutil.Center("Habit Trainer", ScreenWidth+2)))
	b.WriteString("\n")

	text := m.Timer.DisplayText()
	mode := m.Mode()
	textStyle := Styles.Text
	if mode == ModeFeedback {
		textStyle = Styles.Prompt
	}
	screen := Styles.Screen
	if m.flash {
		screen = Styles.Flash
	}
	b.WriteString(screen.Render(textStyle.Render(text)))
	b.WriteString("\n")

	b.WriteString(Styles.Status.Render(textutil.Center(m.statusLine(), ScreenWidth+2)))
	b.WriteString("\n")
	if m.hapErr != nil {
		b.WriteString(Styles.Error.Render(textutil.Truncate("haptic: "+m.hapErr.Error(), ScreenWidth+2)))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(NewKeyMap(m.Keybinds, mode)))

	out := b.String()
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, out)
	}
	return out
}

func (m *WatchModel) statusLine() string {
	s := m.Timer.State()
	if !s.Running {
		return "not started"
	}
	if s.SecondsLeft < 0 {
		return fmt.Sprintf("interval %ds, over by %ds", s.IntervalSeconds, -s.SecondsLeft)
	}
	return fmt.Sprintf("interval %ds", s.IntervalSeconds)
}
