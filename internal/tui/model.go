// Package tui is the terminal rendition of the prediction form: sixteen
// inputs with range feedback, a submit control bound to the controller's
// cycle, animated results with confetti, and an error toast.
package tui

import (
	"context"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"homeprice/internal/anim"
	"homeprice/internal/controller"
	"homeprice/internal/form"
	"homeprice/pkg/types"
)

const (
	frameInterval = 33 * time.Millisecond
	// chromeHeight is the title, toast and help lines around the viewport.
	chromeHeight = 6
)

// Submitter runs one prediction cycle. *controller.Controller satisfies it.
type Submitter interface {
	SubmitValues(ctx context.Context, values map[string]string) (controller.Outcome, error)
}

// Options tunes timings. Zero values take the package defaults.
type Options struct {
	Context           context.Context
	AnimationDuration time.Duration
	ToastDuration     time.Duration
	ScrollDelay       time.Duration
	ConfettiCount     int
	Rand              *rand.Rand
	Now               func() time.Time
}

func (o Options) withDefaults() Options {
	if o.Context == nil {
		o.Context = context.Background()
	}
	if o.AnimationDuration <= 0 {
		o.AnimationDuration = anim.CounterDuration
	}
	if o.ToastDuration <= 0 {
		o.ToastDuration = anim.ToastVisible
	}
	if o.ScrollDelay <= 0 {
		o.ScrollDelay = 300 * time.Millisecond
	}
	if o.ConfettiCount <= 0 {
		o.ConfettiCount = anim.ConfettiCount
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

type (
	outcomeMsg struct {
		epoch uint64
		out   controller.Outcome
		err   error
	}
	frameMsg  time.Time
	scrollMsg struct {
		epoch uint64
		gen   uint64
	}
	toastMsg struct {
		id    int
		at    time.Time
		final bool
	}
)

type resultView struct {
	gen    uint64
	resp   types.PredictResponse
	start  time.Time
	lakhs  anim.Counter
	crores anim.Counter
	burst  anim.Burst
}

func (r *resultView) animating(now time.Time) bool {
	el := now.Sub(r.start)
	return !r.lakhs.Done(el) || !r.crores.Done(el) || len(r.burst.Particles) > 0
}

// Model is the bubbletea model of the form.
type Model struct {
	sub  Submitter
	opts Options

	form   *form.Form
	inputs []textinput.Model
	focus  int

	viewport viewport.Model
	spinner  spinner.Model

	submitting bool
	// epoch changes on reset; outcomes from an older epoch are dropped.
	epoch    uint64
	shownGen uint64
	result   *resultView
	scrolled bool
	ticking  bool

	toast   *anim.Toast
	toastID int

	now time.Time
}

// New returns a form model submitting through sub.
func New(sub Submitter, opts Options) Model {
	opts = opts.withDefaults()
	m := Model{
		sub:      sub,
		opts:     opts,
		form:     form.New(),
		inputs:   make([]textinput.Model, len(form.Fields)),
		viewport: viewport.New(80, 20),
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
		now:      opts.Now(),
	}
	for i, f := range form.Fields {
		if f.Widget != form.WidgetNumber {
			continue
		}
		ti := textinput.New()
		ti.Prompt = ""
		ti.Width = 12
		ti.Placeholder = rangeHint(f)
		m.inputs[i] = ti
	}
	m.focusField()
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

// Submitting reports whether the submit control is disabled.
func (m Model) Submitting() bool { return m.submitting }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-chromeHeight, 3)
		m.refresh()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case outcomeMsg:
		return m.handleOutcome(msg)
	case frameMsg:
		m.observe(time.Time(msg))
		if m.result != nil && m.result.burst.Done(m.now.Sub(m.result.start)) {
			m.result.burst = anim.Burst{}
		}
		m.refresh()
		if m.result != nil && m.result.animating(m.now) {
			return m, frameTick()
		}
		m.ticking = false
		return m, nil
	case scrollMsg:
		if msg.epoch == m.epoch && m.result != nil && m.result.gen == msg.gen {
			m.viewport.GotoBottom()
			m.scrolled = true
		}
		return m, nil
	case toastMsg:
		if m.toast == nil || msg.id != m.toastID {
			return m, nil
		}
		m.observe(msg.at)
		if msg.final || m.toast.Phase(m.now) == anim.ToastGone {
			m.toast = nil
		}
		return m, nil
	case spinner.TickMsg:
		if !m.submitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.refresh()
		return m, cmd
	}
	if i := m.focus; i < len(form.Fields) && form.Fields[i].Widget == form.WidgetNumber {
		var cmd tea.Cmd
		m.inputs[i], cmd = m.inputs[i].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Submit):
		return m.submit()
	case key.Matches(msg, keys.Escape):
		m.escape()
		return m, nil
	case key.Matches(msg, keys.Next):
		return m.moveFocus(1)
	case key.Matches(msg, keys.Prev):
		return m.moveFocus(-1)
	case key.Matches(msg, keys.Enter):
		if m.focus == len(form.Fields) {
			return m.submit()
		}
		return m.moveFocus(1)
	}
	if m.focus >= len(form.Fields) {
		return m, nil
	}
	f := form.Fields[m.focus]
	if f.Widget == form.WidgetSelect {
		switch {
		case key.Matches(msg, keys.Left):
			m.cycleOption(m.focus, -1)
		case key.Matches(msg, keys.Right):
			m.cycleOption(m.focus, 1)
		}
		m.refresh()
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.form.SetAt(m.focus, m.inputs[m.focus].Value())
	m.refresh()
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.submitting {
		return m, nil
	}
	m.submitting = true
	sub, ctx, epoch := m.sub, m.opts.Context, m.epoch
	values := m.form.Values()
	run := func() tea.Msg {
		out, err := sub.SubmitValues(ctx, values)
		return outcomeMsg{epoch: epoch, out: out, err: err}
	}
	m.refresh()
	return m, tea.Batch(run, m.spinner.Tick)
}

func (m Model) handleOutcome(msg outcomeMsg) (tea.Model, tea.Cmd) {
	m.submitting = false
	m.observe(m.opts.Now())
	m.refresh()
	if msg.err != nil {
		if controller.IsInFlight(msg.err) {
			return m, nil
		}
		return m.showToast(msg.err.Error())
	}
	if msg.epoch != m.epoch || msg.out.Generation <= m.shownGen {
		return m, nil
	}
	m.shownGen = msg.out.Generation
	if !msg.out.OK() {
		return m.showToast(msg.out.Message)
	}
	resp := *msg.out.Response
	lakhs := anim.NewCounter(resp.PredictedPrice, "₹ ", " Lakhs")
	crores := anim.NewCounter(resp.PredictedPriceCrores, "₹ ", " Crores")
	lakhs.Duration, crores.Duration = m.opts.AnimationDuration, m.opts.AnimationDuration
	m.result = &resultView{
		gen:    msg.out.Generation,
		resp:   resp,
		start:  m.now,
		lakhs:  lakhs,
		crores: crores,
		burst:  anim.NewBurst(m.opts.Rand, m.opts.ConfettiCount),
	}
	m.scrolled = false
	m.refresh()
	epoch, gen := m.epoch, msg.out.Generation
	cmds := []tea.Cmd{tea.Tick(m.opts.ScrollDelay, func(time.Time) tea.Msg {
		return scrollMsg{epoch: epoch, gen: gen}
	})}
	if !m.ticking {
		m.ticking = true
		cmds = append(cmds, frameTick())
	}
	return m, tea.Batch(cmds...)
}

func (m Model) showToast(message string) (tea.Model, tea.Cmd) {
	t := anim.NewToast(message, m.now)
	t.Visible = m.opts.ToastDuration
	m.toastID++
	m.toast = &t
	id := m.toastID
	return m, tea.Batch(
		tea.Tick(t.Visible, func(at time.Time) tea.Msg { return toastMsg{id: id, at: at} }),
		tea.Tick(t.Visible+t.Exit, func(at time.Time) tea.Msg { return toastMsg{id: id, at: at, final: true} }),
	)
}

// escape dismisses the toast if one is open, otherwise closes the result
// view and resets the form.
func (m *Model) escape() {
	if m.toast != nil {
		m.toast = nil
		m.toastID++
		return
	}
	if m.result == nil {
		return
	}
	m.result = nil
	m.epoch++
	m.form.Reset()
	for i, f := range form.Fields {
		if f.Widget == form.WidgetNumber {
			m.inputs[i].SetValue(f.Initial())
		}
	}
	m.blurField()
	m.focus = 0
	m.focusField()
	m.refresh()
	m.viewport.GotoTop()
}

func (m Model) moveFocus(d int) (tea.Model, tea.Cmd) {
	m.blurField()
	n := len(form.Fields) + 1
	m.focus = ((m.focus+d)%n + n) % n
	cmd := m.focusField()
	m.refresh()
	return m, cmd
}

func (m *Model) blurField() {
	if m.focus >= len(form.Fields) {
		return
	}
	f := form.Fields[m.focus]
	if f.Widget == form.WidgetNumber {
		m.inputs[m.focus].Blur()
		m.form.Blur(f.Key)
	}
}

func (m *Model) focusField() tea.Cmd {
	if m.focus < len(form.Fields) && form.Fields[m.focus].Widget == form.WidgetNumber {
		return m.inputs[m.focus].Focus()
	}
	return nil
}

func (m *Model) cycleOption(i, d int) {
	f := form.Fields[i]
	if len(f.Options) == 0 {
		return
	}
	cur := 0
	if v, ok := form.ParseInt(m.form.Value(f.Key)); ok {
		for j, o := range f.Options {
			if o.Value == v {
				cur = j
				break
			}
		}
	}
	n := len(f.Options)
	next := f.Options[((cur+d)%n+n)%n]
	m.form.SetAt(i, itoa(next.Value))
}

// observe advances the model clock; it never moves backwards.
func (m *Model) observe(t time.Time) {
	if t.After(m.now) {
		m.now = t
	}
}

func (m *Model) refresh() { m.viewport.SetContent(m.body()) }

func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}
