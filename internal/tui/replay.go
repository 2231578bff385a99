// Package tui steps through a solver run in the terminal, replaying each
// move on a live arrangement.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/SeamusWaldron/nxcube"
	"github.com/SeamusWaldron/nxcube/internal/render"
)

const (
	defaultInterval = 400 * time.Millisecond
	minInterval     = 25 * time.Millisecond
	maxInterval     = 3200 * time.Millisecond
	outlineHeight   = 8
	recentMoves     = 20
)

type tickMsg struct{ gen int }

// Model replays a step sequence forwards and backwards over a copy of the
// starting arrangement.
type Model struct {
	start *nxcube.Arrangement
	a     *nxcube.Arrangement
	steps []nxcube.Step
	total int // moves in steps

	pos   int // steps consumed
	moves int // moves applied

	playing  bool
	gen      int
	interval time.Duration
	showNet  bool
	color    bool
	quitting bool

	keys    keyMap
	help    help.Model
	outline viewport.Model
}

// New returns a replay of steps starting from start. start is not modified.
func New(start *nxcube.Arrangement, steps []nxcube.Step, color bool) *Model {
	total := 0
	for _, st := range steps {
		if _, ok := st.(nxcube.Move); ok {
			total++
		}
	}

	vp := viewport.New(80, outlineHeight)
	vp.SetContent(render.Outline(steps, color))

	return &Model{
		start:    start.Clone(),
		a:        start.Clone(),
		steps:    steps,
		total:    total,
		interval: defaultInterval,
		showNet:  true,
		color:    color,
		keys:     defaultKeyMap(),
		help:     help.New(),
		outline:  vp,
	}
}

// Run opens the replay full screen until the user quits.
func Run(start *nxcube.Arrangement, steps []nxcube.Step, color bool) error {
	p := tea.NewProgram(New(start, steps, color), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("replay error: %w", err)
	}
	return nil
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) tick() tea.Cmd {
	gen := m.gen
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.outline.Width = msg.Width
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Next):
			m.pause()
			m.forward()

		case key.Matches(msg, m.keys.Prev):
			m.pause()
			m.back()

		case key.Matches(msg, m.keys.Play):
			if m.playing {
				m.pause()
				break
			}
			if m.Done() {
				m.reset()
			}
			m.playing = true
			m.gen++
			return m, m.tick()

		case key.Matches(msg, m.keys.Reset):
			m.pause()
			m.reset()

		case key.Matches(msg, m.keys.End):
			m.pause()
			for m.forward() {
			}

		case key.Matches(msg, m.keys.Net):
			m.showNet = !m.showNet

		case key.Matches(msg, m.keys.Faster):
			m.interval = max(m.interval/2, minInterval)

		case key.Matches(msg, m.keys.Slower):
			m.interval = min(m.interval*2, maxInterval)

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll

		default:
			var cmd tea.Cmd
			m.outline, cmd = m.outline.Update(msg)
			return m, cmd
		}

	case tickMsg:
		if !m.playing || msg.gen != m.gen {
			return m, nil
		}
		if !m.forward() {
			m.playing = false
			return m, nil
		}
		return m, m.tick()
	}

	return m, nil
}

func (m *Model) pause() {
	if m.playing {
		m.playing = false
		m.gen++
	}
}

// forward applies the next move, passing over annotations. It reports false
// at the end of the sequence.
func (m *Model) forward() bool {
	for m.pos < len(m.steps) {
		st := m.steps[m.pos]
		m.pos++
		if mv, ok := st.(nxcube.Move); ok {
			m.a.Apply(mv)
			m.moves++
			return true
		}
	}
	return false
}

// back undoes the last applied move.
func (m *Model) back() bool {
	for m.pos > 0 {
		m.pos--
		if mv, ok := m.steps[m.pos].(nxcube.Move); ok {
			m.a.Apply(mv.Inverse())
			m.moves--
			// leave annotations directly before the move unconsumed
			for m.pos > 0 {
				if _, ok := m.steps[m.pos-1].(nxcube.Annotation); !ok {
					break
				}
				m.pos--
			}
			return true
		}
	}
	return false
}

func (m *Model) reset() {
	m.a = m.start.Clone()
	m.pos = 0
	m.moves = 0
}

// Done reports whether every move has been applied.
func (m *Model) Done() bool {
	return m.moves == m.total
}

// Arrangement returns a copy of the replayed arrangement.
func (m *Model) Arrangement() *nxcube.Arrangement {
	return m.a.Clone()
}

// Moves returns how many moves have been applied.
func (m *Model) Moves() int {
	return m.moves
}

// Context returns the latest level-1 and level-2 annotation at or before
// the current position. The level-2 text is empty when a new phase began
// after it.
func (m *Model) Context() (phase, step string) {
	for i := m.pos - 1; i >= 0; i-- {
		an, ok := m.steps[i].(nxcube.Annotation)
		if !ok {
			continue
		}
		if an.Level <= 1 {
			return an.Text, step
		}
		if step == "" {
			step = an.Text
		}
	}
	return "", step
}

func (m *Model) View() string {
	if m.quitting {
		return "Replay ended.\n"
	}

	var b strings.Builder

	b.WriteString(render.TitleStyle.Render(fmt.Sprintf("nxcube replay: %dx%d", m.a.Degree(), m.a.Degree())))
	b.WriteString("\n\n")

	progress := fmt.Sprintf("Move %d/%d", m.moves, m.total)
	if m.playing {
		progress += fmt.Sprintf(" [PLAYING %s/move]", m.interval)
	}
	b.WriteString(render.StatusStyle.Render(progress))
	b.WriteString("\n")

	phase, step := m.Context()
	if phase != "" {
		b.WriteString(fmt.Sprintf("Phase: %s\n", render.PhaseStyle.Render(phase)))
	}
	if step != "" {
		b.WriteString(fmt.Sprintf("Step:  %s\n", step))
	}
	if m.a.IsSolved() {
		b.WriteString(fmt.Sprintf("Cube State: %s\n", render.PhaseStyle.Render("SOLVED!")))
	}
	b.WriteString("\n")

	if recent := m.recent(); recent != "" {
		b.WriteString("Moves: ")
		b.WriteString(render.MoveStyle.Render(recent))
		b.WriteString("\n\n")
	}

	if m.showNet {
		b.WriteString(render.Net(m.a, m.color))
		b.WriteString("\n")
	}

	b.WriteString(m.outline.View())
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")

	return b.String()
}

func (m *Model) recent() string {
	var out []string
	for i := m.pos - 1; i >= 0 && len(out) < recentMoves; i-- {
		if mv, ok := m.steps[i].(nxcube.Move); ok {
			out = append(out, mv.String())
		}
	}
	if len(out) == 0 {
		return ""
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	s := strings.Join(out, " ")
	if m.moves > recentMoves {
		s = "... " + s
	}
	return s
}
