// Package viz renders a running simulation as a live terminal view:
// a height-over-time plot with a stats panel, advancing the world in
// real time.
package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/jsolberg/pointmass/internal/sim"
	"github.com/jsolberg/pointmass/internal/timing"
)

const (
	graphWidth      = 70
	graphHeight     = 16
	historyCapacity = 600
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

// TickMsg drives the frame loop.
type TickMsg time.Time

// Model is the bubbletea model wrapping a simulator.
type Model struct {
	simulator *sim.Simulator
	cfg       sim.Config
	title     string

	t       float64
	paused  bool
	heights []float64
	speeds  []float64
	clock   *timing.Clock
	fps     float64
	err     error
}

// NewModel returns a live view over the simulator. cfg.Dt sets both
// the physics step and the frame interval.
func NewModel(title string, s *sim.Simulator, cfg sim.Config) Model {
	return Model{simulator: s, cfg: cfg, title: title, clock: timing.NewClock()}
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Duration(m.cfg.Dt*float64(time.Second)), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		}
	case TickMsg:
		if wall := m.clock.Tick(); wall > 0 {
			m.fps = 1 / wall
		}
		if m.paused {
			return m, m.tick()
		}
		if m.t >= m.cfg.Duration {
			return m, tea.Quit
		}

		if err := m.simulator.World().Step(m.cfg.Dt); err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.t += m.cfg.Dt

		if ps := m.simulator.World().Particles(); len(ps) > 0 {
			m.heights = push(m.heights, ps[0].Position.Y)
			m.speeds = push(m.speeds, ps[0].Velocity.Magnitude())
		}
		return m, m.tick()
	}
	return m, nil
}

func push(history []float64, v float64) []float64 {
	history = append(history, v)
	if len(history) > historyCapacity {
		history = history[1:]
	}
	return history
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(m.title))
	b.WriteString("\n")

	if len(m.heights) > 1 {
		graph := asciigraph.Plot(m.heights,
			asciigraph.Height(graphHeight),
			asciigraph.Width(graphWidth),
			asciigraph.Caption("height (m)"),
		)
		b.WriteString(graphStyle.Render(graph))
		b.WriteString("\n")
	}

	b.WriteString(m.statsView())

	help := "space pause · q quit"
	if m.paused {
		help = "PAUSED · space resume · q quit"
	}
	b.WriteString(helpStyle.Render(help))
	b.WriteString("\n")
	return b.String()
}

func (m Model) statsView() string {
	var b strings.Builder

	row := func(label, value string) {
		b.WriteString(labelStyle.Render(label))
		b.WriteString(valueStyle.Render(value))
		b.WriteString("\n")
	}

	row("time", fmt.Sprintf("%.2f s", m.t))
	if m.fps > 0 {
		row("fps", fmt.Sprintf("%.0f", m.fps))
	}
	if ps := m.simulator.World().Particles(); len(ps) > 0 {
		p := ps[0]
		row("position", fmt.Sprintf("(%.2f, %.2f, %.2f)", p.Position.X, p.Position.Y, p.Position.Z))
		row("speed", fmt.Sprintf("%.2f m/s", p.Velocity.Magnitude()))
	}
	if len(m.speeds) > 0 {
		peak := 0.0
		for _, s := range m.speeds {
			if s > peak {
				peak = s
			}
		}
		row("peak speed", fmt.Sprintf("%.2f m/s", peak))
	}
	return b.String()
}

// Err reports a step failure that ended the view.
func (m Model) Err() error { return m.err }

// Run starts the live view and blocks until it exits.
func Run(title string, s *sim.Simulator, cfg sim.Config) error {
	p := tea.NewProgram(NewModel(title, s, cfg))
	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}
