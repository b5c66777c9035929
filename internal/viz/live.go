package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/spinwheel/internal/sim"
	"github.com/san-kum/spinwheel/internal/wheel"
)

const (
	defaultCanvasWidth  = 64
	defaultCanvasHeight = 24
	statsPanelWidth     = 38
	historyCapacity     = 240
)

type TickMsg time.Time

// Model is the live terminal view: it owns the wheel, steps it from wall
// clock time on every tick, and maps key presses to the wheel's triggers.
type Model struct {
	wheel    *wheel.Wheel
	governor sim.Governor
	theme    Theme
	canvas   *Canvas

	paused   bool
	t        float64
	lastTick time.Time

	speedHistory []float64
	impulses     int
	resets       int
}

// NewModel sizes the wheel's pixel space to the canvas sub-pixel grid so a
// terminal resize maps directly onto the simulation's resize operation.
// governor may be nil.
func NewModel(w *wheel.Wheel, governor sim.Governor, theme Theme) Model {
	canvas := NewCanvas(defaultCanvasWidth, defaultCanvasHeight)
	w.Resize(canvas.SubWidth(), canvas.SubHeight())

	return Model{
		wheel:        w,
		governor:     governor,
		theme:        theme,
		canvas:       canvas,
		lastTick:     time.Now(),
		speedHistory: make([]float64, 0, historyCapacity),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.wheel.ApplySpinImpulse()
			m.impulses++
		case "r":
			m.wheel.ResetBall()
			m.resets++
		case "p":
			m.paused = !m.paused
			m.lastTick = time.Now()
		case "t":
			m.theme = NextTheme(m.theme)
		}

	case tea.WindowSizeMsg:
		cw := msg.Width - statsPanelWidth - 6
		if cw < 20 {
			cw = 20
		}
		ch := msg.Height - 3
		if ch < 10 {
			ch = 10
		}
		m.canvas = NewCanvas(cw, ch)
		m.wheel.Resize(m.canvas.SubWidth(), m.canvas.SubHeight())

	case TickMsg:
		now := time.Time(msg)
		dt := sim.ClampStep(now.Sub(m.lastTick).Seconds())
		m.lastTick = now

		if !m.paused {
			if m.governor != nil {
				m.governor.Adjust(m.wheel, m.t)
			}
			m.wheel.Update(dt)
			m.t += dt

			m.speedHistory = append(m.speedHistory, m.wheel.BallSpeed())
			if len(m.speedHistory) > historyCapacity {
				m.speedHistory = m.speedHistory[1:]
			}
		}

		return m, tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
	}

	return m, nil
}

func (m Model) View() string {
	m.canvas.Clear()
	RenderWheel(m.canvas, m.wheel)

	canvasStyle := lipgloss.NewStyle().Padding(1, 2).Foreground(m.theme.Primary)
	statsStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(m.theme.Muted).
		Padding(1, 2).
		Width(statsPanelWidth)
	headerStyle := lipgloss.NewStyle().Foreground(m.theme.Primary).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(m.theme.Muted).Width(12)
	valueStyle := lipgloss.NewStyle().Foreground(m.theme.Text)
	accentStyle := lipgloss.NewStyle().Foreground(m.theme.Accent).Bold(true)
	graphStyle := lipgloss.NewStyle().Foreground(m.theme.Secondary).Padding(1, 0)
	helpStyle := lipgloss.NewStyle().Foreground(m.theme.Muted).MarginTop(1)

	var s strings.Builder
	s.WriteString(headerStyle.Render("SPINWHEEL") + "\n")
	if m.paused {
		s.WriteString("PAUSED\n\n")
	} else {
		s.WriteString("RUNNING\n\n")
	}

	cfg := m.wheel.Config()
	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.1fs", m.t)) + "\n")
	s.WriteString(labelStyle.Render("Wheel ω") + valueStyle.Render(fmt.Sprintf("%.2f rad/s", m.wheel.Omega)) + "\n")
	deg := math.Mod(m.wheel.Angle, 2*math.Pi) / math.Pi * 180
	if deg < 0 {
		deg += 360
	}
	s.WriteString(labelStyle.Render("Angle") + valueStyle.Render(fmt.Sprintf("%.0f°", deg)) + "\n")
	s.WriteString(labelStyle.Render("Ball speed") + valueStyle.Render(fmt.Sprintf("%.2f m/s", m.wheel.BallSpeed()/cfg.PixelsPerMeter)) + "\n")
	s.WriteString(labelStyle.Render("Ball spin") + valueStyle.Render(fmt.Sprintf("%.2f rad/s", m.wheel.Ball.SpinOmega)) + "\n")

	contact := "air"
	switch {
	case m.wheel.LastContact.Touching && m.wheel.LastContact.Sticking:
		contact = "grip"
	case m.wheel.LastContact.Touching:
		contact = "slide"
	}
	if contact == "air" {
		s.WriteString(labelStyle.Render("Contact") + valueStyle.Render(contact) + "\n")
	} else {
		s.WriteString(labelStyle.Render("Contact") + accentStyle.Render(contact) + "\n")
	}

	s.WriteString(labelStyle.Render("Impulses") + valueStyle.Render(fmt.Sprintf("%d", m.impulses)) + "\n")
	s.WriteString(labelStyle.Render("Resets") + valueStyle.Render(fmt.Sprintf("%d", m.resets)) + "\n")
	s.WriteString(labelStyle.Render("Theme") + valueStyle.Render(m.theme.Name) + "\n")

	if len(m.speedHistory) > 1 {
		chart := asciigraph.Plot(m.speedHistory,
			asciigraph.Height(5),
			asciigraph.Width(statsPanelWidth-8),
			asciigraph.Caption("ball speed (px/s)"),
		)
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	s.WriteString(helpStyle.Render("SP:Spin R:Reset P:Pause\nT:Theme Q:Quit"))

	canvasView := canvasStyle.Render(m.canvas.String())
	statsView := statsStyle.Render(s.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
}
