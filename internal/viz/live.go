// Package viz renders the simulation in the terminal: a braille
// canvas for bodies and trails, a stats side panel, and key handling
// that maps raw input onto the simulation's command set. The camera
// (pan and zoom) lives entirely here; the simulation only ever sees
// unscaled world coordinates.
package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/tribody/internal/config"
	"github.com/san-kum/tribody/internal/sim"
)

const (
	canvasWidth  = 72
	canvasHeight = 22

	frameInterval = time.Second / 60

	// Clamp dt after a terminal stall so one late tick does not slam
	// the accumulator; the sim's own sub-step cap is the second line
	// of defense.
	maxFrameDt = 0.25

	historyCapacity = 600

	timeScaleFactor = 1.25
	zoomFactor      = 1.2
	minZoom         = 0.05
	maxZoom         = 50.0
)

type TickMsg time.Time

type Model struct {
	sim *sim.Simulation
	cfg *config.Config

	canvas     *Canvas
	palette    []lipgloss.Style
	camX, camY float64 // camera center, world coordinates
	zoom       float64

	energyHistory []float64
	lastTick      time.Time
	width, height int
	showHelp      bool
}

func NewModel(s *sim.Simulation, cfg *config.Config) Model {
	return Model{
		sim:     s,
		cfg:     cfg,
		canvas:  NewCanvas(canvasWidth, canvasHeight),
		palette: cellStyles(),
		camX:    cfg.World.Width / 2,
		camY:    cfg.World.Height / 2,
		zoom:    1.0,
	}
}

// Run starts the live view and blocks until the user quits.
func Run(s *sim.Simulation, cfg *config.Config) error {
	p := tea.NewProgram(NewModel(s, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		now := time.Time(msg)
		dt := frameInterval.Seconds()
		if !m.lastTick.IsZero() {
			if elapsed := now.Sub(m.lastTick).Seconds(); elapsed < maxFrameDt {
				dt = elapsed
			} else {
				dt = maxFrameDt
			}
		}
		m.lastTick = now

		m.sim.Step(dt)

		m.energyHistory = append(m.energyHistory, m.sim.Energy())
		if len(m.energyHistory) > historyCapacity {
			m.energyHistory = m.energyHistory[1:]
		}
		return m, tick()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	pan := 20.0 / m.zoom

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ":
		m.sim.TogglePause()
	case "r":
		m.sim.Reset()
		m.energyHistory = nil
	case ">", ".":
		m.setTimeScale(m.sim.TimeScale() * timeScaleFactor)
	case "<", ",":
		m.setTimeScale(m.sim.TimeScale() / timeScaleFactor)
	case "left", "h":
		m.camX -= pan
	case "right", "l":
		m.camX += pan
	case "up", "k":
		m.camY -= pan
	case "down", "j":
		m.camY += pan
	case "+", "=":
		m.zoom = min(m.zoom*zoomFactor, maxZoom)
	case "-", "_":
		m.zoom = max(m.zoom/zoomFactor, minZoom)
	case "c":
		m.camX = m.cfg.World.Width / 2
		m.camY = m.cfg.World.Height / 2
		m.zoom = 1.0
	case "?":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

func (m Model) setTimeScale(factor float64) {
	// The factor stays positive under multiplication by the step
	// constants, so the only rejection is numeric overflow; ignore it
	// and keep the previous scale.
	_ = m.sim.SetTimeScale(factor)
}

// project maps world coordinates to canvas sub-pixels through the
// camera.
func (m Model) project(wx, wy float64) (int, int) {
	base := min(
		float64(m.canvas.PxWidth())/m.cfg.World.Width,
		float64(m.canvas.PxHeight())/m.cfg.World.Height,
	)
	s := base * m.zoom
	px := (wx-m.camX)*s + float64(m.canvas.PxWidth())/2
	py := (wy-m.camY)*s + float64(m.canvas.PxHeight())/2
	return int(px), int(py)
}

func (m Model) View() string {
	m.canvas.Clear()

	bodies := m.sim.Bodies()
	for _, b := range bodies {
		trailColor := len(bodyColors) + b.ID%len(trailColors)
		for _, p := range b.Trail {
			x, y := m.project(p.X, p.Y)
			m.canvas.Set(x, y, trailColor)
		}
	}
	for _, b := range bodies {
		x, y := m.project(b.Position.X, b.Position.Y)
		m.canvas.FillCircle(x, y, 2, b.ID%len(bodyColors))
	}

	left := canvasStyle.Render(m.canvas.String(m.palette))
	right := statsStyle.Render(m.statsView())
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func (m Model) statsView() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("tribody"))
	b.WriteByte('\n')

	status := runningStyle.Render("running")
	switch {
	case m.sim.Collided():
		status = collidedStyle.Render("collided (r to reset)")
	case m.sim.Paused():
		status = pausedStyle.Render("paused")
	}
	row := func(label, value string) {
		b.WriteString(labelStyle.Render(label))
		b.WriteString(valueStyle.Render(value))
		b.WriteByte('\n')
	}

	row("status", status)
	row("sim time", fmt.Sprintf("%.1fs", m.sim.Elapsed()))
	row("time scale", fmt.Sprintf("%.2fx", m.sim.TimeScale()))
	row("zoom", fmt.Sprintf("%.2fx", m.zoom))
	row("energy", fmt.Sprintf("%.3g", m.sim.Energy()))

	if len(m.energyHistory) > 2 {
		graph := asciigraph.Plot(m.energyHistory,
			asciigraph.Height(6),
			asciigraph.Width(34),
			asciigraph.Caption("total energy"),
		)
		b.WriteByte('\n')
		b.WriteString(graphStyle.Render(graph))
		b.WriteByte('\n')
	}

	if m.showHelp {
		b.WriteString(helpStyle.Render(strings.Join([]string{
			"space  pause/resume",
			"r      reset",
			"< >    time scale",
			"arrows pan camera",
			"+ -    zoom",
			"c      recenter",
			"q      quit",
		}, "\n")))
	} else {
		b.WriteString(helpStyle.Render("? for help"))
	}

	return b.String()
}
