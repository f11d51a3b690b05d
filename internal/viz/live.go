package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/gravlab/internal/config"
	"github.com/san-kum/gravlab/internal/nbody"
	"github.com/san-kum/gravlab/internal/vec"
)

const (
	canvasWidth     = 80
	canvasHeight    = 24
	historyCapacity = 600
	trailCapacity   = 400

	// maxFrameDt clamps the wall-clock delta fed into the
	// integrator so a stalled terminal doesn't turn into one huge,
	// unstable step.
	maxFrameDt = 0.1
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(42)
)

type TickMsg time.Time

// Model is the live terminal view: it owns the simulation and steps
// it by elapsed wall-clock time each frame, then renders the fresh
// snapshot. The tick completes before the view reads positions.
type Model struct {
	scenario *config.Scenario
	sys      *nbody.System
	theme    Theme

	canvas *Canvas
	camera *Camera

	t        float64
	lastTick time.Time
	fps      int
	running  bool
	err      error
	showHelp bool

	trails        [][]vec.Vec3
	energyHistory []float64
}

// NewModel builds the live view for a scenario. The scenario is kept
// for resets.
func NewModel(sc *config.Scenario, fps int) (Model, error) {
	sys, err := nbody.New(sc.G, sc.ToBodies())
	if err != nil {
		return Model{}, err
	}
	if fps <= 0 {
		fps = 60
	}

	return Model{
		scenario:      sc,
		sys:           sys,
		theme:         ThemeSpace,
		canvas:        NewCanvas(canvasWidth, canvasHeight),
		camera:        NewCamera(),
		fps:           fps,
		running:       true,
		trails:        make([][]vec.Vec3, sys.NumBodies()),
		energyHistory: make([]float64, 0, historyCapacity),
	}, nil
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
			m.lastTick = time.Time{}
		case "r":
			m.reset()
		case "t":
			m.theme = NextTheme(m.theme.Name)
		case "x":
			m.camera.RotateX(0.1)
		case "X":
			m.camera.RotateX(-0.1)
		case "y":
			m.camera.RotateY(0.1)
		case "Y":
			m.camera.RotateY(-0.1)
		case "z":
			m.camera.RotateZ(0.1)
		case "Z":
			m.camera.RotateZ(-0.1)
		case "+", "=":
			m.camera.ZoomIn()
		case "-", "_":
			m.camera.ZoomOut()
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running && m.err == nil {
			m.step(time.Time(msg))
		}
		return m, m.tick()
	}
	return m, nil
}

// step advances the simulation by the elapsed wall-clock time.
func (m *Model) step(now time.Time) {
	dt := 0.0
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now
	if dt > maxFrameDt {
		dt = maxFrameDt
	}

	if err := m.sys.Step(dt); err != nil {
		m.err = err
		return
	}
	if err := m.sys.Validate(); err != nil {
		m.err = err
		m.running = false
		return
	}
	m.t += dt

	snapshot := m.sys.Snapshot()
	for i, b := range snapshot {
		m.trails[i] = append(m.trails[i], b.Position)
		if len(m.trails[i]) > trailCapacity {
			m.trails[i] = m.trails[i][1:]
		}
	}

	m.energyHistory = append(m.energyHistory, m.sys.Energy())
	if len(m.energyHistory) > historyCapacity {
		m.energyHistory = m.energyHistory[1:]
	}
}

// reset rebuilds the system from the scenario.
func (m *Model) reset() {
	sys, err := nbody.New(m.scenario.G, m.scenario.ToBodies())
	if err != nil {
		m.err = err
		return
	}
	m.sys = sys
	m.t = 0
	m.err = nil
	m.lastTick = time.Time{}
	m.trails = make([][]vec.Vec3, sys.NumBodies())
	m.energyHistory = m.energyHistory[:0]
	m.running = true
}

// draw renders trails then bodies into the canvas. Consecutive trail
// points are joined with line segments so fast-moving bodies leave an
// unbroken track.
func (m *Model) draw() {
	m.canvas.Clear()
	sw, sh := m.canvas.Width*2, m.canvas.Height*4

	for _, trail := range m.trails {
		prevX, prevY := 0, 0
		hasPrev := false
		for _, p := range trail {
			x, y, _, ok := m.camera.Project(p, sw, sh)
			if !ok {
				hasPrev = false
				continue
			}
			if hasPrev {
				m.canvas.DrawLine(prevX, prevY, x, y)
			} else {
				m.canvas.Set(x, y)
			}
			prevX, prevY = x, y
			hasPrev = true
		}
	}

	for _, b := range m.sys.Snapshot() {
		if x, y, _, ok := m.camera.Project(b.Position, sw, sh); ok {
			m.canvas.DrawCircle(x, y, m.camera.ProjectRadius(b.Radius, sw, sh))
		}
	}
}

func (m Model) View() string {
	m.draw()

	headerStyle := lipgloss.NewStyle().Foreground(m.theme.Primary).Bold(true).MarginBottom(1)
	labelStyle := lipgloss.NewStyle().Foreground(m.theme.Muted).Width(12)
	valueStyle := lipgloss.NewStyle().Foreground(m.theme.Text)
	graphStyle := lipgloss.NewStyle().Foreground(m.theme.Accent).Padding(1, 0)
	helpStyle := lipgloss.NewStyle().Foreground(m.theme.Muted).MarginTop(2)
	errStyle := lipgloss.NewStyle().Foreground(m.theme.Error).Bold(true)

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.scenario.Name)) + "\n")

	status := "RUNNING"
	if m.err != nil {
		status = "DEGENERATE"
	} else if !m.running {
		status = "PAUSED"
	}
	s.WriteString(status + "\n\n")

	if len(m.energyHistory) > 1 {
		chart := asciigraph.Plot(m.energyHistory, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Energy"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.2fs", m.t)) + "\n")
	s.WriteString(labelStyle.Render("Bodies") + valueStyle.Render(fmt.Sprintf("%d", m.sys.NumBodies())) + "\n")
	p := m.sys.Momentum()
	s.WriteString(labelStyle.Render("|Momentum|") + valueStyle.Render(fmt.Sprintf("%.3g", p.Length())) + "\n")

	s.WriteString("\nBODIES\n")
	for i, b := range m.sys.Snapshot() {
		marker := lipgloss.NewStyle().Foreground(lipgloss.Color(b.Color.Hex())).Render("●")
		s.WriteString(fmt.Sprintf("%s %d  (%.2f, %.2f, %.2f)\n", marker, i, b.Position.X, b.Position.Y, b.Position.Z))
	}

	if m.err != nil {
		s.WriteString("\n" + errStyle.Render(m.err.Error()) + "\n")
	}

	s.WriteString(helpStyle.Render("\n─────────────────────\nSP:Pause R:Reset Q:Quit\nT:Theme xyz/XYZ:Rotate +-:Zoom ?:Help"))

	canvasView := canvasStyle.Render(m.canvas.String())
	statsView := statsStyle.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)

	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume simulation  ║
║  R        - Reset simulation         ║
║  Q        - Quit                     ║
║  X/Y/Z    - Rotate camera (shift:-)  ║
║  + / -    - Zoom in / out            ║
║  T        - Cycle themes             ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}
