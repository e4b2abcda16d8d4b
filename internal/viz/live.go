package viz

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/mselway/skyrocket/internal/plan"
	"github.com/mselway/skyrocket/internal/rocket"
	"github.com/mselway/skyrocket/internal/sim"
)

const (
	width           = 80
	height          = 24
	historyCapacity = 600
)

type TickMsg time.Time

// planMsg carries a fresh draw back from the source.
type planMsg struct{ draw []float64 }

var flameFrames = []rune{'░', '▒', '▓'}

// Model runs the live flight view.
type Model struct {
	engine        *sim.Engine
	source        sim.DrawSource
	fps           int
	width, height int
	canvas        *Canvas
	trail         []struct{ x, y float64 }
	trailCap      int
	running       bool
	last          time.Time
	frame         int
	altHistory    []float64
	speedHistory  []float64
	metricNames   []string
}

// NewModel wires the view to an engine and the draw source that feeds it.
// Metrics attached to the engine before this call get a panel row each.
func NewModel(engine *sim.Engine, source sim.DrawSource, fps, trailCap int) Model {
	if fps <= 0 {
		fps = 60
	}
	if trailCap <= 0 {
		trailCap = 120
	}
	names := make([]string, 0)
	for name := range engine.MetricValues() {
		names = append(names, name)
	}
	sort.Strings(names)

	return Model{
		engine:       engine,
		source:       source,
		fps:          fps,
		width:        width,
		height:       height,
		canvas:       NewCanvas(width, height),
		trail:        make([]struct{ x, y float64 }, 0, trailCap),
		trailCap:     trailCap,
		running:      true,
		last:         time.Now(),
		altHistory:   make([]float64, 0, historyCapacity),
		speedHistory: make([]float64, 0, historyCapacity),
		metricNames:  names,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input, frame ticks, and plan deliveries.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "t":
			names := ThemeNames()
			for i, name := range names {
				if name == CurrentTheme.Name {
					SetTheme(names[(i+1)%len(names)])
					break
				}
			}
		}
	case TickMsg:
		now := time.Time(msg)
		elapsed := now.Sub(m.last).Seconds()
		m.last = now

		var cmds []tea.Cmd
		if m.running {
			if elapsed > 0.1 {
				elapsed = 0.1 // a stalled terminal is not flight time
			}
			if m.engine.Dispatch(sim.Frame{Elapsed: elapsed}) {
				cmds = append(cmds, m.requestPlan())
			}
			m.frame++
			m.record()
			m.draw()
		}
		cmds = append(cmds, m.nextTick())
		return m, tea.Batch(cmds...)
	case planMsg:
		m.engine.Dispatch(sim.PlanReady{Draw: msg.draw})
	}
	return m, nil
}

func (m Model) nextTick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

// requestPlan fetches the next draw off the update loop; the launch
// happens once the resulting planMsg comes back through Update.
func (m Model) requestPlan() tea.Cmd {
	source := m.source
	return func() tea.Msg { return planMsg{draw: source.Draw(plan.DrawLen)} }
}

// record samples the lead rocket for the side-panel charts.
func (m *Model) record() {
	snap := m.engine.Snapshot()
	alt, speed := 0.0, 0.0
	if len(snap.Rockets) > 0 {
		alt = snap.Rockets[0].Y
		speed = snap.Rockets[0].Speed()
	}
	m.altHistory = append(m.altHistory, alt)
	if len(m.altHistory) > historyCapacity {
		m.altHistory = m.altHistory[1:]
	}
	m.speedHistory = append(m.speedHistory, speed)
	if len(m.speedHistory) > historyCapacity {
		m.speedHistory = m.speedHistory[1:]
	}
}

// draw renders the ground, the trail, and every live rocket.
func (m *Model) draw() {
	m.canvas.Clear()
	snap := m.engine.Snapshot()

	cw, ch := m.width*2, m.height*4
	groundY := ch - 6
	m.canvas.DrawLine(0, groundY+2, cw-1, groundY+2)

	for _, rk := range snap.Rockets {
		m.trail = append(m.trail, struct{ x, y float64 }{rk.X, rk.Y})
	}
	if len(m.trail) > m.trailCap {
		m.trail = m.trail[len(m.trail)-m.trailCap:]
	}

	s := m.worldScale(snap.Rockets)
	cx := cw / 2
	for _, pt := range m.trail {
		m.canvas.Set(cx+int(pt.x*s), groundY-int(pt.y*s))
	}
	for _, rk := range snap.Rockets {
		m.drawRocket(rk, s, cx, groundY)
	}
}

// worldScale fits the whole flight on screen, zooming out as rockets
// climb. The trail is included so the view never snaps between frames.
func (m *Model) worldScale(rockets []rocket.Rocket) float64 {
	extent := 60.0
	for _, rk := range rockets {
		extent = growExtent(extent, rk.X, rk.Y)
	}
	for _, pt := range m.trail {
		extent = growExtent(extent, pt.x, pt.y)
	}
	return float64(m.height*4-12) / extent
}

func growExtent(extent, x, y float64) float64 {
	if y > extent {
		extent = y
	}
	if a := math.Abs(x) * 2; a > extent {
		extent = a
	}
	return extent
}

// drawRocket renders one rocket tilted by its flight angle, with an
// exhaust flame while the thrusters burn.
func (m *Model) drawRocket(rk rocket.Rocket, s float64, cx, groundY int) {
	sx := cx + int(rk.X*s)
	sy := groundY - int(rk.Y*s)

	const body = 6.0
	nx := sx + int(body*math.Sin(rk.Angle))
	ny := sy - int(body*math.Cos(rk.Angle))
	tx := sx - int(body*math.Sin(rk.Angle))
	ty := sy + int(body*math.Cos(rk.Angle))

	m.canvas.DrawLine(tx, ty, nx, ny)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			m.canvas.Set(nx+dx, ny+dy)
		}
	}

	if rk.Left+rk.Right > 0 && rk.Fuel > 0 {
		fx := sx - int((body+4)*math.Sin(rk.Angle))
		fy := sy + int((body+4)*math.Cos(rk.Angle))
		m.canvas.DrawGlyph(fx, fy, flameFrames[m.frame%len(flameFrames)])
	}
}

// View renders the canvas beside the stats panel.
func (m Model) View() string {
	snap := m.engine.Snapshot()
	canvasView := canvasStyle().Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(headerStyle().Render("SKYROCKET") + "\n")
	if m.running {
		s.WriteString(runningStyle().Render("FLYING") + "\n\n")
	} else {
		s.WriteString(pausedStyle().Render("PAUSED") + "\n\n")
	}

	if len(m.altHistory) > 1 {
		chart := asciigraph.Plot(m.altHistory, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Altitude"))
		s.WriteString(graphStyle().Render(chart) + "\n\n")
	}

	s.WriteString(labelStyle().Render("Time") + valueStyle().Render(fmt.Sprintf("%.1fs", snap.Time)) + "\n")
	s.WriteString(labelStyle().Render("Launches") + valueStyle().Render(fmt.Sprintf("%d", snap.Launches)) + "\n")
	s.WriteString(labelStyle().Render("Aloft") + valueStyle().Render(fmt.Sprintf("%d", len(snap.Rockets))) + "\n")

	if len(snap.Rockets) > 0 {
		lead := snap.Rockets[0]
		s.WriteString("\n" + headerStyle().Render("LEAD ROCKET") + "\n")
		s.WriteString(labelStyle().Render("Altitude") + valueStyle().Render(fmt.Sprintf("%.1f", lead.Y)) + "\n")
		s.WriteString(labelStyle().Render("Drift") + valueStyle().Render(fmt.Sprintf("%.1f", lead.X)) + "\n")
		s.WriteString(labelStyle().Render("Speed") + Sparkline(m.speedHistory, 18) + valueStyle().Render(fmt.Sprintf(" %.0f", lead.Speed())) + "\n")
		s.WriteString(labelStyle().Render("Thrust") + valueStyle().Render(fmt.Sprintf("L %.0f / R %.0f", lead.Left, lead.Right)) + "\n")
		s.WriteString(labelStyle().Render("Fuel") + ProgressBar(lead.Fuel/m.engine.Physics().InitialFuel, 18) + "\n")
	}

	if len(m.metricNames) > 0 {
		vals := m.engine.MetricValues()
		s.WriteString("\n" + headerStyle().Render("METRICS") + "\n")
		for _, name := range m.metricNames {
			s.WriteString(labelStyle().Render(name) + valueStyle().Render(fmt.Sprintf("%.1f", vals[name])) + "\n")
		}
	}

	s.WriteString(helpStyle().Render("\n─────────────────────\nSP:Pause  T:Theme  Q:Quit"))

	statsView := panelStyle().Render(s.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
}
