// Package viz renders the simulation live in the terminal with a braille
// dot canvas. It is the low-fi sibling of the raylib GUI: the same vertex
// stream, downsampled onto terminal sub-pixels.
package viz

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/galaxia/internal/engine"
	"github.com/san-kum/galaxia/internal/stats"
)

const (
	canvasWidth  = 100
	canvasHeight = 30

	// viewSpan is the world-space half-extent mapped onto the canvas.
	viewSpan = 1.5
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	canvasStyle = lipgloss.NewStyle().Padding(0, 1)
	statStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type TickMsg time.Time

// Model drives the engine from bubbletea's tick loop. Each tick is the
// "present frame" trigger; the r key is the reset trigger.
type Model struct {
	eng       *engine.Engine
	canvas    *Canvas
	frameRate int
	running   bool
	frames    int
	lastErr   error
}

func NewModel(eng *engine.Engine, frameRate int) Model {
	if frameRate <= 0 {
		frameRate = 60
	}
	return Model{
		eng:       eng,
		canvas:    NewCanvas(canvasWidth, canvasHeight),
		frameRate: frameRate,
		running:   true,
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.frameRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd { return m.tick() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			// a failed reset keeps the old population running
			m.lastErr = m.eng.Reset()
		}
	case TickMsg:
		if m.running {
			m.render(time.Time(msg))
			m.frames++
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) render(now time.Time) {
	verts := m.eng.Advance(now)
	m.canvas.Clear()

	subW := float64(m.canvas.Width * 2)
	subH := float64(m.canvas.Height * 4)

	// one dot per body: the first vertex of each triangle is close enough
	// to the centroid at terminal resolution
	for i := 0; i < len(verts); i += 3 {
		v := verts[i]
		x := (float64(v.X)/viewSpan + 1) / 2 * subW
		// terminal cells are taller than wide; y span is compressed
		y := (1 - float64(v.Y)/viewSpan) / 2 * subH
		m.canvas.Set(int(x), int(y))
	}
}

func (m Model) View() string {
	sum := stats.Summarize(m.eng.Store())

	header := headerStyle.Render(fmt.Sprintf("galaxia — %s", m.eng.Morphology()))
	info := statStyle.Render(fmt.Sprintf(
		"bodies %d (stars %d, jets %d)   mean r %.3f   mean v_t %.3f   frame %d",
		sum.Bodies, sum.Stars, sum.Jets, sum.MeanRadius, sum.MeanTangential, m.frames,
	))

	out := header + "\n" + canvasStyle.Render(m.canvas.String()) + "\n" + info
	if m.lastErr != nil {
		out += "\n" + errStyle.Render("reset failed: "+m.lastErr.Error())
	}
	out += "\n" + helpStyle.Render("space pause · r reset · q quit")
	return out
}
