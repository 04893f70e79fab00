// Package tui shows the dial in a terminal and turns it with mouse drags.
package tui

import (
	"io"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iburimskiy/weightdial/internal/config"
	"github.com/iburimskiy/weightdial/internal/dial"
	"github.com/iburimskiy/weightdial/internal/gesture"
	"github.com/iburimskiy/weightdial/internal/radial"
	"github.com/iburimskiy/weightdial/internal/scene"
)

// Model is the Bubble Tea model for the terminal dial.
type Model struct {
	cfg     config.Config
	ctrl    *dial.Controller
	pointer *gesture.Tracker
	log     *slog.Logger

	width, height int
	scale         float64 // pixels per column
	layout        config.Layout
}

// New returns a model for cfg. cfg must be valid.
func New(cfg config.Config, log *slog.Logger) (*Model, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rng, err := cfg.Range()
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	opts := []dial.Option{dial.WithLogger(log)}
	if cfg.Clamp {
		opts = append(opts, dial.WithClamp())
	}
	m := &Model{cfg: cfg, log: log}
	m.ctrl = dial.New(rng, radial.Point{}, cfg.InitialValue, opts...)
	m.pointer = gesture.NewTracker(func(x, y float64) bool { return m.layout.Contains(x, y) })
	return m, nil
}

// Run starts the program with mouse motion reporting and blocks until the
// user quits.
func Run(m *Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

// Value returns the selected value.
func (m *Model) Value() float64 { return m.ctrl.Value() }

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case tea.MouseMsg:
		m.mouse(msg)

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			m.pointer.Cancel()
			m.ctrl.SetValue(m.cfg.InitialValue)
		}
	}
	return m, nil
}

// resize lays the dial out for a terminal of w x h cells. The dial keeps the
// configured window width in pixels, scaled to fit the columns.
func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	rows := m.dialRows()
	if w <= 0 || rows <= 0 {
		return
	}
	m.scale = float64(m.cfg.Window.Width) / float64(w)
	m.layout = m.cfg.LayoutFor(float64(w)*m.scale, float64(rows)*m.scale*CellAspect)
	m.ctrl.SetCenter(m.layout.Center)
	m.log.Debug("terminal resized", "cols", w, "rows", h, "scale", m.scale)
}

func (m *Model) dialRows() int {
	return m.height - HeaderHeight - FooterHeight
}

// pixel maps a cell in the dial area to the pixel at its center.
func (m *Model) pixel(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * m.scale, (float64(row) + 0.5) * m.scale * CellAspect
}

func (m *Model) mouse(msg tea.MouseMsg) {
	if m.scale == 0 {
		return
	}
	x, y := m.pixel(msg.X, msg.Y-HeaderHeight)

	var pressed bool
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		pressed = true
	case tea.MouseActionMotion:
		if !m.pointer.Active() {
			return
		}
		pressed = msg.Button == tea.MouseButtonLeft
	case tea.MouseActionRelease:
		pressed = false
	default:
		return
	}

	if ev, ok := m.pointer.Frame(pressed, x, y); ok {
		m.ctrl.Dispatch(ev)
	}
}

func (m *Model) View() string {
	if m.width <= 0 || m.dialRows() <= 0 {
		return ""
	}

	header := lipgloss.JoinVertical(lipgloss.Center,
		captionStyle.Render(config.Caption),
		valueStyle.Render(dial.FormatValue(m.ctrl.Value())),
	)
	header = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, header)

	g := newGrid(m.width, m.dialRows(), m.scale)
	g.draw(scene.Render(scene.Frame{Dial: m.ctrl.Snapshot(), Layout: m.layout}))

	help := helpStyle.Render("drag the dial · r reset · q quit")
	if m.ctrl.Phase() == dial.Dragging {
		help = helpStyle.Render("dragging")
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteString(strings.Repeat("\n", HeaderHeight-lipgloss.Height(header)+1))
	b.WriteString(g.String())
	b.WriteByte('\n')
	b.WriteString(help)
	return b.String()
}
