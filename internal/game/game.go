package game

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/weightdial/internal/config"
	"github.com/iburimskiy/weightdial/internal/dial"
	"github.com/iburimskiy/weightdial/internal/gesture"
	"github.com/iburimskiy/weightdial/internal/scene"
	"github.com/iburimskiy/weightdial/internal/sound"
)

const title = "Weight Dial - drag to turn, E: enter value, R: reset, Esc/Q: quit"

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.log = l
		}
	}
}

// WithSound plays a click on every whole value passed while dragging.
func WithSound(p *sound.Player) Option {
	return func(g *Game) { g.player = p }
}

// Game is the interactive dial window.
type Game struct {
	cfg    config.Config
	layout config.Layout
	ctrl   *dial.Controller

	pointer *gesture.Tracker
	detent  gesture.Detent
	player  *sound.Player
	fonts   *fonts
	log     *slog.Logger

	// input edge detection
	prevKey map[ebiten.Key]bool

	lastErr error
}

// New builds the window state for cfg. cfg must be valid.
func New(cfg config.Config, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rng, err := cfg.Range()
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:     cfg,
		layout:  cfg.Layout(),
		prevKey: map[ebiten.Key]bool{},
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(g)
	}

	var dopts []dial.Option
	if cfg.Clamp {
		dopts = append(dopts, dial.WithClamp())
	}
	dopts = append(dopts, dial.WithLogger(g.log))
	g.ctrl = dial.New(rng, g.layout.Center, cfg.InitialValue, dopts...)
	g.pointer = gesture.NewTracker(g.layout.Contains)
	g.detent.Cross(g.ctrl.Value())

	if g.fonts, err = loadFonts(); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	return g, nil
}

// Run opens the window and blocks until it is closed.
func (g *Game) Run() error {
	ebiten.SetWindowSize(g.cfg.Window.Width, g.cfg.Window.Height)
	ebiten.SetWindowTitle(title)

	g.log.Info("window open", "value", g.ctrl.Value(), "range", fmt.Sprintf("%d-%d", g.cfg.MinValue, g.cfg.MaxValue))
	err := ebiten.RunGame(g)
	g.player.Close()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	g.log.Info("window closed", "value", g.ctrl.Value())
	return nil
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	mouseX, mouseY := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && g.pointer.Active() {
		// Release and press within one tick; start a fresh drag.
		g.pointerFrame(false, float64(mouseX), float64(mouseY))
	}
	g.pointerFrame(pressed, float64(mouseX), float64(mouseY))

	if justPressed(ebiten.KeyE) {
		if err := g.promptValue(); err != nil {
			g.lastErr = err
		}
	}
	if justPressed(ebiten.KeyR) {
		g.setValue(g.cfg.InitialValue)
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

// pointerFrame feeds one frame of pointer state to the controller.
func (g *Game) pointerFrame(pressed bool, x, y float64) {
	ev, ok := g.pointer.Frame(pressed, x, y)
	if !ok {
		return
	}
	g.ctrl.Dispatch(ev)
	if ev.Kind == dial.DragStart {
		g.lastErr = nil
	}
	if g.detent.Cross(g.ctrl.Value()) && g.ctrl.Phase() == dial.Dragging {
		g.player.Click()
	}
}

func (g *Game) setValue(v float64) {
	g.pointer.Cancel()
	g.ctrl.SetValue(v)
	g.detent.Cross(g.ctrl.Value())
}

// promptValue asks for a value in a native dialog. The dialog blocks the
// game loop until it is closed.
func (g *Game) promptValue() error {
	current := dial.FormatValue(g.ctrl.Value())
	s, err := zenity.Entry(
		fmt.Sprintf("Value (%d to %d):", g.cfg.MinValue, g.cfg.MaxValue),
		zenity.Title("Set weight"),
		zenity.EntryText(current),
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}

	v, err := parseValue(s)
	if err != nil {
		return err
	}
	g.setValue(v)
	return nil
}

func parseValue(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	return v, nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	frame := scene.Frame{Dial: g.ctrl.Snapshot(), Layout: g.layout}
	for _, p := range scene.Render(frame) {
		g.drawPrimitive(screen, p)
	}

	if g.lastErr != nil {
		ebitenutil.DebugPrintAt(screen, "Error: "+g.lastErr.Error(), 12, 12)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

// ShowError reports err in a native dialog. Used when the window cannot be
// created at all.
func ShowError(err error) {
	_ = zenity.Error(err.Error(), zenity.Title("Weight Dial"), zenity.ErrorIcon)
}
