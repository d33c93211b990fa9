package terminal

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/lao-tseu-is-alive/go-snowfield/pkg/field"
	"github.com/lao-tseu-is-alive/go-snowfield/pkg/simulation"
)

// Config tunes the terminal host.
type Config struct {
	FPS        float64 `mapstructure:"fps" json:"fps" yaml:"fps"`
	CellWidth  float64 `mapstructure:"cell_width" json:"cell_width" yaml:"cell_width"`
	CellHeight float64 `mapstructure:"cell_height" json:"cell_height" yaml:"cell_height"`
	StatusLine bool    `mapstructure:"status_line" json:"status_line" yaml:"status_line"`
}

func DefaultConfig() Config {
	return Config{FPS: 30, CellWidth: 8, CellHeight: 16, StatusLine: true}
}

// NewScreen creates and initialises the real terminal screen.
func NewScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return screen, nil
}

type host struct {
	screen    tcell.Screen
	drv       simulation.Driver
	canvas    *Canvas
	cfg       Config
	logger    *zap.Logger
	inside    bool
	particles []field.Particle
	quit      context.CancelFunc
}

// Run drives drv on an initialised screen until ctx is cancelled or the user
// quits with q, Esc or Ctrl-C. The screen is finalised before Run returns;
// stopping drv is left to the caller.
func Run(ctx context.Context, screen tcell.Screen, drv simulation.Driver, cfg Config, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.FPS <= 0 {
		cfg.FPS = DefaultConfig().FPS
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()
	screen.HideCursor()

	h := &host{
		screen: screen,
		drv:    drv,
		canvas: NewCanvas(screen, cfg.CellWidth, cfg.CellHeight),
		cfg:    cfg,
		logger: logger,
		quit:   cancel,
	}
	if err := h.resize(); err != nil {
		screen.Fini()
		return err
	}

	events := make(chan tcell.Event, 64)
	g, gctx := errgroup.WithContext(ctx)

	// PollEvent returns nil once the frame loop finalises the screen.
	g.Go(func() error {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-gctx.Done():
				return nil
			}
		}
	})

	g.Go(func() error {
		defer screen.Fini()
		return h.frameLoop(gctx, events)
	})

	logger.Info("terminal host running", zap.Float64("fps", cfg.FPS))
	return g.Wait()
}

func (h *host) frameLoop(ctx context.Context, events <-chan tcell.Event) error {
	interval := time.Duration(float64(time.Second) / h.cfg.FPS)
	limiter := rate.NewLimiter(rate.Limit(h.cfg.FPS), 1)
	for {
		if err := limiter.Wait(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		if err := h.drain(events); err != nil {
			return err
		}
		if ctx.Err() != nil {
			return nil
		}
		if err := h.drv.Tick(interval); err != nil {
			return fmt.Errorf("tick field: %w", err)
		}
		h.draw()
	}
}

// drain handles every pending event without blocking.
func (h *host) drain(events <-chan tcell.Event) error {
	for {
		select {
		case ev := <-events:
			if err := h.handle(ev); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (h *host) handle(ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			h.logger.Debug("quit requested")
			h.quit()
		}

	case *tcell.EventMouse:
		col, row := ev.Position()
		x, y := h.canvas.CellCenter(col, row)
		if !h.inside {
			h.inside = true
			h.drv.OnEnter()
		}
		h.drv.OnMove(x, y)

	case *tcell.EventFocus:
		if !ev.Focused && h.inside {
			h.inside = false
			h.drv.OnLeave()
		}

	case *tcell.EventResize:
		h.screen.Sync()
		return h.resize()
	}
	return nil
}

func (h *host) resize() error {
	w, ht := h.canvas.PixelSize()
	if err := h.drv.Resize(w, ht, 1); err != nil {
		return fmt.Errorf("resize field: %w", err)
	}
	return nil
}

func (h *host) draw() {
	snap := h.drv.Latest()
	h.particles = simulation.ParticlesFromProto(h.particles, snap)
	drawn := field.Render(h.canvas, h.particles, simulation.ExtentFromProto(snap), field.DefaultFill)
	if h.cfg.StatusLine {
		state := "drift"
		if snap.GetResetting() {
			state = "reset"
		}
		h.status(fmt.Sprintf(" %d/%d flakes | %s | frame %d | q quits ", drawn, len(h.particles), state, snap.GetFrame()))
	}
	h.screen.Show()
}

func (h *host) status(msg string) {
	_, rows := h.screen.Size()
	if rows == 0 {
		return
	}
	style := tcell.StyleDefault.Reverse(true)
	for i, r := range []rune(msg) {
		h.screen.SetContent(i, rows-1, r, nil, style)
	}
}
