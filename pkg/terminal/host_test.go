package terminal

import (
	"context"
	"image/color"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/lao-tseu-is-alive/go-snowfield/pkg/field"
	"github.com/lao-tseu-is-alive/go-snowfield/pkg/fieldpb"
	"github.com/lao-tseu-is-alive/go-snowfield/pkg/simulation"
)

// fakeDriver runs the field in-process and records what the host sent.
type fakeDriver struct {
	mu      sync.Mutex
	f       *field.Field
	enters  int
	leaves  int
	moves   int
	ticks   int
	resizes [][2]float64
}

var _ simulation.Driver = (*fakeDriver)(nil)

func newFakeDriver(count int) *fakeDriver {
	cfg := field.DefaultConfig()
	cfg.ParticleCount = count
	return &fakeDriver{f: field.New(cfg, field.WithRand(rand.New(rand.NewPCG(1, 2))))}
}

func (d *fakeDriver) OnMove(x, y float64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.moves++
	d.f.OnMove(x, y)
}

func (d *fakeDriver) OnEnter() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.enters++
	d.f.OnEnter()
}

func (d *fakeDriver) OnLeave() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.leaves++
	d.f.OnLeave()
}

func (d *fakeDriver) Resize(w, h, scale float64) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.resizes = append(d.resizes, [2]float64{w, h})
	d.f.Resize(w, h, scale)
	return nil
}

func (d *fakeDriver) Tick(dt time.Duration) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.ticks++
	d.f.Tick(dt)
	return nil
}

func (d *fakeDriver) Latest() *fieldpb.Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	return simulation.ToProto(d.f)
}

func (d *fakeDriver) counts() (enters, leaves, moves, ticks int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.enters, d.leaves, d.moves, d.ticks
}

func (d *fakeDriver) lastResize() [2]float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.resizes) == 0 {
		return [2]float64{}
	}
	return d.resizes[len(d.resizes)-1]
}

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(w, h)
	return screen
}

func nonBlankCells(screen tcell.SimulationScreen) int {
	cells, _, _ := screen.GetContents()
	n := 0
	for _, c := range cells {
		if len(c.Runes) > 0 && glyphRank(c.Runes[0]) >= 0 {
			n++
		}
	}
	return n
}

func TestCanvas_PlotsLargestGlyphPerCell(t *testing.T) {
	screen := newSimScreen(t, 10, 5)
	defer screen.Fini()
	c := NewCanvas(screen, 8, 16)

	w, h := c.PixelSize()
	assert.Equal(t, 80.0, w)
	assert.Equal(t, 80.0, h)

	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	c.FillCircle(20, 40, 1, white)
	r, _, _, _ := screen.GetContent(2, 2)
	assert.Equal(t, '·', r)

	c.FillCircle(22, 35, 2.8, white)
	c.FillCircle(18, 44, 1.9, white)
	r, _, _, _ = screen.GetContent(2, 2)
	assert.Equal(t, '●', r, "a smaller particle does not hide a bigger one")

	c.FillCircle(-1, 10, 3, white)
	c.FillCircle(80, 10, 3, white)
	c.FillCircle(10, 80, 3, white)
	screen.Show()
	assert.Equal(t, 1, nonBlankCells(screen))

	c.Clear()
	screen.Show()
	assert.Equal(t, 0, nonBlankCells(screen))
}

func TestCanvas_CellCenter(t *testing.T) {
	screen := newSimScreen(t, 10, 5)
	defer screen.Fini()
	c := NewCanvas(screen, 8, 16)
	x, y := c.CellCenter(3, 1)
	assert.Equal(t, 28.0, x)
	assert.Equal(t, 24.0, y)
}

func TestToColor_Unpremultiplies(t *testing.T) {
	assert.Equal(t, tcell.NewRGBColor(255, 255, 255), toColor(field.DefaultFill))
	assert.Equal(t, tcell.ColorDefault, toColor(color.RGBA{}))
}

func TestRun_DrivesFieldUntilQuit(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	screen := newSimScreen(t, 40, 12)
	drv := newFakeDriver(300)
	done := make(chan error, 1)
	go func() {
		done <- Run(context.Background(), screen, drv, Config{FPS: 200, CellWidth: 8, CellHeight: 16, StatusLine: true}, nil)
	}()

	require.Eventually(t, func() bool {
		_, _, _, ticks := drv.counts()
		return ticks >= 3
	}, 2*time.Second, 5*time.Millisecond)
	assert.Equal(t, [2]float64{320, 192}, drv.lastResize())
	assert.Eventually(t, func() bool { return nonBlankCells(screen) > 0 }, 2*time.Second, 5*time.Millisecond)

	screen.InjectMouse(10, 5, tcell.ButtonNone, tcell.ModNone)
	screen.InjectMouse(11, 5, tcell.ButtonNone, tcell.ModNone)
	require.Eventually(t, func() bool {
		enters, _, moves, _ := drv.counts()
		return enters == 1 && moves == 2
	}, 2*time.Second, 5*time.Millisecond)

	require.NoError(t, screen.PostEvent(tcell.NewEventFocus(false)))
	require.Eventually(t, func() bool {
		_, leaves, _, _ := drv.counts()
		return leaves == 1
	}, 2*time.Second, 5*time.Millisecond)

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after q")
	}
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	screen := newSimScreen(t, 20, 6)
	drv := newFakeDriver(50)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Run(ctx, screen, drv, DefaultConfig(), nil) }()

	require.Eventually(t, func() bool {
		_, _, _, ticks := drv.counts()
		return ticks >= 1
	}, 2*time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
