package simulation

import (
	"time"

	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/goaktpb"

	"github.com/lao-tseu-is-alive/go-snowfield/pkg/field"
	"github.com/lao-tseu-is-alive/go-snowfield/pkg/fieldpb"
)

// FieldActor is the single owner of a particle field. Every mutation
// (pointer events, resizes, config updates, ticks) arrives through its
// mailbox, so the field itself never sees concurrent access.
type FieldActor struct {
	cfg   field.Config
	opts  []field.Option
	field *field.Field
	// Communication with the host
	snapshotCh chan<- *fieldpb.Snapshot

	// --- Telemetry ---
	ticks         int
	dropped       int
	lastLogTime   time.Time
	wasResetting  bool
	lastRebuildAt uint64
}

var _ actor.Actor = (*FieldActor)(nil)

// NewFieldActor creates the actor. snapshotCh may be nil when the host only
// asks for snapshots.
func NewFieldActor(snapshotCh chan<- *fieldpb.Snapshot, cfg field.Config, opts ...field.Option) *FieldActor {
	return &FieldActor{
		cfg:        cfg,
		opts:       opts,
		snapshotCh: snapshotCh,
	}
}

func (w *FieldActor) PreStart(ctx *actor.Context) error {
	w.field = field.New(w.cfg, w.opts...)
	w.lastLogTime = time.Now()
	ctx.ActorSystem().Logger().Infof("Field is waiting for its first resize (%d particles)", w.cfg.ParticleCount)
	return nil
}

func (w *FieldActor) Receive(ctx *actor.ReceiveContext) {
	switch msg := ctx.Message().(type) {
	case *goaktpb.PostStart:
		ctx.Logger().Infof("Field %s started", ctx.Self().Name())

	case *fieldpb.Resize:
		if w.field.Resize(msg.GetWidth(), msg.GetHeight(), msg.GetScale()) {
			w.lastRebuildAt = w.field.Frame()
			ctx.Logger().Debugf("Field rebuilt for %.0fx%.0f@%.2g: %d particles",
				msg.GetWidth(), msg.GetHeight(), msg.GetScale(), len(w.field.Particles()))
		}

	case *fieldpb.PointerMove:
		w.field.OnMove(msg.GetX(), msg.GetY())

	case *fieldpb.PointerEnter:
		w.field.OnEnter()

	case *fieldpb.PointerLeave:
		w.field.OnLeave()

	case *fieldpb.Tick:
		w.field.Tick(time.Duration(msg.GetDeltaNanos()))
		w.ticks++
		w.logTransitions(ctx)
		w.logBenchmarks(ctx)
		w.pushSnapshot()

	case *fieldpb.UpdateConfig:
		next := ApplyUpdate(w.field.Config(), msg)
		if err := next.Validate(); err != nil {
			ctx.Logger().Warnf("Ignoring config update: %v", err)
			return
		}
		if w.field.Reconfigure(next) {
			w.lastRebuildAt = w.field.Frame()
			ctx.Logger().Infof("Field rebuilt after config update: %d particles", len(w.field.Particles()))
		}

	case *fieldpb.Rebuild:
		w.field.Rebuild()
		w.lastRebuildAt = w.field.Frame()

	case *fieldpb.GetSnapshot:
		ctx.Response(ToProto(w.field))

	default:
		ctx.Unhandled()
	}
}

func (w *FieldActor) logTransitions(ctx *actor.ReceiveContext) {
	resetting := w.field.Resetting()
	if resetting == w.wasResetting {
		return
	}
	w.wasResetting = resetting
	if resetting {
		ctx.Logger().Debugf("Field easing %d particles home", len(w.field.Particles()))
	} else {
		ctx.Logger().Debugf("Field back to free drift at frame %d", w.field.Frame())
	}
}

func (w *FieldActor) logBenchmarks(ctx *actor.ReceiveContext) {
	if time.Since(w.lastLogTime) >= time.Second {
		ctx.Logger().Infof("📊 TICKS: %d/sec (dropped snapshots: %d) | Particles: %d | Last rebuild: frame %d",
			w.ticks, w.dropped, len(w.field.Particles()), w.lastRebuildAt)
		w.ticks = 0
		w.dropped = 0
		w.lastLogTime = time.Now()
	}
}

func (w *FieldActor) pushSnapshot() {
	if w.snapshotCh == nil {
		return
	}
	select {
	case w.snapshotCh <- ToProto(w.field):
	default:
		// Host busy, skip frame
		w.dropped++
	}
}

func (w *FieldActor) PostStop(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Infof("Field is shutdown after %d frames", w.field.Frame())
	return nil
}
