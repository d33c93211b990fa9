package simulation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tochemey/goakt/v3/actor"
	golog "github.com/tochemey/goakt/v3/log"
	"go.uber.org/zap"
	"google.golang.org/protobuf/proto"

	"github.com/lao-tseu-is-alive/go-snowfield/pkg/field"
	"github.com/lao-tseu-is-alive/go-snowfield/pkg/fieldpb"
)

// ErrNotStarted is returned by host operations issued before Start or after Stop.
var ErrNotStarted = errors.New("field host not started")

const (
	askTimeout         = 2 * time.Second
	snapshotBufferSize = 10
)

// Driver is what a frame loop needs from a running field.
type Driver interface {
	field.InputPort
	Resize(width, height, scale float64) error
	Tick(dt time.Duration) error
	Latest() *fieldpb.Snapshot
}

// Host runs a FieldActor and gives frame loops a plain method API over its
// mailbox. Input methods may be called from any goroutine. Latest must only
// be called from the frame loop.
type Host struct {
	cfg         field.Config
	fieldOpts   []field.Option
	logger      *zap.Logger
	actorLogger golog.Logger

	ctx        context.Context
	system     actor.ActorSystem
	pid        *actor.PID
	snapshotCh chan *fieldpb.Snapshot
	latest     *fieldpb.Snapshot
}

var _ Driver = (*Host)(nil)

// HostOption configures a Host.
type HostOption func(*Host)

// WithLogger sets the host's own logger.
func WithLogger(logger *zap.Logger) HostOption {
	return func(h *Host) { h.logger = logger }
}

// WithActorLogger sets the logger of the actor system the host creates.
func WithActorLogger(logger golog.Logger) HostOption {
	return func(h *Host) { h.actorLogger = logger }
}

// WithFieldOptions forwards options to field.New.
func WithFieldOptions(opts ...field.Option) HostOption {
	return func(h *Host) { h.fieldOpts = append(h.fieldOpts, opts...) }
}

// NewHost prepares a host. Nothing runs until Start.
func NewHost(cfg field.Config, opts ...HostOption) *Host {
	h := &Host{
		cfg:         cfg,
		logger:      zap.NewNop(),
		actorLogger: golog.DiscardLogger,
		latest:      &fieldpb.Snapshot{}, // Avoid nil pointer
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Start spawns the field actor. Calling Start on a running host is a no-op.
func (h *Host) Start(ctx context.Context) error {
	if h.pid != nil {
		return nil
	}
	system, err := actor.NewActorSystem("SnowField",
		actor.WithLogger(h.actorLogger),
		actor.WithActorInitMaxRetries(3))
	if err != nil {
		return fmt.Errorf("create actor system: %w", err)
	}
	if err := system.Start(ctx); err != nil {
		return fmt.Errorf("start actor system: %w", err)
	}

	h.snapshotCh = make(chan *fieldpb.Snapshot, snapshotBufferSize)
	name := "field-" + uuid.NewString()
	pid, err := system.Spawn(ctx, name, NewFieldActor(h.snapshotCh, h.cfg, h.fieldOpts...))
	if err != nil {
		return fmt.Errorf("spawn field actor: %w", errors.Join(err, system.Stop(ctx)))
	}
	h.ctx, h.system, h.pid = ctx, system, pid
	h.logger.Info("field host started", zap.String("actor", name), zap.Int("particles", h.cfg.ParticleCount))
	return nil
}

// Stop shuts the field actor and its actor system down. Stopping a stopped
// host is a no-op.
func (h *Host) Stop(ctx context.Context) error {
	if h.pid == nil {
		return nil
	}
	err := errors.Join(h.pid.Shutdown(ctx), h.system.Stop(ctx))
	h.system, h.pid = nil, nil
	h.logger.Info("field host stopped")
	return err
}

// Running reports whether Start succeeded and Stop has not been called since.
func (h *Host) Running() bool { return h.pid != nil }

func (h *Host) tell(msg proto.Message) error {
	if h.pid == nil {
		return ErrNotStarted
	}
	return actor.Tell(h.ctx, h.pid, msg)
}

// tellQuiet is for the input port methods, which have no error return.
func (h *Host) tellQuiet(msg proto.Message) {
	if err := h.tell(msg); err != nil {
		h.logger.Debug("dropped pointer event", zap.Error(err))
	}
}

func (h *Host) OnMove(x, y float64) { h.tellQuiet(&fieldpb.PointerMove{X: x, Y: y}) }

func (h *Host) OnEnter() { h.tellQuiet(&fieldpb.PointerEnter{}) }

func (h *Host) OnLeave() { h.tellQuiet(&fieldpb.PointerLeave{}) }

func (h *Host) Resize(width, height, scale float64) error {
	return h.tell(&fieldpb.Resize{Width: width, Height: height, Scale: scale})
}

// Tick advances the field by one frame of length dt.
func (h *Host) Tick(dt time.Duration) error {
	return h.tell(&fieldpb.Tick{DeltaNanos: dt.Nanoseconds()})
}

// Reconfigure validates cfg locally and sends the runtime-editable part of
// it. Changed knobs that cannot be sent are logged, since they only apply to
// a new field. Callers must not reconfigure from two goroutines at once.
func (h *Host) Reconfigure(cfg field.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := h.tell(ConfigToProto(cfg)); err != nil {
		return err
	}
	if keys := UnappliedChanges(h.cfg, cfg); len(keys) > 0 {
		h.logger.Warn("config keys need a restart to apply", zap.Strings("keys", keys))
	}
	h.cfg = cfg
	return nil
}

// Rebuild respawns every particle for the current geometry.
func (h *Host) Rebuild() error {
	return h.tell(&fieldpb.Rebuild{})
}

// Snapshot asks the actor for its current state. It is ordered after every
// message this goroutine sent before it.
func (h *Host) Snapshot(ctx context.Context) (*fieldpb.Snapshot, error) {
	if h.pid == nil {
		return nil, ErrNotStarted
	}
	reply, err := actor.Ask(ctx, h.pid, &fieldpb.GetSnapshot{}, askTimeout)
	if err != nil {
		return nil, fmt.Errorf("ask field snapshot: %w", err)
	}
	snap, ok := reply.(*fieldpb.Snapshot)
	if !ok {
		return nil, fmt.Errorf("unexpected snapshot reply %T", reply)
	}
	return snap, nil
}

// Latest drains the pushed snapshots without blocking and returns the newest
// one seen so far.
func (h *Host) Latest() *fieldpb.Snapshot {
	for {
		select {
		case snap := <-h.snapshotCh:
			h.latest = snap
		default:
			// Use previous state if new one isn't ready
			return h.latest
		}
	}
}
