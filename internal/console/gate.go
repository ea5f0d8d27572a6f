package console

import (
	"context"
	"sync"

	"github.com/linskybing/form-console/internal/session"
	"github.com/linskybing/form-console/pkg/client"
	"go.uber.org/zap"
)

type GateState int

const (
	GatePending GateState = iota
	GateAuthenticated
	GateAnonymous
)

func (s GateState) String() string {
	switch s {
	case GatePending:
		return "pending"
	case GateAuthenticated:
		return "authenticated"
	case GateAnonymous:
		return "anonymous"
	}
	return "unknown"
}

// Decision is one resolution of the gate. Err is set when the session query
// failed; such a failure is treated as no session.
type Decision struct {
	State    GateState
	Identity client.Identity
	Err      error
}

// SessionSource is the backend boundary the gate needs.
type SessionSource interface {
	Status(ctx context.Context) (client.Identity, error)
	WatchSession(ctx context.Context) (<-chan session.Event, func(), error)
}

// Gate decides whether the console may show protected views. It owns the
// single session-change subscription of the console; Close ends it.
type Gate struct {
	src SessionSource
	log *zap.Logger

	events  chan Decision
	refresh chan struct{}
	done    chan struct{}
	cancel  context.CancelFunc
	once    sync.Once

	mu      sync.Mutex
	current Decision
}

func NewGate(src SessionSource, log *zap.Logger) *Gate {
	return &Gate{
		src:     src,
		log:     log,
		events:  make(chan Decision, 4),
		refresh: make(chan struct{}, 1),
		done:    make(chan struct{}),
		current: Decision{State: GatePending},
	}
}

// Start queries the session in the background. Decisions arrive on Events.
func (g *Gate) Start(ctx context.Context) {
	ctx, g.cancel = context.WithCancel(ctx)
	go g.run(ctx)
}

// Events yields every decision the gate makes. It is closed after Close.
func (g *Gate) Events() <-chan Decision {
	return g.events
}

// Current returns the latest decision without waiting.
func (g *Gate) Current() Decision {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.current
}

// Refresh asks the gate to query the session again, for example after the
// console signed in or out.
func (g *Gate) Refresh() {
	select {
	case g.refresh <- struct{}{}:
	default:
	}
}

func (g *Gate) Close() {
	g.once.Do(func() {
		if g.cancel == nil {
			close(g.events)
			return
		}
		g.cancel()
		<-g.done
	})
}

func (g *Gate) run(ctx context.Context) {
	defer close(g.done)
	defer close(g.events)

	var (
		stream <-chan session.Event
		stop   func()
	)
	unsubscribe := func() {
		if stop != nil {
			stop()
		}
		stream, stop = nil, nil
	}
	defer unsubscribe()

	evaluate := func() {
		unsubscribe()
		g.emit(ctx, Decision{State: GatePending})

		id, err := g.src.Status(ctx)
		if err != nil {
			g.log.Debug("session query failed", zap.Error(err))
			g.emit(ctx, Decision{State: GateAnonymous, Err: err})
			return
		}

		ch, s, err := g.src.WatchSession(ctx)
		if err != nil {
			g.log.Warn("session stream unavailable", zap.Error(err))
		} else {
			stream, stop = ch, s
		}
		g.emit(ctx, Decision{State: GateAuthenticated, Identity: id})
	}

	evaluate()
	for {
		select {
		case <-ctx.Done():
			return
		case <-g.refresh:
			evaluate()
		case e, ok := <-stream:
			if !ok {
				// No resubscribe: the decision stands until the next refresh.
				g.log.Debug("session stream closed")
				unsubscribe()
				continue
			}
			if e.Type == session.EventSnapshot {
				continue
			}
			g.log.Debug("session changed", zap.String("event", string(e.Type)))
			evaluate()
		}
	}
}

func (g *Gate) emit(ctx context.Context, d Decision) {
	g.mu.Lock()
	g.current = d
	g.mu.Unlock()

	select {
	case g.events <- d:
	case <-ctx.Done():
	}
}
