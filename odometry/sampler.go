// Package odometry decouples high-rate position sensing from the lower-rate
// control loop. A Sampler polls every registered signal on a fixed tick and
// buffers the readings in per-signal FIFO queues; the control loop drains
// each queue once per control tick so no intermediate reading is lost.
package odometry

import (
	"context"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	goutils "go.viam.com/utils"
)

// starvationWarnDepth is the queue depth at which the consumer is assumed to
// have stalled. Queues keep growing past it (dropping samples would corrupt
// downstream odometry integration); the condition is reported instead.
const starvationWarnDepth = 512

// Queue buffers one signal's readings between control-loop drains. Push
// order equals capture order equals drain order.
type Queue struct {
	// mu is the owning Sampler's lock; one lock serializes a whole
	// sampling tick against drains so that all signals registered together
	// are captured from the same instant.
	mu     *sync.Mutex
	values []float64
}

// Drain returns every buffered reading in capture order and empties the
// queue. It returns nil when no readings arrived since the previous drain.
func (q *Queue) Drain() []float64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	values := q.values
	q.values = nil
	return values
}

// Len returns the number of buffered readings.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.values)
}

type signal struct {
	read  func() float64
	queue *Queue
}

// Sampler runs the background sampling loop. Register every signal, then
// Start it; Stop joins the loop. One Sampler serves any number of signals.
type Sampler struct {
	mu      sync.Mutex
	signals []signal

	period time.Duration
	clock  clock.Clock
	logger golog.Logger

	cancelCtx               context.Context
	cancel                  context.CancelFunc
	activeBackgroundWorkers sync.WaitGroup
	running                 bool
}

// NewSampler returns a sampler ticking at the given frequency in Hz. Pass
// clock.New() outside of tests.
func NewSampler(frequency float64, clk clock.Clock, logger golog.Logger) (*Sampler, error) {
	if frequency <= 0 || frequency > 1000 {
		return nil, errors.Errorf("sampling frequency must be in (0, 1000] Hz, got %f", frequency)
	}
	cancelCtx, cancel := context.WithCancel(context.Background())
	return &Sampler{
		period:    time.Duration(float64(time.Second) / frequency),
		clock:     clk,
		logger:    logger,
		cancelCtx: cancelCtx,
		cancel:    cancel,
	}, nil
}

// RegisterSignal adds a signal producer and returns its queue. Producers are
// invoked from the sampling loop and must not block.
func (s *Sampler) RegisterSignal(read func() float64) *Queue {
	s.mu.Lock()
	defer s.mu.Unlock()
	q := &Queue{mu: &s.mu}
	s.signals = append(s.signals, signal{read: read, queue: q})
	return q
}

// Start launches the sampling loop. Signals registered after Start are
// picked up on the next tick.
func (s *Sampler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.running = true
	ticker := s.clock.Ticker(s.period)
	s.activeBackgroundWorkers.Add(1)
	goutils.PanicCapturingGo(func() {
		defer s.activeBackgroundWorkers.Done()
		defer ticker.Stop()
		for {
			select {
			case <-s.cancelCtx.Done():
				return
			case <-ticker.C:
				s.captureAll()
			}
		}
	})
}

// captureAll reads every signal once under the lock, so a tick's readings
// across queues come from the same instant.
func (s *Sampler) captureAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sig := range s.signals {
		sig.queue.values = append(sig.queue.values, sig.read())
		if depth := len(sig.queue.values); depth >= starvationWarnDepth && depth%starvationWarnDepth == 0 {
			s.logger.Errorw(
				"sample queue is not being drained; the control loop appears stalled",
				"depth", depth,
			)
		}
	}
}

// Stop halts the sampling loop and waits for it to exit. Queues keep their
// buffered readings and may still be drained.
func (s *Sampler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.mu.Unlock()
	s.cancel()
	s.activeBackgroundWorkers.Wait()
}
