package wallpaper

import (
	"errors"
	"sync"
	"time"

	"github.com/dixieflatline76/wallpaperd/util"
	"github.com/dixieflatline76/wallpaperd/util/log"
	"github.com/jonboulle/clockwork"
)

// ErrInvalidPeriod is returned for a period that is zero or negative.
var ErrInvalidPeriod = errors.New("rotation period must be positive")

// Scheduler fires a tick immediately and then every period. Each tick is handed to the
// Dispatcher rather than run on the timer goroutine, so the tick callback always runs on
// the consumer's context.
type Scheduler struct {
	clock    clockwork.Clock
	dispatch Dispatcher
	onTick   func()

	mu     sync.Mutex
	period time.Duration
	stop   chan struct{}
	done   chan struct{}

	running *util.SafeFlag
	ticks   *util.SafeCounter
}

// NewScheduler creates a stopped scheduler.
func NewScheduler(clock clockwork.Clock, dispatch Dispatcher, onTick func()) *Scheduler {
	return &Scheduler{
		clock:    clock,
		dispatch: dispatch,
		onTick:   onTick,
		running:  util.NewSafeBool(),
		ticks:    util.NewSafeInt(),
	}
}

// Start moves a stopped scheduler to running. Starting a running scheduler is a no-op.
func (s *Scheduler) Start(period time.Duration) error {
	if period <= 0 {
		return ErrInvalidPeriod
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stop != nil {
		return nil
	}
	s.startLocked(period)
	return nil
}

// SetPeriod cancels the current schedule and starts a new one with the given period,
// including its immediate first tick. A tick already dispatched still runs. Calling it
// on a stopped scheduler starts it.
func (s *Scheduler) SetPeriod(period time.Duration) error {
	if period <= 0 {
		return ErrInvalidPeriod
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopLocked()
	s.startLocked(period)
	log.Printf("Rotation period changed to %v", period)
	return nil
}

// Stop cancels pending ticks. It does not interrupt a tick already dispatched.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
}

// Period returns the last period the scheduler was started with.
func (s *Scheduler) Period() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.period
}

// Running reports whether a schedule is active.
func (s *Scheduler) Running() bool {
	return s.running.Value()
}

// Ticks returns how many ticks have been dispatched since creation.
func (s *Scheduler) Ticks() int {
	return s.ticks.Value()
}

// startLocked launches the timer goroutine. CALLER MUST HOLD s.mu.
func (s *Scheduler) startLocked(period time.Duration) {
	s.period = period
	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	s.running.Set(true)

	// The ticker is created before the goroutine starts so a fake clock sees it as soon
	// as Start returns.
	ticker := s.clock.NewTicker(period)
	go s.loop(ticker, s.stop, s.done)
}

// stopLocked cancels the timer goroutine and waits for it to exit. CALLER MUST HOLD s.mu.
func (s *Scheduler) stopLocked() {
	if s.stop == nil {
		return
	}
	close(s.stop)
	<-s.done
	s.stop = nil
	s.done = nil
	s.running.Set(false)
}

func (s *Scheduler) loop(ticker clockwork.Ticker, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	defer ticker.Stop()

	s.fire()
	for {
		select {
		case <-ticker.Chan():
			// A tick and a stop can be ready together; stop wins.
			select {
			case <-stop:
				return
			default:
			}
			s.fire()
		case <-stop:
			return
		}
	}
}

func (s *Scheduler) fire() {
	n := s.ticks.Increment()
	log.Debugf("Dispatching rotation tick #%d", n)
	s.dispatch.Dispatch(s.onTick)
}
