package wallpaper

import (
	"context"
	"time"

	"github.com/dixieflatline76/wallpaperd/util/log"
	"github.com/jonboulle/clockwork"
)

// Store is the persistent image registry the service writes through to.
type Store interface {
	Add(ctx context.Context, path string) (int64, error)
	Remove(ctx context.Context, path string) (bool, error)
	List(ctx context.Context) ([]string, error)
	Close() error
}

// Service owns the registry handle, its in-memory mirror, the rotation engine and the
// timer. Apart from Next, its methods must be called from the dispatch context; the
// scheduler delivers its ticks there too, so no further locking is needed.
type Service struct {
	store     Store
	rotator   *Rotator
	scheduler *Scheduler
	dispatch  Dispatcher

	paths []string

	onError  func(error)
	onChange func()
}

// NewService wires a service together. Nothing runs until Load and Start are called.
func NewService(store Store, os OS, clock clockwork.Clock, dispatch Dispatcher) *Service {
	s := &Service{
		store:    store,
		rotator:  NewRotator(os),
		dispatch: dispatch,
		paths:    []string{},
		onError:  func(error) {},
		onChange: func() {},
	}
	s.scheduler = NewScheduler(clock, dispatch, s.runTick)
	return s
}

// SetErrorHandler sets the callback for failed scheduled or manual ticks.
func (s *Service) SetErrorHandler(fn func(error)) {
	if fn == nil {
		fn = func(error) {}
	}
	s.onError = fn
}

// SetChangeHandler sets the callback run after the mirror or the current wallpaper changes.
func (s *Service) SetChangeHandler(fn func()) {
	if fn == nil {
		fn = func() {}
	}
	s.onChange = fn
}

// Load replaces the mirror with the registry contents. On error the mirror is kept.
func (s *Service) Load(ctx context.Context) error {
	paths, err := s.store.List(ctx)
	if err != nil {
		return err
	}
	s.paths = paths
	s.onChange()
	return nil
}

// Paths returns a copy of the mirror, ascending by id.
func (s *Service) Paths() []string {
	out := make([]string, len(s.paths))
	copy(out, s.paths)
	return out
}

// Add writes path to the registry and, once the write succeeded, refreshes the mirror.
// If the reload fails after a successful write, path is appended to the mirror instead.
func (s *Service) Add(ctx context.Context, path string) (int64, error) {
	id, err := s.store.Add(ctx, path)
	if err != nil {
		return 0, err
	}
	log.Printf("Added image #%d: %s", id, path)
	if err := s.Load(ctx); err != nil {
		log.Printf("Reload after add failed, updating list in place: %v", err)
		s.paths = append(s.paths, path)
		s.onChange()
	}
	return id, nil
}

// Remove deletes one registry entry matching path and, once the delete succeeded,
// refreshes the mirror, or drops the first match from it if the reload fails.
func (s *Service) Remove(ctx context.Context, path string) (bool, error) {
	removed, err := s.store.Remove(ctx, path)
	if err != nil {
		return false, err
	}
	if !removed {
		log.Printf("No registry entry matched %s", path)
		return false, nil
	}
	log.Printf("Removed image: %s", path)
	if err := s.Load(ctx); err != nil {
		log.Printf("Reload after remove failed, updating list in place: %v", err)
		s.paths = removeFirst(s.paths, path)
		s.onChange()
	}
	return true, nil
}

// removeFirst drops the lowest-id occurrence of path, matching the registry's delete.
func removeFirst(paths []string, path string) []string {
	for i, p := range paths {
		if p == path {
			out := make([]string, 0, len(paths)-1)
			out = append(out, paths[:i]...)
			return append(out, paths[i+1:]...)
		}
	}
	return paths
}

// Tick advances the rotation over the current mirror.
func (s *Service) Tick() error {
	err := s.rotator.Tick(s.paths)
	s.onChange()
	return err
}

// Next requests an immediate advance. It is safe to call from any goroutine.
func (s *Service) Next() {
	s.dispatch.Dispatch(s.runTick)
}

func (s *Service) runTick() {
	if err := s.Tick(); err != nil {
		log.Printf("Rotation tick failed: %v", err)
		s.onError(err)
	}
}

// Start begins rotating with the given period.
func (s *Service) Start(period time.Duration) error {
	if err := s.scheduler.Start(period); err != nil {
		return err
	}
	log.Printf("Rotation started, every %v", period)
	return nil
}

// SetInterval restarts the rotation timer with a new period.
func (s *Service) SetInterval(period time.Duration) error {
	return s.scheduler.SetPeriod(period)
}

// Interval returns the active rotation period.
func (s *Service) Interval() time.Duration {
	return s.scheduler.Period()
}

// Running reports whether the rotation timer is active.
func (s *Service) Running() bool {
	return s.scheduler.Running()
}

// Current returns the path most recently handed to the platform.
func (s *Service) Current() string {
	return s.rotator.Current()
}

// Stop cancels the rotation timer.
func (s *Service) Stop() {
	s.scheduler.Stop()
}

// Close stops the timer and closes the registry.
func (s *Service) Close() error {
	s.scheduler.Stop()
	return s.store.Close()
}
