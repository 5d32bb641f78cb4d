package hotkey

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.design/x/hotkey"
)

func TestNextBinding(t *testing.T) {
	calls := 0
	b := NextBinding(func() { calls++ })

	assert.Equal(t, "Next Wallpaper", b.Name)
	assert.Len(t, b.Mods, 2)
	assert.Equal(t, keyRight, b.Key)

	b.Action()
	assert.Equal(t, 1, calls)
}

func TestListenerStopWaitsForAction(t *testing.T) {
	unregistered := 0
	l := newListener("Next Wallpaper", func() error {
		unregistered++
		return nil
	})

	keydown := make(chan hotkey.Event)
	pressed := make(chan struct{})
	release := make(chan struct{})
	finished := false
	go l.run(keydown, func() {
		close(pressed)
		<-release
		finished = true
	})

	keydown <- hotkey.Event{}
	<-pressed

	stopped := make(chan struct{})
	stop := stopAll([]*listener{l})
	go func() {
		stop()
		close(stopped)
	}()

	select {
	case <-stopped:
		t.Fatal("stop returned while an action was still running")
	case <-time.After(50 * time.Millisecond):
	}
	close(release)
	<-stopped

	assert.True(t, finished)
	assert.Equal(t, 1, unregistered)

	stop()
	assert.Equal(t, 1, unregistered)
}

func TestListenerExitsWhenKeydownCloses(t *testing.T) {
	l := newListener("Next Wallpaper", func() error { return errors.New("not registered") })

	keydown := make(chan hotkey.Event)
	go l.run(keydown, func() { t.Error("action must not run") })
	close(keydown)
	<-l.done

	// Unregister failures are logged, and stop still returns.
	stopAll([]*listener{l})()
}

func TestStartListenersStopIsSafeToRepeat(t *testing.T) {
	if supported {
		t.Skip("registers real global shortcuts")
	}
	stop := StartListeners(func() {})
	require.NotNil(t, stop)
	stop()
	stop()
}
