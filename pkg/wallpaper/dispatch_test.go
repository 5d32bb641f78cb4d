package wallpaper

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestQueue_RunsTasksInOrderOnConsumer(t *testing.T) {
	q := NewQueue(4)
	var order []int

	for i := 1; i <= 3; i++ {
		i := i
		q.Dispatch(func() { order = append(order, i) })
	}

	assert.Equal(t, 3, q.RunPending())
	assert.Equal(t, []int{1, 2, 3}, order)
	assert.Equal(t, 0, q.RunPending())
}

func TestQueue_FullQueueDropsWithoutBlocking(t *testing.T) {
	q := NewQueue(1)
	ran := 0

	q.Dispatch(func() { ran++ })
	q.Dispatch(func() { ran++ })

	assert.Equal(t, 1, q.Dropped())
	q.RunPending()
	assert.Equal(t, 1, ran)
}

func TestQueue_DrainStopsOnCancel(t *testing.T) {
	q := NewQueue(2)
	ctx, cancel := context.WithCancel(context.Background())
	ran := make(chan struct{})

	done := make(chan error)
	go func() { done <- q.Drain(ctx) }()

	q.Dispatch(func() { close(ran) })
	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("task was not drained")
	}

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Drain did not return after cancel")
	}
}

func TestDispatcherFunc(t *testing.T) {
	called := false
	d := DispatcherFunc(func(fn func()) { fn() })
	d.Dispatch(func() { called = true })
	assert.True(t, called)
}
