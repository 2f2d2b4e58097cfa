package cli

import (
	"bytes"
	"context"
	"sync"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syncBuffer provides thread-safe access to a bytes.Buffer.
type syncBuffer struct {
	buf bytes.Buffer
	mu  sync.Mutex
}

func (s *syncBuffer) Write(p []byte) (n int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

func TestInterruptHandlerInitialState(t *testing.T) {
	var buf bytes.Buffer
	h := NewInterruptHandler(&buf)

	assert.False(t, h.WasInterrupted())
	assert.Empty(t, buf.String())
}

func TestHandleInterruptsOnSignal(t *testing.T) {
	output := &syncBuffer{}
	h := NewInterruptHandler(output)

	ctx := h.HandleInterrupts(context.Background())

	// Context should not be canceled initially
	select {
	case <-ctx.Done():
		t.Fatal("Context should not be canceled initially")
	default:
	}

	require.NoError(t, syscall.Kill(syscall.Getpid(), syscall.SIGINT))

	select {
	case <-ctx.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("Context was not canceled after the interrupt")
	}

	assert.True(t, h.WasInterrupted())
	outputStr := output.String()
	assert.Contains(t, outputStr, "Interrupted!")
	assert.Contains(t, outputStr, "lanewatch snapshots")
}

func TestHandleInterruptsReturnsCancelableContext(t *testing.T) {
	h := NewInterruptHandler(&bytes.Buffer{})

	parent, cancel := context.WithCancel(context.Background())
	ctx := h.HandleInterrupts(parent)

	assert.NoError(t, ctx.Err())

	cancel()
	<-ctx.Done()
	assert.Error(t, ctx.Err())
	assert.False(t, h.WasInterrupted())
}
