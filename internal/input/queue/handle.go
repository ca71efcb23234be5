package queue

import (
	"sync/atomic"

	"github.com/google/uuid"
)

// ReadHandle tracks the outstanding blocking reads of a single reader.
// The host increments the count before suspending a reader and decrements
// it when the reader wakes or abandons the wait, so teardown code can tell
// which readers are still parked.
//
// Unlike Buffer, ReadHandle is safe for concurrent use: the count is
// adjusted while the console lock is held but inspected without it.
type ReadHandle struct {
	id      uuid.UUID
	pending atomic.Int32
}

// NewReadHandle creates a handle with a unique identity.
func NewReadHandle() *ReadHandle {
	return &ReadHandle{id: uuid.New()}
}

// ID returns the handle's unique identifier.
func (h *ReadHandle) ID() uuid.UUID {
	return h.id
}

// IncrementReadCount records a reader about to suspend.
func (h *ReadHandle) IncrementReadCount() {
	h.pending.Add(1)
}

// DecrementReadCount records a reader that woke or abandoned its wait.
func (h *ReadHandle) DecrementReadCount() {
	h.pending.Add(-1)
}

// PendingReads returns the number of suspended reads on this handle.
func (h *ReadHandle) PendingReads() int {
	return int(h.pending.Load())
}
