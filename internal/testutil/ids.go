package testutil

import (
	"fmt"
	"sync"
)

// RequestIDs hands out request IDs "req-1", "req-2", ... so tests can
// assert on the X-Request-Id a client sent.
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type RequestIDs struct {
	mu  sync.Mutex
	seq int64
}

// NewRequestIDs creates a sequence whose first ID is "req-1".
func NewRequestIDs() *RequestIDs {
	return &RequestIDs{}
}

// Next returns the next ID. Its signature matches
// transport.WithRequestIDFunc.
func (r *RequestIDs) Next() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	return fmt.Sprintf("req-%d", r.seq)
}

// Issued returns how many IDs have been handed out.
func (r *RequestIDs) Issued() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.seq
}

// Reset restarts the sequence. After Reset, Next returns "req-1".
func (r *RequestIDs) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq = 0
}
