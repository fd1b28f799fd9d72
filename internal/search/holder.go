package search

import (
	"errors"
	"sync/atomic"
)

// ErrIndexUnavailable is returned when the index has not been built yet,
// typically when a search arrives before startup finished loading data.
// It is transient: callers should retry after a short delay.
var ErrIndexUnavailable = errors.New("search index not yet built")

// Holder publishes the current index snapshot to concurrent readers.
// Rebuilds construct a complete new Index and swap the pointer atomically,
// so readers never observe a partially built index and need no locking.
type Holder struct {
	current atomic.Pointer[Index]
}

// NewHolder returns an empty holder. Index and Engine fail with
// ErrIndexUnavailable until the first Swap.
func NewHolder() *Holder {
	return &Holder{}
}

// Swap publishes a new index snapshot. In-flight readers keep using the
// snapshot they already loaded.
func (h *Holder) Swap(ix *Index) {
	h.current.Store(ix)
}

// Index returns the current snapshot, or ErrIndexUnavailable before the
// first successful build.
func (h *Holder) Index() (*Index, error) {
	ix := h.current.Load()
	if ix == nil {
		return nil, ErrIndexUnavailable
	}
	return ix, nil
}

// Engine returns a match engine over the current snapshot, or
// ErrIndexUnavailable before the first successful build.
func (h *Holder) Engine() (*Engine, error) {
	ix, err := h.Index()
	if err != nil {
		return nil, err
	}
	return NewEngine(ix), nil
}
