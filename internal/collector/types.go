package collector

import (
	"fmt"

	"github.com/openentropy/openentropy-go/internal/stream"
)

// #region collector

// Collector produces raw timing samples from one candidate entropy source.
// Collect attempts n samples and returns however many it actually obtained;
// a short stream is a partial success, not an error. Implementations fail
// (wrapping stream.ErrCollectionFailed) only when zero usable samples were
// obtained. Each instance owns its resources; collectors that hold handles
// expose a Close method alongside this interface.
type Collector interface {
	Name() string
	Collect(n int) (stream.Stream, error)
}

// #endregion collector

// #region func-adapter

// Func adapts a closure to the Collector contract.
type Func struct {
	name string
	fn   func(n int) (stream.Stream, error)
}

// NewFunc wraps fn as a named Collector.
func NewFunc(name string, fn func(n int) (stream.Stream, error)) *Func {
	return &Func{name: name, fn: fn}
}

// Name returns the source name.
func (f *Func) Name() string {
	return f.name
}

// Collect invokes the wrapped closure.
func (f *Func) Collect(n int) (stream.Stream, error) {
	return f.fn(n)
}

// #endregion func-adapter

// #region helpers

// checkRequest rejects non-positive sample requests up front.
func checkRequest(name string, n int) error {
	if n <= 0 {
		return fmt.Errorf("%s: %w: requested %d samples", name, stream.ErrCollectionFailed, n)
	}
	return nil
}

// #endregion helpers
