package stream

import "errors"

// #region stream

// Stream is an ordered sequence of raw u64 timing/measurement samples
// produced by one collector invocation. Treated as immutable once collected.
type Stream []uint64

// Len returns the number of samples.
func (s Stream) Len() int {
	return len(s)
}

// #endregion stream

// #region errors

var (
	// ErrInsufficientSamples indicates fewer samples than an analysis requires
	// (e.g. delta projections and lagged statistics need at least 2).
	ErrInsufficientSamples = errors.New("insufficient samples")

	// ErrCollectionFailed indicates a collector produced zero usable samples.
	// Partial collections are not failures; collectors return what they got.
	ErrCollectionFailed = errors.New("collection failed")
)

// #endregion errors
