package fixture

import (
	"fmt"

	"github.com/openentropy/openentropy-go/internal/stream"
)

// #region replayer

// Replayer serves recorded samples through the Collector contract. Each
// Collect call consumes the next slice of the recording; when fewer samples
// remain than requested, the remainder is returned as a partial collection,
// and an exhausted recording fails with stream.ErrCollectionFailed. That
// makes replayed runs exercise the same partial-success and skipped-stage
// paths as live ones.
type Replayer struct {
	source  string
	samples []uint64
	cursor  int
}

// NewReplayer creates a replaying collector over a fixture.
func NewReplayer(f Fixture) *Replayer {
	return &Replayer{source: f.Source, samples: f.Samples}
}

// Name returns the recorded source's name.
func (r *Replayer) Name() string {
	return r.source
}

// Collect serves the next n recorded samples.
func (r *Replayer) Collect(n int) (stream.Stream, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%s: %w: requested %d samples", r.source, stream.ErrCollectionFailed, n)
	}
	remaining := len(r.samples) - r.cursor
	if remaining == 0 {
		return nil, fmt.Errorf("%s: %w: recording exhausted after %d samples",
			r.source, stream.ErrCollectionFailed, len(r.samples))
	}
	if n > remaining {
		n = remaining
	}
	out := make(stream.Stream, n)
	copy(out, r.samples[r.cursor:r.cursor+n])
	r.cursor += n
	return out, nil
}

// Remaining reports how many recorded samples are left.
func (r *Replayer) Remaining() int {
	return len(r.samples) - r.cursor
}

// #endregion replayer
