package stream

import "fmt"

// #region projection

// Projection names a deterministic reduction of a u64 sample to a single byte.
// One histogram uses exactly one projection; callers never mix policies.
type Projection string

const (
	// ProjectionRawLSB keeps the low byte of each sample.
	ProjectionRawLSB Projection = "raw_lsb"
	// ProjectionXORFold XORs all 8 bytes of each sample together.
	ProjectionXORFold Projection = "xor_fold"
	// ProjectionDeltaXORFold XOR-folds the signed difference between
	// consecutive samples; yields n-1 bytes from n samples.
	ProjectionDeltaXORFold Projection = "delta_xor_fold"
)

// Projections lists all policies in report order.
var Projections = []Projection{ProjectionRawLSB, ProjectionXORFold, ProjectionDeltaXORFold}

// #endregion projection

// #region apply

// Apply reduces every sample of s to one byte under the projection policy.
// Delta projection requires at least 2 samples; the other policies at least 1.
func (p Projection) Apply(s Stream) ([]byte, error) {
	switch p {
	case ProjectionRawLSB:
		if len(s) < 1 {
			return nil, fmt.Errorf("%s: %w: need 1 sample, got 0", p, ErrInsufficientSamples)
		}
		out := make([]byte, len(s))
		for i, v := range s {
			out[i] = byte(v & 0xFF)
		}
		return out, nil

	case ProjectionXORFold:
		if len(s) < 1 {
			return nil, fmt.Errorf("%s: %w: need 1 sample, got 0", p, ErrInsufficientSamples)
		}
		out := make([]byte, len(s))
		for i, v := range s {
			out[i] = xorFold(v)
		}
		return out, nil

	case ProjectionDeltaXORFold:
		if len(s) < 2 {
			return nil, fmt.Errorf("%s: %w: need 2 samples, got %d", p, ErrInsufficientSamples, len(s))
		}
		out := make([]byte, len(s)-1)
		for i := 0; i < len(s)-1; i++ {
			d := int64(s[i+1]) - int64(s[i])
			out[i] = xorFold(uint64(d))
		}
		return out, nil

	default:
		return nil, fmt.Errorf("unknown projection %q", string(p))
	}
}

// xorFold XORs the 8 bytes of v into one.
func xorFold(v uint64) byte {
	var f byte
	for b := 0; b < 8; b++ {
		f ^= byte(v >> (b * 8))
	}
	return f
}

// #endregion apply
