package collector

import (
	"math"

	"github.com/openentropy/openentropy-go/internal/stream"
)

// Synthetic sources for estimator calibration. Uniform must score near the
// 8-bit ceiling, Constant must score exactly zero, and SineDrift must be
// caught by the autocorrelation pass. None of them touch hardware.

// #region uniform

// Uniform emits i.i.d. uniform u64 values from a splitmix64 generator.
type Uniform struct {
	state uint64
}

// NewUniform seeds a deterministic uniform source.
func NewUniform(seed uint64) *Uniform {
	return &Uniform{state: seed}
}

// Name returns the source name.
func (u *Uniform) Name() string { return "uniform" }

// Collect emits n uniform samples.
func (u *Uniform) Collect(n int) (stream.Stream, error) {
	if err := checkRequest(u.Name(), n); err != nil {
		return nil, err
	}
	out := make(stream.Stream, n)
	for i := range out {
		out[i] = u.next()
	}
	return out, nil
}

func (u *Uniform) next() uint64 {
	u.state += 0x9E3779B97F4A7C15
	z := u.state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// #endregion uniform

// #region constant

// Constant emits the same value forever: the canonical zero-entropy source.
type Constant struct {
	value uint64
}

// NewConstant creates a constant source.
func NewConstant(value uint64) *Constant {
	return &Constant{value: value}
}

// Name returns the source name.
func (c *Constant) Name() string { return "constant" }

// Collect emits n copies of the fixed value.
func (c *Constant) Collect(n int) (stream.Stream, error) {
	if err := checkRequest(c.Name(), n); err != nil {
		return nil, err
	}
	out := make(stream.Stream, n)
	for i := range out {
		out[i] = c.value
	}
	return out, nil
}

// #endregion constant

// #region sine-drift

// SineDrift emits a slowly varying deterministic waveform: a stand-in for a
// re-sampled analog signal. High lag-1 autocorrelation is the point.
type SineDrift struct {
	base   float64
	amp    float64
	step   float64
	cursor float64
}

// NewSineDrift creates a sine source. The cursor persists across Collect
// calls so repeated trials continue the waveform.
func NewSineDrift(base, amp, step float64) *SineDrift {
	return &SineDrift{base: base, amp: amp, step: step}
}

// Name returns the source name.
func (s *SineDrift) Name() string { return "sine_drift" }

// Collect emits n waveform samples.
func (s *SineDrift) Collect(n int) (stream.Stream, error) {
	if err := checkRequest(s.Name(), n); err != nil {
		return nil, err
	}
	out := make(stream.Stream, n)
	for i := range out {
		out[i] = uint64(s.base + s.amp*math.Sin(s.cursor))
		s.cursor += s.step
	}
	return out, nil
}

// #endregion sine-drift
