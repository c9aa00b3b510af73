package stats

import (
	"fmt"
	"math"

	"github.com/openentropy/openentropy-go/internal/stream"
)

// #region compute-stats

// ComputeStats builds a 256-bin histogram of the projected bytes and derives
// Shannon entropy and min-entropy from it. Mean and stddev come from the raw
// sample values. A stream where every sample projects to the same byte yields
// zero entropy — a legitimate "no extractable entropy" result, not an error.
func ComputeStats(s stream.Stream, p stream.Projection) (Stats, error) {
	projected, err := p.Apply(s)
	if err != nil {
		return Stats{}, err
	}
	if len(projected) == 0 {
		return Stats{}, fmt.Errorf("%s: %w: projection produced no bytes", p, stream.ErrInsufficientSamples)
	}

	var hist [histBins]int
	for _, b := range projected {
		hist[b]++
	}
	total := len(projected)

	var st Stats
	maxCount := 0
	for _, c := range hist {
		if c == 0 {
			continue
		}
		prob := float64(c) / float64(total)
		st.Shannon -= prob * math.Log2(prob)
		if c > maxCount {
			maxCount = c
		}
	}
	if maxCount == total {
		// Single occupied bin: exactly zero, avoid the -0 from -log2(1).
		st.MinEntropy = 0
	} else {
		st.MinEntropy = -math.Log2(float64(maxCount) / float64(total))
	}

	st.Mean, st.Stddev = meanStddev(s)
	return st, nil
}

// meanStddev computes mean and population stddev over the raw u64 samples.
func meanStddev(s stream.Stream) (mean, stddev float64) {
	if len(s) == 0 {
		return 0, 0
	}
	var sum float64
	for _, v := range s {
		sum += float64(v)
	}
	mean = sum / float64(len(s))

	var varSum float64
	for _, v := range s {
		d := float64(v) - mean
		varSum += d * d
	}
	return mean, math.Sqrt(varSum / float64(len(s)))
}

// #endregion compute-stats

// #region autocorrelation

// Autocorrelation computes the lag-k sample autocorrelation over the raw
// values. Returns 0 when the stream is shorter than or equal to the lag, or
// when the variance denominator is numerically degenerate.
func Autocorrelation(s stream.Stream, lag int) float64 {
	n := len(s)
	if lag <= 0 || n <= lag {
		return 0
	}

	var sum float64
	for _, v := range s {
		sum += float64(v)
	}
	mean := sum / float64(n)

	var num, den float64
	for i := 0; i < n-lag; i++ {
		num += (float64(s[i]) - mean) * (float64(s[i+lag]) - mean)
	}
	for i := 0; i < n; i++ {
		d := float64(s[i]) - mean
		den += d * d
	}
	if den < degenerateEps {
		return 0
	}
	return num / den
}

// MaxAbsAutocorrelation returns the largest |autocorrelation| over lags
// 1..maxLag, along with the per-lag values keyed by lag.
func MaxAbsAutocorrelation(s stream.Stream, maxLag int) (float64, map[int]float64) {
	byLag := make(map[int]float64, maxLag)
	maxAbs := 0.0
	for lag := 1; lag <= maxLag; lag++ {
		ac := Autocorrelation(s, lag)
		byLag[lag] = ac
		if a := math.Abs(ac); a > maxAbs {
			maxAbs = a
		}
	}
	return maxAbs, byLag
}

// #endregion autocorrelation

// #region pearson

// Pearson computes the Pearson correlation coefficient between two
// equal-length raw streams. Callers truncate to the shorter length before
// calling; this function does not resize. Returns 0 when either stream's
// variance is degenerate.
func Pearson(a, b stream.Stream) float64 {
	n := len(a)
	if n == 0 || n != len(b) {
		return 0
	}

	var sumA, sumB float64
	for i := 0; i < n; i++ {
		sumA += float64(a[i])
		sumB += float64(b[i])
	}
	meanA := sumA / float64(n)
	meanB := sumB / float64(n)

	var num, da, db float64
	for i := 0; i < n; i++ {
		x := float64(a[i]) - meanA
		y := float64(b[i]) - meanB
		num += x * y
		da += x * x
		db += y * y
	}
	if da < degenerateEps || db < degenerateEps {
		return 0
	}
	return num / math.Sqrt(da*db)
}

// Truncate returns both streams cut to their common length.
func Truncate(a, b stream.Stream) (stream.Stream, stream.Stream) {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	return a[:n], b[:n]
}

// #endregion pearson
