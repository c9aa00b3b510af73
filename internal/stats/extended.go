package stats

import (
	"bytes"
	"fmt"
	"math"
	"sort"

	"github.com/klauspost/compress/flate"

	"github.com/openentropy/openentropy-go/internal/stream"
)

// #region compute-extended

// ComputeExtended runs the advisory estimators over one projection of a
// stream: chi-squared uniformity, permutation entropy of the raw values,
// flate compression ratio of the projected bytes, and a composite quality
// score with a letter grade.
func ComputeExtended(s stream.Stream, p stream.Projection) (Extended, error) {
	projected, err := p.Apply(s)
	if err != nil {
		return Extended{}, err
	}

	st, err := ComputeStats(s, p)
	if err != nil {
		return Extended{}, err
	}

	var ext Extended
	ext.ChiSquared, ext.Uniform = chiSquaredUniformity(projected)
	ext.PermutationEntropy = PermutationEntropy(s, 3)
	ext.CompressionRatio = CompressionRatio(projected)

	ext.QualityScore = qualityScore(st.Shannon, ext)
	ext.Grade = gradeFromScore(ext.QualityScore)
	return ext, nil
}

// #endregion compute-extended

// #region chi-squared

// chiSquaredUniformity tests the 256-bin byte histogram against a uniform
// distribution. Uniform iff chi2 < 293.25 (p=0.05 at 255 df).
func chiSquaredUniformity(projected []byte) (chi2 float64, uniform bool) {
	var hist [histBins]int
	for _, b := range projected {
		hist[b]++
	}
	expected := float64(len(projected)) / histBins
	if expected < degenerateEps {
		return 0, false
	}
	for _, c := range hist {
		d := float64(c) - expected
		chi2 += d * d / expected
	}
	return chi2, chi2 < chiSquaredUniformCutoff
}

// #endregion chi-squared

// #region permutation-entropy

// PermutationEntropy computes normalized permutation entropy of the raw
// values at the given embedding order. 1.0 means maximally complex ordinal
// structure. Returns 0 when the stream is shorter than order+1.
func PermutationEntropy(s stream.Stream, order int) float64 {
	n := len(s)
	if order < 2 || n < order+1 {
		return 0
	}

	counts := make(map[string]int)
	idx := make([]int, order)
	pattern := make([]byte, order)
	total := 0
	for i := 0; i+order <= n; i++ {
		w := s[i : i+order]
		for k := range idx {
			idx[k] = k
		}
		// Ties break on original position, matching the ordinal convention.
		sort.SliceStable(idx, func(a, b int) bool { return w[idx[a]] < w[idx[b]] })
		for k, v := range idx {
			pattern[k] = byte(v)
		}
		counts[string(pattern)]++
		total++
	}

	var pe float64
	for _, c := range counts {
		prob := float64(c) / float64(total)
		pe -= prob * math.Log2(prob)
	}
	return pe / math.Log2(factorial(order))
}

func factorial(n int) float64 {
	f := 1.0
	for i := 2; i <= n; i++ {
		f *= float64(i)
	}
	return f
}

// #endregion permutation-entropy

// #region compression-ratio

// CompressionRatio compresses the projected bytes at the highest flate level
// and returns compressed/original size. Near 1.0 means incompressible.
// Inputs under 10 bytes report 0.
func CompressionRatio(projected []byte) float64 {
	if len(projected) < 10 {
		return 0
	}
	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		return 0
	}
	if _, err := w.Write(projected); err != nil {
		return 0
	}
	if err := w.Close(); err != nil {
		return 0
	}
	return float64(buf.Len()) / float64(len(projected))
}

// #endregion compression-ratio

// #region quality

// qualityScore folds entropy efficiency, incompressibility, uniformity, and
// ordinal complexity into a 0-100 composite.
func qualityScore(shannon float64, ext Extended) float64 {
	eff := shannon / 8.0
	score := eff * 40
	score += math.Min(ext.CompressionRatio, 1.0) * 20
	if ext.Uniform {
		score += 20
	}
	score += ext.PermutationEntropy * 20
	return score
}

func gradeFromScore(score float64) string {
	switch {
	case score >= 80:
		return "A"
	case score >= 60:
		return "B"
	case score >= 40:
		return "C"
	case score >= 20:
		return "D"
	default:
		return "F"
	}
}

// GradeSummary renders "score/100 (grade)" for report lines.
func GradeSummary(ext Extended) string {
	return fmt.Sprintf("%.1f/100 (%s)", ext.QualityScore, ext.Grade)
}

// #endregion quality
