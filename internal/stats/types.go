package stats

// #region stats

// Stats summarizes one byte projection of one sample stream.
// Shannon and MinEntropy are in bits per byte (0..8); Mean and Stddev are
// computed over the raw u64 samples so timing-scale information survives
// the byte reduction.
type Stats struct {
	Shannon    float64 `json:"shannon"`
	MinEntropy float64 `json:"min_entropy"`
	Mean       float64 `json:"mean"`
	Stddev     float64 `json:"stddev"`
}

// #endregion stats

// #region extended

// Extended carries the advisory estimators beyond the core entropy figures.
// None of these feed the verdict; they are reported alongside it.
type Extended struct {
	ChiSquared         float64 `json:"chi_squared"`
	Uniform            bool    `json:"uniform"`
	PermutationEntropy float64 `json:"permutation_entropy"`
	CompressionRatio   float64 `json:"compression_ratio"`
	QualityScore       float64 `json:"quality_score"`
	Grade              string  `json:"grade"`
}

// #endregion extended

// #region constants

const (
	// histBins is the histogram size for byte-projected samples.
	histBins = 256

	// degenerateEps is the denominator floor below which correlation
	// statistics are reported as a defined 0 rather than computed.
	degenerateEps = 1e-15

	// chiSquaredUniformCutoff is the p=0.05 critical value at 255 degrees
	// of freedom for the byte-histogram uniformity test.
	chiSquaredUniformCutoff = 293.25
)

// #endregion constants
