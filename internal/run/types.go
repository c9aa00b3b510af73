package run

import (
	"time"

	"github.com/openentropy/openentropy-go/internal/collector"
	"github.com/openentropy/openentropy-go/internal/stability"
	"github.com/openentropy/openentropy-go/internal/stats"
	"github.com/openentropy/openentropy-go/internal/stream"
	"github.com/openentropy/openentropy-go/internal/verdict"
)

// #region stage-sizes

// StageSizes fixes the per-stage sample counts for one validation run. The
// defaults are calibrated for cheap in-process collectors; costly collectors
// (process spawns, multi-hundred-ms syscalls) get explicit per-stage caps via
// the registry instead of a single global constant.
type StageSizes struct {
	LargeSample int `json:"large_sample" yaml:"large_sample"`
	Autocorr    int `json:"autocorr" yaml:"autocorr"`
	MaxLag      int `json:"max_lag" yaml:"max_lag"`
	TrialSize   int `json:"trial_size" yaml:"trial_size"`
	TrialCount  int `json:"trial_count" yaml:"trial_count"`
	CrossCorr   int `json:"cross_corr" yaml:"cross_corr"`
}

// DefaultStageSizes matches the probe corpus: 100K large sample, lag 1-10,
// 10 trials of 10K, 4K cross-correlation streams.
func DefaultStageSizes() StageSizes {
	return StageSizes{
		LargeSample: 100000,
		Autocorr:    100000,
		MaxLag:      10,
		TrialSize:   10000,
		TrialCount:  10,
		CrossCorr:   4096,
	}
}

// #endregion stage-sizes

// #region config

// Config bundles stage sizes, verdict thresholds, and cross-correlation
// flag cutoffs for a runner.
type Config struct {
	Sizes      StageSizes
	Thresholds verdict.Thresholds

	// CrossRedundant flags |r| above this as "redundant"; CrossWeak flags
	// |r| above this (but at most CrossRedundant) as "weak".
	CrossRedundant float64
	CrossWeak      float64
}

// DefaultConfig returns the corpus defaults for all stages.
func DefaultConfig() Config {
	return Config{
		Sizes:          DefaultStageSizes(),
		Thresholds:     verdict.DefaultThresholds(),
		CrossRedundant: 0.3,
		CrossWeak:      0.1,
	}
}

// #endregion config

// #region candidate

// Candidate pairs a collector with the reference sources it is audited
// against, plus optional per-candidate stage-size overrides.
type Candidate struct {
	Collector  collector.Collector
	References []collector.Collector

	// Sizes overrides the runner's configured sizes when non-nil.
	Sizes *StageSizes
}

// #endregion candidate

// #region stage-results

// LargeSampleResult carries stage-1 statistics: core Stats per projection
// plus the advisory extended estimators on the XOR-fold projection.
type LargeSampleResult struct {
	ByProjection map[stream.Projection]stats.Stats `json:"by_projection"`
	Extended     stats.Extended                    `json:"extended"`
	SampleCount  int                               `json:"sample_count"`
}

// AutocorrResult carries stage-2 per-lag coefficients. Values may slightly
// exceed [-1, 1] in floating point; display clamps, verdict arithmetic
// does not.
type AutocorrResult struct {
	ByLag       map[int]float64 `json:"by_lag"`
	MaxAbs      float64         `json:"max_abs"`
	SampleCount int             `json:"sample_count"`
}

// CrossCorrelation is one audited source pair with its Pearson coefficient.
// Flag is "redundant", "weak", "independent", or "skipped"; Note carries the
// skip reason.
type CrossCorrelation struct {
	SourceA string  `json:"source_a"`
	SourceB string  `json:"source_b"`
	R       float64 `json:"r"`
	Flag    string  `json:"flag"`
	Note    string  `json:"note,omitempty"`
}

// #endregion stage-results

// #region report

// Report is the full structured record for one candidate source. A nil stage
// pointer means the stage was skipped; the matching Skip field says why.
type Report struct {
	ReportID  string    `json:"report_id"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"created_at"`

	LargeSample     *LargeSampleResult `json:"large_sample,omitempty"`
	LargeSampleSkip string             `json:"large_sample_skip,omitempty"`

	Autocorr     *AutocorrResult `json:"autocorr,omitempty"`
	AutocorrSkip string          `json:"autocorr_skip,omitempty"`

	Stability     *stability.Report `json:"stability,omitempty"`
	StabilitySkip string            `json:"stability_skip,omitempty"`

	CrossCorrelations []CrossCorrelation `json:"cross_correlations,omitempty"`

	Decision verdict.Decision `json:"decision"`
}

// #endregion report
