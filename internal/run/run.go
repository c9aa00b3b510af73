package run

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/openentropy/openentropy-go/internal/collector"
	"github.com/openentropy/openentropy-go/internal/stability"
	"github.com/openentropy/openentropy-go/internal/stats"
	"github.com/openentropy/openentropy-go/internal/stream"
	"github.com/openentropy/openentropy-go/internal/verdict"
)

// #region runner

// Runner executes the four-stage validation protocol. Single-threaded and
// synchronous: each stage runs to completion before the next begins, and a
// stage failure skips only that stage. Runners hold no mutable state, so
// concurrent runs are safe as long as each run gets its own collectors.
type Runner struct {
	config Config
	engine *verdict.Engine
}

// NewRunner creates a runner with the given configuration.
func NewRunner(config Config) *Runner {
	return &Runner{
		config: config,
		engine: verdict.NewEngine(config.Thresholds),
	}
}

// #endregion runner

// #region validate

// Validate runs all four stages for one candidate and computes the final
// verdict from stage 1's XOR-fold min-entropy, stage 3's stddev, and stage
// 2's max |autocorrelation|. Cross-correlation results are advisory only:
// redundancy between two sources does not make either one individually
// untrustworthy.
func (r *Runner) Validate(cand Candidate) Report {
	sizes := r.config.Sizes
	if cand.Sizes != nil {
		sizes = *cand.Sizes
	}

	rep := Report{
		ReportID:  uuid.New().String(),
		Source:    cand.Collector.Name(),
		CreatedAt: time.Now().UTC(),
	}

	// Stage 1: large-sample entropy under all three projections.
	r.largeSampleStage(cand.Collector, sizes, &rep)

	// Stage 2: autocorrelation on a fresh stream.
	r.autocorrStage(cand.Collector, sizes, &rep)

	// Stage 3: cross-trial stability.
	r.stabilityStage(cand.Collector, sizes, &rep)

	// Stage 4: cross-correlation against reference sources.
	r.crossCorrStage(cand, sizes, &rep)

	rep.Decision = r.decide(rep)
	return rep
}

// ValidateAll runs every candidate in order. One candidate's failure never
// stops the run; its report simply records the skipped stages.
func (r *Runner) ValidateAll(candidates []Candidate) []Report {
	reports := make([]Report, 0, len(candidates))
	for _, cand := range candidates {
		reports = append(reports, r.Validate(cand))
	}
	return reports
}

// #endregion validate

// #region stages

func (r *Runner) largeSampleStage(c collector.Collector, sizes StageSizes, rep *Report) {
	s, err := c.Collect(sizes.LargeSample)
	if err != nil {
		rep.LargeSampleSkip = err.Error()
		return
	}

	result := LargeSampleResult{
		ByProjection: make(map[stream.Projection]stats.Stats, len(stream.Projections)),
		SampleCount:  s.Len(),
	}
	for _, p := range stream.Projections {
		st, err := stats.ComputeStats(s, p)
		if err != nil {
			rep.LargeSampleSkip = err.Error()
			return
		}
		result.ByProjection[p] = st
	}

	ext, err := stats.ComputeExtended(s, stream.ProjectionXORFold)
	if err != nil {
		rep.LargeSampleSkip = err.Error()
		return
	}
	result.Extended = ext
	rep.LargeSample = &result
}

func (r *Runner) autocorrStage(c collector.Collector, sizes StageSizes, rep *Report) {
	s, err := c.Collect(sizes.Autocorr)
	if err != nil {
		rep.AutocorrSkip = err.Error()
		return
	}
	if s.Len() < 2 {
		rep.AutocorrSkip = fmt.Sprintf("%v: need 2 samples, got %d", stream.ErrInsufficientSamples, s.Len())
		return
	}
	maxAbs, byLag := stats.MaxAbsAutocorrelation(s, sizes.MaxLag)
	rep.Autocorr = &AutocorrResult{ByLag: byLag, MaxAbs: maxAbs, SampleCount: s.Len()}
}

func (r *Runner) stabilityStage(c collector.Collector, sizes StageSizes, rep *Report) {
	stab, err := stability.Run(c, sizes.TrialSize, sizes.TrialCount)
	if err != nil {
		rep.StabilitySkip = err.Error()
		return
	}
	rep.Stability = &stab
}

func (r *Runner) crossCorrStage(cand Candidate, sizes StageSizes, rep *Report) {
	if len(cand.References) == 0 {
		return
	}

	candStream, err := cand.Collector.Collect(sizes.CrossCorr)
	if err != nil {
		for _, ref := range cand.References {
			rep.CrossCorrelations = append(rep.CrossCorrelations, CrossCorrelation{
				SourceA: cand.Collector.Name(),
				SourceB: ref.Name(),
				Flag:    "skipped",
				Note:    err.Error(),
			})
		}
		return
	}

	for _, ref := range cand.References {
		pair := CrossCorrelation{SourceA: cand.Collector.Name(), SourceB: ref.Name()}
		refStream, err := ref.Collect(sizes.CrossCorr)
		if err != nil {
			pair.Flag = "skipped"
			pair.Note = err.Error()
			rep.CrossCorrelations = append(rep.CrossCorrelations, pair)
			continue
		}

		a, b := stats.Truncate(candStream, refStream)
		pair.R = stats.Pearson(a, b)
		pair.Flag = r.flagFor(pair.R)
		rep.CrossCorrelations = append(rep.CrossCorrelations, pair)
	}
}

func (r *Runner) flagFor(coeff float64) string {
	abs := coeff
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs > r.config.CrossRedundant:
		return "redundant"
	case abs > r.config.CrossWeak:
		return "weak"
	default:
		return "independent"
	}
}

// #endregion stages

// #region decide

// decide maps stage results to a verdict. A skipped large-sample or
// stability stage is an automatic demote, never a silent keep. A skipped
// autocorrelation stage contributes 0 to the max; rules 1-2 still apply.
func (r *Runner) decide(rep Report) verdict.Decision {
	if rep.LargeSample == nil {
		return verdict.InsufficientData(fmt.Sprintf("large-sample stage skipped: %s", rep.LargeSampleSkip))
	}
	if rep.Stability == nil {
		return verdict.InsufficientData(fmt.Sprintf("stability stage skipped: %s", rep.StabilitySkip))
	}

	maxAutocorr := 0.0
	if rep.Autocorr != nil {
		maxAutocorr = rep.Autocorr.MaxAbs
	}

	largeMinEntropy := rep.LargeSample.ByProjection[stream.ProjectionXORFold].MinEntropy
	return r.engine.Classify(largeMinEntropy, *rep.Stability, maxAutocorr)
}

// #endregion decide
