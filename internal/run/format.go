package run

import (
	"fmt"
	"sort"
	"strings"

	"github.com/openentropy/openentropy-go/internal/stats"
	"github.com/openentropy/openentropy-go/internal/stream"
)

// #region render

// RenderText formats a report for terminal output.
func RenderText(rep Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "=== %s ===\n", rep.Source)
	fmt.Fprintf(&b, "report %s  %s\n", rep.ReportID, rep.CreatedAt.Format("2006-01-02 15:04:05"))

	if rep.LargeSample != nil {
		fmt.Fprintf(&b, "\nLarge sample (%d samples):\n", rep.LargeSample.SampleCount)
		for _, p := range stream.Projections {
			st := rep.LargeSample.ByProjection[p]
			fmt.Fprintf(&b, "  %-16s Shannon=%.3f  H_inf=%.3f\n", string(p)+":", st.Shannon, st.MinEntropy)
		}
		st := rep.LargeSample.ByProjection[stream.ProjectionXORFold]
		fmt.Fprintf(&b, "  mean=%.1f  stddev=%.1f\n", st.Mean, st.Stddev)

		ext := rep.LargeSample.Extended
		uniform := "no"
		if ext.Uniform {
			uniform = "yes"
		}
		fmt.Fprintf(&b, "  chi2=%.1f (uniform: %s)  perm_entropy=%.3f  compression=%.3f  quality=%s\n",
			ext.ChiSquared, uniform, ext.PermutationEntropy, ext.CompressionRatio, stats.GradeSummary(ext))
	} else {
		fmt.Fprintf(&b, "\nLarge sample: skipped: %s\n", rep.LargeSampleSkip)
	}

	if rep.Autocorr != nil {
		fmt.Fprintf(&b, "\nAutocorrelation (%d samples):\n", rep.Autocorr.SampleCount)
		lags := make([]int, 0, len(rep.Autocorr.ByLag))
		for lag := range rep.Autocorr.ByLag {
			lags = append(lags, lag)
		}
		sort.Ints(lags)
		for _, lag := range lags {
			ac := clamp(rep.Autocorr.ByLag[lag])
			marker := ""
			if ac > 0.1 || ac < -0.1 {
				marker = "  *** HIGH ***"
			}
			fmt.Fprintf(&b, "  lag-%-2d: %+.4f%s\n", lag, ac, marker)
		}
	} else {
		fmt.Fprintf(&b, "\nAutocorrelation: skipped: %s\n", rep.AutocorrSkip)
	}

	if rep.Stability != nil {
		fmt.Fprintf(&b, "\nStability (%d trials):\n", len(rep.Stability.PerTrialMinEntropy))
		for i, v := range rep.Stability.PerTrialMinEntropy {
			fmt.Fprintf(&b, "  trial %2d: H_inf=%.3f\n", i+1, v)
		}
		fmt.Fprintf(&b, "  mean=%.3f  stddev=%.3f\n", rep.Stability.Mean, rep.Stability.Stddev)
	} else {
		fmt.Fprintf(&b, "\nStability: skipped: %s\n", rep.StabilitySkip)
	}

	if len(rep.CrossCorrelations) > 0 {
		fmt.Fprintf(&b, "\nCross-correlation:\n")
		for _, cc := range rep.CrossCorrelations {
			if cc.Flag == "skipped" {
				fmt.Fprintf(&b, "  %s <-> %s: skipped: %s\n", cc.SourceA, cc.SourceB, cc.Note)
				continue
			}
			fmt.Fprintf(&b, "  %s <-> %s: r=%+.4f (%s)\n", cc.SourceA, cc.SourceB, clamp(cc.R), cc.Flag)
		}
	}

	fmt.Fprintf(&b, "\nVERDICT: %s (%s)\n", strings.ToUpper(string(rep.Decision.Verdict)), rep.Decision.Rule)
	return b.String()
}

// clamp pins display values to [-1, 1]; verdict arithmetic never uses the
// clamped form.
func clamp(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}

// #endregion render
