package verdict

import (
	"fmt"

	"github.com/openentropy/openentropy-go/internal/stability"
)

// #region engine

// Engine classifies candidate sources against configured thresholds.
type Engine struct {
	thresholds Thresholds
}

// NewEngine creates an engine with the given thresholds.
func NewEngine(thresholds Thresholds) *Engine {
	return &Engine{thresholds: thresholds}
}

// Classify applies the decision rules in strict priority order; the first
// match wins, so catastrophic failures are reported even when a source looks
// marginally stable on the other axes.
func (e *Engine) Classify(largeMinEntropy float64, stab stability.Report, maxAutocorr float64) Decision {
	t := e.thresholds

	// 1. Entropy floor
	if largeMinEntropy < t.MinEntropyCut {
		return Decision{
			Verdict: VerdictCut,
			Rule:    fmt.Sprintf("entropy floor failure: H_inf %.3f < %.2f", largeMinEntropy, t.MinEntropyCut),
		}
	}

	// 2. Cross-trial instability
	if stab.Stddev > t.StabilityStddevCut {
		return Decision{
			Verdict: VerdictCut,
			Rule:    fmt.Sprintf("unstable across trials: stddev %.3f > %.2f", stab.Stddev, t.StabilityStddevCut),
		}
	}

	// 3. Weak signal or detectable structure
	if largeMinEntropy < t.MinEntropyDemote || maxAutocorr > t.AutocorrDemote {
		return Decision{
			Verdict: VerdictDemote,
			Rule: fmt.Sprintf("weak signal or detectable structure: H_inf %.3f, max autocorr %.4f",
				largeMinEntropy, maxAutocorr),
		}
	}

	return Decision{Verdict: VerdictKeep, Rule: "passed all checks"}
}

// InsufficientData is the decision for a run whose large-sample or stability
// stage was skipped: never a silent Keep.
func InsufficientData(reason string) Decision {
	return Decision{
		Verdict: VerdictDemote,
		Rule:    fmt.Sprintf("insufficient data: %s", reason),
	}
}

// #endregion engine
