package stability

import (
	"fmt"
	"math"

	"github.com/openentropy/openentropy-go/internal/collector"
	"github.com/openentropy/openentropy-go/internal/stats"
	"github.com/openentropy/openentropy-go/internal/stream"
)

// #region report

// Report aggregates per-trial min-entropy over independent fixed-size
// collections. A source whose estimate moves with trial boundaries (thermal
// drift, cache warm-up, background load) is unreliable even when a single
// large sample looks healthy.
type Report struct {
	PerTrialMinEntropy []float64 `json:"per_trial_min_entropy"`
	Mean               float64   `json:"mean"`
	Stddev             float64   `json:"stddev"`
}

// #endregion report

// #region run

// Run performs trialCount independent collections of trialSize samples each,
// computing XOR-fold min-entropy per trial and the mean/population stddev
// across trials. Any trial that fails to collect or to project aborts the
// whole stage.
func Run(c collector.Collector, trialSize, trialCount int) (Report, error) {
	if trialCount < 1 {
		return Report{}, fmt.Errorf("stability: %w: need at least 1 trial", stream.ErrInsufficientSamples)
	}

	perTrial := make([]float64, 0, trialCount)
	for t := 0; t < trialCount; t++ {
		s, err := c.Collect(trialSize)
		if err != nil {
			return Report{}, fmt.Errorf("stability trial %d: %w", t+1, err)
		}
		st, err := stats.ComputeStats(s, stream.ProjectionXORFold)
		if err != nil {
			return Report{}, fmt.Errorf("stability trial %d: %w", t+1, err)
		}
		perTrial = append(perTrial, st.MinEntropy)
	}

	var sum float64
	for _, v := range perTrial {
		sum += v
	}
	mean := sum / float64(len(perTrial))

	var varSum float64
	for _, v := range perTrial {
		d := v - mean
		varSum += d * d
	}

	return Report{
		PerTrialMinEntropy: perTrial,
		Mean:               mean,
		Stddev:             math.Sqrt(varSum / float64(len(perTrial))),
	}, nil
}

// #endregion run
