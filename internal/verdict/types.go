package verdict

// #region verdict

// Verdict classifies a candidate entropy source.
type Verdict string

const (
	// VerdictKeep retains the source as a trusted contributor.
	VerdictKeep Verdict = "keep"
	// VerdictDemote keeps the source but excludes it from the trusted set.
	VerdictDemote Verdict = "demote"
	// VerdictCut removes the source entirely.
	VerdictCut Verdict = "cut"
)

// #endregion verdict

// #region decision

// Decision is a verdict plus the rule that triggered it.
type Decision struct {
	Verdict Verdict `json:"verdict"`
	Rule    string  `json:"rule"`
}

// #endregion decision

// #region thresholds

// Thresholds holds the classification cutoffs. These are empirically chosen
// defaults, not physical constants; the correct values depend on sample size
// and on how strong the downstream conditioning is.
type Thresholds struct {
	MinEntropyCut      float64 // bits: below this the source is cut outright
	StabilityStddevCut float64 // bits: cross-trial stddev above this is cut
	MinEntropyDemote   float64 // bits: below this the source is demoted
	AutocorrDemote     float64 // |autocorrelation| above this is demoted
}

// DefaultThresholds returns the cutoffs used across the probe corpus.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MinEntropyCut:      0.5,
		StabilityStddevCut: 2.0,
		MinEntropyDemote:   1.5,
		AutocorrDemote:     0.5,
	}
}

// #endregion thresholds
