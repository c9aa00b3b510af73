package run

import (
	"fmt"
	"strings"
	"testing"

	"github.com/openentropy/openentropy-go/internal/collector"
	"github.com/openentropy/openentropy-go/internal/stream"
	"github.com/openentropy/openentropy-go/internal/verdict"
)

// testConfig shrinks stage sizes so runs stay fast.
func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Sizes = StageSizes{
		LargeSample: 20000,
		Autocorr:    20000,
		MaxLag:      10,
		TrialSize:   2000,
		TrialCount:  10,
		CrossCorr:   1024,
	}
	return cfg
}

func TestUniformSourceIsKept(t *testing.T) {
	runner := NewRunner(testConfig())
	rep := runner.Validate(Candidate{Collector: collector.NewUniform(31)})

	if rep.Decision.Verdict != verdict.VerdictKeep {
		t.Fatalf("verdict %s (%s), want keep", rep.Decision.Verdict, rep.Decision.Rule)
	}
	if rep.LargeSample == nil || rep.Autocorr == nil || rep.Stability == nil {
		t.Fatal("expected all stages to run")
	}
	if len(rep.LargeSample.ByProjection) != 3 {
		t.Fatalf("expected 3 projections, got %d", len(rep.LargeSample.ByProjection))
	}
	if rep.ReportID == "" || rep.Source != "uniform" {
		t.Fatalf("bad report identity: id=%q source=%q", rep.ReportID, rep.Source)
	}
}

func TestConstantSourceIsCutAtEntropyFloor(t *testing.T) {
	runner := NewRunner(testConfig())
	rep := runner.Validate(Candidate{Collector: collector.NewConstant(42)})

	if rep.Decision.Verdict != verdict.VerdictCut {
		t.Fatalf("verdict %s, want cut", rep.Decision.Verdict)
	}
	if !strings.Contains(rep.Decision.Rule, "entropy floor") {
		t.Fatalf("rule %q, want entropy floor", rep.Decision.Rule)
	}
}

func TestSlowSignalIsNotKept(t *testing.T) {
	runner := NewRunner(testConfig())
	rep := runner.Validate(Candidate{Collector: collector.NewSineDrift(100000, 5000, 0.02)})

	if rep.Decision.Verdict == verdict.VerdictKeep {
		t.Fatalf("a re-sampled waveform must not be kept (rule %q)", rep.Decision.Rule)
	}
	if rep.Autocorr != nil && rep.Autocorr.MaxAbs < 0.5 {
		t.Fatalf("sine max |autocorr| %.4f, want > 0.5", rep.Autocorr.MaxAbs)
	}
}

func TestFailingCollectorDemotesWithInsufficientData(t *testing.T) {
	failing := collector.NewFunc("dead_probe", func(n int) (stream.Stream, error) {
		return nil, fmt.Errorf("dead_probe: %w", stream.ErrCollectionFailed)
	})
	runner := NewRunner(testConfig())
	rep := runner.Validate(Candidate{Collector: failing})

	if rep.LargeSample != nil || rep.Autocorr != nil || rep.Stability != nil {
		t.Fatal("expected every stage skipped")
	}
	if rep.LargeSampleSkip == "" || rep.StabilitySkip == "" {
		t.Fatal("expected skip reasons recorded")
	}
	if rep.Decision.Verdict != verdict.VerdictDemote {
		t.Fatalf("verdict %s, want demote", rep.Decision.Verdict)
	}
	if !strings.Contains(rep.Decision.Rule, "insufficient data") {
		t.Fatalf("rule %q, want insufficient data", rep.Decision.Rule)
	}
}

func TestIdenticalReferenceIsFlaggedRedundant(t *testing.T) {
	// Candidate and reference re-seed per collection, so their cross streams
	// are sample-for-sample identical: the extreme case of two APIs hitting
	// one noise domain.
	fresh := func(name string, seed uint64) collector.Collector {
		return collector.NewFunc(name, func(n int) (stream.Stream, error) {
			return collector.NewUniform(seed).Collect(n)
		})
	}
	runner := NewRunner(testConfig())
	rep := runner.Validate(Candidate{
		Collector:  fresh("uniform", 77),
		References: []collector.Collector{fresh("alias", 77)},
	})

	if len(rep.CrossCorrelations) != 1 {
		t.Fatalf("expected 1 pair, got %d", len(rep.CrossCorrelations))
	}
	cc := rep.CrossCorrelations[0]
	if cc.Flag != "redundant" {
		t.Fatalf("flag %q (r=%.4f), want redundant", cc.Flag, cc.R)
	}
	// Advisory only: redundancy must not change the verdict.
	if rep.Decision.Verdict != verdict.VerdictKeep {
		t.Fatalf("verdict %s, want keep despite redundancy", rep.Decision.Verdict)
	}
}

func TestIndependentReferenceIsFlagged(t *testing.T) {
	runner := NewRunner(testConfig())
	rep := runner.Validate(Candidate{
		Collector:  collector.NewUniform(101),
		References: []collector.Collector{collector.NewFunc("other", collector.NewUniform(55555).Collect)},
	})

	if len(rep.CrossCorrelations) != 1 {
		t.Fatalf("expected 1 pair, got %d", len(rep.CrossCorrelations))
	}
	if flag := rep.CrossCorrelations[0].Flag; flag != "independent" {
		t.Fatalf("flag %q (r=%.4f), want independent", flag, rep.CrossCorrelations[0].R)
	}
}

func TestFailingReferenceSkipsOnlyThatPair(t *testing.T) {
	dead := collector.NewFunc("dead_ref", func(n int) (stream.Stream, error) {
		return nil, fmt.Errorf("dead_ref: %w", stream.ErrCollectionFailed)
	})
	runner := NewRunner(testConfig())
	rep := runner.Validate(Candidate{
		Collector: collector.NewUniform(3),
		References: []collector.Collector{
			dead,
			collector.NewFunc("live_ref", collector.NewUniform(9).Collect),
		},
	})

	if len(rep.CrossCorrelations) != 2 {
		t.Fatalf("expected 2 pairs, got %d", len(rep.CrossCorrelations))
	}
	if rep.CrossCorrelations[0].Flag != "skipped" || rep.CrossCorrelations[0].Note == "" {
		t.Fatalf("dead pair: got flag %q note %q", rep.CrossCorrelations[0].Flag, rep.CrossCorrelations[0].Note)
	}
	if rep.CrossCorrelations[1].Flag == "skipped" {
		t.Fatal("live pair should not be skipped")
	}
	if rep.Decision.Verdict != verdict.VerdictKeep {
		t.Fatalf("verdict %s, want keep", rep.Decision.Verdict)
	}
}

func TestPartialCollectionStillAnalyzed(t *testing.T) {
	// A collector that always returns half the requested samples: partial
	// success per the contract, never an error.
	half := collector.NewFunc("half", func(n int) (stream.Stream, error) {
		u := collector.NewUniform(uint64(n))
		return u.Collect(n/2 + 1)
	})
	runner := NewRunner(testConfig())
	rep := runner.Validate(Candidate{Collector: half})

	if rep.LargeSample == nil {
		t.Fatalf("large-sample stage skipped: %s", rep.LargeSampleSkip)
	}
	if rep.LargeSample.SampleCount >= 20000 {
		t.Fatalf("expected partial count, got %d", rep.LargeSample.SampleCount)
	}
	if rep.Decision.Verdict != verdict.VerdictKeep {
		t.Fatalf("verdict %s (%s), want keep", rep.Decision.Verdict, rep.Decision.Rule)
	}
}

func TestValidateAllContinuesPastFailures(t *testing.T) {
	failing := collector.NewFunc("dead_probe", func(n int) (stream.Stream, error) {
		return nil, fmt.Errorf("dead_probe: %w", stream.ErrCollectionFailed)
	})
	runner := NewRunner(testConfig())
	reports := runner.ValidateAll([]Candidate{
		{Collector: failing},
		{Collector: collector.NewUniform(41)},
	})

	if len(reports) != 2 {
		t.Fatalf("expected 2 reports, got %d", len(reports))
	}
	if reports[0].Decision.Verdict != verdict.VerdictDemote {
		t.Fatalf("failed candidate verdict %s, want demote", reports[0].Decision.Verdict)
	}
	if reports[1].Decision.Verdict != verdict.VerdictKeep {
		t.Fatalf("healthy candidate verdict %s, want keep", reports[1].Decision.Verdict)
	}
}

func TestPerCandidateSizeOverride(t *testing.T) {
	var requested []int
	probe := collector.NewFunc("probe", func(n int) (stream.Stream, error) {
		requested = append(requested, n)
		return collector.NewUniform(uint64(len(requested))).Collect(n)
	})
	sizes := StageSizes{LargeSample: 500, Autocorr: 400, MaxLag: 5, TrialSize: 100, TrialCount: 3, CrossCorr: 50}
	runner := NewRunner(testConfig())
	runner.Validate(Candidate{Collector: probe, Sizes: &sizes})

	// Stage order: large, autocorr, then 3 stability trials.
	want := []int{500, 400, 100, 100, 100}
	if len(requested) != len(want) {
		t.Fatalf("requests %v, want %v", requested, want)
	}
	for i := range want {
		if requested[i] != want[i] {
			t.Fatalf("request %d: got %d, want %d", i, requested[i], want[i])
		}
	}
}

func TestRenderTextCoversAllStages(t *testing.T) {
	runner := NewRunner(testConfig())
	rep := runner.Validate(Candidate{
		Collector:  collector.NewUniform(63),
		References: []collector.Collector{collector.NewFunc("ref", collector.NewUniform(64).Collect)},
	})

	text := RenderText(rep)
	for _, want := range []string{"Large sample", "Autocorrelation", "Stability", "Cross-correlation", "VERDICT: KEEP"} {
		if !strings.Contains(text, want) {
			t.Fatalf("rendered report missing %q:\n%s", want, text)
		}
	}
}
