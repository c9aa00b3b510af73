package verdict

import (
	"strings"
	"testing"

	"github.com/openentropy/openentropy-go/internal/stability"
)

func stab(stddev float64) stability.Report {
	return stability.Report{Mean: 3.0, Stddev: stddev}
}

func TestEntropyFloorFiresFirst(t *testing.T) {
	e := NewEngine(DefaultThresholds())
	d := e.Classify(0.3, stab(0.1), 0.05)
	if d.Verdict != VerdictCut {
		t.Fatalf("verdict %s, want cut", d.Verdict)
	}
	if !strings.Contains(d.Rule, "entropy floor") {
		t.Fatalf("rule %q, want entropy floor", d.Rule)
	}
}

func TestEntropyFloorWinsOverInstability(t *testing.T) {
	// Both rule 1 and rule 2 conditions hold; priority order reports the floor.
	e := NewEngine(DefaultThresholds())
	d := e.Classify(0.3, stab(5.0), 0.05)
	if d.Verdict != VerdictCut || !strings.Contains(d.Rule, "entropy floor") {
		t.Fatalf("got %s (%s), want cut via entropy floor", d.Verdict, d.Rule)
	}
}

func TestInstabilityCutsHealthyEntropy(t *testing.T) {
	e := NewEngine(DefaultThresholds())
	d := e.Classify(3.0, stab(3.0), 0.05)
	if d.Verdict != VerdictCut {
		t.Fatalf("verdict %s, want cut", d.Verdict)
	}
	if !strings.Contains(d.Rule, "unstable") {
		t.Fatalf("rule %q, want unstable", d.Rule)
	}
}

func TestWeakEntropyDemotes(t *testing.T) {
	e := NewEngine(DefaultThresholds())
	d := e.Classify(1.2, stab(0.2), 0.05)
	if d.Verdict != VerdictDemote {
		t.Fatalf("verdict %s, want demote", d.Verdict)
	}
	if !strings.Contains(d.Rule, "weak signal") {
		t.Fatalf("rule %q, want weak signal", d.Rule)
	}
}

func TestAutocorrelationDemotesDespiteHealthyEntropy(t *testing.T) {
	e := NewEngine(DefaultThresholds())
	d := e.Classify(3.0, stab(0.2), 0.6)
	if d.Verdict != VerdictDemote {
		t.Fatalf("verdict %s, want demote", d.Verdict)
	}
}

func TestHealthySourceIsKept(t *testing.T) {
	e := NewEngine(DefaultThresholds())
	d := e.Classify(3.0, stab(0.2), 0.05)
	if d.Verdict != VerdictKeep {
		t.Fatalf("verdict %s (%s), want keep", d.Verdict, d.Rule)
	}
}

func TestThresholdsAreOverridable(t *testing.T) {
	th := DefaultThresholds()
	th.MinEntropyCut = 4.0
	e := NewEngine(th)
	d := e.Classify(3.0, stab(0.2), 0.05)
	if d.Verdict != VerdictCut {
		t.Fatalf("raised floor: verdict %s, want cut", d.Verdict)
	}
}

func TestInsufficientDataNeverKeeps(t *testing.T) {
	d := InsufficientData("stability stage skipped")
	if d.Verdict != VerdictDemote {
		t.Fatalf("verdict %s, want demote", d.Verdict)
	}
	if !strings.Contains(d.Rule, "insufficient data") {
		t.Fatalf("rule %q, want insufficient data", d.Rule)
	}
}
