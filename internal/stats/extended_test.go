package stats

import (
	"testing"

	"github.com/openentropy/openentropy-go/internal/stream"
)

func TestExtendedUniformLooksRandom(t *testing.T) {
	s := uniformStream(100000, 21)
	ext, err := ComputeExtended(s, stream.ProjectionXORFold)
	if err != nil {
		t.Fatalf("ComputeExtended: %v", err)
	}
	// The uniformity test is a p=0.05 cutoff, so even true uniform data sits
	// near the line; bound the statistic loosely instead of asserting the flag.
	if ext.ChiSquared <= 0 || ext.ChiSquared > 400 {
		t.Fatalf("chi2 = %.1f, want within (0, 400) for uniform bytes", ext.ChiSquared)
	}
	if ext.PermutationEntropy < 0.95 {
		t.Fatalf("permutation entropy %.4f, want > 0.95", ext.PermutationEntropy)
	}
	if ext.CompressionRatio < 0.95 {
		t.Fatalf("compression ratio %.4f, want > 0.95 (incompressible)", ext.CompressionRatio)
	}
	if ext.Grade != "A" && ext.Grade != "B" {
		t.Fatalf("grade %s (score %.1f), want A or B", ext.Grade, ext.QualityScore)
	}
}

func TestExtendedConstantScoresBottom(t *testing.T) {
	s := constantStream(10000, 99)
	ext, err := ComputeExtended(s, stream.ProjectionXORFold)
	if err != nil {
		t.Fatalf("ComputeExtended: %v", err)
	}
	if ext.Uniform {
		t.Fatal("constant stream should not pass the uniformity test")
	}
	if ext.PermutationEntropy != 0 {
		t.Fatalf("permutation entropy %v, want 0 for a constant stream", ext.PermutationEntropy)
	}
	if ext.CompressionRatio > 0.1 {
		t.Fatalf("compression ratio %.4f, want near 0 for a constant stream", ext.CompressionRatio)
	}
	if ext.Grade != "F" {
		t.Fatalf("grade %s (score %.1f), want F", ext.Grade, ext.QualityScore)
	}
}

func TestPermutationEntropyShortStream(t *testing.T) {
	if pe := PermutationEntropy(stream.Stream{1, 2, 3}, 3); pe != 0 {
		t.Fatalf("n < order+1: got %v, want 0", pe)
	}
	if pe := PermutationEntropy(stream.Stream{1, 2, 3, 4}, 1); pe != 0 {
		t.Fatalf("order < 2: got %v, want 0", pe)
	}
}

func TestPermutationEntropyMonotoneSignalIsZero(t *testing.T) {
	s := make(stream.Stream, 1000)
	for i := range s {
		s[i] = uint64(i)
	}
	// A strictly increasing sequence has a single ordinal pattern.
	if pe := PermutationEntropy(s, 3); pe != 0 {
		t.Fatalf("monotone stream: got %v, want 0", pe)
	}
}

func TestCompressionRatioTinyInput(t *testing.T) {
	if cr := CompressionRatio([]byte{1, 2, 3}); cr != 0 {
		t.Fatalf("tiny input: got %v, want 0", cr)
	}
}
