package stability

import (
	"errors"
	"fmt"
	"testing"

	"github.com/openentropy/openentropy-go/internal/collector"
	"github.com/openentropy/openentropy-go/internal/stream"
)

func TestStableSourceHasLowStddev(t *testing.T) {
	rep, err := Run(collector.NewUniform(17), 5000, 10)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(rep.PerTrialMinEntropy) != 10 {
		t.Fatalf("expected 10 trials, got %d", len(rep.PerTrialMinEntropy))
	}
	if rep.Mean < 7.0 {
		t.Fatalf("uniform mean min-entropy %.3f, want > 7.0", rep.Mean)
	}
	if rep.Stddev > 0.5 {
		t.Fatalf("uniform stddev %.3f, want < 0.5", rep.Stddev)
	}
}

func TestBimodalSourceHasHighStddev(t *testing.T) {
	// Alternate trials between a dead source and a healthy one: the classic
	// warm-up/drift failure a single large sample cannot see.
	uniform := collector.NewUniform(23)
	trial := 0
	flapping := collector.NewFunc("flapping", func(n int) (stream.Stream, error) {
		trial++
		if trial%2 == 0 {
			return uniform.Collect(n)
		}
		out := make(stream.Stream, n)
		return out, nil
	})

	rep, err := Run(flapping, 2000, 10)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if rep.Stddev < 2.0 {
		t.Fatalf("flapping stddev %.3f, want > 2.0", rep.Stddev)
	}
}

func TestFailingTrialAbortsStage(t *testing.T) {
	calls := 0
	failing := collector.NewFunc("failing", func(n int) (stream.Stream, error) {
		calls++
		if calls >= 3 {
			return nil, fmt.Errorf("probe: %w", stream.ErrCollectionFailed)
		}
		return make(stream.Stream, n), nil
	})

	_, err := Run(failing, 100, 10)
	if !errors.Is(err, stream.ErrCollectionFailed) {
		t.Fatalf("expected ErrCollectionFailed, got %v", err)
	}
}

func TestZeroTrialsRejected(t *testing.T) {
	_, err := Run(collector.NewUniform(1), 100, 0)
	if !errors.Is(err, stream.ErrInsufficientSamples) {
		t.Fatalf("expected ErrInsufficientSamples, got %v", err)
	}
}
