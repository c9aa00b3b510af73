package registry

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/openentropy/openentropy-go/internal/run"
)

// #region types

// SourceSpec describes one registered candidate source: how to construct its
// collector, which reference sources it is cross-correlated against, and any
// per-stage sample caps. Costly collectors (process spawns, multi-hundred-ms
// syscalls) must cap every stage explicitly; the default sizes are calibrated
// for cheap in-process collectors.
type SourceSpec struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`           // "builtin" | "remote"
	Addr string `yaml:"addr,omitempty"` // remote collector address
	Cost string `yaml:"cost,omitempty"` // "cheap" | "costly", informational

	Sizes      *run.StageSizes `yaml:"sizes,omitempty"`
	References []string        `yaml:"references,omitempty"`
}

// Registry is the full source inventory for a validation campaign.
type Registry struct {
	Sources []SourceSpec `yaml:"sources"`
}

// #endregion types

// #region load

// Load reads and validates a registry YAML file.
func Load(path string) (Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Registry{}, fmt.Errorf("read registry: %w", err)
	}
	var reg Registry
	if err := yaml.Unmarshal(data, &reg); err != nil {
		return Registry{}, fmt.Errorf("parse registry: %w", err)
	}
	if err := reg.validate(); err != nil {
		return Registry{}, fmt.Errorf("registry %s: %w", path, err)
	}
	return reg, nil
}

func (r Registry) validate() error {
	if len(r.Sources) == 0 {
		return fmt.Errorf("no sources defined")
	}
	seen := make(map[string]bool, len(r.Sources))
	for _, src := range r.Sources {
		if src.Name == "" {
			return fmt.Errorf("source with empty name")
		}
		if seen[src.Name] {
			return fmt.Errorf("duplicate source %q", src.Name)
		}
		seen[src.Name] = true
		switch src.Kind {
		case "builtin":
		case "remote":
			if src.Addr == "" {
				return fmt.Errorf("remote source %q: missing addr", src.Name)
			}
		default:
			return fmt.Errorf("source %q: unknown kind %q", src.Name, src.Kind)
		}
	}
	for _, src := range r.Sources {
		for _, ref := range src.References {
			if !seen[ref] {
				return fmt.Errorf("source %q: unknown reference %q", src.Name, ref)
			}
		}
	}
	return nil
}

// #endregion load

// #region default

// Default returns the builtin source inventory. Reference pairs group the
// sources plausibly sharing a physical noise domain: the three that bottom
// out in the scheduler and monotonic clock audit each other, and the two
// memory-path sources pair up.
func Default() Registry {
	costlyDisk := &run.StageSizes{
		LargeSample: 5000,
		Autocorr:    5000,
		TrialSize:   500,
		TrialCount:  10,
		CrossCorr:   1000,
	}
	return Registry{Sources: []SourceSpec{
		{Name: "clock_jitter", Kind: "builtin", Cost: "cheap", References: []string{"scheduler_yield"}},
		{Name: "scheduler_yield", Kind: "builtin", Cost: "cheap", References: []string{"clock_jitter", "channel_roundtrip"}},
		{Name: "channel_roundtrip", Kind: "builtin", Cost: "cheap", References: []string{"scheduler_yield"}},
		{Name: "memory_walk", Kind: "builtin", Cost: "cheap", References: []string{"clock_jitter"}},
		{Name: "disk_sync", Kind: "builtin", Cost: "costly", Sizes: costlyDisk, References: []string{"clock_jitter"}},
	}}
}

// Find returns the spec for a source name.
func (r Registry) Find(name string) (SourceSpec, bool) {
	for _, src := range r.Sources {
		if src.Name == name {
			return src, true
		}
	}
	return SourceSpec{}, false
}

// #endregion default

// #region merge-sizes

// MergeSizes overlays per-source caps on the base sizes; zero fields inherit.
func MergeSizes(base run.StageSizes, override *run.StageSizes) run.StageSizes {
	if override == nil {
		return base
	}
	out := base
	if override.LargeSample > 0 {
		out.LargeSample = override.LargeSample
	}
	if override.Autocorr > 0 {
		out.Autocorr = override.Autocorr
	}
	if override.MaxLag > 0 {
		out.MaxLag = override.MaxLag
	}
	if override.TrialSize > 0 {
		out.TrialSize = override.TrialSize
	}
	if override.TrialCount > 0 {
		out.TrialCount = override.TrialCount
	}
	if override.CrossCorr > 0 {
		out.CrossCorr = override.CrossCorr
	}
	return out
}

// #endregion merge-sizes
