package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"

	"github.com/openentropy/openentropy-go/internal/collector"
	"github.com/openentropy/openentropy-go/internal/registry"
	"github.com/openentropy/openentropy-go/internal/remote"
	"github.com/openentropy/openentropy-go/internal/stats"
	"github.com/openentropy/openentropy-go/internal/stream"
)

// #region main

// audit collects one stream from every registered source and computes the
// Pearson correlation between every pair, flagging pairs that plausibly draw
// from the same underlying physical noise domain.
func main() {
	regPath := flag.String("registry", "", "source registry YAML (builtin defaults when empty)")
	n := flag.Int("n", 4096, "samples per source")
	redundant := flag.Float64("redundant", 0.3, "|r| above this flags a pair as redundant")
	weak := flag.Float64("weak", 0.1, "|r| above this flags a pair as weak")
	flag.Parse()

	reg := registry.Default()
	if *regPath != "" {
		var err error
		reg, err = registry.Load(*regPath)
		if err != nil {
			log.Fatalf("load registry: %v", err)
		}
	}

	names, streams := collectAll(reg, *n)
	if len(streams) < 2 {
		log.Fatalf("need at least 2 collectable sources, got %d", len(streams))
	}

	fmt.Printf("Cross-correlation audit: %d sources, %d samples each\n\n", len(names), *n)
	redundantPairs := 0
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			a, b := stats.Truncate(streams[i], streams[j])
			r := stats.Pearson(a, b)
			flagStr := "independent"
			switch {
			case math.Abs(r) > *redundant:
				flagStr = "REDUNDANT"
				redundantPairs++
			case math.Abs(r) > *weak:
				flagStr = "weak"
			}
			fmt.Printf("  %-18s <-> %-18s  r=%+.4f  %s\n", names[i], names[j], r, flagStr)
		}
	}

	fmt.Printf("\n%d redundant pair(s)\n", redundantPairs)
	if redundantPairs > 0 {
		os.Exit(1)
	}
}

// #endregion main

// #region collect-all

// collectAll gathers one stream per source, skipping sources that fail.
func collectAll(reg registry.Registry, n int) ([]string, []stream.Stream) {
	var names []string
	var streams []stream.Stream

	for _, spec := range reg.Sources {
		col, err := buildCollector(spec)
		if err != nil {
			log.Printf("source %s: %v (skipping)", spec.Name, err)
			continue
		}

		size := n
		if spec.Sizes != nil && spec.Sizes.CrossCorr > 0 && spec.Sizes.CrossCorr < n {
			size = spec.Sizes.CrossCorr
		}
		s, err := col.Collect(size)
		if closer, ok := col.(io.Closer); ok {
			if cerr := closer.Close(); cerr != nil {
				log.Printf("source %s: close: %v", spec.Name, cerr)
			}
		}
		if err != nil {
			log.Printf("source %s: %v (skipping)", spec.Name, err)
			continue
		}

		names = append(names, spec.Name)
		streams = append(streams, s)
	}
	return names, streams
}

func buildCollector(spec registry.SourceSpec) (collector.Collector, error) {
	switch spec.Kind {
	case "builtin":
		return collector.ByName(spec.Name)
	case "remote":
		return remote.NewClient(spec.Addr, spec.Name)
	default:
		return nil, fmt.Errorf("unknown source kind %q", spec.Kind)
	}
}

// #endregion collect-all
