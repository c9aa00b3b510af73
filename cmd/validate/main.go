package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/openentropy/openentropy-go/internal/collector"
	"github.com/openentropy/openentropy-go/internal/registry"
	"github.com/openentropy/openentropy-go/internal/remote"
	"github.com/openentropy/openentropy-go/internal/report"
	"github.com/openentropy/openentropy-go/internal/run"
)

// #region main

func main() {
	dbPath := flag.String("db", envOr("OPENENTROPY_DB", "openentropy.db"), "path to report database")
	regPath := flag.String("registry", envOr("OPENENTROPY_REGISTRY", ""), "source registry YAML (builtin defaults when empty)")
	sourceFilter := flag.String("source", "", "validate only these sources (comma-separated)")
	jsonOut := flag.Bool("json", false, "print reports as JSON instead of text")
	noSave := flag.Bool("no-save", false, "skip persisting reports")
	flag.Parse()

	reg := registry.Default()
	if *regPath != "" {
		var err error
		reg, err = registry.Load(*regPath)
		if err != nil {
			log.Fatalf("load registry: %v", err)
		}
	}

	specs := filterSpecs(reg, *sourceFilter)
	if len(specs) == 0 {
		log.Fatalf("no sources matched %q", *sourceFilter)
	}

	var store *report.Store
	if !*noSave {
		var err error
		store, err = report.NewStore(*dbPath)
		if err != nil {
			log.Fatalf("open store: %v", err)
		}
		defer store.Close()
	}

	config := run.DefaultConfig()
	runner := run.NewRunner(config)

	failed := 0
	for _, spec := range specs {
		rep, err := validateOne(runner, config, reg, spec)
		if err != nil {
			log.Printf("source %s: %v", spec.Name, err)
			failed++
			continue
		}

		if *jsonOut {
			body, err := json.MarshalIndent(rep, "", "  ")
			if err != nil {
				log.Printf("source %s: marshal report: %v", spec.Name, err)
				failed++
				continue
			}
			fmt.Println(string(body))
		} else {
			fmt.Println(run.RenderText(rep))
		}

		if store != nil {
			if err := store.SaveReport(rep); err != nil {
				log.Printf("source %s: save report: %v", spec.Name, err)
				failed++
			}
		}
	}

	if failed > 0 {
		os.Exit(1)
	}
}

// #endregion main

// #region validate-one

// validateOne builds the candidate and reference collectors for one spec and
// runs the full protocol. Collectors that own resources are closed before
// returning.
func validateOne(runner *run.Runner, config run.Config, reg registry.Registry, spec registry.SourceSpec) (run.Report, error) {
	cand, closers, err := buildCandidate(config, reg, spec)
	if err != nil {
		return run.Report{}, err
	}
	defer func() {
		for _, c := range closers {
			if err := c.Close(); err != nil {
				log.Printf("close collector: %v", err)
			}
		}
	}()

	return runner.Validate(cand), nil
}

func buildCandidate(config run.Config, reg registry.Registry, spec registry.SourceSpec) (run.Candidate, []io.Closer, error) {
	var closers []io.Closer

	col, err := buildCollector(spec)
	if err != nil {
		return run.Candidate{}, nil, err
	}
	if closer, ok := col.(io.Closer); ok {
		closers = append(closers, closer)
	}

	var refs []collector.Collector
	for _, refName := range spec.References {
		refSpec, ok := reg.Find(refName)
		if !ok {
			return run.Candidate{}, closers, fmt.Errorf("reference %q not in registry", refName)
		}
		ref, err := buildCollector(refSpec)
		if err != nil {
			return run.Candidate{}, closers, fmt.Errorf("reference %q: %w", refName, err)
		}
		if closer, ok := ref.(io.Closer); ok {
			closers = append(closers, closer)
		}
		refs = append(refs, ref)
	}

	sizes := registry.MergeSizes(config.Sizes, spec.Sizes)
	return run.Candidate{Collector: col, References: refs, Sizes: &sizes}, closers, nil
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

// #endregion validate-one

// #region helpers

func filterSpecs(reg registry.Registry, filter string) []registry.SourceSpec {
	if filter == "" {
		return reg.Sources
	}
	wanted := make(map[string]bool)
	for _, name := range strings.Split(filter, ",") {
		wanted[strings.TrimSpace(name)] = true
	}
	var out []registry.SourceSpec
	for _, spec := range reg.Sources {
		if wanted[spec.Name] {
			out = append(out, spec)
		}
	}
	return out
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
