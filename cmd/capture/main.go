package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/openentropy/openentropy-go/internal/collector"
	"github.com/openentropy/openentropy-go/internal/fixture"
	"github.com/openentropy/openentropy-go/internal/registry"
	"github.com/openentropy/openentropy-go/internal/remote"
)

// #region main

// capture records raw samples from one source into a fixture JSON, so a
// validation run can later be replayed without re-probing the hardware.
func main() {
	source := flag.String("source", "", "source name to capture")
	regPath := flag.String("registry", "", "source registry YAML (builtin defaults when empty)")
	n := flag.Int("n", 250000, "samples to capture")
	outPath := flag.String("out", "", "output fixture JSON path")
	desc := flag.String("description", "", "fixture description")
	flag.Parse()

	if *source == "" || *outPath == "" {
		fmt.Fprintln(os.Stderr, "usage: capture --source name --out capture.json [--registry sources.yaml] [--n N] [--description text]")
		os.Exit(2)
	}

	reg := registry.Default()
	if *regPath != "" {
		var err error
		reg, err = registry.Load(*regPath)
		if err != nil {
			log.Fatalf("load registry: %v", err)
		}
	}

	spec, ok := reg.Find(*source)
	if !ok {
		log.Fatalf("source %q not in registry", *source)
	}

	col, err := buildCollector(spec)
	if err != nil {
		log.Fatalf("build collector: %v", err)
	}
	if closer, ok := col.(io.Closer); ok {
		defer func() {
			if err := closer.Close(); err != nil {
				log.Printf("close collector: %v", err)
			}
		}()
	}

	log.Printf("collecting %d samples from %s...", *n, *source)
	s, err := col.Collect(*n)
	if err != nil {
		log.Fatalf("collect: %v", err)
	}
	if s.Len() < *n {
		log.Printf("partial collection: got %d of %d samples", s.Len(), *n)
	}

	fix := fixture.Fixture{
		Description: *desc,
		Source:      *source,
		CapturedAt:  time.Now().UTC().Format(time.RFC3339),
		Samples:     s,
	}
	if err := fixture.Save(*outPath, fix); err != nil {
		log.Fatalf("save fixture: %v", err)
	}
	log.Printf("wrote %d samples to %s", s.Len(), *outPath)
}

// #endregion main

// #region build

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

// #endregion build
