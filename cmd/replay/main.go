package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/openentropy/openentropy-go/internal/fixture"
	"github.com/openentropy/openentropy-go/internal/report"
	"github.com/openentropy/openentropy-go/internal/run"
)

// #region main

// replay re-runs the validation protocol over a recorded capture. Stage sizes
// are fitted to the recording length so a single capture feeds all stages;
// recordings too short for a stage exercise the skipped-stage path instead of
// failing the run.
func main() {
	fixturePath := flag.String("fixture", "", "path to fixture JSON")
	dbPath := flag.String("db", "", "persist the report to this database (optional)")
	jsonOut := flag.Bool("json", false, "print report as JSON instead of text")
	flag.Parse()

	if *fixturePath == "" {
		fmt.Fprintln(os.Stderr, "usage: replay --fixture path/to/capture.json [--db openentropy.db] [--json]")
		os.Exit(2)
	}

	fix, err := fixture.Load(*fixturePath)
	if err != nil {
		log.Fatalf("load fixture: %v", err)
	}

	config := run.DefaultConfig()
	config.Sizes = fitSizes(len(fix.Samples))
	runner := run.NewRunner(config)

	rep := runner.Validate(run.Candidate{Collector: fixture.NewReplayer(fix)})

	if *jsonOut {
		body, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			log.Fatalf("marshal report: %v", err)
		}
		fmt.Println(string(body))
	} else {
		fmt.Println(run.RenderText(rep))
	}

	if *dbPath != "" {
		store, err := report.NewStore(*dbPath)
		if err != nil {
			log.Fatalf("open store: %v", err)
		}
		defer store.Close()
		if err := store.SaveReport(rep); err != nil {
			log.Fatalf("save report: %v", err)
		}
	}
}

// #endregion main

// #region fit-sizes

// fitSizes splits a recording across the stages: 40% large sample, 40%
// autocorrelation, 20% spread over 10 stability trials. No cross-correlation
// on replay (a single capture has nothing to correlate against).
func fitSizes(total int) run.StageSizes {
	sizes := run.DefaultStageSizes()
	sizes.LargeSample = total * 2 / 5
	sizes.Autocorr = total * 2 / 5
	sizes.TrialCount = 10
	sizes.TrialSize = (total - sizes.LargeSample - sizes.Autocorr) / sizes.TrialCount
	if sizes.TrialSize < 1 {
		sizes.TrialSize = 1
	}
	return sizes
}

// #endregion fit-sizes
