package fixture

import (
	"encoding/json"
	"fmt"
	"os"
)

// #region fixture-types

// Fixture is the JSON structure for a recorded sample capture: one source's
// raw samples, replayable through the validation pipeline without touching
// the hardware that produced them.
type Fixture struct {
	Description string   `json:"description,omitempty"`
	Source      string   `json:"source"`
	CapturedAt  string   `json:"captured_at,omitempty"`
	Samples     []uint64 `json:"samples"`
}

// #endregion fixture-types

// #region load-save

// Load reads and validates a fixture JSON file.
func Load(path string) (Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Fixture{}, fmt.Errorf("read fixture: %w", err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return Fixture{}, fmt.Errorf("parse fixture: %w", err)
	}
	if f.Source == "" {
		return Fixture{}, fmt.Errorf("fixture %s: missing source name", path)
	}
	if len(f.Samples) == 0 {
		return Fixture{}, fmt.Errorf("fixture %s: no samples", path)
	}
	return f, nil
}

// Save writes a fixture as indented JSON.
func Save(path string, f Fixture) error {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal fixture: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write fixture: %w", err)
	}
	return nil
}

// #endregion load-save
