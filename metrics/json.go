package metrics

import (
	"encoding/json"
	"fmt"
	"os"
)

// ToJSON renders m as indented JSON.
func (m *Metrics) ToJSON() ([]byte, error) {
	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("metrics: marshal: %w", err)
	}
	return b, nil
}

// WriteFile writes m's JSON representation to path, creating or
// truncating it with owner-only permissions.
func (m *Metrics) WriteFile(path string) error {
	b, err := m.ToJSON()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, b, 0o600); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}
	return nil
}
