package highlights

import (
	"encoding/json"
	"fmt"
	"os"

	"clipforge/internal/services"
)

// Duration bounds enforced on every selected segment, in seconds.
const (
	MinDurationSeconds = 30
	MaxDurationSeconds = 120
)

// Highlight is one selected transcript segment with the model's rationale.
type Highlight struct {
	Start  float64 `json:"start"`
	End    float64 `json:"end"`
	Reason string  `json:"reason"`
}

// Duration returns the highlight length in seconds.
func (h Highlight) Duration() float64 {
	return h.End - h.Start
}

// Validate checks that the highlight has sane, in-bounds timing.
func (h Highlight) Validate() error {
	if h.Start < 0 {
		return fmt.Errorf("start %.2f before zero", h.Start)
	}
	if h.End <= h.Start {
		return fmt.Errorf("end %.2f not after start %.2f", h.End, h.Start)
	}
	d := h.Duration()
	if d < MinDurationSeconds {
		return fmt.Errorf("duration %.2fs below %ds minimum", d, MinDurationSeconds)
	}
	if d > MaxDurationSeconds {
		return fmt.Errorf("duration %.2fs above %ds maximum", d, MaxDurationSeconds)
	}
	return nil
}

// Load reads a highlight list from a JSON file.
func Load(path string) ([]Highlight, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, services.Wrap(services.ErrNotFound, "highlights", "load", "highlights file not found", err)
		}
		return nil, services.Wrap(services.ErrValidation, "highlights", "load", "read highlights file", err)
	}
	var items []Highlight
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, services.Wrap(services.ErrValidation, "highlights", "load", "decode highlights file", err)
	}
	if len(items) == 0 {
		return nil, services.Wrap(services.ErrValidation, "highlights", "load", "highlights file contains no segments", nil)
	}
	return items, nil
}

// Save writes the highlight list to a JSON file with indentation.
func Save(path string, items []Highlight) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return services.Wrap(services.ErrValidation, "highlights", "save", "encode highlights", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return services.Wrap(services.ErrValidation, "highlights", "save", "write highlights file", err)
	}
	return nil
}
