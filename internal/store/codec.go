package store

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ytget/chemviz/internal/model"
	"github.com/ytget/chemviz/internal/registry"
)

// Encode serializes widgets in the persisted layout format
func Encode(widgets []model.Widget) ([]byte, error) {
	if widgets == nil {
		widgets = []model.Widget{}
	}
	return json.Marshal(widgets)
}

// Decode parses a persisted payload. The payload is rejected as a whole when it
// is not a non-empty array of well-formed records; there is no partial recovery.
// Accepted records have their metric normalized against their chart type.
func Decode(data []byte) ([]model.Widget, error) {
	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("layout is not an array: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("layout is empty")
	}

	widgets := make([]model.Widget, 0, len(records))
	seen := make(map[int]bool, len(records))
	for i, raw := range records {
		var w model.Widget
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		if err := validate(w); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		if seen[w.ID] {
			return nil, fmt.Errorf("record %d: duplicate id %d", i, w.ID)
		}
		seen[w.ID] = true

		w.Metric = registry.NormalizeMetric(w.Type, w.Metric)
		widgets = append(widgets, w)
	}
	return widgets, nil
}

func validate(w model.Widget) error {
	if w.ID <= 0 {
		return fmt.Errorf("invalid id %d", w.ID)
	}
	if strings.TrimSpace(w.Title) == "" {
		return fmt.Errorf("empty title")
	}
	if !w.Type.IsValid() {
		return fmt.Errorf("unknown chart type %q", w.Type)
	}
	if _, ok := model.LookupTheme(w.Theme); !ok {
		return fmt.Errorf("unknown theme %q", w.Theme)
	}
	return nil
}

// checkWidget applies the restore rules plus metric compatibility, so that
// whatever Add and Update persist decodes back unchanged
func checkWidget(w model.Widget) error {
	if err := validate(w); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidWidget, err)
	}
	if !registry.Accepts(w.Type, registry.CategoryOf(w.Metric)) {
		return fmt.Errorf("%w: metric %q cannot be drawn as %s", ErrInvalidWidget, w.Metric, w.Type)
	}
	return nil
}

func maxID(widgets []model.Widget) int {
	max := 0
	for _, w := range widgets {
		if w.ID > max {
			max = w.ID
		}
	}
	return max
}
