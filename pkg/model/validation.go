package model

import (
	"fmt"
	"strings"
)

// Validate performs the opt-in structural checks renderers deliberately skip:
// a non-blank ID and unique option values across the flattened set. Rendering
// never calls this; hosts that assemble view models from untrusted documents
// can run it before handing the field to a renderer.
func (f Field) Validate() error {
	if strings.TrimSpace(f.ID) == "" {
		return fmt.Errorf("model: field id is required")
	}

	seen := make(map[string]struct{}, f.OptionCount())
	for _, group := range f.Groups {
		for _, option := range group.Options {
			if _, exists := seen[option.Value]; exists {
				return fmt.Errorf("model: field %q repeats option value %q", f.ID, option.Value)
			}
			seen[option.Value] = struct{}{}
		}
	}
	return nil
}
