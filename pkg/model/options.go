package model

import "strings"

// FlattenedOptions returns every option across all groups in render order.
func (f Field) FlattenedOptions() []SelectOption {
	count := f.OptionCount()
	if count == 0 {
		return nil
	}
	out := make([]SelectOption, 0, count)
	for _, group := range f.Groups {
		out = append(out, group.Options...)
	}
	return out
}

// OptionCount reports how many options the field carries, ignoring the
// leading blank option.
func (f Field) OptionCount() int {
	count := 0
	for _, group := range f.Groups {
		count += len(group.Options)
	}
	return count
}

// OptionLabel resolves the display label for a stored value. The second
// return reports whether the value matched any option.
func (f Field) OptionLabel(value string) (string, bool) {
	for _, group := range f.Groups {
		for _, option := range group.Options {
			if option.Value == value {
				return option.Label, true
			}
		}
	}
	return "", false
}

// AccessibleName returns the name assistive technology should announce for
// the field, preferring ScreenReaderTitle over the visible title.
func (f Field) AccessibleName() string {
	if name := strings.TrimSpace(f.ScreenReaderTitle); name != "" {
		return name
	}
	return strings.TrimSpace(f.Title)
}
