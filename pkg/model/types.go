package model

import "strings"

// Editable controls whether a field renders its editing control, a
// click-to-edit affordance, or a read-only value.
type Editable string

const (
	// EditableAlways keeps the control permanently in edit mode.
	EditableAlways Editable = "always"
	// EditableToggle renders the control plus a display affordance that
	// external behavior swaps between display and edit states.
	EditableToggle Editable = "toggle"
	// EditableNever renders a read-only value with no control at all.
	EditableNever Editable = "never"
)

// Normalize maps unrecognized editability values onto EditableToggle so
// renderers always land on one of the two supported branches. Callers that
// need strict input checking should validate before rendering.
func (e Editable) Normalize() Editable {
	switch Editable(strings.TrimSpace(string(e))) {
	case EditableAlways:
		return EditableAlways
	case EditableNever:
		return EditableNever
	default:
		return EditableToggle
	}
}

// SelectOption is a single value/label pair inside a dropdown.
type SelectOption struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// OptionGroup is an ordered run of options, optionally titled. An empty
// Title means the options render directly without an optgroup wrapper.
type OptionGroup struct {
	Title   string         `json:"title,omitempty" yaml:"title,omitempty"`
	Options []SelectOption `json:"options" yaml:"options"`
}

// Grouped reports whether the run renders inside a labeled optgroup.
func (g OptionGroup) Grouped() bool {
	return strings.TrimSpace(g.Title) != ""
}

// Field is the view model for a labeled dropdown form field. It is supplied
// by the caller for each render; renderers never mutate it and hold no state
// across renders. Struct fields are annotated so schema loaders can
// deserialise documents directly.
type Field struct {
	// ID suffixes every generated DOM id so label, control, and message
	// regions stay associated. Callers own uniqueness.
	ID string `json:"id" yaml:"id"`

	// Title is the visible label text; it only shows when TitleVisible is
	// set. ScreenReaderTitle is the always-present accessible name used in
	// hidden labels and read-only value spans.
	Title             string `json:"title,omitempty" yaml:"title,omitempty"`
	TitleVisible      bool   `json:"titleVisible" yaml:"titleVisible"`
	ScreenReaderTitle string `json:"screenReaderTitle" yaml:"screenReaderTitle"`

	// Icon is a decorative icon class name. IconMarkup optionally carries
	// inline SVG that renderers sanitize before emitting; when both are set
	// the markup wins.
	Icon       string `json:"icon,omitempty" yaml:"icon,omitempty"`
	IconMarkup string `json:"iconMarkup,omitempty" yaml:"iconMarkup,omitempty"`

	Editable        Editable `json:"editable,omitempty" yaml:"editable,omitempty"`
	ShowBlankOption bool     `json:"showBlankOption" yaml:"showBlankOption"`

	// Groups hold the select content in render order. Option values should
	// be unique across the flattened set for correct select semantics;
	// renderers do not enforce this (see Validate).
	Groups []OptionGroup `json:"groups" yaml:"groups"`

	// Message seeds the help span of the message region. Validation copy
	// lands in the live region externally after render.
	Message string `json:"message,omitempty" yaml:"message,omitempty"`

	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}
