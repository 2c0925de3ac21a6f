package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/profileui/ufield/pkg/model"
	"github.com/profileui/ufield/pkg/render"
)

const defaultBlankLabel = "(none)"

// Renderer drives a terminal select prompt for a dropdown field and
// serialises the chosen option. Read-only fields short-circuit to their
// current value without prompting.
type Renderer struct {
	driver       PromptDriver
	outputFormat OutputFormat
	pageSize     int
	blankLabel   string
}

// New constructs a TUI renderer with defaults (survey driver, JSON output).
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		driver:       newSurveyDriver(),
		outputFormat: OutputFormatJSON,
		blankLabel:   defaultBlankLabel,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	if r.outputFormat == OutputFormatPlain {
		return "text/plain"
	}
	return "application/json"
}

// selection is the serialised result of a prompt.
type selection struct {
	ID    string `json:"id"`
	Value string `json:"value"`
	Label string `json:"label"`
}

// Render prompts for a choice among the field's flattened options. Grouped
// options keep their order; group titles become "Title / Label" prefixes so
// the flat prompt list preserves the grouping cue.
func (r *Renderer) Render(ctx context.Context, field model.Field, opts render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if field.Editable.Normalize() == model.EditableNever {
		return r.serialize(readOnlySelection(field, opts))
	}

	choices, labels := promptChoices(field, r.blankLabel)
	if len(choices) == 0 {
		return nil, ErrNoOptions
	}

	cfg := SelectConfig{
		Message:      promptMessage(field),
		Options:      labels,
		DefaultIndex: defaultIndex(choices, opts.Value),
		Help:         field.Message,
		PageSize:     r.pageSize,
	}

	idx, err := r.driver.Select(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if idx < 0 || idx >= len(choices) {
		return nil, fmt.Errorf("tui: driver returned out-of-range index %d", idx)
	}

	chosen := choices[idx]
	return r.serialize(selection{ID: field.ID, Value: chosen.Value, Label: chosen.Label})
}

func (r *Renderer) serialize(sel selection) ([]byte, error) {
	if r.outputFormat == OutputFormatPlain {
		return []byte(sel.Value + "\n"), nil
	}
	payload, err := json.Marshal(sel)
	if err != nil {
		return nil, fmt.Errorf("tui: marshal selection: %w", err)
	}
	return payload, nil
}

func readOnlySelection(field model.Field, opts render.RenderOptions) selection {
	sel := selection{ID: field.ID, Value: opts.Value}
	if label, ok := field.OptionLabel(opts.Value); ok {
		sel.Label = label
	}
	return sel
}

func promptChoices(field model.Field, blankLabel string) ([]model.SelectOption, []string) {
	count := field.OptionCount()
	if field.ShowBlankOption {
		count++
	}
	if count == 0 {
		return nil, nil
	}

	choices := make([]model.SelectOption, 0, count)
	labels := make([]string, 0, count)

	if field.ShowBlankOption {
		choices = append(choices, model.SelectOption{})
		labels = append(labels, blankLabel)
	}
	for _, group := range field.Groups {
		for _, option := range group.Options {
			choices = append(choices, option)
			if group.Grouped() {
				labels = append(labels, group.Title+" / "+option.Label)
			} else {
				labels = append(labels, option.Label)
			}
		}
	}
	return choices, labels
}

func promptMessage(field model.Field) string {
	if title := strings.TrimSpace(field.Title); title != "" {
		return title
	}
	return field.AccessibleName()
}

func defaultIndex(choices []model.SelectOption, value string) int {
	if value == "" {
		return -1
	}
	for i, choice := range choices {
		if choice.Value == value {
			return i
		}
	}
	return -1
}
