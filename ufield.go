package ufield

import (
	"context"
	"fmt"

	"github.com/profileui/ufield/pkg/model"
	"github.com/profileui/ufield/pkg/render"
	"github.com/profileui/ufield/pkg/renderers/tui"
	"github.com/profileui/ufield/pkg/renderers/vanilla"
)

// Field is the dropdown view model; alias exported via the root package for
// convenience.
type Field = model.Field

// SelectOption is a single choice inside a field.
type SelectOption = model.SelectOption

// OptionGroup is a titled (or untitled) run of options.
type OptionGroup = model.OptionGroup

// Editable names the edit affordance of a field.
type Editable = model.Editable

// RenderOptions describes per-request overrides such as a pre-selected value
// or a translator.
type RenderOptions = render.RenderOptions

// Translator resolves message keys for localized copy.
type Translator = render.Translator

// TranslatorFunc adapts a function to the Translator interface.
type TranslatorFunc = render.TranslatorFunc

// Editable modes re-exported from pkg/model.
const (
	EditableAlways = model.EditableAlways
	EditableToggle = model.EditableToggle
	EditableNever  = model.EditableNever
)

// DefaultRegistry builds a registry with the built-in renderers registered:
// "vanilla" for HTML output and "tui" for terminal prompts.
func DefaultRegistry() *render.Registry {
	registry := render.NewRegistry()

	htmlRenderer, err := vanilla.New()
	if err != nil {
		panic(fmt.Errorf("ufield: build vanilla renderer: %w", err))
	}
	registry.MustRegister(htmlRenderer)

	termRenderer, err := tui.New()
	if err != nil {
		panic(fmt.Errorf("ufield: build tui renderer: %w", err))
	}
	registry.MustRegister(termRenderer)

	return registry
}

// RenderHTML renders the field with the built-in HTML renderer. It is the
// simplest entry point for callers that just want markup.
func RenderHTML(ctx context.Context, field Field, options RenderOptions) ([]byte, error) {
	renderer, err := vanilla.New()
	if err != nil {
		return nil, err
	}
	return renderer.Render(ctx, field, options)
}

// Render looks up rendererName in registry (DefaultRegistry when nil) and
// renders the field with it.
func Render(ctx context.Context, registry *render.Registry, rendererName string, field Field, options RenderOptions) ([]byte, error) {
	if registry == nil {
		registry = DefaultRegistry()
	}
	renderer, err := registry.Get(rendererName)
	if err != nil {
		return nil, err
	}
	return renderer.Render(ctx, field, options)
}
