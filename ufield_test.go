package ufield_test

import (
	"context"
	"strings"
	"testing"

	"github.com/profileui/ufield"
	"github.com/profileui/ufield/components/countries"
)

func TestDefaultRegistryHasBuiltinRenderers(t *testing.T) {
	registry := ufield.DefaultRegistry()

	for _, name := range []string{"vanilla", "tui"} {
		if !registry.Has(name) {
			t.Fatalf("expected renderer %q to be registered", name)
		}
	}
	if got := registry.List(); len(got) != 2 {
		t.Fatalf("unexpected renderer list %v", got)
	}
}

func TestRenderHTML(t *testing.T) {
	field := ufield.Field{
		ID:           "color",
		Title:        "Color",
		TitleVisible: true,
		Editable:     ufield.EditableAlways,
		Groups: []ufield.OptionGroup{
			{Options: []ufield.SelectOption{
				{Value: "red", Label: "Red"},
				{Value: "blue", Label: "Blue"},
			}},
		},
	}

	markup, err := ufield.RenderHTML(context.Background(), field, ufield.RenderOptions{Value: "blue"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	html := string(markup)
	for _, want := range []string{
		`id="u-field-select-color"`,
		`<option value="blue" selected>Blue</option>`,
		`<label class="u-field-title" for="u-field-select-color">Color</label>`,
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected markup to contain %q, got:\n%s", want, html)
		}
	}
}

func TestRenderFallsBackToDefaultRegistry(t *testing.T) {
	field := countries.NewField("country")

	markup, err := ufield.Render(context.Background(), nil, "vanilla", field, ufield.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(markup), `id="u-field-select-country"`) {
		t.Fatalf("expected country select markup, got:\n%s", markup)
	}
}

func TestRenderUnknownRenderer(t *testing.T) {
	if _, err := ufield.Render(context.Background(), nil, "pdf", ufield.Field{ID: "x"}, ufield.RenderOptions{}); err == nil {
		t.Fatal("expected error for unknown renderer")
	}
}
