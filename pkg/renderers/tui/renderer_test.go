package tui

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/profileui/ufield/pkg/model"
	"github.com/profileui/ufield/pkg/render"
)

type stubDriver struct {
	index int
	err   error
	cfg   SelectConfig
	calls int
}

func (d *stubDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	d.calls++
	d.cfg = cfg
	return d.index, d.err
}

func languageField() model.Field {
	return model.Field{
		ID:                "lang",
		Title:             "Language",
		ScreenReaderTitle: "Language",
		Editable:          model.EditableToggle,
		ShowBlankOption:   true,
		Message:           "Preferred language",
		Groups: []model.OptionGroup{
			{Title: "Common", Options: []model.SelectOption{
				{Value: "en", Label: "English"},
				{Value: "fr", Label: "French"},
			}},
			{Options: []model.SelectOption{
				{Value: "eo", Label: "Esperanto"},
			}},
		},
	}
}

func TestRenderPromptsAndSerializesJSON(t *testing.T) {
	driver := &stubDriver{index: 2}
	renderer, err := New(WithDriver(driver))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	out, err := renderer.Render(context.Background(), languageField(), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	var sel struct {
		ID    string `json:"id"`
		Value string `json:"value"`
		Label string `json:"label"`
	}
	if err := json.Unmarshal(out, &sel); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if sel.ID != "lang" || sel.Value != "fr" || sel.Label != "French" {
		t.Fatalf("unexpected selection %+v", sel)
	}

	wantLabels := []string{"(none)", "Common / English", "Common / French", "Esperanto"}
	if diff := cmp.Diff(wantLabels, driver.cfg.Options); diff != "" {
		t.Fatalf("prompt labels mismatch (-want +got):\n%s", diff)
	}
	if driver.cfg.Message != "Language" {
		t.Fatalf("prompt message = %q", driver.cfg.Message)
	}
	if driver.cfg.Help != "Preferred language" {
		t.Fatalf("prompt help = %q", driver.cfg.Help)
	}
}

func TestRenderBlankChoice(t *testing.T) {
	driver := &stubDriver{index: 0}
	renderer, err := New(WithDriver(driver), WithOutputFormat(OutputFormatPlain))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	out, err := renderer.Render(context.Background(), languageField(), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(out) != "\n" {
		t.Fatalf("expected empty value line, got %q", string(out))
	}
}

func TestRenderDefaultIndexFromValue(t *testing.T) {
	driver := &stubDriver{index: 1}
	renderer, err := New(WithDriver(driver))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	if _, err := renderer.Render(context.Background(), languageField(), render.RenderOptions{Value: "fr"}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if driver.cfg.DefaultIndex != 2 {
		t.Fatalf("default index = %d, want 2", driver.cfg.DefaultIndex)
	}
}

func TestRenderReadOnlySkipsPrompt(t *testing.T) {
	driver := &stubDriver{index: 0}
	renderer, err := New(WithDriver(driver))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	field := languageField()
	field.Editable = model.EditableNever

	out, err := renderer.Render(context.Background(), field, render.RenderOptions{Value: "en"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if driver.calls != 0 {
		t.Fatalf("read-only render must not prompt, got %d calls", driver.calls)
	}

	var sel struct {
		Value string `json:"value"`
		Label string `json:"label"`
	}
	if err := json.Unmarshal(out, &sel); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if sel.Value != "en" || sel.Label != "English" {
		t.Fatalf("unexpected read-only selection %+v", sel)
	}
}

func TestRenderNoOptions(t *testing.T) {
	renderer, err := New(WithDriver(&stubDriver{}))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	field := model.Field{ID: "empty", Editable: model.EditableAlways}
	if _, err := renderer.Render(context.Background(), field, render.RenderOptions{}); err != ErrNoOptions {
		t.Fatalf("expected ErrNoOptions, got %v", err)
	}
}

func TestRenderOutOfRangeIndex(t *testing.T) {
	renderer, err := New(WithDriver(&stubDriver{index: 99}))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	if _, err := renderer.Render(context.Background(), languageField(), render.RenderOptions{}); err == nil {
		t.Fatal("expected out-of-range error")
	}
}

func TestContentType(t *testing.T) {
	jsonRenderer, _ := New()
	if jsonRenderer.ContentType() != "application/json" {
		t.Fatalf("json content type = %q", jsonRenderer.ContentType())
	}
	plainRenderer, _ := New(WithOutputFormat(OutputFormatPlain))
	if plainRenderer.ContentType() != "text/plain" {
		t.Fatalf("plain content type = %q", plainRenderer.ContentType())
	}
}
