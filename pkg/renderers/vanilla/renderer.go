package vanilla

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/profileui/ufield/pkg/model"
	"github.com/profileui/ufield/pkg/render"
	rendertemplate "github.com/profileui/ufield/pkg/render/template"
	gotemplate "github.com/profileui/ufield/pkg/render/template/gotemplate"
)

// selectPartialKey names the theme partial that replaces the built-in markup
// builder when a theme ships its own field template.
const selectPartialKey = "fields.select"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
}

// WithTemplatesFS supplies a template bundle used for theme partials.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads theme partial templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// Renderer produces the HTML rendition of a dropdown field. The zero
// configuration renders entirely through the built-in markup builder; themes
// can reroute rendering to template partials.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
}

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	var cfg config
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	renderer := cfg.templateRenderer
	if renderer == nil && cfg.templateFS != nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer}, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render emits the field markup. When the render options carry a theme whose
// partials map names a select template and a template renderer is configured,
// that partial wins over the built-in builder.
func (r *Renderer) Render(_ context.Context, field model.Field, opts render.RenderOptions) ([]byte, error) {
	if partial := r.themePartial(opts); partial != "" {
		result, err := r.templates.RenderTemplate(partial, templatePayload(field, opts))
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: render partial %q: %w", partial, err)
		}
		return []byte(result), nil
	}
	return []byte(buildFieldMarkup(field, opts)), nil
}

func (r *Renderer) themePartial(opts render.RenderOptions) string {
	if r.templates == nil || opts.Theme == nil {
		return ""
	}
	return strings.TrimSpace(opts.Theme.Partials[selectPartialKey])
}

func templatePayload(field model.Field, opts render.RenderOptions) map[string]any {
	return map[string]any{
		"field":         field,
		"editable":      string(field.Editable.Normalize()),
		"selectId":      selectID(field.ID),
		"valueId":       valueID(field.ID),
		"messageId":     messageID(field.ID),
		"helpMessageId": helpMessageID(field.ID),
		"value":         opts.Value,
		"displayLabel":  displayLabel(field, opts),
		"clickToEdit":   opts.Localize(clickToEditKey, clickToEditFallback),
	}
}
