package render_test

import (
	"context"
	"testing"

	"github.com/profileui/ufield/pkg/model"
	"github.com/profileui/ufield/pkg/render"
)

type fakeRenderer struct {
	name string
}

func (r fakeRenderer) Name() string        { return r.name }
func (r fakeRenderer) ContentType() string { return "text/plain" }
func (r fakeRenderer) Render(context.Context, model.Field, render.RenderOptions) ([]byte, error) {
	return []byte(r.name), nil
}

func TestRegistryRegisterAndGet(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister(fakeRenderer{name: "html"})

	if err := registry.Register(fakeRenderer{name: "html"}); err == nil {
		t.Fatal("expected duplicate registration error")
	}
	if err := registry.Register(nil); err == nil {
		t.Fatal("expected nil renderer error")
	}

	renderer, err := registry.Get("html")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if renderer.Name() != "html" {
		t.Fatalf("unexpected renderer %q", renderer.Name())
	}

	if _, err := registry.Get("missing"); err == nil {
		t.Fatal("expected missing renderer error")
	}
}

func TestRegistryListSortsNames(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister(fakeRenderer{name: "tui"})
	registry.MustRegister(fakeRenderer{name: "html"})

	names := registry.List()
	if len(names) != 2 || names[0] != "html" || names[1] != "tui" {
		t.Fatalf("unexpected names %v", names)
	}
	if !registry.Has("tui") || registry.Has("preact") {
		t.Fatal("Has() answered incorrectly")
	}
}
