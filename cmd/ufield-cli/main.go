package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/profileui/ufield"
	"github.com/profileui/ufield/components/countries"
	"github.com/profileui/ufield/pkg/fieldschema"
	"github.com/profileui/ufield/pkg/model"
	"github.com/profileui/ufield/pkg/render"
)

func main() {
	fieldID := flag.String("field", "", "field ID to render (defaults to a demo country dropdown)")
	schema := flag.String("schema", "", "field schema file path (YAML or JSON)")
	rendererName := flag.String("renderer", "vanilla", "renderer to use")
	value := flag.String("value", "", "pre-selected option value")
	locale := flag.String("locale", "", "locale passed to the translator")
	output := flag.String("output", "", "output file (stdout if empty)")
	list := flag.Bool("list", false, "list the field IDs in the schema and exit")
	flag.Parse()

	ctx := context.Background()

	store, err := loadStore(*schema)
	if err != nil {
		log.Fatalf("Failed to load schema: %v", err)
	}

	if *list {
		for _, id := range store.IDs() {
			fmt.Println(id)
		}
		return
	}

	field, err := resolveField(store, *fieldID)
	if err != nil {
		log.Fatalf("%v", err)
	}

	registry := ufield.DefaultRegistry()
	renderer, err := registry.Get(*rendererName)
	if err != nil {
		log.Fatalf("Unknown renderer %q, registered renderers: %s", *rendererName, strings.Join(registry.List(), ", "))
	}

	markup, err := renderer.Render(ctx, field, render.RenderOptions{
		Locale: *locale,
		Value:  *value,
	})
	if err != nil {
		log.Fatalf("Failed to render field: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, markup, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Field written to %s\n", *output)
	} else {
		fmt.Println(string(markup))
	}
}

func loadStore(path string) (*fieldschema.Store, error) {
	if strings.TrimSpace(path) == "" {
		return fieldschema.NewStore(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return fieldschema.Load(data, path)
}

func resolveField(store *fieldschema.Store, id string) (model.Field, error) {
	if store.Empty() {
		if id == "" {
			id = "country"
		}
		return countries.NewField(id), nil
	}

	if id == "" {
		ids := store.IDs()
		if len(ids) == 1 {
			id = ids[0]
		} else {
			return model.Field{}, fmt.Errorf("schema defines %d fields, pick one with -field (%s)", len(ids), strings.Join(ids, ", "))
		}
	}

	field, ok := store.Field(id)
	if !ok {
		return model.Field{}, fmt.Errorf("unknown field %q, schema defines: %s", id, strings.Join(store.IDs(), ", "))
	}
	return field, nil
}
