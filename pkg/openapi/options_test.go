package openapi

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/profileui/ufield/pkg/model"
)

const countriesDocument = `
openapi: 3.0.3
info:
  title: Profile API
  version: 1.0.0
paths: {}
components:
  schemas:
    Country:
      type: string
      enum: [US, BR, FR, DE, AQ]
      x-enum-labels:
        US: United States
        BR: Brazil
        FR: France
        DE: Germany
      x-option-groups:
        - title: Americas
          values: [US, BR]
        - title: Europe
          values: [FR, DE]
    Plain:
      type: string
      enum: [red, green, blue]
    NoEnum:
      type: string
`

func TestOptionsFromDocumentGrouped(t *testing.T) {
	groups, err := OptionsFromDocument(context.Background(), []byte(countriesDocument), "Country")
	if err != nil {
		t.Fatalf("options: %v", err)
	}

	want := []model.OptionGroup{
		{Options: []model.SelectOption{{Value: "AQ", Label: "AQ"}}},
		{Title: "Americas", Options: []model.SelectOption{
			{Value: "US", Label: "United States"},
			{Value: "BR", Label: "Brazil"},
		}},
		{Title: "Europe", Options: []model.SelectOption{
			{Value: "FR", Label: "France"},
			{Value: "DE", Label: "Germany"},
		}},
	}
	if diff := cmp.Diff(want, groups); diff != "" {
		t.Fatalf("groups mismatch (-want +got):\n%s", diff)
	}
}

func TestOptionsFromDocumentUngroupedEnum(t *testing.T) {
	groups, err := OptionsFromDocument(context.Background(), []byte(countriesDocument), "Plain")
	if err != nil {
		t.Fatalf("options: %v", err)
	}

	if len(groups) != 1 || groups[0].Grouped() {
		t.Fatalf("expected a single untitled group, got %+v", groups)
	}
	want := []model.SelectOption{
		{Value: "red", Label: "red"},
		{Value: "green", Label: "green"},
		{Value: "blue", Label: "blue"},
	}
	if diff := cmp.Diff(want, groups[0].Options); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
}

func TestOptionsFromDocumentErrors(t *testing.T) {
	ctx := context.Background()

	if _, err := OptionsFromDocument(ctx, nil, "Country"); err == nil {
		t.Fatal("expected error for empty payload")
	}
	if _, err := OptionsFromDocument(ctx, []byte(countriesDocument), ""); err == nil {
		t.Fatal("expected error for blank schema name")
	}
	if _, err := OptionsFromDocument(ctx, []byte(countriesDocument), "Missing"); err == nil {
		t.Fatal("expected error for unknown schema")
	}

	_, err := OptionsFromDocument(ctx, []byte(countriesDocument), "NoEnum")
	if err == nil || !strings.Contains(err.Error(), "enum") {
		t.Fatalf("expected enum error, got %v", err)
	}
}

func TestOptionsFromDocumentRejectsUnknownGroupValue(t *testing.T) {
	doc := `
openapi: 3.0.3
info:
  title: Profile API
  version: 1.0.0
paths: {}
components:
  schemas:
    Broken:
      type: string
      enum: [a, b]
      x-option-groups:
        - title: Letters
          values: [a, z]
`
	if _, err := OptionsFromDocument(context.Background(), []byte(doc), "Broken"); err == nil {
		t.Fatal("expected error for unknown group value")
	}
}
