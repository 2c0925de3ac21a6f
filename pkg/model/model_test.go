package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEditableNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   Editable
		want Editable
	}{
		{"always", EditableAlways, EditableAlways},
		{"toggle", EditableToggle, EditableToggle},
		{"never", EditableNever, EditableNever},
		{"padded never", Editable("  never "), EditableNever},
		{"empty falls back", Editable(""), EditableToggle},
		{"unknown falls back", Editable("sometimes"), EditableToggle},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.Normalize(); got != tc.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestFlattenedOptionsPreservesOrder(t *testing.T) {
	field := Field{
		ID: "country",
		Groups: []OptionGroup{
			{Options: []SelectOption{{Value: "US", Label: "United States"}}},
			{Title: "Europe", Options: []SelectOption{
				{Value: "FR", Label: "France"},
				{Value: "DE", Label: "Germany"},
			}},
		},
	}

	want := []SelectOption{
		{Value: "US", Label: "United States"},
		{Value: "FR", Label: "France"},
		{Value: "DE", Label: "Germany"},
	}
	if diff := cmp.Diff(want, field.FlattenedOptions()); diff != "" {
		t.Fatalf("flattened options mismatch (-want +got):\n%s", diff)
	}
	if got := field.OptionCount(); got != 3 {
		t.Fatalf("OptionCount() = %d, want 3", got)
	}
}

func TestOptionLabel(t *testing.T) {
	field := Field{Groups: []OptionGroup{
		{Options: []SelectOption{{Value: "FR", Label: "France"}}},
	}}

	label, ok := field.OptionLabel("FR")
	if !ok || label != "France" {
		t.Fatalf("OptionLabel(FR) = %q, %v", label, ok)
	}
	if _, ok := field.OptionLabel("XX"); ok {
		t.Fatal("expected miss for unknown value")
	}
}

func TestValidate(t *testing.T) {
	valid := Field{ID: "42", Groups: []OptionGroup{
		{Options: []SelectOption{{Value: "a"}, {Value: "b"}}},
	}}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := (Field{}).Validate(); err == nil {
		t.Fatal("expected error for blank id")
	}

	duped := Field{ID: "42", Groups: []OptionGroup{
		{Options: []SelectOption{{Value: "a"}}},
		{Title: "More", Options: []SelectOption{{Value: "a"}}},
	}}
	if err := duped.Validate(); err == nil {
		t.Fatal("expected error for duplicate option value")
	}
}

func TestAccessibleName(t *testing.T) {
	field := Field{Title: "Country", ScreenReaderTitle: "Country of residence"}
	if got := field.AccessibleName(); got != "Country of residence" {
		t.Fatalf("AccessibleName() = %q", got)
	}
	field.ScreenReaderTitle = ""
	if got := field.AccessibleName(); got != "Country" {
		t.Fatalf("AccessibleName() fallback = %q", got)
	}
}
