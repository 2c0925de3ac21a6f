// Package openapi derives dropdown option groups from OpenAPI 3 component
// schemas so hosts can reuse API enum definitions as select content.
package openapi

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/profileui/ufield/pkg/model"
)

// Vendor extensions recognised on enum schemas.
const (
	// enumLabelsExtension maps enum values to display labels:
	//   x-enum-labels: {US: United States, FR: France}
	enumLabelsExtension = "x-enum-labels"
	// optionGroupsExtension partitions enum values into titled groups:
	//   x-option-groups:
	//     - title: Americas
	//       values: [US, BR]
	optionGroupsExtension = "x-option-groups"
)

// OptionsFromDocument loads an OpenAPI document and maps the named component
// schema's enum into ordered option groups. Values not claimed by an
// x-option-groups entry render first, untitled, in enum order.
func OptionsFromDocument(ctx context.Context, data []byte, schemaName string) ([]model.OptionGroup, error) {
	if len(data) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}
	schemaName = strings.TrimSpace(schemaName)
	if schemaName == "" {
		return nil, errors.New("openapi: schema name is required")
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}

	if doc.Components == nil {
		return nil, fmt.Errorf("openapi: document has no component schemas")
	}
	ref, ok := doc.Components.Schemas[schemaName]
	if !ok || ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("openapi: schema %q not found", schemaName)
	}

	return OptionsFromSchema(ref.Value)
}

// OptionsFromSchema maps an enum schema into option groups, honouring the
// x-enum-labels and x-option-groups extensions.
func OptionsFromSchema(schema *openapi3.Schema) ([]model.OptionGroup, error) {
	if schema == nil {
		return nil, errors.New("openapi: schema is nil")
	}
	if len(schema.Enum) == 0 {
		return nil, errors.New("openapi: schema declares no enum values")
	}

	labels := enumLabels(schema.Extensions)
	values := make([]string, 0, len(schema.Enum))
	for _, raw := range schema.Enum {
		values = append(values, enumValueString(raw))
	}

	groups, err := optionGroups(schema.Extensions)
	if err != nil {
		return nil, err
	}
	if len(groups) == 0 {
		return []model.OptionGroup{{Options: buildOptions(values, labels)}}, nil
	}

	claimed := make(map[string]struct{})
	for _, group := range groups {
		for _, value := range group.values {
			claimed[value] = struct{}{}
		}
	}

	var out []model.OptionGroup
	var unclaimed []string
	for _, value := range values {
		if _, ok := claimed[value]; !ok {
			unclaimed = append(unclaimed, value)
		}
	}
	if len(unclaimed) > 0 {
		out = append(out, model.OptionGroup{Options: buildOptions(unclaimed, labels)})
	}

	valid := make(map[string]struct{}, len(values))
	for _, value := range values {
		valid[value] = struct{}{}
	}
	for _, group := range groups {
		kept := make([]string, 0, len(group.values))
		for _, value := range group.values {
			if _, ok := valid[value]; !ok {
				return nil, fmt.Errorf("openapi: option group %q references unknown enum value %q", group.title, value)
			}
			kept = append(kept, value)
		}
		out = append(out, model.OptionGroup{
			Title:   group.title,
			Options: buildOptions(kept, labels),
		})
	}
	return out, nil
}

func buildOptions(values []string, labels map[string]string) []model.SelectOption {
	out := make([]model.SelectOption, 0, len(values))
	for _, value := range values {
		label := labels[value]
		if label == "" {
			label = value
		}
		out = append(out, model.SelectOption{Value: value, Label: label})
	}
	return out
}

func enumLabels(ext map[string]any) map[string]string {
	out := make(map[string]string)
	raw, ok := ext[enumLabelsExtension]
	if !ok {
		return out
	}
	entries, ok := raw.(map[string]any)
	if !ok {
		return out
	}
	for value, label := range entries {
		if str, ok := label.(string); ok {
			out[value] = str
		}
	}
	return out
}

type rawGroup struct {
	title  string
	values []string
}

func optionGroups(ext map[string]any) ([]rawGroup, error) {
	raw, ok := ext[optionGroupsExtension]
	if !ok {
		return nil, nil
	}
	entries, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("openapi: %s must be a sequence", optionGroupsExtension)
	}

	out := make([]rawGroup, 0, len(entries))
	for i, entry := range entries {
		fields, ok := entry.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("openapi: %s entry %d must be a mapping", optionGroupsExtension, i)
		}
		group := rawGroup{}
		if title, ok := fields["title"].(string); ok {
			group.title = strings.TrimSpace(title)
		}
		if group.title == "" {
			return nil, fmt.Errorf("openapi: %s entry %d is missing a title", optionGroupsExtension, i)
		}
		rawValues, ok := fields["values"].([]any)
		if !ok {
			return nil, fmt.Errorf("openapi: %s entry %q is missing values", optionGroupsExtension, group.title)
		}
		for _, value := range rawValues {
			group.values = append(group.values, enumValueString(value))
		}
		out = append(out, group)
	}
	return out, nil
}

func enumValueString(raw any) string {
	switch v := raw.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}
