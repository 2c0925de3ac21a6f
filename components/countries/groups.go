package countries

import (
	"strings"

	"github.com/profileui/ufield/pkg/model"
)

// Groups arranges the supplied countries into continent option groups
// following the canonical continent order. Entries with an unknown continent
// land in a trailing untitled group. A nil list uses the built-in dataset.
func Groups(list []Option) []model.OptionGroup {
	if list == nil {
		list = defaultCountries
	}

	byContinent := make(map[string][]model.SelectOption, len(continentOrder))
	var stray []model.SelectOption
	known := make(map[string]struct{}, len(continentOrder))
	for _, continent := range continentOrder {
		known[continent] = struct{}{}
	}

	for _, country := range list {
		option := model.SelectOption{Value: country.Value, Label: country.Label}
		if _, ok := known[country.Continent]; ok {
			byContinent[country.Continent] = append(byContinent[country.Continent], option)
		} else {
			stray = append(stray, option)
		}
	}

	var out []model.OptionGroup
	for _, continent := range continentOrder {
		options := byContinent[continent]
		if len(options) == 0 {
			continue
		}
		out = append(out, model.OptionGroup{Title: continent, Options: options})
	}
	if len(stray) > 0 {
		out = append(out, model.OptionGroup{Options: stray})
	}
	return out
}

// NewField builds a ready-to-render country dropdown view model. Callers can
// adjust the returned field before handing it to a renderer.
func NewField(id string) model.Field {
	return model.Field{
		ID:                id,
		Title:             "Country",
		TitleVisible:      true,
		ScreenReaderTitle: "Country",
		Editable:          model.EditableToggle,
		ShowBlankOption:   true,
		Groups:            Groups(nil),
	}
}

// SearchOptions filters the list by a case-insensitive substring match on
// label or value, preserving input order, and truncates to limit per the
// component options. An empty query matches everything.
func SearchOptions(list []Option, query string, limit int, opts Options) []Option {
	query = strings.ToLower(strings.TrimSpace(query))
	limit = clampLimit(limit, opts)

	out := make([]Option, 0, limit)
	for _, country := range list {
		if query != "" &&
			!strings.Contains(strings.ToLower(country.Label), query) &&
			!strings.Contains(strings.ToLower(country.Value), query) {
			continue
		}
		out = append(out, country)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}
