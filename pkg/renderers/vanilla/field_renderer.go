package vanilla

import (
	"html"
	"strings"

	"github.com/profileui/ufield/pkg/model"
	"github.com/profileui/ufield/pkg/render"
)

// clickToEditKey routes the display-mode hint through the configured
// translator; the English copy below is the fallback.
const (
	clickToEditKey      = "field.clickToEdit"
	clickToEditFallback = "Click to edit"
)

// buildFieldMarkup renders the dropdown field for the supplied view model.
// Output is deterministic: same field and options, byte-identical markup.
func buildFieldMarkup(field model.Field, opts render.RenderOptions) string {
	mode := field.Editable.Normalize()

	var builder strings.Builder
	builder.Grow(512 + field.OptionCount()*64)

	builder.WriteString(`<div class="`)
	builder.WriteString(html.EscapeString(chromeClass(opts, ClassField)))
	builder.WriteByte(' ')
	builder.WriteString(html.EscapeString(chromeClass(opts, ClassFieldSelect)))
	builder.WriteString(`" data-editable="`)
	builder.WriteString(html.EscapeString(string(mode)))
	builder.WriteString("\">\n")

	if mode != model.EditableNever {
		writeLabel(&builder, field, opts)
	}
	writeIcon(&builder, field, opts)

	if mode == model.EditableNever {
		writeReadOnlyValue(&builder, field, opts)
	} else {
		writeSelect(&builder, field, opts)
		writeDisplay(&builder, field, opts)
	}

	writeMessageRegion(&builder, field, opts)

	builder.WriteString("</div>\n")
	return builder.String()
}

func writeLabel(builder *strings.Builder, field model.Field, opts render.RenderOptions) {
	title := strings.TrimSpace(field.Title)
	visible := field.TitleVisible && title != ""

	builder.WriteString(`    <label class="`)
	builder.WriteString(html.EscapeString(chromeClass(opts, ClassTitle)))
	if !visible {
		builder.WriteByte(' ')
		builder.WriteString(html.EscapeString(chromeClass(opts, ClassScreenReader)))
	}
	builder.WriteString(`" for="`)
	builder.WriteString(html.EscapeString(selectID(field.ID)))
	builder.WriteString(`">`)
	if visible {
		builder.WriteString(html.EscapeString(title))
	} else {
		builder.WriteString(html.EscapeString(field.ScreenReaderTitle))
	}
	builder.WriteString("</label>\n")
}

func writeIcon(builder *strings.Builder, field model.Field, opts render.RenderOptions) {
	if markup := sanitizeIconMarkup(field.IconMarkup); markup != "" {
		builder.WriteString(`    <span class="`)
		builder.WriteString(html.EscapeString(chromeClass(opts, ClassIcon)))
		builder.WriteString(`" aria-hidden="true">`)
		builder.WriteString(markup)
		builder.WriteString("</span>\n")
		return
	}

	icon := strings.TrimSpace(field.Icon)
	if icon == "" {
		return
	}
	builder.WriteString(`    <span class="`)
	builder.WriteString(html.EscapeString(chromeClass(opts, ClassIcon)))
	builder.WriteByte(' ')
	builder.WriteString(html.EscapeString(icon))
	builder.WriteString(`" aria-hidden="true"></span>` + "\n")
}

func writeReadOnlyValue(builder *strings.Builder, field model.Field, opts render.RenderOptions) {
	builder.WriteString(`    <span class="`)
	builder.WriteString(html.EscapeString(chromeClass(opts, ClassScreenReader)))
	builder.WriteString(`">`)
	builder.WriteString(html.EscapeString(field.ScreenReaderTitle))
	builder.WriteString("</span>\n")

	builder.WriteString(`    <span id="`)
	builder.WriteString(html.EscapeString(valueID(field.ID)))
	builder.WriteString(`" class="`)
	builder.WriteString(html.EscapeString(chromeClass(opts, ClassValue)))
	builder.WriteString(`">`)
	builder.WriteString(html.EscapeString(displayLabel(field, opts)))
	builder.WriteString("</span>\n")
}

func writeSelect(builder *strings.Builder, field model.Field, opts render.RenderOptions) {
	builder.WriteString(`    <select id="`)
	builder.WriteString(html.EscapeString(selectID(field.ID)))
	builder.WriteString(`" class="`)
	builder.WriteString(html.EscapeString(chromeClass(opts, ClassControl)))
	builder.WriteString(`" aria-describedby="`)
	builder.WriteString(html.EscapeString(messageID(field.ID)))
	builder.WriteByte(' ')
	builder.WriteString(html.EscapeString(helpMessageID(field.ID)))
	builder.WriteString("\">\n")

	if field.ShowBlankOption {
		builder.WriteString(`        <option value=""></option>` + "\n")
	}

	for _, group := range field.Groups {
		if group.Grouped() {
			builder.WriteString(`        <optgroup label="`)
			builder.WriteString(html.EscapeString(group.Title))
			builder.WriteString("\">\n")
			for _, option := range group.Options {
				writeOption(builder, option, opts.Value, "            ")
			}
			builder.WriteString("        </optgroup>\n")
			continue
		}
		for _, option := range group.Options {
			writeOption(builder, option, opts.Value, "        ")
		}
	}

	builder.WriteString("    </select>\n")
	builder.WriteString(`    <span class="`)
	builder.WriteString(html.EscapeString(chromeClass(opts, ClassCaret)))
	builder.WriteString(`" aria-hidden="true"></span>` + "\n")
}

func writeOption(builder *strings.Builder, option model.SelectOption, selected, indent string) {
	builder.WriteString(indent)
	builder.WriteString(`<option value="`)
	builder.WriteString(html.EscapeString(option.Value))
	builder.WriteByte('"')
	if selected != "" && option.Value == selected {
		builder.WriteString(` selected`)
	}
	builder.WriteByte('>')
	builder.WriteString(html.EscapeString(option.Label))
	builder.WriteString("</option>\n")
}

func writeDisplay(builder *strings.Builder, field model.Field, opts render.RenderOptions) {
	builder.WriteString(`    <button type="button" class="`)
	builder.WriteString(html.EscapeString(chromeClass(opts, ClassDisplay)))
	builder.WriteString("\">\n")

	builder.WriteString(`        <span class="`)
	builder.WriteString(html.EscapeString(chromeClass(opts, ClassScreenReader)))
	builder.WriteString(`">`)
	builder.WriteString(html.EscapeString(field.ScreenReaderTitle))
	builder.WriteString("</span>\n")

	builder.WriteString(`        <span class="`)
	builder.WriteString(html.EscapeString(chromeClass(opts, ClassValue)))
	builder.WriteString(`">`)
	builder.WriteString(html.EscapeString(displayLabel(field, opts)))
	builder.WriteString("</span>\n")

	builder.WriteString(`        <span class="`)
	builder.WriteString(html.EscapeString(chromeClass(opts, ClassScreenReader)))
	builder.WriteString(`">`)
	builder.WriteString(html.EscapeString(opts.Localize(clickToEditKey, clickToEditFallback)))
	builder.WriteString("</span>\n")

	builder.WriteString("    </button>\n")
}

func writeMessageRegion(builder *strings.Builder, field model.Field, opts render.RenderOptions) {
	builder.WriteString(`    <span id="`)
	builder.WriteString(html.EscapeString(messageID(field.ID)))
	builder.WriteString(`" class="`)
	builder.WriteString(html.EscapeString(chromeClass(opts, ClassMessage)))
	builder.WriteString(`" aria-live="polite"></span>` + "\n")

	builder.WriteString(`    <span id="`)
	builder.WriteString(html.EscapeString(helpMessageID(field.ID)))
	builder.WriteString(`" class="`)
	builder.WriteString(html.EscapeString(chromeClass(opts, ClassHelpMessage)))
	builder.WriteString(`">`)
	builder.WriteString(html.EscapeString(field.Message))
	builder.WriteString("</span>\n")
}

// displayLabel resolves the pre-seeded display text for the read-only value
// spans. An empty result leaves population to external behavior.
func displayLabel(field model.Field, opts render.RenderOptions) string {
	if opts.Value == "" {
		return ""
	}
	if label, ok := field.OptionLabel(opts.Value); ok {
		return label
	}
	return ""
}
