package render

import (
	theme "github.com/goliatone/go-theme"
)

// RenderOptions describe per-request data renderers can use to customise
// their output without mutating the field view model.
type RenderOptions struct {
	// Locale is forwarded to the translator for localized copy such as the
	// click-to-edit hint.
	Locale string

	// Value pre-selects the matching option and seeds the read-only display
	// span. When empty, display spans render empty and external behavior
	// populates them after render.
	Value string

	// Translator resolves message keys. A nil translator falls back to the
	// built-in English strings via OnMissing.
	Translator Translator

	// OnMissing controls the string emitted when a translation is missing.
	// Defaults to the fallback text (or the key when no fallback exists).
	OnMissing MissingTranslationHandler

	// Theme optionally overrides chrome classes and template partials. A nil
	// theme keeps the built-in markup.
	Theme *theme.RendererConfig
}
