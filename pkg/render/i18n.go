package render

import (
	"errors"
	"strings"

	"github.com/profileui/ufield/pkg/model"
)

// ErrMissingTranslator reports that localized copy was requested without a
// translator configured.
var ErrMissingTranslator = errors.New("render: translator not configured")

// Translator resolves a message key for a locale. Implementations decide how
// params interpolate into the resolved message.
type Translator interface {
	Translate(locale, key string, params ...any) (string, error)
}

// TranslatorFunc adapts a plain function to the Translator interface.
type TranslatorFunc func(locale, key string, params ...any) (string, error)

// Translate implements Translator.
func (f TranslatorFunc) Translate(locale, key string, params ...any) (string, error) {
	return f(locale, key, params...)
}

// MissingTranslationHandler decides the string rendered when a key cannot be
// translated. fallback carries the built-in copy for the key, which may be
// empty.
type MissingTranslationHandler func(locale, key, fallback string, err error) string

func missingTranslationDefault(_ string, key, fallback string, _ error) string {
	if strings.TrimSpace(fallback) != "" {
		return fallback
	}
	return key
}

// Localize resolves a message key through the configured translator, falling
// back to the supplied built-in copy when the translator is absent, errors,
// or returns an empty message.
func (o RenderOptions) Localize(key, fallback string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return fallback
	}

	onMissing := o.OnMissing
	if onMissing == nil {
		onMissing = missingTranslationDefault
	}

	if o.Translator == nil {
		return onMissing(o.Locale, key, fallback, ErrMissingTranslator)
	}

	msg, err := o.Translator.Translate(o.Locale, key)
	if err != nil || strings.TrimSpace(msg) == "" {
		return onMissing(o.Locale, key, fallback, err)
	}
	return msg
}

// Metadata hints LocalizeField resolves into their translated values.
const (
	titleKeyHint             = "titleKey"
	screenReaderTitleKeyHint = "screenReaderTitleKey"
	messageKeyHint           = "messageKey"
)

// LocalizeField mutates the supplied field in place, translating any *Key
// metadata hints into localized strings. Best-effort: missing translations
// keep the field's existing copy.
func LocalizeField(field *model.Field, opts RenderOptions) {
	if field == nil || len(field.Metadata) == 0 {
		return
	}

	if key := strings.TrimSpace(field.Metadata[titleKeyHint]); key != "" {
		field.Title = opts.Localize(key, field.Title)
	}
	if key := strings.TrimSpace(field.Metadata[screenReaderTitleKeyHint]); key != "" {
		field.ScreenReaderTitle = opts.Localize(key, field.ScreenReaderTitle)
	}
	if key := strings.TrimSpace(field.Metadata[messageKeyHint]); key != "" {
		field.Message = opts.Localize(key, field.Message)
	}
}
