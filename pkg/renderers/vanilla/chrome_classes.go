package vanilla

import (
	"strings"

	"github.com/profileui/ufield/pkg/render"
)

// ChromeClass is a typed identifier for semantic chrome CSS classes.
type ChromeClass string

const (
	ClassField        ChromeClass = "u-field"
	ClassFieldSelect  ChromeClass = "u-field-select"
	ClassTitle        ChromeClass = "u-field-title"
	ClassIcon         ChromeClass = "u-field-icon"
	ClassControl      ChromeClass = "u-field-control"
	ClassValue        ChromeClass = "u-field-value"
	ClassCaret        ChromeClass = "u-field-caret"
	ClassDisplay      ChromeClass = "u-field-display"
	ClassMessage      ChromeClass = "u-field-message"
	ClassHelpMessage  ChromeClass = "u-field-help-message"
	ClassScreenReader ChromeClass = "sr-only"
)

// chromeClass resolves the CSS class for a chrome slot, honouring theme token
// overrides of the form "chrome.<slot>".
func chromeClass(opts render.RenderOptions, slot ChromeClass) string {
	if opts.Theme != nil {
		if override := strings.TrimSpace(opts.Theme.Tokens["chrome."+string(slot)]); override != "" {
			return override
		}
	}
	return string(slot)
}
