package tui

// OutputFormat selects how the chosen option serialises.
type OutputFormat string

const (
	// OutputFormatJSON emits {"id","value","label"} for the selection.
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatPlain emits the raw option value followed by a newline.
	OutputFormatPlain OutputFormat = "plain"
)

// Option configures the TUI renderer.
type Option func(*Renderer)

// WithDriver swaps the prompt driver, primarily for tests.
func WithDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithOutputFormat selects the serialization applied to the chosen option.
func WithOutputFormat(format OutputFormat) Option {
	return func(r *Renderer) {
		switch format {
		case OutputFormatJSON, OutputFormatPlain:
			r.outputFormat = format
		}
	}
}

// WithPageSize caps how many options a prompt shows at once.
func WithPageSize(size int) Option {
	return func(r *Renderer) {
		if size > 0 {
			r.pageSize = size
		}
	}
}

// WithBlankLabel overrides the label presented for the leading blank option.
func WithBlankLabel(label string) Option {
	return func(r *Renderer) {
		if label != "" {
			r.blankLabel = label
		}
	}
}
