package countries

import (
	"net/http"

	"github.com/profileui/ufield/pkg/model"
)

// Component bundles the country dataset, its option-group view, and the HTTP
// handler behind a single value so hosts can wire everything from one place.
type Component struct {
	opts Options
}

// New builds a Component with defaults plus any overrides.
func New(fns ...OptionFn) *Component {
	return &Component{opts: NewOptions(fns...)}
}

// Options returns a copy of the resolved component options.
func (c *Component) Options() Options {
	return NewOptions(func(o *Options) { *o = c.opts })
}

// Handler returns the JSON options handler for this component.
func (c *Component) Handler() http.Handler {
	return HandlerWithOptions(c.opts)
}

// RegisterRoutes mounts the component handler under basePath on mux and
// returns the registered pattern.
func (c *Component) RegisterRoutes(mux Mux, basePath string) (string, error) {
	return RegisterRoutesWithOptions(mux, basePath, c.opts)
}

// Groups returns the component's countries arranged by continent.
func (c *Component) Groups() []model.OptionGroup {
	return Groups(c.countries())
}

func (c *Component) countries() []Option {
	if c.opts.Countries != nil {
		return c.opts.Countries
	}
	return defaultCountries
}
