package render

import (
	"context"

	"github.com/profileui/ufield/pkg/model"
)

// Renderer converts a field view model into a byte representation (HTML,
// terminal output, etc.). Implementations must be pure with respect to the
// field: same inputs, byte-identical output.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, field model.Field, options RenderOptions) ([]byte, error)
}
