// Package template defines renderer-agnostic template interfaces and
// adapters so field renderers can accept theme partials without binding to a
// specific engine.
package template
