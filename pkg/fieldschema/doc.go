// Package fieldschema loads dropdown field definitions from YAML or JSON
// documents so hosts can declare profile fields as data instead of code. The
// loader walks a filesystem, merges every document it finds, and returns an
// immutable store keyed by field id.
package fieldschema
