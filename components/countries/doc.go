// Package countries is a small, extraction-friendly option source for
// country dropdown fields. It ships a continent-grouped dataset, helpers
// that turn it into field option groups, and a net/http handler that serves
// filtered options as JSON for typeahead-style clients.
package countries
