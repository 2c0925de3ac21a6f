package vanilla

import "strings"

// Deterministic id prefixes external behavior binds against. Changing these
// breaks the contract with the host page's field controllers.
const (
	selectIDPrefix      = "u-field-select-"
	valueIDPrefix       = "u-field-value-"
	messageIDPrefix     = "u-field-message-"
	helpMessageIDPrefix = "u-field-help-message-"
)

func selectID(id string) string {
	return selectIDPrefix + strings.TrimSpace(id)
}

func valueID(id string) string {
	return valueIDPrefix + strings.TrimSpace(id)
}

func messageID(id string) string {
	return messageIDPrefix + strings.TrimSpace(id)
}

func helpMessageID(id string) string {
	return helpMessageIDPrefix + strings.TrimSpace(id)
}
