package models

// Metafield namespaces and types understood by the profile store.
const (
	NamespaceCustom  = "custom"
	NamespacePersona = "persona"

	TypeSingleLineText     = "single_line_text_field"
	TypeListSingleLineText = "list.single_line_text_field"
)

// MetafieldRecord is one typed, namespaced key/value upsert for a customer
// profile. Records are request-scoped; the profile store is the system of
// record.
type MetafieldRecord struct {
	Namespace string `json:"namespace"`
	Key       string `json:"key"`
	Type      string `json:"type"`
	Value     string `json:"value"`
}
