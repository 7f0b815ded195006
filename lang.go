package declapi

// Lang builds the per-field messages carried by a ValidationError.
type Lang interface {
	Required(field string) string
	Type(field string, typ string) string
}
