package lang

import "fmt"

type EnUs struct {
}

func (e *EnUs) Required(field string) string {
	return fmt.Sprintf("field %v is required", field)
}

func (e *EnUs) Type(field string, typ string) string {
	return fmt.Sprintf("field %v must be a valid %v", field, typ)
}
