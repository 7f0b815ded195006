package lang

import "fmt"

type EN struct {
}

func (e *EN) Required(field string) string {
	return fmt.Sprintf("The %v is mandatory", field)
}

func (e *EN) Type(field string, typ string) string {
	return fmt.Sprintf("The value of %v must be of type %v", field, typ)
}
