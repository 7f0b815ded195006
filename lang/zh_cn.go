package lang

import "fmt"

type ZhCn struct {
}

func (z *ZhCn) Required(field string) string {
	return fmt.Sprintf("%v 为必填项", field)
}

func (z *ZhCn) Type(field string, typ string) string {
	return fmt.Sprintf("%v 的值必须是 %v 类型", field, typ)
}
