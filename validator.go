package declapi

import (
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/declapi/declapi/lang"
)

// CompileValidator walks an endpoint's parameters and request-body properties
// into one flat runtime validator: each parameter and each top-level body
// property becomes one field in a shared namespace. It returns nil when there
// is nothing to validate. Validation is intentionally shallower than document
// generation: it coerces and guards primitive request inputs, it does not
// re-verify enums, unions or array element shapes.
func CompileValidator(params *Parameters, body *RequestBody, langs ...Lang) *Validator {
	l := Lang(&lang.EN{})
	if len(langs) > 0 && langs[0] != nil {
		l = langs[0]
	}
	v := &Validator{lang: l}
	for _, param := range params.List() {
		v.fields = append(v.fields, newValidField(param.Name, &param.Property))
	}
	if body != nil {
		for _, name := range body.Properties.Keys() {
			v.fields = append(v.fields, newValidField(name, body.Properties.Value(name)))
		}
	}
	if len(v.fields) == 0 {
		return nil
	}
	return v
}

// Validator It is the compiled runtime validator of one endpoint
func (e *Endpoint) Validator(langs ...Lang) *Validator {
	return CompileValidator(&e.parameters, e.requestBody, langs...)
}

// Validator checks a flat mapping of field name to raw value (as arriving from
// query/path/body parsing) against the declared shape, coercing scalar values.
type Validator struct {
	fields []*validField
	lang   Lang
}

type validField struct {
	name     string
	required bool
	typ      string
	children []*validField
}

func newValidField(name string, p *Property) *validField {
	field := &validField{
		name:     name,
		required: p.Required,
	}
	typ := p.typeTag()
	switch {
	case typ == TypeObject && p.Properties.Len() > 0:
		field.typ = TypeObject
		for _, childName := range p.Properties.Keys() {
			field.children = append(field.children, newValidField(childName, p.Properties.Value(childName)))
		}
	case typ == TypeArray:
		field.typ = TypeArray
	case typ == TypeNumber || typ == TypeBoolean:
		field.typ = typ
	default:
		// unknown and union types fall back to string acceptance
		field.typ = TypeString
	}
	return field
}

// Validate returns the coerced mapping on success. Undeclared input keys are
// dropped. On failure the error is a *ValidationError carrying one message per
// offending field, nested fields keyed as "parent.child".
func (v *Validator) Validate(input map[string]any) (map[string]any, error) {
	output := map[string]any{}
	failure := &ValidationError{Fields: map[string]string{}}
	validateFields(v.fields, input, output, "", v.lang, failure)
	if len(failure.Fields) > 0 {
		return nil, failure
	}
	return output, nil
}

func validateFields(fields []*validField, input, output map[string]any, prefix string, l Lang, failure *ValidationError) {
	for _, field := range fields {
		name := prefix + field.name
		value, ok := input[field.name]
		if !ok || value == nil {
			if field.required {
				failure.Fields[name] = l.Required(name)
			}
			continue
		}
		switch field.typ {
		case TypeObject:
			child, ok := value.(map[string]any)
			if !ok {
				failure.Fields[name] = l.Type(name, TypeObject)
				continue
			}
			childOutput := map[string]any{}
			validateFields(field.children, child, childOutput, name+".", l, failure)
			output[field.name] = childOutput
		case TypeArray:
			// element-level validation is not performed, contents stay opaque
			switch reflect.ValueOf(value).Kind() {
			case reflect.Slice, reflect.Array:
				output[field.name] = value
			default:
				failure.Fields[name] = l.Type(name, TypeArray)
			}
		case TypeNumber:
			coerced, ok := coerceNumber(value)
			if !ok {
				failure.Fields[name] = l.Type(name, TypeNumber)
				continue
			}
			output[field.name] = coerced
		case TypeBoolean:
			coerced, ok := coerceBoolean(value)
			if !ok {
				failure.Fields[name] = l.Type(name, TypeBoolean)
				continue
			}
			output[field.name] = coerced
		default:
			coerced, ok := coerceString(value)
			if !ok {
				failure.Fields[name] = l.Type(name, TypeString)
				continue
			}
			if field.required && coerced == "" {
				failure.Fields[name] = l.Required(name)
				continue
			}
			output[field.name] = coerced
		}
	}
}

// coerceNumber accepts integral values in their native Go forms and integral
// string representations. Strings go through decimal so inputs such as "30"
// and "30.000" both coerce, while "30.5" fails.
func coerceNumber(value any) (int64, bool) {
	switch val := value.(type) {
	case int:
		return int64(val), true
	case int8:
		return int64(val), true
	case int16:
		return int64(val), true
	case int32:
		return int64(val), true
	case int64:
		return val, true
	case uint:
		return int64(val), true
	case uint8:
		return int64(val), true
	case uint16:
		return int64(val), true
	case uint32:
		return int64(val), true
	case uint64:
		return int64(val), true
	case float32:
		return coerceNumber(float64(val))
	case float64:
		if val != float64(int64(val)) {
			return 0, false
		}
		return int64(val), true
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(val))
		if err != nil || !d.IsInteger() {
			return 0, false
		}
		return d.IntPart(), true
	}
	return 0, false
}

func coerceBoolean(value any) (bool, bool) {
	switch val := value.(type) {
	case bool:
		return val, true
	case string:
		b, err := strconv.ParseBool(val)
		if err != nil {
			return false, false
		}
		return b, true
	}
	return false, false
}

// coerceString accepts strings as-is and renders the other scalar kinds
// through their string form; composite values are rejected.
func coerceString(value any) (string, bool) {
	switch value.(type) {
	case string, bool, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return toString(value), true
	}
	return "", false
}

// ValidationError carries one message per failing field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	messages := make([]string, 0, len(keys))
	for _, k := range keys {
		messages = append(messages, e.Fields[k])
	}
	return strings.Join(messages, "; ")
}
