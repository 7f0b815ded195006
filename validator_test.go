package declapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/declapi/declapi/lang"
)

func TestValidatorCoercion(t *testing.T) {
	endpoint := &Endpoint{}
	endpoint.AddParameter("name", Options{Type: "string"})
	endpoint.AddParameter("age", Options{Type: "number", Required: Bool(false)})

	validator := endpoint.Validator()
	require.NotNil(t, validator)

	out, err := validator.Validate(map[string]any{"name": "Al", "age": "30"})
	require.NoError(t, err)
	assert.Equal(t, "Al", out["name"])
	assert.Equal(t, int64(30), out["age"])

	out, err = validator.Validate(map[string]any{"name": "Al"})
	require.NoError(t, err)
	assert.Equal(t, "Al", out["name"])
	_, ok := out["age"]
	assert.False(t, ok)

	_, err = validator.Validate(map[string]any{"age": "30"})
	require.Error(t, err)
	var failure *ValidationError
	require.ErrorAs(t, err, &failure)
	assert.Contains(t, failure.Fields, "name")
	assert.NotContains(t, failure.Fields, "age")
}

func TestValidatorNumber(t *testing.T) {
	endpoint := &Endpoint{}
	endpoint.AddParameter("count", Options{Type: "number"})
	validator := endpoint.Validator()

	for input, want := range map[any]int64{
		"7":      7,
		" 12 ":   12,
		"30.000": 30,
		3:        3,
		int64(9): 9,
		4.0:      4,
	} {
		out, err := validator.Validate(map[string]any{"count": input})
		require.NoError(t, err, "input %v", input)
		assert.Equal(t, want, out["count"])
	}

	for _, input := range []any{"30.5", "abc", true, []any{1}} {
		_, err := validator.Validate(map[string]any{"count": input})
		assert.Error(t, err, "input %v", input)
	}
}

func TestValidatorBoolean(t *testing.T) {
	endpoint := &Endpoint{}
	endpoint.AddParameter("active", Options{Type: "boolean"})
	validator := endpoint.Validator()

	out, err := validator.Validate(map[string]any{"active": true})
	require.NoError(t, err)
	assert.Equal(t, true, out["active"])

	out, err = validator.Validate(map[string]any{"active": "true"})
	require.NoError(t, err)
	assert.Equal(t, true, out["active"])

	_, err = validator.Validate(map[string]any{"active": "maybe"})
	assert.Error(t, err)
}

func TestValidatorNestedObject(t *testing.T) {
	endpoint := &Endpoint{}
	endpoint.SetRequestBody(Options{Type: "object"}, func(b *RequestBody) {
		b.AddProperty("address", Options{Type: "object"}, func(p *Property) {
			p.AddProperty("city", Options{Type: "string"})
			p.AddProperty("zip", Options{Type: "number", Required: Bool(false)})
		})
	})
	validator := endpoint.Validator()
	require.NotNil(t, validator)

	out, err := validator.Validate(map[string]any{
		"address": map[string]any{"city": "Berlin", "zip": "10115"},
	})
	require.NoError(t, err)
	address, ok := out["address"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Berlin", address["city"])
	assert.Equal(t, int64(10115), address["zip"])

	_, err = validator.Validate(map[string]any{"address": map[string]any{}})
	var failure *ValidationError
	require.ErrorAs(t, err, &failure)
	assert.Contains(t, failure.Fields, "address.city")

	_, err = validator.Validate(map[string]any{"address": "not an object"})
	require.ErrorAs(t, err, &failure)
	assert.Contains(t, failure.Fields, "address")
}

func TestValidatorArrayOpaque(t *testing.T) {
	endpoint := &Endpoint{}
	endpoint.AddParameter("ids", Options{Type: "array", Of: "number"})
	validator := endpoint.Validator()

	// array contents are accepted as opaque value lists
	out, err := validator.Validate(map[string]any{"ids": []any{"1", 2, true}})
	require.NoError(t, err)
	assert.Equal(t, []any{"1", 2, true}, out["ids"])

	_, err = validator.Validate(map[string]any{"ids": "1,2"})
	assert.Error(t, err)
}

func TestValidatorUnknownTypeDefaultsToString(t *testing.T) {
	endpoint := &Endpoint{}
	endpoint.AddParameter("since", Options{Type: "date-time", Required: Bool(false)})
	endpoint.AddParameter("value", Options{Type: []string{"string", "number"}})
	validator := endpoint.Validator()

	out, err := validator.Validate(map[string]any{"since": 5, "value": "x"})
	require.NoError(t, err)
	assert.Equal(t, "5", out["since"])
	assert.Equal(t, "x", out["value"])
}

func TestValidatorBodyAndParametersShareNamespace(t *testing.T) {
	endpoint := &Endpoint{}
	endpoint.AddParameter("id", Options{Type: "number", In: InPath})
	endpoint.SetRequestBody(Options{Type: "object"}, func(b *RequestBody) {
		b.AddProperty("name", Options{Type: "string"})
	})
	validator := endpoint.Validator()

	out, err := validator.Validate(map[string]any{"id": "4", "name": "Al", "extra": "dropped"})
	require.NoError(t, err)
	assert.Equal(t, int64(4), out["id"])
	assert.Equal(t, "Al", out["name"])
	_, ok := out["extra"]
	assert.False(t, ok)
}

func TestValidatorNothingToValidate(t *testing.T) {
	endpoint := &Endpoint{}
	assert.Nil(t, endpoint.Validator())

	endpoint.SetRequestBody(Options{Type: "object"})
	assert.Nil(t, endpoint.Validator())

	assert.Nil(t, CompileValidator(&Parameters{}, nil))
}

func TestValidatorLang(t *testing.T) {
	endpoint := &Endpoint{}
	endpoint.AddParameter("name", Options{Type: "string"})
	validator := endpoint.Validator(&lang.ZhCn{})

	_, err := validator.Validate(map[string]any{})
	var failure *ValidationError
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, "name 为必填项", failure.Fields["name"])
}

func TestValidationErrorMessage(t *testing.T) {
	failure := &ValidationError{Fields: map[string]string{
		"b": "second",
		"a": "first",
	}}
	assert.Equal(t, "first; second", failure.Error())
}
