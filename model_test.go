package declapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPropertyDefaults(t *testing.T) {
	p := newProperty(Options{Type: "string"})
	assert.Equal(t, []string{"string"}, p.Type)
	assert.True(t, p.Required)
	assert.False(t, p.Nullable)
	assert.Equal(t, "", p.Description)
	assert.Equal(t, 0, p.Properties.Len())

	p = newProperty(Options{Type: "string", Required: Bool(false)})
	assert.False(t, p.Required)
}

func TestShapeKind(t *testing.T) {
	assert.Equal(t, kindScalar, newProperty(Options{Type: "string"}).kind)
	assert.Equal(t, kindScalar, newProperty(Options{Type: "date-time"}).kind)
	assert.Equal(t, kindObject, newProperty(Options{Type: "object"}).kind)
	assert.Equal(t, kindArray, newProperty(Options{Type: "array", Of: "string"}).kind)
	assert.Equal(t, kindUnion, newProperty(Options{Type: []string{"string", "number"}}).kind)
	// as always wins, an object with an element type is a reference too
	assert.Equal(t, kindReference, newProperty(Options{Type: "string", As: "User"}).kind)
	assert.Equal(t, kindReference, newProperty(Options{Type: "array", As: "User"}).kind)
	assert.Equal(t, kindReference, newProperty(Options{Type: "object", Of: "User"}).kind)
}

func TestPropertyNesting(t *testing.T) {
	p := newProperty(Options{Type: "object"})
	address := p.AddProperty("address", Options{Type: "object"})
	address.AddProperty("city", Options{Type: "string"})
	address.AddProperty("zip", Options{Type: "string", Required: Bool(false)})

	assert.Equal(t, []string{"address"}, p.Properties.Keys())
	child := p.Properties.Value("address")
	assert.Equal(t, []string{"city", "zip"}, child.Properties.Keys())

	// re-declaring a name replaces the node but keeps its position
	p.AddProperty("address", Options{Type: "string"})
	assert.Equal(t, []string{"address"}, p.Properties.Keys())
	assert.Equal(t, []string{"string"}, p.Properties.Value("address").Type)
}

func TestRegistryAppendOnly(t *testing.T) {
	reg := NewRegistry()
	var configured *Component
	returned := reg.DefineComponent("User", Options{Type: "object"}, func(c *Component) {
		configured = c
		c.AddProperty("name", Options{Type: "string"})
	})
	require.NotNil(t, returned)
	assert.Same(t, configured, returned)
	assert.Len(t, reg.Components(), 1)
	assert.Equal(t, returned, reg.Component("User"))
	assert.Nil(t, reg.Component("Missing"))

	reg.DefineComponent("User", Options{Type: "string"})
	assert.Len(t, reg.Components(), 2)
	// lookup resolves to the last declaration
	assert.Equal(t, []string{"string"}, reg.Component("User").Type)
}

func TestEndpointMutators(t *testing.T) {
	reg := NewRegistry()
	endpoint := reg.DefineEndpoint(func(e *Endpoint) {
		e.SetPath("/users/{id}")
		e.AddOperation("get", "get", "put")
		e.AddParameter("id", Options{Type: "number", In: InPath})
		e.SetRequestBody(Options{Type: "object", As: "User"})
		e.AddResponse(StatusOK, Options{Type: "object", Of: "User"})
		e.AddResponse(StatusNotFound, Options{Type: "object", Description: "missing"})
	})
	assert.Len(t, reg.Endpoints(), 1)
	assert.Equal(t, "/users/{id}", endpoint.Path())
	assert.Equal(t, []string{"GET", "PUT"}, endpoint.Operations())
	assert.Equal(t, 1, endpoint.Parameters().Len())
	assert.NotNil(t, endpoint.RequestBody())
	assert.Equal(t, "missing", endpoint.Response(StatusNotFound).Description)
	assert.Nil(t, endpoint.Response(StatusForbidden))

	// re-declaring a status replaces the response in place
	endpoint.AddResponse(StatusNotFound, Options{Type: "object", Description: "gone"})
	assert.Equal(t, "gone", endpoint.Response(StatusNotFound).Description)
	assert.Len(t, endpoint.responses, 2)
}

func TestParameterDefaultsToQuery(t *testing.T) {
	endpoint := &Endpoint{}
	param := endpoint.AddParameter("page", Options{Type: "number"})
	assert.Equal(t, InQuery, param.In)
	assert.Equal(t, "query", param.In.Tag())
}
