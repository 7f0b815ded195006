package declapi

import (
	"fmt"
	"strconv"

	"github.com/declapi/declapi/openapi"
)

// OpenAPI compiles the registered declarations into an OpenAPI 3.0 document.
// It is a pure read of the registry: no node is mutated and the method may be
// called repeatedly, or concurrently once registration has stabilized. The
// only hard failure is an unrecognized response status symbol; every other
// oddity compiles permissively (unknown type tags pass through as strings,
// malformed declarations produce best-effort fragments and a warning).
func (r *Registry) OpenAPI(info ...*openapi.Info) (*openapi.OpenAPI, error) {
	docInfo := &openapi.Info{
		Title:   "DeclAPI",
		Version: "1.0.0",
	}
	if len(info) > 0 && info[0] != nil {
		docInfo = info[0]
	}
	return newOpenAPICompiler(r, docInfo).Compile()
}

func newOpenAPICompiler(reg *Registry, info *openapi.Info) *openAPICompiler {
	return &openAPICompiler{
		reg: reg,
		doc: &openapi.OpenAPI{
			OpenAPI: openapi.Version,
			Info:    info,
		},
	}
}

type openAPICompiler struct {
	reg *Registry
	doc *openapi.OpenAPI
}

func (c *openAPICompiler) Compile() (*openapi.OpenAPI, error) {
	if err := c.compilePaths(); err != nil {
		return nil, err
	}
	c.compileComponents()
	return c.doc, nil
}

func (c *openAPICompiler) compilePaths() error {
	c.doc.Paths = &openapi.Paths{}
	for _, endpoint := range c.reg.endpoints {
		if endpoint.path == "" {
			c.reg.log.Warning("endpoint with operations %v has no path, skipped", endpoint.operations)
			continue
		}
		pathItem := c.doc.Paths.Value(endpoint.path)
		if pathItem == nil {
			pathItem = &openapi.PathItem{}
		}
		for _, method := range endpoint.operations {
			if !isMethod(method) {
				c.reg.log.Warning("endpoint %q declares unknown operation %q, skipped", endpoint.path, method)
				continue
			}
			operation, err := c.compileOperation(endpoint)
			if err != nil {
				return fmt.Errorf("endpoint %q: %w", endpoint.path, err)
			}
			pathItem.Operation(method, operation)
		}
		c.doc.Paths.Set(endpoint.path, pathItem)
	}
	return nil
}

func (c *openAPICompiler) compileOperation(endpoint *Endpoint) (*openapi.Operation, error) {
	operation := &openapi.Operation{}
	for _, param := range endpoint.parameters.List() {
		operation.Parameters = append(operation.Parameters, &openapi.Parameter{
			Name:        param.Name,
			In:          param.In.Tag(),
			Description: param.Description,
			Required:    param.Required,
			Schema:      c.schemaNoDescription(&param.Property),
		})
	}
	if body := endpoint.requestBody; body != nil {
		operation.RequestBody = &openapi.RequestBody{
			Description: body.Description,
			Required:    body.Required,
			Content: map[string]*openapi.MediaType{
				"application/json": {Schema: c.schemaNoDescription(&body.Property)},
			},
		}
	}
	responses := &openapi.Responses{}
	for _, item := range endpoint.responses {
		code, err := item.status.Code()
		if err != nil {
			return nil, err
		}
		responses.Set(strconv.Itoa(code), &openapi.Response{
			Description: item.response.Description,
			Headers:     map[string]*openapi.Header{},
			Content: map[string]*openapi.MediaType{
				"application/json": {Schema: c.schemaNoDescription(&item.response.Property)},
			},
		})
	}
	operation.Responses = responses
	return operation, nil
}

func (c *openAPICompiler) compileComponents() {
	schemas := &openapi.Schemas{}
	for _, component := range c.reg.components {
		schemas.Set(component.Name, c.propertyToSchema(&component.Property))
	}
	c.doc.Components = &openapi.Components{Schemas: schemas}
}

// schemaNoDescription compiles a property with its top-level description
// stripped, the form embedded in parameters, responses and request bodies.
func (c *openAPICompiler) schemaNoDescription(p *Property) *openapi.Schema {
	schema := c.propertyToSchema(p)
	schema.Description = nil
	return schema
}

// propertyToSchema is the per-property compilation rule, applied recursively
// to every schema node in the registry.
func (c *openAPICompiler) propertyToSchema(p *Property) *openapi.Schema {
	switch p.kind {
	case kindReference:
		target := p.As
		if target == "" {
			target = p.Of
		}
		if p.isArray() {
			return &openapi.Schema{
				Type:  TypeArray,
				Items: &openapi.Schema{Ref: refPrefix + target},
			}
		}
		return &openapi.Schema{
			Ref:      refPrefix + target,
			Nullable: p.Nullable,
		}
	case kindArray:
		return c.arrayToSchema(p)
	case kindUnion:
		anyOf := make([]*openapi.Schema, 0, len(p.Type))
		for _, tag := range p.Type {
			anyOf = append(anyOf, &openapi.Schema{Type: normalizeTag(tag)})
		}
		description := p.Description
		return &openapi.Schema{
			AnyOf:       anyOf,
			Description: &description,
			Enum:        p.enumValues(),
			Nullable:    p.Nullable,
		}
	default:
		description := p.Description
		schema := &openapi.Schema{
			Type:        p.typeTag(),
			Description: &description,
			Enum:        p.enumValues(),
			Nullable:    p.Nullable,
		}
		if p.Properties.Len() > 0 {
			schema.Required, schema.Properties = c.propertiesToSchema(p.Properties)
		}
		return schema
	}
}

func (c *openAPICompiler) arrayToSchema(p *Property) *openapi.Schema {
	if p.Of == "" {
		c.reg.log.Warning("array property has no element type, items left blank")
	}
	items := c.itemsSchema(p.Of)
	if p.Nullable {
		items.Nullable = true
	}
	if p.Of == TypeObject && p.Properties.Len() > 0 {
		items.Required, items.Properties = c.propertiesToSchema(p.Properties)
	}
	description := p.Description
	return &openapi.Schema{
		Type:        TypeArray,
		Description: &description,
		Items:       items,
	}
}

// itemsSchema builds the element schema of an array: a $ref when the element
// type names a registered component, an inline type tag otherwise.
func (c *openAPICompiler) itemsSchema(of string) *openapi.Schema {
	if c.reg.Component(of) != nil {
		return &openapi.Schema{Ref: refPrefix + of}
	}
	return &openapi.Schema{Type: of}
}

// propertiesToSchema expands a nested property tree into the required-names
// list and the compiled properties map. The required list is nil when no
// property is required; entries compiling to a blank schema are dropped and a
// resulting empty map comes back as nil so both keys are omitted from output.
func (c *openAPICompiler) propertiesToSchema(props *Properties) ([]string, *openapi.Schemas) {
	var required []string
	schemas := &openapi.Schemas{}
	for _, name := range props.Keys() {
		child := props.Value(name)
		if child.Required {
			required = append(required, name)
		}
		schema := c.propertyToSchema(child)
		if schema.IsZero() {
			continue
		}
		schemas.Set(name, schema)
	}
	if schemas.Len() == 0 {
		schemas = nil
	}
	return required, schemas
}
