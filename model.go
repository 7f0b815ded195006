package declapi

import "strings"

// Options configures a schema node at creation time. The zero value declares a
// required, non-nullable node with no type.
type Options struct {
	// Type is a canonical scalar tag ("number", "string", "boolean"), "object",
	// "array", or a list of scalar tags denoting a union ([]string or []any).
	// Unknown tokens pass through as their string form.
	Type any

	// Of is the element type for arrays, or the referenced component name for
	// object references. Mandatory when Type is "array".
	Of string

	Description string

	// Required defaults to true. Use Bool(false) to declare an optional node.
	Required *bool

	// As overrides inline expansion with a reference to the named component.
	As string

	// In is the parameter location, only meaningful on AddParameter.
	// Defaults to query.
	In In

	// Enum is an ordered list of allowed literal values.
	Enum []any

	// AllowableValues is a second name for Enum carried by data-model
	// introspection; it wins when both are set.
	AllowableValues []any

	Nullable bool
}

// Property describes a single field's type and shape, possibly nested. It is
// the shared base shape of every schema node: components, parameters, request
// bodies and responses all embed it. Nodes are value objects meant to be
// mutated only inside their registration call and treated as immutable
// afterward.
type Property struct {
	// Type holds the normalized type tags; more than one entry denotes a
	// union (anyOf) type.
	Type []string

	Of          string
	Description string
	Required    bool
	As          string

	Enum            []any
	AllowableValues []any

	Nullable bool

	// Properties holds nested object properties in declaration order.
	Properties *Properties

	kind kind
}

func newProperty(opts Options) Property {
	p := Property{
		Type:            normalizeType(opts.Type),
		Of:              opts.Of,
		Description:     opts.Description,
		Required:        true,
		As:              opts.As,
		Enum:            opts.Enum,
		AllowableValues: opts.AllowableValues,
		Nullable:        opts.Nullable,
	}
	if opts.Required != nil {
		p.Required = *opts.Required
	}
	p.kind = shapeKind(p.Type, p.Of, p.As)
	return p
}

func shapeKind(types []string, of, as string) kind {
	typ := ""
	if len(types) == 1 {
		typ = types[0]
	}
	if as != "" || (typ == TypeObject && of != "") {
		return kindReference
	}
	if len(types) > 1 {
		return kindUnion
	}
	switch typ {
	case TypeArray:
		return kindArray
	case TypeObject:
		return kindObject
	default:
		return kindScalar
	}
}

// AddProperty adds a nested property under name and returns it so callers can
// keep nesting. Re-declaring a name replaces the child but keeps its position.
func (p *Property) AddProperty(name string, opts Options, configure ...func(*Property)) *Property {
	if p.Properties == nil {
		p.Properties = &Properties{}
	}
	child := newProperty(opts)
	p.Properties.Set(name, &child)
	for _, fn := range configure {
		fn(&child)
	}
	return &child
}

func (p *Property) isArray() bool {
	return len(p.Type) == 1 && p.Type[0] == TypeArray
}

func (p *Property) typeTag() string {
	if len(p.Type) == 1 {
		return p.Type[0]
	}
	return ""
}

// enumValues applies the enum precedence rule: AllowableValues wins over Enum.
func (p *Property) enumValues() []any {
	if len(p.AllowableValues) > 0 {
		return p.AllowableValues
	}
	return p.Enum
}

// Properties is an insertion-ordered mapping of property name to Property.
type Properties struct {
	keys []string
	m    map[string]*Property
}

func (p *Properties) Set(name string, prop *Property) {
	if p.m == nil {
		p.m = map[string]*Property{}
	}
	if _, ok := p.m[name]; !ok {
		p.keys = append(p.keys, name)
	}
	p.m[name] = prop
}

func (p *Properties) Value(name string) *Property {
	if p == nil {
		return nil
	}
	return p.m[name]
}

func (p *Properties) Keys() []string {
	if p == nil {
		return nil
	}
	return p.keys
}

func (p *Properties) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// Component is a named, reusable schema registered once and referenced
// elsewhere via $ref.
type Component struct {
	Name string
	Property
}

// Parameter is one endpoint input. It reuses the Property shape so structured
// body-style parameters can carry nested properties.
type Parameter struct {
	Name string
	In   In
	Property
}

// Parameters is the ordered parameter collection owned by one endpoint.
type Parameters struct {
	list []*Parameter
}

func (p *Parameters) Add(param *Parameter) {
	p.list = append(p.list, param)
}

func (p *Parameters) List() []*Parameter {
	if p == nil {
		return nil
	}
	return p.list
}

func (p *Parameters) Len() int {
	if p == nil {
		return 0
	}
	return len(p.list)
}

// RequestBody is the single optional request body of an endpoint.
type RequestBody struct {
	Property
}

// Response is the schema fragment of one endpoint response.
type Response struct {
	Property
}

type endpointResponse struct {
	status   Status
	response *Response
}

// Endpoint is a declared path plus a set of HTTP operations with their
// parameters, request body and responses. It is created through
// Registry.DefineEndpoint and mutated only during its registration call.
type Endpoint struct {
	path        string
	operations  []string
	parameters  Parameters
	requestBody *RequestBody
	responses   []endpointResponse
}

func (e *Endpoint) SetPath(path string) {
	e.path = path
}

func (e *Endpoint) Path() string {
	return e.path
}

// AddOperation declares one or more HTTP methods for the endpoint. Methods are
// upper-cased and de-duplicated; validity is only checked at compile time.
func (e *Endpoint) AddOperation(methods ...string) {
	for _, method := range methods {
		method = strings.ToUpper(method)
		if inArray(method, e.operations) {
			continue
		}
		e.operations = append(e.operations, method)
	}
}

func (e *Endpoint) Operations() []string {
	return e.operations
}

// AddParameter declares an input parameter. The location defaults to query.
func (e *Endpoint) AddParameter(name string, opts Options, configure ...func(*Parameter)) *Parameter {
	in := opts.In
	if in == "" {
		in = InQuery
	}
	param := &Parameter{
		Name:     name,
		In:       in,
		Property: newProperty(opts),
	}
	e.parameters.Add(param)
	for _, fn := range configure {
		fn(param)
	}
	return param
}

func (e *Endpoint) Parameters() *Parameters {
	return &e.parameters
}

// SetRequestBody declares the request body, replacing any previous one.
func (e *Endpoint) SetRequestBody(opts Options, configure ...func(*RequestBody)) *RequestBody {
	body := &RequestBody{Property: newProperty(opts)}
	e.requestBody = body
	for _, fn := range configure {
		fn(body)
	}
	return body
}

func (e *Endpoint) RequestBody() *RequestBody {
	return e.requestBody
}

// AddResponse declares the response for one status. Re-declaring a status
// replaces the response but keeps its position.
func (e *Endpoint) AddResponse(status Status, opts Options, configure ...func(*Response)) *Response {
	response := &Response{Property: newProperty(opts)}
	for k, v := range e.responses {
		if v.status == status {
			e.responses[k].response = response
			for _, fn := range configure {
				fn(response)
			}
			return response
		}
	}
	e.responses = append(e.responses, endpointResponse{status: status, response: response})
	for _, fn := range configure {
		fn(response)
	}
	return response
}

// Response returns the declared response for status, or nil.
func (e *Endpoint) Response(status Status) *Response {
	for _, v := range e.responses {
		if v.status == status {
			return v.response
		}
	}
	return nil
}
