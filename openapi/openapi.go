package openapi

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Version is the OpenAPI specification version emitted at the document root.
const Version = "3.0.0"

// OpenAPI is the root of an OpenAPI v3.0 document
// See https://github.com/OAI/OpenAPI-Specification/blob/main/versions/3.0.0.md
type OpenAPI struct {
	// REQUIRED. This string MUST be the version number of the OpenAPI Specification that the
	// OpenAPI document uses.
	OpenAPI string `json:"openapi"`

	// REQUIRED. Provides metadata about the API.
	Info *Info `json:"info"`

	// The available paths and operations for the API.
	Paths *Paths `json:"paths"`

	// An element to hold various schemas for the document.
	Components *Components `json:"components"`
}

func (o *OpenAPI) marshalField() []marshalField {
	return []marshalField{
		{"openapi", o.OpenAPI, o.OpenAPI == ""},
		{"info", o.Info, o.Info == nil},
		{"paths", o.Paths, o.Paths == nil},
		{"components", o.Components, o.Components == nil},
	}
}

func (o *OpenAPI) MarshalJSON() ([]byte, error) {
	return marshalJson(o.marshalField())
}

func (o *OpenAPI) Validate() error {
	if !regexp.MustCompile(`^3\.0(\.\d+)*$`).MatchString(o.OpenAPI) {
		return verifyError("openapi", fmt.Errorf("must be 3.0 or 3.0.*"))
	}

	if o.Info != nil {
		if err := o.Info.Validate(); err != nil {
			return verifyError("info", err)
		}
	} else {
		return verifyError("info", fmt.Errorf("must be a non empty object"))
	}

	if o.Paths != nil {
		if err := o.Paths.Validate(); err != nil {
			return verifyError("paths", err)
		}
	}
	return nil
}

type Info struct {
	// REQUIRED. The title of the API.
	Title string `json:"title"`

	// A description of the API. CommonMark syntax MAY be used for rich text representation.
	Description string `json:"description"`

	// The contact information for the exposed API.
	Contact *Contact `json:"contact"`

	// The license information for the exposed API.
	License *License `json:"license"`

	// REQUIRED. The version of the OpenAPI document (which is distinct from the OpenAPI
	// Specification version or the API implementation version).
	Version string `json:"version"`
}

func (i *Info) marshalField() []marshalField {
	return []marshalField{
		{"title", i.Title, i.Title == ""},
		{"description", i.Description, i.Description == ""},
		{"contact", i.Contact, i.Contact == nil},
		{"license", i.License, i.License == nil},
		{"version", i.Version, i.Version == ""},
	}
}

func (i *Info) MarshalJSON() ([]byte, error) {
	return marshalJson(i.marshalField())
}

func (i *Info) Validate() error {
	if i.Title == "" {
		return verifyError("title", fmt.Errorf("must be a non empty string"))
	}
	if i.Version == "" {
		return verifyError("version", fmt.Errorf("must be a non empty string"))
	}
	return nil
}

type Contact struct {
	// The identifying name of the contact person/organization.
	Name string `json:"name"`

	// The URL pointing to the contact information. This MUST be in the form of a URL.
	URL string `json:"url"`

	// The email address of the contact person/organization.
	Email string `json:"email"`
}

func (c *Contact) marshalField() []marshalField {
	return []marshalField{
		{"name", c.Name, c.Name == ""},
		{"url", c.URL, c.URL == ""},
		{"email", c.Email, c.Email == ""},
	}
}

func (c *Contact) MarshalJSON() ([]byte, error) {
	return marshalJson(c.marshalField())
}

type License struct {
	// REQUIRED. The license name used for the API.
	Name string `json:"name"`

	// A URL to the license used for the API. This MUST be in the form of a URL.
	URL string `json:"url"`
}

func (l *License) marshalField() []marshalField {
	return []marshalField{
		{"name", l.Name, l.Name == ""},
		{"url", l.URL, l.URL == ""},
	}
}

func (l *License) MarshalJSON() ([]byte, error) {
	return marshalJson(l.marshalField())
}

// Paths holds the relative paths to the individual endpoints and their operations.
// Insertion order is preserved when the document is serialized.
type Paths struct {
	keys []string
	m    map[string]*PathItem
}

// Set A relative path to an individual endpoint. The field name MUST begin with a
// forward slash. Setting an existing path replaces its item but keeps its position.
func (p *Paths) Set(path string, item *PathItem) {
	if p.m == nil {
		p.m = map[string]*PathItem{}
	}
	if _, ok := p.m[path]; !ok {
		p.keys = append(p.keys, path)
	}
	p.m[path] = item
}

func (p *Paths) Value(path string) *PathItem {
	return p.m[path]
}

func (p *Paths) Keys() []string {
	return p.keys
}

func (p *Paths) Len() int {
	return len(p.keys)
}

func (p *Paths) MarshalJSON() ([]byte, error) {
	var list []marshalField
	for _, k := range p.keys {
		list = append(list, marshalField{k, p.m[k], false})
	}
	return marshalJson(list)
}

func (p *Paths) Validate() error {
	for _, k := range p.keys {
		if !strings.HasPrefix(k, "/") {
			return verifyError(k, fmt.Errorf("key must start with \"/\""))
		}
	}
	return nil
}

type PathItem struct {
	// An optional, string summary, intended to apply to all operations in this path.
	Summary string `json:"summary"`

	// An optional, string description, intended to apply to all operations in this path.
	Description string `json:"description"`

	// A definition of a GET operation on this path.
	Get *Operation `json:"get"`

	// A definition of a PUT operation on this path.
	Put *Operation `json:"put"`

	// A definition of a POST operation on this path.
	Post *Operation `json:"post"`

	// A definition of a DELETE operation on this path.
	Delete *Operation `json:"delete"`

	// A definition of a OPTIONS operation on this path.
	Options *Operation `json:"options"`

	// A definition of a HEAD operation on this path.
	Head *Operation `json:"head"`

	// A definition of a PATCH operation on this path.
	Patch *Operation `json:"patch"`

	// A definition of a TRACE operation on this path.
	Trace *Operation `json:"trace"`
}

func (p *PathItem) marshalField() []marshalField {
	return []marshalField{
		{"summary", p.Summary, p.Summary == ""},
		{"description", p.Description, p.Description == ""},
		{"get", p.Get, p.Get == nil},
		{"put", p.Put, p.Put == nil},
		{"post", p.Post, p.Post == nil},
		{"delete", p.Delete, p.Delete == nil},
		{"options", p.Options, p.Options == nil},
		{"head", p.Head, p.Head == nil},
		{"patch", p.Patch, p.Patch == nil},
		{"trace", p.Trace, p.Trace == nil},
	}
}

func (p *PathItem) MarshalJSON() ([]byte, error) {
	return marshalJson(p.marshalField())
}

// Operation Sets an operation object on the path item for the given HTTP method.
// Unknown methods are ignored.
func (p *PathItem) Operation(method string, operation *Operation) {
	switch method {
	case "GET":
		p.Get = operation
	case "PUT":
		p.Put = operation
	case "POST":
		p.Post = operation
	case "DELETE":
		p.Delete = operation
	case "OPTIONS":
		p.Options = operation
	case "HEAD":
		p.Head = operation
	case "PATCH":
		p.Patch = operation
	case "TRACE":
		p.Trace = operation
	}
}

type Operation struct {
	// A short summary of what the operation does.
	Summary string `json:"summary"`

	// A verbose explanation of the operation behavior.
	Description string `json:"description"`

	// A list of parameters that are applicable for this operation.
	Parameters []*Parameter `json:"parameters"`

	// The request body applicable for this operation.
	RequestBody *RequestBody `json:"requestBody"`

	// REQUIRED. The list of possible responses as they are returned from executing this operation.
	Responses *Responses `json:"responses"`
}

func (o *Operation) marshalField() []marshalField {
	return []marshalField{
		{"summary", o.Summary, o.Summary == ""},
		{"description", o.Description, o.Description == ""},
		{"parameters", o.Parameters, o.Parameters == nil},
		{"requestBody", o.RequestBody, o.RequestBody == nil},
		{"responses", o.Responses, o.Responses == nil},
	}
}

func (o *Operation) MarshalJSON() ([]byte, error) {
	return marshalJson(o.marshalField())
}

type Parameter struct {
	// REQUIRED. The name of the parameter. Parameter names are case sensitive.
	Name string `json:"name"`

	// REQUIRED. The location of the parameter. Possible values are "query", "header",
	// "path" or "cookie".
	In string `json:"in"`

	// A brief description of the parameter.
	Description string `json:"description"`

	// Determines whether this parameter is mandatory.
	Required bool `json:"required"`

	// The schema defining the type used for the parameter.
	Schema *Schema `json:"schema"`
}

func (p *Parameter) marshalField() []marshalField {
	return []marshalField{
		{"name", p.Name, false},
		{"in", p.In, false},
		{"description", p.Description, false},
		{"required", p.Required, false},
		{"schema", p.Schema, p.Schema == nil},
	}
}

func (p *Parameter) MarshalJSON() ([]byte, error) {
	return marshalJson(p.marshalField())
}

type RequestBody struct {
	// A brief description of the request body.
	Description string `json:"description"`

	// REQUIRED. The content of the request body. The key is a media type and the
	// value describes it.
	Content map[string]*MediaType `json:"content"`

	// Determines if the request body is required in the request.
	Required bool `json:"required"`
}

func (r *RequestBody) marshalField() []marshalField {
	return []marshalField{
		{"description", r.Description, false},
		{"content", r.Content, r.Content == nil},
		{"required", r.Required, false},
	}
}

func (r *RequestBody) MarshalJSON() ([]byte, error) {
	return marshalJson(r.marshalField())
}

type MediaType struct {
	// The schema defining the content of the request, response, or parameter.
	Schema *Schema `json:"schema"`
}

func (m *MediaType) marshalField() []marshalField {
	return []marshalField{
		{"schema", m.Schema, m.Schema == nil},
	}
}

func (m *MediaType) MarshalJSON() ([]byte, error) {
	return marshalJson(m.marshalField())
}

// Responses is a container for the expected responses of an operation, keyed by
// numeric HTTP status code. Insertion order is preserved when serialized.
type Responses struct {
	keys []string
	m    map[string]*Response
}

func (r *Responses) Set(status string, response *Response) {
	if r.m == nil {
		r.m = map[string]*Response{}
	}
	if _, ok := r.m[status]; !ok {
		r.keys = append(r.keys, status)
	}
	r.m[status] = response
}

func (r *Responses) Value(status string) *Response {
	return r.m[status]
}

func (r *Responses) Keys() []string {
	return r.keys
}

func (r *Responses) MarshalJSON() ([]byte, error) {
	var list []marshalField
	for _, k := range r.keys {
		list = append(list, marshalField{k, r.m[k], false})
	}
	return marshalJson(list)
}

type Response struct {
	// REQUIRED. A short description of the response.
	Description string `json:"description"`

	// Maps a header name to its definition.
	Headers map[string]*Header `json:"headers"`

	// A map containing descriptions of potential response payloads.
	Content map[string]*MediaType `json:"content"`
}

func (r *Response) marshalField() []marshalField {
	return []marshalField{
		{"description", r.Description, false},
		{"headers", r.Headers, r.Headers == nil},
		{"content", r.Content, r.Content == nil},
	}
}

func (r *Response) MarshalJSON() ([]byte, error) {
	return marshalJson(r.marshalField())
}

type Header struct {
	// A brief description of the header.
	Description string `json:"description"`

	// Determines whether this header is mandatory.
	Required bool `json:"required"`

	// The schema defining the type used for the header.
	Schema *Schema `json:"schema"`
}

func (h *Header) marshalField() []marshalField {
	return []marshalField{
		{"description", h.Description, h.Description == ""},
		{"required", h.Required, !h.Required},
		{"schema", h.Schema, h.Schema == nil},
	}
}

func (h *Header) MarshalJSON() ([]byte, error) {
	return marshalJson(h.marshalField())
}

type Components struct {
	// An object to hold reusable Schema Objects.
	Schemas *Schemas `json:"schemas"`
}

func (c *Components) marshalField() []marshalField {
	return []marshalField{
		{"schemas", c.Schemas, c.Schemas == nil},
	}
}

func (c *Components) MarshalJSON() ([]byte, error) {
	return marshalJson(c.marshalField())
}

// Schemas is an insertion-ordered mapping of schema name to Schema Object.
type Schemas struct {
	keys []string
	m    map[string]*Schema
}

func (s *Schemas) Set(name string, schema *Schema) {
	if s.m == nil {
		s.m = map[string]*Schema{}
	}
	if _, ok := s.m[name]; !ok {
		s.keys = append(s.keys, name)
	}
	s.m[name] = schema
}

func (s *Schemas) Value(name string) *Schema {
	return s.m[name]
}

func (s *Schemas) Keys() []string {
	return s.keys
}

func (s *Schemas) Len() int {
	return len(s.keys)
}

func (s *Schemas) MarshalJSON() ([]byte, error) {
	var list []marshalField
	for _, k := range s.keys {
		list = append(list, marshalField{k, s.m[k], false})
	}
	return marshalJson(list)
}

// Schema allows the definition of input and output data types as used by
// OpenAPI 3.0 (a restricted subset of JSON Schema).
type Schema struct {
	// Allows referencing an external definition instead of defining the schema inline.
	// When set, every field other than Nullable is ignored on serialization.
	Ref string `json:"$ref"`

	// Value MUST be a string. Multiple types via an array are not supported in 3.0;
	// union shapes are expressed through AnyOf.
	Type string `json:"type"`

	// A free-form description. A nil pointer omits the key entirely, an empty string
	// is emitted as "".
	Description *string `json:"description"`

	// An enumeration of allowed values.
	Enum []any `json:"enum"`

	// Allows sending a null value for the defined schema.
	Nullable bool `json:"nullable"`

	// Value MUST be an object and not an array. MUST be present if Type is "array".
	Items *Schema `json:"items"`

	// Matches any of the listed subschemas.
	AnyOf []*Schema `json:"anyOf"`

	// The names of properties that are required on this object.
	Required []string `json:"required"`

	// The properties of an object schema, in declaration order.
	Properties *Schemas `json:"properties"`
}

func (s *Schema) marshalField() []marshalField {
	if s.Ref != "" {
		return []marshalField{
			{"$ref", s.Ref, false},
			{"nullable", s.Nullable, !s.Nullable},
		}
	}
	return []marshalField{
		{"type", s.Type, s.Type == ""},
		{"description", s.Description, s.Description == nil},
		{"enum", s.Enum, s.Enum == nil},
		{"nullable", s.Nullable, !s.Nullable},
		{"items", s.Items, s.Items == nil},
		{"anyOf", s.AnyOf, s.AnyOf == nil},
		{"required", s.Required, s.Required == nil},
		{"properties", s.Properties, s.Properties == nil || s.Properties.Len() == 0},
	}
}

func (s *Schema) MarshalJSON() ([]byte, error) {
	return marshalJson(s.marshalField())
}

// IsZero reports whether the schema carries no information at all. Such schemas
// are dropped from compiled property maps.
func (s *Schema) IsZero() bool {
	return s.Ref == "" && s.Type == "" && s.Description == nil && s.Enum == nil &&
		!s.Nullable && s.Items == nil && s.AnyOf == nil && s.Required == nil &&
		(s.Properties == nil || s.Properties.Len() == 0)
}

type marshalField struct {
	key       string
	value     any
	omitempty bool
}

func marshalJson(list []marshalField) ([]byte, error) {
	buf := bytes.NewBufferString("{")
	n := 0
	for _, v := range list {
		if v.omitempty {
			continue
		}
		if n > 0 {
			buf.WriteString(",")
		}
		key, err := json.Marshal(v.key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteString(":")
		val, err := json.Marshal(v.value)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
		n++
	}
	buf.WriteString("}")
	return buf.Bytes(), nil
}

func verifyError(field string, err error) error {
	errStr := err.Error()
	reg := regexp.MustCompile(`^verify (.*?) error: (.+)$`)
	paths := reg.FindStringSubmatch(errStr)
	if len(paths) == 3 {
		errStr = paths[2]
		field += "." + paths[1]
	}
	return fmt.Errorf("verify %s error: %s", field, errStr)
}
