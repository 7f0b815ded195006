// Package declapi generates OpenAPI 3.0 documents and runtime request
// validators from in-code endpoint and component declarations.
package declapi

// In is the location of an endpoint parameter.
type In string

func (In) List() []In {
	return []In{
		InQuery,
		InPath,
		InHeader,
		InCookie,
	}
}

func (i In) Tag() string {
	return string(i)
}

const (
	InQuery  In = "query"
	InPath   In = "path"
	InHeader In = "header"
	InCookie In = "cookie"
)

// Canonical type tags. Any other token passes through the compilers as its
// string form, so external markers such as "date-time" stay usable.
const (
	TypeNumber  = "number"
	TypeString  = "string"
	TypeBoolean = "boolean"
	TypeObject  = "object"
	TypeArray   = "array"
)

// kind is the shape of a schema node, fixed once when the node is constructed
// instead of being re-derived from field inspection at every compile call.
type kind uint8

const (
	kindScalar kind = iota
	kindObject
	kindArray
	kindUnion
	kindReference
)

const refPrefix = "#/components/schemas/"

type LogLevel uint

var logLevel = LogInfo | LogDebug | LogWarning | LogError | LogFail

const (
	LogInfo LogLevel = 1 << iota
	LogDebug
	LogWarning
	LogError
	LogFail
)
