package declapi

import (
	"github.com/declapi/declapi/lang"
)

// NewRegistry It is a newly created declaration registry
func NewRegistry() *Registry {
	return &Registry{
		log:  &levelHandleLogger{log: &defaultLogger{}},
		lang: &lang.EN{},
	}
}

// Registry holds the declared components and endpoints of one specification.
// Both collections are append-only and populated only through DefineComponent
// and DefineEndpoint. Registration is expected to happen once, at application
// start, before either compiler runs; registering from multiple goroutines is
// out of contract. After registration has stabilized, compiling concurrently
// is safe since the compilers mutate nothing.
type Registry struct {
	components []*Component
	endpoints  []*Endpoint
	log        Logger
	lang       Lang
}

// SetLang It is to set the validation language function
func (r *Registry) SetLang(lang Lang) {
	r.lang = lang
}

// SetLogger It is a function for setting custom logs
func (r *Registry) SetLogger(log Logger) {
	r.log = &levelHandleLogger{log: log}
}

// Logger It is a method of obtaining logs
func (r *Registry) Logger() Logger {
	return r.log
}

// DefineComponent constructs a component from name and opts, appends it to the
// registry, then invokes configure with the new component for further mutation
// (nested properties). No validation happens here; malformed declarations only
// surface when the document compiler runs.
func (r *Registry) DefineComponent(name string, opts Options, configure ...func(*Component)) *Component {
	component := &Component{
		Name:     name,
		Property: newProperty(opts),
	}
	if r.Component(name) != nil {
		r.log.Warning("component %q is declared more than once, the last declaration wins", name)
	}
	r.components = append(r.components, component)
	for _, fn := range configure {
		fn(component)
	}
	return component
}

// DefineEndpoint constructs an empty endpoint, appends it to the registry and
// invokes configure with it. The endpoint's own mutators (SetPath,
// AddOperation, AddParameter, SetRequestBody, AddResponse) are meant to be
// called from inside configure.
func (r *Registry) DefineEndpoint(configure ...func(*Endpoint)) *Endpoint {
	endpoint := &Endpoint{}
	r.endpoints = append(r.endpoints, endpoint)
	for _, fn := range configure {
		fn(endpoint)
	}
	return endpoint
}

// Component returns the last registered component with the given name, or nil.
func (r *Registry) Component(name string) *Component {
	for i := len(r.components) - 1; i >= 0; i-- {
		if r.components[i].Name == name {
			return r.components[i]
		}
	}
	return nil
}

func (r *Registry) Components() []*Component {
	return r.components
}

func (r *Registry) Endpoints() []*Endpoint {
	return r.endpoints
}
