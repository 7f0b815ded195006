// Package derive registers components whose properties are introspected from
// Go data-model structs through gorm's schema parser, so hand-written
// declarations and persisted models stay in sync.
package derive

import (
	"fmt"
	"sync"

	"github.com/iancoleman/strcase"
	"gorm.io/gorm/schema"

	"github.com/declapi/declapi"
)

var cacheStore = &sync.Map{}

// Component parses model and registers a component named name on reg. Property
// names are the snake_case form of the struct field names; types, requiredness
// and nullability come from the parsed column definitions, already normalized
// to the canonical tags the compilers expect. Unlike the document compiler,
// derivation is strict: an unsupported column type is a hard error and nothing
// is registered.
func Component(reg *declapi.Registry, name string, model any) (*declapi.Component, error) {
	s, err := schema.Parse(model, cacheStore, schema.NamingStrategy{})
	if err != nil {
		return nil, fmt.Errorf("derive %s: %w", name, err)
	}
	type column struct {
		name string
		opts declapi.Options
	}
	var columns []column
	for _, field := range s.Fields {
		if field.DataType == "" {
			// relation or ignored field, no column behind it
			continue
		}
		tag, err := columnType(field.DataType)
		if err != nil {
			return nil, fmt.Errorf("derive %s.%s: %w", name, field.Name, err)
		}
		required := field.NotNull || field.PrimaryKey
		columns = append(columns, column{
			name: strcase.ToSnake(field.Name),
			opts: declapi.Options{
				Type:        tag,
				Description: field.Comment,
				Required:    declapi.Bool(required),
				Nullable:    !required,
			},
		})
	}
	return reg.DefineComponent(name, declapi.Options{Type: declapi.TypeObject}, func(c *declapi.Component) {
		for _, col := range columns {
			c.AddProperty(col.name, col.opts)
		}
	}), nil
}

func columnType(t schema.DataType) (string, error) {
	switch t {
	case schema.Bool:
		return declapi.TypeBoolean, nil
	case schema.Int, schema.Uint, schema.Float:
		return declapi.TypeNumber, nil
	case schema.String:
		return declapi.TypeString, nil
	case schema.Time:
		return "date-time", nil
	default:
		return "", fmt.Errorf("unsupported column type %q", t)
	}
}
