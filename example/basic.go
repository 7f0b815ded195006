package main

import (
	"fmt"

	"github.com/declapi/declapi"
	"github.com/declapi/declapi/openapi"
)

func main() {
	reg := declapi.NewRegistry()

	reg.DefineComponent("User", declapi.Options{Type: "object"}, func(c *declapi.Component) {
		c.AddProperty("name", declapi.Options{Type: "string"})
		c.AddProperty("email", declapi.Options{Type: "string"})
		c.AddProperty("age", declapi.Options{Type: "number", Required: declapi.Bool(false), Nullable: true})
	})

	users := reg.DefineEndpoint(func(e *declapi.Endpoint) {
		e.SetPath("/users")
		e.AddOperation("get")
		e.AddParameter("page", declapi.Options{Type: "number", Required: declapi.Bool(false), Description: "page number"})
		e.AddResponse(declapi.StatusOK, declapi.Options{Type: "array", Of: "User", Description: "all users"})
	})
	reg.DefineEndpoint(func(e *declapi.Endpoint) {
		e.SetPath("/users")
		e.AddOperation("post")
		e.SetRequestBody(declapi.Options{Type: "object", As: "User", Description: "user to create"})
		e.AddResponse(declapi.StatusCreated, declapi.Options{Type: "object", Of: "User", Description: "created user"})
		e.AddResponse(declapi.StatusUnprocessableEntity, declapi.Options{Type: "object", Description: "validation error"})
	})

	doc, err := reg.OpenAPI(&openapi.Info{Title: "Users API", Version: "1.0.0"})
	if err != nil {
		panic(err)
	}
	buf, _ := doc.MarshalJSON()
	fmt.Println(string(buf))

	validator := users.Validator()
	coerced, err := validator.Validate(map[string]any{"page": "3"})
	if err != nil {
		panic(err)
	}
	fmt.Printf("page: %v\n", coerced["page"])
}
