package resolver

import (
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// MustCompileSchema compiles a JSON schema literal declared by a module for
// its options. It panics on malformed schemas, which are programmer errors
// caught at module registration time.
func MustCompileSchema(src string) *jsonschema.Schema {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(src))
	if err != nil {
		panic(fmt.Sprintf("unmarshaling options schema: %v", err))
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("options.schema.json", doc); err != nil {
		panic(fmt.Sprintf("adding options schema resource: %v", err))
	}
	schema, err := compiler.Compile("options.schema.json")
	if err != nil {
		panic(fmt.Sprintf("compiling options schema: %v", err))
	}
	return schema
}
