// Package graphql serves the quiz GraphQL API on gqlgen's HTTP handler.
package graphql

import (
	_ "embed"
	"fmt"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

//go:embed schema.graphqls
var schemaSource string

// LoadSchema parses and validates the embedded schema.
func LoadSchema() (*ast.Schema, error) {
	schema, err := gqlparser.LoadSchema(&ast.Source{Name: "schema.graphqls", Input: schemaSource})
	if err != nil {
		return nil, fmt.Errorf("graphql.LoadSchema: %w", err)
	}
	return schema, nil
}
