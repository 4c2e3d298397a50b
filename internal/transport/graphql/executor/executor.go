// Package executor runs validated GraphQL operations against a table of field
// resolvers. It plugs into gqlgen's handler as its ExecutableSchema, so
// parsing, validation, transports and error presentation stay with gqlgen.
package executor

import (
	"bytes"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/99designs/gqlgen/graphql"
	"github.com/vektah/gqlparser/v2/ast"
)

// FieldFunc resolves one field. obj is nil for root fields and otherwise a
// pointer to the parent value.
type FieldFunc func(ctx context.Context, obj any, args map[string]any) (any, error)

// Resolvers maps an object type name to the resolvers of its fields.
type Resolvers map[string]map[string]FieldFunc

// Schema is a gqlgen ExecutableSchema backed by Resolvers.
type Schema struct {
	// Complexity is promoted from the nil interface and must not be called:
	// no complexity limit extension is installed on the handler.
	graphql.ExecutableSchema

	schema    *ast.Schema
	resolvers Resolvers
}

// New checks that every field of every object type in schema has a
// resolver and returns the executable schema.
func New(schema *ast.Schema, resolvers Resolvers) (*Schema, error) {
	var missing []string
	for name, def := range schema.Types {
		if def.Kind != ast.Object || def.BuiltIn || strings.HasPrefix(name, "__") {
			continue
		}
		for _, f := range def.Fields {
			if strings.HasPrefix(f.Name, "__") {
				continue
			}
			if _, ok := resolvers[name][f.Name]; !ok {
				missing = append(missing, name+"."+f.Name)
			}
		}
	}
	if len(missing) > 0 {
		slices.Sort(missing)
		return nil, fmt.Errorf("executor: no resolver for %s", strings.Join(missing, ", "))
	}

	return &Schema{schema: schema, resolvers: resolvers}, nil
}

// Schema returns the parsed schema.
func (s *Schema) Schema() *ast.Schema { return s.schema }

// Exec executes the operation stored in the context by gqlgen. Query fields
// resolve concurrently, mutation fields one after another.
func (s *Schema) Exec(ctx context.Context) graphql.ResponseHandler {
	opCtx := graphql.GetOperationContext(ctx)

	var (
		root   *ast.Definition
		serial bool
	)
	switch opCtx.Operation.Operation {
	case ast.Query:
		root = s.schema.Query
	case ast.Mutation:
		root, serial = s.schema.Mutation, true
	}
	if root == nil {
		return graphql.OneShot(graphql.ErrorResponse(ctx, "unsupported GraphQL operation"))
	}

	done := false
	return func(ctx context.Context) *graphql.Response {
		if done {
			return nil
		}
		done = true

		e := &execution{schema: s, opCtx: opCtx}
		fields := graphql.CollectFields(opCtx, opCtx.Operation.SelectionSet, []string{root.Name})
		data, ok := e.executeFields(ctx, root, nil, fields, serial)
		if !ok {
			data = graphql.Null
		}

		var buf bytes.Buffer
		data.MarshalGQL(&buf)
		return &graphql.Response{Data: buf.Bytes()}
	}
}

// resolver looks up the resolver of typeName.fieldName. Introspection types
// fall back to a null resolver for fields this package does not know.
func (s *Schema) resolver(typeName, fieldName string) (FieldFunc, bool) {
	switch fieldName {
	case "__schema":
		return s.resolveSchema, true
	case "__type":
		return s.resolveType, true
	}
	if fn, ok := introspectionResolvers[typeName][fieldName]; ok {
		return fn, true
	}
	if strings.HasPrefix(typeName, "__") {
		return func(context.Context, any, map[string]any) (any, error) { return nil, nil }, true
	}
	fn, ok := s.resolvers[typeName][fieldName]
	return fn, ok
}
