package executor

import (
	"context"

	"github.com/99designs/gqlgen/graphql/introspection"
)

func (s *Schema) resolveSchema(context.Context, any, map[string]any) (any, error) {
	return introspection.WrapSchema(s.schema), nil
}

func (s *Schema) resolveType(_ context.Context, _ any, args map[string]any) (any, error) {
	name, _ := args["name"].(string)
	def := s.schema.Types[name]
	if def == nil {
		return nil, nil
	}
	return introspection.WrapTypeFromDef(s.schema, def), nil
}

func includeDeprecated(args map[string]any) bool {
	v, _ := args["includeDeprecated"].(bool)
	return v
}

func typed[T any](fn func(obj *T, args map[string]any) any) FieldFunc {
	return func(_ context.Context, obj any, args map[string]any) (any, error) {
		return fn(obj.(*T), args), nil
	}
}

var introspectionResolvers = Resolvers{
	"__Schema": {
		"description":      typed(func(s *introspection.Schema, _ map[string]any) any { return s.Description() }),
		"types":            typed(func(s *introspection.Schema, _ map[string]any) any { return s.Types() }),
		"queryType":        typed(func(s *introspection.Schema, _ map[string]any) any { return s.QueryType() }),
		"mutationType":     typed(func(s *introspection.Schema, _ map[string]any) any { return s.MutationType() }),
		"subscriptionType": typed(func(s *introspection.Schema, _ map[string]any) any { return s.SubscriptionType() }),
		"directives":       typed(func(s *introspection.Schema, _ map[string]any) any { return s.Directives() }),
	},
	"__Type": {
		"kind":           typed(func(t *introspection.Type, _ map[string]any) any { return t.Kind() }),
		"name":           typed(func(t *introspection.Type, _ map[string]any) any { return t.Name() }),
		"description":    typed(func(t *introspection.Type, _ map[string]any) any { return t.Description() }),
		"specifiedByURL": typed(func(t *introspection.Type, _ map[string]any) any { return t.SpecifiedByURL() }),
		"fields":         typed(func(t *introspection.Type, a map[string]any) any { return t.Fields(includeDeprecated(a)) }),
		"interfaces":     typed(func(t *introspection.Type, _ map[string]any) any { return t.Interfaces() }),
		"possibleTypes":  typed(func(t *introspection.Type, _ map[string]any) any { return t.PossibleTypes() }),
		"enumValues":     typed(func(t *introspection.Type, a map[string]any) any { return t.EnumValues(includeDeprecated(a)) }),
		"inputFields":    typed(func(t *introspection.Type, _ map[string]any) any { return t.InputFields() }),
		"ofType":         typed(func(t *introspection.Type, _ map[string]any) any { return t.OfType() }),
	},
	"__Field": {
		"name":              typed(func(f *introspection.Field, _ map[string]any) any { return f.Name }),
		"description":       typed(func(f *introspection.Field, _ map[string]any) any { return f.Description() }),
		"args":              typed(func(f *introspection.Field, _ map[string]any) any { return f.Args }),
		"type":              typed(func(f *introspection.Field, _ map[string]any) any { return f.Type }),
		"isDeprecated":      typed(func(f *introspection.Field, _ map[string]any) any { return f.IsDeprecated() }),
		"deprecationReason": typed(func(f *introspection.Field, _ map[string]any) any { return f.DeprecationReason() }),
	},
	"__InputValue": {
		"name":              typed(func(v *introspection.InputValue, _ map[string]any) any { return v.Name }),
		"description":       typed(func(v *introspection.InputValue, _ map[string]any) any { return v.Description() }),
		"type":              typed(func(v *introspection.InputValue, _ map[string]any) any { return v.Type }),
		"defaultValue":      typed(func(v *introspection.InputValue, _ map[string]any) any { return v.DefaultValue }),
		"isDeprecated":      typed(func(*introspection.InputValue, map[string]any) any { return false }),
		"deprecationReason": typed(func(*introspection.InputValue, map[string]any) any { return nil }),
	},
	"__EnumValue": {
		"name":              typed(func(v *introspection.EnumValue, _ map[string]any) any { return v.Name }),
		"description":       typed(func(v *introspection.EnumValue, _ map[string]any) any { return v.Description() }),
		"isDeprecated":      typed(func(v *introspection.EnumValue, _ map[string]any) any { return v.IsDeprecated() }),
		"deprecationReason": typed(func(v *introspection.EnumValue, _ map[string]any) any { return v.DeprecationReason() }),
	},
	"__Directive": {
		"name":         typed(func(d *introspection.Directive, _ map[string]any) any { return d.Name }),
		"description":  typed(func(d *introspection.Directive, _ map[string]any) any { return d.Description() }),
		"locations":    typed(func(d *introspection.Directive, _ map[string]any) any { return d.Locations }),
		"args":         typed(func(d *introspection.Directive, _ map[string]any) any { return d.Args }),
		"isRepeatable": typed(func(d *introspection.Directive, _ map[string]any) any { return d.IsRepeatable }),
	},
}
