package executor

import (
	"context"
	"fmt"
	"reflect"
	"sync/atomic"
	"time"

	"github.com/99designs/gqlgen/graphql"
	"github.com/vektah/gqlparser/v2/ast"
	"golang.org/x/sync/errgroup"
)

// maxParallel bounds the goroutines one list or root selection may start.
const maxParallel = 16

type execution struct {
	schema *Schema
	opCtx  *graphql.OperationContext
}

// executeFields resolves fields of obj. A false result means a non-null
// field resolved to null and the whole object must become null.
func (e *execution) executeFields(ctx context.Context, def *ast.Definition, obj any, fields []graphql.CollectedField, serial bool) (graphql.Marshaler, bool) {
	out := graphql.NewFieldSet(fields)
	var invalid atomic.Bool

	resolve := func(i int) {
		v, ok := e.executeField(ctx, def, obj, fields[i])
		if !ok {
			invalid.Store(true)
		}
		out.Values[i] = v
	}

	if serial || len(fields) < 2 {
		for i := range fields {
			resolve(i)
		}
	} else {
		var g errgroup.Group
		g.SetLimit(maxParallel)
		for i := range fields {
			g.Go(func() error {
				resolve(i)
				return nil
			})
		}
		_ = g.Wait()
	}

	if invalid.Load() {
		return graphql.Null, false
	}
	return out, true
}

func (e *execution) executeField(ctx context.Context, parent *ast.Definition, obj any, f graphql.CollectedField) (graphql.Marshaler, bool) {
	if f.Name == "__typename" {
		return graphql.MarshalString(parent.Name), true
	}

	args := f.ArgumentMap(e.opCtx.Variables)
	fc := &graphql.FieldContext{
		Object:     parent.Name,
		Field:      f,
		Args:       args,
		IsMethod:   true,
		IsResolver: true,
	}
	ctx = graphql.WithFieldContext(ctx, fc)

	typ := f.Definition.Type
	fn, ok := e.schema.resolver(parent.Name, f.Name)
	if !ok {
		graphql.AddError(ctx, fmt.Errorf("no resolver for %s.%s", parent.Name, f.Name))
		return graphql.Null, !typ.NonNull
	}
	if isIntrospection(f.Name, parent.Name) && e.opCtx.DisableIntrospection {
		graphql.AddErrorf(ctx, "introspection disabled")
		return graphql.Null, !typ.NonNull
	}

	value, err := e.call(ctx, fn, obj, args)
	if err != nil {
		graphql.AddError(ctx, err)
		return graphql.Null, !typ.NonNull
	}
	fc.Result = value

	return e.complete(ctx, typ, f.Selections, value)
}

func isIntrospection(field, typeName string) bool {
	return field == "__schema" || field == "__type" || (len(typeName) > 2 && typeName[:2] == "__")
}

func (e *execution) call(ctx context.Context, fn FieldFunc, obj any, args map[string]any) (v any, err error) {
	defer func() {
		if r := recover(); r != nil {
			v, err = nil, e.opCtx.Recover(ctx, r)
		}
	}()
	return fn(ctx, obj, args)
}

// complete turns a resolved value into output of type typ. The boolean is
// false when a null has to propagate to the parent.
func (e *execution) complete(ctx context.Context, typ *ast.Type, sel ast.SelectionSet, value any) (graphql.Marshaler, bool) {
	if isNil(value) {
		if typ.NonNull {
			graphql.AddErrorf(ctx, "the requested element is null which the schema does not allow")
			return graphql.Null, false
		}
		return graphql.Null, true
	}

	if typ.Elem != nil {
		return e.completeList(ctx, typ, sel, value)
	}

	def := e.schema.schema.Types[typ.NamedType]
	if def == nil {
		graphql.AddError(ctx, fmt.Errorf("unknown type %s", typ.NamedType))
		return graphql.Null, !typ.NonNull
	}

	switch def.Kind {
	case ast.Scalar, ast.Enum:
		m, err := marshalLeaf(def, value)
		if err != nil {
			graphql.AddError(ctx, err)
			return graphql.Null, !typ.NonNull
		}
		return m, true
	case ast.Object:
		fields := graphql.CollectFields(e.opCtx, sel, []string{def.Name})
		m, ok := e.executeFields(ctx, def, addressable(value), fields, false)
		if !ok {
			return graphql.Null, !typ.NonNull
		}
		return m, true
	default:
		graphql.AddError(ctx, fmt.Errorf("unsupported output type %s", def.Name))
		return graphql.Null, !typ.NonNull
	}
}

// completeList completes every element of a slice. Lists of objects are
// completed concurrently so nested dataloader lookups share a batch.
func (e *execution) completeList(ctx context.Context, typ *ast.Type, sel ast.SelectionSet, value any) (graphql.Marshaler, bool) {
	rv := reflect.Indirect(reflect.ValueOf(value))
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		graphql.AddError(ctx, fmt.Errorf("expected a list, got %T", value))
		return graphql.Null, !typ.NonNull
	}

	n := rv.Len()
	out := make(graphql.Array, n)
	var invalid atomic.Bool

	item := func(i int) {
		idx := i
		ctx := graphql.WithFieldContext(ctx, &graphql.FieldContext{Index: &idx})
		elem := rv.Index(i)
		var v any
		if elem.Kind() == reflect.Struct && elem.CanAddr() {
			v = elem.Addr().Interface()
		} else {
			v = elem.Interface()
		}
		m, ok := e.complete(ctx, typ.Elem, sel, v)
		if !ok {
			invalid.Store(true)
		}
		out[i] = m
	}

	if def := e.schema.schema.Types[typ.Elem.Name()]; n > 1 && def != nil && def.Kind == ast.Object {
		var g errgroup.Group
		g.SetLimit(maxParallel)
		for i := 0; i < n; i++ {
			g.Go(func() error {
				item(i)
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for i := 0; i < n; i++ {
			item(i)
		}
	}

	if invalid.Load() {
		return graphql.Null, !typ.NonNull
	}
	return out, true
}

// isNil treats nil pointers, maps and interfaces as null. Nil slices are
// empty lists.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Interface, reflect.Func:
		return rv.IsNil()
	}
	return false
}

// addressable returns a pointer to v so object resolvers always see
// pointers.
func addressable(v any) any {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		return v
	}
	p := reflect.New(rv.Type())
	p.Elem().Set(rv)
	return p.Interface()
}

func marshalLeaf(def *ast.Definition, value any) (graphql.Marshaler, error) {
	rv := reflect.Indirect(reflect.ValueOf(value))

	switch def.Name {
	case "DateTime":
		t, ok := rv.Interface().(time.Time)
		if !ok {
			return nil, fmt.Errorf("DateTime: unexpected %T", value)
		}
		return graphql.MarshalString(t.UTC().Format(time.RFC3339Nano)), nil
	case "Int":
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return graphql.MarshalInt(int(rv.Int())), nil
		}
	case "Float":
		switch rv.Kind() {
		case reflect.Float32, reflect.Float64:
			return graphql.MarshalFloat(rv.Float()), nil
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return graphql.MarshalFloat(float64(rv.Int())), nil
		}
	case "Boolean":
		if rv.Kind() == reflect.Bool {
			return graphql.MarshalBoolean(rv.Bool()), nil
		}
	default:
		var s string
		switch {
		case rv.Kind() == reflect.String:
			s = rv.String()
		case rv.CanInterface():
			str, ok := rv.Interface().(fmt.Stringer)
			if !ok {
				return nil, fmt.Errorf("%s: unexpected %T", def.Name, value)
			}
			s = str.String()
		}
		if def.Kind == ast.Enum && def.EnumValues.ForName(s) == nil {
			return nil, fmt.Errorf("%s: invalid value %q", def.Name, s)
		}
		return graphql.MarshalString(s), nil
	}
	return nil, fmt.Errorf("%s: unexpected %T", def.Name, value)
}
