package executor

import (
	"github.com/mitchellh/mapstructure"

	"github.com/heartmarshall/quiz-backend/internal/domain"
)

// Decode copies coerced GraphQL arguments into dst. Keys match struct
// fields by json tag or, without one, case-insensitively by name.
func Decode(input any, dst any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           dst,
		TagName:          "json",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(input); err != nil {
		return domain.NewValidationError("input", err.Error())
	}
	return nil
}

// Arg decodes the named argument into a value of type T.
func Arg[T any](args map[string]any, name string) (T, error) {
	var out T
	v, ok := args[name]
	if !ok || v == nil {
		return out, nil
	}
	err := Decode(v, &out)
	return out, err
}
