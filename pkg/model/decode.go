package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
)

// Decode builds the model out from canonical response data and validates it.
// out must be a pointer.
func Decode(canonical any, out Validator) error {
	if err := convert(canonical, out); err != nil {
		return decodeError(typeName(reflect.TypeOf(out)), err)
	}
	return out.Validate()
}

// DecodeList builds a slice of models from a canonical array. A nil value
// yields an empty, non-nil slice.
func DecodeList[T Validator](canonical any) ([]T, error) {
	items := []T{}
	if canonical == nil {
		return items, nil
	}
	if err := convert(canonical, &items); err != nil {
		return nil, decodeError(typeName(reflect.TypeOf((*T)(nil)).Elem()), err)
	}
	if items == nil {
		items = []T{}
	}
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return nil, nested(fmt.Sprintf("[%d]", i), err)
		}
	}
	return items, nil
}

func convert(in, out any) error {
	b, err := json.Marshal(in)
	if err != nil {
		return err
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	return dec.Decode(out)
}

func decodeError(model string, err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return &ValidationError{
			Model:  model,
			Field:  typeErr.Field,
			Reason: fmt.Sprintf("cannot be a JSON %s", typeErr.Value),
			Err:    err,
		}
	}
	return &ValidationError{Model: model, Reason: err.Error(), Err: err}
}

func typeName(t reflect.Type) string {
	for t != nil && (t.Kind() == reflect.Pointer || t.Kind() == reflect.Slice) {
		t = t.Elem()
	}
	if t == nil {
		return "value"
	}
	return t.Name()
}
