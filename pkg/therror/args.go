package therror

import (
	"fmt"
	"reflect"
	"strconv"
)

// defaultMessage is the template installed when no explicit message, type
// default, or cause message is available.
const defaultMessage = "Unknown error"

// parsed is the canonical form of a constructor argument list: an optional
// cause, an optional explicit message template, and ordered properties.
type parsed struct {
	cause    error
	template string
	explicit bool
	props    fields
}

// parseArgs normalizes a variadic constructor argument list by this
// precedence:
//
//  1. If the first argument is a non-nil error, or the second argument is a
//     string, the first argument is the cause and the remaining arguments
//     shift left. A non-error cause is adapted to the error interface with
//     its original value preserved.
//  2. If the first remaining argument is a string, it is the message
//     template; every following argument is a property entry (a map merges
//     shallowly, last-wins; anything else is stored under its numeric
//     position).
//  3. If the first remaining argument is a map, every remaining argument is
//     a property entry. The reserved "message" key selects the template when
//     it holds a non-nil value in the first map; "message" keys are never
//     retained as properties.
//  4. Any other first remaining value becomes the template if it has a
//     usable string form (a primitive, a fmt.Stringer, an error); aggregate
//     values contribute nothing. Everything after it is ignored.
//
// Nil arguments contribute nothing, typed nils boxed in a non-nil interface
// included. parseArgs never fails: unparseable input degrades to a parse
// with no explicit message and no properties.
func parseArgs(args []any) parsed {
	var p parsed

	// Rule 1: leading cause.
	if len(args) > 0 {
		if err, ok := args[0].(error); ok && !isNilValue(err) {
			p.cause = err
			args = args[1:]
		} else if len(args) > 1 && isString(args[1]) {
			p.cause = asCause(args[0])
			args = args[1:]
		}
	}

	for len(args) > 0 && isNilValue(args[0]) {
		args = args[1:]
	}
	if len(args) == 0 {
		return p
	}

	switch first := args[0].(type) {
	case string:
		// Rule 2: explicit template, rest are property entries.
		p.template = first
		p.explicit = true
		p.addEntries(args[1:])

	case map[string]any:
		// Rule 3: properties-first shape.
		if msg, ok := first["message"]; ok && !isNilValue(msg) {
			p.template = stringifyValue(msg)
			p.explicit = true
		}
		p.addEntries(args)
		p.props.delete("message")

	default:
		// Rule 4: stringable values become the template, no properties.
		// Aggregates have no usable string form and keep the fallback chain.
		if text, ok := stringifyPrimitive(first); ok {
			p.template = text
			p.explicit = true
		}
	}

	return p
}

// addEntries folds property entries into the parse. A map entry merges
// shallowly; any other non-nil entry is stored under its position in the
// entry list.
func (p *parsed) addEntries(entries []any) {
	for i, e := range entries {
		if isNilValue(e) {
			continue
		}
		switch v := e.(type) {
		case map[string]any:
			p.props.mergeMap(v)
		default:
			p.props.set(strconv.Itoa(i), v)
		}
	}
}

func isString(v any) bool {
	_, ok := v.(string)
	return ok
}

// isNilValue reports whether v is nil or a nil pointer, map, slice, channel,
// or function boxed in a non-nil interface, the shape a typed nil takes when
// it travels through the error interface. Calling methods on such values
// dereferences a nil receiver, so the normalizer treats them all as nil.
func isNilValue(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

func stringifyValue(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// stringifyPrimitive renders a primitive or self-describing value (booleans,
// numerics, named strings, fmt.Stringer and error implementations) for use
// as a message template. ok is false for aggregate values, which have no
// usable string form and must fall back to the default message.
func stringifyPrimitive(v any) (text string, ok bool) {
	switch v.(type) {
	case fmt.Stringer, error:
		return fmt.Sprint(v), true
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128,
		reflect.String:
		return fmt.Sprint(v), true
	}
	return "", false
}

// asCause adapts an arbitrary cause value to the error interface. Errors
// pass through untouched; nil values, typed or not, stay nil; anything else
// is wrapped in a [*valueError] that preserves the original value.
func asCause(v any) error {
	if isNilValue(v) {
		return nil
	}
	if err, ok := v.(error); ok {
		return err
	}
	return &valueError{value: v}
}

// valueError adapts a non-error cause value (a string, a number, a foreign
// struct) to the error interface.
type valueError struct {
	value any
}

func (v *valueError) Error() string {
	return fmt.Sprint(v.value)
}

// Value returns the original cause value.
func (v *valueError) Value() any {
	return v.value
}

// causeMessage returns the message of a cause for template fallback: the
// rendered message for errors that expose one, the Error() text otherwise.
func causeMessage(err error) string {
	if m, ok := err.(interface{ Message() string }); ok {
		return m.Message()
	}
	return err.Error()
}
