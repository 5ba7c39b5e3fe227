// Package serialize renders error values into human-readable strings and
// structured plain objects suitable for logging pipelines and JSON encoding.
//
// The serializers accept any error and discover richer detail through small
// optional interfaces (a display name, a rendered message, an explicit cause,
// enumerable properties, a captured stack trace). Errors that implement none
// of them are still serialized from their Error() text, so the package works
// on arbitrary error chains, not only on errors built by this module.
package serialize

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"runtime"
	"sort"
	"strings"
)

// Optional capabilities discovered on serialized errors.
type (
	namer       interface{ Name() string }
	messager    interface{ Message() string }
	causer      interface{ Cause() error }
	propertied  interface{ Properties() map[string]any }
	keyed       interface{ Keys() []string }
	stackTracer interface{ StackTrace() []runtime.Frame }
)

// maxChainDepth bounds cause-chain traversal so a cyclic chain cannot hang
// serialization.
const maxChainDepth = 32

// DisplayString renders err as a multi-line, human-readable report: the
// error's name and message, its properties, every cause in the chain, and
// the stack trace of the outermost error that captured one.
//
// Output shape:
//
//	OrderService.NotFound: order 42 not found
//	    id: 42
//	Caused by: sql: no rows in result set
//
//	Stack trace:
//	    at pkg/shop.LoadOrder (orders.go:87)
//	    at pkg/shop.Handler (handler.go:31)
//
// Returns an empty string for a nil error.
func DisplayString(err error) string {
	if err == nil {
		return ""
	}

	var b strings.Builder
	for i, e := range chain(err) {
		if i > 0 {
			b.WriteString("Caused by: ")
		}
		b.WriteString(describe(e))
		b.WriteByte('\n')
		writeProperties(&b, e)
	}

	if frames := stackOf(err); len(frames) > 0 {
		b.WriteString("\nStack trace:\n")
		for _, f := range frames {
			fmt.Fprintf(&b, "    at %s (%s:%d)\n", f.Function, f.File, f.Line)
		}
	}

	return strings.TrimSuffix(b.String(), "\n")
}

// PlainObject converts err into a structured map with the error name and
// message, its properties (when present), and the cause chain nested as an
// array under "causes". Stack traces are excluded: the plain form is meant
// for structured sinks where frame data is noise.
//
// Returns nil for a nil error.
func PlainObject(err error) map[string]any {
	es := chain(err)
	if len(es) == 0 {
		return nil
	}

	obj := plainOne(es[0])
	if rest := es[1:]; len(rest) > 0 {
		causes := make([]any, 0, len(rest))
		for _, e := range rest {
			causes = append(causes, plainOne(e))
		}
		obj["causes"] = causes
	}
	return obj
}

// ToJSON marshals the [PlainObject] form of err. Returns nil for a nil
// error, and an encoding error if a property value cannot be represented
// in JSON.
func ToJSON(err error) ([]byte, error) {
	obj := PlainObject(err)
	if obj == nil {
		return nil, nil
	}
	return json.Marshal(obj)
}

// chain returns err followed by its causes, outermost first, bounded by
// maxChainDepth. Causes are discovered through Cause() when available and
// errors.Unwrap otherwise. A nil-valued error (a nil concrete type boxed in
// a non-nil interface) ends the chain: its methods would dereference a nil
// receiver, so traversal must never touch it.
func chain(err error) []error {
	var out []error
	for err != nil && !isNilValued(err) && len(out) < maxChainDepth {
		out = append(out, err)
		err = causeOf(err)
	}
	return out
}

// isNilValued reports whether err holds a nil concrete value behind a
// non-nil interface.
func isNilValued(err error) bool {
	switch v := reflect.ValueOf(err); v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}

func causeOf(err error) error {
	if c, ok := err.(causer); ok {
		return c.Cause()
	}
	return errors.Unwrap(err)
}

// describe returns "Name: message" for named errors and the plain Error()
// text otherwise.
func describe(err error) string {
	name := ""
	if n, ok := err.(namer); ok {
		name = n.Name()
	}
	msg := err.Error()
	if m, ok := err.(messager); ok {
		msg = m.Message()
	}
	if name == "" {
		return msg
	}
	return name + ": " + msg
}

func writeProperties(b *strings.Builder, err error) {
	p, ok := err.(propertied)
	if !ok {
		return
	}
	props := p.Properties()
	if len(props) == 0 {
		return
	}
	for _, k := range propertyKeys(err, props) {
		fmt.Fprintf(b, "    %s: %v\n", k, props[k])
	}
}

// propertyKeys returns property names in the error's declared insertion
// order when it exposes one, falling back to lexical order so the display
// form stays deterministic.
func propertyKeys(err error, props map[string]any) []string {
	if k, ok := err.(keyed); ok {
		return k.Keys()
	}
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// stackOf returns the stack trace of the outermost error in the chain that
// captured one.
func stackOf(err error) []runtime.Frame {
	for _, e := range chain(err) {
		if st, ok := e.(stackTracer); ok {
			if frames := st.StackTrace(); len(frames) > 0 {
				return frames
			}
		}
	}
	return nil
}

func plainOne(err error) map[string]any {
	name := "Error"
	if n, ok := err.(namer); ok && n.Name() != "" {
		name = n.Name()
	}
	msg := err.Error()
	if m, ok := err.(messager); ok {
		msg = m.Message()
	}

	obj := map[string]any{
		"error":   name,
		"message": msg,
	}
	if p, ok := err.(propertied); ok {
		if props := p.Properties(); len(props) > 0 {
			obj["properties"] = props
		}
	}
	return obj
}
