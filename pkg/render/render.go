// Package render provides string template interpolation for error messages.
// Templates use ${name} placeholders resolved against a context map, with
// dotted paths (${user.id}) descending into nested maps.
//
// Rendering never fails: unresolved placeholders produce an empty string, and
// a malformed template (an unclosed placeholder) is returned verbatim. This
// matters because the primary consumer renders messages while handling a
// failure, and the rendering step must not become a secondary source of
// failure.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/valyala/fasttemplate"
)

// Placeholder delimiters. A template like "user ${id} not found" references
// the context key "id".
const (
	startTag = "${"
	endTag   = "}"
)

// Render interpolates the ${name} placeholders in template against ctx and
// returns the result.
//
// Resolution rules:
//   - An exact key match wins, even for keys containing dots.
//   - Otherwise a dotted placeholder (${a.b.c}) descends into nested
//     map[string]any values.
//   - Missing keys and nil values render as an empty string.
//
// A template with an unclosed placeholder is returned unchanged.
func Render(template string, ctx map[string]any) string {
	if !strings.Contains(template, startTag) {
		return template
	}

	t, err := fasttemplate.NewTemplate(template, startTag, endTag)
	if err != nil {
		// Unclosed placeholder. Rendering must not fail, so the raw
		// template is the result.
		return template
	}

	return t.ExecuteFuncString(func(w io.Writer, tag string) (int, error) {
		v, ok := lookup(ctx, strings.TrimSpace(tag))
		if !ok || v == nil {
			return 0, nil
		}
		return io.WriteString(w, stringify(v))
	})
}

// lookup resolves a placeholder path against the context. Exact matches take
// precedence over dotted descent so callers may use keys that contain dots.
func lookup(ctx map[string]any, path string) (any, bool) {
	if v, ok := ctx[path]; ok {
		return v, true
	}

	head, rest, found := strings.Cut(path, ".")
	if !found {
		return nil, false
	}

	child, ok := ctx[head]
	if !ok {
		return nil, false
	}
	childMap, ok := child.(map[string]any)
	if !ok {
		return nil, false
	}
	return lookup(childMap, rest)
}

func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
