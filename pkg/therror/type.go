package therror

import (
	"strings"

	"google.golang.org/grpc/codes"

	"github.com/therror/therror/pkg/notify"
)

// Type describes a composed error type: a chain of facet nodes ending at the
// base type. Each node contributes at most one facet's configuration; facet
// constructors return a new node linked to their base, so Types are
// immutable and safe to share across goroutines.
//
// Resolution walks the chain from the most-derived node toward the base:
// the node nearest the head wins for name, level, status code, and default
// template, while namespace prefixes accumulate across the whole chain and
// preset properties merge with the more derived node overriding.
type Type struct {
	parent *Type

	// name is the declared subtype name ([Define]); empty for facet nodes.
	name string

	// capability is the behavioral flag contributed by this node; empty for
	// nodes that only carry configuration ([Define], [WithMessage],
	// [WithProperties]).
	capability Capability

	// namespace is this node's identity prefix ([Namespaced]).
	namespace string

	// level is this node's severity ([Loggable]); "" when unset.
	level Level

	// status is this node's HTTP status code ([HTTP]), valid when hasStatus.
	status    int
	hasStatus bool

	// grpcCode is this node's explicit gRPC code ([GRPC]), valid when
	// hasGRPC.
	grpcCode codes.Code
	hasGRPC  bool

	// template is this node's default message template ([WithMessage] and
	// [HTTP]), valid when hasTemplate.
	template    string
	hasTemplate bool

	// presets are per-type properties merged into every instance
	// ([WithProperties]).
	presets fields

	// bus is the explicit notification bus ([NotificatorBus]); nil means
	// the process-wide bus, resolved at publish time.
	bus *notify.Bus
}

// baseOf resolves the optional trailing base parameter of facet
// constructors, defaulting to the base type.
func baseOf(base []*Type) *Type {
	if len(base) > 0 && base[0] != nil {
		return base[0]
	}
	return root
}

// Name returns the resolved display name: namespace prefixes joined with
// "." followed by the nearest declared subtype name. Falls back to the
// literal "Therror" when the chain declares neither.
func (t *Type) Name() string {
	name := t.declaredName()
	ns := strings.Join(t.namespaces(), ".")

	switch {
	case ns != "" && name != "":
		return ns + "." + name
	case ns != "":
		return ns
	case name != "":
		return name
	default:
		return "Therror"
	}
}

// Namespace returns the outermost namespace prefix, or "" when the chain
// has no [Namespaced] facet.
func (t *Type) Namespace() string {
	for n := t; n != nil; n = n.parent {
		if n.namespace != "" {
			return n.namespace
		}
	}
	return ""
}

// Level returns the configured severity, resolving to [LevelError] when no
// [Loggable] facet set one.
func (t *Type) Level() Level {
	for n := t; n != nil; n = n.parent {
		if n.level != "" {
			return n.level
		}
	}
	return LevelError
}

// StatusCode returns the configured HTTP status code. ok is false when the
// chain has no [HTTP] facet.
func (t *Type) StatusCode() (code int, ok bool) {
	for n := t; n != nil; n = n.parent {
		if n.hasStatus {
			return n.status, true
		}
	}
	return 0, false
}

// HasCapability reports whether any node in the chain contributes the given
// capability.
func (t *Type) HasCapability(c Capability) bool {
	for n := t; n != nil; n = n.parent {
		if n.capability == c && c != "" {
			return true
		}
	}
	return false
}

// Capabilities returns the distinct capabilities contributed by the chain,
// ordered from the most-derived node toward the base.
func (t *Type) Capabilities() []Capability {
	var out []Capability
	seen := make(map[Capability]bool)
	for n := t; n != nil; n = n.parent {
		if n.capability == "" || seen[n.capability] {
			continue
		}
		seen[n.capability] = true
		out = append(out, n.capability)
	}
	return out
}

// declaredName returns the nearest declared subtype name, or "".
func (t *Type) declaredName() string {
	for n := t; n != nil; n = n.parent {
		if n.name != "" {
			return n.name
		}
	}
	return ""
}

// namespaces collects namespace prefixes from the most-derived node toward
// the base, so the outermost facet ends up leftmost in the identity.
func (t *Type) namespaces() []string {
	var out []string
	for n := t; n != nil; n = n.parent {
		if n.namespace != "" {
			out = append(out, n.namespace)
		}
	}
	return out
}

// resolveGRPC returns the nearest explicit gRPC code.
func (t *Type) resolveGRPC() (codes.Code, bool) {
	for n := t; n != nil; n = n.parent {
		if n.hasGRPC {
			return n.grpcCode, true
		}
	}
	return codes.OK, false
}

// resolveTemplate returns the nearest default message template.
func (t *Type) resolveTemplate() (string, bool) {
	for n := t; n != nil; n = n.parent {
		if n.hasTemplate {
			return n.template, true
		}
	}
	return "", false
}

// resolvePresets merges preset properties from the base outward, so the
// more derived node wins on key collision.
func (t *Type) resolvePresets() fields {
	var chain []*Type
	for n := t; n != nil; n = n.parent {
		if len(n.presets) > 0 {
			chain = append(chain, n)
		}
	}

	var out fields
	for i := len(chain) - 1; i >= 0; i-- {
		for _, p := range chain[i].presets {
			out.set(p.key, p.val)
		}
	}
	return out
}

// descendsFrom reports whether target appears in the chain.
func (t *Type) descendsFrom(target *Type) bool {
	for n := t; n != nil; n = n.parent {
		if n == target {
			return true
		}
	}
	return false
}

// publishCreate publishes e once per [Notificator] node in the chain, from
// the base outward so the outermost facet publishes last. Each node's bus is
// resolved at publish time; nodes without an explicit bus use the
// process-wide one.
func (t *Type) publishCreate(e *Error) {
	var nodes []*Type
	for n := t; n != nil; n = n.parent {
		if n.capability == CapabilityNotify {
			nodes = append(nodes, n)
		}
	}
	for i := len(nodes) - 1; i >= 0; i-- {
		bus := nodes[i].bus
		if bus == nil {
			bus = notify.Default()
		}
		bus.Publish(notify.TopicCreate, e)
	}
}
