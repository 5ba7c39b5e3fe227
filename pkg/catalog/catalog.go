// Package catalog loads declarative error type definitions from YAML or
// JSON documents and registers them as composed therror types. It lets
// services keep their error vocabulary in a reviewable document instead of
// scattering type composition across the codebase.
//
// # Document Format
//
//	namespace: Accounts            # optional, prefixes every entry
//	errors:
//	  - name: UserNotFound
//	    status: 404
//	    level: info
//	    message: "User ${id} not found"
//	    notify: true
//	    properties:
//	      source: accounts
//
// Every field except name is optional. Entries compose the corresponding
// facets: status maps to HTTP, level to Loggable, message to WithMessage,
// notify to Notificator, and properties to WithProperties.
//
// # Usage
//
//	reg, err := catalog.LoadFile("errors.yaml")
//	if err != nil {
//	    return err
//	}
//	UserNotFound := reg.MustGet("UserNotFound")
//	return UserNotFound.New(map[string]any{"id": id})
package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/therror/therror/pkg/therror"
)

// Typed failures returned by the loaders. Callers match them with
// [therror.HasType].
var (
	// InvalidDocument marks documents that cannot be parsed or declare no
	// error entries.
	InvalidDocument = therror.Define("InvalidDocument", therror.Namespaced("Catalog"))

	// InvalidDefinition marks a parseable document with a bad entry: a
	// malformed name, an unknown level, or an out-of-range status.
	InvalidDefinition = therror.Define("InvalidDefinition", therror.Namespaced("Catalog"))

	// UnreadableFile marks file-level failures: unreadable paths, traversal
	// sequences, and unsupported extensions.
	UnreadableFile = therror.Define("UnreadableFile", therror.Namespaced("Catalog"))
)

// identifierRe constrains entry names and namespaces to bare PascalCase-style
// identifiers, keeping the composed "Namespace.Name" identities unambiguous.
var identifierRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*$`)

// Definition is one error type entry in a catalog document.
type Definition struct {
	// Name is the type name. Required; must match ^[A-Za-z][A-Za-z0-9]*$.
	Name string `yaml:"name" json:"name"`

	// Status is the HTTP status code; 0 composes no HTTP facet.
	Status int `yaml:"status" json:"status"`

	// Level is the severity ("debug", "info", "warn", "error", "fatal");
	// empty composes no Loggable facet.
	Level string `yaml:"level" json:"level"`

	// Message is the default message template; empty composes no
	// WithMessage facet.
	Message string `yaml:"message" json:"message"`

	// Notify publishes every constructed instance on the notification bus.
	Notify bool `yaml:"notify" json:"notify"`

	// Properties are preset properties merged into every instance.
	Properties map[string]any `yaml:"properties" json:"properties"`
}

// Document is the top-level catalog structure.
type Document struct {
	// Namespace prefixes the identity of every entry; optional.
	Namespace string `yaml:"namespace" json:"namespace"`

	// Errors are the type definitions. At least one is required.
	Errors []Definition `yaml:"errors" json:"errors"`
}

// Registry holds the composed types of one loaded document, keyed by the
// entry name (without the namespace prefix). Registries are immutable after
// loading and safe to share across goroutines.
type Registry struct {
	types map[string]*therror.Type
}

// Get returns the composed type registered under name.
func (r *Registry) Get(name string) (*therror.Type, bool) {
	t, ok := r.types[name]
	return t, ok
}

// MustGet returns the composed type registered under name, panicking when it
// is absent. Use it at startup, where a missing catalog entry should prevent
// the application from starting.
func (r *Registry) MustGet(name string) *therror.Type {
	t, ok := r.types[name]
	if !ok {
		panic(fmt.Sprintf("catalog: no error type registered under %q", name))
	}
	return t
}

// Names returns the registered entry names in lexical order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Types returns a copy of the name to type mapping.
func (r *Registry) Types() map[string]*therror.Type {
	out := make(map[string]*therror.Type, len(r.types))
	for name, t := range r.types {
		out[name] = t
	}
	return out
}

// Load parses a catalog document from r and composes its entries into a
// [Registry]. The document is parsed as YAML; JSON documents also parse,
// being a YAML subset.
func Load(r io.Reader) (*Registry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, InvalidDocument.Wrap(err, "reading catalog document")
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, InvalidDocument.Wrap(err, "parsing catalog document")
	}
	return build(doc)
}

// LoadFile reads and parses a catalog file. The format is detected by
// extension: .yaml and .yml parse as YAML, .json as JSON. Unlike optional
// service configuration, a named catalog file must exist; a missing file is
// an error.
func LoadFile(path string) (*Registry, error) {
	if strings.Contains(path, "..") {
		return nil, UnreadableFile.New(
			"catalog path ${path} must not contain directory traversal sequences",
			map[string]any{"path": path})
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, UnreadableFile.Wrap(err, "reading catalog file ${path}",
			map[string]any{"path": path})
	}

	var doc Document
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, InvalidDocument.Wrap(err, "parsing YAML catalog ${path}",
				map[string]any{"path": path})
		}
	case ".json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, InvalidDocument.Wrap(err, "parsing JSON catalog ${path}",
				map[string]any{"path": path})
		}
	default:
		return nil, UnreadableFile.New(
			"unsupported catalog extension ${ext} (use .yaml, .yml, or .json)",
			map[string]any{"ext": ext, "path": path})
	}

	return build(doc)
}

// build validates the document and composes one type per entry.
func build(doc Document) (*Registry, error) {
	if len(doc.Errors) == 0 {
		return nil, InvalidDocument.New("catalog declares no error entries")
	}
	if doc.Namespace != "" && !identifierRe.MatchString(doc.Namespace) {
		return nil, InvalidDocument.New("invalid namespace ${namespace}",
			map[string]any{"namespace": doc.Namespace})
	}

	types := make(map[string]*therror.Type, len(doc.Errors))
	for _, def := range doc.Errors {
		if err := validateDefinition(def); err != nil {
			return nil, err
		}
		if _, dup := types[def.Name]; dup {
			return nil, InvalidDefinition.New("duplicate entry ${name}",
				map[string]any{"name": def.Name})
		}
		types[def.Name] = compose(doc.Namespace, def)
	}

	return &Registry{types: types}, nil
}

func validateDefinition(def Definition) error {
	if !identifierRe.MatchString(def.Name) {
		return InvalidDefinition.New("invalid entry name ${name}",
			map[string]any{"name": def.Name})
	}
	if def.Level != "" && !therror.Level(def.Level).Valid() {
		return InvalidDefinition.New("entry ${name} has unknown level ${level}",
			map[string]any{"name": def.Name, "level": def.Level})
	}
	if def.Status != 0 && (def.Status < 100 || def.Status > 599) {
		return InvalidDefinition.New("entry ${name} has out-of-range status ${status}",
			map[string]any{"name": def.Name, "status": def.Status})
	}
	return nil
}

// compose builds the facet chain for one entry. The order mirrors
// [therror.ServerError]: HTTP innermost, then properties, message, level,
// and notification outermost.
func compose(namespace string, def Definition) *therror.Type {
	base := therror.Base()
	if namespace != "" {
		base = therror.Namespaced(namespace)
	}

	t := base
	if def.Status != 0 {
		t = therror.HTTP(def.Status, t)
	}
	if len(def.Properties) > 0 {
		t = therror.WithProperties(def.Properties, t)
	}
	if def.Message != "" {
		t = therror.WithMessage(def.Message, t)
	}
	if def.Level != "" {
		t = therror.Loggable(therror.Level(def.Level), t)
	}
	if def.Notify {
		t = therror.Notificator(t)
	}
	return therror.Define(def.Name, t)
}
