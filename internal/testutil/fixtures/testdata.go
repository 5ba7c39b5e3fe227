// Package fixtures provides shared test data constants for the therror
// test suite.
//
// Using common constants for catalog documents and type names prevents
// magic strings in tests and ensures consistency across packages.
package fixtures

// Standard identity values used across catalog and integration tests.
const (
	// Namespace is the default catalog namespace for unit tests.
	Namespace = "Accounts"

	// TypeName is the default error type name for unit tests.
	TypeName = "UserNotFound"

	// AltTypeName is a second type name for tests requiring two entries.
	AltTypeName = "PasswordExpired"
)

// Standard catalog documents used in loader tests.
const (
	// CatalogYAML is a minimal valid YAML catalog for tests. It declares
	// one fully faceted entry and one bare entry.
	CatalogYAML = `namespace: Accounts
errors:
  - name: UserNotFound
    status: 404
    level: info
    message: "User ${id} not found"
    notify: true
    properties:
      source: accounts
  - name: PasswordExpired
    status: 403
`

	// CatalogJSON is a minimal valid JSON catalog for tests.
	CatalogJSON = `{
  "namespace": "Billing",
  "errors": [
    {"name": "PaymentRequired", "status": 402, "message": "payment required"}
  ]
}`
)
