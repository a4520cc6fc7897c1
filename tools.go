//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// - github.com/matryer/moq: mocks behind the //go:generate directives in
//   service and transport tests.
// - github.com/pressly/goose/v3/cmd/goose: ad hoc inspection of the
//   migrations/ directory (the service itself applies them via cmd/migrate
//   or on start).
