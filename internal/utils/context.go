// Package utils provides general-purpose helper utilities
// used across different parts of the client.
// Includes tools for working with context, type-safe keys, HTTP client
// initialization, JWT claim extraction and identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// OperationCtxKey is the key under which the name of the running sync
// operation (e.g. "fetch_all_notes") is stored.
var OperationCtxKey = contextKey("operation")

// WithOperation returns a copy of ctx carrying the operation name.
func WithOperation(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, OperationCtxKey, name)
}

// GetOperationFromContext retrieves the operation name from the context.
//
// Returns the name and an ok flag:
//   - ok == true:  value is found and is a non-empty string
//   - ok == false: value is missing or has an unexpected type
func GetOperationFromContext(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(OperationCtxKey).(string)
	return name, ok && name != ""
}
