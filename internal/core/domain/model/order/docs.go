// Package order contains the order aggregate and the order status model: the
// single authoritative mapping from a raw status code to its display label,
// presentation category, and role-conditional transition rules. Every view
// that renders or changes an order status consumes this package instead of
// keeping its own mapping.
//
// The package is pure: it never calls external services. Approved transitions
// are applied by the surrounding use cases, which also orchestrate the refund
// side effect planned by the domain services package.
package order
