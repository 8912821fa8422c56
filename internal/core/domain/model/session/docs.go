// Package session models the authenticated session and the access decisions
// derived from it. A Snapshot is an explicit capture of the session at one
// point in time; Decide evaluates it against a route requirement and yields
// exactly one of three outcomes: still loading, denied with a redirect
// target, or granted. Callers never read ambient session state mid-request.
package session
