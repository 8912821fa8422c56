// Package services contains stateless domain services that work across
// aggregates: planning status transitions together with their refund side
// effect, and mapping session capability flags onto transition roles.
package services
