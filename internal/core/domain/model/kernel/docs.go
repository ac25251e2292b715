// Package kernel contains value objects shared across the domain model:
// entity identifiers and the priority tiers used to order listings and
// transport requests.
//
// Value objects here are immutable, validated at construction, and safe to
// copy. Aggregates in the hospital, driver, listing, and order packages
// build on them.
package kernel
