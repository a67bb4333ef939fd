// Package synergy matches catalog items against build archetypes and scores
// candidate builds.
//
// Matching runs in three stages per archetype: a cheap keyword pre-filter
// against the query text, an item scan against the archetype's synergy tags
// and named exotics/mods, and a minimum-item threshold gate. Scoring is a
// bounded, capped formula over matched-item count, exotic count, and
// component diversity; the tuning constants live in Weights and are covered
// by tests. Results are deterministic: descending score, ties broken by
// archetype registration order.
package synergy
