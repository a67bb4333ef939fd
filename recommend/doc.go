// Package recommend provides the top-level loadout recommendation flow.
//
// The Recommender wires the pieces together per query: fetch or build the
// catalog index through the cache, parse the free text, match the candidate
// item set against the archetype registry, and assemble complete builds.
// When no archetype survives its item threshold, the result carries ranked
// item-level hits and suggestions for broadening the query instead — an
// empty outcome is representable, never an error.
package recommend
