// Package query turns free loadout-request text into a structured intent
// record.
//
// Resolution runs multi-word phrases (weapon types, exotic names from the
// live catalog index) before single tokens, folds aliases onto canonical
// entity names, extracts numeric stat targets, and scores a deterministic
// confidence in [0,1]. Unresolved entities take explicit defaults so
// downstream matching never special-cases missing values.
package query
