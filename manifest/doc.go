// Package manifest reads item catalog manifests from disk.
//
// A manifest document is a JSON file carrying a catalog version string and a
// map of item hash to item definition, shaped like the upstream inventory
// item component. Load converts the document into raw item records suitable
// for the catalog indexer; no classification happens here.
package manifest
