// Package merge resolves face references against a base attribute vector.
//
// A reference may name a face, carry a literal property list, use the legacy
// single-color shorthand, or list other references with earlier elements
// taking precedence. Named lookups follow aliases, honor the remapping
// table, and recursively merge inherited faces; a caller-held stack of merge
// points detects inheritance and remapping cycles without any shared state,
// so independent resolutions never interfere.
package merge
