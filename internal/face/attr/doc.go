// Package attr defines the face attribute vector: a fixed set of typed
// display attribute slots where each slot is either unspecified, explicitly
// ignoring a lower-priority default, or a concrete value.
//
// The package provides the pure data-model operations the rest of the face
// engine is built on: per-keyword validation, height merging, vector merging
// with inheritance hand-off, attribute equality, and the content hash used by
// the realization cache.
package attr
