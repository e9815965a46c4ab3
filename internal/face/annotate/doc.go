// Package annotate supplies the face references active at buffer
// positions. A Source is anything that can answer "which faces apply here,
// and where does that answer change next"; Store is the span-based
// implementation used by themes and tests.
package annotate
