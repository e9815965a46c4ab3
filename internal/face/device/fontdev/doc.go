// Package fontdev implements the font resolver contract on top of the
// system font index from go-text/typesetting. A handle reports the
// properties the query matched so unspecified face attributes can be filled
// from the font actually chosen.
package fontdev
