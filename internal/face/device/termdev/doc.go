// Package termdev implements the device contracts for terminal displays.
// Colors resolve through tcell's name table; palette displays pick the
// nearest entry by perceptual distance. Capabilities come from a declared
// set, since terminals cannot be probed attribute by attribute.
package termdev
