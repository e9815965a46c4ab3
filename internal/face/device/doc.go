// Package device defines the contracts a surface's display backend
// implements: color resolution, font loading, capability probing, and the
// input guard bracketing resource mutation. Concrete terminal and font
// system backends live in the termdev and fontdev subpackages.
package device
