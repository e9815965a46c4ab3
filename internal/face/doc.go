// Package face ties the attribute, registry, merge, and realization layers
// together behind an explicit context object. An Environment owns the
// global face definitions shared by every display surface; each Surface
// owns its local overrides and a realization cache bound to one device.
package face
