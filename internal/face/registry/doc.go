// Package registry maintains named face definitions: per-scope tables of
// face name to attribute vector, a stable id assignment shared by all
// scopes, alias links with cycle-safe resolution, and the validated
// attribute-setting path that drives downstream cache invalidation via a
// style generation counter.
package registry
