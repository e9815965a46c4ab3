// Package realize turns fully specified attribute vectors into device-ready
// faces and caches them per surface. The cache is keyed by an attribute
// hash with bucket chains, hands out dense stable ids, and is invalidated
// only as a whole: any named-face change throws away every realized face
// rather than tracking which entries depended on the name.
package realize
