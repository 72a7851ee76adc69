// Package snapshot serializes trajectories and animation frames into a
// canonical JSON form and fingerprints them.
//
// Canonical form:
//   - Object keys sorted by UTF-16 code units
//   - No HTML escaping
//   - Strings NFC normalized (titles carry θ and °)
//   - Floats rounded to Precision significant digits, -0 written as 0
//   - NaN, ±Inf and null are rejected
//
// Identical inputs always produce byte-identical output, which makes the
// form suitable for golden files and for content fingerprints.
package snapshot
