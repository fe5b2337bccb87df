// Package pmath provides scalar, angle, statistics, vector, affine and
// ballistics helpers for games.
//
// Scalar helpers are generic over the built-in numeric kinds. Statistics are
// computed with [gonum] and treat an empty sample as zero unless the function
// returns an error. Angles are in radians throughout.
//
// [gonum]: https://www.gonum.org
package pmath
