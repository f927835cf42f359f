package vec

import "errors"

// ErrParallelVectors indicates an orthonormal basis was requested from
// two parallel (or near-parallel) vectors.
var ErrParallelVectors = errors.New("vec: cannot build orthonormal basis from parallel vectors")

// OrthonormalBasis constructs a right-handed orthonormal basis from two
// non-parallel vectors. The first basis vector is the direction of a; the
// second is derived from b with its component along a removed. Orientation
// code downstream of the particle core depends on this construction.
func OrthonormalBasis(a, b Vec3) (x, y, z Vec3, err error) {
	x = a.Normalized()
	z = x.Cross(b)
	if z.MagnitudeSquared() <= MinNormSquared {
		return Vec3{}, Vec3{}, Vec3{}, ErrParallelVectors
	}
	z.Normalize()
	y = z.Cross(x)
	return x, y, z, nil
}
