package angle

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

const twoPi = 2 * math.Pi

// Mod2Pi maps an angle into [0, 2π). A negative exact multiple of 2π maps to
// 2π rather than 0; callers treat the two as the same direction.
func Mod2Pi(a float64) float64 {
	if a >= 0 {
		return math.Mod(a, twoPi)
	}
	return twoPi + math.Mod(a, twoPi)
}

// VectorAngle returns the direction of v in [0, 2π).
//
// The branch boundaries matter: the positive y axis belongs to x == 0, the
// positive x axis to the x > 0, y >= 0 branch.
func VectorAngle(v r2.Vec) float64 {
	x, y := v.X, v.Y
	if x == 0 {
		if y >= 0 {
			return math.Pi / 2
		}
		return 3 * math.Pi / 2
	}
	if x > 0 {
		if y >= 0 {
			return math.Asin(y / math.Sqrt(x*x+y*y))
		}
		return twoPi + math.Asin(y/math.Sqrt(x*x+y*y))
	}
	// x < 0
	return math.Pi - math.Asin(y/math.Sqrt(x*x+y*y))
}

// RotationAngle is the counter-clockwise rotation, in [0, 2π), taking
// direction a1 onto direction a2
func RotationAngle(a1, a2 float64) float64 {
	angle1 := Mod2Pi(a1)
	angle2 := Mod2Pi(a2)
	if angle1 <= angle2 {
		return angle2 - angle1
	}
	return angle2 + twoPi - angle1
}

// IsAngleBetween reports whether a lies on the arc from a1 to a2. The arc is
// swept counter-clockwise when a1 < a2 (raw values, before reduction) and
// includes a1 but not a2. Otherwise it is swept clockwise and includes a1 but
// not a2 as well.
func IsAngleBetween(a, a1, a2 float64) bool {
	if a1 < a2 {
		return isAngleBetweenCCW(a, a1, a2)
	}
	return isAngleBetweenCW(a, a1, a2)
}

func isAngleBetweenCCW(a, a1, a2 float64) bool {
	angle := Mod2Pi(a)
	angle1 := Mod2Pi(a1)
	angle2 := Mod2Pi(a2)

	if angle1 <= angle2 {
		return angle >= angle1 && angle < angle2
	}
	return angle < angle2 || angle >= angle1
}

func isAngleBetweenCW(a, a1, a2 float64) bool {
	angle := Mod2Pi(a)
	angle1 := Mod2Pi(a1)
	angle2 := Mod2Pi(a2)

	if angle2 <= angle1 {
		return angle2 < angle && angle <= angle1
	}
	return angle <= angle1 || angle > angle2
}

// VectorVectorAngle returns the signed angle in (-π, π] that rotates v1 onto
// the direction of v2
func VectorVectorAngle(v1, v2 r2.Vec) float64 {
	cos := r2.Dot(v1, v2)
	sin := r2.Cross(v1, v2)
	angle := VectorAngle(r2.Vec{X: cos, Y: sin})
	if angle > math.Pi {
		angle -= twoPi
	}
	return angle
}

// Rotate90 rotates v a quarter turn counter-clockwise
func Rotate90(v r2.Vec) r2.Vec {
	return r2.Vec{X: -v.Y, Y: v.X}
}
