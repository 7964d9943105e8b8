package builder

import (
	"math"

	"github.com/c360studio/systematics/entry"
	"github.com/c360studio/systematics/identifier"
)

// Layout places every location of a system in space.
type Layout interface {
	Point(loc identifier.Loc) entry.Point3D
}

// LayoutFunc adapts a function to Layout.
type LayoutFunc func(loc identifier.Loc) entry.Point3D

// Point calls f(loc).
func (f LayoutFunc) Point(loc identifier.Loc) entry.Point3D { return f(loc) }

// Regular places order 1 at the origin, order 2 on the x axis at -1 and 1, and
// orders 3 and above on the unit circle at angle 2πk/n for k = position-1.
var Regular Layout = LayoutFunc(regular)

func regular(loc identifier.Loc) entry.Point3D {
	n := loc.Order()
	switch n {
	case 1:
		return entry.Point3D{}
	case 2:
		if loc.Position() == 1 {
			return entry.Point3D{X: -1}
		}
		return entry.Point3D{X: 1}
	}
	angle := 2 * math.Pi * float64(loc.Position()-1) / float64(n)
	return entry.Point3D{X: math.Cos(angle), Y: math.Sin(angle)}
}
