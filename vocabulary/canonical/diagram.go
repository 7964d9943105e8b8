package canonical

import (
	"math"

	"github.com/c360studio/systematics/entry"
	"github.com/c360studio/systematics/identifier"
)

// diagram holds the hand-placed points of the traditional system diagrams. Orders
// 1-2 match the regular layout; from order 3 on positions are placed so that the
// canonical terms sit where the diagrams draw them.
var diagram = map[int][][2]float64{
	1: {{0, 0}},
	2: {{-1, 0}, {1, 0}},
	3: {{0, 1}, {0, -1}, {1, 0}},
	4: {{0, 1}, {0, -1}, {1, 0}, {-1, 0}},
	5: {{-0.75, 0}, {1, -0.75}, {0, 0.5}, {0, -0.5}, {1, 0.75}},
	6: {{-0.866, -0.5}, {0.866, -0.5}, {0, 1}, {-0.866, 0.5}, {0.866, 0.5}, {0, -1}},
	7: {
		{0, 1}, {-0.433884, -0.900969}, {0.974370, -0.222521}, {0.781831, 0.623489},
		{0.433884, -0.900969}, {-0.974370, -0.222521}, {-0.781831, 0.623489},
	},
	8: {
		{-math.Sqrt2 / 2, math.Sqrt2 / 2}, {math.Sqrt2 / 2, -math.Sqrt2 / 2},
		{math.Sqrt2 / 2, math.Sqrt2 / 2}, {-math.Sqrt2 / 2, -math.Sqrt2 / 2},
		{0, 1}, {1, 0}, {-1, 0}, {0, -1},
	},
	9: {
		{-0.64278760968, 0.76604444311}, {0.86602540378, -0.5}, {0.64278760968, 0.76604444311},
		{-0.34202014333, -0.93969262079}, {0, 1}, {0.98480775301, 0.17364817767},
		{-0.98480775301, 0.17364817767}, {0.34202014333, -0.93969262079}, {-0.86602540378, -0.5},
	},
	10: {
		{-0.80901699437, 0.58778525229}, {0.80901699437, -0.58778525229}, {0.30901699437, 0.95105651630},
		{-0.30901699437, -0.95105651630}, {-0.30901699437, 0.95105651630}, {0.80901699437, 0.58778525229},
		{-1, 0}, {0.30901699437, -0.95105651630}, {1, 0}, {-0.80901699437, -0.58778525229},
	},
	11: {
		{-0.909632, 0.415415}, {0.755750, -0.654861}, {0.54064081745, 0.84125353283},
		{-0.281733, -0.959493}, {-0.54064081745, 0.84125353283}, {0.909632, 0.415415},
		{-0.989821, -0.142315}, {0.281733, -0.959493}, {0.989821, -0.142315},
		{-0.755750, -0.654861}, {0, 1},
	},
	12: {
		{-0.5, 0.86602540378}, {0.86602540378, -0.5}, {0.86602540378, 0.5},
		{-0.86602540378, -0.5}, {1, 0}, {0.5, 0.86602540378},
		{0, -1}, {-0.5, -0.86602540378}, {0, 1},
		{0.5, -0.86602540378}, {-1, 0}, {-0.86602540378, 0.5},
	},
}

// Diagram returns the point of loc in the traditional diagram of its order.
func Diagram(loc identifier.Loc) entry.Point3D {
	p := diagram[loc.Order()][loc.Position()-1]
	return entry.Point3D{X: p[0], Y: p[1]}
}
