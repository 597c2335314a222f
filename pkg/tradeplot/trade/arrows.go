package trade

import (
	"math"

	"github.com/ukaji3/tradeplot-go/pkg/tradeplot/models"
)

// Point is a 2D position in figure units.
type Point struct {
	X, Y float64
}

// Arrow is a sampled curved arrow between two countries.
type Arrow struct {
	// Path holds points along the curve, from start to end inclusive.
	Path []Point
	// Control is the quadratic curve control point.
	Control Point
	// HeadAngle is the direction of the curve at its end, in radians.
	HeadAngle float64
}

// FlowWidth maps a flow linearly onto [minWidth, maxWidth] relative to maxFlow.
func FlowWidth(flow, maxFlow, minWidth, maxWidth float64) float64 {
	if maxFlow == 0 {
		return minWidth
	}
	return flow/maxFlow*(maxWidth-minWidth) + minWidth
}

// MaxFlow returns the largest finite off-diagonal flow, or 0.
func MaxFlow(flows [][]float64) float64 {
	m := 0.0
	for i, row := range flows {
		for j, v := range row {
			if i == j || math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			if v > m {
				m = v
			}
		}
	}
	return m
}

// CurvedArrow bends the segment from a to b by strength times its normal and
// samples the resulting quadratic curve at steps+1 points.
func CurvedArrow(a, b models.Country, strength float64, steps int) Arrow {
	if steps < 1 {
		steps = 1
	}
	midX := (a.X + b.X) / 2
	midY := (a.Y + b.Y) / 2
	dx := b.X - a.X
	dy := b.Y - a.Y
	ctrl := Point{X: midX - dy*strength, Y: midY + dx*strength}

	path := make([]Point, 0, steps+1)
	for k := 0; k <= steps; k++ {
		t := float64(k) / float64(steps)
		u := 1 - t
		path = append(path, Point{
			X: u*u*a.X + 2*u*t*ctrl.X + t*t*b.X,
			Y: u*u*a.Y + 2*u*t*ctrl.Y + t*t*b.Y,
		})
	}

	return Arrow{
		Path:      path,
		Control:   ctrl,
		HeadAngle: math.Atan2(b.Y-ctrl.Y, b.X-ctrl.X),
	}
}

// HeadPoints returns the two barb tips of an arrow head of the given length
// and width at tip, pointing along angle.
func HeadPoints(tip Point, angle, length, width float64) (Point, Point) {
	cos, sin := math.Cos(angle), math.Sin(angle)
	back := Point{X: tip.X - length*cos, Y: tip.Y - length*sin}
	half := width / 2
	return Point{X: back.X - half*sin, Y: back.Y + half*cos},
		Point{X: back.X + half*sin, Y: back.Y - half*cos}
}
