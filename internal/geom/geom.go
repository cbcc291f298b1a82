// Package geom holds the polygon transforms used by the demo.
//
// Every transform other than Translate pivots about the polygon's centroid,
// recomputed on each call, so chained transforms always act on the shape's
// current center. All functions return a fresh Polygon and never modify
// their input.
//
// Coordinates are screen coordinates: y grows downward.
package geom

import (
	"fmt"
	"math"
	"strings"
)

// Point is a position in world coordinates.
type Point struct {
	X, Y float64
}

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

func (p Point) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", p.X, p.Y)
}

// Polygon is an ordered vertex list. Order defines the edges.
type Polygon []Point

// Triangle is the shape the demo starts with.
func Triangle() Polygon {
	return Polygon{{300, 300}, {350, 200}, {400, 300}}
}

// Clone returns a copy that shares no storage with p.
func (p Polygon) Clone() Polygon {
	if p == nil {
		return nil
	}
	out := make(Polygon, len(p))
	copy(out, p)
	return out
}

// Centroid is the mean of the vertices. An empty polygon has centroid (0, 0).
func (p Polygon) Centroid() Point {
	if len(p) == 0 {
		return Point{}
	}
	var sx, sy float64
	for _, pt := range p {
		sx += pt.X
		sy += pt.Y
	}
	n := float64(len(p))
	return Point{sx / n, sy / n}
}

func (p Polygon) String() string {
	parts := make([]string, len(p))
	for i, pt := range p {
		parts[i] = pt.String()
	}
	return strings.Join(parts, " ")
}

// mapAbout applies f to each vertex offset from the centroid.
func (p Polygon) mapAbout(f func(d Point) Point) Polygon {
	c := p.Centroid()
	out := make(Polygon, len(p))
	for i, pt := range p {
		out[i] = f(pt.Sub(c)).Add(c)
	}
	return out
}

// Translate shifts every vertex by (tx, ty).
func Translate(p Polygon, tx, ty float64) Polygon {
	out := make(Polygon, len(p))
	for i, pt := range p {
		out[i] = Point{pt.X + tx, pt.Y + ty}
	}
	return out
}

// Scale scales about the centroid. Zero or negative factors are allowed.
func Scale(p Polygon, sx, sy float64) Polygon {
	return p.mapAbout(func(d Point) Point {
		return Point{d.X * sx, d.Y * sy}
	})
}

// Rotate rotates about the centroid by deg degrees. Positive angles turn +x
// toward +y, which reads as clockwise on a y-down screen.
func Rotate(p Polygon, deg float64) Polygon {
	sin, cos := math.Sincos(deg * math.Pi / 180)
	return p.mapAbout(func(d Point) Point {
		return Point{d.X*cos - d.Y*sin, d.X*sin + d.Y*cos}
	})
}

// ReflectX mirrors across the horizontal line through the centroid.
func ReflectX(p Polygon) Polygon {
	c := p.Centroid()
	out := make(Polygon, len(p))
	for i, pt := range p {
		out[i] = Point{pt.X, 2*c.Y - pt.Y}
	}
	return out
}

// ReflectY mirrors across the vertical line through the centroid.
func ReflectY(p Polygon) Polygon {
	c := p.Centroid()
	out := make(Polygon, len(p))
	for i, pt := range p {
		out[i] = Point{2*c.X - pt.X, pt.Y}
	}
	return out
}

// Shear maps each centroid offset (dx, dy) to (dx + shx*dy, dy + shy*dx).
func Shear(p Polygon, shx, shy float64) Polygon {
	return p.mapAbout(func(d Point) Point {
		return Point{d.X + shx*d.Y, d.Y + shy*d.X}
	})
}

// Lerp blends a and b vertex by vertex; t=0 gives a and t=1 gives b.
// The polygons must have the same length.
func Lerp(a, b Polygon, t float64) Polygon {
	out := make(Polygon, len(a))
	for i := range a {
		out[i] = Point{
			a[i].X + (b[i].X-a[i].X)*t,
			a[i].Y + (b[i].Y-a[i].Y)*t,
		}
	}
	return out
}

// Frames returns the n intermediate polygons of a transition from a to b,
// at progress 0, 1/n, ... (n-1)/n. The end state b itself is not included.
func Frames(a, b Polygon, n int) []Polygon {
	if n <= 0 {
		return nil
	}
	frames := make([]Polygon, n)
	for i := range frames {
		frames[i] = Lerp(a, b, float64(i)/float64(n))
	}
	return frames
}

// Equal reports whether a and b have the same length and every pair of
// vertices differs by at most tol on each axis.
func Equal(a, b Polygon, tol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i].X-b[i].X) > tol || math.Abs(a[i].Y-b[i].Y) > tol {
			return false
		}
	}
	return true
}

// Contains reports whether pt lies inside p using the even-odd rule.
func (p Polygon) Contains(pt Point) bool {
	in := false
	for i, j := 0, len(p)-1; i < len(p); j, i = i, i+1 {
		a, b := p[i], p[j]
		if (a.Y > pt.Y) != (b.Y > pt.Y) &&
			pt.X < (b.X-a.X)*(pt.Y-a.Y)/(b.Y-a.Y)+a.X {
			in = !in
		}
	}
	return in
}

// Bounds returns the axis-aligned bounding box of p.
func (p Polygon) Bounds() (min, max Point) {
	if len(p) == 0 {
		return
	}
	min, max = p[0], p[0]
	for _, pt := range p[1:] {
		min.X = math.Min(min.X, pt.X)
		min.Y = math.Min(min.Y, pt.Y)
		max.X = math.Max(max.X, pt.X)
		max.Y = math.Max(max.Y, pt.Y)
	}
	return
}
