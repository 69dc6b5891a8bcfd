// Package entity defines the domain entities of the card canvas.
package entity

import "math"

// Point is a location in either screen or canvas space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Distance returns the euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Midpoint returns the point halfway between p and q.
func (p Point) Midpoint(q Point) Point {
	return Point{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2}
}

// Size is a width/height pair in canvas units.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Bounds is an axis-aligned rectangle.
// Right and Bottom are always Left+Width and Top+Height.
type Bounds struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
	Width  float64
	Height float64
}

// BoundsOf builds the rectangle covering a position and size.
func BoundsOf(pos Point, size Size) Bounds {
	return Bounds{
		Left:   pos.X,
		Top:    pos.Y,
		Right:  pos.X + size.Width,
		Bottom: pos.Y + size.Height,
		Width:  size.Width,
		Height: size.Height,
	}
}

// Center returns the center point of the rectangle.
func (b Bounds) Center() Point {
	return Point{X: b.Left + b.Width/2, Y: b.Top + b.Height/2}
}

// Contains reports whether p lies inside the rectangle, edges included.
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.Left && p.X <= b.Right && p.Y >= b.Top && p.Y <= b.Bottom
}

// Union returns the smallest rectangle covering both b and o.
func (b Bounds) Union(o Bounds) Bounds {
	left := math.Min(b.Left, o.Left)
	top := math.Min(b.Top, o.Top)
	right := math.Max(b.Right, o.Right)
	bottom := math.Max(b.Bottom, o.Bottom)
	return Bounds{
		Left:   left,
		Top:    top,
		Right:  right,
		Bottom: bottom,
		Width:  right - left,
		Height: bottom - top,
	}
}

// RectDistance returns the shortest distance between two rectangles.
// Overlapping or touching rectangles are at distance 0.
func RectDistance(a, b Bounds) float64 {
	dx := math.Max(math.Max(a.Left-b.Right, b.Left-a.Right), 0)
	dy := math.Max(math.Max(a.Top-b.Bottom, b.Top-a.Bottom), 0)
	return math.Hypot(dx, dy)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
