package mapdata

// A Point is a position in the map, in meters.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// DataPoints holds an ordered sequence of points. The points are owned by
// value; neither the input of SetPoints nor the output of Points is shared
// with the holder.
type DataPoints struct {
	points []Point
}

// Points returns a copy of the points.
func (d *DataPoints) Points() []Point {
	points := make([]Point, len(d.points))
	copy(points, d.points)

	return points
}

// SetPoints replaces the points with a copy of the given ones.
func (d *DataPoints) SetPoints(points []Point) {
	d.points = make([]Point, len(points))
	copy(d.points, points)
}

// AddPoint appends a point.
func (d *DataPoints) AddPoint(p Point) {
	d.points = append(d.points, p)
}

// NumPoints returns the number of points.
func (d *DataPoints) NumPoints() int {
	return len(d.points)
}
