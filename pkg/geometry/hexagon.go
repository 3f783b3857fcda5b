package geometry

import "math"

// Hexagon returns the six corners of a pointy-top regular hexagon with the
// given circumradius, counter-clockwise from the corner at -30 degrees.
func Hexagon(center Point, radius float64) Polygon {
	hex := make(Polygon, 6)
	for i := range hex {
		angle := (60*float64(i) - 30) * math.Pi / 180
		hex[i] = Point{
			X: center.X + radius*math.Cos(angle),
			Y: center.Y + radius*math.Sin(angle),
		}
	}
	return hex
}

// HexWidth is the flat-to-flat span of a pointy-top hexagon, measured along X.
func HexWidth(radius float64) float64 {
	return math.Sqrt(3) * radius
}

// HexHeight is the tip-to-tip span of a pointy-top hexagon, measured along Y.
func HexHeight(radius float64) float64 {
	return 2 * radius
}

// HexBounds returns the bounding box of a pointy-top hexagon without building it.
func HexBounds(center Point, radius float64) Rectangle {
	hw := HexWidth(radius) / 2
	return Rectangle{
		Min: Point{X: center.X - hw, Y: center.Y - radius},
		Max: Point{X: center.X + hw, Y: center.Y + radius},
	}
}
