package svgpath

import "math"

func (path *SubPath) StartPoint() (float64, float64) {
	return path.X, path.Y
}

func (path *SubPath) EndPoint() (float64, float64) {
	if len(path.DrawTo) > 0 {
		last := path.DrawTo[len(path.DrawTo)-1]
		return last.X, last.Y
	}
	return path.X, path.Y
}

// Closed reports whether the path ends where it starts.
func (path *SubPath) Closed() bool {
	ex, ey := path.EndPoint()
	return len(path.DrawTo) > 0 && ex == path.X && ey == path.Y
}

// Reverse reverses a path and returns the result
func (path *SubPath) Reverse() *SubPath {
	reversed := &SubPath{}
	reversed.X, reversed.Y = path.EndPoint()
	for i := len(path.DrawTo) - 1; i >= 0; i-- {
		drawTo := path.DrawTo[i]
		var prevX, prevY float64
		if i > 0 {
			prevX = path.DrawTo[i-1].X
			prevY = path.DrawTo[i-1].Y
		} else {
			prevX = path.X
			prevY = path.Y
		}
		reversed.DrawTo = append(reversed.DrawTo, &DrawTo{
			Command: drawTo.Command,
			X:       prevX,
			Y:       prevY,
		})
	}
	return reversed
}

// Length is the total length of every drawn segment.
func (path *SubPath) Length() float64 {
	total := 0.0
	lastX, lastY := path.StartPoint()
	for _, drawTo := range path.DrawTo {
		total += math.Hypot(drawTo.X-lastX, drawTo.Y-lastY)
		lastX, lastY = drawTo.X, drawTo.Y
	}
	return total
}
