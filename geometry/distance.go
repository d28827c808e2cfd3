package geometry

import (
	"math"
)

// DistanceFromPointToLine calculates the shortest distance from a point to the
// infinite line through lineStart and lineEnd. The result is NaN when the two
// line points coincide.
func DistanceFromPointToLine(point, lineStart, lineEnd Vector2D) float64 {
	// Vector from line start to end
	lineVec := lineEnd.Sub(lineStart)
	// Vector from line start to point
	pointVec := point.Sub(lineStart)
	return math.Abs(pointVec.Cross(lineVec)) / lineVec.Magnitude()
}

// DistanceFromPointToSegment is like DistanceFromPointToLine but measures to
// the closest point of the segment itself.
func DistanceFromPointToSegment(point, segStart, segEnd Vector2D) float64 {
	return point.Distance(ClosestPointOnSegment(point, segStart, segEnd))
}

// ClosestPointOnSegment returns the point of segment [segStart, segEnd]
// nearest to point. A degenerate segment returns segStart.
func ClosestPointOnSegment(point, segStart, segEnd Vector2D) Vector2D {
	segVec := segEnd.Sub(segStart)
	lengthSquared := segVec.MagnitudeSquared()
	if lengthSquared == 0 {
		return segStart
	}

	t := point.Sub(segStart).Dot(segVec) / lengthSquared
	t = math.Max(0, math.Min(1, t))

	return segStart.Add(segVec.Scale(t))
}
