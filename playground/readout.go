package playground

import (
	"fmt"
	"math"

	"github.com/meghashyamc/vect2d/geometry"
)

// describe renders the numbers shown in the top-left corner.
func describe(mode Mode, v, axis geometry.Vector2D, tolerance float64) []string {
	lines := []string{
		fmt.Sprintf("mode   %s", mode),
		fmt.Sprintf("v      (%.2f, %.2f)", v.X, v.Y),
		fmt.Sprintf("|v|    %.3f", v.Magnitude()),
		fmt.Sprintf("angle  %.1f deg", degrees(v.Angle())),
	}

	if v.IsZero() {
		lines = append(lines, "unit   undefined for the zero vector")
	} else {
		u := v.Unit()
		lines = append(lines, fmt.Sprintf("unit   (%.3f, %.3f)", u.X, u.Y))
	}

	if mode == ModeParticles {
		return lines
	}

	dot, cross := v.Dot(axis), v.Cross(axis)
	lines = append(lines,
		fmt.Sprintf("axis   (%.2f, %.2f)", axis.X, axis.Y),
		fmt.Sprintf("v.a    %.3f", dot),
		fmt.Sprintf("v x a  %.3f", cross),
	)

	if !axis.IsZero() {
		lines = append(lines,
			fmt.Sprintf("line   %.3f", geometry.DistanceFromPointToLine(v, geometry.Zero(), axis)),
			fmt.Sprintf("seg    %.3f", geometry.DistanceFromPointToSegment(v, geometry.Zero(), axis)),
		)
	}

	scale := v.Magnitude() * axis.Magnitude()
	switch {
	case scale == 0:
	case math.Abs(dot) <= tolerance*scale:
		lines = append(lines, "       orthogonal")
	case math.Abs(cross) <= tolerance*scale:
		lines = append(lines, "       parallel")
	}

	return lines
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
