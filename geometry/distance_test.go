package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceFromPointToLine(t *testing.T) {
	tests := []struct {
		name              string
		point, start, end Vector2D
		want              float64
	}{
		{"above x axis", New(3, 2), New(0, 0), New(1, 0), 2},
		{"below x axis", New(-7, -2), New(0, 0), New(1, 0), 2},
		{"on the line", New(5, 5), New(0, 0), New(1, 1), 0},
		{"diagonal", New(0, 2), New(0, 0), New(1, 1), math.Sqrt2},
		{"beyond the segment", New(10, 1), New(0, 0), New(1, 0), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, DistanceFromPointToLine(tt.point, tt.start, tt.end), tolerance)
		})
	}

	assert.True(t, math.IsNaN(DistanceFromPointToLine(New(1, 1), New(2, 2), New(2, 2))))
}

func TestDistanceFromPointToSegment(t *testing.T) {
	start, end := New(0, 0), New(4, 0)

	assert.InDelta(t, 3, DistanceFromPointToSegment(New(2, 3), start, end), tolerance)
	assert.InDelta(t, 5, DistanceFromPointToSegment(New(7, 4), start, end), tolerance)
	assert.InDelta(t, 1, DistanceFromPointToSegment(New(-1, 0), start, end), tolerance)
	assert.InDelta(t, 5, DistanceFromPointToSegment(New(3, 4), start, start), tolerance)
}

func TestClosestPointOnSegment(t *testing.T) {
	got := ClosestPointOnSegment(New(1, 5), New(0, 0), New(4, 4))
	assert.True(t, got.ApproxEqual(New(3, 3), tolerance), "got %v", got)
}
