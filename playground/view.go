package playground

import (
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/math/f64"

	"github.com/meghashyamc/vect2d/geometry"
	"github.com/meghashyamc/vect2d/sim"
)

// view maps world units (origin at the screen centre, y up) to screen pixels.
type view struct {
	width    int
	height   int
	toScreen f64.Aff3
	inverse  ebiten.GeoM
}

func newView(width, height int, pixelsPerUnit float64) *view {
	var m ebiten.GeoM
	m.Scale(pixelsPerUnit, -pixelsPerUnit)
	m.Translate(float64(width)/2, float64(height)/2)

	inverse := m
	inverse.Invert()

	return &view{
		width:    width,
		height:   height,
		toScreen: affine(m),
		inverse:  inverse,
	}
}

func (v *view) screenPoint(p geometry.Vector2D) geometry.Vector2D {
	return p.TransformAffine(v.toScreen)
}

func (v *view) toWorld(x, y float64) geometry.Vector2D {
	return geometry.New(v.inverse.Apply(x, y))
}

func (v *view) worldBounds() sim.Bounds {
	return sim.Bounds{
		Min: v.toWorld(0, float64(v.height)),
		Max: v.toWorld(float64(v.width), 0),
	}
}

func affine(m ebiten.GeoM) f64.Aff3 {
	return f64.Aff3{
		m.Element(0, 0), m.Element(0, 1), m.Element(0, 2),
		m.Element(1, 0), m.Element(1, 1), m.Element(1, 2),
	}
}
