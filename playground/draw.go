package playground

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/meghashyamc/vect2d/assets"
	"github.com/meghashyamc/vect2d/geometry"
)

const (
	arrowHeadLength = 12.0
	arrowHeadWidth  = 5.0
	particleRadius  = 4
)

var (
	colorGrid       = color.RGBA{60, 60, 60, 255}
	colorVector     = color.RGBA{255, 255, 255, 255}
	colorAxis       = color.RGBA{80, 140, 255, 255}
	colorProjection = color.RGBA{0, 220, 120, 255}
	colorResidual   = color.RGBA{140, 140, 140, 255}
	colorRotated    = color.RGBA{255, 160, 40, 255}
	colorNormal     = color.RGBA{230, 60, 230, 255}
	colorParticle   = color.RGBA{255, 230, 80, 255}
)

func (p *Playground) drawAxes(screen *ebiten.Image) {
	origin := p.view.screenPoint(geometry.Zero())
	w, h := float32(p.view.width), float32(p.view.height)
	vector.StrokeLine(screen, 0, float32(origin.Y), w, float32(origin.Y), 1, colorGrid, false)
	vector.StrokeLine(screen, float32(origin.X), 0, float32(origin.X), h, 1, colorGrid, false)
}

func (p *Playground) drawProject(screen *ebiten.Image) {
	p.drawArrow(screen, geometry.Zero(), p.axis, colorAxis)
	p.drawArrow(screen, geometry.Zero(), p.mouse, colorVector)

	if p.axis.IsZero() {
		return
	}
	projection := p.mouse.ProjectOnto(p.axis)
	p.drawLine(screen, projection, p.mouse, colorResidual)
	p.drawArrow(screen, geometry.Zero(), projection, colorProjection)
}

func (p *Playground) drawTransform(screen *ebiten.Image) {
	p.drawArrow(screen, geometry.Zero(), p.axis, colorAxis)
	p.drawArrow(screen, geometry.Zero(), p.mouse, colorVector)
	p.drawArrow(screen, geometry.Zero(), p.mouse.Rotate(p.axis.Angle()), colorRotated)

	if p.mouse.IsZero() {
		return
	}
	normal := p.mouse.Perpendicular().Scale(p.mouse.Magnitude())
	p.drawArrow(screen, geometry.Zero(), normal, colorNormal)
}

func (p *Playground) drawParticles(screen *ebiten.Image) {
	// launch velocity preview
	p.drawArrow(screen, geometry.Zero(), p.mouse, colorResidual)

	for _, particle := range p.world.Particles() {
		s := p.view.screenPoint(particle.Position)
		vector.DrawFilledCircle(screen, float32(s.X), float32(s.Y), particleRadius, colorParticle, true)
	}

	if p.world.Len() > 0 {
		c := p.view.screenPoint(p.world.Centroid())
		vector.StrokeCircle(screen, float32(c.X), float32(c.Y), particleRadius*2, 1, colorProjection, true)
	}
}

func (p *Playground) drawLine(screen *ebiten.Image, from, to geometry.Vector2D, col color.Color) {
	a := p.view.screenPoint(from)
	b := p.view.screenPoint(to)
	vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, col, true)
}

// drawArrow draws from -> to with a head at to. Heads are sized in pixels.
func (p *Playground) drawArrow(screen *ebiten.Image, from, to geometry.Vector2D, col color.Color) {
	base := p.view.screenPoint(from)
	tip := p.view.screenPoint(to)
	vector.StrokeLine(screen, float32(base.X), float32(base.Y), float32(tip.X), float32(tip.Y), 2, col, true)

	shaft := tip.Sub(base)
	if shaft.MagnitudeSquared() < arrowHeadLength*arrowHeadLength {
		return
	}
	back := tip.Sub(shaft.Unit().Scale(arrowHeadLength))
	side := shaft.Perpendicular().Scale(arrowHeadWidth)
	for _, corner := range []geometry.Vector2D{back.Add(side), back.Sub(side)} {
		vector.StrokeLine(screen, float32(tip.X), float32(tip.Y), float32(corner.X), float32(corner.Y), 2, col, true)
	}
}

func (p *Playground) drawReadout(screen *ebiten.Image, lines []string) {
	for i, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(20, 20+float64(i)*22)
		op.ColorScale.ScaleWithColor(color.White)
		text.Draw(screen, line, assets.ReadoutFont, op)
	}

	hint := "Tab: next mode   R: reset"
	if p.mode == ModeParticles {
		hint += "   Click: launch   C: clear"
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(20, float64(p.view.height)-36)
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, hint, assets.LabelFont, op)
}
