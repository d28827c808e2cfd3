package playground

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/meghashyamc/vect2d/config"
	"github.com/meghashyamc/vect2d/geometry"
	"github.com/meghashyamc/vect2d/logger"
	"github.com/meghashyamc/vect2d/sim"
)

type Mode int

const (
	ModeProject Mode = iota
	ModeTransform
	ModeParticles
	modeCount
)

func (m Mode) String() string {
	switch m {
	case ModeProject:
		return "project"
	case ModeTransform:
		return "transform"
	case ModeParticles:
		return "particles"
	}
	return "unknown"
}

const tickSeconds = 1.0 / 60.0

var initialAxis = geometry.New(3, 1)

type Playground struct {
	cfg           *config.Config
	logger        logger.Logger
	view          *view
	mode          Mode
	mouse         geometry.Vector2D // cursor in world units
	axis          geometry.Vector2D // reference vector
	world         *sim.World
	rotationSpeed float64
	tolerance     float64
}

func NewPlayground(cfg *config.Config) *Playground {
	log := logger.NewWithLevel(cfg.GetLogLevel())

	v := newView(cfg.GetWindowWidth(), cfg.GetWindowHeight(), cfg.GetPixelsPerUnit())
	bounds := v.worldBounds()

	p := &Playground{
		cfg:           cfg,
		logger:        log,
		view:          v,
		mode:          ModeProject,
		axis:          initialAxis,
		world:         sim.NewWorld(bounds, geometry.New(0, cfg.GetGravity()), log, sim.WithRestitution(0.9)),
		rotationSpeed: cfg.GetRotationSpeed(),
		tolerance:     cfg.GetTolerance(),
	}

	p.logger.Info("playground initialized",
		"env", cfg.Env(),
		"rotationSpeed", p.rotationSpeed,
		"bounds.min", bounds.Min,
		"bounds.max", bounds.Max,
	)
	return p
}

func (p *Playground) Run() error {
	p.logger.Info("starting playground")
	p.setupWindow()

	// Running the game calls Update() on every 'tick'
	return ebiten.RunGame(p)
}

func (p *Playground) setupWindow() {
	ebiten.SetWindowSize(p.cfg.GetWindowWidth(), p.cfg.GetWindowHeight())
	ebiten.SetWindowTitle(p.cfg.GetWindowTitle())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
}

func (p *Playground) Update() error {
	mouseX, mouseY := ebiten.CursorPosition()
	p.mouse = p.view.toWorld(float64(mouseX), float64(mouseY))

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		p.mode = (p.mode + 1) % modeCount
		p.logger.Debug("mode changed", "mode", p.mode.String())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		p.reset()
	}

	switch p.mode {
	case ModeTransform:
		p.updateTransform()
	case ModeParticles:
		p.updateParticles()
	}
	return nil
}

func (p *Playground) updateTransform() {
	sin, cos := math.Sincos(p.rotationSpeed)
	p.axis.LinearTransformInPlace(cos, -sin, sin, cos)
}

func (p *Playground) updateParticles() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		p.world.Spawn(geometry.Zero(), p.mouse)
		p.logger.Debug("particle spawned", "velocity", p.mouse, "count", p.world.Len())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		p.world.Clear()
	}
	p.world.Step(tickSeconds)
}

func (p *Playground) reset() {
	p.logger.Debug("resetting playground")
	p.axis = initialAxis
	p.world.Clear()
	p.mode = ModeProject
}

func (p *Playground) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0, 0, 0, 255})
	p.drawAxes(screen)

	switch p.mode {
	case ModeProject:
		p.drawProject(screen)
	case ModeTransform:
		p.drawTransform(screen)
	case ModeParticles:
		p.drawParticles(screen)
	}

	p.drawReadout(screen, describe(p.mode, p.mouse, p.axis, p.tolerance))
}

func (p *Playground) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return p.view.width, p.view.height
}
