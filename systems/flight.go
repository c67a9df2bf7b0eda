package systems

import (
	"math"
	"math/rand"

	"github.com/automoto/voidrunner/archetypes"
	"github.com/automoto/voidrunner/components"
	cfg "github.com/automoto/voidrunner/config"
	"github.com/automoto/voidrunner/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// SpawnShip creates the player ship at rest with its throttle spooling up
func SpawnShip(e *ecs.ECS) *donburi.Entry {
	entry := archetypes.Ship.Spawn(e)
	components.Ship.SetValue(entry, components.ShipData{
		Position: dmath.Vec2{X: cfg.Ship.StartX, Y: cfg.Ship.StartY},
		Heading:  cfg.Ship.Heading,
		Throttle: gween.New(0, float32(cfg.Ship.CruiseSpeed), cfg.Ship.SpoolSeconds, ease.OutCubic),
	})
	return entry
}

// SpawnStarfield scatters the backdrop stars deterministically from the configured seed
func SpawnStarfield(e *ecs.ECS) {
	rng := rand.New(rand.NewSource(cfg.Starfield.Seed))
	stars := make([]components.Star, cfg.Starfield.Count)
	for i := range stars {
		stars[i] = components.Star{
			Position: dmath.Vec2{
				X: rng.Float64() * float64(cfg.C.Width),
				Y: rng.Float64() * float64(cfg.C.Height),
			},
			Depth: 1 + rng.Float64()*(cfg.Starfield.Depth-1),
		}
	}
	entry := archetypes.Starfield.Spawn(e)
	components.Starfield.SetValue(entry, components.StarfieldData{Stars: stars})
}

// UpdateShip spools the throttle and translates the ship along its heading
func UpdateShip(e *ecs.ECS) {
	dt := 1.0 / float64(ebiten.TPS())
	components.Ship.Each(e.World, func(entry *donburi.Entry) {
		StepShip(components.Ship.Get(entry), dt)
	})
}

// StepShip advances one ship by dt seconds
func StepShip(ship *components.ShipData, dt float64) {
	if ship.Throttle != nil {
		speed, finished := ship.Throttle.Update(float32(dt))
		ship.Speed = float64(speed)
		if finished {
			ship.Throttle = nil
		}
	}

	ship.Position = gamemath.Advance(ship.Position, gamemath.Forward(ship.Heading), ship.Speed, dt)
	ship.Position.X = gamemath.Wrap(ship.Position.X, float64(cfg.C.Width))
	ship.Position.Y = gamemath.Wrap(ship.Position.Y, float64(cfg.C.Height))
}

// UpdateStarfield scrolls stars against the ship's motion for parallax
func UpdateStarfield(e *ecs.ECS) {
	ship, ok := components.Ship.First(e.World)
	field, ok2 := components.Starfield.First(e.World)
	if !ok || !ok2 {
		return
	}
	s := components.Ship.Get(ship)
	dt := 1.0 / float64(ebiten.TPS())
	back := gamemath.Forward(s.Heading + math.Pi)

	stars := components.Starfield.Get(field).Stars
	for i := range stars {
		p := gamemath.Advance(stars[i].Position, back, s.Speed/stars[i].Depth, dt)
		stars[i].Position.X = gamemath.Wrap(p.X, float64(cfg.C.Width))
		stars[i].Position.Y = gamemath.Wrap(p.Y, float64(cfg.C.Height))
	}
}

// NewUpdateFlight returns to the menu on the back action
func NewUpdateFlight(sceneChanger SceneChanger, createMenuScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)
		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			PlaySFX(e, cfg.SoundMenuSelect)
			sceneChanger.ChangeScene(createMenuScene())
		}
	}
}

// Offscreen buffer reused between frames, sized by the texture level
var flightBuffer *ebiten.Image

// DrawFlight renders stars and ship at the current render scale, then
// upscales the result to the screen.
func DrawFlight(e *ecs.ECS, screen *ebiten.Image) {
	scale := RenderScale()
	bw := max(1, int(float64(screen.Bounds().Dx())*scale))
	bh := max(1, int(float64(screen.Bounds().Dy())*scale))
	if flightBuffer == nil || flightBuffer.Bounds().Dx() != bw || flightBuffer.Bounds().Dy() != bh {
		if flightBuffer != nil {
			flightBuffer.Deallocate()
		}
		flightBuffer = ebiten.NewImage(bw, bh)
	}
	flightBuffer.Fill(cfg.Menu.BackgroundColor)

	aa := Antialias()
	s := float32(scale)

	if field, ok := components.Starfield.First(e.World); ok {
		for _, star := range components.Starfield.Get(field).Stars {
			r := float32(1.5 / star.Depth)
			vector.DrawFilledCircle(flightBuffer, float32(star.Position.X)*s, float32(star.Position.Y)*s, r*s+0.5, cfg.Starfield.StarColor, aa)
		}
	}

	components.Ship.Each(e.World, func(entry *donburi.Entry) {
		drawShip(flightBuffer, components.Ship.Get(entry), s, aa)
	})

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(1/scale, 1/scale)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(flightBuffer, op)
}

// drawShip draws the hull as a triangle pointing along the heading
func drawShip(dst *ebiten.Image, ship *components.ShipData, scale float32, aa bool) {
	size := cfg.Ship.Size
	fwd := gamemath.Forward(ship.Heading)
	side := dmath.Vec2{X: -fwd.Y, Y: fwd.X}

	nose := dmath.Vec2{X: ship.Position.X + fwd.X*size/2, Y: ship.Position.Y + fwd.Y*size/2}
	tailL := dmath.Vec2{X: ship.Position.X - fwd.X*size/2 + side.X*size/3, Y: ship.Position.Y - fwd.Y*size/2 + side.Y*size/3}
	tailR := dmath.Vec2{X: ship.Position.X - fwd.X*size/2 - side.X*size/3, Y: ship.Position.Y - fwd.Y*size/2 - side.Y*size/3}

	line := func(a, b dmath.Vec2) {
		vector.StrokeLine(dst, float32(a.X)*scale, float32(a.Y)*scale, float32(b.X)*scale, float32(b.Y)*scale, 1.5*scale+0.5, cfg.Ship.HullColor, aa)
	}
	line(nose, tailL)
	line(tailL, tailR)
	line(tailR, nose)

	// Exhaust flame grows with speed
	if cfg.Ship.CruiseSpeed > 0 && ship.Speed > 0 {
		flame := size / 2 * ship.Speed / cfg.Ship.CruiseSpeed
		tail := dmath.Vec2{X: ship.Position.X - fwd.X*size/2, Y: ship.Position.Y - fwd.Y*size/2}
		end := dmath.Vec2{X: tail.X - fwd.X*flame, Y: tail.Y - fwd.Y*flame}
		vector.StrokeLine(dst, float32(tail.X)*scale, float32(tail.Y)*scale, float32(end.X)*scale, float32(end.Y)*scale, 2*scale+0.5, cfg.Ship.EngineColor, aa)
	}
}
