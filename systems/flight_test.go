package systems

import (
	"testing"

	"github.com/automoto/voidrunner/components"
	cfg "github.com/automoto/voidrunner/config"
	"github.com/automoto/voidrunner/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestStepShipSpoolsToCruise(t *testing.T) {
	entry := SpawnShip(ecs.NewECS(donburi.NewWorld()))
	assert.True(t, entry.HasComponent(tags.Ship))
	ship := components.Ship.Get(entry)
	require.NotNil(t, ship.Throttle)
	assert.Equal(t, 0.0, ship.Speed)

	dt := 1.0 / 60
	StepShip(ship, dt)
	assert.Greater(t, ship.Speed, 0.0)
	assert.Less(t, ship.Speed, cfg.Ship.CruiseSpeed)

	steps := int(float64(cfg.Ship.SpoolSeconds)/dt) + 5
	for i := 0; i < steps; i++ {
		StepShip(ship, dt)
	}
	assert.Nil(t, ship.Throttle)
	assert.InDelta(t, cfg.Ship.CruiseSpeed, ship.Speed, 1e-3)
}

func TestStepShipMovesForwardAndWraps(t *testing.T) {
	ship := &components.ShipData{Speed: 120, Heading: 0}
	ship.Position.X = float64(cfg.C.Width) - 1
	ship.Position.Y = 50

	StepShip(ship, 0.5)
	assert.InDelta(t, 59.0, ship.Position.X, 1e-9)
	assert.InDelta(t, 50.0, ship.Position.Y, 1e-9)
}

func TestSpawnStarfieldIsDeterministic(t *testing.T) {
	a, b := donburi.NewWorld(), donburi.NewWorld()
	SpawnStarfield(ecs.NewECS(a))
	SpawnStarfield(ecs.NewECS(b))

	fa, ok := components.Starfield.First(a)
	require.True(t, ok)
	fb, ok := components.Starfield.First(b)
	require.True(t, ok)

	starsA := components.Starfield.Get(fa).Stars
	starsB := components.Starfield.Get(fb).Stars
	require.Len(t, starsA, cfg.Starfield.Count)
	assert.Equal(t, starsA, starsB)
	for _, s := range starsA {
		assert.GreaterOrEqual(t, s.Depth, 1.0)
	}
}
