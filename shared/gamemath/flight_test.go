package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestForward(t *testing.T) {
	f := Forward(0)
	assert.InDelta(t, 1.0, f.X, 1e-9)
	assert.InDelta(t, 0.0, f.Y, 1e-9)

	f = Forward(math.Pi / 2)
	assert.InDelta(t, 0.0, f.X, 1e-9)
	assert.InDelta(t, 1.0, f.Y, 1e-9)
}

func TestAdvance(t *testing.T) {
	pos := dmath.Vec2{X: 10, Y: 20}

	got := Advance(pos, Forward(0), 60, 0.5)
	assert.InDelta(t, 40.0, got.X, 1e-9)
	assert.InDelta(t, 20.0, got.Y, 1e-9)

	// One second of ticks at 60 TPS covers speed pixels.
	p := pos
	for i := 0; i < 60; i++ {
		p = Advance(p, Forward(math.Pi), 90, 1.0/60)
	}
	assert.InDelta(t, -80.0, p.X, 1e-6)
	assert.InDelta(t, 20.0, p.Y, 1e-6)

	assert.Equal(t, pos, Advance(pos, Forward(1), 0, 1))
}

func TestWrap(t *testing.T) {
	assert.Equal(t, 5.0, Wrap(645, 640))
	assert.Equal(t, 635.0, Wrap(-5, 640))
	assert.Equal(t, 0.0, Wrap(640, 640))
	assert.Equal(t, -3.0, Wrap(-3, 0))
}
