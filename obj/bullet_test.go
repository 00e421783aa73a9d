package obj

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/killenemies/common"
)

func TestBulletDespawnsOffScreen(t *testing.T) {
	cases := []struct {
		name      string
		dir       common.Direction
		liveTicks int
		lastX     float32
	}{
		{"right", common.Right, 80, 800},
		{"left", common.Left, 20, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b, err := NewBullet(160, 60, c.dir, loadSpecs(t).Bullet)
			require.NoError(t, err)

			for i := 0; i < c.liveTicks; i++ {
				b.Update(800)
				require.True(t, b.Alive(), "tick %d x=%v", i+1, b.X)
			}
			assert.Equal(t, c.lastX, b.X)

			b.Update(800)
			assert.False(t, b.Alive())
			assert.Equal(t, c.dir, b.Direction(), "direction never changes")
		})
	}
}

func TestBulletKill(t *testing.T) {
	b, err := NewBullet(400, 60, common.Right, loadSpecs(t).Bullet)
	require.NoError(t, err)
	b.Kill()
	b.Update(800)
	assert.False(t, b.Alive())
	assert.Equal(t, float32(400), b.X, "dead bullets stop moving")

	var nilBullet *Bullet
	assert.False(t, nilBullet.Alive())
}

func TestOverlaps(t *testing.T) {
	specs := loadSpecs(t)
	e, err := NewEnemy(120, 270, specs.Enemy)
	require.NoError(t, err)

	hit, err := NewBullet(100, 270, common.Right, specs.Bullet)
	require.NoError(t, err)
	miss, err := NewBullet(100, 200, common.Right, specs.Bullet)
	require.NoError(t, err)

	assert.True(t, Overlaps(hit, e))
	assert.False(t, Overlaps(miss, e))
}

func TestPlatformCollides(t *testing.T) {
	p := NewPlatform(50, 90, 120, 40, "platform_image")
	x, y := p.Position()
	assert.Equal(t, float32(110), x)
	assert.Equal(t, float32(110), y)
	assert.True(t, p.Collides(common.Rect{X: 60, Y: 80, Width: 10, Height: 20}))
	assert.False(t, p.Collides(common.Rect{X: 60, Y: 70, Width: 10, Height: 20}))
	assert.Equal(t, "platform_image", p.Sprite())
}
