package obj

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/milk9111/killenemies/prefabs"
)

func loadSpecs(t *testing.T) *prefabs.Specs {
	t.Helper()
	specs, err := prefabs.LoadAll()
	require.NoError(t, err)
	return specs
}

func newTestPlayer(t *testing.T, x, y float32) *Player {
	t.Helper()
	p, err := NewPlayer(x, y, loadSpecs(t).Player)
	require.NoError(t, err)
	return p
}

// platform tops sit at y=90 and y=270, like the first two in the arena.
func testPlatforms() []*Platform {
	return []*Platform{
		NewPlatform(50, 90, 120, 40, "platform_image"),
		NewPlatform(30, 270, 170, 40, "platform_image"),
	}
}
