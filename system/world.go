package system

import (
	"fmt"

	"github.com/milk9111/killenemies/obj"
	"github.com/milk9111/killenemies/prefabs"
)

// World owns the entities of one play session: platforms, the player,
// enemies and bullets. Nothing outside the package holds on to them.
type World struct {
	specs  *prefabs.Specs
	width  float32
	height float32

	platforms []*obj.Platform
	player    *obj.Player
	enemies   []*obj.Enemy
	bullets   []*obj.Bullet
}

// NewWorld creates a world populated with the arena layout.
func NewWorld(specs *prefabs.Specs) (*World, error) {
	if specs == nil || specs.Game == nil {
		return nil, fmt.Errorf("world: specs are nil")
	}
	w := &World{specs: specs}
	if err := w.Reset(); err != nil {
		return nil, err
	}
	return w, nil
}

// Reset rebuilds platforms, player and enemies from the arena layout and
// drops every bullet in flight. On error the world is left as it was.
func (w *World) Reset() error {
	if w == nil {
		return fmt.Errorf("world is nil")
	}
	player, err := w.spawnPlayer()
	if err != nil {
		return err
	}
	enemies, err := w.spawnEnemies()
	if err != nil {
		return err
	}
	w.width = float32(w.specs.Game.Width)
	w.height = float32(w.specs.Game.Height)
	w.platforms = w.spawnPlatforms()
	w.player = player
	w.enemies = enemies
	w.bullets = nil
	return nil
}

// SetSpecs swaps the prefab specs. They take effect on the next Reset.
func (w *World) SetSpecs(specs *prefabs.Specs) {
	if w == nil || specs == nil || specs.Game == nil {
		return
	}
	w.specs = specs
}

// EnemyCount returns the number of enemies still alive.
func (w *World) EnemyCount() int {
	if w == nil {
		return 0
	}
	return len(w.enemies)
}

// BulletCount returns the number of bullets in flight.
func (w *World) BulletCount() int {
	if w == nil {
		return 0
	}
	return len(w.bullets)
}

// PlayerPosition returns the centre of the player.
func (w *World) PlayerPosition() (float32, float32) {
	if w == nil || w.player == nil {
		return 0, 0
	}
	return w.player.Position()
}

// Draw hands every actor to d in paint order: platforms, player, enemies,
// bullets.
func (w *World) Draw(d Drawer) {
	if w == nil || d == nil {
		return
	}
	for _, p := range w.platforms {
		d.DrawActor(p)
	}
	if w.player != nil {
		d.DrawActor(w.player)
	}
	for _, e := range w.enemies {
		d.DrawActor(e)
	}
	for _, b := range w.bullets {
		d.DrawActor(b)
	}
}

func (w *World) playerFellOut() bool {
	return w.player.Bottom() > w.height
}

func (w *World) updateEnemies() {
	for _, e := range w.enemies {
		e.Update()
	}
}
