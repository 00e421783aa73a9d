package system

import (
	"github.com/milk9111/killenemies/common"
	"github.com/milk9111/killenemies/obj"
)

// The arena is fixed; only tuning comes from prefabs.
const (
	playerSpawnX = 160
	playerSpawnY = 60
)

var platformLayout = []common.Rect{
	{X: 50, Y: 90, Width: 120, Height: 40},
	{X: 30, Y: 270, Width: 170, Height: 40},
	{X: 300, Y: 300, Width: 170, Height: 30},
	{X: 530, Y: 140, Width: 220, Height: 40},
	{X: 520, Y: 400, Width: 170, Height: 40},
}

var enemySpawns = [][2]float32{
	{120, 270},
	{360, 295},
	{610, 140},
	{610, 400},
}

func (w *World) spawnPlatforms() []*obj.Platform {
	sprite := ""
	if w.specs.Platform != nil {
		sprite = w.specs.Platform.Sprite.Image
	}
	platforms := make([]*obj.Platform, 0, len(platformLayout))
	for _, r := range platformLayout {
		platforms = append(platforms, obj.NewPlatform(r.X, r.Y, r.Width, r.Height, sprite))
	}
	return platforms
}

func (w *World) spawnPlayer() (*obj.Player, error) {
	return obj.NewPlayer(playerSpawnX, playerSpawnY, w.specs.Player)
}

func (w *World) spawnEnemies() ([]*obj.Enemy, error) {
	enemies := make([]*obj.Enemy, 0, len(enemySpawns))
	for _, pos := range enemySpawns {
		e, err := obj.NewEnemy(pos[0], pos[1], w.specs.Enemy)
		if err != nil {
			return nil, err
		}
		enemies = append(enemies, e)
	}
	return enemies, nil
}

// spawnBullet fires one bullet from the player's centre in its facing.
func (w *World) spawnBullet() error {
	x, y := w.player.Position()
	b, err := obj.NewBullet(x, y, w.player.Direction, w.specs.Bullet)
	if err != nil {
		return err
	}
	w.bullets = append(w.bullets, b)
	return nil
}
