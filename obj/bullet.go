package obj

import (
	"fmt"

	"github.com/milk9111/killenemies/common"
	"github.com/milk9111/killenemies/prefabs"
)

// Bullet flies in a straight line in the direction it was fired.
type Bullet struct {
	X, Y          float32
	Width, Height float32

	direction common.Direction
	speed     float32
	sprite    string
	active    bool
}

// NewBullet creates a live bullet centred on (x, y).
func NewBullet(x, y float32, dir common.Direction, spec *prefabs.BulletSpec) (*Bullet, error) {
	if spec == nil {
		return nil, fmt.Errorf("bullet: nil spec")
	}
	return &Bullet{
		X:         x,
		Y:         y,
		Width:     float32(spec.Collider.Width),
		Height:    float32(spec.Collider.Height),
		direction: dir,
		speed:     float32(spec.MoveSpeed),
		sprite:    spec.Sprite.Image,
		active:    true,
	}, nil
}

func (b *Bullet) Position() (float32, float32) { return b.X, b.Y }

func (b *Bullet) Bounds() common.Rect {
	return common.RectFromCenter(b.X, b.Y, b.Width, b.Height)
}

func (b *Bullet) Sprite() string { return b.sprite }

func (b *Bullet) Direction() common.Direction { return b.direction }

// Alive reports whether the bullet is still in play.
func (b *Bullet) Alive() bool { return b != nil && b.active }

// Kill takes the bullet out of play.
func (b *Bullet) Kill() {
	if b != nil {
		b.active = false
	}
}

// Update advances the bullet and retires it once its centre leaves
// [0, screenWidth].
func (b *Bullet) Update(screenWidth float32) {
	if !b.Alive() {
		return
	}
	b.X += b.direction.Sign() * b.speed
	if b.X < 0 || b.X > screenWidth {
		b.active = false
	}
}
