package obj

import "github.com/milk9111/killenemies/common"

// Platform is a static rectangle the player can stand on.
type Platform struct {
	rect   common.Rect
	sprite string
}

// NewPlatform creates a platform with its top-left corner at (x, y).
func NewPlatform(x, y, width, height float32, sprite string) *Platform {
	return &Platform{
		rect:   common.Rect{X: x, Y: y, Width: width, Height: height},
		sprite: sprite,
	}
}

// Position returns the platform centre.
func (p *Platform) Position() (float32, float32) {
	return p.rect.X + p.rect.Width/2, p.rect.Y + p.rect.Height/2
}

func (p *Platform) Bounds() common.Rect { return p.rect }

func (p *Platform) Sprite() string { return p.sprite }

// Collides reports whether r overlaps the platform.
func (p *Platform) Collides(r common.Rect) bool {
	return p.rect.Intersects(&r)
}
