package obj

import "github.com/milk9111/killenemies/common"

// Actor is anything with a position, a bounding box and a sprite to draw.
// Player, Enemy, Bullet and Platform implement it independently.
type Actor interface {
	Position() (x, y float32)
	Bounds() common.Rect
	Sprite() string
}

var (
	_ Actor = (*Platform)(nil)
	_ Actor = (*Player)(nil)
	_ Actor = (*Enemy)(nil)
	_ Actor = (*Bullet)(nil)
)

// Overlaps reports whether the bounding boxes of a and b intersect.
func Overlaps(a, b Actor) bool {
	ra, rb := a.Bounds(), b.Bounds()
	return ra.Intersects(&rb)
}
