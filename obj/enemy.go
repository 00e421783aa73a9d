package obj

import (
	"fmt"

	"github.com/milk9111/killenemies/common"
	"github.com/milk9111/killenemies/component"
	"github.com/milk9111/killenemies/prefabs"
)

// Enemy walks back and forth inside its patrol band.
type Enemy struct {
	X, Y      float32
	Direction common.Direction

	Width, Height float32
	PathLeft      float32
	PathRight     float32
	speed         float32

	anim *component.Animator
}

// NewEnemy creates an enemy centred on (x, y) patrolling spec.PatrolOffset
// pixels to either side of x.
func NewEnemy(x, y float32, spec *prefabs.EnemySpec) (*Enemy, error) {
	if spec == nil {
		return nil, fmt.Errorf("enemy: nil spec")
	}
	anim, err := spec.Animation.Animator()
	if err != nil {
		return nil, fmt.Errorf("enemy: %w", err)
	}
	offset := float32(spec.PatrolOffset)
	return &Enemy{
		X:         x,
		Y:         y,
		Direction: common.Right,
		Width:     float32(spec.Collider.Width),
		Height:    float32(spec.Collider.Height),
		PathLeft:  x - offset,
		PathRight: x + offset,
		speed:     float32(spec.MoveSpeed),
		anim:      anim,
	}, nil
}

func (e *Enemy) Position() (float32, float32) { return e.X, e.Y }

func (e *Enemy) Bounds() common.Rect {
	return common.RectFromCenter(e.X, e.Y, e.Width, e.Height)
}

func (e *Enemy) Sprite() string { return e.anim.Frame() }

// Update steps the patrol. Direction flips on the tick x passes a band edge.
func (e *Enemy) Update() {
	if e.Direction == common.Right {
		e.X += e.speed
		if e.X > e.PathRight {
			e.Direction = common.Left
		}
	} else {
		e.X -= e.speed
		if e.X < e.PathLeft {
			e.Direction = common.Right
		}
	}
	e.anim.SetFacing(e.Direction)
	e.anim.Update()
}
