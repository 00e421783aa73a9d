package obj

import (
	"fmt"

	"github.com/milk9111/killenemies/common"
	"github.com/milk9111/killenemies/component"
	"github.com/milk9111/killenemies/prefabs"
)

// Player animation clip names.
const (
	AnimIdle = prefabs.ClipIdle
	AnimWalk = prefabs.ClipWalk
	AnimJump = prefabs.ClipJump
)

type Player struct {
	// X, Y is the centre of the player's box.
	X, Y      float32
	VelocityY float32
	Direction common.Direction

	Width, Height   float32
	moveSpeed       float32
	gravity         float32
	jumpSpeed       float32
	groundTolerance float32

	anim *component.Animator
}

// NewPlayer creates a player centred on (x, y) facing right.
func NewPlayer(x, y float32, spec *prefabs.PlayerSpec) (*Player, error) {
	if spec == nil {
		return nil, fmt.Errorf("player: nil spec")
	}
	anim, err := spec.Animation.Animator()
	if err != nil {
		return nil, fmt.Errorf("player: %w", err)
	}
	return &Player{
		X:               x,
		Y:               y,
		Direction:       common.Right,
		Width:           float32(spec.Collider.Width),
		Height:          float32(spec.Collider.Height),
		moveSpeed:       float32(spec.MoveSpeed),
		gravity:         float32(spec.Gravity),
		jumpSpeed:       float32(spec.JumpSpeed),
		groundTolerance: float32(spec.GroundTolerance),
		anim:            anim,
	}, nil
}

func (p *Player) Position() (float32, float32) { return p.X, p.Y }

func (p *Player) Bounds() common.Rect {
	return common.RectFromCenter(p.X, p.Y, p.Width, p.Height)
}

func (p *Player) Bottom() float32 { return p.Y + p.Height/2 }

func (p *Player) Sprite() string { return p.anim.Frame() }

// Animation returns the clip currently shown.
func (p *Player) Animation() string { return p.anim.Current() }

// Update moves the player one tick: horizontal input, gravity, platform
// landing, then animation selection.
func (p *Player) Update(in Input, platforms []*Platform) {
	moving := false
	// left wins when both keys are held
	if in.Left {
		p.Direction = common.Left
		p.X -= p.moveSpeed
		moving = true
	} else if in.Right {
		p.Direction = common.Right
		p.X += p.moveSpeed
		moving = true
	}

	p.VelocityY += p.gravity
	p.Y += p.VelocityY

	landed := p.land(platforms)
	grounded := landed || p.OnGround(platforms)

	switch {
	case !grounded:
		p.anim.Play(AnimJump)
	case moving:
		p.anim.Play(AnimWalk)
	default:
		p.anim.Play(AnimIdle)
	}
	p.anim.SetFacing(p.Direction)
	p.anim.Update()
}

// land snaps the player onto any platform it sank into while falling.
func (p *Player) land(platforms []*Platform) bool {
	landed := false
	for _, pl := range platforms {
		if !pl.Collides(p.Bounds()) {
			continue
		}
		if p.VelocityY > 0 && p.Bottom() < pl.Bounds().Bottom() {
			p.Y = pl.Bounds().Top() - p.Height/2
			p.VelocityY = 0
			landed = true
		}
	}
	return landed
}

// OnGround reports whether the player's feet are within the ground
// tolerance of a platform top it horizontally overlaps.
func (p *Player) OnGround(platforms []*Platform) bool {
	r := p.Bounds()
	bottom := r.Bottom()
	for _, pl := range platforms {
		pr := pl.Bounds()
		if bottom >= pr.Top()-p.groundTolerance && bottom <= pr.Top()+p.groundTolerance && r.OverlapsX(&pr) {
			return true
		}
	}
	return false
}

// Jump launches the player if it is on the ground and reports whether it did.
func (p *Player) Jump(platforms []*Platform) bool {
	if !p.OnGround(platforms) {
		return false
	}
	p.VelocityY = p.jumpSpeed
	p.anim.Play(AnimJump)
	p.anim.SetFacing(p.Direction)
	return true
}
