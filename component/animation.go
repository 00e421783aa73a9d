package component

import (
	"errors"
	"fmt"

	"github.com/milk9111/killenemies/common"
)

// DefaultTicksPerFrame is how many updates a frame stays on screen when a
// clip set doesn't say otherwise.
const DefaultTicksPerFrame = 5

var (
	ErrNoClips       = errors.New("animation: no clips")
	ErrEmptyClip     = errors.New("animation: clip has no frames")
	ErrMissingFacing = errors.New("animation: clip missing facing")
)

// Clip holds the frame ids of one named animation for each facing.
type Clip map[common.Direction][]string

// Animator cycles through the frames of the active clip. Frames are opaque
// ids (sprite names); drawing them is someone else's job.
type Animator struct {
	clips       map[string]Clip
	ticksPerFrm int

	current string
	facing  common.Direction
	frame   int
	tick    int
}

// NewAnimator validates clips and starts playing `initial` facing right.
// Every clip must carry a non-empty frame list for both facings.
func NewAnimator(clips map[string]Clip, initial string, ticksPerFrame int) (*Animator, error) {
	if len(clips) == 0 {
		return nil, ErrNoClips
	}
	for name, clip := range clips {
		for _, dir := range []common.Direction{common.Left, common.Right} {
			frames, ok := clip[dir]
			if !ok {
				return nil, fmt.Errorf("%w: %s/%s", ErrMissingFacing, name, dir)
			}
			if len(frames) == 0 {
				return nil, fmt.Errorf("%w: %s/%s", ErrEmptyClip, name, dir)
			}
		}
	}
	if _, ok := clips[initial]; !ok {
		return nil, fmt.Errorf("animation: unknown initial clip %q", initial)
	}
	if ticksPerFrame <= 0 {
		ticksPerFrame = DefaultTicksPerFrame
	}
	return &Animator{
		clips:       clips,
		ticksPerFrm: ticksPerFrame,
		current:     initial,
		facing:      common.Right,
	}, nil
}

// Update advances the timer and steps the frame when it reaches the
// threshold. Call once per game update.
func (a *Animator) Update() {
	if a == nil {
		return
	}
	a.tick++
	if a.tick >= a.ticksPerFrm {
		a.tick = 0
		a.frame = (a.frame + 1) % len(a.frames())
	}
}

// Play switches to the named clip. Re-playing the active clip is a no-op so
// callers can select the clip every tick without restarting it.
func (a *Animator) Play(name string) {
	if a == nil || a.current == name {
		return
	}
	if _, ok := a.clips[name]; !ok {
		panic(fmt.Sprintf("animation: undefined clip %q", name))
	}
	a.current = name
	a.Reset()
}

// SetFacing changes direction and keeps the frame index.
func (a *Animator) SetFacing(d common.Direction) {
	if a == nil {
		return
	}
	a.facing = d
	a.frame %= len(a.frames())
}

// Reset sets the animation back to the first frame.
func (a *Animator) Reset() {
	if a == nil {
		return
	}
	a.frame = 0
	a.tick = 0
}

// Frame returns the id of the frame currently shown.
func (a *Animator) Frame() string {
	if a == nil {
		return ""
	}
	return a.frames()[a.frame]
}

// Current returns the active clip name.
func (a *Animator) Current() string {
	if a == nil {
		return ""
	}
	return a.current
}

// Index returns the active frame index within the clip.
func (a *Animator) Index() int {
	if a == nil {
		return 0
	}
	return a.frame
}

func (a *Animator) frames() []string {
	return a.clips[a.current][a.facing]
}
