package system

import (
	"errors"
	"fmt"

	"github.com/milk9111/killenemies/obj"
	"github.com/milk9111/killenemies/prefabs"
)

// ErrQuit is returned by Update when the player asks to leave from the menu.
var ErrQuit = errors.New("quit requested")

type State int

const (
	StateMenu State = iota
	StatePlaying
	StateVictory
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateVictory:
		return "victory"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Stats counts what happened since the session was created.
type Stats struct {
	ShotsFired int
	Kills      int
	Losses     int
	Wins       int
}

// Session is the game state machine. It owns the World and is the only
// thing that mutates it.
type Session struct {
	world *World
	audio Audio

	state        State
	musicEnabled bool
	jumpHeld     bool
	prev         obj.Input
	stats        Stats
}

// NewSession builds the world, starts the background track and opens on the
// menu. A nil audio is replaced by NopAudio.
func NewSession(specs *prefabs.Specs, audio Audio) (*Session, error) {
	world, err := NewWorld(specs)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	if audio == nil {
		audio = NopAudio{}
	}
	s := &Session{
		world:        world,
		audio:        audio,
		state:        StateMenu,
		musicEnabled: true,
	}
	s.audio.SetVolume(specs.Game.MusicVolume)
	s.audio.PlayMusic(TrackBackground)
	return s, nil
}

func (s *Session) State() State { return s.state }

func (s *Session) MusicEnabled() bool { return s.musicEnabled }

func (s *Session) Stats() Stats { return s.stats }

func (s *Session) EnemyCount() int { return s.world.EnemyCount() }

func (s *Session) BulletCount() int { return s.world.BulletCount() }

func (s *Session) PlayerPosition() (float32, float32) { return s.world.PlayerPosition() }

// SetSpecs swaps the prefab specs; the world picks them up on its next reset.
func (s *Session) SetSpecs(specs *prefabs.Specs) {
	s.world.SetSpecs(specs)
}

// Update advances the session by one tick.
func (s *Session) Update(in obj.Input) error {
	defer func() { s.prev = in }()

	switch s.state {
	case StateMenu:
		return s.updateMenu(in)
	case StatePlaying:
		return s.updatePlaying(in)
	case StateVictory:
		return s.updateVictory(in)
	}
	return nil
}

// Draw paints the arena while playing. Menu and victory screens belong to
// the ui package.
func (s *Session) Draw(d Drawer) {
	if s.state != StatePlaying {
		return
	}
	s.world.Draw(d)
}

func (s *Session) updateMenu(in obj.Input) error {
	if in.Confirm {
		if err := s.world.Reset(); err != nil {
			return err
		}
		s.jumpHeld = in.Jump
		s.state = StatePlaying
	}
	if in.ToggleMusic && !s.prev.ToggleMusic {
		s.toggleMusic()
	}
	if in.Quit {
		return ErrQuit
	}
	return nil
}

func (s *Session) updatePlaying(in obj.Input) error {
	w := s.world

	if in.Jump && !s.jumpHeld {
		w.player.Jump(w.platforms)
	}
	s.jumpHeld = in.Jump

	w.player.Update(in, w.platforms)
	if w.playerFellOut() {
		s.lose()
		return nil
	}

	w.updateEnemies()

	if in.Shoot {
		if err := w.spawnBullet(); err != nil {
			return err
		}
		s.stats.ShotsFired++
		s.audio.PlaySound(SoundShoot)
	}

	kills := w.resolveBullets()
	for i := 0; i < kills; i++ {
		s.audio.PlaySound(SoundEnemyDeath)
	}
	s.stats.Kills += kills

	if w.playerHit() {
		s.lose()
		return nil
	}

	if w.EnemyCount() == 0 {
		s.stats.Wins++
		s.switchTrack(TrackVictory)
		s.state = StateVictory
	}
	return nil
}

func (s *Session) updateVictory(in obj.Input) error {
	if in.Return && !s.prev.Return {
		s.switchTrack(TrackBackground)
		if err := s.world.Reset(); err != nil {
			return err
		}
		s.state = StateMenu
	}
	return nil
}

func (s *Session) lose() {
	s.stats.Losses++
	s.state = StateMenu
}

func (s *Session) toggleMusic() {
	s.musicEnabled = !s.musicEnabled
	if s.musicEnabled {
		s.audio.ResumeMusic()
	} else {
		s.audio.PauseMusic()
	}
}

// switchTrack replaces the current track, keeping it paused when music is off.
func (s *Session) switchTrack(track string) {
	s.audio.StopMusic()
	s.audio.PlayMusic(track)
	if !s.musicEnabled {
		s.audio.PauseMusic()
	}
}
