package music

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/milk9111/killenemies/assets"
	"github.com/milk9111/killenemies/prefabs"
	"github.com/milk9111/killenemies/system"
)

const defaultVolume = 1.0

// Player plays the looping music tracks and one-shot sounds named in the
// game prefab.
type Player struct {
	tracks       map[string]*audio.Player
	sounds       map[string]*audio.Player
	trackVolumes map[string]float64
	soundVolumes map[string]float64

	current string
	volume  float64
}

var _ system.Audio = (*Player)(nil)

// NewPlayer decodes every track and sound up front so a missing or broken
// asset fails at startup.
func NewPlayer(spec *prefabs.GameSpec) (*Player, error) {
	if spec == nil {
		return nil, fmt.Errorf("music: game spec is nil")
	}
	p := &Player{
		tracks:       make(map[string]*audio.Player, len(spec.Music)),
		sounds:       make(map[string]*audio.Player, len(spec.Sounds)),
		trackVolumes: make(map[string]float64, len(spec.Music)),
		soundVolumes: make(map[string]float64, len(spec.Sounds)),
		volume:       defaultVolume,
	}
	for _, a := range spec.Music {
		ap, err := assets.LoadAudioPlayer(a.File, true)
		if err != nil {
			return nil, fmt.Errorf("music: load track %q: %w", a.Name, err)
		}
		p.tracks[a.Name] = ap
		p.trackVolumes[a.Name] = volumeOrDefault(a.Volume)
	}
	for _, a := range spec.Sounds {
		ap, err := assets.LoadAudioPlayer(a.File, false)
		if err != nil {
			return nil, fmt.Errorf("music: load sound %q: %w", a.Name, err)
		}
		p.sounds[a.Name] = ap
		p.soundVolumes[a.Name] = volumeOrDefault(a.Volume)
	}
	return p, nil
}

// PlayMusic starts track from the beginning, replacing whatever was playing.
func (p *Player) PlayMusic(track string) {
	if p == nil {
		return
	}
	next, ok := p.tracks[track]
	if !ok {
		log.Printf("music: unknown track %q", track)
		return
	}
	if p.current != "" && p.current != track {
		p.StopMusic()
	}
	p.current = track
	rewind(next, track)
	next.SetVolume(p.volume * p.trackVolumes[track])
	next.Play()
}

// StopMusic halts the current track and forgets it.
func (p *Player) StopMusic() {
	cur := p.currentPlayer()
	if cur == nil {
		return
	}
	cur.Pause()
	rewind(cur, p.current)
	p.current = ""
}

func (p *Player) PauseMusic() {
	if cur := p.currentPlayer(); cur != nil {
		cur.Pause()
	}
}

func (p *Player) ResumeMusic() {
	if cur := p.currentPlayer(); cur != nil && !cur.IsPlaying() {
		cur.Play()
	}
}

// SetVolume sets the master music volume, clamped to [0, 1].
func (p *Player) SetVolume(v float64) {
	if p == nil {
		return
	}
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	p.volume = v
	if cur := p.currentPlayer(); cur != nil {
		cur.SetVolume(p.volume * p.trackVolumes[p.current])
	}
}

// PlaySound restarts the named one-shot sound.
func (p *Player) PlaySound(name string) {
	if p == nil {
		return
	}
	sp, ok := p.sounds[name]
	if !ok {
		log.Printf("music: unknown sound %q", name)
		return
	}
	rewind(sp, name)
	sp.SetVolume(p.soundVolumes[name])
	sp.Play()
}

// Current returns the name of the track that was last started.
func (p *Player) Current() string {
	if p == nil {
		return ""
	}
	return p.current
}

func (p *Player) currentPlayer() *audio.Player {
	if p == nil || p.current == "" {
		return nil
	}
	return p.tracks[p.current]
}

func rewind(ap *audio.Player, name string) {
	if err := ap.Rewind(); err != nil {
		log.Printf("music: rewind %q: %v", name, err)
	}
}

func volumeOrDefault(v float64) float64 {
	if v <= 0 {
		return defaultVolume
	}
	if v > 1 {
		return 1
	}
	return v
}
