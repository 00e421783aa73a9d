package system

import "github.com/milk9111/killenemies/obj"

// Track and sound names the session asks for. The game prefab maps them to files.
const (
	TrackBackground = "background"
	TrackVictory    = "victory"
	SoundShoot      = "shoot"
	SoundEnemyDeath = "enemy_death"
)

// Audio is the fire-and-forget sound surface the session drives.
type Audio interface {
	PlayMusic(track string)
	StopMusic()
	PauseMusic()
	ResumeMusic()
	SetVolume(v float64)
	PlaySound(name string)
}

// NopAudio discards every request.
type NopAudio struct{}

func (NopAudio) PlayMusic(string) {}
func (NopAudio) StopMusic() {}
func (NopAudio) PauseMusic() {}
func (NopAudio) ResumeMusic() {}
func (NopAudio) SetVolume(float64) {}
func (NopAudio) PlaySound(string) {}

// Drawer renders actors. Implementations must not touch gameplay state.
type Drawer interface {
	DrawActor(a obj.Actor)
}
