package system

import (
	"slices"

	"github.com/milk9111/killenemies/obj"
)

// resolveBullets moves every bullet and removes bullet/enemy pairs that
// overlap. A bullet kills at most one enemy. It returns the number of kills.
func (w *World) resolveBullets() int {
	kills := 0
	for _, b := range slices.Clone(w.bullets) {
		b.Update(w.width)
		if !b.Alive() {
			continue
		}
		for i, e := range w.enemies {
			if obj.Overlaps(b, e) {
				b.Kill()
				// safe: the scan stops right after the removal
				w.enemies = slices.Delete(w.enemies, i, i+1)
				kills++
				break
			}
		}
	}

	writeIdx := 0
	for _, b := range w.bullets {
		if !b.Alive() {
			continue
		}
		w.bullets[writeIdx] = b
		writeIdx++
	}
	clear(w.bullets[writeIdx:])
	w.bullets = w.bullets[:writeIdx]
	return kills
}

// playerHit reports whether any enemy touches the player.
func (w *World) playerHit() bool {
	for _, e := range w.enemies {
		if obj.Overlaps(w.player, e) {
			return true
		}
	}
	return false
}
