package system

import "github.com/milk9111/stickerclimb/obj"

const defaultMaxAttacking = 2

// resolveAttacks applies live player swipes to hostiles and destructible
// obstacles. A swipe damages each target at most once.
func (w *World) resolveAttacks() {
	live := w.Attacks[:0]
	for _, a := range w.Attacks {
		a.Follow(w.Player.Rect, w.Player.Facing)
		for _, h := range w.Hostiles {
			if h.Dead() || !a.Rect.Intersects(h.Bounds()) {
				continue
			}
			if a.TryHit(h) {
				h.TakeDamage(a.Damage)
			}
		}
		for _, o := range w.Collision.QueryObstacles(a.Rect) {
			if !o.Destructible() || !a.TryHit(o) {
				continue
			}
			if o.Hit() {
				w.Collision.RemoveObstacle(o)
			}
		}
		a.Tick()
		if !a.Expired() {
			live = append(live, a)
		}
	}
	w.Attacks = live

	alive := w.Hostiles[:0]
	for _, h := range w.Hostiles {
		if !h.Dead() {
			alive = append(alive, h)
		}
	}
	w.Hostiles = alive
}

// resolveContact lets at most limit touching hostiles hurt the player and
// returns how many did.
func (w *World) resolveContact(limit int) int {
	if limit <= 0 {
		limit = defaultMaxAttacking
	}
	n := 0
	for _, h := range w.Hostiles {
		if n >= limit {
			break
		}
		if h.Dead() || !h.Bounds().Intersects(w.Player.Rect) {
			continue
		}
		w.Player.TakeDamage(h.MeleeDamage())
		n++
	}
	w.Attacking = n
	return n
}

func (w *World) updateProjectiles() {
	live := w.Projectiles[:0]
	for _, p := range w.Projectiles {
		p.Update()
		if p.Active {
			live = append(live, p)
		}
	}
	w.Projectiles = live
}

// resolveProjectiles consumes every shot touching the player.
func (w *World) resolveProjectiles() {
	live := w.Projectiles[:0]
	for _, p := range w.Projectiles {
		if p.Active && p.Rect.Intersects(w.Player.Rect) {
			w.Player.TakeDamage(p.Damage)
			p.Active = false
			continue
		}
		live = append(live, p)
	}
	w.Projectiles = live
}

// resolveObstacles applies every obstacle the player overlaps: damage or
// healing, speed modifiers, bounce pads and solid tops.
func (w *World) resolveObstacles() {
	for _, o := range w.Collision.QueryObstacles(w.Player.Rect) {
		if o.Damage != 0 {
			w.Player.TakeDamage(o.Damage)
			if o.SingleUse {
				o.Consume()
				w.Collision.RemoveObstacle(o)
			}
		}
		if o.SpeedMod != 0 && o.SpeedMod != 1 {
			w.Player.ApplySpeedMod(o.SpeedMod)
		}
		if o.Bounce != 0 {
			w.Player.Bounce(o.Bounce)
		}
		if o.Blocking {
			w.Player.StandOn(o.Rect)
		}
	}
	w.pruneObstacles()
}

func (w *World) pruneObstacles() {
	live := w.Obstacles[:0]
	for _, o := range w.Obstacles {
		if o.Active {
			live = append(live, o)
		}
	}
	w.Obstacles = live
}

// collect picks up health, power-ups and the treasure. It returns the sticker
// id collected this frame, or -1.
func (w *World) collect() int {
	pr := w.Player.Rect
	for _, h := range w.HealthPickups {
		h.Update()
		if !h.Collected && h.Rect.Intersects(pr) {
			w.Player.Heal(h.Collect())
		}
	}
	for _, p := range w.PowerUps {
		p.Update()
		if !p.Collected && p.Rect.Intersects(pr) {
			w.Player.Activate(p.Kind, p.Frames)
			p.Collect()
		}
	}
	if t := w.Treasure; t != nil && t.Collectable() && t.Rect.Intersects(pr) {
		t.Collect()
		return t.StickerID
	}
	return -1
}

// checkDefeated unlocks the door and reveals the treasure the first frame no
// hostile is left. It reports whether that happened this frame.
func (w *World) checkDefeated() bool {
	if w.Defeated || w.Alive() > 0 {
		return false
	}
	w.Defeated = true
	if w.Door != nil {
		w.Door.Unlock()
	}
	if w.Treasure != nil {
		w.Treasure.Reveal()
	}
	return true
}

func (w *World) spawnAttack(a *obj.Attack) {
	if a != nil {
		w.Attacks = append(w.Attacks, a)
	}
}
