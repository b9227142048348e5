package component

// Player — состояние корабля игрока.
type Player struct {
	Hull         int
	FireCooldown float64
}

// PlayerShot — снаряд игрока. Живет вне пула вражеских снарядов,
// столкновениями занимается слой приложения.
type PlayerShot struct {
	Damage int
}
