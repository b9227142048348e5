// internal/component/projectile.go
package component

// HomingState — параметры наведения самонаводящегося снаряда.
type HomingState struct {
	TurnRate float64 // Максимальный поворот за тик, радианы
	Accel    float64 // Прирост скорости за тик
}

// Projectile представляет летящий снаряд.
type Projectile struct {
	DefID     string
	Angle     float64 // Текущее направление; 0 — вниз
	Speed     float64 // Скалярная скорость, используется наведением
	ExpiresAt float64 // Игровое время окончания жизни
	Damage    int

	Homing  *HomingState // nil для всех, кроме самонаводящихся
	Gravity float64      // px/s^2; только для бомб

	Destructible bool
	HitPoints    int
}
