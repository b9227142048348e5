// internal/component/visual.go
package component

import "image/color"

// DamageFlash указывает, что сущность должна быть отрисована цветом урона.
type DamageFlash struct {
	Timer float64 // Оставшееся время эффекта
}

// Explosion — одноразовый визуальный эффект взрыва при уничтожении.
type Explosion struct {
	CurrentTimer float64
	Duration     float64
	MaxRadius    float64
	Color        color.RGBA
}
