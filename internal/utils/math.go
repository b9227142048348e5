// internal/utils/math.go
package utils

import "math"

// Угол 0 направлен вниз (+Y), положительное направление — по часовой стрелке.
// Скорость раскладывается как vx = sin(a)*v, vy = cos(a)*v.

// NormalizeAngle нормализует угол в диапазон [-π, π]
func NormalizeAngle(angle float64) float64 {
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	for angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// TargetAngle возвращает угол от точки (srcX, srcY) к точке (dstX, dstY).
func TargetAngle(srcX, srcY, dstX, dstY float64) float64 {
	return math.Atan2(dstX-srcX, dstY-srcY)
}

// RotateToward поворачивает угол current к углу target по кратчайшей дуге,
// но не более чем на maxStep радиан за вызов.
func RotateToward(current, target, maxStep float64) float64 {
	diff := NormalizeAngle(target - current)
	if diff > maxStep {
		diff = maxStep
	} else if diff < -maxStep {
		diff = -maxStep
	}
	return NormalizeAngle(current + diff)
}

// VelocityFromAngle раскладывает скалярную скорость по направлению угла.
func VelocityFromAngle(angle, speed float64) (vx, vy float64) {
	return math.Sin(angle) * speed, math.Cos(angle) * speed
}

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}
