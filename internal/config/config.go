package config

import "image/color"

const (
	ScreenWidth  = 540
	ScreenHeight = 720
	MaxDeltaTime = 0.06

	// Снаряды уничтожаются за пределами игрового поля с этим запасом.
	PlayfieldMargin = 60.0
	// Отступающий враг уничтожается, когда уходит выше верхней границы на это значение.
	RetreatExitMargin = 40.0

	MaxProjectiles = 256

	// Задержка между выстрелами внутри одной очереди.
	BurstStagger = 0.08
	// Пауза между последним выстрелом скриптовой серии и самоуничтожением.
	SelfDestructHold = 0.4

	HitFlashDuration = 0.15

	// Запасные параметры для снарядов, у которых тег поведения требует
	// больше данных, чем дал паттерн стрельбы.
	DefaultSpreadDeg      = 10.0
	DefaultHomingTurnRate = 0.05
	DefaultHomingAccel    = 2.0
	DefaultBombGravity    = 200.0

	EnemyRadius      = 12.0
	ProjectileRadius = 4.0

	PlayerRadius       = 10.0
	PlayerSpeed        = 260.0
	PlayerFireCooldown = 0.18
	PlayerShotSpeed    = 420.0
	PlayerShotDamage   = 1
	PlayerHull         = 5

	LevelStartDelay = 1.5
)

var (
	BackgroundColor = color.RGBA{R: 8, G: 10, B: 24, A: 255}
	PlayerColor     = color.RGBA{R: 120, G: 220, B: 255, A: 255}
	PlayerShotColor = color.RGBA{R: 200, G: 240, B: 255, A: 255}
	HitFlashColor   = color.RGBA{R: 255, G: 255, B: 255, A: 200}
	HUDColor        = color.RGBA{R: 220, G: 220, B: 220, A: 255}
)
