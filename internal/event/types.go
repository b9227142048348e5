// internal/event/types.go
package event

import "go-scroll-shooter/internal/types"

const (
	EnemyDestroyed EventType = "EnemyDestroyed" // Враг уничтожен (урон или самоподрыв)
	EnemyRetreated EventType = "EnemyRetreated" // Враг ушел за границу поля при отступлении
	LevelEnded     EventType = "LevelEnded"     // Уровень закончился
	PlayerHit      EventType = "PlayerHit"      // Снаряд попал в игрока
)

// EnemyDestroyedData — полезная нагрузка события EnemyDestroyed.
// Score равен нулю при самоподрыве: награда достается только уничтожителю.
type EnemyDestroyedData struct {
	ID    types.EntityID
	DefID string
	Score int
}

// PlayerHitData — полезная нагрузка события PlayerHit.
type PlayerHitData struct {
	Damage int
}
