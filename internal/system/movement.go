// internal/system/movement.go
package system

import (
	"go-scroll-shooter/internal/entity"
)

// MovementSystem обновляет позиции сущностей. Решения о направлении принимают
// EnemySystem и ProjectileSystem; здесь только интеграция скорости.
type MovementSystem struct {
	ecs *entity.ECS
}

func NewMovementSystem(ecs *entity.ECS) *MovementSystem {
	return &MovementSystem{ecs: ecs}
}

func (s *MovementSystem) Update(deltaTime float64) {
	for id, pos := range s.ecs.Positions {
		if vel, hasVel := s.ecs.Velocities[id]; hasVel {
			pos.X += vel.X * deltaTime
			pos.Y += vel.Y * deltaTime
		}
	}
}
