// internal/entity/ecs.go
package entity

import (
	"go-scroll-shooter/internal/component"
	"go-scroll-shooter/internal/types"
)

type ECS struct {
	GameTime      float64
	NextID        types.EntityID
	Positions     map[types.EntityID]*component.Position
	Velocities    map[types.EntityID]*component.Velocity
	Healths       map[types.EntityID]*component.Health
	Renderables   map[types.EntityID]*component.Renderable
	Enemies       map[types.EntityID]*component.Enemy
	Projectiles   map[types.EntityID]*component.Projectile
	PlayerShots   map[types.EntityID]*component.PlayerShot
	DamageFlashes map[types.EntityID]*component.DamageFlash
	Explosions    map[types.EntityID]*component.Explosion
	Level         *component.Level
}

func NewECS() *ECS {
	return &ECS{
		NextID:        1,
		Positions:     make(map[types.EntityID]*component.Position),
		Velocities:    make(map[types.EntityID]*component.Velocity),
		Healths:       make(map[types.EntityID]*component.Health),
		Renderables:   make(map[types.EntityID]*component.Renderable),
		Enemies:       make(map[types.EntityID]*component.Enemy),
		Projectiles:   make(map[types.EntityID]*component.Projectile),
		PlayerShots:   make(map[types.EntityID]*component.PlayerShot),
		DamageFlashes: make(map[types.EntityID]*component.DamageFlash),
		Explosions:    make(map[types.EntityID]*component.Explosion),
		Level:         nil,
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}
