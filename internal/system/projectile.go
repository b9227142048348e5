// internal/system/projectile.go
package system

import (
	"math"

	"go-scroll-shooter/internal/component"
	"go-scroll-shooter/internal/config"
	"go-scroll-shooter/internal/defs"
	"go-scroll-shooter/internal/entity"
	"go-scroll-shooter/internal/interfaces"
	"go-scroll-shooter/internal/types"
	"go-scroll-shooter/internal/utils"
)

// ProjectileSystem владеет пулом вражеских снарядов: создание, наведение,
// удаление по таймауту и за границей поля. Вызывающий код не знает про пул:
// при переполнении спавн молча не происходит.
type ProjectileSystem struct {
	ecs    *entity.ECS
	target interfaces.TargetProvider
}

func NewProjectileSystem(ecs *entity.ECS, target interfaces.TargetProvider) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:    ecs,
		target: target,
	}
}

// Count возвращает число живых снарядов в пуле.
func (s *ProjectileSystem) Count() int {
	return len(s.ecs.Projectiles)
}

// SpawnStraight выпускает снаряд строго вниз. Время жизни растягивается так,
// чтобы снаряд гарантированно пересек поле и не исчез раньше дальней границы.
func (s *ProjectileSystem) SpawnStraight(x, y float64, def defs.ProjectileDefinition) (types.EntityID, bool) {
	return s.spawn(x, y, def, 0, def.Speed, s.crossingLife(y, def))
}

// SpawnAimed выпускает снаряд в текущую позицию цели; после спавна снаряд не
// перенацеливается. Без цели направление — строго вниз.
func (s *ProjectileSystem) SpawnAimed(x, y float64, def defs.ProjectileDefinition) (types.EntityID, bool) {
	angle := 0.0
	if s.target != nil {
		if tx, ty, ok := s.target.TargetPosition(); ok {
			angle = utils.TargetAngle(x, y, tx, ty)
		}
	}
	return s.spawn(x, y, def, angle, def.Speed, def.LifetimeSeconds())
}

// SpawnSpread выпускает три снаряда: центральный вниз и два под ±spreadDeg.
func (s *ProjectileSystem) SpawnSpread(x, y float64, def defs.ProjectileDefinition, spreadDeg float64) bool {
	spread := spreadDeg * math.Pi / 180
	life := s.crossingLife(y, def)
	spawned := false
	for _, angle := range [3]float64{-spread, 0, spread} {
		if _, ok := s.spawn(x, y, def, angle, def.Speed, life); ok {
			spawned = true
		}
	}
	return spawned
}

// SpawnHoming выпускает самонаводящийся снаряд: стартует вниз на половине
// номинальной скорости, каждый тик доворачивает к цели и ускоряется.
// Живет только до таймаута: продление "до пересечения поля" здесь не имеет
// смысла, направление меняется.
func (s *ProjectileSystem) SpawnHoming(x, y float64, def defs.ProjectileDefinition, homing defs.HomingParams) (types.EntityID, bool) {
	id, ok := s.spawn(x, y, def, 0, def.Speed/2, def.LifetimeSeconds())
	if !ok {
		return 0, false
	}
	s.ecs.Projectiles[id].Homing = &component.HomingState{
		TurnRate: homing.TurnRateRad,
		Accel:    homing.Accel,
	}
	return id, true
}

// SpawnBomb выпускает падающий снаряд с постоянным ускорением вниз.
// Удаляется только по таймауту.
func (s *ProjectileSystem) SpawnBomb(x, y float64, def defs.ProjectileDefinition, gravity float64) (types.EntityID, bool) {
	id, ok := s.spawn(x, y, def, 0, def.Speed, def.LifetimeSeconds())
	if !ok {
		return 0, false
	}
	s.ecs.Projectiles[id].Gravity = gravity
	return id, true
}

// Damage наносит урон снаряду. Действует только на разрушаемые снаряды;
// для остальных это no-op с ответом false. Возвращает true, если снаряд
// был уничтожен этим вызовом.
func (s *ProjectileSystem) Damage(id types.EntityID, amount int) bool {
	proj, ok := s.ecs.Projectiles[id]
	if !ok || !proj.Destructible {
		return false
	}
	proj.HitPoints -= amount
	if proj.HitPoints > 0 {
		return false
	}
	s.removeProjectile(id)
	return true
}

// Update выполняет один тик пула: чистит снаряды за границей поля и по
// таймауту, доворачивает самонаводящиеся к цели, применяет гравитацию бомб.
func (s *ProjectileSystem) Update(deltaTime float64) {
	now := s.ecs.GameTime
	margin := config.PlayfieldMargin

	var tx, ty float64
	hasTarget := false
	if s.target != nil {
		tx, ty, hasTarget = s.target.TargetPosition()
	}

	for id, proj := range s.ecs.Projectiles {
		pos := s.ecs.Positions[id]
		if pos == nil {
			s.removeProjectile(id)
			continue
		}

		// Границы поля действуют на все типы снарядов.
		if pos.X < -margin || pos.X > config.ScreenWidth+margin ||
			pos.Y < -margin || pos.Y > config.ScreenHeight+margin {
			s.removeProjectile(id)
			continue
		}

		if now >= proj.ExpiresAt {
			s.removeProjectile(id)
			continue
		}

		vel := s.ecs.Velocities[id]
		if vel == nil {
			continue
		}

		if proj.Homing != nil {
			if hasTarget {
				bearing := utils.TargetAngle(pos.X, pos.Y, tx, ty)
				proj.Angle = utils.RotateToward(proj.Angle, bearing, proj.Homing.TurnRate)
			}
			proj.Speed += proj.Homing.Accel
			vel.X, vel.Y = utils.VelocityFromAngle(proj.Angle, proj.Speed)
		}

		if proj.Gravity != 0 {
			vel.Y += proj.Gravity * deltaTime
			proj.Angle = math.Atan2(vel.X, vel.Y)
		}

		if renderable, ok := s.ecs.Renderables[id]; ok {
			renderable.Rotation = proj.Angle + defs.RotationOffset(proj.DefID)
		}
	}
}

// crossingLife возвращает время жизни, достаточное для пересечения поля
// с высоты y, но не меньше номинального.
func (s *ProjectileSystem) crossingLife(y float64, def defs.ProjectileDefinition) float64 {
	life := def.LifetimeSeconds()
	crossing := (config.ScreenHeight + config.PlayfieldMargin - y) / def.Speed
	if crossing > life {
		life = crossing
	}
	return life
}

func (s *ProjectileSystem) spawn(x, y float64, def defs.ProjectileDefinition, angle, speed, life float64) (types.EntityID, bool) {
	if len(s.ecs.Projectiles) >= config.MaxProjectiles {
		return 0, false
	}

	id := s.ecs.NewEntity()
	vx, vy := utils.VelocityFromAngle(angle, speed)
	s.ecs.Positions[id] = &component.Position{X: x, Y: y}
	s.ecs.Velocities[id] = &component.Velocity{X: vx, Y: vy}

	hitPoints := def.HitPoints
	if def.Destructible && hitPoints <= 0 {
		hitPoints = 1
	}
	s.ecs.Projectiles[id] = &component.Projectile{
		DefID:        def.ID,
		Angle:        angle,
		Speed:        speed,
		ExpiresAt:    s.ecs.GameTime + life,
		Damage:       def.Damage,
		Destructible: def.Destructible,
		HitPoints:    hitPoints,
	}

	radius := config.ProjectileRadius
	if def.Scale > 0 {
		radius *= def.Scale
	}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:    def.Color,
		Radius:   float32(radius),
		Rotation: angle + defs.RotationOffset(def.ID),
	}
	return id, true
}

func (s *ProjectileSystem) removeProjectile(id types.EntityID) {
	delete(s.ecs.Positions, id)
	delete(s.ecs.Velocities, id)
	delete(s.ecs.Projectiles, id)
	delete(s.ecs.Renderables, id)
}
