// internal/system/enemy.go
package system

import (
	"log"
	"math"

	"go-scroll-shooter/internal/component"
	"go-scroll-shooter/internal/config"
	"go-scroll-shooter/internal/defs"
	"go-scroll-shooter/internal/entity"
	"go-scroll-shooter/internal/event"
	"go-scroll-shooter/internal/interfaces"
	"go-scroll-shooter/internal/types"
	"go-scroll-shooter/internal/utils"
)

// EnemySystem — машина состояний вражеского юнита: здоровье, движение,
// стрельба, скриптовые последовательности, отступление и смерть.
// Порядок веток тика фиксирован: отступление > скрипт > движение > стрельба;
// активная ветка полностью владеет тиком.
type EnemySystem struct {
	ecs             *entity.ECS
	projectiles     *ProjectileSystem
	effects         *VisualEffectSystem
	eventDispatcher *event.Dispatcher
	target          interfaces.TargetProvider
}

func NewEnemySystem(ecs *entity.ECS, projectiles *ProjectileSystem, effects *VisualEffectSystem,
	eventDispatcher *event.Dispatcher, target interfaces.TargetProvider) *EnemySystem {
	return &EnemySystem{
		ecs:             ecs,
		projectiles:     projectiles,
		effects:         effects,
		eventDispatcher: eventDispatcher,
		target:          target,
	}
}

// Spawn создает юнита по определению на позиции (x, y).
func (s *EnemySystem) Spawn(defID string, x, y float64) (types.EntityID, bool) {
	def, ok := defs.EnemyLibrary[defID]
	if !ok {
		log.Printf("EnemySystem: enemy definition not found for ID: %s", defID)
		return 0, false
	}

	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: x, Y: y}
	s.ecs.Velocities[id] = &component.Velocity{}
	s.ecs.Healths[id] = &component.Health{Value: def.Health}

	enemy := &component.Enemy{
		DefID:       defID,
		VolleysLeft: -1,
	}
	if def.Fire.Type == defs.FireInterval && def.Fire.TotalShots > 0 {
		enemy.VolleysLeft = def.Fire.TotalShots
	}
	if def.Fire.StartDelayMs > 0 {
		enemy.NextFireAt = s.ecs.GameTime + def.Fire.StartDelaySeconds()
	}
	if def.Script != nil {
		enemy.Script = &component.ScriptState{Phase: component.ScriptApproach}
	}
	s.ecs.Enemies[id] = enemy

	s.ecs.Renderables[id] = &component.Renderable{
		Color:     def.Visuals.Color,
		Radius:    float32(config.EnemyRadius * def.Visuals.RadiusFactor * def.Scale),
		HasStroke: def.Visuals.StrokeWidth > 0,
	}
	return id, true
}

// Score возвращает стоимость юнита в очках; 0, если юнит уже удален.
func (s *EnemySystem) Score(id types.EntityID) int {
	enemy, ok := s.ecs.Enemies[id]
	if !ok {
		return 0
	}
	return defs.EnemyLibrary[enemy.DefID].Score
}

// BodyRadius возвращает радиус тела юнита для внешнего слоя столкновений.
func (s *EnemySystem) BodyRadius(id types.EntityID) float64 {
	enemy, ok := s.ecs.Enemies[id]
	if !ok {
		return 0
	}
	def := defs.EnemyLibrary[enemy.DefID]
	if def.BodyRadius > 0 {
		return def.BodyRadius
	}
	return config.EnemyRadius * def.Visuals.RadiusFactor * def.Scale
}

// TakeDamage наносит юниту урон. Возвращает true, если юнит был уничтожен
// этим вызовом. Урон действует в любом состоянии, включая отступление и скрипт.
func (s *EnemySystem) TakeDamage(id types.EntityID, amount int) bool {
	health, ok := s.ecs.Healths[id]
	if !ok {
		return false
	}
	enemy, ok := s.ecs.Enemies[id]
	if !ok {
		return false
	}

	health.Value -= amount
	if health.Value <= 0 {
		def := defs.EnemyLibrary[enemy.DefID]
		s.destroy(id, &def, def.Score)
		return true
	}

	s.ecs.DamageFlashes[id] = &component.DamageFlash{Timer: config.HitFlashDuration}
	return false
}

func (s *EnemySystem) Update(deltaTime float64) {
	now := s.ecs.GameTime
	for id, enemy := range s.ecs.Enemies {
		pos := s.ecs.Positions[id]
		vel := s.ecs.Velocities[id]
		if pos == nil || vel == nil {
			continue
		}
		def, ok := defs.EnemyLibrary[enemy.DefID]
		if !ok {
			continue
		}

		if enemy.Retreating {
			s.updateRetreat(id, enemy, &def, pos, vel, now)
			continue
		}
		if enemy.Script != nil && enemy.Script.Phase != component.ScriptDone {
			s.updateScript(id, enemy, &def, pos, vel, now, deltaTime)
			continue
		}

		s.updateMovement(enemy, &def, pos, vel, deltaTime)
		s.updateFire(enemy, &def, pos, now)
	}
}

// updateRetreat: до истечения задержки юнит неподвижен, затем уходит вверх
// и уничтожается за границей поля.
func (s *EnemySystem) updateRetreat(id types.EntityID, enemy *component.Enemy,
	def *defs.EnemyDefinition, pos *component.Position, vel *component.Velocity, now float64) {
	if now < enemy.RetreatAt {
		vel.X, vel.Y = 0, 0
		return
	}

	speed := def.Movement.Speed
	if def.Retreat != nil {
		speed = def.Retreat.Speed
	}
	vel.X, vel.Y = 0, -speed

	if pos.Y < -config.RetreatExitMargin {
		s.remove(id)
		s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyRetreated, Data: id})
	}
}

func (s *EnemySystem) updateScript(id types.EntityID, enemy *component.Enemy,
	def *defs.EnemyDefinition, pos *component.Position, vel *component.Velocity, now, deltaTime float64) {
	script := enemy.Script
	seq := def.Script
	if seq == nil {
		script.Phase = component.ScriptDone
		return
	}

	switch script.Phase {
	case component.ScriptApproach:
		vel.X, vel.Y = 0, descentSpeed(pos.Y, seq.TopY, def.Movement.Speed, deltaTime)
		if pos.Y >= seq.TopY {
			pos.Y = seq.TopY
			vel.Y = 0
			script.Phase = component.ScriptBurst
			script.NextActionAt = now // первый выстрел сразу
		}
	case component.ScriptBurst:
		vel.X, vel.Y = 0, 0
		if script.ShotsFired < seq.ShotCount && now >= script.NextActionAt {
			if pdef, ok := defs.ProjectileLibrary[def.ProjectileID]; ok {
				s.projectiles.SpawnAimed(pos.X, pos.Y, pdef)
			}
			script.ShotsFired++
			script.NextActionAt = now + seq.IntervalSeconds()
			if script.ShotsFired >= seq.ShotCount {
				script.Phase = component.ScriptSelfDestruct
				script.NextActionAt = now + config.SelfDestructHold
			}
		}
	case component.ScriptSelfDestruct:
		// AfterSpeed == 0 держит юнита на месте до подрыва.
		vel.X, vel.Y = 0, seq.AfterSpeed
		if now >= script.NextActionAt {
			script.Phase = component.ScriptDone
			s.destroy(id, def, 0)
		}
	}
}

func (s *EnemySystem) updateMovement(enemy *component.Enemy, def *defs.EnemyDefinition,
	pos *component.Position, vel *component.Velocity, deltaTime float64) {
	switch def.Movement.Type {
	case defs.MoveStraight:
		vel.X, vel.Y = 0, def.Movement.Speed
	case defs.MoveSine:
		enemy.SinePhase += 2 * math.Pi * def.Movement.FrequencyHz * deltaTime
		vel.X = def.Movement.Amplitude * math.Sin(enemy.SinePhase)
		vel.Y = def.Movement.Speed
	case defs.MoveHover:
		ceiling := def.Movement.CeilingY
		if ceiling == nil {
			vel.X, vel.Y = 0, def.Movement.Speed
		} else if pos.Y >= *ceiling {
			pos.Y = *ceiling
			vel.X, vel.Y = 0, 0
		} else {
			vel.X, vel.Y = 0, descentSpeed(pos.Y, *ceiling, def.Movement.Speed, deltaTime)
		}
	case defs.MoveDive:
		angle := def.Movement.AngleDeg * math.Pi / 180
		vel.X, vel.Y = utils.VelocityFromAngle(angle, def.Movement.Speed)
	}
}

// descentSpeed не дает юниту проскочить линию остановки за один тик:
// последний шаг укорачивается так, чтобы попасть на линию точно.
func descentSpeed(y, stopY, speed, deltaTime float64) float64 {
	if deltaTime <= 0 {
		return speed
	}
	if remaining := stopY - y; remaining < speed*deltaTime {
		return remaining / deltaTime
	}
	return speed
}

// updateFire: стрельба начинается только после того, как юнит визуально
// вошел в поле (y > 0).
func (s *EnemySystem) updateFire(enemy *component.Enemy, def *defs.EnemyDefinition,
	pos *component.Position, now float64) {
	if pos.Y <= 0 {
		return
	}

	switch def.Fire.Type {
	case defs.FireNone:
	case defs.FireInterval:
		s.updateIntervalFire(enemy, def, pos, now)
	case defs.FireTorpedo:
		if now < enemy.NextFireAt {
			return
		}
		pdef, ok := defs.ProjectileLibrary[def.ProjectileID]
		if !ok {
			return
		}
		homing := defs.HomingParams{TurnRateRad: config.DefaultHomingTurnRate, Accel: config.DefaultHomingAccel}
		if def.Fire.Homing != nil {
			homing = *def.Fire.Homing
		}
		for _, muzzle := range def.MuzzleOffsets {
			s.projectiles.SpawnHoming(pos.X+muzzle.X, pos.Y+muzzle.Y, pdef, homing)
		}
		enemy.NextFireAt = now + def.Fire.IntervalSeconds()
	case defs.FireBomb:
		if now < enemy.NextFireAt {
			return
		}
		pdef, ok := defs.ProjectileLibrary[def.ProjectileID]
		if !ok {
			return
		}
		gravity := def.Fire.Gravity
		if gravity <= 0 {
			gravity = config.DefaultBombGravity
		}
		for _, muzzle := range def.MuzzleOffsets {
			s.projectiles.SpawnBomb(pos.X+muzzle.X, pos.Y+muzzle.Y, pdef, gravity)
		}
		enemy.NextFireAt = now + def.Fire.IntervalSeconds()
	}
}

// updateIntervalFire ведет учет залпов. Залп — BurstCount выстрелов с малым
// шагом BurstStagger; каждый выстрел выпускает по снаряду из каждой точки
// подвеса. VolleysLeft расходуется по одному на залп и не уходит ниже нуля.
func (s *EnemySystem) updateIntervalFire(enemy *component.Enemy, def *defs.EnemyDefinition,
	pos *component.Position, now float64) {
	// Незавершенный залп продолжается независимо от интервала.
	if enemy.BurstShotsLeft > 0 {
		if now < enemy.NextBurstShotAt {
			return
		}
		s.fireVolleyShot(def, pos)
		enemy.BurstShotsLeft--
		if enemy.BurstShotsLeft > 0 {
			enemy.NextBurstShotAt = now + config.BurstStagger
		} else {
			s.finishVolley(enemy, def, now)
		}
		return
	}

	if enemy.VolleysLeft == 0 {
		return
	}
	if now < enemy.NextFireAt {
		return
	}

	if enemy.VolleysLeft > 0 {
		enemy.VolleysLeft--
	}
	enemy.BurstShotsLeft = def.Fire.BurstCount
	s.fireVolleyShot(def, pos)
	enemy.BurstShotsLeft--
	if enemy.BurstShotsLeft > 0 {
		enemy.NextBurstShotAt = now + config.BurstStagger
	} else {
		s.finishVolley(enemy, def, now)
	}
}

// finishVolley закрывает залп: взводит следующий интервал и, если боезапас
// исчерпан, включает отступление с настроенной задержкой.
func (s *EnemySystem) finishVolley(enemy *component.Enemy, def *defs.EnemyDefinition, now float64) {
	enemy.NextFireAt = now + def.Fire.IntervalSeconds()
	if enemy.VolleysLeft == 0 && def.Retreat != nil {
		enemy.Retreating = true
		enemy.RetreatAt = now + def.Retreat.DelaySeconds()
	}
}

// fireVolleyShot выпускает по одному снаряду из каждой точки подвеса,
// учитывая aimed/spread паттерна, иначе — поведение по умолчанию из
// определения снаряда.
func (s *EnemySystem) fireVolleyShot(def *defs.EnemyDefinition, pos *component.Position) {
	pdef, ok := defs.ProjectileLibrary[def.ProjectileID]
	if !ok {
		return
	}
	for _, muzzle := range def.MuzzleOffsets {
		x, y := pos.X+muzzle.X, pos.Y+muzzle.Y
		switch {
		case def.Fire.SpreadDeg > 0:
			s.projectiles.SpawnSpread(x, y, pdef, def.Fire.SpreadDeg)
		case def.Fire.Aimed:
			s.projectiles.SpawnAimed(x, y, pdef)
		default:
			s.fireDefaultBehavior(def, pdef, x, y)
		}
	}
}

// fireDefaultBehavior диспетчеризует по тегу поведения снаряда.
func (s *EnemySystem) fireDefaultBehavior(def *defs.EnemyDefinition, pdef defs.ProjectileDefinition, x, y float64) {
	switch pdef.Behavior {
	case defs.BehaviorAimed:
		s.projectiles.SpawnAimed(x, y, pdef)
	case defs.BehaviorSpread:
		spread := def.Fire.SpreadDeg
		if spread <= 0 {
			spread = config.DefaultSpreadDeg
		}
		s.projectiles.SpawnSpread(x, y, pdef, spread)
	case defs.BehaviorHoming:
		homing := defs.HomingParams{TurnRateRad: config.DefaultHomingTurnRate, Accel: config.DefaultHomingAccel}
		if def.Fire.Homing != nil {
			homing = *def.Fire.Homing
		}
		s.projectiles.SpawnHoming(x, y, pdef, homing)
	case defs.BehaviorBomb:
		gravity := def.Fire.Gravity
		if gravity <= 0 {
			gravity = config.DefaultBombGravity
		}
		s.projectiles.SpawnBomb(x, y, pdef, gravity)
	default:
		s.projectiles.SpawnStraight(x, y, pdef)
	}
}

// destroy удаляет юнита ровно один раз: эффект взрыва (если назначен),
// снятие компонентов, событие. Отсутствие эффекта — тихая деградация.
func (s *EnemySystem) destroy(id types.EntityID, def *defs.EnemyDefinition, score int) {
	if pos := s.ecs.Positions[id]; pos != nil {
		s.effects.SpawnExplosion(pos.X, pos.Y, def.EffectID)
	}
	s.remove(id)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemyDestroyed,
		Data: event.EnemyDestroyedData{ID: id, DefID: def.ID, Score: score},
	})
}

func (s *EnemySystem) remove(id types.EntityID) {
	delete(s.ecs.Positions, id)
	delete(s.ecs.Velocities, id)
	delete(s.ecs.Healths, id)
	delete(s.ecs.Renderables, id)
	delete(s.ecs.Enemies, id)
	delete(s.ecs.DamageFlashes, id)
}
